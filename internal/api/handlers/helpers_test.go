package handlers_test

import (
	"bytes"
	"log"

	"griya/mdp/internal/api/handlers"
	"griya/mdp/internal/catalog"
	"griya/mdp/internal/models"
)

func quietOpts(name string, extra ...catalog.Option) []catalog.Option {
	opts := []catalog.Option{
		catalog.WithName(name),
		catalog.WithLogger(log.New(&bytes.Buffer{}, "", 0)),
	}
	return append(opts, extra...)
}

func newProfileHandler(extra ...catalog.Option) *handlers.ProfileHandler {
	return handlers.NewProfileHandler(
		catalog.SampleProfile(),
		catalog.SampleStats(),
		catalog.SampleSocialLinks(),
		catalog.Initialize(catalog.SampleProperties(), quietOpts(handlers.CollectionProperties, extra...)...),
		catalog.Initialize(catalog.SampleFavorites(), quietOpts(handlers.CollectionFavorites, extra...)...),
		catalog.Initialize(catalog.SampleHistory(), quietOpts(handlers.CollectionHistory, extra...)...),
	)
}

func housingIDs(items []models.Housing) []int {
	out := make([]int, 0, len(items))
	for _, h := range items {
		out = append(out, h.ID)
	}
	return out
}
