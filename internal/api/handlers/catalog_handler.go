package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"griya/mdp/internal/catalog"
	"griya/mdp/internal/models"
)

// HomeData is the content of the home page.
type HomeData struct {
	Listings []models.Housing `json:"listings"`
	Count    int              `json:"count"`
}

// CatalogHandler renders the housing catalog.
type CatalogHandler struct {
	housing *catalog.Store[models.Housing]
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(housing *catalog.Store[models.Housing]) *CatalogHandler {
	return &CatalogHandler{housing: housing}
}

// RenderHome lists the catalog, narrowed by the optional query parameters
// status, type, location, min_price, max_price, min_bedrooms and min_rating.
// Unparseable numbers are ignored.
func (h *CatalogHandler) RenderHome(c *gin.Context) (any, error) {
	var preds []catalog.Predicate

	if v := c.Query("status"); v != "" {
		preds = append(preds, catalog.ByStatus(v))
	}
	if v := c.Query("type"); v != "" {
		preds = append(preds, catalog.ByType(v))
	}
	if v := c.Query("location"); v != "" {
		preds = append(preds, catalog.LocationContains(v))
	}

	minPrice, maxPrice := -1.0, -1.0
	if v := c.Query("min_price"); v != "" {
		if p, err := strconv.ParseFloat(v, 64); err == nil {
			minPrice = p
		}
	}
	if v := c.Query("max_price"); v != "" {
		if p, err := strconv.ParseFloat(v, 64); err == nil {
			maxPrice = p
		}
	}
	if minPrice >= 0 || maxPrice >= 0 {
		preds = append(preds, catalog.PriceBetween(minPrice, maxPrice))
	}

	if v := c.Query("min_bedrooms"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			preds = append(preds, catalog.MinBedrooms(n))
		}
	}
	if v := c.Query("min_rating"); v != "" {
		if r, err := strconv.ParseFloat(v, 64); err == nil {
			preds = append(preds, catalog.MinRating(r))
		}
	}

	listings := h.housing.Filter(catalog.All(preds...))
	return HomeData{Listings: listings, Count: len(listings)}, nil
}
