package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"griya/mdp/internal/utils"
)

func TestMongoSource_SeedAndLoad(t *testing.T) {
	database := utils.SetupTestDB(t, "testdb_catalog_seed", HousingCollection)
	ctx := context.Background()

	inserted, skipped, err := SeedMongo(ctx, database, SampleHousing())
	require.NoError(t, err)
	assert.Equal(t, len(SampleHousing()), inserted)
	assert.Zero(t, skipped)

	// Seeding again skips every existing id.
	inserted, skipped, err = SeedMongo(ctx, database, SampleHousing())
	require.NoError(t, err)
	assert.Zero(t, inserted)
	assert.Equal(t, len(SampleHousing()), skipped)

	loaded, err := NewMongoSource(database).Housing(ctx)
	require.NoError(t, err)
	assert.Equal(t, SampleHousing(), loaded)
}

func TestStaticSource(t *testing.T) {
	loaded, err := StaticSource{}.Housing(context.Background())
	require.NoError(t, err)
	assert.Equal(t, SampleHousing(), loaded)
}

func TestSampleHousing_UniqueIDs(t *testing.T) {
	for name, items := range map[string][]int{
		"housing":    ids(SampleHousing()),
		"properties": ids(SampleProperties()),
		"favorites":  ids(SampleFavorites()),
	} {
		seen := make(map[int]bool)
		for _, id := range items {
			assert.False(t, seen[id], "%s: duplicate id %d", name, id)
			seen[id] = true
		}
	}
}
