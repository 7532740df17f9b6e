package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"griya/mdp/internal/models"
)

func TestFilters_SampleHousing(t *testing.T) {
	s := Initialize(SampleHousing(), WithLogger(quietLogger()))

	tests := []struct {
		name string
		pred func(models.Housing) bool
		want []int
	}{
		{"status", All(ByStatus("available")), []int{1, 2, 4, 5}},
		{"type", All(ByType("rumah")), []int{1, 4}},
		{"location", All(LocationContains("palembang")), []int{1, 4}},
		{"price range", All(PriceBetween(400000000, 900000000)), []int{1, 2, 5}},
		{"open upper bound", All(PriceBetween(1000000000, -1)), []int{3}},
		{"bedrooms", All(MinBedrooms(3)), []int{1, 3, 5}},
		{"rating", All(MinRating(4.6)), []int{2, 3}},
		{"combined", All(ByStatus("Available"), LocationContains("Palembang"), MinBedrooms(3)), []int{1}},
		{"no predicates", All(), []int{1, 2, 3, 4, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(s.Filter(tt.pred)))
		})
	}
	assert.Equal(t, 5, s.Len())
}
