package catalog

import (
	"bytes"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"griya/mdp/internal/models"
)

func ids(items []models.Housing) []int {
	out := make([]int, 0, len(items))
	for _, h := range items {
		out = append(out, h.ID)
	}
	return out
}

func seedOf(idList ...int) []models.Housing {
	seed := make([]models.Housing, 0, len(idList))
	for _, id := range idList {
		seed = append(seed, models.Housing{ID: id, Title: "House", Price: float64(id) * 100})
	}
	return seed
}

func quietLogger() *log.Logger {
	return log.New(&bytes.Buffer{}, "", 0)
}

func TestInitialize_CopiesSeed(t *testing.T) {
	seed := seedOf(1, 2, 3)
	s := Initialize(seed, WithLogger(quietLogger()))

	seed[0].ID = 42
	assert.Equal(t, []int{1, 2, 3}, ids(s.Items()))
	assert.Equal(t, 3, s.Len())
}

func TestFilter_PreservesOrderAndStore(t *testing.T) {
	s := Initialize(seedOf(5, 1, 4, 2, 3), WithLogger(quietLogger()))

	even := s.Filter(func(h models.Housing) bool { return h.ID%2 == 0 })
	assert.Equal(t, []int{4, 2}, ids(even))
	assert.Equal(t, []int{5, 1, 4, 2, 3}, ids(s.Items()))

	none := s.Filter(func(models.Housing) bool { return false })
	assert.NotNil(t, none)
	assert.Empty(t, none)

	assert.Equal(t, []int{5, 1, 4, 2, 3}, ids(s.Filter(nil)))
}

func TestFilter_OnEmptyStore(t *testing.T) {
	s := Initialize[models.Housing](nil, WithLogger(quietLogger()))
	assert.Empty(t, s.Filter(func(models.Housing) bool { return true }))
}

func TestFilter_PredicateMayReadStore(t *testing.T) {
	s := Initialize(seedOf(1, 2, 3), WithLogger(quietLogger()))

	done := make(chan []models.Housing, 1)
	go func() {
		done <- s.Filter(func(h models.Housing) bool {
			_, ok := s.Find(h.ID + 1)
			return ok && s.Len() == 3
		})
	}()

	select {
	case got := <-done:
		assert.Equal(t, []int{1, 2}, ids(got))
	case <-time.After(2 * time.Second):
		t.Fatal("Filter blocked while the predicate read the store")
	}
}

func TestDeleteByID_RemovesMatch(t *testing.T) {
	s := Initialize(seedOf(1, 2, 3), WithLogger(quietLogger()))

	assert.True(t, s.DeleteByID(2))
	assert.Equal(t, []int{1, 3}, ids(s.Items()))
}

func TestDeleteByID_AbsentIsNoOp(t *testing.T) {
	s := Initialize(seedOf(1), WithLogger(quietLogger()))

	assert.False(t, s.DeleteByID(99))
	assert.Equal(t, []int{1}, ids(s.Items()))
}

func TestDeleteByID_DuplicateRemovesFirstOnly(t *testing.T) {
	seed := seedOf(1, 2, 2, 3)
	seed[2].Title = "Second copy"
	s := Initialize(seed, WithLogger(quietLogger()))

	assert.True(t, s.DeleteByID(2))
	items := s.Items()
	assert.Equal(t, []int{1, 2, 3}, ids(items))
	assert.Equal(t, "Second copy", items[1].Title)
}

func TestDeleteByID_LogsRemovedID(t *testing.T) {
	var buf bytes.Buffer
	s := Initialize(seedOf(1, 2), WithName("properties"), WithLogger(log.New(&buf, "", 0)))

	s.DeleteByID(2)
	s.DeleteByID(99)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 1)
	assert.Equal(t, "properties: deleted entity 2", lines[0])
}

func TestInitialize_IndependentStores(t *testing.T) {
	seed := seedOf(1, 2, 3)
	a := Initialize(seed, WithLogger(quietLogger()))
	b := Initialize(seed, WithLogger(quietLogger()))

	a.DeleteByID(1)

	assert.Equal(t, []int{2, 3}, ids(a.Items()))
	assert.Equal(t, []int{1, 2, 3}, ids(b.Items()))
}

func TestItems_ReturnsCopy(t *testing.T) {
	s := Initialize(seedOf(1, 2), WithLogger(quietLogger()))
	items := s.Items()
	items[0].ID = 100

	found, ok := s.Find(1)
	assert.True(t, ok)
	assert.Equal(t, 1, found.ID)

	_, ok = s.Find(100)
	assert.False(t, ok)
}

func TestStore_HoldsHistoryItems(t *testing.T) {
	s := Initialize(SampleHistory(), WithLogger(quietLogger()))
	assert.True(t, s.DeleteByID(1))
	assert.Equal(t, 1, s.Len())
}
