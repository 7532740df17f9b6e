package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"griya/mdp/internal/api/handlers"
	"griya/mdp/internal/catalog"
	"griya/mdp/internal/routes"
)

func setupProfileEngine(profile *handlers.ProfileHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	views := handlers.NewViewHandler(routes.CatalogRoutes())
	views.Register(routes.ViewProfile, profile.RenderProfile)

	r := gin.New()
	r.GET("/profile", views.Serve)
	r.POST("/profile/:collection/:id/delete", profile.RequestDelete)
	r.POST("/confirmations/:collection/:token", profile.ConfirmDelete)
	r.DELETE("/confirmations/:collection/:token", profile.DeclineDelete)
	return r
}

func getProfile(t *testing.T, r *gin.Engine) handlers.ProfileData {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/profile", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var doc struct {
		Data handlers.ProfileData `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	return doc.Data
}

func requestDelete(t *testing.T, r *gin.Engine, collection, id string) (int, catalog.Pending) {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/profile/"+collection+"/"+id+"/delete", nil)
	r.ServeHTTP(w, req)

	var pending catalog.Pending
	if w.Code == http.StatusAccepted {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &pending))
	}
	return w.Code, pending
}

func TestProfileHandler_RenderProfile(t *testing.T) {
	r := setupProfileEngine(newProfileHandler())

	data := getProfile(t, r)
	assert.Equal(t, "John Doe", data.User.Name)
	assert.True(t, data.User.IsPremium)
	assert.Equal(t, 3, data.Stats.Properties)
	assert.Equal(t, 2, data.Stats.Favorites)
	assert.Equal(t, 4.8, data.Stats.Rating)
	assert.Len(t, data.Social, 4)
	assert.Equal(t, []int{1, 2, 3}, housingIDs(data.Properties))
	assert.Equal(t, []int{101, 102}, housingIDs(data.Favorites))
	assert.Len(t, data.History, 2)
}

func TestProfileHandler_ConfirmDelete(t *testing.T) {
	r := setupProfileEngine(newProfileHandler())

	code, pending := requestDelete(t, r, handlers.CollectionProperties, "2")
	require.Equal(t, http.StatusAccepted, code)
	assert.Equal(t, 2, pending.ID)
	assert.NotEmpty(t, pending.Token)

	// Nothing is removed before confirmation.
	assert.Equal(t, []int{1, 2, 3}, housingIDs(getProfile(t, r).Properties))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/confirmations/properties/"+pending.Token, nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"deleted": true}`, w.Body.String())

	data := getProfile(t, r)
	assert.Equal(t, []int{1, 3}, housingIDs(data.Properties))
	assert.Equal(t, 2, data.Stats.Properties)

	// A token is answered once.
	w2 := httptest.NewRecorder()
	req2, _ := http.NewRequest("POST", "/confirmations/properties/"+pending.Token, nil)
	r.ServeHTTP(w2, req2)
	assert.Equal(t, http.StatusNotFound, w2.Code)
}

func TestProfileHandler_ConfirmDeleteAbsentID(t *testing.T) {
	r := setupProfileEngine(newProfileHandler())

	code, pending := requestDelete(t, r, handlers.CollectionFavorites, "999")
	require.Equal(t, http.StatusAccepted, code)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/confirmations/favorites/"+pending.Token, nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"deleted": false}`, w.Body.String())
	assert.Equal(t, []int{101, 102}, housingIDs(getProfile(t, r).Favorites))
}

func TestProfileHandler_DeclineDelete(t *testing.T) {
	r := setupProfileEngine(newProfileHandler())

	code, pending := requestDelete(t, r, handlers.CollectionProperties, "1")
	require.Equal(t, http.StatusAccepted, code)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/confirmations/properties/"+pending.Token, nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, []int{1, 2, 3}, housingIDs(getProfile(t, r).Properties))
}

func TestProfileHandler_TokenBoundToCollection(t *testing.T) {
	r := setupProfileEngine(newProfileHandler(catalog.WithConfirmations(catalog.NewMemoryConfirmations())))

	code, pending := requestDelete(t, r, handlers.CollectionProperties, "1")
	require.Equal(t, http.StatusAccepted, code)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/confirmations/favorites/"+pending.Token, nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, []int{1, 2, 3}, housingIDs(getProfile(t, r).Properties))

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("POST", "/confirmations/properties/"+pending.Token, nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"deleted": true}`, w.Body.String())
	assert.Equal(t, []int{2, 3}, housingIDs(getProfile(t, r).Properties))
}

func TestProfileHandler_BadRequests(t *testing.T) {
	r := setupProfileEngine(newProfileHandler())

	code, _ := requestDelete(t, r, "listings", "1")
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = requestDelete(t, r, handlers.CollectionProperties, "abc")
	assert.Equal(t, http.StatusBadRequest, code)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/confirmations/history/unknown-token", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProfileHandler_ConfirmationStoreFailure(t *testing.T) {
	mockConfirmations := new(MockConfirmations)
	mockConfirmations.On("Put", mock.Anything, mock.AnythingOfType("catalog.Pending")).Return(errors.New("redis down"))
	mockConfirmations.On("Take", mock.Anything, handlers.CollectionProperties, "tok").Return(catalog.Pending{}, errors.New("redis down"))
	r := setupProfileEngine(newProfileHandler(catalog.WithConfirmations(mockConfirmations)))

	code, _ := requestDelete(t, r, handlers.CollectionProperties, "1")
	assert.Equal(t, http.StatusInternalServerError, code)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/confirmations/properties/tok", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	assert.Equal(t, []int{1, 2, 3}, housingIDs(getProfile(t, r).Properties))
	mockConfirmations.AssertExpectations(t)
}
