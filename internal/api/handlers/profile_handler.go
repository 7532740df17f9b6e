package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"griya/mdp/internal/catalog"
	"griya/mdp/internal/models"
)

// Profile collections that support deletion.
const (
	CollectionProperties = "properties"
	CollectionFavorites  = "favorites"
	CollectionHistory    = "history"
)

// ProfileData is the content of the profile page.
type ProfileData struct {
	User       models.Profile       `json:"user"`
	Stats      models.ProfileStats  `json:"stats"`
	Social     []models.SocialLink  `json:"socialLinks"`
	Properties []models.Housing     `json:"properties"`
	Favorites  []models.Housing     `json:"favorites"`
	History    []models.HistoryItem `json:"history"`
}

// ProfileHandler renders the profile page and runs the confirm-before-delete
// flow for its collections.
type ProfileHandler struct {
	user       models.Profile
	rating     float64
	social     models.SocialLinks
	properties *catalog.Store[models.Housing]
	favorites  *catalog.Store[models.Housing]
	history    *catalog.Store[models.HistoryItem]
	deleters   map[string]catalog.Deleter
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(
	user models.Profile,
	stats models.ProfileStats,
	social models.SocialLinks,
	properties *catalog.Store[models.Housing],
	favorites *catalog.Store[models.Housing],
	history *catalog.Store[models.HistoryItem],
) *ProfileHandler {
	return &ProfileHandler{
		user:       user,
		rating:     stats.Rating,
		social:     social,
		properties: properties,
		favorites:  favorites,
		history:    history,
		deleters: map[string]catalog.Deleter{
			CollectionProperties: properties,
			CollectionFavorites:  favorites,
			CollectionHistory:    history,
		},
	}
}

// RenderProfile is the ViewRenderer of the profile page.
func (h *ProfileHandler) RenderProfile(*gin.Context) (any, error) {
	properties := h.properties.Items()
	favorites := h.favorites.Items()
	stats := models.ProfileStats{
		Properties: len(properties),
		Favorites:  len(favorites),
		Rating:     h.rating,
	}
	return ProfileData{
		User:       h.user,
		Stats:      stats,
		Social:     h.social.Links(),
		Properties: properties,
		Favorites:  favorites,
		History:    h.history.Items(),
	}, nil
}

func (h *ProfileHandler) deleter(c *gin.Context) (catalog.Deleter, bool) {
	d, ok := h.deleters[c.Param("collection")]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown collection"})
	}
	return d, ok
}

// RequestDelete handles POST /profile/:collection/:id/delete.
// Nothing is removed until the returned token is confirmed.
func (h *ProfileHandler) RequestDelete(c *gin.Context) {
	d, ok := h.deleter(c)
	if !ok {
		return
	}
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	pending, err := d.RequestDelete(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to request delete"})
		return
	}
	c.JSON(http.StatusAccepted, pending)
}

// ConfirmDelete handles POST /confirmations/:collection/:token.
func (h *ProfileHandler) ConfirmDelete(c *gin.Context) {
	d, ok := h.deleter(c)
	if !ok {
		return
	}
	deleted, err := d.ConfirmDelete(c.Request.Context(), c.Param("token"))
	if err != nil {
		writeConfirmationError(c, err)
		return
	}
	if !deleted {
		log.Printf("Delete confirmed for %s but nothing matched", c.Param("collection"))
	}
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

// DeclineDelete handles DELETE /confirmations/:collection/:token.
func (h *ProfileHandler) DeclineDelete(c *gin.Context) {
	d, ok := h.deleter(c)
	if !ok {
		return
	}
	if err := d.DeclineDelete(c.Request.Context(), c.Param("token")); err != nil {
		writeConfirmationError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func writeConfirmationError(c *gin.Context, err error) {
	if errors.Is(err, catalog.ErrUnknownConfirmation) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Confirmation not found or expired"})
		return
	}
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to answer confirmation"})
}
