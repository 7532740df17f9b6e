package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"griya/mdp/internal/routes"
)

// ViewDocument is the JSON body of every rendered page.
type ViewDocument struct {
	View       string `json:"view"`
	Title      string `json:"title,omitempty"`
	Path       string `json:"path"`
	Redirected bool   `json:"redirected,omitempty"`
	Data       any    `json:"data"`
}

// ViewRenderer produces the data of one view.
type ViewRenderer func(c *gin.Context) (any, error)

// StaticView renders the same data on every request.
func StaticView(data any) ViewRenderer {
	return func(*gin.Context) (any, error) { return data, nil }
}

// ViewHandler resolves request paths through a route table and renders the
// selected view.
type ViewHandler struct {
	table     routes.Table
	renderers map[string]ViewRenderer
}

// NewViewHandler creates a ViewHandler for table.
func NewViewHandler(table routes.Table) *ViewHandler {
	return &ViewHandler{
		table:     table,
		renderers: make(map[string]ViewRenderer),
	}
}

// Register sets the renderer of a view.
func (h *ViewHandler) Register(view string, r ViewRenderer) {
	h.renderers[view] = r
}

// Paths returns the paths the route table serves.
func (h *ViewHandler) Paths() []string {
	return h.table.Paths()
}

// Serve handles GET requests for any route table path.
func (h *ViewHandler) Serve(c *gin.Context) {
	res, err := h.table.Resolve(c.Request.URL.Path)
	if err != nil {
		if errors.Is(err, routes.ErrNoRoute) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
		} else {
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve page"})
		}
		return
	}

	render, ok := h.renderers[res.View]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
		return
	}

	data, err := render(c)
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render page"})
		return
	}

	c.JSON(http.StatusOK, ViewDocument{
		View:       res.View,
		Title:      res.Title,
		Path:       res.Path,
		Redirected: res.Redirected,
		Data:       data,
	})
}
