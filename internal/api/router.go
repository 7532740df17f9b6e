package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"griya/mdp/internal/api/handlers"
	"griya/mdp/internal/api/middleware"
	"griya/mdp/internal/config"
	"griya/mdp/internal/db"
	"griya/mdp/internal/models"
	"griya/mdp/internal/routes"
)

// SetupRouter configures and returns the Gin engine serving the app's views.
// profile may be nil for apps without a profile page.
func SetupRouter(ctx context.Context, cfg *config.Config, conn *db.Connection, views *handlers.ViewHandler, profile *handlers.ProfileHandler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	// Apply global middleware first (order matters)
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigin))
	r.Use(middleware.NewRateLimiter(ctx, cfg.RateLimitRefillRate, cfg.RateLimitBucketSize).Limit())

	seen := make(map[string]bool)
	for _, path := range views.Paths() {
		// Later duplicates never match; the table is first-match.
		if seen[path] {
			continue
		}
		seen[path] = true
		r.GET(path, views.Serve)
	}
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
	})

	if profile != nil {
		r.POST("/profile/:collection/:id/delete", profile.RequestDelete)
		r.POST("/confirmations/:collection/:token", profile.ConfirmDelete)
		r.DELETE("/confirmations/:collection/:token", profile.DeclineDelete)
	}

	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	r.GET("/healthz", func(c *gin.Context) {
		state := "disabled"
		if conn != nil {
			state = conn.State().String()
		}
		c.JSON(http.StatusOK, gin.H{"database": state})
	})

	return r
}

// NewViews creates the view handler over the route table of app.
func NewViews(app string) (*handlers.ViewHandler, error) {
	table, err := routes.ForApp(app)
	if err != nil {
		return nil, err
	}
	return handlers.NewViewHandler(table), nil
}

// RegisterCatalogViews wires the pages of the real-estate app.
func RegisterCatalogViews(views *handlers.ViewHandler, catalogHandler *handlers.CatalogHandler, profile *handlers.ProfileHandler) {
	views.Register(routes.ViewHome, catalogHandler.RenderHome)
	views.Register(routes.ViewProfile, profile.RenderProfile)
	views.Register(routes.ViewLogin, handlers.StaticView(handlers.LoginPage()))
	views.Register(routes.ViewRegister, handlers.StaticView(handlers.RegisterPage()))
	views.Register(routes.ViewContact, handlers.StaticView(handlers.CatalogContactPage()))
}

// RegisterCVViews wires the pages of the CV app.
func RegisterCVViews(views *handlers.ViewHandler, cv models.CV) {
	views.Register(routes.ViewCV, handlers.StaticView(cv))
	views.Register(routes.ViewContact, handlers.StaticView(cv.Contact))
}
