package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/kiralago/storefront/internal/config"
	"github.com/kiralago/storefront/internal/server/http/handlers"
	"github.com/kiralago/storefront/internal/server/http/middleware"
	"github.com/kiralago/storefront/internal/session"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.StorefrontFacade, sessions session.Store, logger *slog.Logger, cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade, sessions)
	profileHandler := handlers.NewProfileHandler(facade, sessions, cfg.MaxUploadBytes)
	cartHandler := handlers.NewCartHandler(facade)
	checkoutHandler := handlers.NewCheckoutHandler(facade)
	catalogHandler := handlers.NewCatalogHandler(facade)
	contactHandler := handlers.NewContactHandler(logger)

	api := engine.Group("/api")
	api.GET("/products", catalogHandler.List)
	api.GET("/products/:id", catalogHandler.Get)
	api.GET("/category/:slug", catalogHandler.ByCategory)
	api.GET("/new-arrivals", catalogHandler.NewArrivals)
	api.GET("/bestsellers", catalogHandler.Bestsellers)
	api.GET("/offers", catalogHandler.Offers)
	api.GET("/discounted", catalogHandler.Discounted)
	api.POST("/contact", contactHandler.Submit)

	user := api.Group("/user")
	user.POST("/register", authHandler.Register)
	user.POST("/login", authHandler.Login)

	userAuth := user.Group("")
	userAuth.Use(middleware.SessionRequired(sessions))
	userAuth.POST("/logout", authHandler.Logout)
	userAuth.GET("/profile", profileHandler.Get)
	userAuth.PUT("/profile", profileHandler.Update)
	userAuth.POST("/profile/password", profileHandler.ChangePassword)
	userAuth.POST("/profile/picture", profileHandler.UploadPicture)

	cart := api.Group("/cart")
	cart.Use(middleware.SessionRequired(sessions))
	cart.GET("", cartHandler.View)
	cart.DELETE("", cartHandler.Clear)
	cart.POST("/items/:productID", cartHandler.Add)
	cart.DELETE("/items/:lineID", cartHandler.Remove)

	checkout := api.Group("/checkout")
	checkout.Use(middleware.SessionRequired(sessions))
	checkout.GET("", checkoutHandler.Review)
	checkout.POST("", checkoutHandler.Submit)

	// uploaded pictures are served straight from disk; the s3 backend
	// publishes absolute URLs instead
	if cfg.MediaBackend == config.MediaBackendDisk {
		engine.Static(cfg.MediaBaseURL, cfg.UploadDir)
	}

	return engine
}
