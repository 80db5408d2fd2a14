package app

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"sheweds-backend/internal/config"
	"sheweds-backend/internal/handlers"
	"sheweds-backend/internal/middleware"
	"sheweds-backend/internal/renderer"
	"sheweds-backend/internal/repository"
	"sheweds-backend/internal/sections"
	"sheweds-backend/internal/service"
	"sheweds-backend/pkg/cache"
	"sheweds-backend/pkg/logger"
	"sheweds-backend/pkg/validator"
)

// Application wires the content store, services, handlers and router.
type Application struct {
	cfg    *config.Config
	cache  *cache.Cache
	server *http.Server
}

func New(cfg *config.Config) (*Application, error) {
	store, err := repository.NewDocStore(cfg.DataDir)
	if err != nil {
		return nil, err
	}

	contentCache, err := cache.NewCache(cfg.RedisURL, cfg.EnableRedis && cfg.EnableCache)
	if err != nil {
		logger.Warn("Redis unavailable, continuing without cache", map[string]interface{}{"error": err.Error()})
		contentCache, _ = cache.NewCache("", false)
	}

	pageRepo := repository.NewPageRepository(store)
	productRepo := repository.NewProductRepository(store)
	homeRepo := repository.NewHomeRepository(store)
	heroRepo := repository.NewHeroRepository(store)

	registry := sections.NewDefaultRegistry()
	pageRenderer := renderer.NewPageRenderer(registry, validator.SanitizeHTML)

	uploadService, err := service.NewUploadService(cfg)
	if err != nil {
		return nil, err
	}

	authService := service.NewAuthService(cfg)
	pageService := service.NewPageService(pageRepo, contentCache)
	productService := service.NewProductService(productRepo, uploadService, contentCache)
	homeService := service.NewHomeService(homeRepo, heroRepo, contentCache)
	backupService := service.NewBackupService(pageRepo, productRepo, contentCache)
	editorService := service.NewEditorService(pageService, registry)

	authHandler := handlers.NewAuthHandler(authService)
	pageHandler := handlers.NewPageHandler(pageService)
	productHandler := handlers.NewProductHandler(productService, cfg)
	homeHandler := handlers.NewHomeHandler(homeService)
	uploadHandler := handlers.NewUploadHandler(uploadService)
	backupHandler := handlers.NewBackupHandler(backupService)
	editorHandler := handlers.NewEditorHandler(editorService, registry)
	storefrontHandler := handlers.NewStorefrontHandler(pageService, productService, homeService, editorService, pageRenderer, cfg)

	router := newRouter(cfg, authService, routerHandlers{
		auth:       authHandler,
		pages:      pageHandler,
		products:   productHandler,
		home:       homeHandler,
		uploads:    uploadHandler,
		backups:    backupHandler,
		editor:     editorHandler,
		storefront: storefrontHandler,
	})

	return &Application{
		cfg:   cfg,
		cache: contentCache,
		server: &http.Server{
			Addr:         ":" + cfg.Port,
			Handler:      router,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 0, // SSE streams stay open
			IdleTimeout:  60 * time.Second,
		},
	}, nil
}

type routerHandlers struct {
	auth       *handlers.AuthHandler
	pages      *handlers.PageHandler
	products   *handlers.ProductHandler
	home       *handlers.HomeHandler
	uploads    *handlers.UploadHandler
	backups    *handlers.BackupHandler
	editor     *handlers.EditorHandler
	storefront *handlers.StorefrontHandler
}

func newRouter(cfg *config.Config, authService *service.AuthService, h routerHandlers) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(logger.GinLogger())
	router.Use(middleware.RequestID())
	router.Use(middleware.SecurityHeaders())
	if cfg.EnableMetrics {
		router.Use(middleware.Metrics())
	}
	router.Use(middleware.NewRateLimiter(cfg).Middleware())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if cfg.EnableMetrics {
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	router.Static("/static", "./static")
	router.Static("/uploads", cfg.UploadDir)

	// Public storefront
	router.GET("/", h.storefront.Home)
	router.GET("/page/:slug", h.storefront.Page)
	router.GET("/shop", h.storefront.Shop)
	router.GET("/product/:id", h.storefront.Product)

	v1 := router.Group("/api/v1")
	{
		v1.POST("/auth/login", h.auth.Login)
		v1.POST("/auth/logout", h.auth.Logout)

		v1.GET("/pages", h.pages.List)
		v1.GET("/pages/:slug", h.pages.Get)
		v1.GET("/products", h.products.List)
		v1.GET("/products/:id", h.products.Get)
		v1.GET("/home", h.home.Get)
		v1.GET("/hero-slides", h.home.HeroSlides)
	}

	admin := v1.Group("/admin")
	admin.Use(middleware.AuthRequired(authService))
	{
		admin.GET("/session", h.auth.Session)

		admin.POST("/pages", h.pages.Create)
		admin.PUT("/pages/:slug", h.pages.Save)
		admin.DELETE("/pages/:id", h.pages.Delete)

		admin.POST("/products", h.products.Create)
		admin.PUT("/products/:id", h.products.Update)
		admin.DELETE("/products/:id", h.products.Delete)

		admin.PUT("/home", h.home.Save)
		admin.PUT("/hero-slides", h.home.SaveHeroSlides)

		admin.POST("/upload", h.uploads.Upload)

		admin.GET("/backup", h.backups.Export)
		admin.POST("/backup", h.backups.Import)

		editor := admin.Group("/editor")
		{
			editor.GET("/config", h.editor.Config)
			editor.POST("/open/:slug", h.editor.Open)
			editor.GET("/pages/:id", h.editor.Snapshot)
			editor.GET("/pages/:id/events", h.editor.Events)
			editor.POST("/pages/:id/sections", h.editor.AddSection)
			editor.DELETE("/pages/:id/sections/:sectionId", h.editor.RemoveSection)
			editor.PUT("/pages/:id/content", h.editor.UpdateContent)
			editor.PUT("/pages/:id/content/raw", h.editor.UpdateContentRaw)
			editor.PUT("/pages/:id/settings", h.editor.UpdateSettings)
			editor.PUT("/pages/:id/reorder", h.editor.Reorder)
			editor.PUT("/pages/:id/toggle", h.editor.ToggleSection)
			editor.POST("/pages/:id/select", h.editor.SelectSection)
			editor.POST("/pages/:id/save", h.editor.Save)
		}
	}

	// Editor preview, cookie-authenticated because it loads in an iframe.
	router.GET("/preview/:id", middleware.AuthRequired(authService), h.storefront.Preview)

	return router
}

// Run starts the HTTP server and blocks until it stops.
func (a *Application) Run() error {
	logger.Info("Server listening", map[string]interface{}{"port": a.cfg.Port})
	return a.server.ListenAndServe()
}

// Shutdown drains in-flight requests and releases resources.
func (a *Application) Shutdown(ctx context.Context) error {
	if err := a.cache.Close(); err != nil {
		logger.Warn("Failed to close cache", map[string]interface{}{"error": err.Error()})
	}
	return a.server.Shutdown(ctx)
}
