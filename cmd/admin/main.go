package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"onexhib-admin/internal/backend"
	"onexhib-admin/internal/config"
	"onexhib-admin/internal/domain/auth"
	"onexhib-admin/internal/domain/company"
	"onexhib-admin/internal/domain/exhibition"
	"onexhib-admin/internal/domain/organiser"
	"onexhib-admin/internal/domain/product"
	"onexhib-admin/internal/domain/servicedir"
	"onexhib-admin/internal/location"
	"onexhib-admin/internal/middleware"
	"onexhib-admin/internal/monitoring"
	jwtsvc "onexhib-admin/internal/pkg/jwt"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	api := backend.New(backend.Config{
		BaseURL: cfg.BackendBaseURL,
		Timeout: cfg.BackendTimeout,
	})
	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	authHandler := auth.NewHandler(auth.NewService(api, j))
	organiserHandler := organiser.NewHandler(organiser.NewService(organiser.NewRepository(api)))
	exhibitionHandler := exhibition.NewHandler(exhibition.NewService(exhibition.NewRepository(api)))
	companyHandler := company.NewHandler(company.NewService(company.NewRepository(api), cfg.PreviewDir))
	productHandler := product.NewHandler(product.NewService(product.NewRepository(api)))
	serviceHandler := servicedir.NewHandler(servicedir.NewService(servicedir.NewRepository(api)))
	locationHandler := location.NewHandler()

	if cfg.AppEnv == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorLogger())
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))
	r.Use(monitoring.RequestMetrics())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", monitoring.Handler())

	apiGroup := r.Group("/api")
	{
		// public
		authHandler.RegisterRoutes(apiGroup)
		organiserHandler.RegisterRoutes(apiGroup)
		locationHandler.RegisterRoutes(apiGroup)

		// organiser screens
		protected := apiGroup.Group("/")
		protected.Use(middleware.Auth(j))
		{
			exhibitionHandler.RegisterRoutes(protected)
			companyHandler.RegisterRoutes(protected)
			productHandler.RegisterRoutes(protected)
			serviceHandler.RegisterRoutes(protected)
		}

		// admin screens
		admin := apiGroup.Group("/admin")
		admin.Use(middleware.Auth(j), middleware.AdminOnly())
		{
			organiserHandler.RegisterAdminRoutes(admin)
			exhibitionHandler.RegisterAdminRoutes(admin)
			companyHandler.RegisterAdminRoutes(admin)
			productHandler.RegisterAdminRoutes(admin)
		}
	}

	log.Printf("level=info msg=\"admin gateway listening\" port=%s backend=%s", cfg.Port, cfg.BackendBaseURL)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
