package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/egzamapp/config"
	"github.com/lshigami/egzamapp/database"
	_ "github.com/lshigami/egzamapp/docs" // Swagger docs - generated by swag
	"github.com/lshigami/egzamapp/internal/controller"
	adminctrl "github.com/lshigami/egzamapp/internal/controller/admin"
	userctrl "github.com/lshigami/egzamapp/internal/controller/user"
	"github.com/lshigami/egzamapp/internal/logger"
	"github.com/lshigami/egzamapp/internal/middleware"
	"github.com/lshigami/egzamapp/internal/repository"
	"github.com/lshigami/egzamapp/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
)

// @title EgzamApp API
// @version 1.0
// @description Upload exams as JSON, take them and get scored.
// @host localhost:8080
// @BasePath /api
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
		),

		// Repositories
		fx.Provide(
			repository.NewExamRepository,
			repository.NewQuestionRepository,
			repository.NewUserExamRepository,
			repository.NewUserAnswerRepository,
		),

		// Services
		fx.Provide(
			service.NewExamService,
			service.NewAttemptService,
			service.NewDiagnosticsService,
		),

		// Controllers
		fx.Provide(
			userctrl.NewExamController,
			userctrl.NewAttemptController,
			adminctrl.NewDiagnosticsController,
		),

		fx.Invoke(ApplyLogLevel),
		fx.Invoke(database.Migrate),
		fx.Invoke(controller.RegisterRoutes),
		fx.Invoke(StartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")

	stopCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		log.Error().Err(err).Msg("Failed to stop application cleanly")
	}
}

// ApplyLogLevel applies the logging settings that may come from the .env file.
func ApplyLogLevel(cfg *config.Config) {
	if cfg.Log.Pretty {
		logger.UsePretty()
	}
	logger.SetLevel(cfg.Log.Level)
}

func NewGinEngine(cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.Server.GinMode)

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())

	allowAll := len(cfg.Server.AllowOrigins) == 0 ||
		(len(cfg.Server.AllowOrigins) == 1 && cfg.Server.AllowOrigins[0] == "*")
	corsCfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader, cfg.Auth.UserHeader},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if allowAll {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.Server.AllowOrigins
		corsCfg.AllowCredentials = true
	}
	r.Use(cors.New(corsCfg))

	if cfg.Swagger.Enabled {
		// http://localhost:PORT/swagger/index.html
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}

// StartServer binds the HTTP server to the fx lifecycle.
func StartServer(lc fx.Lifecycle, router *gin.Engine, cfg *config.Config) {
	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("EgzamApp server starting on port %s", cfg.Server.Port)
			if cfg.Swagger.Enabled {
				log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			}
			go func() {
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}
