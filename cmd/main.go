package main

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/eduportal/config"
	_ "github.com/lshigami/eduportal/docs" // Swagger docs
	"github.com/lshigami/eduportal/internal/auth"
	"github.com/lshigami/eduportal/internal/controller"
	authctrl "github.com/lshigami/eduportal/internal/controller/auth"
	catalogctrl "github.com/lshigami/eduportal/internal/controller/catalog"
	navctrl "github.com/lshigami/eduportal/internal/controller/navigation"
	schoolctrl "github.com/lshigami/eduportal/internal/controller/school"
	studentctrl "github.com/lshigami/eduportal/internal/controller/student"
	"github.com/lshigami/eduportal/internal/database"
	"github.com/lshigami/eduportal/internal/logger"
	"github.com/lshigami/eduportal/internal/repository"
	"github.com/lshigami/eduportal/internal/service"
	"github.com/lshigami/eduportal/internal/validation"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Education Portal API
// @version 1.0
// @description Backend for the education portal: school rosters, papers, Learning Mode and attempts.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
			auth.NewTokenManager,
		),

		fx.Provide(
			repository.NewUserRepository,
			repository.NewSessionRepository,
			repository.NewStudentRepository,
			repository.NewSubjectRepository,
			repository.NewQuestionRepository,
			repository.NewPaperRepository,
			repository.NewAttemptRepository,
		),

		fx.Provide(
			NewTextGrader,
			service.NewGrader,
			service.NewScoreConverterService,
			service.NewAuthService,
			service.NewStudentService,
			service.NewCatalogService,
			service.NewLearningService,
			service.NewPaperService,
			service.NewAttemptService,
			service.NewReportService,
			service.NewNavigationService,
		),

		fx.Provide(
			authctrl.NewAuthController,
			schoolctrl.NewSchoolController,
			studentctrl.NewStudentController,
			catalogctrl.NewCatalogController,
			navctrl.NewNavigationController,
		),

		fx.Invoke(PrepareDatabase),
		fx.Invoke(RegisterRoutesAndStartServer),
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

// NewTextGrader provides the free-text grader and closes it with the application.
func NewTextGrader(lc fx.Lifecycle, cfg *config.Config) (service.TextGrader, error) {
	grader, err := service.NewTextGrader(cfg)
	if err != nil {
		return nil, err
	}
	if closer, ok := grader.(io.Closer); ok {
		lc.Append(fx.Hook{OnStop: func(context.Context) error { return closer.Close() }})
	}
	return grader, nil
}

func NewGinEngine(cfg *config.Config) *gin.Engine {
	logger.Configure(cfg)
	gin.SetMode(cfg.Server.GinMode)
	validation.Init()

	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// PrepareDatabase migrates the schema and loads the demo data when enabled.
func PrepareDatabase(db *gorm.DB, cfg *config.Config) error {
	if err := database.AutoMigrate(db); err != nil {
		return err
	}
	if !cfg.Seed.DemoData {
		return nil
	}
	return database.Seed(db, cfg.Seed.Password)
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	authService service.AuthService,
	authCtrl *authctrl.AuthController,
	schoolCtrl *schoolctrl.SchoolController,
	studentCtrl *studentctrl.StudentController,
	catalogCtrl *catalogctrl.CatalogController,
	navCtrl *navctrl.NavigationController,
) {
	apiV1 := router.Group("/api/v1")
	authCtrl.RegisterRoutes(apiV1)
	navCtrl.RegisterRoutes(apiV1.Group("", controller.OptionalAuth(authService)))

	authenticated := apiV1.Group("", controller.Authenticate(authService))
	catalogCtrl.RegisterRoutes(authenticated)
	schoolCtrl.RegisterRoutes(authenticated)
	studentCtrl.RegisterRoutes(authenticated)

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Education portal API starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
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
