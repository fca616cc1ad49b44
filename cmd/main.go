package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/securinets-fst/securiquiz/config"
	"github.com/securinets-fst/securiquiz/database"
	_ "github.com/securinets-fst/securiquiz/docs" // generated swagger docs
	adminctrl "github.com/securinets-fst/securiquiz/internal/controller/admin"
	userctrl "github.com/securinets-fst/securiquiz/internal/controller/user"
	"github.com/securinets-fst/securiquiz/internal/logger"
	"github.com/securinets-fst/securiquiz/internal/middleware"
	"github.com/securinets-fst/securiquiz/internal/model"
	"github.com/securinets-fst/securiquiz/internal/repository"
	"github.com/securinets-fst/securiquiz/internal/service"
)

// @title SecuriQuiz API
// @version 1.0
// @description Quiz platform backend: email-verified signup, timed quiz sessions with server-side grading, and admin quiz management.
// @contact.name Securinets FST
// @contact.url https://securinets-fst.tn
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
		),

		fx.Provide(
			repository.NewUserRepository,
			repository.NewQuizRepository,
			repository.NewSessionRepository,
			repository.NewSessionAnswerRepository,
			repository.NewResultRepository,
			repository.NewAdminLogRepository,
		),

		fx.Provide(
			service.NewSystemClock,
			func(cfg *config.Config, clock service.Clock) *service.PendingSignupStore {
				return service.NewPendingSignupStore(
					service.WithClock(clock),
					service.WithCodeTTL(cfg.Signup.CodeTTL),
					service.WithMaxVerifyAttempts(cfg.Signup.MaxVerifyAttempts),
					service.WithLockout(cfg.Signup.Lockout),
				)
			},
			service.NewTokenService,
			service.NewMailSender,
			service.NewAuthService,
			service.NewQuizService,
			service.NewSessionService,
			service.NewAdminService,
		),

		fx.Provide(
			userctrl.NewAuthController,
			userctrl.NewQuizController,
			adminctrl.NewAdminController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

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
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// URL: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	tokens service.TokenService,
	userRepo repository.UserRepository,
	authCtrl *userctrl.AuthController,
	quizCtrl *userctrl.QuizController,
	adminCtrl *adminctrl.AdminController,
) {
	api := router.Group("/api/v1")
	{
		api.POST("/signup", authCtrl.Signup)
		api.POST("/verify", authCtrl.Verify)
		api.POST("/login", authCtrl.Login)
	}

	authed := api.Group("")
	authed.Use(middleware.RequireAuth(tokens, userRepo))
	{
		authed.GET("/quizzes", quizCtrl.GetAllQuizzes)
		authed.GET("/quizzes/:quiz_id", quizCtrl.GetQuizDetails)
		authed.POST("/quizzes/:quiz_id/start", quizCtrl.StartSession)
		authed.POST("/quizzes/:quiz_id/answer", quizCtrl.SaveAnswer)
		authed.POST("/quizzes/:quiz_id/submit", quizCtrl.Submit)
		authed.GET("/my-results", quizCtrl.GetMyResults)
	}

	admin := authed.Group("/admin")
	admin.Use(middleware.RequireAdmin())
	{
		admin.POST("/quizzes", adminCtrl.CreateQuiz)
		admin.DELETE("/quizzes/:quiz_id", adminCtrl.DeleteQuiz)
		admin.GET("/users", adminCtrl.ListUsers)
		admin.POST("/users/:user_id/ban", adminCtrl.BanUser)
		admin.POST("/users/:user_id/unban", adminCtrl.UnbanUser)
		admin.GET("/results", adminCtrl.ListResults)
		admin.GET("/log", adminCtrl.RecentLog)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("SecuriQuiz API server starting on port %s", cfg.Server.Port)
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

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.User{},
		&model.Quiz{},
		&model.Question{},
		&model.Answer{},
		&model.QuizSession{},
		&model.SessionAnswer{},
		&model.QuizResult{},
		&model.AdminLog{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
