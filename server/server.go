package server

import (
	"agroyield-server/confs"
	"agroyield-server/db"
	httpHandler "agroyield-server/handlers/http"
	"agroyield-server/middleware"
	"agroyield-server/refdata"
	"agroyield-server/repositories"
	"agroyield-server/services"
	"agroyield-server/usecases"
	"agroyield-server/weather"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Server struct {
	app *gin.Engine
	db  db.Database
}

func NewServer(database db.Database) *Server {
	return &Server{
		app: gin.Default(),
		db:  database,
	}
}

func (s *Server) Start() {
	// Setup CORS middleware
	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	s.app.Use(cors.New(config))

	// Setup healthcheck route
	s.app.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "OK",
		})
	})

	// Initialize repositories
	predictionRepo := repositories.NewPredictionGormRepository(s.db)
	userRepo := repositories.NewUserGormRepository(s.db)

	// Reference tables and the weather provider
	refSource := refdata.NewCSVSource(confs.YieldTablePath(), confs.PesticideTablePath())
	weatherClient := weather.NewOpenWeatherClient(confs.OpenWeatherAPIKey())

	// Initialize use cases
	predictionUseCase := usecases.NewPredictionUseCase(predictionRepo, refSource)
	advisoryUseCase := usecases.NewAdvisoryUseCase(predictionRepo, weatherClient, refSource)
	reportService := services.NewReportService(predictionRepo, weatherClient, refSource)

	// Initialize handlers
	jwtSecret := confs.JWTSecret()
	authHandler := httpHandler.NewAuthHandler(userRepo, jwtSecret)
	predictionHandler := httpHandler.NewPredictionHandler(predictionUseCase)
	advisoryHandler := httpHandler.NewAdvisoryHandler(advisoryUseCase, reportService)

	// Setup API routes
	api := s.app.Group("/api/v1")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/forgot-password", authHandler.ForgotPassword)
			auth.POST("/reset-password", authHandler.ResetPassword)
		}

		// Prediction routes (authenticated)
		predictions := api.Group("/predictions", middleware.Auth(jwtSecret))
		{
			predictions.POST("", predictionHandler.CreatePrediction)
			predictions.GET("", predictionHandler.ListPredictions)
			predictions.GET("/:id", predictionHandler.GetPrediction)
			predictions.GET("/:id/soil", advisoryHandler.GetSoilProfile)
			predictions.GET("/:id/weather", advisoryHandler.GetWeather)
			predictions.GET("/:id/irrigation", advisoryHandler.GetIrrigation)
			predictions.GET("/:id/pesticides", advisoryHandler.GetPesticides)
			predictions.GET("/:id/report", advisoryHandler.GetReport)
		}
	}

	if err := s.app.Run(confs.ListenAddr()); err != nil {
		panic(err)
	}
}
