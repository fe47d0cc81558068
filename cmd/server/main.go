package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pokerplan/backend/internal/config"
	"pokerplan/backend/internal/database"
	"pokerplan/backend/internal/handler"
	"pokerplan/backend/internal/hub"
	"pokerplan/backend/internal/room"
	"pokerplan/backend/internal/store"
	"pokerplan/backend/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	// Swagger imports
	_ "pokerplan/backend/docs" // This is important for swag to find the generated docs

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	config.LoadConfig()
}

// @title           Pokerplan API
// @version         1.0
// @description     Real-time planning poker backend for agile estimation sessions.
// @host            localhost:8080
// @BasePath        /api/v1
func main() {
	// Initialize logger
	var logger zerolog.Logger
	if config.AppConfig.IsDevelopment() {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
			With().
			Timestamp().
			Logger()
	} else {
		logger = zerolog.New(os.Stdout).
			With().
			Timestamp().
			Logger()
	}

	// Connect to the database
	database.Connect(config.AppConfig.DatabaseURL)

	roomService := room.NewService(store.New(database.DB), logger)
	eventHub := hub.NewHub()
	roomHandler := handler.NewRoomHandler(roomService)
	gateway := ws.NewGateway(roomService, eventHub, config.AppConfig.TokenSecret, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Stale rooms are garbage-collected in the background.
	go roomService.RunJanitor(ctx, config.AppConfig.CleanupInterval, config.AppConfig.RoomTTL)

	router := gin.Default()

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Realtime endpoint
	router.GET("/ws", gateway.Handle)

	// API v1 routes
	apiV1 := router.Group("/api/v1")
	{
		roomRoutes := apiV1.Group("/rooms")
		{
			roomRoutes.POST("", roomHandler.CreateRoom)
			roomRoutes.GET("", roomHandler.ListRooms)
			roomRoutes.GET("/:id", roomHandler.GetRoom)
			roomRoutes.POST("/:id/join", roomHandler.JoinRoom)
			roomRoutes.POST("/:id/start", roomHandler.StartVoting)
			roomRoutes.POST("/:id/vote", roomHandler.SubmitVote)
			roomRoutes.POST("/:id/reveal", roomHandler.RevealVotes)
			roomRoutes.POST("/:id/reset", roomHandler.ResetVoting)
			roomRoutes.GET("/:id/votes", roomHandler.GetRoomVotes)
		}

		playerRoutes := apiV1.Group("/players")
		{
			playerRoutes.PUT("/:id/connection", roomHandler.UpdateConnection)
			playerRoutes.DELETE("/:id", roomHandler.RemovePlayer)
		}
	}

	srv := &http.Server{
		Addr:    ":" + config.AppConfig.Port,
		Handler: router,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	fmt.Println("Server is running on :" + config.AppConfig.Port)
	fmt.Println("Swagger UI is available at http://localhost:" + config.AppConfig.Port + "/swagger/index.html")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal().Err(err).Msg("server failed")
	}
}
