package main

import (
	"log"

	"github.com/BriyanNicho/tiktok-quiz/internal/config"
	"github.com/BriyanNicho/tiktok-quiz/internal/database"
	"github.com/BriyanNicho/tiktok-quiz/internal/handlers"
	"github.com/BriyanNicho/tiktok-quiz/internal/middleware"
	"github.com/BriyanNicho/tiktok-quiz/internal/services"
	"github.com/BriyanNicho/tiktok-quiz/internal/tiktok"
	"github.com/BriyanNicho/tiktok-quiz/internal/ws"

	_ "github.com/BriyanNicho/tiktok-quiz/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           TikTok Live Quiz Relay API
// @version         1.0
// @description     Relay server for a live-stream quiz: bridges TikTok Live chat and gift events to control-panel and overlay clients, keeps the session state and leaderboards durable.
// @host            localhost:3001
// @BasePath        /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter "Bearer {token}"

func main() {
	cfg := config.Load()

	db := database.Connect(cfg)
	database.AutoMigrate(db)

	hub := ws.NewHub()

	stateService, err := services.NewStateService(db)
	if err != nil {
		log.Fatalf("failed to load state: %v", err)
	}
	pintar := services.NewScoreLedger(db, "pintar_scores")
	sultan := services.NewScoreLedger(db, "sultan_scores")
	scoring := services.NewScoringEngine(stateService, pintar, sultan)
	questionService := services.NewQuestionService(db)
	authService := services.NewAuthService(cfg.AdminPassword, cfg.JWTSecret)

	feedHandlers := tiktok.Handlers{
		OnChat: func(ev tiktok.ChatEvent) {
			hub.Broadcast(ws.ChatMessage{Type: ws.TypeChat, Data: ev})

			entries, err := scoring.HandleChat(ev)
			if err != nil {
				log.Printf("scoring: chat: %v", err)
				return
			}
			if entries != nil {
				hub.Broadcast(ws.LedgerMessage{Type: ws.TypeUpdatePintar, PintarScores: entries})
			}
		},
		OnGift: func(ev tiktok.GiftEvent) {
			entries, err := scoring.HandleGift(ev)
			if err != nil {
				log.Printf("scoring: gift: %v", err)
				return
			}
			if entries == nil {
				// mid-streak, wait for the closing event
				return
			}
			hub.Broadcast(ws.GiftMessage{Type: ws.TypeGift, Data: ev, SultanScores: entries})
			hub.Broadcast(ws.LedgerMessage{Type: ws.TypeUpdateSultan, SultanScores: entries})
		},
		OnRoomUser: func(ev tiktok.RoomUserEvent) {
			hub.Broadcast(ws.ViewerCountMessage{Type: ws.TypeViewerCount, Count: ev.ViewerCount})
		},
	}

	factory := func(h tiktok.Handlers) tiktok.Connector {
		return tiktok.NewBridgeConnector(cfg.BridgeURL, h)
	}
	supervisor := tiktok.NewSupervisor(factory, feedHandlers, hub, stateService)

	hub.SetSnapshotFunc(func() interface{} {
		pintarScores, err := pintar.List()
		if err != nil {
			log.Printf("sync: pintar scores: %v", err)
		}
		sultanScores, err := sultan.List()
		if err != nil {
			log.Printf("sync: sultan scores: %v", err)
		}
		return ws.SyncMessage{
			Type:         ws.TypeSync,
			State:        stateService.Get(),
			PintarScores: pintarScores,
			SultanScores: sultanScores,
			TikTokStatus: supervisor.Status(),
		}
	})

	authHandler := handlers.NewAuthHandler(authService)
	stateHandler := handlers.NewStateHandler(stateService, scoring, pintar, sultan, hub)
	questionHandler := handlers.NewQuestionHandler(questionService)
	wsHandler := handlers.NewWSHandler(hub, stateService, scoring, pintar, supervisor)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/ws", wsHandler.HandleWebSocket)

	api := r.Group("/api")
	{
		api.POST("/auth/login", authHandler.Login)
		api.GET("/state", stateHandler.GetState)
		api.POST("/reset", middleware.JWTAuth(authService), stateHandler.Reset)

		questions := api.Group("/questions")
		questions.Use(middleware.JWTAuth(authService))
		{
			questions.GET("", questionHandler.ListQuestions)
			questions.POST("", questionHandler.CreateQuestion)
			questions.GET("/export", questionHandler.ExportQuestions)
			questions.POST("/import", questionHandler.ImportQuestions)
			questions.PUT("/:id", questionHandler.UpdateQuestion)
			questions.DELETE("/:id", questionHandler.DeleteQuestion)
		}
	}

	if cfg.AutoResume {
		if user := stateService.Get().ConnectedUser; user != nil && *user != "" {
			log.Printf("resuming live subscription for @%s", *user)
			supervisor.Start(*user)
		}
	}

	log.Printf("server starting on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
