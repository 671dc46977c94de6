package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"scrawl-notes/scrawl/broker"
	"scrawl-notes/scrawl/config"
	"scrawl-notes/scrawl/database"
	"scrawl-notes/scrawl/middleware"
	"scrawl-notes/scrawl/routes"
	"scrawl-notes/scrawl/services"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()

	db, err := database.Setup(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// The broker is optional: without it the API still serves, only the event
	// dispatch and the websocket feed are disabled.
	brokerAvailable := true
	if err := broker.InitProducer(cfg.NatsURL); err != nil {
		log.Printf("Warning: Failed to initialize broker producer: %v", err)
		log.Println("The application will continue, but event dispatch is disabled")
		brokerAvailable = false
	} else {
		defer broker.CloseProducer()
	}

	var consumer *broker.Consumer
	if brokerAvailable {
		consumer, err = broker.NewConsumer(cfg.NatsURL, broker.EntitySubjects)
		if err != nil {
			log.Printf("Warning: Failed to initialize broker consumer: %v", err)
			consumer = nil
		} else {
			defer consumer.Close()
		}
	}

	webSocketService := services.NewWebSocketService(consumer)
	services.WebSocketServiceInstance = webSocketService
	webSocketService.Start()
	defer webSocketService.Stop()

	if brokerAvailable {
		eventDispatcher := services.NewEventDispatcher(db)
		services.EventDispatcherInstance = eventDispatcher
		eventDispatcher.Start()
		defer eventDispatcher.Stop()
	} else {
		log.Println("Event dispatcher is disabled due to broker unavailability")
	}

	authService := services.NewAuthService(cfg.JWTSecret, cfg.JWTExpirationHours)
	services.AuthServiceInstance = authService

	userService := services.NewUserService(authService)
	services.UserServiceInstance = userService

	router := gin.Default()
	router.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	routes.RegisterAuthRoutes(router, db, authService)
	routes.RegisterUserRoutes(router, db, userService, authService)
	routes.RegisterFolderRoutes(router, db, services.FolderServiceInstance, authService)
	routes.RegisterNoteRoutes(router, db, services.NoteServiceInstance, authService)
	routes.RegisterTagRoutes(router, db, services.TagServiceInstance, authService)
	routes.RegisterWebSocketRoutes(router, webSocketService, authService)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-quit
		log.Println("Shutting down server...")
		os.Exit(0)
	}()

	log.Printf("API server is running on port %s", cfg.AppPort)
	if err := http.ListenAndServe(":"+cfg.AppPort, router); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
