package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/artvault/artvault/internal/database"
	"github.com/artvault/artvault/internal/firebase"
	"github.com/artvault/artvault/internal/server"
	"github.com/artvault/artvault/internal/usecase"
)

func main() {
	repo := database.New()
	provider := firebase.New()
	sv := usecase.New(repo, provider)

	app := server.New(sv)

	go func() {
		log.Printf("API server starting on %s", app.Addr)
		if err := app.ListenAndServe(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down API server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Shutdown(ctx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}

	if err := sv.Close(); err != nil {
		log.Printf("Close error: %v", err)
	}

	log.Println("API server exited properly")
}
