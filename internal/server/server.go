package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	_ "github.com/joho/godotenv/autoload"

	"github.com/artvault/artvault/internal/config"
	"github.com/artvault/artvault/internal/usecase"
)

// Service is what the HTTP layer needs from the application core.
type Service interface {
	// Health returns a map of health status information.
	Health() map[string]string

	// Close terminates the database connection.
	Close() error

	ListArtworks(context.Context) ([]usecase.Artwork, error)
	GetArtwork(context.Context, uuid.UUID) (usecase.Artwork, error)
	CreateArtwork(context.Context, usecase.Artwork) (usecase.Artwork, error)
	UpdateArtwork(context.Context, uuid.UUID, usecase.UpdateArtworkRequest) error
	DeleteArtwork(context.Context, uuid.UUID) error

	RegisterUser(context.Context, usecase.RegisterUser) (usecase.User, error)
	GetUserByID(context.Context, uuid.UUID) (usecase.User, error)

	// used by AuthMiddleware
	VerifyIDToken(context.Context, string) (string, error)
	GetAuthUserByUID(context.Context, string) (usecase.AuthUser, error)
}

type Server struct {
	port int

	server    Service
	validator *validator.Validate
	logger    *slog.Logger
}

func New(sv Service) *http.Server {
	port, _ := strconv.Atoi(os.Getenv(config.ENV_KEY_PORT))
	s := &Server{
		port:      port,
		server:    sv,
		validator: validator.New(),
		logger:    slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	}

	return &http.Server{
		Addr:         fmt.Sprintf(":%d", s.port),
		Handler:      s.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}
