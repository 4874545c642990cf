package usecase

import (
	"context"

	"github.com/google/uuid"
)

func New(repo Repository, auth AuthProvider) Usecase {
	return Usecase{repo: repo, auth: auth}
}

type Repository interface {
	Health() map[string]string
	Close() error

	ListArtworks(context.Context) ([]Artwork, error)
	GetArtworkByID(context.Context, uuid.UUID) (Artwork, error)
	CreateArtwork(context.Context, Artwork) (Artwork, error)
	UpdateArtwork(context.Context, uuid.UUID, UpdateArtworkRequest) error
	DeleteArtwork(context.Context, uuid.UUID) error

	CreateUser(context.Context, User) (User, error)
	GetUserByID(context.Context, uuid.UUID) (User, error)
	CreateAuthUser(context.Context, AuthUser) (AuthUser, error)
	GetAuthUserByUID(context.Context, string) (AuthUser, error)
}

// AuthProvider is the external identity service (Firebase in production).
type AuthProvider interface {
	CreateUser(context.Context, RegisterUser) (string, error)
	VerifyIDToken(context.Context, string) (string, error)
}

type Usecase struct {
	repo Repository
	auth AuthProvider
}

func (u Usecase) Health() map[string]string {
	return u.repo.Health()
}

func (u Usecase) Close() error {
	return u.repo.Close()
}
