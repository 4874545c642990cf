package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// User structures
type User struct {
	ID        uuid.UUID
	Name      string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// AuthUser maps an identity-provider UID to a local user.
type AuthUser struct {
	ID        uuid.UUID
	UID       string
	UserID    uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

type RegisterUser struct {
	Name     string
	Email    string
	Password string
}

// RegisterUser creates the identity-provider account, the local user row
// and the mapping between the two.
func (u Usecase) RegisterUser(ctx context.Context, ru RegisterUser) (User, error) {
	uid, err := u.auth.CreateUser(ctx, ru)
	if err != nil {
		return User{}, err
	}

	user, err := u.repo.CreateUser(ctx, User{
		Name:  ru.Name,
		Email: ru.Email,
	})
	if err != nil {
		return User{}, err
	}

	if _, err := u.repo.CreateAuthUser(ctx, AuthUser{
		UID:    uid,
		UserID: user.ID,
	}); err != nil {
		return User{}, err
	}

	return user, nil
}

func (u Usecase) GetUserByID(ctx context.Context, id uuid.UUID) (User, error) {
	user, err := u.repo.GetUserByID(ctx, id)
	if err := requireExisting(err, "user", id); err != nil {
		return User{}, err
	}
	return user, nil
}

// VerifyIDToken is used by the auth middleware.
func (u Usecase) VerifyIDToken(ctx context.Context, token string) (string, error) {
	return u.auth.VerifyIDToken(ctx, token)
}

func (u Usecase) GetAuthUserByUID(ctx context.Context, uid string) (AuthUser, error) {
	return u.repo.GetAuthUserByUID(ctx, uid)
}
