package database

import (
	"context"
	"errors"
	"time"

	"github.com/artvault/artvault/internal/usecase"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuthUser links an identity-provider UID to a local user row.
type AuthUser struct {
	ID        uuid.UUID `gorm:"column:id;primaryKey;type:uuid;default:uuid_generate_v4()"`
	UID       string    `gorm:"column:uid;type:varchar(255);uniqueIndex;not null"`
	UserID    uuid.UUID `gorm:"column:user_id;type:uuid;not null"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`

	User *User `gorm:"foreignKey:UserID;references:ID"`
}

func (AuthUser) TableName() string {
	return "auth_users"
}

func (s *service) CreateAuthUser(ctx context.Context, au usecase.AuthUser) (usecase.AuthUser, error) {
	authUser := AuthUser{
		UID:    au.UID,
		UserID: au.UserID,
	}

	if err := s.db.WithContext(ctx).Create(&authUser).Error; err != nil {
		return usecase.AuthUser{}, err
	}

	au.ID = authUser.ID
	au.CreatedAt = authUser.CreatedAt
	au.UpdatedAt = authUser.UpdatedAt
	return au, nil
}

func (s *service) GetAuthUserByUID(ctx context.Context, uid string) (usecase.AuthUser, error) {
	var authUser AuthUser

	if err := s.db.
		WithContext(ctx).
		First(&authUser, "uid = ?", uid).
		Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return usecase.AuthUser{}, usecase.ErrRecordNotFound
		}
		return usecase.AuthUser{}, err
	}

	return usecase.AuthUser{
		ID:        authUser.ID,
		UID:       authUser.UID,
		UserID:    authUser.UserID,
		CreatedAt: authUser.CreatedAt,
		UpdatedAt: authUser.UpdatedAt,
	}, nil
}
