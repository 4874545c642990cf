package database

import (
	"context"
	"errors"
	"time"

	"github.com/artvault/artvault/internal/usecase"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID        uuid.UUID `gorm:"column:id;primaryKey;type:uuid;default:uuid_generate_v4()"`
	Name      string    `gorm:"column:name;type:varchar(255);not null"`
	Email     string    `gorm:"column:email;type:varchar(255);uniqueIndex;not null"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (User) TableName() string {
	return "users"
}

func convertUser(u User) usecase.User {
	return usecase.User{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func (s *service) CreateUser(ctx context.Context, u usecase.User) (usecase.User, error) {
	user := User{
		Name:  u.Name,
		Email: u.Email,
	}

	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return usecase.User{}, err
	}

	return convertUser(user), nil
}

func (s *service) GetUserByID(ctx context.Context, id uuid.UUID) (usecase.User, error) {
	var user User

	if err := s.db.
		WithContext(ctx).
		First(&user, "id = ?", id).
		Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return usecase.User{}, usecase.ErrRecordNotFound
		}
		return usecase.User{}, err
	}

	return convertUser(user), nil
}
