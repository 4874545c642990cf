package database

import (
	"context"
	"errors"
	"time"

	"github.com/artvault/artvault/internal/usecase"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Artwork struct {
	ID        uuid.UUID                   `gorm:"column:id;primaryKey;type:uuid;default:uuid_generate_v4()"`
	Name      string                      `gorm:"column:name;type:varchar(255);not null"`
	Canvas    datatypes.JSONSlice[string] `gorm:"column:canvas"`
	Colors    datatypes.JSONSlice[string] `gorm:"column:colors"`
	OwnerID   uuid.UUID                   `gorm:"column:owner_id;type:uuid;not null"`
	CreatedAt time.Time                   `gorm:"column:created_at"`
	UpdatedAt time.Time                   `gorm:"column:updated_at"`

	Owner *User `gorm:"foreignKey:OwnerID;references:ID"`
}

func (Artwork) TableName() string {
	return "artworks"
}

func convertArtwork(a Artwork) usecase.Artwork {
	return usecase.Artwork{
		ID:        a.ID,
		Name:      a.Name,
		Canvas:    a.Canvas,
		Colors:    a.Colors,
		Owner:     a.OwnerID,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func (s *service) ListArtworks(ctx context.Context) ([]usecase.Artwork, error) {
	var artworks []Artwork

	if err := s.db.
		WithContext(ctx).
		Order("created_at DESC").
		Find(&artworks).
		Error; err != nil {
		return nil, err
	}

	list := make([]usecase.Artwork, 0, len(artworks))
	for _, a := range artworks {
		list = append(list, convertArtwork(a))
	}

	return list, nil
}

func (s *service) GetArtworkByID(ctx context.Context, id uuid.UUID) (usecase.Artwork, error) {
	var a Artwork

	if err := s.db.
		WithContext(ctx).
		First(&a, "id = ?", id).
		Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return usecase.Artwork{}, usecase.ErrRecordNotFound
		}
		return usecase.Artwork{}, err
	}

	return convertArtwork(a), nil
}

func (s *service) CreateArtwork(ctx context.Context, a usecase.Artwork) (usecase.Artwork, error) {
	art := Artwork{
		Name:    a.Name,
		Canvas:  datatypes.NewJSONSlice(a.Canvas),
		Colors:  datatypes.NewJSONSlice(a.Colors),
		OwnerID: a.Owner,
	}

	if err := s.db.WithContext(ctx).Create(&art).Error; err != nil {
		return usecase.Artwork{}, err
	}

	return convertArtwork(art), nil
}

// UpdateArtwork merges only the present patch fields into the row.
func (s *service) UpdateArtwork(ctx context.Context, id uuid.UUID, req usecase.UpdateArtworkRequest) error {
	values := map[string]any{}
	if req.Name != nil {
		values["name"] = *req.Name
	}
	if req.Canvas != nil {
		values["canvas"] = datatypes.NewJSONSlice(req.Canvas)
	}
	if req.Colors != nil {
		values["colors"] = datatypes.NewJSONSlice(req.Colors)
	}
	if len(values) == 0 {
		return nil
	}

	return s.db.
		WithContext(ctx).
		Model(&Artwork{}).
		Where("id = ?", id).
		Updates(values).
		Error
}

// DeleteArtwork removes the row permanently.
func (s *service) DeleteArtwork(ctx context.Context, id uuid.UUID) error {
	return s.db.
		WithContext(ctx).
		Delete(&Artwork{}, "id = ?", id).
		Error
}
