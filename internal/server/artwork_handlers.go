package server

import (
	"net/http"
	"time"

	"github.com/artvault/artvault/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type Artwork struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Canvas    []string `json:"canvas"`
	Colors    []string `json:"colors"`
	Owner     string   `json:"owner"`
	CreatedAt string   `json:"createdAt"`
	UpdatedAt string   `json:"updatedAt"`
}

func ConvertArtworkFrom(a usecase.Artwork) Artwork {
	canvas := a.Canvas
	if canvas == nil {
		canvas = []string{}
	}
	colors := a.Colors
	if colors == nil {
		colors = []string{}
	}
	return Artwork{
		ID:        a.ID.String(),
		Name:      a.Name,
		Canvas:    canvas,
		Colors:    colors,
		Owner:     a.Owner.String(),
		CreatedAt: a.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: a.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

type ListArtworksResponse struct {
	Artworks []Artwork `json:"artworks"`
}

type ArtworkResponse struct {
	Artwork Artwork `json:"artwork"`
}

func (s *Server) ListArtworks(ctx echo.Context) error {
	artworks, err := s.server.ListArtworks(ctx.Request().Context())
	if err != nil {
		return errorResponse(ctx, err)
	}

	list := make([]Artwork, 0, len(artworks))
	for _, a := range artworks {
		list = append(list, ConvertArtworkFrom(a))
	}

	return ctx.JSON(http.StatusOK, ListArtworksResponse{Artworks: list})
}

type GetArtworkRequest struct {
	ID string `param:"id" validate:"required,uuid"`
}

func (s *Server) GetArtwork(ctx echo.Context) error {
	var req GetArtworkRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if err := s.validator.Struct(req); err != nil {
		return errorResponse(ctx, &usecase.ValidationError{Err: err})
	}

	id, _ := uuid.Parse(req.ID)

	a, err := s.server.GetArtwork(ctx.Request().Context(), id)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ArtworkResponse{Artwork: ConvertArtworkFrom(a)})
}

type CreateArtworkBody struct {
	Name   string   `json:"name" validate:"required"`
	Canvas []string `json:"canvas" validate:"omitempty,dive,required"`
	Colors []string `json:"colors" validate:"omitempty,dive,required"`
}

type CreateArtworkRequest struct {
	Artwork CreateArtworkBody `json:"artwork"`
}

// CreateArtwork binds the new record to the authenticated caller; any
// client-supplied owner is ignored (the request shape carries none).
func (s *Server) CreateArtwork(ctx echo.Context) error {
	var req CreateArtworkRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if err := s.validator.Struct(req); err != nil {
		return errorResponse(ctx, &usecase.ValidationError{Err: err})
	}

	created, err := s.server.CreateArtwork(ctx.Request().Context(), usecase.Artwork{
		Name:   req.Artwork.Name,
		Canvas: req.Artwork.Canvas,
		Colors: req.Artwork.Colors,
	})
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, ArtworkResponse{Artwork: ConvertArtworkFrom(created)})
}

type UpdateArtworkBody struct {
	Name   *string  `json:"name"`
	Canvas []string `json:"canvas" validate:"omitempty,dive,required"`
	Colors []string `json:"colors" validate:"omitempty,dive,required"`
}

type UpdateArtworkRequest struct {
	ID string `param:"id" validate:"required,uuid"`

	Artwork UpdateArtworkBody `json:"artwork"`
}

func (s *Server) UpdateArtwork(ctx echo.Context) error {
	var req UpdateArtworkRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if err := s.validator.Struct(req); err != nil {
		return errorResponse(ctx, &usecase.ValidationError{Err: err})
	}

	id, _ := uuid.Parse(req.ID)

	err := s.server.UpdateArtwork(ctx.Request().Context(), id, usecase.UpdateArtworkRequest{
		Name:   req.Artwork.Name,
		Canvas: req.Artwork.Canvas,
		Colors: req.Artwork.Colors,
	})
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type DeleteArtworkRequest struct {
	ID string `param:"id" validate:"required,uuid"`
}

func (s *Server) DeleteArtwork(ctx echo.Context) error {
	var req DeleteArtworkRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if err := s.validator.Struct(req); err != nil {
		return errorResponse(ctx, &usecase.ValidationError{Err: err})
	}

	id, _ := uuid.Parse(req.ID)

	if err := s.server.DeleteArtwork(ctx.Request().Context(), id); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
