package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/artvault/artvault/internal/config"

	"github.com/google/uuid"
)

const artworkResource = "artwork"

// Artwork structures
type Artwork struct {
	ID        uuid.UUID
	Name      string
	Canvas    []string
	Colors    []string
	Owner     uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UpdateArtworkRequest is a partial patch. Nil fields are left untouched.
type UpdateArtworkRequest struct {
	Name   *string
	Canvas []string
	Colors []string
}

// callerID resolves the authenticated user set by the auth middleware.
func callerID(ctx context.Context) (uuid.UUID, error) {
	id, ok := ctx.Value(config.CTX_KEY_USER_ID).(uuid.UUID)
	if !ok {
		return uuid.Nil, fmt.Errorf("user id not found in context")
	}
	return id, nil
}

// requireExisting maps a storage absence indication to a NotFoundError for
// the requested id. Any other lookup error passes through unchanged.
func requireExisting(err error, resource string, id uuid.UUID) error {
	if errors.Is(err, ErrRecordNotFound) {
		return &NotFoundError{Resource: resource, ID: id}
	}
	return err
}

// requireOwnership rejects callers that do not own the record. It must run
// after requireExisting so probing a nonexistent id never reveals ownership.
func requireOwnership(caller uuid.UUID, a Artwork) error {
	if a.Owner != caller {
		return &ForbiddenError{Resource: artworkResource, ID: a.ID}
	}
	return nil
}

// Artwork usecase methods
func (u Usecase) ListArtworks(ctx context.Context) ([]Artwork, error) {
	return u.repo.ListArtworks(ctx)
}

func (u Usecase) GetArtwork(ctx context.Context, id uuid.UUID) (Artwork, error) {
	a, err := u.repo.GetArtworkByID(ctx, id)
	if err := requireExisting(err, artworkResource, id); err != nil {
		return Artwork{}, err
	}
	return a, nil
}

// CreateArtwork binds the artwork to the authenticated caller. Any owner
// value on the input is discarded.
func (u Usecase) CreateArtwork(ctx context.Context, a Artwork) (Artwork, error) {
	caller, err := callerID(ctx)
	if err != nil {
		return Artwork{}, err
	}
	a.Owner = caller

	return u.repo.CreateArtwork(ctx, a)
}

// UpdateArtwork applies a partial merge to an artwork owned by the caller.
// Fields submitted as empty strings mean "leave unchanged"; clients send
// them for values they did not touch.
func (u Usecase) UpdateArtwork(ctx context.Context, id uuid.UUID, req UpdateArtworkRequest) error {
	caller, err := callerID(ctx)
	if err != nil {
		return err
	}

	a, err := u.repo.GetArtworkByID(ctx, id)
	if err := requireExisting(err, artworkResource, id); err != nil {
		return err
	}
	if err := requireOwnership(caller, a); err != nil {
		return err
	}

	if req.Name != nil && *req.Name == "" {
		req.Name = nil
	}

	return u.repo.UpdateArtwork(ctx, id, req)
}

// DeleteArtwork hard-deletes an artwork owned by the caller.
func (u Usecase) DeleteArtwork(ctx context.Context, id uuid.UUID) error {
	caller, err := callerID(ctx)
	if err != nil {
		return err
	}

	a, err := u.repo.GetArtworkByID(ctx, id)
	if err := requireExisting(err, artworkResource, id); err != nil {
		return err
	}
	if err := requireOwnership(caller, a); err != nil {
		return err
	}

	return u.repo.DeleteArtwork(ctx, id)
}
