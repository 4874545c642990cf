package usecase

import (
	"context"
	"testing"

	"github.com/artvault/artvault/internal/config"

	"github.com/google/uuid"
)

type fakeRepo struct {
	artworks map[uuid.UUID]Artwork

	updatedID uuid.UUID
	updated   *UpdateArtworkRequest
	deletedID uuid.UUID
	deletes   int
}

func newFakeRepo(artworks ...Artwork) *fakeRepo {
	m := make(map[uuid.UUID]Artwork, len(artworks))
	for _, a := range artworks {
		m[a.ID] = a
	}
	return &fakeRepo{artworks: m}
}

func (r *fakeRepo) Health() map[string]string { return map[string]string{"status": "up"} }
func (r *fakeRepo) Close() error              { return nil }

func (r *fakeRepo) ListArtworks(ctx context.Context) ([]Artwork, error) {
	list := make([]Artwork, 0, len(r.artworks))
	for _, a := range r.artworks {
		list = append(list, a)
	}
	return list, nil
}

func (r *fakeRepo) GetArtworkByID(ctx context.Context, id uuid.UUID) (Artwork, error) {
	a, ok := r.artworks[id]
	if !ok {
		return Artwork{}, ErrRecordNotFound
	}
	return a, nil
}

func (r *fakeRepo) CreateArtwork(ctx context.Context, a Artwork) (Artwork, error) {
	a.ID = uuid.New()
	r.artworks[a.ID] = a
	return a, nil
}

func (r *fakeRepo) UpdateArtwork(ctx context.Context, id uuid.UUID, req UpdateArtworkRequest) error {
	r.updatedID = id
	r.updated = &req
	return nil
}

func (r *fakeRepo) DeleteArtwork(ctx context.Context, id uuid.UUID) error {
	r.deletedID = id
	r.deletes++
	delete(r.artworks, id)
	return nil
}

func (r *fakeRepo) CreateUser(ctx context.Context, u User) (User, error) {
	u.ID = uuid.New()
	return u, nil
}

func (r *fakeRepo) GetUserByID(ctx context.Context, id uuid.UUID) (User, error) {
	return User{}, ErrRecordNotFound
}

func (r *fakeRepo) CreateAuthUser(ctx context.Context, au AuthUser) (AuthUser, error) {
	au.ID = uuid.New()
	return au, nil
}

func (r *fakeRepo) GetAuthUserByUID(ctx context.Context, uid string) (AuthUser, error) {
	return AuthUser{}, ErrRecordNotFound
}

type fakeAuth struct{}

func (fakeAuth) CreateUser(ctx context.Context, ru RegisterUser) (string, error) {
	return "uid-" + ru.Email, nil
}

func (fakeAuth) VerifyIDToken(ctx context.Context, token string) (string, error) {
	return token, nil
}

func callerContext(id uuid.UUID) context.Context {
	return context.WithValue(context.Background(), config.CTX_KEY_USER_ID, id)
}

func TestCreateArtworkForcesOwner(t *testing.T) {
	t.Parallel()

	caller := uuid.New()
	intruder := uuid.New()
	repo := newFakeRepo()
	u := New(repo, fakeAuth{})

	created, err := u.CreateArtwork(callerContext(caller), Artwork{
		Name:   "Sunset",
		Canvas: []string{"c1", "c2"},
		Colors: []string{"red"},
		Owner:  intruder, // must be discarded
	})
	if err != nil {
		t.Fatalf("CreateArtwork: %v", err)
	}
	if created.Owner != caller {
		t.Errorf("owner = %s, want caller %s", created.Owner, caller)
	}
	if created.Name != "Sunset" || len(created.Canvas) != 2 || created.Canvas[0] != "c1" {
		t.Errorf("unexpected artwork %+v", created)
	}
}

func TestCreateArtworkWithoutCaller(t *testing.T) {
	t.Parallel()

	u := New(newFakeRepo(), fakeAuth{})

	if _, err := u.CreateArtwork(context.Background(), Artwork{Name: "x"}); err == nil {
		t.Fatal("expected error without caller in context")
	}
}

func TestGetArtworkNotFound(t *testing.T) {
	t.Parallel()

	u := New(newFakeRepo(), fakeAuth{})

	_, err := u.GetArtwork(context.Background(), uuid.New())
	if !IsNotFound(err) {
		t.Fatalf("err = %v, want NotFoundError", err)
	}
}

func TestUpdateArtworkByNonOwner(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	art := Artwork{ID: uuid.New(), Name: "Dawn", Owner: owner}
	repo := newFakeRepo(art)
	u := New(repo, fakeAuth{})

	name := "Dusk"
	err := u.UpdateArtwork(callerContext(uuid.New()), art.ID, UpdateArtworkRequest{Name: &name})
	if !IsForbidden(err) {
		t.Fatalf("err = %v, want ForbiddenError", err)
	}
	if repo.updated != nil {
		t.Error("repo update was called for a forbidden request")
	}
}

func TestUpdateNonexistentArtworkIsNotFound(t *testing.T) {
	t.Parallel()

	// Existence is checked before ownership: probing an id that does not
	// exist yields not-found for every caller, never forbidden.
	repo := newFakeRepo()
	u := New(repo, fakeAuth{})

	name := "Dusk"
	err := u.UpdateArtwork(callerContext(uuid.New()), uuid.New(), UpdateArtworkRequest{Name: &name})
	if !IsNotFound(err) {
		t.Fatalf("err = %v, want NotFoundError", err)
	}
	if IsForbidden(err) {
		t.Error("nonexistent record reported as forbidden")
	}
}

func TestUpdateArtworkDropsEmptyName(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	art := Artwork{ID: uuid.New(), Name: "Dawn", Owner: owner}
	repo := newFakeRepo(art)
	u := New(repo, fakeAuth{})

	empty := ""
	err := u.UpdateArtwork(callerContext(owner), art.ID, UpdateArtworkRequest{
		Name:   &empty,
		Colors: []string{"blue"},
	})
	if err != nil {
		t.Fatalf("UpdateArtwork: %v", err)
	}
	if repo.updated == nil {
		t.Fatal("repo update was not called")
	}
	if repo.updated.Name != nil {
		t.Errorf("empty name forwarded as %q, want dropped", *repo.updated.Name)
	}
	if len(repo.updated.Colors) != 1 || repo.updated.Colors[0] != "blue" {
		t.Errorf("colors = %v, want [blue]", repo.updated.Colors)
	}
	if repo.updatedID != art.ID {
		t.Errorf("updated id = %s, want %s", repo.updatedID, art.ID)
	}
}

func TestDeleteArtwork(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	art := Artwork{ID: uuid.New(), Name: "Dawn", Owner: owner}
	repo := newFakeRepo(art)
	u := New(repo, fakeAuth{})

	// a non-owner cannot delete
	err := u.DeleteArtwork(callerContext(uuid.New()), art.ID)
	if !IsForbidden(err) {
		t.Fatalf("err = %v, want ForbiddenError", err)
	}
	if repo.deletes != 0 {
		t.Fatal("repo delete was called for a forbidden request")
	}

	// the owner can
	if err := u.DeleteArtwork(callerContext(owner), art.ID); err != nil {
		t.Fatalf("DeleteArtwork: %v", err)
	}
	if repo.deletedID != art.ID {
		t.Errorf("deleted id = %s, want %s", repo.deletedID, art.ID)
	}

	// and afterwards the record is gone
	_, err = u.GetArtwork(context.Background(), art.ID)
	if !IsNotFound(err) {
		t.Fatalf("err after delete = %v, want NotFoundError", err)
	}
}

func TestRegisterUser(t *testing.T) {
	t.Parallel()

	u := New(newFakeRepo(), fakeAuth{})

	user, err := u.RegisterUser(context.Background(), RegisterUser{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "secret1",
	})
	if err != nil {
		t.Fatalf("RegisterUser: %v", err)
	}
	if user.ID == uuid.Nil {
		t.Error("user id not assigned")
	}
	if user.Name != "Ana" || user.Email != "ana@example.com" {
		t.Errorf("unexpected user %+v", user)
	}
}
