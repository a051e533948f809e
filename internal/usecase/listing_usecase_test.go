package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapterrepo "rotrade/internal/adapter/repository"
	"rotrade/internal/domain/entity"
	"rotrade/pkg/errors"
)

func newListingTestEnv(t *testing.T) (*ListingUseCase, *AuthUseCase) {
	t.Helper()

	dir := t.TempDir()

	store, err := adapterrepo.NewSnapshotStore(dir)
	require.NoError(t, err)

	sessions, err := adapterrepo.NewFSSessionStore(dir)
	require.NoError(t, err)

	userRepo := adapterrepo.NewSnapshotUserRepository(store)
	listingRepo := adapterrepo.NewSnapshotListingRepository(store)

	return NewListingUseCase(listingRepo, userRepo),
		NewAuthUseCase(userRepo, sessions, "test-secret", 3600)
}

func TestCreateListingValidation(t *testing.T) {
	listings, auth := newListingTestEnv(t)
	ctx := context.Background()

	_, err := auth.Register(ctx, RegisterInput{Username: "Alice", Password: "pw", Confirm: "pw"})
	require.NoError(t, err)

	before, err := listings.Search(ctx, "")
	require.NoError(t, err)

	_, err = listings.Create(ctx, "Alice", CreateListingInput{Title: "", Description: "Desc"})
	assert.True(t, errors.Is(err, "VALIDATION_ERROR"))

	_, err = listings.Create(ctx, "Alice", CreateListingInput{Title: "Item", Description: ""})
	assert.True(t, errors.Is(err, "VALIDATION_ERROR"))

	after, err := listings.Search(ctx, "")
	require.NoError(t, err)
	assert.Len(t, after, len(before))
}

func TestCreateListingPrependsAndDefaults(t *testing.T) {
	listings, auth := newListingTestEnv(t)
	ctx := context.Background()

	_, err := auth.Register(ctx, RegisterInput{Username: "Alice", Password: "pw", Confirm: "pw"})
	require.NoError(t, err)

	before, err := listings.Search(ctx, "")
	require.NoError(t, err)

	created, err := listings.Create(ctx, "Alice", CreateListingInput{
		Title:       "Item",
		Description: "Desc",
		Price:       "1,000 R$",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, entity.PlaceholderImage, created.ImageURL)
	assert.Equal(t, "Alice", created.Seller)

	after, err := listings.Search(ctx, "")
	require.NoError(t, err)
	require.Len(t, after, len(before)+1)
	// Most recent first
	assert.Equal(t, created.ID, after[0].ID)
}

func TestSearchCaseInsensitive(t *testing.T) {
	listings, auth := newListingTestEnv(t)
	ctx := context.Background()

	_, err := auth.Register(ctx, RegisterInput{Username: "Alice", Password: "pw", Confirm: "pw"})
	require.NoError(t, err)

	_, err = listings.Create(ctx, "Alice", CreateListingInput{Title: "Valkyrie Helm", Description: "Legendary helm"})
	require.NoError(t, err)
	_, err = listings.Create(ctx, "Alice", CreateListingInput{Title: "Fedora", Description: "Limited edition"})
	require.NoError(t, err)

	found, err := listings.Search(ctx, "VALKYRIE")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Valkyrie Helm", found[0].Title)

	// Matches descriptions too
	found, err = listings.Search(ctx, "limited")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Fedora", found[0].Title)

	found, err = listings.Search(ctx, "no such thing")
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestDeleteListingOwnerOnly(t *testing.T) {
	listings, auth := newListingTestEnv(t)
	ctx := context.Background()

	_, err := auth.Register(ctx, RegisterInput{Username: "Alice", Password: "pw", Confirm: "pw"})
	require.NoError(t, err)
	_, err = auth.Register(ctx, RegisterInput{Username: "Bob", Password: "pw", Confirm: "pw"})
	require.NoError(t, err)

	created, err := listings.Create(ctx, "Alice", CreateListingInput{Title: "Item", Description: "Desc"})
	require.NoError(t, err)

	err = listings.Delete(ctx, "Bob", created.ID)
	assert.True(t, errors.Is(err, "FORBIDDEN"))

	err = listings.Delete(ctx, "Alice", created.ID)
	require.NoError(t, err)

	err = listings.Delete(ctx, "Alice", created.ID)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}
