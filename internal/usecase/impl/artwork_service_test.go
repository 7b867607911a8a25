package impl

import (
	"context"
	"testing"

	"gallery/internal/domain/entity"
	domainerrors "gallery/internal/domain/errors"
	"gallery/internal/domain/repository"
	mockRepo "gallery/internal/mocks/repository"
	"gallery/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newArtworkFixture(t *testing.T) (*mockRepo.MockArtworkRepository, *mockRepo.MockEntitlementRepository, usecase.ArtworkUsecase) {
	artworkRepo := mockRepo.NewMockArtworkRepository(t)
	entitlementRepo := mockRepo.NewMockEntitlementRepository(t)
	svc := NewArtworkService(ArtworkServiceParams{
		ArtworkRepo:     artworkRepo,
		EntitlementRepo: entitlementRepo,
		Prices:          testResolver(),
		Logger:          discardLogger(),
	})

	return artworkRepo, entitlementRepo, svc
}

func TestArtworkService_ListArtworks_RedactsUnlessUnlocked(t *testing.T) {
	artworkRepo, entitlementRepo, svc := newArtworkFixture(t)
	ctx := context.Background()
	viewer := uuid.New()

	owned := premiumArtwork("the-deep", "The Deep")
	locked := premiumArtwork("neon-koi", "Neon Koi")
	locked.PromptPrice = int64Ptr(1500)
	plain := &entity.Artwork{ID: "sketch", Title: "Sketch", Published: true}

	artworkRepo.EXPECT().ListPublished(ctx, "").Return([]*entity.Artwork{owned, locked, plain}, nil)
	entitlementRepo.EXPECT().ListCompletedArtworkIDs(ctx, viewer).
		Return(map[string]struct{}{"the-deep": {}}, nil)

	views, err := svc.ListArtworks(ctx, viewer, "")
	require.NoError(t, err)
	require.Len(t, views, 3)

	assert.True(t, views[0].PromptUnlocked)
	assert.True(t, views[0].HasPrompt)
	require.NotNil(t, views[0].Artwork.RawPrompt)
	require.NotNil(t, views[0].Artwork.Techniques[0].Description)
	assert.Equal(t, int64(399), views[0].PromptPrice)

	assert.False(t, views[1].PromptUnlocked)
	assert.True(t, views[1].HasPrompt)
	assert.Nil(t, views[1].Artwork.RawPrompt)
	assert.Nil(t, views[1].Artwork.RefinementNotes)
	assert.Nil(t, views[1].Artwork.Techniques[0].Description)
	assert.Equal(t, "Fog", views[1].Artwork.Techniques[0].Name)
	assert.Equal(t, int64(1500), views[1].PromptPrice)

	assert.False(t, views[2].HasPrompt)
	assert.False(t, views[2].PromptUnlocked)

	// the repository's copy is never mutated
	assert.NotNil(t, locked.RawPrompt)
}

func TestArtworkService_ListArtworks_AnonymousSkipsEntitlements(t *testing.T) {
	artworkRepo, _, svc := newArtworkFixture(t)
	ctx := context.Background()

	artworkRepo.EXPECT().ListPublished(ctx, "portraits").
		Return([]*entity.Artwork{premiumArtwork("the-deep", "The Deep")}, nil)

	views, err := svc.ListArtworks(ctx, uuid.Nil, "portraits")
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.False(t, views[0].PromptUnlocked)
	assert.Nil(t, views[0].Artwork.RawPrompt)
}

func TestArtworkService_GetArtwork(t *testing.T) {
	t.Run("owner sees the prompt", func(t *testing.T) {
		artworkRepo, entitlementRepo, svc := newArtworkFixture(t)
		ctx := context.Background()
		viewer := uuid.New()

		artworkRepo.EXPECT().FindByID(ctx, "the-deep").Return(premiumArtwork("the-deep", "The Deep"), nil)
		entitlementRepo.EXPECT().HasCompleted(ctx, viewer, "the-deep").Return(true, nil)

		view, err := svc.GetArtwork(ctx, viewer, "the-deep")
		require.NoError(t, err)
		assert.True(t, view.PromptUnlocked)
		assert.NotNil(t, view.Artwork.RawPrompt)
	})

	t.Run("refunded or unpaid viewer is redacted", func(t *testing.T) {
		artworkRepo, entitlementRepo, svc := newArtworkFixture(t)
		ctx := context.Background()
		viewer := uuid.New()

		artworkRepo.EXPECT().FindByID(ctx, "the-deep").Return(premiumArtwork("the-deep", "The Deep"), nil)
		entitlementRepo.EXPECT().HasCompleted(ctx, viewer, "the-deep").Return(false, nil)

		view, err := svc.GetArtwork(ctx, viewer, "the-deep")
		require.NoError(t, err)
		assert.False(t, view.PromptUnlocked)
		assert.Nil(t, view.Artwork.RawPrompt)
	})

	t.Run("unpublished is not found", func(t *testing.T) {
		artworkRepo, _, svc := newArtworkFixture(t)
		ctx := context.Background()
		draft := premiumArtwork("draft", "Draft")
		draft.Published = false

		artworkRepo.EXPECT().FindByID(ctx, "draft").Return(draft, nil)

		_, err := svc.GetArtwork(ctx, uuid.New(), "draft")
		assert.Equal(t, domainerrors.ErrArtworkNotFound, err)
	})

	t.Run("missing", func(t *testing.T) {
		artworkRepo, _, svc := newArtworkFixture(t)
		ctx := context.Background()

		artworkRepo.EXPECT().FindByID(ctx, "missing").Return(nil, repository.ErrArtworkNotFound)

		_, err := svc.GetArtwork(ctx, uuid.Nil, "missing")
		assert.Equal(t, domainerrors.ErrArtworkNotFound, err)
	})
}
