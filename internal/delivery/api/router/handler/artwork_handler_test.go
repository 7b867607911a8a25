package handler

import (
	"net/http"
	"testing"

	"gallery/internal/domain/entity"
	domainerrors "gallery/internal/domain/errors"
	mockusecase "gallery/internal/mocks/usecase"
	"gallery/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupArtworkHandler(t *testing.T, userID uuid.UUID) (*echo.Echo, *mockusecase.MockArtworkUsecase) {
	t.Helper()

	artworkUC := mockusecase.NewMockArtworkUsecase(t)
	h := NewArtworkHandler(ArtworkHandlerParams{ArtworkUC: artworkUC})
	auth := authFor(t, userID, "collector")

	e := newTestEcho()
	e.GET("/api/v1/artworks", h.ListArtworks, auth.OptionalAuth)
	e.GET("/api/v1/artworks/:id", h.GetArtwork, auth.OptionalAuth)

	return e, artworkUC
}

func redactedView() *usecase.ArtworkView {
	return &usecase.ArtworkView{
		Artwork: &entity.Artwork{
			ID:         "neon-koi",
			Title:      "Neon Koi",
			Category:   "nature",
			ImageSrc:   "/img/neon-koi.webp",
			Techniques: []entity.Technique{{ID: 1, Name: "Inpainting"}},
		},
		HasPrompt:   true,
		PromptPrice: 399,
	}
}

func TestArtworkHandler_ListArtworks_Redacted(t *testing.T) {
	e, artworkUC := setupArtworkHandler(t, uuid.New())

	artworkUC.EXPECT().ListArtworks(mock.Anything, uuid.Nil, "nature").Return([]*usecase.ArtworkView{redactedView()}, nil)

	rec := serve(e, http.MethodGet, "/api/v1/artworks?category=nature", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	out := decodeData[[]map[string]any](t, rec)
	require.Len(t, out, 1)
	assert.Equal(t, "neon-koi", out[0]["id"])
	assert.Equal(t, true, out[0]["has_prompt"])
	assert.Equal(t, false, out[0]["prompt_unlocked"])
	assert.Equal(t, float64(399), out[0]["prompt_price"])
	assert.Equal(t, "$3.99", out[0]["prompt_price_display"])
	assert.Nil(t, out[0]["raw_prompt"])
	assert.Nil(t, out[0]["refinement_notes"])

	techniques := out[0]["techniques"].([]any)
	require.Len(t, techniques, 1)
	assert.Nil(t, techniques[0].(map[string]any)["description"])
}

func TestArtworkHandler_GetArtwork_Unlocked(t *testing.T) {
	userID := uuid.New()
	e, artworkUC := setupArtworkHandler(t, userID)

	prompt, notes, desc := "a koi in neon rain", "upscaled twice", "mask then repaint"
	view := &usecase.ArtworkView{
		Artwork: &entity.Artwork{
			ID:              "neon-koi",
			Title:           "Neon Koi",
			RawPrompt:       &prompt,
			RefinementNotes: &notes,
			Techniques:      []entity.Technique{{ID: 1, Name: "Inpainting", Description: &desc}},
		},
		HasPrompt:      true,
		PromptUnlocked: true,
		PromptPrice:    399,
	}
	artworkUC.EXPECT().GetArtwork(mock.Anything, userID, "neon-koi").Return(view, nil)

	rec := serve(e, http.MethodGet, "/api/v1/artworks/neon-koi", "", bearer())

	require.Equal(t, http.StatusOK, rec.Code)
	out := decodeData[ArtworkDTO](t, rec)
	assert.True(t, out.PromptUnlocked)
	require.NotNil(t, out.RawPrompt)
	assert.Equal(t, prompt, *out.RawPrompt)
	require.NotNil(t, out.Techniques[0].Description)
	assert.Equal(t, desc, *out.Techniques[0].Description)
}

func TestArtworkHandler_GetArtwork_NotFound(t *testing.T) {
	e, artworkUC := setupArtworkHandler(t, uuid.New())

	artworkUC.EXPECT().GetArtwork(mock.Anything, uuid.Nil, "missing").Return(nil, domainerrors.ErrArtworkNotFound)

	rec := serve(e, http.MethodGet, "/api/v1/artworks/missing", "", nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "ARTWORK_NOT_FOUND", decodeEnvelope(t, rec).Error.Code)
}
