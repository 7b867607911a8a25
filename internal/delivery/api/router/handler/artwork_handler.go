package handler

import (
	"net/http"
	"strings"

	"gallery/internal/delivery/api/middleware"
	"gallery/internal/delivery/api/response"
	"gallery/internal/domain/pricing"
	"gallery/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ArtworkHandler serves gallery listings with premium fields redacted per viewer.
type ArtworkHandler struct {
	artworkUC usecase.ArtworkUsecase
}

// ArtworkHandlerParams holds dependencies for ArtworkHandler
type ArtworkHandlerParams struct {
	fx.In

	ArtworkUC usecase.ArtworkUsecase
}

// NewArtworkHandler creates a new artwork handler
func NewArtworkHandler(params ArtworkHandlerParams) *ArtworkHandler {
	return &ArtworkHandler{
		artworkUC: params.ArtworkUC,
	}
}

// TechniqueDTO is a technique; Description is null unless unlocked.
type TechniqueDTO struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// ArtworkDTO is the public artwork view.
type ArtworkDTO struct {
	ID                 string         `json:"id"`
	Title              string         `json:"title"`
	Category           string         `json:"category"`
	ImageSrc           string         `json:"image_src"`
	HasPrompt          bool           `json:"has_prompt"`
	PromptUnlocked     bool           `json:"prompt_unlocked"`
	PromptPrice        int64          `json:"prompt_price"`
	PromptPriceDisplay string         `json:"prompt_price_display"`
	RawPrompt          *string        `json:"raw_prompt"`
	RefinementNotes    *string        `json:"refinement_notes"`
	Techniques         []TechniqueDTO `json:"techniques"`
}

// ListArtworks returns published artworks, optionally filtered by ?category.
func (h *ArtworkHandler) ListArtworks(c echo.Context) error {
	category := strings.TrimSpace(c.QueryParam("category"))

	views, err := h.artworkUC.ListArtworks(c.Request().Context(), middleware.GetUserID(c), category)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out := make([]ArtworkDTO, 0, len(views))
	for _, view := range views {
		out = append(out, toArtworkDTO(view))
	}

	return response.Success(c, http.StatusOK, out)
}

// GetArtwork returns one published artwork.
func (h *ArtworkHandler) GetArtwork(c echo.Context) error {
	view, err := h.artworkUC.GetArtwork(c.Request().Context(), middleware.GetUserID(c), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toArtworkDTO(view))
}

func toArtworkDTO(view *usecase.ArtworkView) ArtworkDTO {
	art := view.Artwork
	techniques := make([]TechniqueDTO, 0, len(art.Techniques))
	for _, tech := range art.Techniques {
		techniques = append(techniques, TechniqueDTO{
			ID:          tech.ID,
			Name:        tech.Name,
			Description: tech.Description,
		})
	}

	return ArtworkDTO{
		ID:                 art.ID,
		Title:              art.Title,
		Category:           art.Category,
		ImageSrc:           art.ImageSrc,
		HasPrompt:          view.HasPrompt,
		PromptUnlocked:     view.PromptUnlocked,
		PromptPrice:        view.PromptPrice,
		PromptPriceDisplay: pricing.Format(view.PromptPrice),
		RawPrompt:          art.RawPrompt,
		RefinementNotes:    art.RefinementNotes,
		Techniques:         techniques,
	}
}
