package impl

import (
	"io"
	"log/slog"

	"gallery/config"
	"gallery/internal/domain/entity"
	"gallery/internal/domain/pricing"
)

const testSiteURL = "https://gallery.test"

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *config.Config {
	return &config.Config{
		Stripe: config.StripeConfig{SiteURL: testSiteURL + "/"},
		Admin:  config.AdminConfig{PasswordHash: "$2a$04$hash"},
	}
}

func testResolver() *pricing.Resolver {
	return pricing.NewResolver(399, 99, 9999)
}

func strPtr(s string) *string { return &s }

func int64Ptr(v int64) *int64 { return &v }

func premiumArtwork(id, title string) *entity.Artwork {
	return &entity.Artwork{
		ID:              id,
		Title:           title,
		Published:       true,
		RawPrompt:       strPtr("a lighthouse drowning in fog, volumetric light"),
		RefinementNotes: strPtr("upscaled twice"),
		Techniques: []entity.Technique{
			{ID: 1, Name: "Fog", Description: strPtr("long exposure simulation")},
		},
	}
}
