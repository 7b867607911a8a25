package postgres

import (
	"testing"
	"time"

	"gallery/internal/domain/entity"
	"gallery/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestToArtworkDomain_CopiesTechniques(t *testing.T) {
	price := int64(599)
	artworkM := &model.ArtworkModel{
		ID:          "neon-koi",
		Title:       "Neon Koi",
		Published:   true,
		RawPrompt:   strPtr("koi fish, neon, long exposure"),
		PromptPrice: &price,
		Techniques: []model.TechniqueModel{
			{ID: 1, Name: "Inpainting", Description: strPtr("mask the fins")},
		},
	}

	artwork := toArtworkDomain(artworkM)
	require.NotNil(t, artwork)
	assert.Equal(t, "neon-koi", artwork.ID)
	assert.Equal(t, &price, artwork.PromptPrice)
	require.Len(t, artwork.Techniques, 1)
	assert.Equal(t, "Inpainting", artwork.Techniques[0].Name)
	assert.Equal(t, "mask the fins", *artwork.Techniques[0].Description)
	assert.True(t, artwork.HasPremiumContent())
}

func TestUserMapping_RoundTrip(t *testing.T) {
	user := &entity.User{
		ID:              uuid.New(),
		Name:            "Ada",
		Email:           "ada@example.com",
		Provider:        entity.ProviderTypeGoogle,
		ProviderSubject: "1234567890",
	}

	assert.Equal(t, user, toUserDomain(fromUserDomain(user)))
	assert.Nil(t, toUserDomain(nil))
	assert.Nil(t, fromUserDomain(nil))
}

func TestToPurchaseRecordDomain_HandlesMissingJoins(t *testing.T) {
	refundedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	row := &purchaseRow{
		PromptPurchaseModel: model.PromptPurchaseModel{
			ID:                uuid.New(),
			UserID:            uuid.New(),
			ArtworkID:         "gone",
			CheckoutSessionID: "cs_test_1",
			AmountPaid:        399,
			Status:            string(entity.EntitlementStatusRefunded),
			RefundedAt:        &refundedAt,
		},
		UserName:     strPtr("Ada"),
		ArtworkTitle: nil,
	}

	record := toPurchaseRecordDomain(row)
	assert.Equal(t, "Ada", record.UserName)
	assert.Empty(t, record.UserEmail)
	assert.Empty(t, record.ArtworkTitle)
	assert.Equal(t, entity.EntitlementStatusRefunded, record.Status)
	assert.Equal(t, &refundedAt, record.RefundedAt)
	assert.False(t, record.IsCompleted())
}
