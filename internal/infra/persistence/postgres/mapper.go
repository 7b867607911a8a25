package postgres

import (
	"gallery/internal/domain/entity"
	"gallery/internal/infra/persistence/model"
)

func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:              data.ID,
		Name:            data.Name,
		Email:           data.Email,
		Provider:        entity.ProviderType(data.Provider),
		ProviderSubject: data.ProviderSubject,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:              data.ID,
		Name:            data.Name,
		Email:           data.Email,
		Provider:        string(data.Provider),
		ProviderSubject: data.ProviderSubject,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func toArtworkDomain(data *model.ArtworkModel) *entity.Artwork {
	if data == nil {
		return nil
	}

	techniques := make([]entity.Technique, 0, len(data.Techniques))
	for _, tech := range data.Techniques {
		techniques = append(techniques, entity.Technique{
			ID:          tech.ID,
			Name:        tech.Name,
			Description: tech.Description,
		})
	}

	return &entity.Artwork{
		ID:              data.ID,
		Title:           data.Title,
		Category:        data.Category,
		ImageSrc:        data.ImageSrc,
		Published:       data.Published,
		SortOrder:       data.SortOrder,
		RawPrompt:       data.RawPrompt,
		RefinementNotes: data.RefinementNotes,
		PromptPrice:     data.PromptPrice,
		Techniques:      techniques,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func toEntitlementDomain(data *model.PromptPurchaseModel) *entity.Entitlement {
	if data == nil {
		return nil
	}

	return &entity.Entitlement{
		ID:                data.ID,
		UserID:            data.UserID,
		ArtworkID:         data.ArtworkID,
		CheckoutSessionID: data.CheckoutSessionID,
		PaymentIntentID:   data.PaymentIntentID,
		AmountPaid:        data.AmountPaid,
		Status:            entity.EntitlementStatus(data.Status),
		PayerEmail:        data.PayerEmail,
		CreatedAt:         data.CreatedAt,
		RefundedAt:        data.RefundedAt,
	}
}

func toPurchaseRecordDomain(row *purchaseRow) *entity.PurchaseRecord {
	record := &entity.PurchaseRecord{
		Entitlement: *toEntitlementDomain(&row.PromptPurchaseModel),
	}
	if row.UserName != nil {
		record.UserName = *row.UserName
	}
	if row.UserEmail != nil {
		record.UserEmail = *row.UserEmail
	}
	if row.ArtworkTitle != nil {
		record.ArtworkTitle = *row.ArtworkTitle
	}
	if row.ArtworkSrc != nil {
		record.ArtworkSrc = *row.ArtworkSrc
	}

	return record
}
