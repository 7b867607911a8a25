package postgres

import (
	"context"
	"time"

	"gallery/internal/domain/entity"
	domainerrors "gallery/internal/domain/errors"
	"gallery/internal/domain/repository"
	"gallery/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// purchaseRow is one admin listing row. Joined columns are nullable because
// users and artworks can be removed after the purchase.
type purchaseRow struct {
	model.PromptPurchaseModel `gorm:"embedded"`

	UserName     *string
	UserEmail    *string
	ArtworkTitle *string
	ArtworkSrc   *string
}

type entitlementRepository struct {
	db *gorm.DB
}

// NewEntitlementRepository is the constructor for entitlementRepository.
func NewEntitlementRepository(db *gorm.DB) repository.EntitlementRepository {
	return &entitlementRepository{
		db: db,
	}
}

// primary pins a statement to the write node so a just-reconciled purchase is
// visible to the very next read.
func (repo *entitlementRepository) primary(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).Clauses(dbresolver.Write)
}

func (repo *entitlementRepository) HasCompleted(ctx context.Context, userID uuid.UUID, artworkID string) (bool, error) {
	var count int64

	if err := repo.primary(ctx).
		Model(&model.PromptPurchaseModel{}).
		Where("user_id = ? AND artwork_id = ? AND status = ?", userID, artworkID, string(entity.EntitlementStatusCompleted)).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check completed entitlement")
	}

	return count > 0, nil
}

func (repo *entitlementRepository) ListCompletedArtworkIDs(ctx context.Context, userID uuid.UUID) (map[string]struct{}, error) {
	var artworkIDs []string

	if err := repo.primary(ctx).
		Model(&model.PromptPurchaseModel{}).
		Where("user_id = ? AND status = ?", userID, string(entity.EntitlementStatusCompleted)).
		Pluck("artwork_id", &artworkIDs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list completed artwork ids")
	}

	set := make(map[string]struct{}, len(artworkIDs))
	for _, id := range artworkIDs {
		set[id] = struct{}{}
	}

	return set, nil
}

func (repo *entitlementRepository) FindByCheckoutSessionID(ctx context.Context, sessionID string) (*entity.Entitlement, error) {
	var purchaseM model.PromptPurchaseModel

	if err := repo.primary(ctx).
		Where("checkout_session_id = ?", sessionID).
		First(&purchaseM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEntitlementNotFound
		}

		return nil, errors.Wrap(err, "failed to find entitlement by checkout session")
	}

	return toEntitlementDomain(&purchaseM), nil
}

// InsertCompleted relies on the unique indexes to settle concurrent deliveries
// of the same checkout session.
func (repo *entitlementRepository) InsertCompleted(ctx context.Context, in repository.NewEntitlement) (*entity.Entitlement, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate entitlement id")
	}

	purchaseM := &model.PromptPurchaseModel{
		ID:                id,
		UserID:            in.UserID,
		ArtworkID:         in.ArtworkID,
		CheckoutSessionID: in.CheckoutSessionID,
		PaymentIntentID:   in.PaymentIntentID,
		AmountPaid:        in.AmountPaid,
		Status:            string(entity.EntitlementStatusCompleted),
		PayerEmail:        in.PayerEmail,
		CreatedAt:         time.Now(),
	}

	if err := repo.db.WithContext(ctx).Create(purchaseM).Error; err != nil {
		if constraint, ok := uniqueViolation(err); ok {
			if constraint == model.PromptPurchaseCompletedIndex {
				return nil, repository.ErrAlreadyEntitled
			}

			return nil, repository.ErrDuplicateCheckoutSession
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to insert completed entitlement")
	}

	return toEntitlementDomain(purchaseM), nil
}

func (repo *entitlementRepository) MarkRefunded(ctx context.Context, paymentIntentID string) (int64, error) {
	return repo.markRefunded(ctx, "payment_intent_id = ?", paymentIntentID)
}

func (repo *entitlementRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Entitlement, error) {
	var purchaseM model.PromptPurchaseModel

	if err := repo.primary(ctx).
		Where("id = ?", id).
		First(&purchaseM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEntitlementNotFound
		}

		return nil, errors.Wrap(err, "failed to find entitlement by id")
	}

	return toEntitlementDomain(&purchaseM), nil
}

func (repo *entitlementRepository) MarkRefundedByID(ctx context.Context, id uuid.UUID) (int64, error) {
	return repo.markRefunded(ctx, "id = ?", id)
}

// markRefunded only touches completed rows, which makes repeated refunds no-ops.
func (repo *entitlementRepository) markRefunded(ctx context.Context, cond string, arg any) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.PromptPurchaseModel{}).
		Where(cond, arg).
		Where("status = ?", string(entity.EntitlementStatusCompleted)).
		Updates(map[string]any{
			"status":      string(entity.EntitlementStatusRefunded),
			"refunded_at": time.Now(),
		})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark entitlement refunded")
	}

	return result.RowsAffected, nil
}

func (repo *entitlementRepository) List(ctx context.Context, filter entity.PurchaseFilter) ([]*entity.PurchaseRecord, error) {
	var rows []*purchaseRow

	query := repo.primary(ctx).
		Table("prompt_purchases AS pp").
		Select("pp.*, u.name AS user_name, u.email AS user_email, a.title AS artwork_title, a.image_src AS artwork_src").
		Joins("LEFT JOIN users u ON u.id = pp.user_id").
		Joins("LEFT JOIN artworks a ON a.id = pp.artwork_id")
	if filter.Status != "" {
		query = query.Where("pp.status = ?", string(filter.Status))
	}
	query = applyDateRange(query, "pp.created_at", filter)
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	if err := query.Order("pp.created_at DESC").Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list purchases")
	}

	records := make([]*entity.PurchaseRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, toPurchaseRecordDomain(row))
	}

	return records, nil
}

// Summary ignores filter.Status: revenue is always counted over completed purchases.
func (repo *entitlementRepository) Summary(ctx context.Context, filter entity.PurchaseFilter) (*entity.PurchaseSummary, error) {
	var summary struct {
		TotalRevenue int64
		TotalCount   int64
	}

	query := repo.primary(ctx).
		Model(&model.PromptPurchaseModel{}).
		Select("COALESCE(SUM(amount_paid), 0) AS total_revenue, COUNT(*) AS total_count").
		Where("status = ?", string(entity.EntitlementStatusCompleted))
	query = applyDateRange(query, "created_at", filter)

	if err := query.Scan(&summary).Error; err != nil {
		return nil, errors.Wrap(err, "failed to summarize purchases")
	}

	return &entity.PurchaseSummary{
		TotalRevenue: summary.TotalRevenue,
		TotalCount:   summary.TotalCount,
	}, nil
}

func applyDateRange(query *gorm.DB, column string, filter entity.PurchaseFilter) *gorm.DB {
	if filter.From != nil {
		query = query.Where(column+" >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where(column+" <= ?", *filter.To)
	}

	return query
}
