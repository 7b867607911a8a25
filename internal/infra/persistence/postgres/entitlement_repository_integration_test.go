package postgres

import (
	"context"
	"net/url"
	"os"
	"strings"
	"testing"

	"gallery/internal/domain/entity"
	"gallery/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpg "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testPostgresDSNEnv = "GALLERY_TEST_POSTGRES_DSN"

// openTestDB migrates a throwaway schema on the server named by
// GALLERY_TEST_POSTGRES_DSN (URL form) and drops it when the test ends.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv(testPostgresDSNEnv)
	if dsn == "" {
		t.Skipf("Skipping Postgres test: %s env var not set", testPostgresDSNEnv)
	}

	schema := "gallery_test_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	gormConfig := &gorm.Config{SkipDefaultTransaction: true, Logger: logger.Discard}

	admin, err := gorm.Open(gormpg.Open(dsn), gormConfig)
	require.NoError(t, err)
	require.NoError(t, admin.Exec("CREATE SCHEMA "+schema).Error)
	t.Cleanup(func() {
		admin.Exec("DROP SCHEMA " + schema + " CASCADE")
		if sqlDB, err := admin.DB(); err == nil {
			sqlDB.Close()
		}
	})

	u, err := url.Parse(dsn)
	require.NoError(t, err)
	query := u.Query()
	query.Set("search_path", schema)
	u.RawQuery = query.Encode()

	db, err := gorm.Open(gormpg.Open(u.String()), gormConfig)
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	require.NoError(t, Migrate(context.Background(), db))

	return db
}

func newEntitlement(userID uuid.UUID, sessionID, paymentIntentID string) repository.NewEntitlement {
	return repository.NewEntitlement{
		UserID:            userID,
		ArtworkID:         "the-deep",
		CheckoutSessionID: sessionID,
		PaymentIntentID:   &paymentIntentID,
		AmountPaid:        399,
	}
}

func TestEntitlementRepository_Postgres_InsertCompleted(t *testing.T) {
	db := openTestDB(t)
	repo := NewEntitlementRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	first, err := repo.InsertCompleted(ctx, newEntitlement(userID, "cs_1", "pi_1"))
	require.NoError(t, err)
	assert.True(t, first.IsCompleted())

	t.Run("same checkout session twice", func(t *testing.T) {
		_, err := repo.InsertCompleted(ctx, newEntitlement(uuid.New(), "cs_1", "pi_2"))
		assert.True(t, errors.Is(err, repository.ErrDuplicateCheckoutSession), "got %v", err)
	})

	t.Run("already entitled through another session", func(t *testing.T) {
		_, err := repo.InsertCompleted(ctx, newEntitlement(userID, "cs_2", "pi_3"))
		assert.True(t, errors.Is(err, repository.ErrAlreadyEntitled), "got %v", err)
	})

	found, err := repo.FindByCheckoutSessionID(ctx, "cs_1")
	require.NoError(t, err)
	assert.Equal(t, first.ID, found.ID)

	_, err = repo.FindByCheckoutSessionID(ctx, "cs_2")
	assert.True(t, errors.Is(err, repository.ErrEntitlementNotFound))
}

func TestEntitlementRepository_Postgres_MarkRefunded(t *testing.T) {
	db := openTestDB(t)
	repo := NewEntitlementRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	_, err := repo.InsertCompleted(ctx, newEntitlement(userID, "cs_1", "pi_1"))
	require.NoError(t, err)

	rows, err := repo.MarkRefunded(ctx, "pi_1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	rows, err = repo.MarkRefunded(ctx, "pi_1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), rows, "second refund must not touch the row again")

	rows, err = repo.MarkRefunded(ctx, "pi_missing")
	require.NoError(t, err)
	assert.Equal(t, int64(0), rows)

	refunded, err := repo.FindByCheckoutSessionID(ctx, "cs_1")
	require.NoError(t, err)
	assert.Equal(t, entity.EntitlementStatusRefunded, refunded.Status)
	assert.NotNil(t, refunded.RefundedAt)

	owned, err := repo.HasCompleted(ctx, userID, "the-deep")
	require.NoError(t, err)
	assert.False(t, owned)

	// the completed-only index lets a refunded buyer pay again
	_, err = repo.InsertCompleted(ctx, newEntitlement(userID, "cs_2", "pi_2"))
	require.NoError(t, err)
}
