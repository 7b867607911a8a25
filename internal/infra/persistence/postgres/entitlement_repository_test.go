package postgres

import (
	"context"
	"testing"

	"gallery/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpg "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newDryRunDB builds statements against the postgres dialect without a server
// and records each rendered statement.
func newDryRunDB(t *testing.T) (*gorm.DB, *[]string) {
	t.Helper()

	db, err := gorm.Open(gormpg.New(gormpg.Config{DSN: "host=localhost user=gallery dbname=gallery sslmode=disable"}), &gorm.Config{
		DryRun:                 true,
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	var statements []string
	capture := func(tx *gorm.DB) {
		statements = append(statements, tx.Dialector.Explain(tx.Statement.SQL.String(), tx.Statement.Vars...))
	}
	require.NoError(t, db.Callback().Create().After("gorm:create").Register("test:capture_create", capture))
	require.NoError(t, db.Callback().Update().After("gorm:update").Register("test:capture_update", capture))

	return db, &statements
}

func TestEntitlementRepository_MarkRefunded_OnlyTouchesCompletedRows(t *testing.T) {
	db, statements := newDryRunDB(t)
	repo := NewEntitlementRepository(db)

	_, err := repo.MarkRefunded(context.Background(), "pi_1")
	require.NoError(t, err)

	require.Len(t, *statements, 1)
	stmt := (*statements)[0]
	assert.Contains(t, stmt, `UPDATE "prompt_purchases" SET`)
	assert.Contains(t, stmt, `"status"='refunded'`)
	assert.Contains(t, stmt, `WHERE payment_intent_id = 'pi_1' AND status = 'completed'`)
}

func TestEntitlementRepository_MarkRefundedByID_OnlyTouchesCompletedRows(t *testing.T) {
	db, statements := newDryRunDB(t)
	repo := NewEntitlementRepository(db)
	id := uuid.New()

	_, err := repo.MarkRefundedByID(context.Background(), id)
	require.NoError(t, err)

	require.Len(t, *statements, 1)
	assert.Contains(t, (*statements)[0], "WHERE id = '"+id.String()+"' AND status = 'completed'")
}

func TestEntitlementRepository_InsertCompleted_WritesCompletedRow(t *testing.T) {
	db, statements := newDryRunDB(t)
	repo := NewEntitlementRepository(db)
	userID := uuid.New()

	got, err := repo.InsertCompleted(context.Background(), repository.NewEntitlement{
		UserID:            userID,
		ArtworkID:         "the-deep",
		CheckoutSessionID: "cs_test_1",
		AmountPaid:        399,
	})
	require.NoError(t, err)

	assert.True(t, got.IsCompleted())
	assert.Equal(t, int64(399), got.AmountPaid)
	require.Len(t, *statements, 1)
	assert.Contains(t, (*statements)[0], `INSERT INTO "prompt_purchases"`)
	assert.Contains(t, (*statements)[0], "'cs_test_1'")
	assert.Contains(t, (*statements)[0], "'completed'")
}
