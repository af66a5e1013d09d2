package subscription

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/homegrove/estate/internal/app/service/plan"
	"github.com/homegrove/estate/internal/models"
	"github.com/homegrove/estate/pkg/tool"
	"github.com/homegrove/estate/pkg/types"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("set TEST_DATABASE_DSN to run database-backed tests")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Account{},
		&models.SubscriptionPlan{},
		&models.Subscription{},
		&models.SubscriptionLog{},
		&models.Transaction{},
	))
	require.NoError(t, db.Exec(
		`CREATE UNIQUE INDEX IF NOT EXISTS uq_active_subscription_per_subject
		 ON subscriptions (subject_id, subject_kind) WHERE status = 'active'`,
	).Error)
	return db
}

func TestAssign_ConcurrentAssignmentsKeepOneActiveRow(t *testing.T) {
	db := testDB(t)
	log := zap.NewNop().Sugar()

	plans := plan.NewService(db, log)
	_, err := plans.List(context.Background())
	require.NoError(t, err)

	seller := &models.Account{
		ID:           tool.GenerateUUIDV7(),
		Role:         types.RoleSeller,
		Name:         "Concurrent Seller",
		Email:        fmt.Sprintf("%s@example.com", tool.GenerateUUIDV7()),
		PasswordHash: "x",
	}
	require.NoError(t, db.Create(seller).Error)

	svc := NewService(db, plans, log)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Assign(context.Background(), &AssignRequest{
				SubjectID:   seller.ID,
				SubjectKind: types.SubjectKindSeller,
				PlanType:    types.PlanTypeMonthly,
			})
		}(i)
	}
	wg.Wait()

	// Either both assignments chained, or the loser hit the partial unique
	// index and rolled back. Never two active rows.
	require.True(t, errs[0] == nil || errs[1] == nil)

	var active int64
	require.NoError(t, db.Model(&models.Subscription{}).
		Where("subject_id = ? AND subject_kind = ? AND status = ?",
			seller.ID, types.SubjectKindSeller, types.SubscriptionStatusActive).
		Count(&active).Error)
	require.Equal(t, int64(1), active)

	if errs[0] == nil && errs[1] == nil {
		var subs []*models.Subscription
		require.NoError(t, db.
			Where("subject_id = ?", seller.ID).
			Order("start_at asc").
			Find(&subs).Error)
		require.Len(t, subs, 2)
		require.True(t, subs[1].StartAt.Equal(subs[0].EndAt), "periods must chain with no gap")
	}
}
