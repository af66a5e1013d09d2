package plan

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/homegrove/estate/internal/models"
	"github.com/homegrove/estate/pkg/tool"
	"github.com/homegrove/estate/pkg/types"
)

var (
	ErrPlanNotFound = errors.New("subscription plan not found")
	ErrInvalidPlan  = errors.New("unknown plan type")
)

type Service struct {
	db  *gorm.DB
	log *zap.SugaredLogger
}

func NewService(db *gorm.DB, log *zap.SugaredLogger) *Service {
	return &Service{db: db, log: log}
}

// defaultPlans is the catalog seeded on first read when the table is empty.
func defaultPlans() []*models.SubscriptionPlan {
	plans := []*models.SubscriptionPlan{
		{PlanType: types.PlanTypeMonthly, Label: "Monthly", MonthlyPrice: 2999, DiscountPct: 0},
		{PlanType: types.PlanTypeQuarterly, Label: "Quarterly", MonthlyPrice: 2699, DiscountPct: 10},
		{PlanType: types.PlanTypeAnnually, Label: "Annually", MonthlyPrice: 2249, DiscountPct: 25},
	}
	for _, p := range plans {
		p.ID = tool.GenerateUUIDV7()
		p.DurationMonths = p.PlanType.Months()
		p.TotalPrice = p.MonthlyPrice * int64(p.DurationMonths)
	}
	return plans
}

// List returns the catalog ordered by duration, seeding defaults if empty.
func (s *Service) List(ctx context.Context) ([]*models.SubscriptionPlan, error) {
	if err := s.seedIfEmpty(ctx); err != nil {
		return nil, err
	}
	var plans []*models.SubscriptionPlan
	if err := s.db.WithContext(ctx).Order("duration_months asc").Find(&plans).Error; err != nil {
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}
	return plans, nil
}

// GetByType resolves a catalog entry for the given plan type.
func (s *Service) GetByType(ctx context.Context, planType types.PlanType) (*models.SubscriptionPlan, error) {
	if err := s.seedIfEmpty(ctx); err != nil {
		return nil, err
	}
	var p models.SubscriptionPlan
	err := s.db.WithContext(ctx).Where("plan_type = ?", planType).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPlanNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}
	return &p, nil
}

type PlanUpdate struct {
	PlanType     types.PlanType `json:"plan_type"`
	Label        string         `json:"label"`
	MonthlyPrice int64          `json:"monthly_price"`
	DiscountPct  int            `json:"discount_pct"`
}

// UpdateAll upserts catalog entries by plan type. Duration and total price
// are derived, not client-supplied.
func (s *Service) UpdateAll(ctx context.Context, updates []PlanUpdate) ([]*models.SubscriptionPlan, error) {
	if len(updates) == 0 {
		return nil, fmt.Errorf("no plan updates given: %w", ErrInvalidPlan)
	}
	for _, u := range updates {
		if !u.PlanType.Valid() {
			return nil, fmt.Errorf("%w: %s", ErrInvalidPlan, u.PlanType)
		}
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, u := range updates {
			var p models.SubscriptionPlan
			err := tx.Where("plan_type = ?", u.PlanType).First(&p).Error
			if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("failed to load plan %s: %w", u.PlanType, err)
			}
			if p.ID == "" {
				p.ID = tool.GenerateUUIDV7()
				p.PlanType = u.PlanType
			}
			p.Label = u.Label
			p.MonthlyPrice = u.MonthlyPrice
			p.DiscountPct = u.DiscountPct
			p.DurationMonths = u.PlanType.Months()
			p.TotalPrice = u.MonthlyPrice * int64(p.DurationMonths)
			if err := tx.Save(&p).Error; err != nil {
				return fmt.Errorf("failed to save plan %s: %w", u.PlanType, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.List(ctx)
}

func (s *Service) seedIfEmpty(ctx context.Context) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.SubscriptionPlan{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count plans: %w", err)
	}
	if count > 0 {
		return nil
	}
	if err := s.db.WithContext(ctx).Create(defaultPlans()).Error; err != nil {
		return fmt.Errorf("failed to seed plans: %w", err)
	}
	s.log.Infow("seeded default subscription plans")
	return nil
}
