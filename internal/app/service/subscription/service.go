package subscription

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/homegrove/estate/internal/app/service/plan"
	"github.com/homegrove/estate/internal/models"
	"github.com/homegrove/estate/pkg/logctx"
	"github.com/homegrove/estate/pkg/tool"
	"github.com/homegrove/estate/pkg/types"
)

// demoSuccessLast4 is the sentinel for the demo-card flow: exactly these four
// digits simulate a successful charge, anything else a declined one.
const demoSuccessLast4 = "1111"

var (
	ErrSubjectNotFound = errors.New("subject not found")
	ErrInvalidLast4    = errors.New("last 4 digits must be exactly four digits")
	ErrInvalidRequest  = errors.New("invalid request")
)

type AssignRequest struct {
	SubjectID   string              `json:"subject_id"`
	SubjectKind types.SubjectKind   `json:"subject_kind"`
	PlanType    types.PlanType      `json:"plan_type"`
	Method      types.PaymentMethod `json:"method"`
	StaffNote   string              `json:"staff_note"`
}

type DemoPaymentRequest struct {
	SubjectID   string            `json:"subject_id"`
	SubjectKind types.SubjectKind `json:"subject_kind"`
	PlanType    types.PlanType    `json:"plan_type"`
	Last4Digits string            `json:"last_4_digits"`
}

type PaymentFailureRequest struct {
	SubjectID   string            `json:"subject_id"`
	SubjectKind types.SubjectKind `json:"subject_kind"`
	Reason      string            `json:"reason"`
}

// AssignResult carries both records produced by the assignment workflow.
// Subscription is nil when the payment failed.
type AssignResult struct {
	Subscription *models.Subscription `json:"subscription"`
	Transaction  *models.Transaction  `json:"transaction"`
}

// Manager is the subscription lifecycle interface used by HTTP handlers.
type Manager interface {
	// ActiveSubscription returns the subject's current active and unexpired
	// subscription, or nil when there is none.
	ActiveSubscription(ctx context.Context, subjectID string, kind types.SubjectKind) (*models.Subscription, error)
	// Assign turns a staff plan selection into a persisted subscription plus
	// a success transaction, atomically.
	Assign(ctx context.Context, req *AssignRequest) (*AssignResult, error)
	// ProcessDemoPayment runs the self-service demo-card flow; the outcome
	// depends on the last-4-digits sentinel.
	ProcessDemoPayment(ctx context.Context, req *DemoPaymentRequest) (*AssignResult, error)
	// RecordPaymentFailure writes a failed transaction without touching any
	// subscription.
	RecordPaymentFailure(ctx context.Context, req *PaymentFailureRequest) (*models.Transaction, error)
}

type Service struct {
	db    *gorm.DB
	plans *plan.Service
	log   *zap.SugaredLogger
}

func NewService(db *gorm.DB, plans *plan.Service, log *zap.SugaredLogger) Manager {
	return &Service{db: db, plans: plans, log: log}
}

// roleForKind maps subject kinds to the account role that owns them.
func roleForKind(kind types.SubjectKind) types.Role {
	if kind == types.SubjectKindSeller {
		return types.RoleSeller
	}
	return types.RoleBuyer
}

func (s *Service) ActiveSubscription(ctx context.Context, subjectID string, kind types.SubjectKind) (*models.Subscription, error) {
	return activeSubscription(s.db.WithContext(ctx), subjectID, kind)
}

// activeSubscription is the shared lookup, usable inside a transaction.
// Ordered by end_at descending so the most recent period wins if, contrary to
// the storage invariant, more than one active row exists.
func activeSubscription(tx *gorm.DB, subjectID string, kind types.SubjectKind) (*models.Subscription, error) {
	var sub models.Subscription
	err := tx.
		Where("subject_id = ? AND subject_kind = ? AND status = ? AND end_at > ?",
			subjectID, kind, types.SubscriptionStatusActive, time.Now()).
		Order("end_at desc").
		First(&sub).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up active subscription: %w", err)
	}
	return &sub, nil
}

func (s *Service) Assign(ctx context.Context, req *AssignRequest) (*AssignResult, error) {
	method := req.Method
	if method == "" {
		method = types.PaymentMethodCash
	}
	return s.runWorkflow(ctx, workflowInput{
		subjectID:   req.SubjectID,
		subjectKind: req.SubjectKind,
		planType:    req.PlanType,
		method:      method,
		staffNote:   req.StaffNote,
		reason:      types.SubscriptionChangeReasonAssign,
		success:     true,
	})
}

func (s *Service) ProcessDemoPayment(ctx context.Context, req *DemoPaymentRequest) (*AssignResult, error) {
	if len(req.Last4Digits) != 4 || !isDigits(req.Last4Digits) {
		return nil, ErrInvalidLast4
	}

	in := workflowInput{
		subjectID:   req.SubjectID,
		subjectKind: req.SubjectKind,
		planType:    req.PlanType,
		method:      types.PaymentMethodDemoCard,
		cardLast4:   req.Last4Digits,
		reason:      types.SubscriptionChangeReasonDemoPayment,
		success:     req.Last4Digits == demoSuccessLast4,
	}
	if !in.success {
		in.failureReason = "demo card declined"
	}
	return s.runWorkflow(ctx, in)
}

func (s *Service) RecordPaymentFailure(ctx context.Context, req *PaymentFailureRequest) (*models.Transaction, error) {
	if req.Reason == "" {
		return nil, fmt.Errorf("%w: failure reason is required", ErrInvalidRequest)
	}
	if _, err := s.resolveSubject(ctx, req.SubjectID, req.SubjectKind); err != nil {
		return nil, err
	}

	txn := &models.Transaction{
		ID:            tool.GenerateUUIDV7(),
		SubjectID:     req.SubjectID,
		SubjectKind:   req.SubjectKind,
		Currency:      "USD",
		Status:        types.TransactionStatusFailed,
		Method:        types.PaymentMethodCash,
		FailureReason: &req.Reason,
	}
	if err := s.db.WithContext(ctx).Create(txn).Error; err != nil {
		return nil, fmt.Errorf("failed to record payment failure: %w", err)
	}
	return txn, nil
}

type workflowInput struct {
	subjectID     string
	subjectKind   types.SubjectKind
	planType      types.PlanType
	method        types.PaymentMethod
	cardLast4     string
	staffNote     string
	reason        types.SubscriptionChangeReason
	success       bool
	failureReason string
}

// runWorkflow is the assignment workflow: resolve the subject and the plan,
// compute the next period, persist the transaction, and, on success, persist
// the chained subscription and back-link the transaction to it. The
// transaction write, the subscription write, and the back-link happen in one
// database transaction, so a success transaction can never persist without
// its subscription link.
func (s *Service) runWorkflow(ctx context.Context, in workflowInput) (*AssignResult, error) {
	if in.subjectID == "" {
		return nil, fmt.Errorf("%w: subject id is required", ErrInvalidRequest)
	}
	if _, err := s.resolveSubject(ctx, in.subjectID, in.subjectKind); err != nil {
		return nil, err
	}
	p, err := s.plans.GetByType(ctx, in.planType)
	if err != nil {
		return nil, err
	}

	var result AssignResult
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		prior, err := activeSubscription(tx, in.subjectID, in.subjectKind)
		if err != nil {
			return err
		}

		period, err := ComputePeriod(prior, p.DurationMonths, time.Now())
		if err != nil {
			return err
		}

		txn := &models.Transaction{
			ID:             tool.GenerateUUIDV7(),
			SubjectID:      in.subjectID,
			SubjectKind:    in.subjectKind,
			Amount:         p.TotalPrice,
			Currency:       "USD",
			Status:         types.TransactionStatusSuccess,
			Method:         in.method,
			CardLast4:      in.cardLast4,
			PlanType:       in.planType,
			DurationMonths: p.DurationMonths,
		}
		if in.staffNote != "" {
			txn.StaffNote = &in.staffNote
		}
		if !in.success {
			txn.Status = types.TransactionStatusFailed
			txn.FailureReason = &in.failureReason
		}
		if err := tx.Create(txn).Error; err != nil {
			return fmt.Errorf("failed to create transaction: %w", err)
		}
		result.Transaction = txn

		if !in.success {
			return nil
		}

		// The prior active period is superseded by the chained one; expiring
		// it keeps the partial unique index on active rows satisfied.
		if prior != nil {
			prior.Status = types.SubscriptionStatusExpired
			if err := tx.Save(prior).Error; err != nil {
				return fmt.Errorf("failed to expire prior subscription: %w", err)
			}
		}

		sub := &models.Subscription{
			ID:            tool.GenerateUUIDV7(),
			SubjectID:     in.subjectID,
			SubjectKind:   in.subjectKind,
			PlanType:      in.planType,
			Status:        types.SubscriptionStatusActive,
			StartAt:       period.StartAt,
			EndAt:         period.EndAt,
			Amount:        p.TotalPrice,
			TransactionID: &txn.ID,
		}
		if err := tx.Create(sub).Error; err != nil {
			return fmt.Errorf("failed to create subscription: %w", err)
		}

		txn.SubscriptionID = &sub.ID
		if err := tx.Save(txn).Error; err != nil {
			return fmt.Errorf("failed to link transaction to subscription: %w", err)
		}

		logRow := &models.SubscriptionLog{
			ID:          tool.GenerateUUIDV7(),
			SubjectID:   in.subjectID,
			SubjectKind: in.subjectKind,
			Reason:      in.reason,
			Before:      datatypes.NewJSONType(prior),
			After:       datatypes.NewJSONType(sub),
			Extra:       datatypes.JSONMap{},
		}
		if err := tx.Create(logRow).Error; err != nil {
			return fmt.Errorf("failed to write subscription log: %w", err)
		}

		result.Subscription = sub
		return nil
	})
	if err != nil {
		return nil, err
	}

	logctx.FromCtx(ctx, s.log).Infow("subscription workflow finished",
		"subject_id", in.subjectID,
		"subject_kind", in.subjectKind,
		"plan_type", in.planType,
		"status", result.Transaction.Status,
	)
	return &result, nil
}

func (s *Service) resolveSubject(ctx context.Context, subjectID string, kind types.SubjectKind) (*models.Account, error) {
	var acct models.Account
	err := s.db.WithContext(ctx).
		Where("id = ? AND role = ?", subjectID, roleForKind(kind)).
		First(&acct).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSubjectNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve subject: %w", err)
	}
	return &acct, nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
