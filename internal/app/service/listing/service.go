package listing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/homegrove/estate/internal/app/service/subscription"
	"github.com/homegrove/estate/internal/models"
	"github.com/homegrove/estate/pkg/logctx"
	"github.com/homegrove/estate/pkg/tool"
	"github.com/homegrove/estate/pkg/types"
)

var (
	ErrListingNotFound = errors.New("listing not found")
	ErrNotOwner        = errors.New("listing belongs to another seller")
	ErrInvalidListing  = errors.New("invalid listing")
	// ErrSubscriptionRequired gates every listing mutation: sellers without an
	// active subscription cannot create or change listings.
	ErrSubscriptionRequired = errors.New("active subscription required")
)

type UpsertRequest struct {
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Kind        models.ListingKind `json:"kind"`
	Price       int64              `json:"price"`
	Address     string             `json:"address"`
	City        string             `json:"city"`
	Bedrooms    int                `json:"bedrooms"`
	Bathrooms   int                `json:"bathrooms"`
	AreaSqm     float64            `json:"area_sqm"`
	Photos      []string           `json:"photos"`
}

type BrowseRequest struct {
	City string             `json:"city"`
	Kind models.ListingKind `json:"kind"`
	From int                `json:"from"`
	Size int                `json:"size"`
}

type BrowseResponse struct {
	Items []*models.Listing `json:"items"`
	Total int64             `json:"total"`
}

type Service struct {
	db   *gorm.DB
	subs subscription.Manager
	log  *zap.SugaredLogger
}

func NewService(db *gorm.DB, subs subscription.Manager, log *zap.SugaredLogger) *Service {
	return &Service{db: db, subs: subs, log: log}
}

// requireActiveSubscription is the authorization predicate for seller
// mutations. Called on every create/update/delete.
func (s *Service) requireActiveSubscription(ctx context.Context, sellerID string) error {
	sub, err := s.subs.ActiveSubscription(ctx, sellerID, types.SubjectKindSeller)
	if err != nil {
		return err
	}
	if sub == nil {
		return ErrSubscriptionRequired
	}
	return nil
}

func (s *Service) Create(ctx context.Context, sellerID string, req *UpsertRequest) (*models.Listing, error) {
	if err := s.requireActiveSubscription(ctx, sellerID); err != nil {
		return nil, err
	}
	if req.Title == "" || req.Price <= 0 {
		return nil, fmt.Errorf("%w: title and a positive price are required", ErrInvalidListing)
	}
	if req.Kind != models.ListingKindSale && req.Kind != models.ListingKindRent {
		return nil, fmt.Errorf("%w: unknown listing kind %q", ErrInvalidListing, req.Kind)
	}

	photos, err := photosJSON(req.Photos)
	if err != nil {
		return nil, err
	}

	l := &models.Listing{
		ID:          tool.GenerateUUIDV7(),
		SellerID:    sellerID,
		Title:       req.Title,
		Description: req.Description,
		Kind:        req.Kind,
		Status:      models.ListingStatusPublished,
		Price:       req.Price,
		Address:     req.Address,
		City:        req.City,
		Bedrooms:    req.Bedrooms,
		Bathrooms:   req.Bathrooms,
		AreaSqm:     req.AreaSqm,
		Photos:      photos,
	}
	if err := s.db.WithContext(ctx).Create(l).Error; err != nil {
		return nil, fmt.Errorf("failed to create listing: %w", err)
	}
	logctx.FromCtx(ctx, s.log).Infow("listing created", "listing_id", l.ID, "seller_id", sellerID)
	return l, nil
}

func (s *Service) Update(ctx context.Context, sellerID, listingID string, req *UpsertRequest) (*models.Listing, error) {
	if err := s.requireActiveSubscription(ctx, sellerID); err != nil {
		return nil, err
	}

	l, err := s.ownedListing(ctx, sellerID, listingID)
	if err != nil {
		return nil, err
	}

	if req.Title != "" {
		l.Title = req.Title
	}
	if req.Description != "" {
		l.Description = req.Description
	}
	if req.Kind != "" {
		l.Kind = req.Kind
	}
	if req.Price > 0 {
		l.Price = req.Price
	}
	if req.Address != "" {
		l.Address = req.Address
	}
	if req.City != "" {
		l.City = req.City
	}
	if req.Bedrooms > 0 {
		l.Bedrooms = req.Bedrooms
	}
	if req.Bathrooms > 0 {
		l.Bathrooms = req.Bathrooms
	}
	if req.AreaSqm > 0 {
		l.AreaSqm = req.AreaSqm
	}
	if req.Photos != nil {
		photos, err := photosJSON(req.Photos)
		if err != nil {
			return nil, err
		}
		l.Photos = photos
	}

	if err := s.db.WithContext(ctx).Save(l).Error; err != nil {
		return nil, fmt.Errorf("failed to update listing: %w", err)
	}
	return l, nil
}

// Delete archives the listing rather than removing the row.
func (s *Service) Delete(ctx context.Context, sellerID, listingID string) error {
	if err := s.requireActiveSubscription(ctx, sellerID); err != nil {
		return err
	}

	l, err := s.ownedListing(ctx, sellerID, listingID)
	if err != nil {
		return err
	}

	l.Status = models.ListingStatusArchived
	if err := s.db.WithContext(ctx).Save(l).Error; err != nil {
		return fmt.Errorf("failed to archive listing: %w", err)
	}
	return nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*models.Listing, error) {
	var l models.Listing
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&l).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrListingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get listing: %w", err)
	}
	return &l, nil
}

// Browse lists published listings with optional city/kind filters.
func (s *Service) Browse(ctx context.Context, req *BrowseRequest) (*BrowseResponse, error) {
	if req.Size <= 0 {
		req.Size = 20
	}
	if req.From < 0 {
		req.From = 0
	}

	q := s.db.WithContext(ctx).Model(&models.Listing{}).
		Where("status = ?", models.ListingStatusPublished)
	if req.City != "" {
		q = q.Where("city = ?", req.City)
	}
	if req.Kind != "" {
		q = q.Where("kind = ?", req.Kind)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count listings: %w", err)
	}

	var rows []*models.Listing
	if err := q.Order("created_at desc").Limit(req.Size).Offset(req.From).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to browse listings: %w", err)
	}
	return &BrowseResponse{Items: rows, Total: total}, nil
}

func (s *Service) ownedListing(ctx context.Context, sellerID, listingID string) (*models.Listing, error) {
	l, err := s.GetByID(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if l.SellerID != sellerID {
		return nil, ErrNotOwner
	}
	return l, nil
}

func photosJSON(photos []string) (datatypes.JSON, error) {
	if photos == nil {
		photos = []string{}
	}
	b, err := json.Marshal(photos)
	if err != nil {
		return nil, fmt.Errorf("failed to encode photos: %w", err)
	}
	return datatypes.JSON(b), nil
}
