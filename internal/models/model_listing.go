package models

import (
	"time"

	"gorm.io/datatypes"
)

type ListingKind string

const (
	ListingKindSale ListingKind = "sale"
	ListingKindRent ListingKind = "rent"
)

type ListingStatus string

const (
	ListingStatusPublished ListingStatus = "published"
	ListingStatusArchived  ListingStatus = "archived"
)

// Listing is a property advert owned by a seller. Mutations require the
// seller to hold an active subscription.
type Listing struct {
	ID          string         `gorm:"column:id;type:uuid;primary_key" json:"id"`
	SellerID    string         `gorm:"column:seller_id;type:uuid;not null;index" json:"seller_id"`
	Title       string         `gorm:"column:title;type:varchar(255);not null" json:"title"`
	Description string         `gorm:"column:description;type:text" json:"description"`
	Kind        ListingKind    `gorm:"column:kind;type:varchar(8);not null" json:"kind"`
	Status      ListingStatus  `gorm:"column:status;type:varchar(16);not null" json:"status"`
	Price       int64          `gorm:"column:price;type:bigint;not null" json:"price"`
	Address     string         `gorm:"column:address;type:varchar(255)" json:"address"`
	City        string         `gorm:"column:city;type:varchar(128);index" json:"city"`
	Bedrooms    int            `gorm:"column:bedrooms" json:"bedrooms"`
	Bathrooms   int            `gorm:"column:bathrooms" json:"bathrooms"`
	AreaSqm     float64        `gorm:"column:area_sqm" json:"area_sqm"`
	Photos      datatypes.JSON `gorm:"column:photos;type:jsonb;default:'[]'" json:"photos"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

func (Listing) TableName() string {
	return "listings"
}
