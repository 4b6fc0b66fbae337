package storage

import (
	"context"

	"github.com/iudanet/ecoestate/internal/models"
)

// CatalogStorage defines interface for the public marketplace catalog
type CatalogStorage interface {
	// ListProperties retrieves all listed properties with their eco features
	ListProperties(ctx context.Context) ([]models.Property, error)

	// ListRegions retrieves all market regions
	ListRegions(ctx context.Context) ([]models.Region, error)

	// ListEcoFeatures retrieves the eco feature dictionary
	ListEcoFeatures(ctx context.Context) ([]models.EcoFeature, error)

	// UpsertRegion creates or replaces a region
	UpsertRegion(ctx context.Context, region *models.Region) error

	// UpsertEcoFeature creates or replaces an eco feature
	UpsertEcoFeature(ctx context.Context, feature *models.EcoFeature) error

	// UpsertProperty creates or replaces a property and its feature links
	UpsertProperty(ctx context.Context, property *models.Property) error
}

// InquiryStorage defines interface for buyer inquiry persistence
type InquiryStorage interface {
	// CreateInquiry stores a buyer inquiry
	// Returns ErrPropertyNotFound if the property doesn't exist
	CreateInquiry(ctx context.Context, inquiry *models.Inquiry) error

	// ListInquiriesByProperty retrieves inquiries for a property, newest first
	ListInquiriesByProperty(ctx context.Context, propertyID string) ([]models.Inquiry, error)
}
