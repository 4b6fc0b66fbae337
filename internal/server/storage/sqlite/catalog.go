package sqlite

import (
	"context"
	"fmt"

	"github.com/iudanet/ecoestate/internal/models"
)

// ListProperties retrieves all listed properties with their eco features
func (s *Storage) ListProperties(ctx context.Context) ([]models.Property, error) {
	query := `
		SELECT id, title, region_id, status, price, area_sqm, bedrooms, updated_at
		FROM properties
		ORDER BY id
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query properties: %w", err)
	}
	defer rows.Close()

	var properties []models.Property
	for rows.Next() {
		var p models.Property
		if err := rows.Scan(
			&p.ID, &p.Title, &p.RegionID, &p.Status,
			&p.Price, &p.AreaSqm, &p.Bedrooms, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan property: %w", err)
		}
		properties = append(properties, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate properties: %w", err)
	}

	features, err := s.featureLinks(ctx)
	if err != nil {
		return nil, err
	}
	for i := range properties {
		properties[i].EcoFeatureIDs = features[properties[i].ID]
	}

	return properties, nil
}

// featureLinks загружает связи property -> eco features одним запросом
func (s *Storage) featureLinks(ctx context.Context) (map[string][]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT property_id, feature_id FROM property_features ORDER BY property_id, feature_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query property features: %w", err)
	}
	defer rows.Close()

	links := make(map[string][]string)
	for rows.Next() {
		var propertyID, featureID string
		if err := rows.Scan(&propertyID, &featureID); err != nil {
			return nil, fmt.Errorf("failed to scan property feature: %w", err)
		}
		links[propertyID] = append(links[propertyID], featureID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate property features: %w", err)
	}

	return links, nil
}

// ListRegions retrieves all market regions
func (s *Storage) ListRegions(ctx context.Context) ([]models.Region, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, climate_zone, average_price FROM regions ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query regions: %w", err)
	}
	defer rows.Close()

	var regions []models.Region
	for rows.Next() {
		var r models.Region
		if err := rows.Scan(&r.ID, &r.Name, &r.ClimateZone, &r.AveragePrice); err != nil {
			return nil, fmt.Errorf("failed to scan region: %w", err)
		}
		regions = append(regions, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate regions: %w", err)
	}

	return regions, nil
}

// ListEcoFeatures retrieves the eco feature dictionary
func (s *Storage) ListEcoFeatures(ctx context.Context) ([]models.EcoFeature, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, category, annual_savings FROM eco_features ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query eco features: %w", err)
	}
	defer rows.Close()

	var features []models.EcoFeature
	for rows.Next() {
		var f models.EcoFeature
		if err := rows.Scan(&f.ID, &f.Name, &f.Category, &f.AnnualSavings); err != nil {
			return nil, fmt.Errorf("failed to scan eco feature: %w", err)
		}
		features = append(features, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate eco features: %w", err)
	}

	return features, nil
}

// UpsertRegion creates or replaces a region
func (s *Storage) UpsertRegion(ctx context.Context, region *models.Region) error {
	query := `
		INSERT INTO regions (id, name, climate_zone, average_price)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			name = excluded.name,
			climate_zone = excluded.climate_zone,
			average_price = excluded.average_price
	`
	if _, err := s.db.ExecContext(ctx, query,
		region.ID, region.Name, region.ClimateZone, region.AveragePrice); err != nil {
		return fmt.Errorf("failed to upsert region: %w", err)
	}
	return nil
}

// UpsertEcoFeature creates or replaces an eco feature
func (s *Storage) UpsertEcoFeature(ctx context.Context, feature *models.EcoFeature) error {
	query := `
		INSERT INTO eco_features (id, name, category, annual_savings)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			name = excluded.name,
			category = excluded.category,
			annual_savings = excluded.annual_savings
	`
	if _, err := s.db.ExecContext(ctx, query,
		feature.ID, feature.Name, feature.Category, feature.AnnualSavings); err != nil {
		return fmt.Errorf("failed to upsert eco feature: %w", err)
	}
	return nil
}

// UpsertProperty creates or replaces a property and its feature links
func (s *Storage) UpsertProperty(ctx context.Context, property *models.Property) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback после commit это no-op

	query := `
		INSERT INTO properties (id, title, region_id, status, price, area_sqm, bedrooms, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			title = excluded.title,
			region_id = excluded.region_id,
			status = excluded.status,
			price = excluded.price,
			area_sqm = excluded.area_sqm,
			bedrooms = excluded.bedrooms,
			updated_at = excluded.updated_at
	`
	if _, err := tx.ExecContext(ctx, query,
		property.ID, property.Title, property.RegionID, property.Status,
		property.Price, property.AreaSqm, property.Bedrooms, property.UpdatedAt,
	); err != nil {
		return fmt.Errorf("failed to upsert property: %w", err)
	}

	// Связи с eco features перезаписываются целиком
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM property_features WHERE property_id = ?`, property.ID); err != nil {
		return fmt.Errorf("failed to clear property features: %w", err)
	}
	for _, featureID := range property.EcoFeatureIDs {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO property_features (property_id, feature_id) VALUES (?, ?)`,
			property.ID, featureID); err != nil {
			return fmt.Errorf("failed to link feature %s: %w", featureID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit property upsert: %w", err)
	}
	return nil
}
