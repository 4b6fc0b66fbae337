package sqlite

import (
	"context"
	"fmt"
	"strings"

	"github.com/iudanet/ecoestate/internal/models"
	"github.com/iudanet/ecoestate/internal/server/storage"
)

// CreateInquiry stores a buyer inquiry
func (s *Storage) CreateInquiry(ctx context.Context, inquiry *models.Inquiry) error {
	query := `
		INSERT INTO inquiries (id, property_id, name, email, message, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		inquiry.ID,
		inquiry.PropertyID,
		inquiry.Name,
		inquiry.Email,
		inquiry.Message,
		inquiry.CreatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "FOREIGN KEY constraint failed") {
			return storage.ErrPropertyNotFound
		}
		return fmt.Errorf("failed to insert inquiry: %w", err)
	}

	return nil
}

// ListInquiriesByProperty retrieves inquiries for a property, newest first
func (s *Storage) ListInquiriesByProperty(ctx context.Context, propertyID string) ([]models.Inquiry, error) {
	query := `
		SELECT id, property_id, name, email, message, created_at
		FROM inquiries
		WHERE property_id = ?
		ORDER BY created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query, propertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query inquiries: %w", err)
	}
	defer rows.Close()

	var inquiries []models.Inquiry
	for rows.Next() {
		var inq models.Inquiry
		if err := rows.Scan(&inq.ID, &inq.PropertyID, &inq.Name, &inq.Email, &inq.Message, &inq.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan inquiry: %w", err)
		}
		inquiries = append(inquiries, inq)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate inquiries: %w", err)
	}

	return inquiries, nil
}
