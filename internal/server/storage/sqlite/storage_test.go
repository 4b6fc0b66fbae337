package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/ecoestate/internal/models"
)

// createTestStorage создает in-memory базу с примененными миграциями
func createTestStorage(t *testing.T) *Storage {
	t.Helper()

	s, err := New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, s.Close())
	})
	return s
}

func seedAgentData(username string) *models.Agent {
	return &models.Agent{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: "argon2id$v=19$m=65536,t=1,p=4$c2FsdA$aGFzaA",
		CreatedAt:    time.Now().UTC(),
	}
}

func seedAgent(t *testing.T, s *Storage, username string) *models.Agent {
	t.Helper()

	agent := seedAgentData(username)
	require.NoError(t, s.CreateAgent(context.Background(), agent))
	return agent
}

func seedCatalog(t *testing.T, s *Storage) {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, s.UpsertRegion(ctx, &models.Region{
		ID: "r1", Name: "Ladoga North", ClimateZone: "humid continental", AveragePrice: 30_000_000,
	}))
	require.NoError(t, s.UpsertEcoFeature(ctx, &models.EcoFeature{
		ID: "f-solar", Name: "Solar panels", Category: models.FeatureCategoryEnergy, AnnualSavings: 120_000,
	}))
	require.NoError(t, s.UpsertEcoFeature(ctx, &models.EcoFeature{
		ID: "f-grey", Name: "Greywater reuse", Category: models.FeatureCategoryWater, AnnualSavings: 40_000,
	}))
	require.NoError(t, s.UpsertProperty(ctx, &models.Property{
		ID: "p1", Title: "Solar Villa", RegionID: "r1",
		Status: models.PropertyStatusAvailable, Price: 52_000_000,
		AreaSqm: 210, Bedrooms: 4,
		EcoFeatureIDs: []string{"f-solar", "f-grey"},
		UpdatedAt:     time.Now().UTC(),
	}))
}

// Миграции применяются на чистой базе без ошибок
func TestNew_RunsMigrations(t *testing.T) {
	s := createTestStorage(t)

	var count int
	err := s.DB().QueryRow(
		`SELECT count(*) FROM sqlite_master WHERE type = 'table' AND name IN
		 ('agents', 'regions', 'eco_features', 'properties', 'property_features',
		  'projects', 'milestones', 'project_notes', 'inquiries')`).Scan(&count)
	require.NoError(t, err)
	require.Equal(t, 9, count)
}
