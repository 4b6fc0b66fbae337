package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/ecoestate/internal/server/storage"
)

func TestCreateAgent_And_Get(t *testing.T) {
	s := createTestStorage(t)
	ctx := context.Background()

	agent := seedAgent(t, s, "agent_ivanova")

	byName, err := s.GetAgentByUsername(ctx, "agent_ivanova")
	require.NoError(t, err)
	assert.Equal(t, agent.ID, byName.ID)
	assert.Equal(t, agent.PasswordHash, byName.PasswordHash)
	assert.Nil(t, byName.LastLogin)

	byID, err := s.GetAgentByID(ctx, agent.ID)
	require.NoError(t, err)
	assert.Equal(t, "agent_ivanova", byID.Username)
}

func TestCreateAgent_DuplicateUsername(t *testing.T) {
	s := createTestStorage(t)

	seedAgent(t, s, "agent_ivanova")

	dup := seedAgentData("agent_ivanova")
	err := s.CreateAgent(context.Background(), dup)
	require.ErrorIs(t, err, storage.ErrAgentAlreadyExists)
}

func TestGetAgent_NotFound(t *testing.T) {
	s := createTestStorage(t)
	ctx := context.Background()

	_, err := s.GetAgentByUsername(ctx, "ghost")
	require.ErrorIs(t, err, storage.ErrAgentNotFound)

	_, err = s.GetAgentByID(ctx, "no-such-id")
	require.ErrorIs(t, err, storage.ErrAgentNotFound)
}

func TestUpdateLastLogin(t *testing.T) {
	s := createTestStorage(t)
	ctx := context.Background()

	agent := seedAgent(t, s, "agent_ivanova")

	loginAt := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, s.UpdateLastLogin(ctx, agent.ID, loginAt))

	got, err := s.GetAgentByID(ctx, agent.ID)
	require.NoError(t, err)
	require.NotNil(t, got.LastLogin)
	assert.WithinDuration(t, loginAt, *got.LastLogin, time.Second)

	err = s.UpdateLastLogin(ctx, "no-such-id", loginAt)
	require.ErrorIs(t, err, storage.ErrAgentNotFound)
}
