package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/ecoestate/internal/models"
	"github.com/iudanet/ecoestate/pkg/api"
)

func TestClient_Health(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/health", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	assert.NoError(t, client.Health(context.Background()))
}

func TestClient_GetProperties(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/catalog/properties", r.URL.Path)

		resp := api.PropertiesResponse{Properties: []models.Property{
			{ID: "p1", Title: "Solar cottage", RegionID: "r1", Price: 250000},
			{ID: "p2", Title: "Passive house", RegionID: "r2", Price: 410000},
		}}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	props, err := client.GetProperties(context.Background())
	require.NoError(t, err)
	require.Len(t, props, 2)
	assert.Equal(t, "p1", props[0].ID)
	assert.Equal(t, "Passive house", props[1].Title)
}

func TestClient_GetProjects_SendsToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer token-123", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"projects":[]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	client.SetAccessToken("token-123")

	projects, err := client.GetProjects(context.Background())
	require.NoError(t, err)
	assert.Empty(t, projects)
}

func TestClient_Replay(t *testing.T) {
	var gotMethod, gotPath string
	var gotBody []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	action, err := models.NewPendingAction(models.ActionPropertyInquiry, models.InquiryPayload{
		PropertyID: "1",
		Name:       "Anna",
		Email:      "anna@example.com",
	})
	require.NoError(t, err)

	client := NewClient(server.URL)
	require.NoError(t, client.Replay(context.Background(), action))

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/api/v1/properties/1/inquiries", gotPath)
	assert.JSONEq(t, string(action.Payload), string(gotBody))
}

func TestClient_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"internal","message":"database down"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	err := client.Health(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNetworkFailure)
	assert.Contains(t, err.Error(), "database down")
}

func TestClient_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // сервер уже недоступен

	client := NewClient(server.URL)
	err := client.Health(context.Background())
	assert.ErrorIs(t, err, ErrNetworkFailure)
}
