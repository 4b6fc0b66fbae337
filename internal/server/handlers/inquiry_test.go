package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/ecoestate/internal/models"
	"github.com/iudanet/ecoestate/internal/server/storage"
)

// mockInquiryStorage is a mock implementation of InquiryStorage for testing
type mockInquiryStorage struct {
	created    []*models.Inquiry
	knownProps map[string]bool
	err        error
}

func (m *mockInquiryStorage) CreateInquiry(ctx context.Context, inquiry *models.Inquiry) error {
	if m.err != nil {
		return m.err
	}
	if !m.knownProps[inquiry.PropertyID] {
		return storage.ErrPropertyNotFound
	}
	m.created = append(m.created, inquiry)
	return nil
}

func (m *mockInquiryStorage) ListInquiriesByProperty(ctx context.Context, propertyID string) ([]models.Inquiry, error) {
	var out []models.Inquiry
	for _, inq := range m.created {
		if inq.PropertyID == propertyID {
			out = append(out, *inq)
		}
	}
	return out, m.err
}

func inquiryRequest(t *testing.T, propertyID string, payload models.InquiryPayload) *http.Request {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/properties/"+propertyID+"/inquiries", bytes.NewReader(body))
	req.SetPathValue("property", propertyID)
	return req
}

func TestInquiryHandler_Create(t *testing.T) {
	inquiries := &mockInquiryStorage{knownProps: map[string]bool{"p1": true}}
	h := NewInquiryHandler(testLogger(), inquiries)

	w := httptest.NewRecorder()
	h.Create(w, inquiryRequest(t, "p1", models.InquiryPayload{
		PropertyID: "p1",
		Name:       "Buyer",
		Email:      "buyer@example.com",
		Message:    "Interested in a viewing",
	}))

	require.Equal(t, http.StatusCreated, w.Code)

	var resp InquiryResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.NotEmpty(t, resp.ID)

	require.Len(t, inquiries.created, 1)
	assert.Equal(t, "p1", inquiries.created[0].PropertyID)
	assert.Equal(t, "buyer@example.com", inquiries.created[0].Email)
}

func TestInquiryHandler_Create_UnknownProperty(t *testing.T) {
	inquiries := &mockInquiryStorage{knownProps: map[string]bool{}}
	h := NewInquiryHandler(testLogger(), inquiries)

	w := httptest.NewRecorder()
	h.Create(w, inquiryRequest(t, "ghost", models.InquiryPayload{
		PropertyID: "ghost",
		Email:      "buyer@example.com",
	}))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestInquiryHandler_Create_PropertyMismatch(t *testing.T) {
	inquiries := &mockInquiryStorage{knownProps: map[string]bool{"p1": true, "p2": true}}
	h := NewInquiryHandler(testLogger(), inquiries)

	w := httptest.NewRecorder()
	h.Create(w, inquiryRequest(t, "p1", models.InquiryPayload{
		PropertyID: "p2",
		Email:      "buyer@example.com",
	}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, inquiries.created)
}

func TestInquiryHandler_Create_MissingEmail(t *testing.T) {
	inquiries := &mockInquiryStorage{knownProps: map[string]bool{"p1": true}}
	h := NewInquiryHandler(testLogger(), inquiries)

	w := httptest.NewRecorder()
	h.Create(w, inquiryRequest(t, "p1", models.InquiryPayload{PropertyID: "p1", Name: "Buyer"}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestInquiryHandler_Create_InvalidJSON(t *testing.T) {
	inquiries := &mockInquiryStorage{knownProps: map[string]bool{"p1": true}}
	h := NewInquiryHandler(testLogger(), inquiries)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/properties/p1/inquiries", bytes.NewReader([]byte("{")))
	req.SetPathValue("property", "p1")

	w := httptest.NewRecorder()
	h.Create(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
