package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/ecoestate/internal/models"
	"github.com/iudanet/ecoestate/internal/server/storage"
)

// InquiryHandler принимает заявки покупателей.
// Endpoint публичный: заявку может оставить любой посетитель портала,
// в том числе клиент при replay отложенного действия.
type InquiryHandler struct {
	logger    *slog.Logger
	inquiries storage.InquiryStorage
}

// NewInquiryHandler создает новый handler заявок
func NewInquiryHandler(logger *slog.Logger, inquiries storage.InquiryStorage) *InquiryHandler {
	return &InquiryHandler{
		logger:    logger,
		inquiries: inquiries,
	}
}

// InquiryResponse подтверждение принятой заявки
type InquiryResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// Create обрабатывает POST /api/v1/properties/{property}/inquiries
// Тело запроса имеет форму models.InquiryPayload: то же самое, что клиент
// кладет в очередь отложенных действий.
func (h *InquiryHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	propertyID := r.PathValue("property")
	if propertyID == "" {
		sendError(h.logger, w, "property id is required", http.StatusBadRequest)
		return
	}

	var payload models.InquiryPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.logger.WarnContext(ctx, "failed to decode inquiry", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	// Payload несет property_id, путь — источник истины
	if payload.PropertyID != "" && payload.PropertyID != propertyID {
		sendError(h.logger, w, "property id mismatch", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(payload.Email) == "" {
		sendError(h.logger, w, "email is required", http.StatusBadRequest)
		return
	}

	inquiry := &models.Inquiry{
		ID:         uuid.New().String(),
		PropertyID: propertyID,
		Name:       payload.Name,
		Email:      payload.Email,
		Message:    payload.Message,
		CreatedAt:  time.Now().UTC(),
	}

	if err := h.inquiries.CreateInquiry(ctx, inquiry); err != nil {
		if errors.Is(err, storage.ErrPropertyNotFound) {
			h.logger.WarnContext(ctx, "inquiry for unknown property", slog.String("property_id", propertyID))
			sendError(h.logger, w, "property not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to create inquiry", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "inquiry accepted",
		slog.String("inquiry_id", inquiry.ID),
		slog.String("property_id", propertyID))

	resp := InquiryResponse{
		ID:      inquiry.ID,
		Message: "Inquiry accepted",
	}

	sendJSON(h.logger, w, resp, http.StatusCreated)
}
