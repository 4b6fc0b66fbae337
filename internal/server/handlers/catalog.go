package handlers

import (
	"log/slog"
	"net/http"

	"github.com/iudanet/ecoestate/internal/models"
	"github.com/iudanet/ecoestate/internal/server/storage"
	"github.com/iudanet/ecoestate/pkg/api"
)

// CatalogHandler отдает публичный каталог: объекты, регионы, эко-характеристики.
// Каталог небольшой, поэтому endpoint-ы возвращают коллекции целиком,
// пагинации нет. Клиенты кэшируют ответ локально и фильтруют сами.
type CatalogHandler struct {
	logger  *slog.Logger
	catalog storage.CatalogStorage
}

// NewCatalogHandler создает новый handler каталога
func NewCatalogHandler(logger *slog.Logger, catalog storage.CatalogStorage) *CatalogHandler {
	return &CatalogHandler{
		logger:  logger,
		catalog: catalog,
	}
}

// Properties обрабатывает GET /api/v1/catalog/properties
func (h *CatalogHandler) Properties(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	properties, err := h.catalog.ListProperties(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list properties", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}
	if properties == nil {
		properties = []models.Property{}
	}

	sendJSON(h.logger, w, api.PropertiesResponse{Properties: properties}, http.StatusOK)
}

// Regions обрабатывает GET /api/v1/catalog/regions
func (h *CatalogHandler) Regions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	regions, err := h.catalog.ListRegions(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list regions", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}
	if regions == nil {
		regions = []models.Region{}
	}

	sendJSON(h.logger, w, api.RegionsResponse{Regions: regions}, http.StatusOK)
}

// EcoFeatures обрабатывает GET /api/v1/catalog/eco-features
func (h *CatalogHandler) EcoFeatures(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	features, err := h.catalog.ListEcoFeatures(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list eco features", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}
	if features == nil {
		features = []models.EcoFeature{}
	}

	sendJSON(h.logger, w, api.EcoFeaturesResponse{Features: features}, http.StatusOK)
}
