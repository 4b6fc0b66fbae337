package api

import "github.com/iudanet/ecoestate/internal/models"

// PropertiesResponse полный список объектов каталога
type PropertiesResponse struct {
	Properties []models.Property `json:"properties"`
}

// RegionsResponse полный список регионов
type RegionsResponse struct {
	Regions []models.Region `json:"regions"`
}

// EcoFeaturesResponse полный список эко-характеристик
type EcoFeaturesResponse struct {
	Features []models.EcoFeature `json:"features"`
}

// ProjectsResponse проекты, доступные аутентифицированному агенту
type ProjectsResponse struct {
	Projects []models.Project `json:"projects"`
}
