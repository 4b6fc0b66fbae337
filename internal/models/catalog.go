package models

import "time"

// PropertyStatus статус объекта недвижимости в каталоге
type PropertyStatus string

const (
	PropertyStatusAvailable PropertyStatus = "available"
	PropertyStatusReserved  PropertyStatus = "reserved"
	PropertyStatusSold      PropertyStatus = "sold"
)

// Property represents a listing in the marketplace catalog.
type Property struct {
	UpdatedAt     time.Time      `json:"updated_at"`
	ID            string         `json:"id"`
	Title         string         `json:"title"`
	RegionID      string         `json:"region_id"`
	Status        PropertyStatus `json:"status"`
	EcoFeatureIDs []string       `json:"eco_feature_ids"`
	Price         int64          `json:"price"`
	AreaSqm       float64        `json:"area_sqm"`
	Bedrooms      int            `json:"bedrooms"`
}

// Region represents a geographic market region.
type Region struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ClimateZone  string `json:"climate_zone"`
	AveragePrice int64  `json:"average_price"`
}

// FeatureCategory категория эко-характеристики
type FeatureCategory string

const (
	FeatureCategoryEnergy    FeatureCategory = "energy"
	FeatureCategoryWater     FeatureCategory = "water"
	FeatureCategoryMaterials FeatureCategory = "materials"
	FeatureCategoryWaste     FeatureCategory = "waste"
)

// EcoFeature represents a sustainability feature a property can carry.
type EcoFeature struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Category      FeatureCategory `json:"category"`
	AnnualSavings int64           `json:"annual_savings"`
}

// Milestone одна веха строительного проекта
type Milestone struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Done bool   `json:"done"`
}

// ProjectNote заметка агента по проекту
type ProjectNote struct {
	CreatedAt time.Time `json:"created_at"`
	Author    string    `json:"author"`
	Text      string    `json:"text"`
}

// ProjectStatus статус строительного проекта
type ProjectStatus string

const (
	ProjectStatusPlanning     ProjectStatus = "planning"
	ProjectStatusConstruction ProjectStatus = "construction"
	ProjectStatusCompleted    ProjectStatus = "completed"
)

// Project represents a construction project an agent manages.
type Project struct {
	UpdatedAt  time.Time     `json:"updated_at"`
	ID         string        `json:"id"`
	PropertyID string        `json:"property_id"`
	ClientName string        `json:"client_name"`
	Status     ProjectStatus `json:"status"`
	Milestones []Milestone   `json:"milestones"`
	Notes      []ProjectNote `json:"notes"`
}

// EntityKind имя кэшируемой коллекции
type EntityKind string

const (
	KindProperties  EntityKind = "properties"
	KindRegions     EntityKind = "regions"
	KindEcoFeatures EntityKind = "eco_features"
	KindProjects    EntityKind = "projects"
)

// CacheKinds перечисляет все кэшируемые коллекции.
// Порядок используется при инициализации bucket-ов и в статистике.
var CacheKinds = []EntityKind{KindProperties, KindRegions, KindEcoFeatures, KindProjects}

// CacheSnapshot contains on-demand cache observability counts.
// Derived, never persisted.
type CacheSnapshot struct {
	Records map[EntityKind]int `json:"records"`
	Pending int                `json:"pending"`
}
