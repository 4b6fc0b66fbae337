package catalog

import (
	"encoding/json"
	"fmt"

	"github.com/iudanet/ecoestate/internal/client/storage"
	"github.com/iudanet/ecoestate/internal/models"
)

// decodeRecords декодирует сырые записи кэша в доменные сущности.
// Принимает (recs, err) напрямую от getCached для цепочки вызова.
func decodeRecords[T any](recs []storage.Record, err error) ([]T, error) {
	if err != nil {
		return nil, err
	}

	items := make([]T, 0, len(recs))
	for _, rec := range recs {
		var item T
		if uerr := json.Unmarshal(rec.Data, &item); uerr != nil {
			return nil, fmt.Errorf("failed to decode cached record %s: %w", rec.ID, uerr)
		}
		items = append(items, item)
	}
	return items, nil
}

func encodeRecord(id string, item any) (storage.Record, error) {
	data, err := json.Marshal(item)
	if err != nil {
		return storage.Record{}, fmt.Errorf("failed to encode record %s: %w", id, err)
	}
	return storage.Record{ID: id, Data: data}, nil
}

// Маршалинг доменных структур не падает, поэтому ошибка encodeRecord
// здесь просто пропускает запись.
func propertyRecords(props []models.Property) []storage.Record {
	recs := make([]storage.Record, 0, len(props))
	for _, p := range props {
		if rec, err := encodeRecord(p.ID, p); err == nil {
			recs = append(recs, rec)
		}
	}
	return recs
}

func regionRecords(regions []models.Region) []storage.Record {
	recs := make([]storage.Record, 0, len(regions))
	for _, r := range regions {
		if rec, err := encodeRecord(r.ID, r); err == nil {
			recs = append(recs, rec)
		}
	}
	return recs
}

func featureRecords(features []models.EcoFeature) []storage.Record {
	recs := make([]storage.Record, 0, len(features))
	for _, f := range features {
		if rec, err := encodeRecord(f.ID, f); err == nil {
			recs = append(recs, rec)
		}
	}
	return recs
}

func projectRecords(projects []models.Project) []storage.Record {
	recs := make([]storage.Record, 0, len(projects))
	for _, p := range projects {
		if rec, err := encodeRecord(p.ID, p); err == nil {
			recs = append(recs, rec)
		}
	}
	return recs
}
