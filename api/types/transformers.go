package types

import "github.com/annolab/annotator-api/internal/models"

// FromLabelModel converts a database label to its API representation
func FromLabelModel(m *models.Label) Label {
	return Label{
		ID:          m.ID,
		UUID:        m.UUID,
		Name:        m.Name,
		Color:       m.Color,
		Description: m.Description,
		Active:      m.Active,
		OwnerID:     m.OwnerID,
		AssetID:     m.AssetID,
	}
}

// FromLabelModels converts a list of database labels
func FromLabelModels(ms []models.Label) []Label {
	out := make([]Label, 0, len(ms))
	for i := range ms {
		out = append(out, FromLabelModel(&ms[i]))
	}
	return out
}

// FromAssetModel converts a database asset to its API representation
func FromAssetModel(m *models.Asset) Asset {
	return Asset{
		ID:       m.ID,
		UUID:     m.UUID,
		OwnerID:  m.OwnerID,
		Kind:     m.Kind,
		Title:    m.Title,
		Filename: m.Filename,
		URL:      m.URL,
		Status:   m.Status,
		Duration: m.DurationSeconds,
		Width:    m.Width,
		Height:   m.Height,
	}
}

// FromRegionModel converts a database region to its API representation.
// The label relation is inlined when it was preloaded.
func FromRegionModel(m *models.Region) Region {
	r := Region{
		ID:        m.ID,
		UUID:      m.UUID,
		AssetID:   m.AssetID,
		Kind:      m.Kind,
		StartTime: m.StartTime,
		EndTime:   m.EndTime,
		X:         m.X,
		Y:         m.Y,
		Width:     m.Width,
		Height:    m.Height,
		Notes:     m.Notes,
	}
	if m.Label.ID != 0 {
		label := FromLabelModel(&m.Label)
		r.Label = &label
	}
	return r
}

// FromRegionModels converts a list of database regions
func FromRegionModels(ms []models.Region) []Region {
	out := make([]Region, 0, len(ms))
	for i := range ms {
		out = append(out, FromRegionModel(&ms[i]))
	}
	return out
}
