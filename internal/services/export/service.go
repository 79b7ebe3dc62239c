package export

import (
	"context"
	"math"
	"time"

	"github.com/annolab/annotator-api/internal/models"
)

// ServiceImpl implements the Service interface
type ServiceImpl struct {
	assets  AssetService
	regions RegionLister
}

// NewService creates a new export service
func NewService(assets AssetService, regions RegionLister) Service {
	return &ServiceImpl{assets: assets, regions: regions}
}

// Export builds the document and flips the asset status to exported.
func (s *ServiceImpl) Export(ctx context.Context, assetID uint) (*Document, error) {
	asset, err := s.assets.GetByID(ctx, assetID)
	if err != nil {
		return nil, err
	}

	regionSet, err := s.regions.ListByAsset(ctx, assetID)
	if err != nil {
		return nil, err
	}

	doc := &Document{
		Kind:      asset.Kind,
		OwnerID:   asset.OwnerID,
		Filename:  asset.Filename,
		Title:     asset.Title,
		LabeledAt: time.Now().UTC(),
	}

	if asset.IsAudio() {
		doc.AudioID = &asset.ID
		doc.Duration = asset.DurationSeconds
		buildAudio(doc, asset, regionSet)
	} else {
		doc.ImageID = &asset.ID
		doc.Width = asset.Width
		doc.Height = asset.Height
		buildImage(doc, regionSet)
	}

	if err := s.assets.MarkExported(ctx, assetID); err != nil {
		return nil, err
	}
	return doc, nil
}

func buildAudio(doc *Document, asset *models.Asset, regionSet []models.Region) {
	totalDuration := 0.0
	doc.Segments = make([]Segment, 0, len(regionSet))
	for _, r := range regionSet {
		if r.Kind != models.RegionKindInterval || r.StartTime == nil || r.EndTime == nil {
			continue
		}
		d := r.DurationSeconds()
		totalDuration += d
		doc.Segments = append(doc.Segments, Segment{
			ID:        r.ID,
			UUID:      r.UUID,
			StartTime: *r.StartTime,
			EndTime:   *r.EndTime,
			Duration:  d,
			Label:     LabelRef{ID: r.Label.ID, Name: r.Label.Name, Color: r.Label.Color},
			Notes:     r.Notes,
		})
	}

	count := len(doc.Segments)
	// Overlapping segments sum without deduplication, so coverage can
	// exceed 100%.
	coverage := 0.0
	if d := asset.Duration(); d > 0 {
		coverage = roundTwo(totalDuration / d * 100)
	}
	totalDuration = roundTwo(totalDuration)

	doc.Statistics = Statistics{
		TotalSegments:        &count,
		TotalLabeledDuration: &totalDuration,
		CoveragePercentage:   &coverage,
	}
}

func buildImage(doc *Document, regionSet []models.Region) {
	doc.Annotations = make([]BoxAnnotation, 0, len(regionSet))
	for _, r := range regionSet {
		if r.Kind != models.RegionKindBox || r.X == nil || r.Y == nil || r.Width == nil || r.Height == nil {
			continue
		}
		doc.Annotations = append(doc.Annotations, BoxAnnotation{
			ID:     r.ID,
			UUID:   r.UUID,
			X:      *r.X,
			Y:      *r.Y,
			Width:  *r.Width,
			Height: *r.Height,
			Label:  LabelRef{ID: r.Label.ID, Name: r.Label.Name, Color: r.Label.Color},
			Notes:  r.Notes,
		})
	}

	count := len(doc.Annotations)
	doc.Statistics = Statistics{TotalRegions: &count}
}

func roundTwo(v float64) float64 {
	return math.Round(v*100) / 100
}
