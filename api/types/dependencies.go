package types

import (
	"github.com/annolab/annotator-api/internal/database"
	"github.com/annolab/annotator-api/internal/services/assets"
	"github.com/annolab/annotator-api/internal/services/export"
	"github.com/annolab/annotator-api/internal/services/labels"
	"github.com/annolab/annotator-api/internal/services/regions"
)

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	DB            *database.DB
	AssetService  assets.Service
	LabelService  labels.Service
	RegionService regions.Service
	ExportService export.Service
}
