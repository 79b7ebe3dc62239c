package annotate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPixelToAsset(t *testing.T) {
	tests := []struct {
		name        string
		px          float64
		containerPx float64
		assetBound  float64
		want        float64
	}{
		{"proportional mapping", 300, 600, 120, 60},
		{"left edge", 0, 600, 120, 0},
		{"right edge", 600, 600, 120, 120},
		{"clamps below zero", -50, 600, 120, 0},
		{"clamps above bound", 700, 600, 120, 120},
		{"zero container returns zero", 300, 0, 120, 0},
		{"image axis", 150, 400, 800, 300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PixelToAsset(tt.px, tt.containerPx, tt.assetBound)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestAssetToPixelRect(t *testing.T) {
	t.Run("maps back to pixels", func(t *testing.T) {
		rect := AssetToPixelRect(30, 60, 600, 120)
		assert.True(t, rect.Visible)
		assert.InDelta(t, 150, rect.OffsetPx, 1e-9)
		assert.InDelta(t, 300, rect.LengthPx, 1e-9)
	})

	t.Run("invisible when asset bound unknown", func(t *testing.T) {
		rect := AssetToPixelRect(30, 60, 600, 0)
		assert.False(t, rect.Visible)
	})

	t.Run("invisible when container unavailable", func(t *testing.T) {
		rect := AssetToPixelRect(30, 60, 0, 120)
		assert.False(t, rect.Visible)
	})

	t.Run("invisible when length rounds to zero", func(t *testing.T) {
		rect := AssetToPixelRect(30, 0.0001, 600, 120)
		assert.False(t, rect.Visible)
	})

	t.Run("enforces minimum render length", func(t *testing.T) {
		// 0.2s on a 120s asset in a 600px container is 1px; bumped to
		// the minimum so the region stays clickable.
		rect := AssetToPixelRect(30, 0.2, 600, 120)
		assert.True(t, rect.Visible)
		assert.Equal(t, MinRenderPx, rect.LengthPx)
	})
}

func TestIntervalValidate(t *testing.T) {
	tests := []struct {
		name     string
		interval Interval
		wantErr  bool
	}{
		{"valid", Interval{Start: 5, End: 20}, false},
		{"zero length", Interval{Start: 5, End: 5}, true},
		{"inverted", Interval{Start: 20, End: 5}, true},
		{"negative start", Interval{Start: -1, End: 5}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.interval.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidGeometry)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBoxValidate(t *testing.T) {
	tests := []struct {
		name    string
		box     Box
		wantErr bool
	}{
		{"valid", Box{X: 10, Y: 10, Width: 100, Height: 50}, false},
		{"zero width", Box{X: 10, Y: 10, Width: 0, Height: 50}, true},
		{"negative height", Box{X: 10, Y: 10, Width: 100, Height: -5}, true},
		{"negative origin", Box{X: -1, Y: 10, Width: 100, Height: 50}, true},
		{"at origin", Box{X: 0, Y: 0, Width: 1, Height: 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.box.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidGeometry)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
