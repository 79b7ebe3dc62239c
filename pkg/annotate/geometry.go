package annotate

import "math"

// MinRenderPx is the smallest on-screen length a region is drawn with.
// Zero-width renders would be unclickable, so anything visible is at
// least this long.
const MinRenderPx = 2.0

// PixelRect is the screen-space projection of one axis of a region.
type PixelRect struct {
	OffsetPx float64 `json:"offset_px"`
	LengthPx float64 `json:"length_px"`
	Visible  bool    `json:"visible"`
}

// PixelToAsset maps a pixel coordinate inside a container to the asset
// coordinate space (seconds or asset pixels) with a linear proportional
// mapping, clamped to [0, assetBound]. A zero container size returns 0.
func PixelToAsset(px, containerPx, assetBound float64) float64 {
	if containerPx == 0 {
		return 0
	}
	v := px / containerPx * assetBound
	return clamp(v, 0, assetBound)
}

// AssetToPixelRect maps an asset-space extent back to container pixels.
// Visible is false when the container or asset bound is unavailable
// (asset not loaded yet) or when the extent rounds to zero pixels;
// callers skip invisible rects when rendering.
func AssetToPixelRect(offset, length, containerPx, assetBound float64) PixelRect {
	if containerPx == 0 || assetBound == 0 {
		return PixelRect{}
	}
	scale := containerPx / assetBound
	lengthPx := length * scale
	if math.Round(lengthPx) == 0 {
		return PixelRect{OffsetPx: offset * scale}
	}
	if lengthPx < MinRenderPx {
		lengthPx = MinRenderPx
	}
	return PixelRect{
		OffsetPx: offset * scale,
		LengthPx: lengthPx,
		Visible:  true,
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
