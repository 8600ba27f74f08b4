package reveal

import "math"

// Rect is an axis-aligned box in CSS pixels, shaped like a DOMRect
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func (r Rect) Right() float64  { return r.X + r.Width }
func (r Rect) Bottom() float64 { return r.Y + r.Height }
func (r Rect) Area() float64   { return math.Max(r.Width, 0) * math.Max(r.Height, 0) }

// Expand grows the rect by px on every side, like a CSS rootMargin
func (r Rect) Expand(px float64) Rect {
	return Rect{
		X:      r.X - px,
		Y:      r.Y - px,
		Width:  r.Width + 2*px,
		Height: r.Height + 2*px,
	}
}

// Intersect returns the overlap of two rects and whether they touch at all.
// Edge-adjacent rects touch with a zero-area overlap.
func Intersect(a, b Rect) (Rect, bool) {
	left := math.Max(a.X, b.X)
	top := math.Max(a.Y, b.Y)
	right := math.Min(a.Right(), b.Right())
	bottom := math.Min(a.Bottom(), b.Bottom())
	if right < left || bottom < top {
		return Rect{}, false
	}
	return Rect{X: left, Y: top, Width: right - left, Height: bottom - top}, true
}

// IntersectionRatio computes how much of target is visible inside root once
// root is expanded by marginPx. A zero-area target that touches the root
// counts as fully visible.
func IntersectionRatio(target, root Rect, marginPx float64) (float64, bool) {
	overlap, ok := Intersect(target, root.Expand(marginPx))
	if !ok {
		return 0, false
	}
	area := target.Area()
	if area == 0 {
		return 1, true
	}
	return math.Min(overlap.Area()/area, 1), true
}
