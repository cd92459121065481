package gfx

import "image"

// segment is an integer line in traversal space. Swaps produce new values so
// the caller's endpoints are never aliased.
type segment struct {
	x0, y0, x1, y1 int
}

func (s segment) transposed() segment { return segment{s.y0, s.x0, s.y1, s.x1} }
func (s segment) reversed() segment   { return segment{s.x1, s.y1, s.x0, s.y0} }

// DrawLine rounds both endpoints with RoundCoord and draws a one pixel wide line
// between them in color c.
func DrawLine(t Target, p0, p1 Vec2, c Color) {
	if t == nil {
		return
	}
	DrawLineInt(t, RoundCoord(p0.X), RoundCoord(p0.Y), RoundCoord(p1.X), RoundCoord(p1.Y), c)
}

// DrawLineInt draws the discrete segment (x0,y0)-(x1,y1), both ends inclusive.
//
// Vertical and horizontal lines take a fast path. Everything else walks the major
// axis with an integer error term. Endpoints are put in a canonical order first,
// so DrawLineInt(a, b) and DrawLineInt(b, a) touch the same pixels.
func DrawLineInt(t Target, x0, y0, x1, y1 int, c Color) {
	if t == nil {
		return
	}
	walkLine(segment{x0, y0, x1, y1}, func(x, y int) { t.SetPixel(x, y, c) })
}

// LinePixels returns the pixels DrawLineInt would touch, in traversal order.
func LinePixels(x0, y0, x1, y1 int) []image.Point {
	var pts []image.Point
	walkLine(segment{x0, y0, x1, y1}, func(x, y int) {
		pts = append(pts, image.Pt(x, y))
	})
	return pts
}

func walkLine(s segment, plot func(x, y int)) {
	// Vertical.
	if s.x0 == s.x1 {
		if s.y0 > s.y1 {
			s = s.reversed()
		}
		for y := s.y0; y <= s.y1; y++ {
			plot(s.x0, y)
		}
		return
	}

	// Horizontal.
	if s.y0 == s.y1 {
		if s.x0 > s.x1 {
			s = s.reversed()
		}
		for x := s.x0; x <= s.x1; x++ {
			plot(x, s.y0)
		}
		return
	}

	steep := absInt(s.y1-s.y0) > absInt(s.x1-s.x0)
	if steep {
		s = s.transposed()
	}
	if s.x0 > s.x1 {
		s = s.reversed()
	}

	dx := 2 * (s.x1 - s.x0)
	dy := 2 * absInt(s.y1-s.y0)
	sy := -1
	if s.y0 < s.y1 {
		sy = 1
	}

	// Start at the midpoint so the walk ends exactly on (x1, y1).
	errTerm := dx / 2
	y := s.y0
	for x := s.x0; x <= s.x1; x++ {
		if steep {
			plot(y, x)
		} else {
			plot(x, y)
		}
		errTerm -= dy
		if errTerm < 0 {
			y += sy
			errTerm += dx
		}
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
