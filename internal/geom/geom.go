// Package geom holds the small set of planar primitives the partitioner and
// adjacency resolver are built on. All polygons are vertex loops with the
// closing edge implicit.
package geom

import (
	"math"

	"svw.info/mapcolor/internal/domain"
)

// Dist returns the euclidean distance between two points.
func Dist(a, b domain.Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// PolygonArea returns the absolute area of the polygon (shoelace formula).
func PolygonArea(vs []domain.Point) float64 {
	if len(vs) < 3 {
		return 0
	}
	sum := 0.0
	for i := range vs {
		j := (i + 1) % len(vs)
		sum += vs[i].X*vs[j].Y - vs[j].X*vs[i].Y
	}
	return math.Abs(sum) / 2
}

// Centroid returns the vertex average of the polygon.
func Centroid(vs []domain.Point) domain.Point {
	var c domain.Point
	if len(vs) == 0 {
		return c
	}
	for _, v := range vs {
		c.X += v.X
		c.Y += v.Y
	}
	c.X /= float64(len(vs))
	c.Y /= float64(len(vs))
	return c
}

// BoundingBox returns the min and max corners of the polygon.
func BoundingBox(vs []domain.Point) (min, max domain.Point) {
	min = domain.Point{X: math.Inf(1), Y: math.Inf(1)}
	max = domain.Point{X: math.Inf(-1), Y: math.Inf(-1)}
	for _, v := range vs {
		min.X = math.Min(min.X, v.X)
		min.Y = math.Min(min.Y, v.Y)
		max.X = math.Max(max.X, v.X)
		max.Y = math.Max(max.Y, v.Y)
	}
	return min, max
}

// MaxRadius returns the largest vertex distance from c.
func MaxRadius(vs []domain.Point, c domain.Point) float64 {
	r := 0.0
	for _, v := range vs {
		if d := Dist(v, c); d > r {
			r = d
		}
	}
	return r
}

// PointSegmentDist returns the distance from p to segment ab.
func PointSegmentDist(p, a, b domain.Point) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return Dist(p, a)
	}
	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / lenSq
	t = math.Max(0, math.Min(1, t))
	proj := domain.Point{X: a.X + t*dx, Y: a.Y + t*dy}
	return Dist(p, proj)
}

// SegmentsDist returns the minimum distance between segments ab and cd.
// Properly crossing segments have distance zero.
func SegmentsDist(a, b, c, d domain.Point) float64 {
	if SegmentsCross(a, b, c, d) {
		return 0
	}
	m := PointSegmentDist(a, c, d)
	m = math.Min(m, PointSegmentDist(b, c, d))
	m = math.Min(m, PointSegmentDist(c, a, b))
	m = math.Min(m, PointSegmentDist(d, a, b))
	return m
}

func cross(o, a, b domain.Point) float64 {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}

// SegmentsCross reports whether segments ab and cd properly intersect, i.e.
// cross at a single interior point of both. Shared endpoints and collinear
// touches do not count.
func SegmentsCross(a, b, c, d domain.Point) bool {
	d1 := cross(c, d, a)
	d2 := cross(c, d, b)
	d3 := cross(a, b, c)
	d4 := cross(a, b, d)
	const eps = 1e-9
	if ((d1 > eps && d2 < -eps) || (d1 < -eps && d2 > eps)) &&
		((d3 > eps && d4 < -eps) || (d3 < -eps && d4 > eps)) {
		return true
	}
	return false
}

// PointInPolygon reports whether p lies inside the polygon (ray casting).
func PointInPolygon(p domain.Point, vs []domain.Point) bool {
	inside := false
	n := len(vs)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		vi, vj := vs[i], vs[j]
		if (vi.Y > p.Y) != (vj.Y > p.Y) &&
			p.X < (vj.X-vi.X)*(p.Y-vi.Y)/(vj.Y-vi.Y)+vi.X {
			inside = !inside
		}
	}
	return inside
}

// IsSimple reports whether no two non-adjacent polygon edges properly cross.
func IsSimple(vs []domain.Point) bool {
	n := len(vs)
	if n < 3 {
		return false
	}
	for i := 0; i < n; i++ {
		a1 := vs[i]
		a2 := vs[(i+1)%n]
		for j := i + 1; j < n; j++ {
			if j == i+1 || (i == 0 && j == n-1) {
				continue
			}
			b1 := vs[j]
			b2 := vs[(j+1)%n]
			if SegmentsCross(a1, a2, b1, b2) {
				return false
			}
		}
	}
	return true
}
