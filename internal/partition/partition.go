// Package partition carves the board rectangle into organically shaped simple
// polygons by recursive subdivision: the largest region is split along its
// longer bounding-box axis by a sine-perturbed polyline until the requested
// region count is reached. Every split is validated for simplicity and
// retried with reduced jitter on failure; a straight diagonal split is the
// final fallback, so partitioning always succeeds.
package partition

import (
	"math"
	"math/rand"

	"svw.info/mapcolor/internal/domain"
	"svw.info/mapcolor/internal/geom"
)

// Proto is a carved region before it becomes a gameplay Region.
type Proto struct {
	Vertices []domain.Point
	Center   domain.Point
}

const (
	perimeterSteps  = 48
	organicAttempts = 8
	minAreaFraction = 0.08 // reject slivers below this share of the parent
)

// Partition divides the boardW x boardH rectangle into exactly count simple
// polygons. The rng is the only source of randomness, so results are
// reproducible from a seed. complexity in [0,1] scales all jitter.
func Partition(rng *rand.Rand, count int, boardW, boardH, complexity float64) []Proto {
	if count <= 0 {
		return nil
	}
	polys := [][]domain.Point{perimeter(rng, boardW, boardH, complexity)}
	for len(polys) < count {
		idx := largest(polys)
		a, b := split(rng, polys[idx], complexity)
		polys[idx] = a
		polys = append(polys, b)
	}
	out := make([]Proto, len(polys))
	for i, vs := range polys {
		out[i] = Proto{Vertices: vs, Center: innerPoint(vs)}
	}
	return out
}

// perimeter samples the board boundary at fixed angular steps around the
// board center, pulling each point slightly inward with a sinusoidal wave
// plus random jitter so the outline is not a flat rectangle. Radial
// perturbation with monotone angles keeps the loop simple by construction.
func perimeter(rng *rand.Rand, w, h, complexity float64) []domain.Point {
	cx, cy := w/2, h/2
	phase := rng.Float64() * 2 * math.Pi
	vs := make([]domain.Point, 0, perimeterSteps)
	for i := 0; i < perimeterSteps; i++ {
		theta := 2 * math.Pi * float64(i) / perimeterSteps
		r := rayToRect(theta, cx, cy)
		wave := 0.03 * complexity * (1 + math.Sin(5*theta+phase))
		jitter := 0.02 * complexity * rng.Float64()
		scale := 1 - wave - jitter
		vs = append(vs, domain.Point{
			X: cx + r*scale*math.Cos(theta),
			Y: cy + r*scale*math.Sin(theta),
		})
	}
	return vs
}

// rayToRect returns the distance from the rectangle center to its boundary
// along direction theta, for half-extents hw and hh.
func rayToRect(theta, hw, hh float64) float64 {
	c, s := math.Cos(theta), math.Sin(theta)
	r := math.Inf(1)
	if c != 0 {
		r = math.Min(r, hw/math.Abs(c))
	}
	if s != 0 {
		r = math.Min(r, hh/math.Abs(s))
	}
	return r
}

func largest(polys [][]domain.Point) int {
	best, bestArea := 0, -1.0
	for i, vs := range polys {
		if a := geom.PolygonArea(vs); a > bestArea {
			best, bestArea = i, a
		}
	}
	return best
}

// split divides poly into two simple polygons. Organic sine cuts are tried
// with jitter shrinking each attempt; if none validates, a straight diagonal
// between two boundary vertices is used, which always exists.
func split(rng *rand.Rand, poly []domain.Point, complexity float64) (a, b []domain.Point) {
	for attempt := 0; attempt < organicAttempts; attempt++ {
		damp := math.Pow(0.6, float64(attempt))
		if a, b, ok := organicCut(rng, poly, complexity*damp); ok {
			return a, b
		}
	}
	return diagonalSplit(poly)
}

// organicCut slices poly across the longer bounding-box axis with a
// sine-perturbed polyline at a random 30-70% position. It fails (ok=false)
// when the curve does not cross the boundary exactly twice or a resulting
// piece is degenerate, self-intersecting, or does not enclose its centroid.
func organicCut(rng *rand.Rand, poly []domain.Point, jitter float64) (a, b []domain.Point, ok bool) {
	min, max := geom.BoundingBox(poly)
	if max.X-min.X >= max.Y-min.Y {
		return cutAcrossX(rng, poly, jitter)
	}
	flipped := flip(poly)
	fa, fb, ok := cutAcrossX(rng, flipped, jitter)
	if !ok {
		return nil, nil, false
	}
	return flip(fa), flip(fb), true
}

// flip swaps the axes of every point, letting one cut routine serve both
// orientations.
func flip(vs []domain.Point) []domain.Point {
	out := make([]domain.Point, len(vs))
	for i, v := range vs {
		out[i] = domain.Point{X: v.Y, Y: v.X}
	}
	return out
}

// cutAcrossX splits poly with a roughly vertical polyline x = f(y).
func cutAcrossX(rng *rand.Rand, poly []domain.Point, jitter float64) (a, b []domain.Point, ok bool) {
	min, max := geom.BoundingBox(poly)
	w, h := max.X-min.X, max.Y-min.Y
	cutX := min.X + w*(0.3+0.4*rng.Float64())
	amp := jitter * 0.10 * w
	freq := 2 * math.Pi * (1 + rng.Float64()*2) / math.Max(h, 1e-9)
	phase := rng.Float64() * 2 * math.Pi
	f := func(y float64) float64 { return cutX + amp*math.Sin(freq*y+phase) }

	// Signed side of each vertex relative to the curve; zero counts as right.
	n := len(poly)
	side := make([]float64, n)
	for i, v := range poly {
		side[i] = v.X - f(v.Y)
	}

	type crossing struct {
		edge int
		pt   domain.Point
	}
	var crossings []crossing
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		if (side[i] >= 0) == (side[j] >= 0) {
			continue
		}
		t := side[i] / (side[i] - side[j])
		crossings = append(crossings, crossing{edge: i, pt: domain.Point{
			X: poly[i].X + t*(poly[j].X-poly[i].X),
			Y: poly[i].Y + t*(poly[j].Y-poly[i].Y),
		}})
	}
	if len(crossings) != 2 {
		return nil, nil, false
	}
	c1, c2 := crossings[0], crossings[1]

	cutPts := cutPoints(rng, f, c1.pt, c2.pt, h, jitter)

	// Chain A runs forward from c1 to c2 along the boundary, then back along
	// the cut; chain B is the complementary loop.
	a = append(a, c1.pt)
	for i := c1.edge + 1; i <= c2.edge; i++ {
		a = append(a, poly[i])
	}
	a = append(a, c2.pt)
	for i := len(cutPts) - 1; i >= 0; i-- {
		a = append(a, cutPts[i])
	}

	b = append(b, c2.pt)
	for i := c2.edge + 1; i < n; i++ {
		b = append(b, poly[i])
	}
	for i := 0; i <= c1.edge; i++ {
		b = append(b, poly[i])
	}
	b = append(b, c1.pt)
	b = append(b, cutPts...)

	parent := geom.PolygonArea(poly)
	if !validPiece(a, parent) || !validPiece(b, parent) {
		return nil, nil, false
	}
	return a, b, true
}

// cutPoints samples the dividing curve strictly between c1 and c2, displacing
// each sample perpendicular to the cut by an amount scaled to the local
// segment length and capped small so the connector cannot loop back on
// itself.
func cutPoints(rng *rand.Rand, f func(float64) float64, c1, c2 domain.Point, span, jitter float64) []domain.Point {
	steps := int(math.Abs(c2.Y-c1.Y) / math.Max(span/12, 1e-9))
	if steps < 2 {
		steps = 2
	}
	if steps > 16 {
		steps = 16
	}
	segLen := math.Abs(c2.Y-c1.Y) / float64(steps+1)
	maxOff := math.Min(segLen*0.25, span*0.02) * jitter
	pts := make([]domain.Point, 0, steps)
	for k := 1; k <= steps; k++ {
		y := c1.Y + (c2.Y-c1.Y)*float64(k)/float64(steps+1)
		x := f(y) + (rng.Float64()*2-1)*maxOff
		pts = append(pts, domain.Point{X: x, Y: y})
	}
	return pts
}

func validPiece(vs []domain.Point, parentArea float64) bool {
	if len(vs) < 3 {
		return false
	}
	if geom.PolygonArea(vs) < parentArea*minAreaFraction {
		return false
	}
	if !geom.IsSimple(vs) {
		return false
	}
	return geom.PointInPolygon(geom.Centroid(vs), vs)
}

// diagonalSplit cuts poly along a straight chord between two boundary
// vertices, preferring chords that separate the loop into halves of similar
// vertex count. Every simple polygon admits a diagonal, so this terminates.
func diagonalSplit(poly []domain.Point) (a, b []domain.Point) {
	n := len(poly)
	if n == 3 {
		return splitTriangle(poly)
	}
	for off := n / 2; off >= 2; off-- {
		for i := 0; i < n; i++ {
			j := (i + off) % n
			if !validDiagonal(poly, i, j) {
				continue
			}
			a = sliceLoop(poly, i, j)
			b = sliceLoop(poly, j, i)
			if geom.PolygonArea(a) > 0 && geom.PolygonArea(b) > 0 &&
				geom.IsSimple(a) && geom.IsSimple(b) {
				return a, b
			}
		}
	}
	// Unreachable for a simple polygon; keep a deterministic answer anyway.
	return splitTriangle(poly[:3])
}

// validDiagonal reports whether the chord poly[i]-poly[j] stays inside the
// polygon and crosses no boundary edge.
func validDiagonal(poly []domain.Point, i, j int) bool {
	n := len(poly)
	pi, pj := poly[i], poly[j]
	for e := 0; e < n; e++ {
		if e == i || e == j || (e+1)%n == i || (e+1)%n == j {
			continue
		}
		if geom.SegmentsCross(pi, pj, poly[e], poly[(e+1)%n]) {
			return false
		}
	}
	mid := domain.Point{X: (pi.X + pj.X) / 2, Y: (pi.Y + pj.Y) / 2}
	return geom.PointInPolygon(mid, poly)
}

// sliceLoop returns vertices from index i to j inclusive, walking forward
// with wraparound.
func sliceLoop(poly []domain.Point, i, j int) []domain.Point {
	var out []domain.Point
	for k := i; ; k = (k + 1) % len(poly) {
		out = append(out, poly[k])
		if k == j {
			return out
		}
	}
}

func splitTriangle(tri []domain.Point) (a, b []domain.Point) {
	// Split the longest edge at its midpoint toward the opposite vertex.
	longest, best := 0, -1.0
	for i := 0; i < 3; i++ {
		if d := geom.Dist(tri[i], tri[(i+1)%3]); d > best {
			longest, best = i, d
		}
	}
	p, q, r := tri[longest], tri[(longest+1)%3], tri[(longest+2)%3]
	m := domain.Point{X: (p.X + q.X) / 2, Y: (p.Y + q.Y) / 2}
	return []domain.Point{p, m, r}, []domain.Point{m, q, r}
}

// innerPoint returns a point guaranteed to lie inside the polygon: the vertex
// average when it is enclosed, otherwise the midpoint of the first interior
// span of a horizontal ray through it.
func innerPoint(vs []domain.Point) domain.Point {
	c := geom.Centroid(vs)
	if geom.PointInPolygon(c, vs) {
		return c
	}
	var xs []float64
	n := len(vs)
	for i := 0; i < n; i++ {
		a, b := vs[i], vs[(i+1)%n]
		if (a.Y > c.Y) != (b.Y > c.Y) {
			xs = append(xs, a.X+(c.Y-a.Y)/(b.Y-a.Y)*(b.X-a.X))
		}
	}
	if len(xs) < 2 {
		return c
	}
	lo, hi := math.Inf(1), math.Inf(1)
	for _, x := range xs {
		if x < lo {
			hi = lo
			lo = x
		} else if x < hi {
			hi = x
		}
	}
	return domain.Point{X: (lo + hi) / 2, Y: c.Y}
}
