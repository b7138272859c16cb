package domain

// Point is a 2D board coordinate.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Region is one puzzle piece: a simple polygon that must receive exactly one
// color. Vertices form a closed, non-self-intersecting loop; the closing edge
// from the last vertex back to the first is implicit. Color zero means
// uncolored. Adjacent holds the ids of regions sharing a border and is kept
// symmetric across the whole collection by the adjacency resolver.
type Region struct {
	ID       string          `json:"id"`
	Vertices []Point         `json:"vertices"`
	Center   Point           `json:"center"`
	Color    int             `json:"color,omitempty"`
	Adjacent map[string]bool `json:"adjacent"`
}

// Puzzle is one playable board with its certified minimum color count.
type Puzzle struct {
	ID         string     `json:"id,omitempty"`
	Seed       int64      `json:"seed,omitempty"`
	Difficulty Difficulty `json:"difficulty"`
	Level      int        `json:"level,omitempty"`
	BoardW     float64    `json:"boardWidth"`
	BoardH     float64    `json:"boardHeight"`
	Regions    []*Region  `json:"regions"`
	MinColors  int        `json:"minColors"`
	CreatedAt  int64      `json:"createdAt,omitempty"`
}

// Config sizes one generated puzzle.
type Config struct {
	RegionCount int
	Complexity  float64 // jitter intensity in [0,1]
}

// AttemptResult reports the legality of a proposed coloring move.
type AttemptResult struct {
	Accepted bool `json:"accepted"`
	Conflict bool `json:"conflict"`
}

// Hint suggests a forced coloring move for the UI.
type Hint struct {
	Message  string `json:"message,omitempty"`
	RegionID string `json:"regionId,omitempty"`
	Color    int    `json:"color,omitempty"`
}

// Completion is a persisted record of one finished puzzle.
type Completion struct {
	ID         string     `json:"id"`
	PuzzleID   string     `json:"puzzleId,omitempty"`
	Seed       int64      `json:"seed,omitempty"`
	Difficulty Difficulty `json:"difficulty"`
	DurationMs int64      `json:"durationMs"`
	Colors     int        `json:"colors"`
	CreatedAt  int64      `json:"createdAt"`
}

// RegionByID returns the region with the given id, or nil.
func RegionByID(regions []*Region, id string) *Region {
	for _, r := range regions {
		if r.ID == id {
			return r
		}
	}
	return nil
}
