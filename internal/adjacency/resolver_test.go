package adjacency

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/mapcolor/internal/domain"
	"svw.info/mapcolor/internal/geom"
)

// square builds an axis-aligned square region with side 100.
func square(id string, x, y float64) *domain.Region {
	vs := []domain.Point{
		{X: x, Y: y}, {X: x + 100, Y: y},
		{X: x + 100, Y: y + 100}, {X: x, Y: y + 100},
	}
	return &domain.Region{ID: id, Vertices: vs, Center: geom.Centroid(vs)}
}

func TestResolveSharedBorders(t *testing.T) {
	regions := []*domain.Region{
		square("r1", 0, 0), square("r2", 100, 0),
		square("r3", 0, 100), square("r4", 100, 100),
	}
	Resolve(regions)

	assert.True(t, regions[0].Adjacent["r2"], "r1-r2 share an edge")
	assert.True(t, regions[0].Adjacent["r3"], "r1-r3 share an edge")
	assert.True(t, regions[1].Adjacent["r4"], "r2-r4 share an edge")
	assert.True(t, regions[2].Adjacent["r4"], "r3-r4 share an edge")
}

func TestResolveSymmetry(t *testing.T) {
	regions := []*domain.Region{
		square("r1", 0, 0), square("r2", 100, 0),
		square("r3", 0, 100), square("r4", 100, 100),
	}
	Resolve(regions)
	for _, a := range regions {
		for id := range a.Adjacent {
			b := domain.RegionByID(regions, id)
			require.NotNil(t, b)
			assert.True(t, b.Adjacent[a.ID], "%s-%s not symmetric", a.ID, id)
		}
	}
}

func TestResolveDistantRegionsRepaired(t *testing.T) {
	// Far beyond tolerance: only the isolation repair can connect them.
	regions := []*domain.Region{square("r1", 0, 0), square("r2", 500, 0)}
	Resolve(regions)
	assert.True(t, regions[0].Adjacent["r2"])
	assert.True(t, regions[1].Adjacent["r1"])
}

func TestResolveRepairPicksNearest(t *testing.T) {
	regions := []*domain.Region{
		square("r1", 0, 0), square("r2", 100, 0),
		square("r3", 900, 0), // isolated, nearer to r2 than r1
	}
	Resolve(regions)
	assert.True(t, regions[2].Adjacent["r2"])
	assert.False(t, regions[2].Adjacent["r1"])
	assert.True(t, regions[1].Adjacent["r3"], "repair must be symmetric")
}

func TestResolveIdempotent(t *testing.T) {
	build := func() []*domain.Region {
		return []*domain.Region{
			square("r1", 0, 0), square("r2", 100, 0),
			square("r3", 0, 100), square("r4", 500, 500),
		}
	}
	a := build()
	Resolve(a)
	first := make(map[string]map[string]bool)
	for _, r := range a {
		cp := make(map[string]bool, len(r.Adjacent))
		for k, v := range r.Adjacent {
			cp[k] = v
		}
		first[r.ID] = cp
	}
	Resolve(a)
	for _, r := range a {
		assert.Equal(t, first[r.ID], r.Adjacent, "region %s changed on second resolve", r.ID)
	}
}

func TestResolveSingleRegion(t *testing.T) {
	regions := []*domain.Region{square("r1", 0, 0)}
	Resolve(regions)
	assert.Empty(t, regions[0].Adjacent)
}
