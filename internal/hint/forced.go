package hint

import (
	"context"
	"fmt"
	"sort"

	"svw.info/mapcolor/internal/coloring"
	"svw.info/mapcolor/internal/domain"
)

// Forced implements a minimal Hinter: it suggests a blank region for which
// only one color within the puzzle's minimum palette is still legal.
type Forced struct{}

func NewForced() *Forced { return &Forced{} }

// Hint returns the first forced move found, scanning regions in id order.
func (h *Forced) Hint(ctx context.Context, p *domain.Puzzle) (domain.Hint, bool, error) {
	if p == nil || p.MinColors == 0 {
		return domain.Hint{}, false, nil
	}
	ids := make([]string, 0, len(p.Regions))
	for _, r := range p.Regions {
		ids = append(ids, r.ID)
	}
	sort.Strings(ids)
	for _, id := range ids {
		if ctx.Err() != nil {
			return domain.Hint{}, false, ctx.Err()
		}
		r := domain.RegionByID(p.Regions, id)
		if r.Color != 0 {
			continue
		}
		c, ok := soleLegal(r, p)
		if ok {
			return domain.Hint{
				Message:  fmt.Sprintf("Only color %d fits here", c),
				RegionID: id,
				Color:    c,
			}, true, nil
		}
	}
	return domain.Hint{}, false, nil
}

func soleLegal(r *domain.Region, p *domain.Puzzle) (int, bool) {
	var s coloring.BacktrackingColorer
	last, count := 0, 0
	for c := 1; c <= p.MinColors; c++ {
		if !s.HasConflict(r.ID, c, p.Regions) {
			count++
			last = c
			if count > 1 {
				return 0, false
			}
		}
	}
	return last, count == 1
}
