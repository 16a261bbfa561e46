package labelindex

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/btree"
	"github.com/paulmach/orb"
	"github.com/royalcat/rlabel/geom"
	"github.com/tidwall/rtree"
)

var ErrInvalidWorldWidth = errors.New("world width must be positive")

// Index is the occlusion index of placed labels. The tree and the per key sets always hold
// exactly the same entries.
//
// Index is not safe for concurrent use.
type Index struct {
	tree    rtree.RTreeG[*IndexedLabel]
	current map[string]map[*IndexedLabel]struct{}
	keys    *btree.BTreeG[string]

	worldWidth      float64
	maxLabeledTiles int
	log             *slog.Logger
}

func New(worldWidth float64, opts ...Option) (*Index, error) {
	if !(worldWidth > 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWorldWidth, worldWidth)
	}
	options := loadOptions(opts...)

	return &Index{
		current:         map[string]map[*IndexedLabel]struct{}{},
		keys:            btree.NewOrderedG[string](32),
		worldWidth:      worldWidth,
		maxLabeledTiles: options.maxLabeledTiles,
		log:             options.logger.With("component", "labelindex"),
	}, nil
}

func (idx *Index) WorldWidth() float64 {
	return idx.worldWidth
}

// Insert stores every box of label under key without any collision check. Boxes crossing a
// world copy seam are stored once, as given. Nothing is stored if any box is malformed.
func (idx *Index) Insert(label *Label, order int, key string) ([]*IndexedLabel, error) {
	for i, b := range label.Boxes {
		if err := geom.Validate(b); err != nil {
			return nil, fmt.Errorf("box %d: %w", i, err)
		}
	}
	if len(label.Boxes) == 0 {
		return nil, nil
	}

	set, ok := idx.current[key]
	if !ok {
		set = make(map[*IndexedLabel]struct{}, len(label.Boxes))
		idx.current[key] = set
		idx.keys.ReplaceOrInsert(key)
	}

	entries := make([]*IndexedLabel, 0, len(label.Boxes))
	for _, b := range label.Boxes {
		il := &IndexedLabel{Box: b, Label: label, Order: order, Key: key}
		idx.tree.Insert(b.Min, b.Max, il)
		set[il] = struct{}{}
		entries = append(entries, il)
	}
	return entries, nil
}

// search calls fn for every entry intersecting box in this world copy or in the neighbouring
// ones. fn gets the horizontal offset the match was found at and may stop the search by
// returning false. An entry may be reported more than once.
func (idx *Index) search(box orb.Bound, fn func(il *IndexedLabel, dx float64) bool) {
	for _, dx := range [3]float64{0, -idx.worldWidth, idx.worldWidth} {
		q := geom.ShiftX(box, dx)
		stop := false
		idx.tree.Search(q.Min, q.Max, func(_, _ [2]float64, il *IndexedLabel) bool {
			if !fn(il, dx) {
				stop = true
				return false
			}
			return true
		})
		if stop {
			return
		}
	}
}

// SearchBbox returns distinct labels with a box intersecting box and an order below maxOrder.
// Touching edges intersect.
func (idx *Index) SearchBbox(box orb.Bound, maxOrder int) LabelSet {
	out := LabelSet{}
	idx.search(box, func(il *IndexedLabel, _ float64) bool {
		if belowOrder(il.Order, maxOrder) {
			out[il.Label] = struct{}{}
		}
		return true
	})
	return out
}

// SearchLabel is SearchBbox over every box of label.
func (idx *Index) SearchLabel(label *Label, maxOrder int) LabelSet {
	out := LabelSet{}
	for _, b := range label.Boxes {
		idx.search(b, func(il *IndexedLabel, _ float64) bool {
			if belowOrder(il.Order, maxOrder) {
				out[il.Label] = struct{}{}
			}
			return true
		})
	}
	return out
}

func (idx *Index) BboxCollides(box orb.Bound, maxOrder int) bool {
	found := false
	idx.search(box, func(il *IndexedLabel, _ float64) bool {
		found = belowOrder(il.Order, maxOrder)
		return !found
	})
	return found
}

func (idx *Index) Collides(label *Label, maxOrder int) bool {
	for _, b := range label.Boxes {
		if idx.BboxCollides(b, maxOrder) {
			return true
		}
	}
	return false
}

// Occluders returns the distinct entries that label would overlap with an order below maxOrder.
// AnyOrder returns every overlapped entry.
func (idx *Index) Occluders(label *Label, maxOrder int) []*IndexedLabel {
	seen := map[*IndexedLabel]struct{}{}
	var out []*IndexedLabel
	for _, b := range label.Boxes {
		idx.search(b, func(il *IndexedLabel, _ float64) bool {
			if !belowOrder(il.Order, maxOrder) {
				return true
			}
			if _, ok := seen[il]; !ok {
				seen[il] = struct{}{}
				out = append(out, il)
			}
			return true
		})
	}
	return out
}

func (idx *Index) Has(key string) bool {
	return len(idx.current[key]) > 0
}

// HasPrefix reports whether any stored key starts with prefix.
func (idx *Index) HasPrefix(prefix string) bool {
	found := false
	idx.keys.AscendGreaterOrEqual(prefix, func(key string) bool {
		found = strings.HasPrefix(key, prefix)
		return false
	})
	return found
}

// PruneKey drops every entry stored under key. Unknown keys are ignored.
func (idx *Index) PruneKey(key string) []*IndexedLabel {
	set, ok := idx.current[key]
	if !ok {
		return nil
	}
	removed := make([]*IndexedLabel, 0, len(set))
	for il := range set {
		idx.tree.Delete(il.Box.Min, il.Box.Max, il)
		removed = append(removed, il)
	}
	delete(idx.current, key)
	idx.keys.Delete(key)

	idx.log.Debug("pruned key", "key", key, "entries", len(set))
	return removed
}

// RemoveLabel drops a single entry. Entries not present are ignored.
func (idx *Index) RemoveLabel(il *IndexedLabel) {
	if il == nil {
		return
	}
	set, ok := idx.current[il.Key]
	if !ok {
		return
	}
	if _, ok := set[il]; !ok {
		return
	}

	idx.tree.Delete(il.Box.Min, il.Box.Max, il)
	delete(set, il)
	if len(set) == 0 {
		delete(idx.current, il.Key)
		idx.keys.Delete(il.Key)
	}
}

// Retract removes every stored box of label and returns how many were removed.
func (idx *Index) Retract(label *Label) int {
	var entries []*IndexedLabel
	for _, b := range label.Boxes {
		idx.tree.Search(b.Min, b.Max, func(_, _ [2]float64, il *IndexedLabel) bool {
			if il.Label == label {
				entries = append(entries, il)
			}
			return true
		})
	}

	removed := 0
	for _, il := range entries {
		if _, ok := idx.current[il.Key][il]; ok {
			idx.RemoveLabel(il)
			removed++
		}
	}
	return removed
}

// Len returns the number of stored boxes.
func (idx *Index) Len() int {
	return idx.tree.Len()
}

func (idx *Index) KeyCount() int {
	return len(idx.current)
}

// Keys returns the stored keys in ascending order.
func (idx *Index) Keys() []string {
	keys := make([]string, 0, idx.keys.Len())
	idx.keys.Ascend(func(key string) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

func (idx *Index) Entries(key string) []*IndexedLabel {
	set := idx.current[key]
	out := make([]*IndexedLabel, 0, len(set))
	for il := range set {
		out = append(out, il)
	}
	return out
}

// Scan calls fn for every stored entry until fn returns false.
func (idx *Index) Scan(fn func(il *IndexedLabel) bool) {
	idx.tree.Scan(func(_, _ [2]float64, il *IndexedLabel) bool {
		return fn(il)
	})
}
