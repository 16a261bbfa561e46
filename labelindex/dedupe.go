package labelindex

import (
	"github.com/royalcat/rlabel/geom"
)

// DeduplicationCollides reports whether a stored label with the same deduplication key has
// an anchor closer than label.DeduplicationDistance to label.Anchor. Order is not considered.
// Labels without a key or with a non positive distance never collide.
func (idx *Index) DeduplicationCollides(label *Label) bool {
	if label.DeduplicationKey == "" || !(label.DeduplicationDistance > 0) {
		return false
	}
	dist := label.DeduplicationDistance

	collides := false
	idx.search(geom.Around(label.Anchor, dist), func(il *IndexedLabel, dx float64) bool {
		other := il.Label
		if other == label || other.DeduplicationKey != label.DeduplicationKey {
			return true
		}
		// matched at a shifted query, so compare against the shifted anchor as well
		if geom.Distance(geom.ShiftPointX(label.Anchor, dx), other.Anchor) < dist {
			collides = true
			return false
		}
		return true
	})
	return collides
}
