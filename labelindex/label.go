package labelindex

import (
	"math"

	"github.com/paulmach/orb"
)

// AnyOrder as maxOrder matches entries of every order, including math.MaxInt itself.
const AnyOrder = math.MaxInt

func belowOrder(order, maxOrder int) bool {
	return maxOrder == AnyOrder || order < maxOrder
}

// DrawFunc renders a placed label onto a caller supplied drawing context.
type DrawFunc func(dc any)

// Label is a candidate with precomputed geometry. All of Boxes must be free for the label
// to be placeable.
type Label struct {
	Anchor orb.Point
	Boxes  []orb.Bound
	Draw   DrawFunc

	// Labels sharing a non empty DeduplicationKey suppress each other when their anchors are
	// closer than DeduplicationDistance.
	DeduplicationKey      string
	DeduplicationDistance float64
}

// IndexedLabel is one stored box of an inserted label.
type IndexedLabel struct {
	Box   orb.Bound
	Label *Label
	Order int
	Key   string
}

// LabelSet holds distinct labels.
type LabelSet map[*Label]struct{}

func (s LabelSet) Has(l *Label) bool {
	_, ok := s[l]
	return ok
}
