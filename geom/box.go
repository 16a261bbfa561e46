package geom

import (
	"errors"
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

var ErrMalformedBox = errors.New("malformed bounding box")

// NewBox returns a bound with the given corners. Coordinates are world pixels and may lie
// outside of a single world copy.
func NewBox(minX, minY, maxX, maxY float64) (orb.Bound, error) {
	b := orb.Bound{Min: orb.Point{minX, minY}, Max: orb.Point{maxX, maxY}}
	if err := Validate(b); err != nil {
		return orb.Bound{}, err
	}
	return b, nil
}

// MustBox is like NewBox but panics on malformed input.
func MustBox(minX, minY, maxX, maxY float64) orb.Bound {
	b, err := NewBox(minX, minY, maxX, maxY)
	if err != nil {
		panic(err)
	}
	return b
}

func Validate(b orb.Bound) error {
	for _, v := range [4]float64{b.Min[0], b.Min[1], b.Max[0], b.Max[1]} {
		if math.IsNaN(v) {
			return fmt.Errorf("%w: NaN coordinate", ErrMalformedBox)
		}
	}
	if b.Min[0] > b.Max[0] || b.Min[1] > b.Max[1] {
		return fmt.Errorf("%w: min %v is greater than max %v", ErrMalformedBox, b.Min, b.Max)
	}
	return nil
}

// ShiftX moves the bound horizontally by dx.
func ShiftX(b orb.Bound, dx float64) orb.Bound {
	return orb.Bound{
		Min: orb.Point{b.Min[0] + dx, b.Min[1]},
		Max: orb.Point{b.Max[0] + dx, b.Max[1]},
	}
}

func ShiftPointX(p orb.Point, dx float64) orb.Point {
	return orb.Point{p[0] + dx, p[1]}
}

// Around returns a square bound centered on p extending d in every direction.
func Around(p orb.Point, d float64) orb.Bound {
	return p.Bound().Pad(d)
}

// Distance is the planar euclidean distance in pixels.
func Distance(a, b orb.Point) float64 {
	return planar.Distance(a, b)
}

// WorldCopy returns the index of the world copy containing x.
func WorldCopy(x, worldWidth float64) int {
	return int(math.Floor(x / worldWidth))
}

// CrossesSeam reports whether the bound spans more than one world copy.
func CrossesSeam(b orb.Bound, worldWidth float64) bool {
	return WorldCopy(b.Min[0], worldWidth) != WorldCopy(b.Max[0], worldWidth)
}
