package tilecover

import (
	"errors"
	"fmt"
	"math"
	"math/bits"

	"github.com/paulmach/orb"
	"github.com/royalcat/rlabel/geom"
)

const (
	// MaxZoom is the deepest display zoom accepted by Covering.
	MaxZoom = 30
	// MaxCoverTiles bounds the number of grid cells a single Covering call may return.
	MaxCoverTiles = 1 << 16

	maxGridCoord = math.MaxInt32
)

var (
	ErrInvalidZoom      = errors.New("invalid display zoom")
	ErrInvalidTileWidth = errors.New("invalid tile width")
	ErrTooManyTiles     = errors.New("box covers too many tiles")
)

// Descriptor pairs the copy aware tile used for drawing with the copy agnostic key used for
// label ownership.
type Descriptor struct {
	Display string `json:"display"`
	Key     string `json:"key"`
}

// DisplayTile projects grid cell (x, y) onto the display zoom. The column is wrapped by the
// number of columns on that zoom, so the copy a cell belongs to is reflected in x.
// displayZoom must be in [0, MaxZoom], see ValidZoom.
func DisplayTile(displayZoom, x, y int) Tile {
	return Tile{X: x % (1 << displayZoom), Y: y, Z: displayZoom}
}

// KeyTile projects a display tile onto the storage zoom of an index whose tiles are
// tileWidth pixels wide. Every display tile inside the same storage tile shares the key.
func KeyTile(display Tile, tileWidth float64) Tile {
	diff := levelDiff(tileWidth)
	f := 1 << diff
	return Tile{
		X: floorDiv(display.X, f),
		Y: floorDiv(display.Y, f),
		Z: display.Z - diff,
	}
}

func ValidZoom(zoom int) error {
	if zoom < 0 || zoom > MaxZoom {
		return fmt.Errorf("%w: %d not in [0, %d]", ErrInvalidZoom, zoom, MaxZoom)
	}
	return nil
}

func ValidTileWidth(tileWidth float64) error {
	if !(tileWidth >= TileSize && tileWidth <= TileSize<<MaxZoom) {
		return fmt.Errorf("%w: %v", ErrInvalidTileWidth, tileWidth)
	}
	return nil
}

// Covering returns the tiles needed to cover box on the TileSize grid, scanning columns from
// box.Min.X to box.Max.X and rows top to bottom. tileWidth is the pixel width of a storage tile
// and must be a power of two multiple of TileSize. Boxes spanning more than MaxCoverTiles cells
// are refused.
func Covering(displayZoom int, tileWidth float64, box orb.Bound) ([]Descriptor, error) {
	if err := ValidZoom(displayZoom); err != nil {
		return nil, err
	}
	if err := ValidTileWidth(tileWidth); err != nil {
		return nil, err
	}
	if err := geom.Validate(box); err != nil {
		return nil, err
	}

	fMinX, fMaxX := math.Floor(box.Min[0]/TileSize), math.Floor(box.Max[0]/TileSize)
	fMinY, fMaxY := math.Floor(box.Min[1]/TileSize), math.Floor(box.Max[1]/TileSize)
	if n := (fMaxX - fMinX + 1) * (fMaxY - fMinY + 1); !(n <= MaxCoverTiles) {
		return nil, fmt.Errorf("%w: box %v spans %g tiles", ErrTooManyTiles, box, n)
	}
	for _, v := range [4]float64{fMinX, fMaxX, fMinY, fMaxY} {
		if math.Abs(v) > maxGridCoord {
			return nil, fmt.Errorf("%w: box %v is out of range", ErrTooManyTiles, box)
		}
	}

	minX, maxX := int(fMinX), int(fMaxX)
	minY, maxY := int(fMinY), int(fMaxY)

	out := make([]Descriptor, 0, (maxX-minX+1)*(maxY-minY+1))
	for x := minX; x <= maxX; x++ {
		for y := minY; y <= maxY; y++ {
			display := DisplayTile(displayZoom, x, y)
			out = append(out, Descriptor{
				Display: display.String(),
				Key:     KeyTile(display, tileWidth).String(),
			})
		}
	}
	return out, nil
}

func levelDiff(tileWidth float64) int {
	f := uint(tileWidth / TileSize)
	if f <= 1 {
		return 0
	}
	return bits.Len(f) - 1
}
