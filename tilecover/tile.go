package tilecover

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// TileSize is the pixel size of a display tile.
const TileSize = 256

var ErrMalformedKey = errors.New("malformed tile key")

// Tile identifies a tile on a zoom level. X and Y are signed because coordinates of a
// wrapped world copy or of an out of world box are kept as is.
type Tile struct {
	X, Y int
	Z    int
}

// String returns the "x:y:z" form used for both display and key identifiers.
func (t Tile) String() string {
	return strconv.Itoa(t.X) + ":" + strconv.Itoa(t.Y) + ":" + strconv.Itoa(t.Z)
}

// ParseTile parses the first three components of a "x:y:z[:suffix...]" key.
// The remaining components are returned as suffix.
func ParseTile(key string) (t Tile, suffix string, err error) {
	parts := strings.SplitN(key, ":", 4)
	if len(parts) < 3 {
		return Tile{}, "", fmt.Errorf("%w: %q", ErrMalformedKey, key)
	}

	var nums [3]int
	for i := range nums {
		nums[i], err = strconv.Atoi(parts[i])
		if err != nil {
			return Tile{}, "", fmt.Errorf("%w: %q: %w", ErrMalformedKey, key, err)
		}
	}
	if len(parts) == 4 {
		suffix = parts[3]
	}

	return Tile{X: nums[0], Y: nums[1], Z: nums[2]}, suffix, nil
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
