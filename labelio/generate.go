package labelio

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/fogleman/poissondisc"
	"github.com/royalcat/rlabel/tilecover"
)

var ErrInvalidGenerateOptions = errors.New("invalid generate options")

// maxGenerateTiles bounds Columns*Rows.
const maxGenerateTiles = 1 << 12

type GenerateOptions struct {
	Seed      int64
	Zoom      int
	TileWidth float64
	// Columns and Rows count storage tiles.
	Columns, Rows int
	// Spacing is the minimum distance between anchors.
	Spacing       float64
	Names         int
	DedupDistance float64
}

func GenerateDefault() GenerateOptions {
	return GenerateOptions{
		Seed:          1,
		Zoom:          3,
		TileWidth:     1024,
		Columns:       2,
		Rows:          2,
		Spacing:       48,
		Names:         16,
		DedupDistance: 100,
	}
}

func (o GenerateOptions) validate() error {
	if err := tilecover.ValidZoom(o.Zoom); err != nil {
		return err
	}
	if err := tilecover.ValidTileWidth(o.TileWidth); err != nil {
		return err
	}
	if !(o.Spacing > 0) {
		return fmt.Errorf("%w: spacing %v", ErrInvalidGenerateOptions, o.Spacing)
	}
	if o.Columns < 0 || o.Rows < 0 || o.Columns > maxGenerateTiles || o.Rows > maxGenerateTiles ||
		o.Columns*o.Rows > maxGenerateTiles {
		return fmt.Errorf("%w: %dx%d tiles", ErrInvalidGenerateOptions, o.Columns, o.Rows)
	}
	return nil
}

// Generate builds a synthetic batch with poisson-disc distributed anchors.
func Generate(opts GenerateOptions) (*Batch, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	rnd := rand.New(rand.NewSource(opts.Seed))
	names := max(opts.Names, 1)

	batch := &Batch{}
	for col := 0; col < opts.Columns; col++ {
		for row := 0; row < opts.Rows; row++ {
			x0, y0 := float64(col)*opts.TileWidth, float64(row)*opts.TileWidth
			display := tilecover.DisplayTile(opts.Zoom, int(x0)/tilecover.TileSize, int(y0)/tilecover.TileSize)
			key := tilecover.KeyTile(display, opts.TileWidth).String()

			tile := TileBatch{Zoom: opts.Zoom, Key: key}
			points := poissondisc.Sample(x0, y0, x0+opts.TileWidth, y0+opts.TileWidth, opts.Spacing, 10, rnd)
			for i, p := range points {
				w, h := 20+rnd.Float64()*60, 12.0
				rec := LabelRecord{
					ID:     fmt.Sprintf("%s-%d", key, i),
					Order:  rnd.Intn(10),
					Anchor: [2]float64{p.X, p.Y},
					Boxes:  [][4]float64{{p.X - w/2, p.Y - h/2, p.X + w/2, p.Y + h/2}},
				}
				if opts.DedupDistance > 0 {
					rec.DedupKey = fmt.Sprintf("name-%d", rnd.Intn(names))
					rec.DedupDistance = opts.DedupDistance
				}
				tile.Labels = append(tile.Labels, rec)
			}
			batch.Tiles = append(batch.Tiles, tile)
		}
	}
	return batch, nil
}
