package labelio

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/royalcat/rlabel/geom"
	"github.com/royalcat/rlabel/labeler"
	"github.com/royalcat/rlabel/labelindex"
	"github.com/royalcat/rlabel/tilecover"
)

//go:generate go tool easyjson models.go

// Batch is a set of tiles with their candidate labels.
//
//easyjson:json
type Batch struct {
	Tiles []TileBatch `json:"tiles"`
}

//easyjson:json
type TileBatch struct {
	Zoom   int           `json:"zoom"`
	Key    string        `json:"key"`
	Labels []LabelRecord `json:"labels"`
}

//easyjson:json
type LabelRecord struct {
	ID            string       `json:"id"`
	Order         int          `json:"order"`
	Anchor        [2]float64   `json:"anchor"`
	Boxes         [][4]float64 `json:"boxes"`
	DedupKey      string       `json:"dedup_key,omitempty"`
	DedupDistance float64      `json:"dedup_distance,omitempty"`
}

//easyjson:json
type Rejection struct {
	ID     string `json:"id"`
	Reason string `json:"reason"`
}

// Report is the outcome of placing a batch.
//
//easyjson:json
type Report struct {
	Placed    []string    `json:"placed"`
	Displaced []string    `json:"displaced"`
	Rejected  []Rejection `json:"rejected"`
	Skipped   []string    `json:"skipped"`
}

//easyjson:json
type DescriptorList []tilecover.Descriptor

//easyjson:json
type Session struct {
	ID string `json:"id"`
}

//easyjson:json
type SearchResult struct {
	Count int      `json:"count"`
	IDs   []string `json:"ids"`
}

// Names maps labels built from records back to their ids.
type Names map[*labelindex.Label]string

// Candidates converts the records to labeler candidates. Placed labels append their id to
// Report.Placed when drawn onto a *Report.
func (tb TileBatch) Candidates(names Names) ([]labeler.Candidate, error) {
	out := make([]labeler.Candidate, 0, len(tb.Labels))
	for _, rec := range tb.Labels {
		c, err := rec.Candidate()
		if err != nil {
			return nil, fmt.Errorf("tile %s: %w", tb.Key, err)
		}
		if names != nil {
			names[c.Label] = rec.ID
		}
		out = append(out, c)
	}
	return out, nil
}

func (rec LabelRecord) Candidate() (labeler.Candidate, error) {
	boxes := make([]orb.Bound, 0, len(rec.Boxes))
	for _, b := range rec.Boxes {
		box, err := geom.NewBox(b[0], b[1], b[2], b[3])
		if err != nil {
			return labeler.Candidate{}, fmt.Errorf("label %q: %w", rec.ID, err)
		}
		boxes = append(boxes, box)
	}

	id := rec.ID
	return labeler.Candidate{
		ID:    id,
		Order: rec.Order,
		Label: &labelindex.Label{
			Anchor:                orb.Point(rec.Anchor),
			Boxes:                 boxes,
			DeduplicationKey:      rec.DedupKey,
			DeduplicationDistance: rec.DedupDistance,
			Draw: func(dc any) {
				if r, ok := dc.(*Report); ok {
					r.Placed = append(r.Placed, id)
				}
			},
		},
	}, nil
}

// Add records everything but placements, which are recorded by drawing.
func (r *Report) Add(res labeler.Result, names Names) {
	if res.Skipped {
		r.Skipped = append(r.Skipped, res.Key)
		return
	}
	for _, l := range res.Displaced {
		r.Displaced = append(r.Displaced, names[l])
	}
	for _, rej := range res.Rejected {
		r.Rejected = append(r.Rejected, Rejection{ID: rej.Candidate.ID, Reason: string(rej.Reason)})
	}
}
