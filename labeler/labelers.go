package labeler

import (
	"context"
	"log/slog"
	"slices"

	"github.com/paulmach/orb"
	"github.com/royalcat/rlabel/tilecover"
)

// Labelers keeps one Labeler per zoom level, created on first use.
type Labelers struct {
	cfg      Config
	log      *slog.Logger
	labelers map[int]*Labeler
}

func NewLabelers(cfg Config, log *slog.Logger) *Labelers {
	if log == nil {
		log = slog.Default()
	}
	return &Labelers{
		cfg:      cfg,
		log:      log,
		labelers: map[int]*Labeler{},
	}
}

func (ls *Labelers) Get(zoom int) (*Labeler, error) {
	if l, ok := ls.labelers[zoom]; ok {
		return l, nil
	}
	l, err := New(zoom, ls.cfg, ls.log)
	if err != nil {
		return nil, err
	}
	ls.labelers[zoom] = l
	return l, nil
}

func (ls *Labelers) Place(ctx context.Context, zoom int, key string, candidates []Candidate, dc any) (Result, error) {
	l, err := ls.Get(zoom)
	if err != nil {
		return Result{}, err
	}
	return l.Place(ctx, key, candidates, dc), nil
}

// Covering returns the tiles a viewport box needs on zoom, keyed for this labelers' tile width.
func (ls *Labelers) Covering(zoom int, box orb.Bound) ([]tilecover.Descriptor, error) {
	return tilecover.Covering(zoom, ls.cfg.TileWidth, box)
}

func (ls *Labelers) Prune(zoom int, key string) {
	if l, ok := ls.labelers[zoom]; ok {
		l.Prune(key)
	}
}

// Drop forgets every label placed on zoom.
func (ls *Labelers) Drop(zoom int) {
	delete(ls.labelers, zoom)
}

func (ls *Labelers) Zooms() []int {
	zooms := make([]int, 0, len(ls.labelers))
	for z := range ls.labelers {
		zooms = append(zooms, z)
	}
	slices.Sort(zooms)
	return zooms
}

// Size sums the labels and tile keys held on every zoom level.
func (ls *Labelers) Size() (labels, keys int) {
	for _, l := range ls.labelers {
		labels += l.index.Len()
		keys += l.index.KeyCount()
	}
	return labels, keys
}
