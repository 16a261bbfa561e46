package labeler

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/royalcat/rlabel/geom"
	"github.com/royalcat/rlabel/labelindex"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type Candidate struct {
	ID    string
	Label *labelindex.Label
	Order int
}

type Reason string

const (
	ReasonDuplicate Reason = "duplicate"
	ReasonOccluded  Reason = "occluded"
	ReasonMalformed Reason = "malformed"
)

type Rejection struct {
	Candidate Candidate
	Reason    Reason
}

type Result struct {
	Key       string
	Placed    []Candidate
	Displaced []*labelindex.Label
	// Evicted lists the labels of keys dropped to respect MaxLabeledTiles.
	Evicted  []*labelindex.Label
	Rejected []Rejection
	// Skipped is set when the key already had labels and nothing was done.
	Skipped bool
}

// Labeler runs placement passes for one zoom level.
//
// Labeler is not safe for concurrent use.
type Labeler struct {
	zoom  int
	cfg   Config
	index *labelindex.Index

	log     *slog.Logger
	metrics *metrics
}

func New(zoom int, cfg Config, log *slog.Logger) (*Labeler, error) {
	if log == nil {
		log = slog.Default()
	}
	log = log.With("component", "labeler", "zoom", zoom)

	index, err := labelindex.New(cfg.TileWidth,
		labelindex.WithMaxLabeledTiles(cfg.MaxLabeledTiles),
		labelindex.WithLogger(log),
	)
	if err != nil {
		return nil, fmt.Errorf("error creating label index: %w", err)
	}
	m, err := newMetrics()
	if err != nil {
		return nil, fmt.Errorf("error creating labeler metrics: %w", err)
	}

	return &Labeler{
		zoom:    zoom,
		cfg:     cfg,
		index:   index,
		log:     log,
		metrics: m,
	}, nil
}

func (l *Labeler) Zoom() int {
	return l.zoom
}

// Index exposes the underlying index for queries.
func (l *Labeler) Index() *labelindex.Index {
	return l.index
}

// Place lays out the candidates of the tile identified by key in ascending order. Every
// placed label is inserted under key and drawn onto dc exactly once.
func (l *Labeler) Place(ctx context.Context, key string, candidates []Candidate, dc any) Result {
	res := Result{Key: key}
	if l.index.Has(key) {
		l.log.DebugContext(ctx, "skipping tile already laid out", "key", key)
		res.Skipped = true
		return res
	}

	sorted := slices.Clone(candidates)
	slices.SortStableFunc(sorted, func(a, b Candidate) int {
		return cmp.Compare(a.Order, b.Order)
	})

	for _, c := range sorted {
		if reason, ok := l.admit(ctx, c, &res); !ok {
			res.Rejected = append(res.Rejected, Rejection{Candidate: c, Reason: reason})
			l.metrics.rejected.Add(ctx, 1, metric.WithAttributes(
				attribute.String("reason", string(reason)),
				attribute.Int("zoom", l.zoom),
			))
			continue
		}

		if _, err := l.index.Insert(c.Label, c.Order, key); err != nil {
			l.log.WarnContext(ctx, "rejecting malformed label", "id", c.ID, "error", err)
			res.Rejected = append(res.Rejected, Rejection{Candidate: c, Reason: ReasonMalformed})
			l.metrics.rejected.Add(ctx, 1, metric.WithAttributes(
				attribute.String("reason", string(ReasonMalformed)),
				attribute.Int("zoom", l.zoom),
			))
			continue
		}
		if c.Label.Draw != nil {
			c.Label.Draw(dc)
		}
		res.Placed = append(res.Placed, c)
	}

	l.metrics.placed.Add(ctx, int64(len(res.Placed)), metric.WithAttributes(attribute.Int("zoom", l.zoom)))
	res.Evicted = distinctLabels(l.index.PruneOrNoop(key))

	l.log.DebugContext(ctx, "tile laid out",
		"key", key,
		"placed", len(res.Placed),
		"rejected", len(res.Rejected),
		"displaced", len(res.Displaced),
		"evicted", len(res.Evicted),
	)
	return res
}

func distinctLabels(entries []*labelindex.IndexedLabel) []*labelindex.Label {
	if len(entries) == 0 {
		return nil
	}
	seen := make(labelindex.LabelSet, len(entries))
	out := make([]*labelindex.Label, 0, len(entries))
	for _, il := range entries {
		if _, ok := seen[il.Label]; ok {
			continue
		}
		seen[il.Label] = struct{}{}
		out = append(out, il.Label)
	}
	return out
}

// admit decides whether c may be inserted, retracting lower priority occluders when
// displacement is enabled.
func (l *Labeler) admit(ctx context.Context, c Candidate, res *Result) (Reason, bool) {
	if c.Label == nil {
		return ReasonMalformed, false
	}
	for _, b := range c.Label.Boxes {
		if geom.Validate(b) != nil {
			return ReasonMalformed, false
		}
	}
	if l.index.DeduplicationCollides(c.Label) {
		return ReasonDuplicate, false
	}

	occluders := l.index.Occluders(c.Label, labelindex.AnyOrder)
	if len(occluders) == 0 {
		return "", true
	}
	for _, il := range occluders {
		if il.Order <= c.Order {
			return ReasonOccluded, false
		}
	}
	if !l.cfg.Displace {
		return ReasonOccluded, false
	}

	for _, il := range occluders {
		if l.index.Retract(il.Label) == 0 {
			// another box of the same label was already handled
			continue
		}
		res.Displaced = append(res.Displaced, il.Label)
		l.metrics.displaced.Add(ctx, 1, metric.WithAttributes(attribute.Int("zoom", l.zoom)))
		l.log.DebugContext(ctx, "displaced label", "key", il.Key, "order", il.Order, "by", c.ID)
	}
	return "", true
}

// Prune drops the labels of an unloaded tile.
func (l *Labeler) Prune(key string) {
	l.index.PruneKey(key)
}
