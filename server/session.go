package server

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/puzpuzpuz/xsync/v3"
	"github.com/royalcat/rlabel/labeler"
	"github.com/royalcat/rlabel/labelio"
	"go.opentelemetry.io/otel/metric"
)

// session is one client's layout state, a labeler per zoom level. Requests of a session are
// serialized, different sessions run in parallel.
type session struct {
	id      string
	created time.Time

	mu       sync.Mutex
	labelers *labeler.Labelers
	names    labelio.Names
}

// Place lays out one tile. s.names only ever holds labels that are in the index.
func (s *session) Place(ctx context.Context, tile labelio.TileBatch) (*labelio.Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cands, err := tile.Candidates(nil)
	if err != nil {
		return nil, err
	}

	report := &labelio.Report{}
	res, err := s.labelers.Place(ctx, tile.Zoom, tile.Key, cands, report)
	if err != nil {
		return nil, err
	}
	for _, c := range res.Placed {
		s.names[c.Label] = c.ID
	}
	report.Add(res, s.names)
	for _, l := range res.Displaced {
		delete(s.names, l)
	}
	for _, l := range res.Evicted {
		delete(s.names, l)
	}
	return report, nil
}

func (s *session) Prune(zoom int, key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, err := s.labelers.Get(zoom)
	if err != nil {
		return
	}
	for _, il := range l.Index().Entries(key) {
		delete(s.names, il.Label)
	}
	s.labelers.Prune(zoom, key)
}

// Search returns the ids of the labels whose boxes intersect box.
func (s *session) Search(zoom int, box orb.Bound, maxOrder int) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, err := s.labelers.Get(zoom)
	if err != nil {
		return nil, err
	}
	found := l.Index().SearchBbox(box, maxOrder)
	ids := make([]string, 0, len(found))
	for label := range found {
		ids = append(ids, s.names[label])
	}
	return ids, nil
}

type sessions struct {
	cfg labeler.Config
	log *slog.Logger
	m   *xsync.MapOf[string, *session]

	metricActive metric.Int64UpDownCounter
}

func newSessions(cfg labeler.Config, log *slog.Logger) (*sessions, error) {
	metricActive, err := meter.Int64UpDownCounter("sessions_active")
	if err != nil {
		return nil, err
	}
	return &sessions{
		cfg:          cfg,
		log:          log,
		m:            xsync.NewMapOf[string, *session](),
		metricActive: metricActive,
	}, nil
}

func (ss *sessions) Create(ctx context.Context) *session {
	id := uuid.NewString()
	sess := &session{
		id:       id,
		created:  time.Now(),
		labelers: labeler.NewLabelers(ss.cfg, ss.log.With("session", id)),
		names:    labelio.Names{},
	}
	ss.m.Store(id, sess)
	ss.metricActive.Add(ctx, 1)
	ss.log.DebugContext(ctx, "session created", "session", id)
	return sess
}

func (ss *sessions) Get(id string) (*session, bool) {
	return ss.m.Load(id)
}

func (ss *sessions) Delete(ctx context.Context, id string) bool {
	sess, ok := ss.m.LoadAndDelete(id)
	if !ok {
		return false
	}
	ss.metricActive.Add(ctx, -1)
	ss.log.DebugContext(ctx, "session deleted", "session", id, "age", time.Since(sess.created))
	return true
}

func (ss *sessions) Len() int {
	return ss.m.Size()
}
