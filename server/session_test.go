package server

import (
	"context"
	"log/slog"
	"slices"
	"testing"

	"github.com/royalcat/rlabel/labeler"
	"github.com/royalcat/rlabel/labelio"
)

func newTestSession(t *testing.T, cfg labeler.Config) *session {
	t.Helper()
	ss, err := newSessions(cfg, slog.Default())
	if err != nil {
		t.Fatalf("failed to create sessions: %v", err)
	}
	return ss.Create(context.Background())
}

func record(id string, order int, x, y float64) labelio.LabelRecord {
	return labelio.LabelRecord{
		ID:     id,
		Order:  order,
		Anchor: [2]float64{x, y},
		Boxes:  [][4]float64{{x, y, x + 50, y + 10}},
	}
}

func sessionIDs(sess *session) []string {
	ids := make([]string, 0, len(sess.names))
	for _, id := range sess.names {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

func place(t *testing.T, sess *session, key string, records ...labelio.LabelRecord) *labelio.Report {
	t.Helper()
	report, err := sess.Place(context.Background(), labelio.TileBatch{Zoom: 3, Key: key, Labels: records})
	if err != nil {
		t.Fatalf("place %s: %v", key, err)
	}
	return report
}

func TestSessionNamesOnlyHoldPlacedLabels(t *testing.T) {
	sess := newTestSession(t, labeler.ConfigDefault())
	records := []labelio.LabelRecord{
		record("a", 0, 100, 100),
		record("b", 1, 120, 105),
		record("c", 2, 500, 500),
	}

	for range 100 {
		place(t, sess, "0:0:1", records...)
	}
	if ids := sessionIDs(sess); !slices.Equal(ids, []string{"a", "c"}) {
		t.Fatalf("expected names of placed labels only, got %v", ids)
	}

	report := place(t, sess, "1:0:1", record("d", 5, 110, 100))
	if len(report.Rejected) != 1 {
		t.Fatalf("expected d rejected, got %+v", report)
	}
	if ids := sessionIDs(sess); !slices.Equal(ids, []string{"a", "c"}) {
		t.Fatalf("expected rejected labels to leave no name, got %v", ids)
	}
}

func TestSessionForgetsDisplacedNames(t *testing.T) {
	sess := newTestSession(t, labeler.ConfigDefault())

	place(t, sess, "0:0:1", record("old", 5, 100, 100))
	report := place(t, sess, "1:0:1", record("new", 1, 110, 100))

	if !slices.Equal(report.Displaced, []string{"old"}) {
		t.Fatalf("expected old displaced, got %+v", report)
	}
	if ids := sessionIDs(sess); !slices.Equal(ids, []string{"new"}) {
		t.Fatalf("unexpected names %v", ids)
	}
}

func TestSessionForgetsEvictedNames(t *testing.T) {
	cfg := labeler.ConfigDefault()
	cfg.MaxLabeledTiles = 1
	sess := newTestSession(t, cfg)

	for i, key := range []string{"0:0:1", "1:0:1", "2:0:1", "3:0:1"} {
		place(t, sess, key, record(key, 1, float64(i)*200, 100))
	}
	if ids := sessionIDs(sess); !slices.Equal(ids, []string{"3:0:1"}) {
		t.Fatalf("expected only the kept tile named, got %v", ids)
	}

	l, err := sess.labelers.Get(3)
	if err != nil {
		t.Fatal(err)
	}
	if n := l.Index().Len(); n != len(sess.names) {
		t.Fatalf("expected one name per stored label, got %d boxes and %d names", n, len(sess.names))
	}
}
