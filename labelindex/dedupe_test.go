package labelindex_test

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/royalcat/rlabel/geom"
	"github.com/royalcat/rlabel/labelindex"
)

func dedupLabel(x, y float64, key string) *labelindex.Label {
	l := newLabel(orb.Point{x, y}, geom.MustBox(x, y, x+10, y+10))
	l.DeduplicationKey = key
	l.DeduplicationDistance = 100
	return l
}

func TestDeduplication(t *testing.T) {
	index := newIndex(t)
	insert(t, index, dedupLabel(100, 100, "Mulholland Dr."), 1, "abcd")

	if index.DeduplicationCollides(dedupLabel(200, 100, "Mulholland Dr.")) {
		t.Fatalf("label exactly at the deduplication distance must not collide")
	}
	if !index.DeduplicationCollides(dedupLabel(199, 100, "Mulholland Dr.")) {
		t.Fatalf("label closer than the deduplication distance must collide")
	}
	if index.DeduplicationCollides(dedupLabel(150, 100, "Sunset Blvd.")) {
		t.Fatalf("labels with different keys must not collide")
	}
}

func TestDeduplicationWithoutKey(t *testing.T) {
	index := newIndex(t)
	insert(t, index, dedupLabel(100, 100, "Mulholland Dr."), 1, "abcd")

	candidate := dedupLabel(101, 100, "")
	if index.DeduplicationCollides(candidate) {
		t.Fatalf("label without a key never collides")
	}

	candidate = dedupLabel(101, 100, "Mulholland Dr.")
	candidate.DeduplicationDistance = 0
	if index.DeduplicationCollides(candidate) {
		t.Fatalf("label without a distance never collides")
	}
}

func TestDeduplicationIgnoresOrder(t *testing.T) {
	index := newIndex(t)
	insert(t, index, dedupLabel(100, 100, "X"), 100, "abcd")

	if !index.DeduplicationCollides(dedupLabel(101, 100, "X")) {
		t.Fatalf("deduplication must not depend on order")
	}
}

func TestDeduplicationAcrossSeam(t *testing.T) {
	index := newIndex(t)
	insert(t, index, dedupLabel(1020, 100, "X"), 1, "abcd")

	if !index.DeduplicationCollides(dedupLabel(10, 100, "X")) {
		t.Fatalf("expected anchors 14px apart across the seam to collide")
	}
	if index.DeduplicationCollides(dedupLabel(500, 100, "X")) {
		t.Fatalf("unexpected collision")
	}
}

func TestDeduplicationSkipsItself(t *testing.T) {
	index := newIndex(t)
	l := dedupLabel(100, 100, "X")
	insert(t, index, l, 1, "abcd")

	if index.DeduplicationCollides(l) {
		t.Fatalf("a placed label must not collide with itself")
	}
}
