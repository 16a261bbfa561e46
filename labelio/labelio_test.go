package labelio_test

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/royalcat/rlabel/geom"
	"github.com/royalcat/rlabel/labeler"
	"github.com/royalcat/rlabel/labelio"
	"github.com/royalcat/rlabel/tilecover"
)

const batchJSON = `{
	"tiles": [{
		"zoom": 3,
		"key": "0:0:1",
		"labels": [
			{"id": "a", "order": 0, "anchor": [100, 100], "boxes": [[100, 100, 150, 110]], "dedup_key": "x", "dedup_distance": 100},
			{"id": "b", "order": 1, "anchor": [120, 105], "boxes": [[120, 105, 170, 115]]},
			{"id": "c", "order": 2, "anchor": [150, 100], "boxes": [[400, 400, 450, 410]], "dedup_key": "x", "dedup_distance": 100},
			{"id": "d", "order": 3, "anchor": [600, 600], "boxes": [[600, 600, 650, 610]], "unknown": {"nested": [1, 2]}}
		]
	}]
}`

func TestLoad(t *testing.T) {
	batch, err := labelio.Load(strings.NewReader(batchJSON))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(batch.Tiles) != 1 {
		t.Fatalf("expected 1 tile, got %d", len(batch.Tiles))
	}
	tile := batch.Tiles[0]
	if tile.Zoom != 3 || tile.Key != "0:0:1" || len(tile.Labels) != 4 {
		t.Fatalf("unexpected tile %+v", tile)
	}
	a := tile.Labels[0]
	expected := labelio.LabelRecord{
		ID:            "a",
		Anchor:        [2]float64{100, 100},
		Boxes:         [][4]float64{{100, 100, 150, 110}},
		DedupKey:      "x",
		DedupDistance: 100,
	}
	if !reflect.DeepEqual(a, expected) {
		t.Fatalf("expected %+v, got %+v", expected, a)
	}
}

func TestLoadUnsupported(t *testing.T) {
	for _, input := range []string{"", "   ", "[1, 2]", "garbage"} {
		_, err := labelio.Load(strings.NewReader(input))
		if !errors.Is(err, labelio.ErrUnsupportedFormat) {
			t.Fatalf("%q: expected ErrUnsupportedFormat, got %v", input, err)
		}
	}
}

func TestLoadBrokenJSON(t *testing.T) {
	_, err := labelio.Load(strings.NewReader(`{"tiles": [{"zoom": "three"}]}`))
	if err == nil {
		t.Fatalf("expected decoding error")
	}
}

func TestSaveLoadCompressed(t *testing.T) {
	batch, err := labelio.Load(strings.NewReader(batchJSON))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	for _, compress := range []bool{false, true} {
		buf := bytes.NewBuffer(nil)
		err = labelio.SaveBatch(buf, batch, compress)
		if err != nil {
			t.Fatalf("save: %v", err)
		}
		if compress && bytes.HasPrefix(buf.Bytes(), []byte("{")) {
			t.Fatalf("expected compressed output")
		}

		loaded, err := labelio.Load(buf)
		if err != nil {
			t.Fatalf("load compress=%v: %v", compress, err)
		}
		// the unknown field of d is dropped
		if !reflect.DeepEqual(loaded, batch) {
			t.Fatalf("compress=%v: expected %+v, got %+v", compress, batch, loaded)
		}
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	batch := generate(t, labelio.GenerateDefault())

	for _, name := range []string{"batch.json", "batch.json.zst"} {
		path := filepath.Join(dir, name)
		err := labelio.SaveFile(path, batch)
		if err != nil {
			t.Fatalf("save %s: %v", name, err)
		}
		loaded, err := labelio.LoadFile(path)
		if err != nil {
			t.Fatalf("load %s: %v", name, err)
		}
		if !reflect.DeepEqual(loaded, batch) {
			t.Fatalf("%s: batch changed on disk", name)
		}
	}

	_, err := labelio.LoadFile(filepath.Join(dir, "missing.json"))
	if err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestSaveReportEmpty(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	err := labelio.SaveReport(buf, &labelio.Report{}, false)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	expected := `{"placed":[],"displaced":[],"rejected":[],"skipped":[]}`
	if buf.String() != expected {
		t.Fatalf("expected %s, got %s", expected, buf.String())
	}
}

func TestCandidatesMalformed(t *testing.T) {
	tile := labelio.TileBatch{
		Key:    "0:0:1",
		Labels: []labelio.LabelRecord{{ID: "bad", Boxes: [][4]float64{{10, 10, 0, 20}}}},
	}
	_, err := tile.Candidates(nil)
	if !errors.Is(err, geom.ErrMalformedBox) {
		t.Fatalf("expected ErrMalformedBox, got %v", err)
	}
}

func TestReport(t *testing.T) {
	ctx := context.Background()
	batch, err := labelio.Load(strings.NewReader(batchJSON))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	l, err := labeler.New(3, labeler.ConfigDefault(), nil)
	if err != nil {
		t.Fatalf("labeler: %v", err)
	}

	names := labelio.Names{}
	report := &labelio.Report{}
	for _, tile := range batch.Tiles {
		cands, err := tile.Candidates(names)
		if err != nil {
			t.Fatalf("candidates: %v", err)
		}
		report.Add(l.Place(ctx, tile.Key, cands, report), names)
		report.Add(l.Place(ctx, tile.Key, cands, report), names)
	}

	if !reflect.DeepEqual(report.Placed, []string{"a", "d"}) {
		t.Fatalf("unexpected placed %v", report.Placed)
	}
	expected := []labelio.Rejection{
		{ID: "b", Reason: string(labeler.ReasonOccluded)},
		{ID: "c", Reason: string(labeler.ReasonDuplicate)},
	}
	if !reflect.DeepEqual(report.Rejected, expected) {
		t.Fatalf("expected %v, got %v", expected, report.Rejected)
	}
	if !reflect.DeepEqual(report.Skipped, []string{"0:0:1"}) {
		t.Fatalf("unexpected skipped %v", report.Skipped)
	}
	if len(report.Displaced) != 0 {
		t.Fatalf("unexpected displaced %v", report.Displaced)
	}
}

func TestReportDisplaced(t *testing.T) {
	ctx := context.Background()
	l, err := labeler.New(3, labeler.ConfigDefault(), nil)
	if err != nil {
		t.Fatalf("labeler: %v", err)
	}

	low := labelio.TileBatch{Key: "0:0:1", Labels: []labelio.LabelRecord{
		{ID: "low", Order: 5, Anchor: [2]float64{10, 10}, Boxes: [][4]float64{{10, 10, 60, 20}}},
	}}
	high := labelio.TileBatch{Key: "1:0:1", Labels: []labelio.LabelRecord{
		{ID: "high", Order: 1, Anchor: [2]float64{20, 12}, Boxes: [][4]float64{{20, 12, 70, 22}}},
	}}

	names := labelio.Names{}
	report := &labelio.Report{}
	for _, tile := range []labelio.TileBatch{low, high} {
		cands, err := tile.Candidates(names)
		if err != nil {
			t.Fatalf("candidates: %v", err)
		}
		report.Add(l.Place(ctx, tile.Key, cands, report), names)
	}

	if !reflect.DeepEqual(report.Placed, []string{"low", "high"}) {
		t.Fatalf("unexpected placed %v", report.Placed)
	}
	if !reflect.DeepEqual(report.Displaced, []string{"low"}) {
		t.Fatalf("unexpected displaced %v", report.Displaced)
	}
}

func TestGenerate(t *testing.T) {
	opts := labelio.GenerateDefault()
	a := generate(t, opts)
	b := generate(t, opts)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("expected the same batch for the same seed")
	}
	if len(a.Tiles) != opts.Columns*opts.Rows {
		t.Fatalf("expected %d tiles, got %d", opts.Columns*opts.Rows, len(a.Tiles))
	}

	for _, tile := range a.Tiles {
		if _, _, err := tilecover.ParseTile(tile.Key); err != nil {
			t.Fatalf("generated key %q: %v", tile.Key, err)
		}
		if len(tile.Labels) == 0 {
			t.Fatalf("tile %s has no labels", tile.Key)
		}
		if _, err := tile.Candidates(nil); err != nil {
			t.Fatalf("tile %s: %v", tile.Key, err)
		}
	}

	opts.Seed = 2
	if reflect.DeepEqual(a, generate(t, opts)) {
		t.Fatalf("expected a different batch for another seed")
	}
}

func generate(t testing.TB, opts labelio.GenerateOptions) *labelio.Batch {
	t.Helper()
	batch, err := labelio.Generate(opts)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	return batch
}

func TestGenerateRejectsBadOptions(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*labelio.GenerateOptions)
		want   error
	}{
		{"negative zoom", func(o *labelio.GenerateOptions) { o.Zoom = -1 }, tilecover.ErrInvalidZoom},
		{"zoom 64", func(o *labelio.GenerateOptions) { o.Zoom = 64 }, tilecover.ErrInvalidZoom},
		{"zero tile width", func(o *labelio.GenerateOptions) { o.TileWidth = 0 }, tilecover.ErrInvalidTileWidth},
		{"zero spacing", func(o *labelio.GenerateOptions) { o.Spacing = 0 }, labelio.ErrInvalidGenerateOptions},
		{"negative columns", func(o *labelio.GenerateOptions) { o.Columns = -1 }, labelio.ErrInvalidGenerateOptions},
		{"huge grid", func(o *labelio.GenerateOptions) { o.Columns, o.Rows = 1 << 20, 1 << 20 }, labelio.ErrInvalidGenerateOptions},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := labelio.GenerateDefault()
			tt.mutate(&opts)
			batch, err := labelio.Generate(opts)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
			if batch != nil {
				t.Fatalf("expected no batch on error")
			}
		})
	}
}
