package server

import (
	"fmt"
	"log/slog"
	"net/http"
	"reflect"
	"testing"

	"github.com/royalcat/rlabel/labeler"
	"github.com/royalcat/rlabel/labelio"
	"github.com/valyala/fasthttp"
)

func newTestServer(tb testing.TB) fasthttp.RequestHandler {
	s, err := newServer(labeler.ConfigDefault(), slog.Default())
	if err != nil {
		tb.Fatalf("failed to create server: %v", err)
	}
	return s.Router().Handler
}

func do(h fasthttp.RequestHandler, method, uri, body string) *fasthttp.RequestCtx {
	ctx := &fasthttp.RequestCtx{}
	ctx.Request.Header.SetMethod(method)
	ctx.Request.SetRequestURI(uri)
	if body != "" {
		ctx.Request.SetBodyString(body)
	}
	h(ctx)
	return ctx
}

func createSession(t *testing.T, h fasthttp.RequestHandler) string {
	ctx := do(h, http.MethodPost, "/sessions", "")
	if ctx.Response.StatusCode() != http.StatusCreated {
		t.Fatalf("expected 201, got %d", ctx.Response.StatusCode())
	}
	var sess labelio.Session
	if err := sess.UnmarshalJSON(ctx.Response.Body()); err != nil {
		t.Fatalf("failed to decode session: %v", err)
	}
	if sess.ID == "" {
		t.Fatalf("expected session id")
	}
	return sess.ID
}

func TestCoverHandler(t *testing.T) {
	h := newTestServer(t)

	ctx := do(h, http.MethodGet, "/cover/3/256/512/257/513", "")
	if ctx.Response.StatusCode() != http.StatusOK {
		t.Fatalf("expected 200, got %d", ctx.Response.StatusCode())
	}
	expected := `[{"display":"1:2:3","key":"0:0:1"}]`
	if string(ctx.Response.Body()) != expected {
		t.Fatalf("expected %s, got %s", expected, ctx.Response.Body())
	}

	for _, uri := range []string{
		"/cover/3/10/0/0/10",
		"/cover/three/0/0/10/10",
		"/cover/3/0/0/ten/10",
		"/cover/-1/0/0/1/1",
		"/cover/64/0/0/1/1",
		"/cover/31/0/0/1/1",
		"/cover/3/0/0/1e15/1e15",
		"/cover/3/-1e300/0/1e300/1",
	} {
		ctx := do(h, http.MethodGet, uri, "")
		if ctx.Response.StatusCode() != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", uri, ctx.Response.StatusCode())
		}
	}
}

const tileBody = `{"labels": [
	{"id": "a", "order": 0, "anchor": [100, 100], "boxes": [[100, 100, 150, 110]]},
	{"id": "b", "order": 1, "anchor": [120, 105], "boxes": [[120, 105, 170, 115]]},
	{"id": "c", "order": 2, "anchor": [500, 500], "boxes": [[500, 500, 550, 510]]}
]}`

func TestSessionLifecycle(t *testing.T) {
	h := newTestServer(t)
	id := createSession(t, h)
	base := "/sessions/" + id

	ctx := do(h, http.MethodPost, base+"/tiles/3/0:0:1", tileBody)
	if ctx.Response.StatusCode() != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", ctx.Response.StatusCode(), ctx.Response.Body())
	}
	var report labelio.Report
	if err := report.UnmarshalJSON(ctx.Response.Body()); err != nil {
		t.Fatalf("failed to decode report: %v", err)
	}
	expected := labelio.Report{
		Placed:    []string{"a", "c"},
		Displaced: []string{},
		Rejected:  []labelio.Rejection{{ID: "b", Reason: "occluded"}},
		Skipped:   []string{},
	}
	if !reflect.DeepEqual(report, expected) {
		t.Fatalf("expected %+v, got %+v", expected, report)
	}

	search := func(query string) labelio.SearchResult {
		t.Helper()
		ctx := do(h, http.MethodGet, base+"/search/3/0/0/1024/1024"+query, "")
		if ctx.Response.StatusCode() != http.StatusOK {
			t.Fatalf("expected 200, got %d", ctx.Response.StatusCode())
		}
		var res labelio.SearchResult
		if err := res.UnmarshalJSON(ctx.Response.Body()); err != nil {
			t.Fatalf("failed to decode search result: %v", err)
		}
		return res
	}

	if res := search(""); res.Count != 2 || !reflect.DeepEqual(res.IDs, []string{"a", "c"}) {
		t.Fatalf("unexpected search result %+v", res)
	}
	if res := search("?max_order=1"); res.Count != 1 || !reflect.DeepEqual(res.IDs, []string{"a"}) {
		t.Fatalf("unexpected search result with max_order %+v", res)
	}
	if ctx := do(h, http.MethodGet, base+"/search/3/0/0/1024/1024?max_order=x", ""); ctx.Response.StatusCode() != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad max_order, got %d", ctx.Response.StatusCode())
	}

	// placing the same tile again is a no-op
	ctx = do(h, http.MethodPost, base+"/tiles/3/0:0:1", tileBody)
	report = labelio.Report{}
	if err := report.UnmarshalJSON(ctx.Response.Body()); err != nil {
		t.Fatalf("failed to decode report: %v", err)
	}
	if !reflect.DeepEqual(report.Skipped, []string{"0:0:1"}) || len(report.Placed) != 0 {
		t.Fatalf("expected skipped tile, got %+v", report)
	}

	ctx = do(h, http.MethodDelete, base+"/tiles/3/0:0:1", "")
	if ctx.Response.StatusCode() != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", ctx.Response.StatusCode())
	}
	if res := search(""); res.Count != 0 {
		t.Fatalf("expected no labels after prune, got %+v", res)
	}

	ctx = do(h, http.MethodDelete, base, "")
	if ctx.Response.StatusCode() != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", ctx.Response.StatusCode())
	}
	ctx = do(h, http.MethodDelete, base, "")
	if ctx.Response.StatusCode() != http.StatusNotFound {
		t.Fatalf("expected 404 for deleted session, got %d", ctx.Response.StatusCode())
	}
}

func TestSessionsAreIsolated(t *testing.T) {
	h := newTestServer(t)
	first := createSession(t, h)
	second := createSession(t, h)

	do(h, http.MethodPost, "/sessions/"+first+"/tiles/3/0:0:1", tileBody)

	ctx := do(h, http.MethodPost, "/sessions/"+second+"/tiles/3/0:0:1", tileBody)
	var report labelio.Report
	if err := report.UnmarshalJSON(ctx.Response.Body()); err != nil {
		t.Fatalf("failed to decode report: %v", err)
	}
	if len(report.Placed) != 2 {
		t.Fatalf("expected the second session to lay out its own tile, got %+v", report)
	}
}

func TestUnknownSession(t *testing.T) {
	h := newTestServer(t)
	for _, req := range [][2]string{
		{http.MethodPost, "/sessions/missing/tiles/3/0:0:1"},
		{http.MethodDelete, "/sessions/missing/tiles/3/0:0:1"},
		{http.MethodGet, "/sessions/missing/search/3/0/0/1/1"},
	} {
		ctx := do(h, req[0], req[1], tileBody)
		if ctx.Response.StatusCode() != http.StatusNotFound {
			t.Fatalf("%s %s: expected 404, got %d", req[0], req[1], ctx.Response.StatusCode())
		}
	}
}

func TestPlaceTileBadRequest(t *testing.T) {
	h := newTestServer(t)
	base := "/sessions/" + createSession(t, h)

	for _, body := range []string{
		`{"labels": [`,
		`{"labels": [{"id": "bad", "boxes": [[10, 10, 0, 0]]}]}`,
	} {
		ctx := do(h, http.MethodPost, base+"/tiles/3/0:0:1", body)
		if ctx.Response.StatusCode() != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", body, ctx.Response.StatusCode())
		}
	}
	ctx := do(h, http.MethodPost, base+"/tiles/z/0:0:1", tileBody)
	if ctx.Response.StatusCode() != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad zoom, got %d", ctx.Response.StatusCode())
	}
}

func BenchmarkHandlers(b *testing.B) {
	h := newTestServer(b)

	b.Run("Cover", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			do(h, http.MethodGet, "/cover/5/0/0/4096/4096", "")
		}
	})

	b.Run("PlaceTile-100", func(b *testing.B) {
		body := generateTile(100)
		ctx := do(h, http.MethodPost, "/sessions", "")
		var sess labelio.Session
		_ = sess.UnmarshalJSON(ctx.Response.Body())
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			do(h, http.MethodPost, fmt.Sprintf("/sessions/%s/tiles/3/%d:0:1", sess.ID, i), body)
		}
	})
}

func generateTile(n int) string {
	body := `{"labels": [`
	for i := range n {
		x := float64(i%32) * 32
		y := float64(i/32) * 16
		body += fmt.Sprintf(`{"id": "l%d", "order": %d, "anchor": [%g, %g], "boxes": [[%g, %g, %g, %g]]}`,
			i, i%10, x, y, x, y, x+40, y+12)
		if i != n-1 {
			body += ","
		}
	}
	return body + "]}"
}
