package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"strconv"
	"time"

	"github.com/fasthttp/router"
	"github.com/mailru/easyjson"
	"github.com/mailru/easyjson/jwriter"
	"github.com/paulmach/orb"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/royalcat/rlabel/geom"
	"github.com/royalcat/rlabel/labeler"
	"github.com/royalcat/rlabel/labelindex"
	"github.com/royalcat/rlabel/labelio"
	"github.com/royalcat/rlabel/tilecover"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const MaxBodySize = 32 * 1000 * 1000 // 32MB

var meter = otel.Meter("github.com/royalcat/rlabel/server")

func Run(ctx context.Context, address string, cfg labeler.Config) error {
	log := slog.Default().With("component", "server")

	s, err := newServer(cfg, log)
	if err != nil {
		return err
	}

	server := &fasthttp.Server{
		ReadTimeout:        time.Second,
		MaxRequestBodySize: MaxBodySize,
		Handler:            s.Router().Handler,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("Server listening", "address", address)
		if err := server.ListenAndServe(address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("ListenAndServe(): %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	return server.ShutdownWithContext(shutdownCtx)
}

type server struct {
	cfg      labeler.Config
	log      *slog.Logger
	sessions *sessions

	metricCoverCallCount  metric.Int64Counter
	metricPlaceCallCount  metric.Int64Counter
	metricSearchCallCount metric.Int64Counter
}

func newServer(cfg labeler.Config, log *slog.Logger) (*server, error) {
	metricCoverCallCount, err := meter.Int64Counter("http_cover_call_total")
	if err != nil {
		return nil, err
	}
	metricPlaceCallCount, err := meter.Int64Counter("http_place_call_total")
	if err != nil {
		return nil, err
	}
	metricSearchCallCount, err := meter.Int64Counter("http_search_call_total")
	if err != nil {
		return nil, err
	}
	sessions, err := newSessions(cfg, log)
	if err != nil {
		return nil, err
	}

	return &server{
		cfg:      cfg,
		log:      log,
		sessions: sessions,

		metricCoverCallCount:  metricCoverCallCount,
		metricPlaceCallCount:  metricPlaceCallCount,
		metricSearchCallCount: metricSearchCallCount,
	}, nil
}

func (s *server) Router() *router.Router {
	r := router.New()
	r.GET("/cover/{zoom}/{minx}/{miny}/{maxx}/{maxy}", s.CoverHandler)
	r.POST("/sessions", s.CreateSessionHandler)
	r.DELETE("/sessions/{id}", s.DeleteSessionHandler)
	r.POST("/sessions/{id}/tiles/{zoom}/{key}", s.PlaceTileHandler)
	r.DELETE("/sessions/{id}/tiles/{zoom}/{key}", s.PruneTileHandler)
	r.GET("/sessions/{id}/search/{zoom}/{minx}/{miny}/{maxx}/{maxy}", s.SearchHandler)
	r.Handle(http.MethodGet, "/metrics", fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler()))
	return r
}

func (s *server) CoverHandler(ctx *fasthttp.RequestCtx) {
	s.metricCoverCallCount.Add(ctx, 1)

	zoom, err := intValue(ctx, "zoom")
	if err != nil {
		badRequest(ctx, err)
		return
	}
	box, err := boxValue(ctx)
	if err != nil {
		badRequest(ctx, err)
		return
	}

	descriptors, err := tilecover.Covering(zoom, s.cfg.TileWidth, box)
	if err != nil {
		badRequest(ctx, err)
		return
	}
	writeJSON(ctx, http.StatusOK, labelio.DescriptorList(descriptors))
}

func (s *server) CreateSessionHandler(ctx *fasthttp.RequestCtx) {
	sess := s.sessions.Create(ctx)
	writeJSON(ctx, http.StatusCreated, labelio.Session{ID: sess.id})
}

func (s *server) DeleteSessionHandler(ctx *fasthttp.RequestCtx) {
	id, _ := ctx.UserValue("id").(string)
	if !s.sessions.Delete(ctx, id) {
		ctx.Response.SetStatusCode(http.StatusNotFound)
		return
	}
	ctx.Response.SetStatusCode(http.StatusNoContent)
}

func (s *server) PlaceTileHandler(ctx *fasthttp.RequestCtx) {
	s.metricPlaceCallCount.Add(ctx, 1)

	sess, ok := s.session(ctx)
	if !ok {
		return
	}
	zoom, err := intValue(ctx, "zoom")
	if err != nil {
		badRequest(ctx, err)
		return
	}
	key, _ := ctx.UserValue("key").(string)

	var tile labelio.TileBatch
	err = easyjson.Unmarshal(ctx.Request.Body(), &tile)
	if err != nil {
		badRequest(ctx, fmt.Errorf("failed to parse request: %w", err))
		return
	}
	tile.Zoom, tile.Key = zoom, key

	report, err := sess.Place(ctx, tile)
	if err != nil {
		badRequest(ctx, err)
		return
	}
	writeJSON(ctx, http.StatusOK, report)
}

func (s *server) PruneTileHandler(ctx *fasthttp.RequestCtx) {
	sess, ok := s.session(ctx)
	if !ok {
		return
	}
	zoom, err := intValue(ctx, "zoom")
	if err != nil {
		badRequest(ctx, err)
		return
	}
	key, _ := ctx.UserValue("key").(string)

	sess.Prune(zoom, key)
	ctx.Response.SetStatusCode(http.StatusNoContent)
}

func (s *server) SearchHandler(ctx *fasthttp.RequestCtx) {
	s.metricSearchCallCount.Add(ctx, 1)

	sess, ok := s.session(ctx)
	if !ok {
		return
	}
	zoom, err := intValue(ctx, "zoom")
	if err != nil {
		badRequest(ctx, err)
		return
	}
	box, err := boxValue(ctx)
	if err != nil {
		badRequest(ctx, err)
		return
	}
	maxOrder := labelindex.AnyOrder
	if raw := ctx.QueryArgs().Peek("max_order"); len(raw) > 0 {
		maxOrder, err = strconv.Atoi(string(raw))
		if err != nil {
			badRequest(ctx, fmt.Errorf("invalid max_order: %w", err))
			return
		}
	}

	ids, err := sess.Search(zoom, box, maxOrder)
	if err != nil {
		ctx.Response.SetStatusCode(http.StatusInternalServerError)
		return
	}
	slices.Sort(ids)
	writeJSON(ctx, http.StatusOK, labelio.SearchResult{Count: len(ids), IDs: ids})
}

func (s *server) session(ctx *fasthttp.RequestCtx) (*session, bool) {
	id, _ := ctx.UserValue("id").(string)
	sess, ok := s.sessions.Get(id)
	if !ok {
		ctx.Response.SetStatusCode(http.StatusNotFound)
		ctx.Response.SetBodyString("unknown session")
	}
	return sess, ok
}

func intValue(ctx *fasthttp.RequestCtx, name string) (int, error) {
	raw, _ := ctx.UserValue(name).(string)
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", name, err)
	}
	return v, nil
}

func boxValue(ctx *fasthttp.RequestCtx) (orb.Bound, error) {
	var c [4]float64
	for i, name := range [4]string{"minx", "miny", "maxx", "maxy"} {
		raw, _ := ctx.UserValue(name).(string)
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return orb.Bound{}, fmt.Errorf("invalid %s: %w", name, err)
		}
		c[i] = v
	}
	return geom.NewBox(c[0], c[1], c[2], c[3])
}

func badRequest(ctx *fasthttp.RequestCtx, err error) {
	ctx.Response.SetStatusCode(http.StatusBadRequest)
	ctx.Response.SetBodyString(err.Error())
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v easyjson.Marshaler) {
	w := jwriter.Writer{Flags: jwriter.NilSliceAsEmpty}
	v.MarshalEasyJSON(&w)
	data, err := w.BuildBytes()
	if err != nil {
		ctx.Response.SetStatusCode(http.StatusInternalServerError)
		ctx.Response.SetBodyString("failed to marshal response")
		return
	}

	ctx.Response.Header.SetContentType("application/json")
	ctx.Response.SetStatusCode(status)
	ctx.Response.SetBody(data)
}
