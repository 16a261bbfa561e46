package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/cheggaaa/pb/v3/termutil"
	"github.com/paulmach/orb"
	"github.com/royalcat/rlabel/geom"
	"github.com/royalcat/rlabel/internal/stats"
	"github.com/royalcat/rlabel/internal/telemetry"
	"github.com/royalcat/rlabel/labeler"
	"github.com/royalcat/rlabel/labelio"
	"github.com/royalcat/rlabel/server"
	"github.com/royalcat/rlabel/tilecover"
	"github.com/sourcegraph/conc/pool"
	"github.com/urfave/cli/v3"

	_ "github.com/KimMachineGun/automemlimit"
	_ "go.uber.org/automaxprocs"
)

func main() {
	labelerFlags := []cli.Flag{
		&cli.FloatFlag{
			Name:  "tile-width",
			Usage: "pixel width of a storage tile, a power of two multiple of 256",
			Value: labeler.ConfigDefault().TileWidth,
		},
		&cli.IntFlag{
			Name:        "max-labeled-tiles",
			Usage:       "tile keys kept per group before the farthest is pruned",
			DefaultText: "unbounded",
		},
		&cli.BoolFlag{
			Name:  "no-displace",
			Usage: "reject candidates occluded by lower priority labels instead of displacing them",
		},
	}

	app := &cli.Command{
		Name:        "rlabel",
		Description: "Map label placement with collision and deduplication checks",
		Commands: []*cli.Command{
			{
				Name:  "cover",
				Usage: "print the tiles covering a viewport box",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:     "zoom",
						Aliases:  []string{"z"},
						Required: true,
					},
					&cli.FloatFlag{
						Name:  "tile-width",
						Value: labeler.ConfigDefault().TileWidth,
					},
					&cli.StringFlag{
						Name:     "box",
						Aliases:  []string{"b"},
						Usage:    "minx,miny,maxx,maxy in world pixels",
						Required: true,
					},
				},
				Action: cover,
			},
			{
				Name:    "place",
				Aliases: []string{"p"},
				Usage:   "lay out label batches and write a placement report",
				Flags: append([]cli.Flag{
					&cli.StringSliceFlag{
						Name:      "input",
						Aliases:   []string{"i"},
						Required:  true,
						TakesFile: true,
					},
					&cli.StringFlag{
						Name:        "output",
						Aliases:     []string{"o"},
						TakesFile:   true,
						DefaultText: "stdout",
					},
					&cli.IntFlag{
						Name:        "threads",
						Aliases:     []string{"t"},
						DefaultText: "max",
					},
					&cli.StringFlag{
						Name:      "stats",
						Usage:     "write a runtime statistics report to this file",
						TakesFile: true,
					},
					&cli.StringFlag{
						Name: "pprof.listen",
					},
				}, labelerFlags...),
				Action: place,
			},
			{
				Name:    "generate",
				Aliases: []string{"g"},
				Usage:   "generate a synthetic label batch",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:      "output",
						Aliases:   []string{"o"},
						Required:  true,
						TakesFile: true,
					},
					&cli.IntFlag{
						Name:  "seed",
						Value: int(labelio.GenerateDefault().Seed),
					},
					&cli.IntFlag{
						Name:  "zoom",
						Value: labelio.GenerateDefault().Zoom,
					},
					&cli.FloatFlag{
						Name:  "tile-width",
						Value: labelio.GenerateDefault().TileWidth,
					},
					&cli.IntFlag{
						Name:  "columns",
						Value: labelio.GenerateDefault().Columns,
					},
					&cli.IntFlag{
						Name:  "rows",
						Value: labelio.GenerateDefault().Rows,
					},
					&cli.FloatFlag{
						Name:  "spacing",
						Value: labelio.GenerateDefault().Spacing,
					},
					&cli.FloatFlag{
						Name:  "dedup-distance",
						Value: labelio.GenerateDefault().DedupDistance,
					},
				},
				Action: generate,
			},
			{
				Name:  "serve",
				Usage: "serve the covering and placement api",
				Flags: append([]cli.Flag{
					&cli.StringFlag{
						Name:  "listen",
						Value: ":8080",
					},
					&cli.StringFlag{
						Name:  "otel.endpoint",
						Usage: "otlp http endpoint, exporters are read from OTEL_* variables when empty",
					},
				}, labelerFlags...),
				Action: serve,
			},
		},
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := app.Run(ctx, os.Args); err != nil {
		log.Fatal(err)
	}
}

func labelerConfig(cmd *cli.Command) labeler.Config {
	cfg := labeler.ConfigDefault()
	cfg.TileWidth = cmd.Float("tile-width")
	cfg.MaxLabeledTiles = cmd.Int("max-labeled-tiles")
	cfg.Displace = !cmd.Bool("no-displace")
	return cfg
}

func parseBox(s string) (orb.Bound, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return orb.Bound{}, fmt.Errorf("box must have 4 comma separated values, got %q", s)
	}
	var c [4]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return orb.Bound{}, fmt.Errorf("invalid box value %q: %w", p, err)
		}
		c[i] = v
	}
	return geom.NewBox(c[0], c[1], c[2], c[3])
}

func cover(ctx context.Context, cmd *cli.Command) error {
	box, err := parseBox(cmd.String("box"))
	if err != nil {
		return err
	}

	descriptors, err := tilecover.Covering(cmd.Int("zoom"), cmd.Float("tile-width"), box)
	if err != nil {
		return err
	}
	data, err := labelio.DescriptorList(descriptors).MarshalJSON()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(os.Stdout, string(data))
	return err
}

type preparedBatch struct {
	tiles []preparedTile
	names labelio.Names
}

type preparedTile struct {
	zoom       int
	key        string
	candidates []labeler.Candidate
}

func place(ctx context.Context, cmd *cli.Command) error {
	log := slog.Default()

	threads := cmd.Int("threads")
	if threads == 0 {
		threads = runtime.GOMAXPROCS(0)
	}
	log = log.With("threads", threads)

	if pprofListen := cmd.String("pprof.listen"); pprofListen != "" {
		go func() {
			log.Info("Starting pprof server")
			err := http.ListenAndServe(pprofListen, nil)
			if err != nil {
				log.Error("Error starting pprof server", "error", err)
			}
		}()
	}

	var collector *stats.Collector
	if statsFile := cmd.String("stats"); statsFile != "" {
		var err error
		collector, err = stats.NewCollector(time.Second)
		if err != nil {
			return err
		}
		collector.Start()
		defer func() {
			res := collector.Stop()
			if err := res.SaveToFile(statsFile); err != nil {
				log.Error("Error saving stats", "error", err)
			}
		}()
	}

	inputs := cmd.StringSlice("input")
	batches := make([]preparedBatch, len(inputs))

	p := pool.New().WithErrors().WithMaxGoroutines(threads)
	for i, input := range inputs {
		p.Go(func() error {
			batch, err := labelio.LoadFile(input)
			if err != nil {
				return fmt.Errorf("error loading %s: %w", input, err)
			}
			prepared := preparedBatch{names: labelio.Names{}}
			for _, tile := range batch.Tiles {
				cands, err := tile.Candidates(prepared.names)
				if err != nil {
					return fmt.Errorf("error reading %s: %w", input, err)
				}
				prepared.tiles = append(prepared.tiles, preparedTile{zoom: tile.Zoom, key: tile.Key, candidates: cands})
			}
			batches[i] = prepared
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return err
	}

	names := labelio.Names{}
	total := 0
	for _, b := range batches {
		for l, id := range b.names {
			names[l] = id
		}
		total += len(b.tiles)
	}

	bar := pb.StartNew(total)
	bar.Set("prefix", "placing tiles")
	if w, err := termutil.TerminalWidth(); w == 0 || err != nil {
		bar.SetTemplateString(`{{with string . "prefix"}}{{.}} {{end}}{{counters . }} {{bar . }} {{percent . }} {{rtime . "ETA %s"}}` + "\n")
	}

	labelers := labeler.NewLabelers(labelerConfig(cmd), log)
	report := &labelio.Report{}
	for _, b := range batches {
		for _, tile := range b.tiles {
			if err := ctx.Err(); err != nil {
				bar.Finish()
				return err
			}
			res, err := labelers.Place(ctx, tile.zoom, tile.key, tile.candidates, report)
			if err != nil {
				bar.Finish()
				return err
			}
			report.Add(res, names)
			if collector != nil {
				collector.ObserveIndex(labelers.Size())
			}
			bar.Increment()
		}
	}
	bar.Finish()

	log.Info("Placement complete",
		"placed", len(report.Placed),
		"displaced", len(report.Displaced),
		"rejected", len(report.Rejected),
		"skipped", len(report.Skipped),
	)

	if output := cmd.String("output"); output != "" {
		return labelio.SaveFile(output, report)
	}
	return labelio.SaveReport(os.Stdout, report, false)
}

func generate(ctx context.Context, cmd *cli.Command) error {
	opts := labelio.GenerateDefault()
	opts.Seed = int64(cmd.Int("seed"))
	opts.Zoom = cmd.Int("zoom")
	opts.TileWidth = cmd.Float("tile-width")
	opts.Columns = cmd.Int("columns")
	opts.Rows = cmd.Int("rows")
	opts.Spacing = cmd.Float("spacing")
	opts.DedupDistance = cmd.Float("dedup-distance")

	batch, err := labelio.Generate(opts)
	if err != nil {
		return err
	}
	output := cmd.String("output")
	slog.Info("Saving batch", "file", output, "tiles", len(batch.Tiles))
	return labelio.SaveFile(output, batch)
}

func serve(ctx context.Context, cmd *cli.Command) error {
	client, err := telemetry.Setup(ctx, "rlabel", cmd.String("otel.endpoint"))
	if err != nil {
		return fmt.Errorf("failed to initialize telemetry: %w", err)
	}
	defer client.Shutdown(context.Background())

	return server.Run(ctx, cmd.String("listen"), labelerConfig(cmd))
}
