package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/minivan/codec"
	"github.com/katalvlaran/minivan/config"
	"github.com/katalvlaran/minivan/core"
	"github.com/katalvlaran/minivan/minivan"
	"github.com/katalvlaran/minivan/model"
)

var (
	buildHints string
	buildOut   string
	buildJobs  int
)

var buildCmd = &cobra.Command{
	Use:   "build <graph>...",
	Short: "Build visualization bundles from graph files",
	Long: `Build reads graph snapshots (JSON, YAML, TOML or MessagePack, optionally
.zst compressed), infers the attribute model of each and writes a bundle.

With one input the bundle goes to --out (default stdout). With several
inputs --out names a directory and each bundle is written as
<name>.bundle<ext>.

A previous bundle is valid --hints input.

Examples:
  minivan build graph.json > bundle.json
  minivan build graph.yaml --hints hints.toml -o bundle.msgpack.zst --format msgpack --compress zstd
  minivan build data/*.json -o out/ -j 4`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBuild,
}

func init() {
	d := config.DefaultConfig()
	f := buildCmd.Flags()
	f.StringVar(&buildHints, "hints", "", "Hints file (JSON, YAML, TOML or a previous bundle)")
	f.StringVarP(&buildOut, "out", "o", "-", "Output file, directory for several inputs, or - for stdout")
	f.IntVarP(&buildJobs, "jobs", "j", 1, "Graphs built in parallel")
	f.String("format", d.Output.Format, "Bundle format: json, msgpack, yaml")
	f.String("compress", d.Output.Compress, "Bundle compression: none, zstd")
	f.Int("sample-size", d.Inference.SampleSize, "Values sampled per attribute for type inference")
	f.Int("max-cardinality", d.Partition.MaxCardinality, "Partition cardinality ceiling")
	f.Float64("max-cardinality-ratio", d.Partition.MaxCardinalityRatio, "Partition cardinality ceiling as a share of items")
	f.Float64("min-color-proportion", d.Partition.MinColorProportion, "Smallest partition share colored from the palette")
	f.Int("palette-cache", d.Palette.CacheSize, "Palettes kept in the shared cache")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if buildJobs < 1 {
		return fmt.Errorf("--jobs must be >= 1, got %d", buildJobs)
	}
	format, _ := codec.ParseFormat(cfg.Output.Format)
	compression, _ := codec.ParseCompression(cfg.Output.Compress)

	var hints *model.Hints
	if buildHints != "" {
		if hints, err = readHints(buildHints); err != nil {
			return err
		}
	}

	gen, err := cfg.NewPalette()
	if err != nil {
		return err
	}

	targets, err := outputs(args, buildOut, codec.Extension(format, compression))
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(buildJobs)
	for i, in := range args {
		in, out := in, targets[i]
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			log := logger.With("graph", in)
			opts := append(cfg.BuildOptions(gen, log), minivan.WithOnDrop(func(d minivan.Drop) {
				log.Info("attribute dropped",
					"key", d.Key, "side", d.Side.String(), "reason", string(d.Reason), "cardinality", d.Cardinality)
			}))

			b, err := buildFile(in, hints, opts)
			if err != nil {
				return err
			}

			return writeBundle(ctx, cmd.OutOrStdout(), out, b, format, compression, log)
		})
	}

	return g.Wait()
}

func buildFile(path string, hints *model.Hints, opts []minivan.Option) (*minivan.Bundle, error) {
	f, c, err := codec.Detect(path)
	if err != nil {
		return nil, err
	}
	r, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	snap, err := codec.DecodeGraph(r, f, c)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	g, err := core.FromSerialized(snap)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	b, err := minivan.Build(g, hints, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return b, nil
}

func readHints(path string) (*model.Hints, error) {
	f, c, err := codec.Detect(path)
	if err != nil {
		return nil, err
	}
	r, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	h, err := codec.DecodeHints(r, f, c)
	if err != nil {
		return nil, fmt.Errorf("hints %s: %w", path, err)
	}

	return h, nil
}

// outputs maps every input to its destination; "-" is stdout.
func outputs(inputs []string, out, ext string) ([]string, error) {
	if len(inputs) == 1 {
		return []string{out}, nil
	}
	if out == "-" {
		return nil, errors.New("several inputs need --out to name a directory")
	}
	if err := os.MkdirAll(out, 0o755); err != nil {
		return nil, err
	}

	targets := make([]string, len(inputs))
	seen := make(map[string]string, len(inputs))
	for i, in := range inputs {
		t := filepath.Join(out, stem(in)+".bundle"+ext)
		if prev, ok := seen[t]; ok {
			return nil, fmt.Errorf("%s and %s both write %s", prev, in, t)
		}
		seen[t] = in
		targets[i] = t
	}

	return targets, nil
}

// stem strips the directory and every known extension: "a/g.json.zst" -> "g".
func stem(path string) string {
	name := filepath.Base(path)
	for ext := filepath.Ext(name); ext != ""; ext = filepath.Ext(name) {
		_, ferr := codec.ParseFormat(ext)
		_, cerr := codec.ParseCompression(strings.TrimPrefix(ext, "."))
		if ferr != nil && cerr != nil && !strings.EqualFold(ext, ".bundle") {
			break
		}
		name = strings.TrimSuffix(name, ext)
	}

	return name
}

func writeBundle(ctx context.Context, stdout io.Writer, path string, b *minivan.Bundle,
	f codec.Format, c codec.Compression, log *slog.Logger) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if path == "-" {
		return codec.EncodeBundle(stdout, b, f, c)
	}

	w, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = codec.EncodeBundle(w, b, f, c); err != nil {
		_ = w.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	if err = w.Close(); err != nil {
		return err
	}
	log.Info("bundle written", "path", path,
		"nodeAttributes", len(b.Model.NodeAttributes), "edgeAttributes", len(b.Model.EdgeAttributes))

	return nil
}
