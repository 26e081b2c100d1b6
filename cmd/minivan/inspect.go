package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/minivan/codec"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <bundle>",
	Short: "Summarize the model of a bundle",
	Long: `Inspect prints the graph size, the default attributes and one line per
modeled attribute: kind, item count, cardinality and modularity for
partitions, observed range for rankings.

Examples:
  minivan inspect bundle.json
  minivan inspect out/graph.bundle.msgpack.zst`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	f, c, err := codec.Detect(args[0])
	if err != nil {
		return err
	}
	r, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer r.Close()

	s, err := codec.DecodeSummary(r, f, c)
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	return printSummary(cmd.OutOrStdout(), s)
}

func printSummary(w io.Writer, s *codec.Summary) error {
	title := s.Title
	if title == "" {
		title = "(untitled)"
	}
	fmt.Fprintf(w, "%s\n", title)
	fmt.Fprintf(w, "bundle %s, %s graph, %d nodes, %d edges\n",
		s.BundleVersion, s.Settings.Type, s.Order(), s.Size())
	fmt.Fprintf(w, "defaults: node size=%s color=%s, edge size=%s color=%s\n\n",
		orDash(s.Model.DefaultNodeSize), orDash(s.Model.DefaultNodeColor),
		orDash(s.Model.DefaultEdgeSize), orDash(s.Model.DefaultEdgeColor))

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SIDE\tKEY\tSLUG\tTYPE\tCOUNT\tDETAIL")
	for _, side := range []struct {
		name  string
		attrs []codec.AttributeSummary
	}{{"node", s.Model.NodeAttributes}, {"edge", s.Model.EdgeAttributes}} {
		for _, a := range side.attrs {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%s\n",
				side.name, a.Key, a.Slug, a.Kind, a.Count, detail(a))
		}
	}

	return tw.Flush()
}

func detail(a codec.AttributeSummary) string {
	if !a.Kind.Ranking() {
		d := "cardinality=" + strconv.Itoa(a.Cardinality)
		if a.Stats != nil {
			d += " modularity=" + strconv.FormatFloat(a.Stats.Modularity, 'f', 4, 64)
		}
		return d
	}
	if a.Min == nil || a.Max == nil {
		return "range=empty"
	}
	d := fmt.Sprintf("min=%s max=%s", num(*a.Min), num(*a.Max))
	if a.Integer {
		d += " integer"
	}

	return d
}

func num(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

func orDash(s string) string {
	if s == "" {
		return "-"
	}

	return s
}
