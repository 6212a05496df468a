package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	flag "github.com/spf13/pflag"

	"github.com/bardlab/playscore/internal/config"
	"github.com/bardlab/playscore/internal/corpus"
	"github.com/bardlab/playscore/internal/engine"
	"github.com/bardlab/playscore/internal/metrics"
	"github.com/bardlab/playscore/internal/normalize"
)

type metricsOptions struct {
	configPath string
	dir        string
	selection  []string
	sortBy     string
	order      string
	top        int
	format     string
}

func parseMetricsArgs(args []string) (metricsOptions, error) {
	fs := flag.NewFlagSet("metrics", flag.ContinueOnError)
	var (
		configPath string
		selection  string
		sortBy     string
		order      string
		top        int
		format     string
	)
	fs.StringVar(&configPath, "config", "", "path to config file")
	fs.StringVarP(&selection, "metrics", "m", "", "comma-separated metric names or IDs")
	fs.StringVarP(&sortBy, "sort", "s", "", "metric to sort by (default: first selected)")
	fs.StringVar(&order, "order", "", "sort order: asc or desc")
	fs.IntVar(&top, "top", 0, "limit output to the top N plays (0 = all)")
	fs.StringVarP(&format, "format", "f", "", "output format: text or json")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: playscore metrics [flags] [directory]\n\n%s", fs.FlagUsages())
	}
	if err := fs.Parse(args); err != nil {
		return metricsOptions{}, err
	}
	if fs.NArg() > 1 {
		return metricsOptions{}, fmt.Errorf("metrics takes at most one directory")
	}

	dir := envDefault("PLAYSCORE_DIR", corpus.DefaultDir)
	if fs.NArg() == 1 {
		dir = fs.Arg(0)
	}

	return metricsOptions{
		configPath: configPath,
		dir:        dir,
		selection:  metrics.SplitList(selection),
		sortBy:     sortBy,
		order:      order,
		top:        top,
		format:     format,
	}, nil
}

// runMetrics implements the "metrics" subcommand.
func runMetrics(args []string) int {
	opts, err := parseMetricsArgs(args)
	if err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		fmt.Fprintf(os.Stderr, "playscore: %v\n", err)
		return 2
	}

	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "playscore: %v\n", err)
		return 2
	}
	if opts.format == "" {
		opts.format = envDefault("PLAYSCORE_FORMAT", cfg.Format)
	}
	if err := config.ValidateFormat(opts.format); err != nil {
		fmt.Fprintf(os.Stderr, "playscore: %v\n", err)
		return 2
	}

	defs, err := metrics.Resolve(opts.selection)
	if err != nil {
		fmt.Fprintf(os.Stderr, "playscore: %v\n", err)
		return 2
	}

	sortDef := defs[0]
	if opts.sortBy != "" {
		found := false
		for _, def := range defs {
			if def.Name == opts.sortBy || def.ID == opts.sortBy {
				sortDef = def
				found = true
				break
			}
		}
		if !found {
			fmt.Fprintf(os.Stderr, "playscore: sort metric %q is not selected\n", opts.sortBy)
			return 2
		}
	}
	order := sortDef.DefaultOrder
	if opts.order != "" {
		order, err = metrics.ParseOrder(opts.order)
		if err != nil {
			fmt.Fprintf(os.Stderr, "playscore: %v\n", err)
			return 2
		}
	}

	rules, err := engine.BuildRules(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "playscore: %v\n", err)
		return 2
	}

	docs, err := corpus.Load(corpus.Options{Dir: opts.dir})
	if err != nil {
		fmt.Fprintf(os.Stderr, "playscore: %v\n", err)
		return 2
	}

	pipeline := &normalize.Pipeline{Rules: rules}
	rows, err := metrics.Collect(docs, pipeline, defs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "playscore: %v\n", err)
		return 2
	}

	metrics.SortRows(rows, sortDef, order)
	rows = metrics.LimitRows(rows, opts.top)

	if opts.format == "json" {
		if err := writeMetricsJSON(os.Stdout, rows, defs); err != nil {
			fmt.Fprintf(os.Stderr, "playscore: writing output: %v\n", err)
			return 2
		}
		return 0
	}
	if err := writeMetricsTable(os.Stdout, rows, defs); err != nil {
		fmt.Fprintf(os.Stderr, "playscore: writing output: %v\n", err)
		return 2
	}
	return 0
}

// writeMetricsTable renders rows as an aligned text table.
func writeMetricsTable(w io.Writer, rows []metrics.Row, defs []metrics.Definition) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprint(tw, "title")
	for _, def := range defs {
		fmt.Fprintf(tw, "\t%s", def.Name)
	}
	fmt.Fprintln(tw)

	for _, row := range rows {
		fmt.Fprint(tw, row.Title)
		for _, def := range defs {
			fmt.Fprintf(tw, "\t%s", metrics.FormatValue(def, row.Metrics[def.Name]))
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}

// writeMetricsJSON renders rows as a pretty-printed JSON array.
func writeMetricsJSON(w io.Writer, rows []metrics.Row, defs []metrics.Definition) error {
	items := make([]map[string]any, 0, len(rows))
	for _, row := range rows {
		item := map[string]any{"title": row.Title}
		for _, def := range defs {
			item[def.Name] = metrics.JSONValue(def, row.Metrics[def.Name])
		}
		items = append(items, item)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(items)
}
