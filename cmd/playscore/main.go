package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/joho/godotenv"
	flag "github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/bardlab/playscore/internal/config"
	"github.com/bardlab/playscore/internal/corpus"
	"github.com/bardlab/playscore/internal/engine"
	"github.com/bardlab/playscore/internal/log"
	"github.com/bardlab/playscore/internal/metrics"
	"github.com/bardlab/playscore/internal/output"
	"github.com/bardlab/playscore/internal/rule"

	// Import all rule packages so their init() functions register rules.
	_ "github.com/bardlab/playscore/internal/rules/collapselines"
	_ "github.com/bardlab/playscore/internal/rules/stripspeakers"
	_ "github.com/bardlab/playscore/internal/rules/stripstructure"
)

func main() {
	os.Exit(run())
}

const usageText = `Usage: playscore <command> [flags] [directory]

Commands:
  score     Score each play in a directory (default)
  metrics   Report per-play metrics in a sortable table
  help      Show help for rules and metrics
  init      Generate a default .playscore.yml config file
  version   Print version and exit

Global flags:
  -h, --help      Show this help

Run 'playscore <command> --help' for more information on a command.
`

func run() int {
	// A .env file can supply PLAYSCORE_* defaults; absence is fine.
	_ = godotenv.Load()

	// Handle no arguments: score the default corpus directory.
	if len(os.Args) < 2 {
		return runScore(nil)
	}

	first := os.Args[1]

	switch first {
	case "--help", "-h":
		fmt.Fprint(os.Stderr, usageText)
		return 0
	}

	// Dispatch to subcommand. Anything else is treated as score
	// arguments, so `playscore plays/` works without the subcommand.
	switch first {
	case "score":
		return runScore(os.Args[2:])
	case "metrics":
		return runMetrics(os.Args[2:])
	case "help":
		return runHelp(os.Args[2:])
	case "init":
		return runInit(os.Args[2:])
	case "version":
		printVersion()
		return 0
	default:
		return runScore(os.Args[1:])
	}
}

func printVersion() {
	version := "(devel)"
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		version = info.Main.Version
	}
	fmt.Printf("playscore %s\n", version)
}

// envDefault returns the environment value for key, or fallback.
func envDefault(key string, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// loadConfig loads the config at path, discovers one from the working
// directory when path is empty, and falls back to defaults.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		discovered, err := config.Discover(".")
		if err != nil {
			return nil, err
		}
		path = discovered
	}
	if path == "" {
		return config.Defaults(), nil
	}
	return config.Load(path)
}

// runScore implements the "score" subcommand.
func runScore(args []string) int {
	fs := flag.NewFlagSet("score", flag.ContinueOnError)
	var (
		configPath string
		format     string
		pattern    string
		noColor    bool
		verbose    bool
	)
	fs.StringVar(&configPath, "config", "", "path to config file")
	fs.StringVarP(&format, "format", "f", "", "output format: text or json")
	fs.StringVar(&pattern, "pattern", "", "glob pattern for corpus files (default **/*.txt)")
	fs.BoolVar(&noColor, "no-color", false, "disable colored output")
	fs.BoolVarP(&verbose, "verbose", "v", false, "log per-play statistics to stderr")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: playscore score [flags] [directory]\n\n%s", fs.FlagUsages())
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		fmt.Fprintf(os.Stderr, "playscore: %v\n", err)
		return 2
	}
	if fs.NArg() > 1 {
		fmt.Fprintln(os.Stderr, "playscore: score takes at most one directory")
		return 2
	}

	dir := envDefault("PLAYSCORE_DIR", corpus.DefaultDir)
	if fs.NArg() == 1 {
		dir = fs.Arg(0)
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "playscore: %v\n", err)
		return 2
	}
	if format == "" {
		format = envDefault("PLAYSCORE_FORMAT", cfg.Format)
	}
	if err := config.ValidateFormat(format); err != nil {
		fmt.Fprintf(os.Stderr, "playscore: %v\n", err)
		return 2
	}

	rules, err := engine.BuildRules(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "playscore: %v\n", err)
		return 2
	}

	var patterns []string
	if pattern != "" {
		patterns = []string{pattern}
	}
	docs, err := corpus.Load(corpus.Options{Dir: dir, Patterns: patterns})
	if err != nil {
		fmt.Fprintf(os.Stderr, "playscore: %v\n", err)
		return 2
	}

	logger := &log.Logger{Enabled: verbose, W: os.Stderr}
	runner := &engine.Runner{Config: cfg, Rules: rules, Log: logger}

	start := time.Now()
	result := runner.Run(docs)
	logger.Printf("scored %d of %d plays in %s",
		len(result.Results), len(docs), time.Since(start).Round(time.Millisecond))

	formatter := pickFormatter(format, noColor)
	if err := formatter.Format(os.Stdout, result.Results); err != nil {
		fmt.Fprintf(os.Stderr, "playscore: writing output: %v\n", err)
		return 2
	}

	for _, runErr := range result.Errors {
		fmt.Fprintf(os.Stderr, "playscore: %v\n", runErr)
	}
	if len(result.Errors) > 0 {
		return 1
	}
	return 0
}

// pickFormatter selects the output formatter for the format name.
func pickFormatter(format string, noColor bool) output.Formatter {
	if format == "json" {
		return &output.JSONFormatter{}
	}
	return &output.TextFormatter{Color: !noColor}
}

// runHelp implements the "help" subcommand.
func runHelp(args []string) int {
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usageText)
		return 0
	}

	switch args[0] {
	case "rules":
		for _, r := range rule.All() {
			fmt.Printf("%s  %s\n", r.ID(), r.Name())
		}
		return 0
	case "metrics":
		for _, def := range metrics.All() {
			fmt.Printf("%s  %-20s %s\n", def.ID, def.Name, def.Description)
		}
		return 0
	default:
		fmt.Fprintf(os.Stderr, "playscore: unknown help topic %q (try: rules, metrics)\n", args[0])
		return 2
	}
}

// runInit implements the "init" subcommand: write a default config file.
func runInit(args []string) int {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	var force bool
	fs.BoolVar(&force, "force", false, "overwrite an existing config file")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		fmt.Fprintf(os.Stderr, "playscore: %v\n", err)
		return 2
	}

	const path = ".playscore.yml"
	if _, err := os.Stat(path); err == nil && !force {
		fmt.Fprintf(os.Stderr, "playscore: %s already exists (use --force to overwrite)\n", path)
		return 1
	}

	data, err := yaml.Marshal(config.DumpDefaults())
	if err != nil {
		fmt.Fprintf(os.Stderr, "playscore: %v\n", err)
		return 2
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "playscore: %v\n", err)
		return 2
	}
	fmt.Printf("wrote %s\n", path)
	return 0
}
