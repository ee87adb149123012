package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/umbcdata/degree-offerings/internal/logger"
	"github.com/umbcdata/degree-offerings/internal/offering"
	"github.com/umbcdata/degree-offerings/internal/scraper"
	"github.com/umbcdata/degree-offerings/internal/storage"
)

const (
	ExitSuccess = 0
	ExitError   = 1

	EnvPrefix = "DEGREE_OFFERINGS"
)

// now is the clock used to date snapshots
var now = time.Now

// Config is the resolved configuration of a scrape run
type Config struct {
	URL      string
	Selector string
	DataDir  string
	Timeout  time.Duration
	Pretty   bool
	Format   OutputFormat
	Verbose  bool
	LogLevel logger.Level

	// Columns maps table columns to offering kinds, DefaultColumns when nil
	Columns offering.Columns

	// Logger receives progress logs, logger.Default() when nil
	Logger *logger.Logger
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "degree-offerings",
		Short: "Snapshot the UMBC degree programs table as JSON",
		Long: `Fetches the UMBC degree programs page, reconciles its programs table into
one record per program and writes it to <data-dir>/<YYYY-M-D>.json.

Every flag can also be set through an environment variable prefixed with
` + EnvPrefix + `_, for example ` + EnvPrefix + `_DATA_DIR.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := v.BindPFlags(cmd.Flags()); err != nil {
				return fmt.Errorf("binding flags: %w", err)
			}

			cfg, err := configFrom(v)
			if err != nil {
				return err
			}

			cfg.Logger = logger.New(cfg.LogLevel, cmd.ErrOrStderr())
			logger.SetDefault(cfg.Logger)

			summary, err := Run(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			if err := WriteSummary(cmd.OutOrStdout(), summary, cfg.Format, cfg.Verbose); err != nil {
				return fmt.Errorf("writing output: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().String("url", scraper.DegreesURL, "Degree programs page to scrape")
	cmd.Flags().String("selector", scraper.TableSelector, "CSS selector of the programs table")
	cmd.Flags().String("data-dir", "data", "Existing directory snapshots are written to")
	cmd.Flags().Duration("timeout", scraper.Timeout, "HTTP request timeout")
	cmd.Flags().Bool("pretty", false, "Indent the snapshot JSON")
	cmd.Flags().String("format", string(FormatText), "Run summary format: text or json")
	cmd.Flags().String("log-level", string(logger.LevelInfo), "Log level: debug, info, warn or error")
	cmd.Flags().BoolP("verbose", "v", false, "List every program and log at debug level")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return cmd
}

// configFrom reads flags and environment into a Config
func configFrom(v *viper.Viper) (Config, error) {
	format := OutputFormat(strings.ToLower(v.GetString("format")))
	if format != FormatText && format != FormatJSON {
		return Config{}, fmt.Errorf("invalid format: %s (must be 'text' or 'json')", v.GetString("format"))
	}

	cfg := Config{
		URL:      v.GetString("url"),
		Selector: v.GetString("selector"),
		DataDir:  v.GetString("data-dir"),
		Timeout:  v.GetDuration("timeout"),
		Pretty:   v.GetBool("pretty"),
		Format:   format,
		Verbose:  v.GetBool("verbose"),
	}

	level, err := logger.ParseLevel(v.GetString("log-level"))
	if err != nil {
		return Config{}, err
	}
	if cfg.Verbose {
		level = logger.LevelDebug
	}
	cfg.LogLevel = level
	if cfg.URL == "" {
		return Config{}, fmt.Errorf("--url must not be empty")
	}
	if cfg.Timeout <= 0 {
		return Config{}, fmt.Errorf("--timeout must be positive, got %s", cfg.Timeout)
	}

	return cfg, nil
}

// Run fetches the page, reconciles its table and writes the dated snapshot.
// Nothing is written when any stage fails.
func Run(ctx context.Context, cfg Config) (*Summary, error) {
	log := cfg.Logger
	if log == nil {
		log = logger.Default()
	}
	cols := cfg.Columns
	if cols == nil {
		cols = offering.DefaultColumns
	}

	metrics := logger.NewMetrics()

	// Check storage first so a bad data dir fails before hitting the network
	store, err := storage.New(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("initializing storage: %w", err)
	}
	store.Pretty = cfg.Pretty

	var opts []scraper.Option
	if cfg.Selector != "" {
		opts = append(opts, scraper.WithSelector(cfg.Selector))
	}
	if cfg.URL != "" {
		opts = append(opts, scraper.WithURL(cfg.URL))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, scraper.WithTimeout(cfg.Timeout))
	}
	sc := scraper.New(opts...)

	log.Info("Fetching degree programs", logger.Fields{"url": sc.URL()})

	stop := metrics.Time("fetch")
	body, err := sc.FetchPage(ctx)
	stop()
	if err != nil {
		return nil, fmt.Errorf("fetching degrees page: %w", err)
	}
	log.Debug("Fetched page", logger.Fields{"bytes": len(body)})

	stop = metrics.Time("parse")
	rows, err := scraper.ParseRows(bytes.NewReader(body), sc.Selector())
	if err != nil {
		stop()
		return nil, fmt.Errorf("extracting programs table: %w", err)
	}
	table, stats := offering.ReconcileWithStats(rows, cols)
	stop()

	metrics.AddCounter("rows.seen", int64(stats.RowsSeen))
	metrics.AddCounter("rows.skipped", int64(stats.RowsSkipped))
	metrics.AddCounter("titles.merged", int64(stats.TitlesMerged))
	metrics.SetGauge("programs", float64(len(table)))

	if len(table) == 0 {
		log.Warn("Programs table produced no programs", logger.Fields{"rows": stats.RowsSeen})
	}

	at := now()
	stop = metrics.Time("write")
	path, err := store.Save(table, at)
	stop()
	if err != nil {
		return nil, fmt.Errorf("saving snapshot: %w", err)
	}

	log.Info("Wrote snapshot", logger.Fields{
		"path":     path,
		"programs": len(table),
	})
	log.Debug("Run metrics", metrics.Snapshot().Fields())

	return &Summary{
		WrittenAt: at,
		Path:      path,
		Programs:  len(table),
		Stats:     stats,
		Table:     table,
	}, nil
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().ExecuteContext(context.Background()); err != nil {
		logger.Error("Run failed", nil, err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
