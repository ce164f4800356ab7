package cli

import (
	"maps"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/sqlmean/internal/config"
)

// resolveConfig layers defaults, environment, config file and flags.
// Only flags the user actually set override earlier layers.
func resolveConfig(opts *RootOptions, cmd *cobra.Command) (config.Config, error) {
	getenv := opts.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}

	cfg := config.Default().ApplyEnv(getenv)

	if opts.ConfigPath != "" {
		loaded, err := config.LoadFile(opts.ConfigPath, cfg)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("db") {
		cfg.Database = opts.Database
	}
	if flags.Changed("catalog") {
		merged := maps.Clone(cfg.Catalogs)
		if merged == nil {
			merged = make(map[string]string, len(opts.Catalogs))
		}
		maps.Copy(merged, opts.Catalogs)
		cfg.Catalogs = merged
	}
	if flags.Changed("output") {
		cfg.Output = opts.Output
	}
	if flags.Changed("prefix") {
		cfg.ColumnPrefix = opts.Prefix
	}
	if flags.Changed("qualified-columns") {
		cfg.QualifiedColumns = opts.QualifiedColumns
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = opts.LogFormat
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
