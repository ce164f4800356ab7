package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/sqlmean/internal/config"
)

// ConfigView is the effective configuration as reported by the config command.
type ConfigView struct {
	Database         string            `json:"database"`
	Catalogs         map[string]string `json:"catalogs,omitempty"`
	EnableCatalogs   bool              `json:"enable_catalogs"`
	QualifiedColumns bool              `json:"qualified_columns"`
	ColumnPrefix     string            `json:"column_prefix"`
	Output           string            `json:"output"`
	LogLevel         string            `json:"log_level"`
	LogFormat        string            `json:"log_format"`
}

func newConfigView(c config.Config) ConfigView {
	return ConfigView{
		Database:         c.Database,
		Catalogs:         c.Catalogs,
		EnableCatalogs:   c.EnableCatalogs,
		QualifiedColumns: c.QualifiedColumns,
		ColumnPrefix:     c.ColumnPrefix,
		Output:           c.Output,
		LogLevel:         c.LogLevel,
		LogFormat:        c.LogFormat,
	}
}

// String renders the view as key: value lines, catalogs sorted by name.
func (v ConfigView) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "database: %s\n", v.Database)
	fmt.Fprintf(&b, "enable_catalogs: %t\n", v.EnableCatalogs)

	names := make([]string, 0, len(v.Catalogs))
	for name := range v.Catalogs {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(&b, "catalog.%s: %s\n", name, v.Catalogs[name])
	}

	fmt.Fprintf(&b, "qualified_columns: %t\n", v.QualifiedColumns)
	fmt.Fprintf(&b, "column_prefix: %s\n", v.ColumnPrefix)
	fmt.Fprintf(&b, "output: %s\n", v.Output)
	fmt.Fprintf(&b, "log_level: %s\n", v.LogLevel)
	fmt.Fprintf(&b, "log_format: %s", v.LogFormat)
	return b.String()
}

// NewConfigCommand creates the config command.
func NewConfigCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Validate and print the effective configuration",
		Long: `Resolve the configuration exactly as a run would (defaults, $SQLMEAN_DATABASE,
--config file, then flags), validate it and print the result.

Example:
  sqlmean config --config sqlmean.cue
  sqlmean config --catalog ukb=/data/ukb.db --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfig(rootOpts, cmd)
		},
	}

	return cmd
}

func runConfig(opts *RootOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	cfg, err := resolveConfig(opts, cmd)
	if err != nil {
		return reportFailure(formatter, ErrCodeConfig, ExitCommandError, "invalid configuration", err, "")
	}

	formatter.VerboseLog("config resolved from %s", configSource(opts))
	return formatter.Success(newConfigView(cfg))
}

func configSource(opts *RootOptions) string {
	if opts.ConfigPath == "" {
		return "defaults and flags"
	}
	return opts.ConfigPath
}
