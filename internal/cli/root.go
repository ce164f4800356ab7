package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/sqlmean/internal/runner"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose   bool
	Format    string // "json" | "text"
	LogFormat string // "json" | "text"

	ConfigPath       string
	Database         string
	Catalogs         map[string]string
	Output           string
	Prefix           string
	QualifiedColumns bool

	// IDs allows overriding the run ID generator (for testing).
	// If nil, defaults to runner.UUIDv7Generator.
	IDs runner.IDGenerator

	// Getenv allows overriding environment lookup (for testing).
	// If nil, defaults to os.Getenv.
	Getenv func(string) string
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the sqlmean CLI.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sqlmean <sql> <field>",
		Short: "Average one column of a SQL query result",
		Long: `Run a SQL query, compute the mean of column participant.<field> over
the result and write it to temp_file.txt in the working directory.

Trailing and leading semicolons and newlines are stripped from the SQL.
NULL values are skipped; an empty or all-NULL column yields nan.

Example:
  sqlmean 'SELECT age AS "participant.age" FROM ukb.participant;' age --catalog ukb=/data/ukb.db
  sqlmean --db warehouse.db "SELECT * FROM cohort" bmi --format json`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMean(opts, args[0], args[1], cmd)
		},
	}

	// Global flags
	flags := cmd.PersistentFlags()
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	flags.StringVar(&opts.Format, "format", "text", "output format (json|text)")
	flags.StringVar(&opts.LogFormat, "log-format", "", "log format on stderr (json|text)")
	flags.StringVar(&opts.ConfigPath, "config", "", "config file (.cue, .hcl or .yaml)")
	flags.StringVar(&opts.Database, "db", "", "main database (default :memory:, or $SQLMEAN_DATABASE)")
	flags.StringToStringVar(&opts.Catalogs, "catalog", nil, "attach a catalog as name=path (repeatable)")
	flags.StringVarP(&opts.Output, "output", "o", "", "result file (default temp_file.txt)")
	flags.StringVar(&opts.Prefix, "prefix", "", "column prefix (default participant)")
	flags.BoolVar(&opts.QualifiedColumns, "qualified-columns", false, "report un-aliased columns as table.column")

	// Add subcommands
	cmd.AddCommand(NewConfigCommand(opts))
	cmd.AddCommand(NewTestCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
