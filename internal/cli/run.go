package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/sqlmean/internal/ctxlog"
	"github.com/roach88/sqlmean/internal/runner"
	"github.com/roach88/sqlmean/internal/session"
)

func runMean(opts *RootOptions, sqlText, field string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	cfg, err := resolveConfig(opts, cmd)
	if err != nil {
		return reportFailure(formatter, ErrCodeConfig, ExitCommandError, "invalid configuration", err, "")
	}

	logger := newLogger(cfg.LogLevel, cfg.LogFormat, opts.Verbose, cmd.ErrOrStderr())

	// Use command's context if available (for testing), otherwise create one
	parentCtx := cmd.Context()
	if parentCtx == nil {
		parentCtx = context.Background()
	}
	ctx := ctxlog.WithLogger(parentCtx, logger)

	defer func() {
		if err := session.Stop(); err != nil {
			logger.Error("error closing session", "error", err)
		}
	}()

	r := runner.New(session.FromSettings(cfg.SessionSettings()), runner.Options{
		Prefix: cfg.ColumnPrefix,
		Output: cfg.Output,
		IDs:    opts.IDs,
	})

	res, err := r.Run(ctx, runner.Request{SQL: sqlText, Field: field})
	if err != nil {
		return reportFailure(formatter, errorCode(err), ExitFailure, "run failed", err, res.RunID)
	}

	if opts.Format == "json" {
		return formatter.SuccessWithTrace(res, res.RunID)
	}
	return formatter.Success(fmt.Sprintf("%s = %s (%d of %d rows) -> %s",
		res.Column, res.Text, res.Count, res.Rows, res.Output))
}

// reportFailure emits a JSON error response when requested and returns
// the ExitError that main turns into the process exit code. In text mode
// the error is left for main to print on stderr.
func reportFailure(f *OutputFormatter, code string, exit int, message string, err error, traceID string) error {
	if f.Format == "json" {
		if outErr := f.ErrorWithTrace(code, err.Error(), nil, traceID); outErr != nil {
			return outErr
		}
	}
	return WrapExitError(exit, message, err)
}

// errorCode maps runner failures to response codes.
func errorCode(err error) string {
	switch {
	case errors.Is(err, runner.ErrInvalidField):
		return ErrCodeField
	case errors.Is(err, runner.ErrSession):
		return ErrCodeSession
	case errors.Is(err, runner.ErrQuery):
		return ErrCodeQuery
	case errors.Is(err, runner.ErrAggregate):
		return ErrCodeAggregate
	case errors.Is(err, runner.ErrOutput):
		return ErrCodeOutput
	default:
		return ErrCodeGeneric
	}
}
