package runner

import (
	"context"
	"errors"
	"fmt"

	"github.com/roach88/sqlmean/internal/ctxlog"
	"github.com/roach88/sqlmean/internal/frame"
	"github.com/roach88/sqlmean/internal/output"
	"github.com/roach88/sqlmean/internal/query"
	"github.com/roach88/sqlmean/internal/session"
)

var (
	// ErrInvalidField is returned when the field name cannot form a column key.
	ErrInvalidField = errors.New("invalid field")

	// ErrSession is returned when no session could be acquired.
	ErrSession = errors.New("session unavailable")

	// ErrQuery is returned when the engine rejects or fails the query.
	ErrQuery = errors.New("query failed")

	// ErrAggregate is returned when the column cannot be averaged.
	ErrAggregate = errors.New("aggregation failed")

	// ErrOutput is returned when the result file cannot be written.
	ErrOutput = errors.New("output failed")
)

// Request carries the two positional arguments of a run.
type Request struct {
	SQL   string
	Field string
}

// Result describes a completed run.
type Result struct {
	RunID  string  `json:"run_id"`
	Column string  `json:"column"`
	Rows   int     `json:"rows"`
	Count  int     `json:"count"`
	Nulls  int     `json:"nulls"`
	Mean   float64 `json:"-"`
	Text   string  `json:"mean"`
	Output string  `json:"output"`
}

// Options tune a Runner. Zero values select the defaults.
type Options struct {
	Prefix string      // column prefix, default "participant"
	Output string      // result file, default "temp_file.txt"
	IDs    IDGenerator // run IDs, default UUIDv7Generator
}

// Runner runs queries through sessions from a Provider.
type Runner struct {
	sessions session.Provider
	prefix   string
	output   string
	ids      IDGenerator
}

// New creates a Runner.
func New(sessions session.Provider, opts Options) *Runner {
	r := &Runner{
		sessions: sessions,
		prefix:   opts.Prefix,
		output:   opts.Output,
		ids:      opts.IDs,
	}
	if r.prefix == "" {
		r.prefix = query.DefaultPrefix
	}
	if r.output == "" {
		r.output = output.DefaultPath
	}
	if r.ids == nil {
		r.ids = UUIDv7Generator{}
	}
	return r
}

// Run executes req and writes the mean to the output file.
func (r *Runner) Run(ctx context.Context, req Request) (Result, error) {
	res := Result{RunID: r.ids.Generate(), Output: r.output}
	logger := ctxlog.FromContext(ctx).With("run_id", res.RunID)

	column, err := query.ColumnKey(r.prefix, req.Field)
	if err != nil {
		return res, fmt.Errorf("%w: %w", ErrInvalidField, err)
	}
	res.Column = column

	logger.Debug("acquiring session")
	sess, err := r.sessions.GetOrCreate(ctx)
	if err != nil {
		return res, fmt.Errorf("%w: %w", ErrSession, err)
	}

	sqlText := query.Trim(req.SQL)
	logger.Info("executing query", "sql", sqlText)
	f, err := sess.Query(ctx, sqlText)
	if err != nil {
		return res, fmt.Errorf("%w: %w", ErrQuery, err)
	}
	res.Rows = f.Len()
	logger.Debug("result materialized", "rows", f.Len(), "columns", f.Columns())

	st, err := f.Mean(column)
	if err != nil {
		return res, fmt.Errorf("%w: %w", ErrAggregate, err)
	}
	res.Count = st.Count
	res.Nulls = st.Nulls
	res.Mean = st.Mean
	res.Text = frame.FormatFloat(st.Mean)

	if err := output.WriteFile(r.output, res.Text); err != nil {
		return res, fmt.Errorf("%w: %w", ErrOutput, err)
	}
	logger.Info("mean written", "column", column, "mean", res.Text, "count", st.Count, "nulls", st.Nulls, "path", r.output)

	return res, nil
}
