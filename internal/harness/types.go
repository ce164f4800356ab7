package harness

// Result captures the observable outcome of a scenario run.
type Result struct {
	// Name is the scenario name.
	Name string `json:"name"`

	// Column is the aggregated column key.
	Column string `json:"column"`

	// Rows and Count mirror the runner result (rows returned, non-NULL values).
	Rows  int `json:"rows"`
	Count int `json:"count"`

	// Output is the content of the result file after the run.
	// Empty when the file does not exist.
	Output string `json:"output"`

	// Exists reports whether the result file exists after the run.
	Exists bool `json:"exists"`

	// Error is the run error message, if any.
	Error string `json:"error,omitempty"`

	// Pass is true when every expectation held.
	Pass bool `json:"-"`

	// Errors lists failed expectations.
	Errors []string `json:"-"`
}

// NewResult creates a passing result for the named scenario.
func NewResult(name string) *Result {
	return &Result{Name: name, Pass: true, Errors: []string{}}
}

// AddError records a failed expectation.
func (r *Result) AddError(err string) {
	r.Pass = false
	r.Errors = append(r.Errors, err)
}
