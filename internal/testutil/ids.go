package testutil

// FixedRunID returns the same run ID on every call.
//
// FixedRunID never exhausts. Every run it drives reports the same run_id,
// so JSON output and golden snapshots stay byte-identical.
//
// Thread-safety: FixedRunID is stateless and safe for concurrent use.
type FixedRunID struct {
	id string
}

// NewFixedRunID creates a fixed run ID generator.
//
// If id is empty, Generate returns "run-default".
func NewFixedRunID(id string) *FixedRunID {
	if id == "" {
		id = "run-default"
	}
	return &FixedRunID{id: id}
}

// Generate returns the fixed run ID.
//
// Implements runner.IDGenerator.
func (g *FixedRunID) Generate() string {
	return g.id
}
