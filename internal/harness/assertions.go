package harness

import (
	"fmt"
	"strings"
)

// EvaluateExpectations checks result against the scenario's Expect clause
// and records every violation on result.
func EvaluateExpectations(scenario *Scenario, result *Result) {
	if want := scenario.Expect.Output; want != nil {
		if result.Error != "" {
			result.AddError(fmt.Sprintf("unexpected error: %s", result.Error))
		}
		switch {
		case !result.Exists:
			result.AddError("result file was not written")
		case result.Output != *want:
			result.AddError(fmt.Sprintf("output = %q, expected %q", result.Output, *want))
		}
		return
	}

	want := scenario.Expect.Error
	switch {
	case result.Error == "":
		result.AddError(fmt.Sprintf("expected error containing %q, run succeeded", want))
	case !strings.Contains(result.Error, want):
		result.AddError(fmt.Sprintf("error %q does not contain %q", result.Error, want))
	}

	if scenario.Existing == nil {
		if result.Exists {
			result.AddError("result file was created by a failed run")
		}
		return
	}
	if !result.Exists || result.Output != *scenario.Existing {
		result.AddError(fmt.Sprintf("failed run changed result file: got %q, expected %q", result.Output, *scenario.Existing))
	}
}
