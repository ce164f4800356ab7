// Package harness runs conformance scenarios against the mean runner.
//
// A scenario is a YAML file describing seed statements, the two run
// arguments and the expected outcome:
//
//	name: mean_of_two
//	description: Two ages average to a float with a trailing .0
//	sql: |
//	  SELECT 3 AS "participant.age" UNION ALL SELECT 5 AS "participant.age";
//	field: age
//	expect:
//	  output: "4.0"
//
// Each scenario runs in its own temporary directory against a fresh
// in-memory session, so scenarios never observe each other.
//
// Snapshots of the outcome can be compared against golden files in
// testdata/golden with RunWithGolden.
package harness
