// Package runner executes one mean-of-column run.
//
// A run is a straight line with no retries:
//
//  1. acquire (or reuse) a session from the Provider
//  2. strip trailing and leading ';' and '\n' from the SQL
//  3. execute it and materialize the result locally
//  4. average column "<prefix>.<field>", skipping NULLs
//  5. format the mean like a Python float ("4.0", "nan")
//  6. overwrite the output file with that text, no trailing newline
//
// The output file is only touched in step 6, so any earlier failure
// leaves an existing file as it was.
package runner
