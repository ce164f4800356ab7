// Command sqlmean runs a SQL query, averages column participant.<field>
// and writes the mean to temp_file.txt.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/sqlmean/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
