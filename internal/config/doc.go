// Package config resolves the settings of a run.
//
// Values are layered, later layers winning:
//
//  1. Default()
//  2. the SQLMEAN_DATABASE environment variable
//  3. a config file (.cue, .hcl, .yaml or .yml)
//  4. command-line flags (applied by the cli package)
//
// A CUE config file looks like:
//
//	session: {
//		database:        "warehouse.db"
//		enable_catalogs: true
//		catalogs: ukb:   "/data/ukb.db"
//	}
//	column_prefix: "participant"
//	output:        "temp_file.txt"
//	log: level:    "debug"
//
// The HCL form uses the same names, with session and log as blocks.
package config
