// Package config provides configuration loading, merging, and validation
// facilities for laano-sync.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win, later sources fill remaining fields):
//  1. Command-line overrides supplied by the caller
//  2. Environment variables (LAANO_* namespace)
//  3. JSON config file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// The main entry point is [Load].
package config
