// Package config loads runtime configuration for the policydesk CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Command-line flags -s and -t, which override earlier values.
package config
