// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (the first non-zero value per field wins):
//  1. Environment variables
//  2. CLI-provided overrides
//  3. JSON config file
//
// The main entry point is [GetConfig].
package config
