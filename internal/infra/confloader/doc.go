// Package confloader provides configuration loading mechanism.
//
// This package implements a flexible configuration loader that supports
// multiple sources using koanf as the underlying library.
//
// Features:
//
//   - Multiple Sources: YAML files, environment variables, maps
//   - Type Safety: Unmarshaling into typed structs
//   - Defaults: Callers populate defaults on the target before loading
//
// Priority (highest to lowest):
//
//  1. Map overrides (flags, tests)
//  2. Environment variables
//  3. Configuration files
//  4. Default values
package confloader
