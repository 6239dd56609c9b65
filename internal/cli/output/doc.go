// Package output provides output formatting for platform-cli.
//
// Three formats are supported:
//
//   - table: aligned columns for humans (default)
//   - json: indented JSON for scripts
//   - yaml: YAML for configuration-shaped data
//
// Commands build Table values explicitly for table output and pass
// the decoded payload to the JSON and YAML formatters unchanged.
package output
