// Package settings holds the export settings that tell the exporter which template
// attribute definitions receive which source data.
//
// Settings files are JSON documents with camelCase keys. They are decoded with the
// YAML decoder, which accepts JSON as well as trailing commas and comments, and a
// leading byte order mark is tolerated.
package settings
