// Package config loads the draftforge configuration file. A single
// YAML document covers keyboard shortcut overrides, the bulk-delete
// confirmation threshold, the clipboard source identity and logging.
// A missing file yields the built-in defaults.
package config
