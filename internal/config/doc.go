// Package config loads runtime options from YAML and the environment, and
// stores GUI preferences through Fyne.
package config
