// Package config loads the generator settings from a YAML (or JSON) file and
// fills in defaults for everything the file leaves out.
package config
