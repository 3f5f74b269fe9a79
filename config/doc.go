// Package config loads deltapad tool settings.
//
// A config file is YAML (or JSON). It is applied as a JSON merge patch
// onto the defaults, so a file only names what it changes:
//
//	query:
//	  max: 50
//	classify:
//	  fallback: markdown
//	output:
//	  format: json
//
// A null value removes a field, leaving its zero value to validation.
package config
