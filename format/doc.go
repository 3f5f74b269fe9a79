// Package format names the output formats of the deltapad tools.
//
// # Related Packages
//
//   - github.com/deltapad/textcore/encode - write results in a format
//   - github.com/deltapad/textcore/config - default format from a config file
package format
