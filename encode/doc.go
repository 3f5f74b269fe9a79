// Package encode writes parse, query, classification and diff results as
// text, JSON or YAML.
//
// Text output can be colored:
//
//	encode.Encode(res, os.Stdout, encode.EncodeColors(encode.NewColors()))
//
// # Related Packages
//
//   - github.com/deltapad/textcore/format - output formats
package encode
