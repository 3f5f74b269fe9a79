// Package token provides the low level scanning used by the JSON entry
// parser: whitespace, keyword literals, numbers and quoted strings, each
// reported as a byte length consumed from the start of the input.
//
// [PosDoc] maps byte offsets of a document to line and column.
//
// # Related Packages
//
//   - github.com/deltapad/textcore/parse - recursive descent over these scanners
package token
