// Package classify assigns a content type [Tag] to a text sample.
//
// Classification is total and deterministic. Signals are tried from the
// most to the least specific, the first match deciding:
//
//  1. the file name extension, when it maps to something other than
//     plaintext;
//  2. a shebang line;
//  3. a sample that parses as JSON;
//  4. HTML, then XML markup;
//  5. YAML, only when the sample has no braces;
//  6. Markdown;
//  7. SQL;
//  8. SCSS, Less, then CSS;
//  9. Java;
//  10. PHP;
//  11. TypeScript;
//  12. JavaScript;
//  13. a statistical guess from a [Scorer], when confident enough;
//  14. the prior tag, the fallback, or plaintext.
//
// Content detectors see at most the first [Classifier.SampleLimit] code
// points, so buffers sharing that prefix classify alike.
//
// The default Scorer is [ChromaScorer], backed by the text analysers of
// github.com/alecthomas/chroma/v2.
package classify
