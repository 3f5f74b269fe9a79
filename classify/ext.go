package classify

import (
	"path"
	"strings"
)

var extTags = map[string]Tag{
	"js":       JavaScript,
	"mjs":      JavaScript,
	"cjs":      JavaScript,
	"jsx":      JavaScript,
	"ts":       TypeScript,
	"mts":      TypeScript,
	"cts":      TypeScript,
	"tsx":      TypeScript,
	"json":     JSON,
	"jsonc":    JSON,
	"css":      CSS,
	"scss":     SCSS,
	"less":     Less,
	"html":     HTML,
	"htm":      HTML,
	"xhtml":    HTML,
	"md":       Markdown,
	"markdown": Markdown,
	"yml":      YAML,
	"yaml":     YAML,
	"xml":      XML,
	"xsd":      XML,
	"xsl":      XML,
	"svg":      XML,
	"sh":       Shell,
	"bash":     Shell,
	"zsh":      Shell,
	"ksh":      Shell,
	"py":       Python,
	"pyw":      Python,
	"java":     Java,
	"c":        C,
	"h":        C,
	"cpp":      CPP,
	"cc":       CPP,
	"cxx":      CPP,
	"hpp":      CPP,
	"hh":       CPP,
	"hxx":      CPP,
	"cs":       CSharp,
	"go":       Go,
	"rs":       Rust,
	"php":      PHP,
	"rb":       Ruby,
	"sql":      SQL,
	"txt":      Plaintext,
}

// FromFilename maps the extension of name to a tag, Plaintext when the
// extension is missing or unknown. Both / and \ separate directories.
func FromFilename(name string) Tag {
	name = path.Base(strings.ReplaceAll(name, `\`, "/"))
	i := strings.LastIndexByte(name, '.')
	if i < 0 {
		return Plaintext
	}
	if t, ok := extTags[strings.ToLower(name[i+1:])]; ok {
		return t
	}
	return Plaintext
}
