package classify

import (
	"strings"
)

// Tag is a content type from a fixed set.
type Tag string

const (
	Plaintext  Tag = "plaintext"
	JSON       Tag = "json"
	JavaScript Tag = "javascript"
	TypeScript Tag = "typescript"
	HTML       Tag = "html"
	CSS        Tag = "css"
	SCSS       Tag = "scss"
	Less       Tag = "less"
	Markdown   Tag = "markdown"
	YAML       Tag = "yaml"
	XML        Tag = "xml"
	Python     Tag = "python"
	Java       Tag = "java"
	C          Tag = "c"
	CPP        Tag = "cpp"
	CSharp     Tag = "csharp"
	Go         Tag = "go"
	Rust       Tag = "rust"
	PHP        Tag = "php"
	Ruby       Tag = "ruby"
	Shell      Tag = "shell"
	SQL        Tag = "sql"
)

// Tags returns every tag, in menu order.
func Tags() []Tag {
	return []Tag{
		Plaintext, JSON, JavaScript, TypeScript, HTML, CSS, SCSS, Less, Markdown,
		YAML, XML, Python, Java, C, CPP, CSharp, Go, Rust, PHP, Ruby, Shell,
		SQL,
	}
}

func (t Tag) String() string {
	return string(t)
}

// Valid reports whether t is one of Tags().
func (t Tag) Valid() bool {
	_, ok := tagNames[string(t)]
	return ok
}

var tagNames = func() map[string]Tag {
	m := map[string]Tag{}
	for _, t := range Tags() {
		m[string(t)] = t
	}
	return m
}()

// other names for tags, as used by lexers and on the command line.
var tagAliases = map[string]Tag{
	"text":       Plaintext,
	"txt":        Plaintext,
	"plain":      Plaintext,
	"js":         JavaScript,
	"jsx":        JavaScript,
	"node":       JavaScript,
	"ts":         TypeScript,
	"tsx":        TypeScript,
	"lesscss":    Less,
	"md":         Markdown,
	"yml":        YAML,
	"py":         Python,
	"python3":    Python,
	"py3":        Python,
	"c++":        CPP,
	"cxx":        CPP,
	"c#":         CSharp,
	"cs":         CSharp,
	"golang":     Go,
	"rs":         Rust,
	"rb":         Ruby,
	"bash":       Shell,
	"sh":         Shell,
	"zsh":        Shell,
	"ksh":        Shell,
	"shell":      Shell,
	"mysql":      SQL,
	"postgresql": SQL,
	"tsql":       SQL,
	"plsql":      SQL,
}

// ParseTag resolves a tag name or a common alias, ignoring case.
func ParseTag(s string) (Tag, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if t, ok := tagNames[s]; ok {
		return t, true
	}
	t, ok := tagAliases[s]
	return t, ok
}
