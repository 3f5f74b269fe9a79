package classify

import (
	"path"
	"regexp"
	"strings"

	"github.com/deltapad/textcore/parse"
)

// detector inspects a sample and returns the empty tag when it does not
// match.
type detector struct {
	name string
	fn   func(sample string) Tag
}

// content detectors in evaluation order. The first match wins.
var detectors = []detector{
	{"shebang", shebang},
	{"json", jsonDoc},
	{"markup", markup},
	{"yaml", yamlDoc},
	{"markdown", markdown},
	{"sql", sqlDoc},
	{"stylesheet", stylesheet},
	{"java", javaDoc},
	{"php", phpDoc},
	{"typescript", typescript},
	{"javascript", javascript},
}

func shebang(sample string) Tag {
	if !strings.HasPrefix(sample, "#!") {
		return ""
	}
	line, _, _ := strings.Cut(sample[2:], "\n")
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}
	interp := path.Base(fields[0])
	if interp == "env" {
		interp = ""
		for _, f := range fields[1:] {
			if strings.HasPrefix(f, "-") || strings.Contains(f, "=") {
				continue
			}
			interp = path.Base(f)
			break
		}
	}
	switch {
	case interp == "node", interp == "nodejs", interp == "deno", interp == "bun":
		return JavaScript
	case strings.HasPrefix(interp, "python"):
		return Python
	case strings.HasPrefix(interp, "php"):
		return PHP
	}
	switch interp {
	case "sh", "bash", "zsh", "ksh", "dash", "ash", "fish", "mksh":
		return Shell
	}
	return ""
}

var reJSONPair = regexp.MustCompile(`":\s*|:\s*"`)

func jsonDoc(sample string) Tag {
	trimmed := strings.TrimSpace(sample)
	if !strings.HasPrefix(trimmed, "{") && !strings.HasPrefix(trimmed, "[") {
		return ""
	}
	if !reJSONPair.MatchString(trimmed) {
		return ""
	}
	if _, err := parse.ParseString(trimmed); err != nil {
		return ""
	}
	return JSON
}

var (
	reHTMLDoc = regexp.MustCompile(`(?i)<!doctype\s+html|<(html|head|body)[\s>/]`)
	reXML     = regexp.MustCompile(`^<\?xml\s|\sxmlns(:[\w.-]+)?\s*=`)
	reHTMLTag = regexp.MustCompile(`(?i)<(div|span|script|style|meta|link|table|form|ul|ol|li|p|a|img|br|h[1-6]|section|nav|footer|header|main|button|input|iframe|title)[\s>/]`)
)

// markup tells HTML from XML. Documents with an HTML doctype or an
// html, head or body element are HTML. Otherwise a prolog or a namespace
// declaration makes XML, even when the vocabulary shares element names with
// HTML, as feeds and SVG do.
func markup(sample string) Tag {
	switch {
	case reHTMLDoc.MatchString(sample):
		return HTML
	case reXML.MatchString(strings.TrimSpace(sample)):
		return XML
	case reHTMLTag.MatchString(sample):
		return HTML
	}
	return ""
}

var (
	reYAMLStart = regexp.MustCompile(`^---[ \t]*(\r?\n|$)`)
	reYAMLPair  = regexp.MustCompile(`(?m)^[ \t]*(- )?[A-Za-z_][\w.-]*:[ \t]+\S`)
	reYAMLList  = regexp.MustCompile(`(?m)^[ \t]*- [A-Za-z_][\w.-]*:([ \t]|$)`)
)

func yamlDoc(sample string) Tag {
	if strings.ContainsAny(sample, "{}") {
		return ""
	}
	trimmed := strings.TrimLeft(sample, " \t\r\n")
	switch {
	case reYAMLStart.MatchString(trimmed),
		reYAMLList.MatchString(sample),
		len(reYAMLPair.FindAllStringIndex(sample, 2)) == 2:
		return YAML
	}
	return ""
}

var (
	reMDHeading = regexp.MustCompile(`(?m)^#{1,6}[ \t]+\S`)
	reMDBullet  = regexp.MustCompile(`(?m)^([-*+]|\d+\.)[ \t]+\S`)
	reMDLink    = regexp.MustCompile(`\[[^\]\n]+\]\([^)\s]+\)`)
)

func markdown(sample string) Tag {
	switch {
	case reMDHeading.MatchString(sample),
		strings.Contains(sample, "```"),
		reMDLink.MatchString(sample),
		len(reMDBullet.FindAllStringIndex(sample, 2)) == 2:
		return Markdown
	}
	return ""
}

var reSQL = regexp.MustCompile(`(?is)\b(select|insert|update|delete|create|alter|drop|with)\b.*\bfrom\b`)

func sqlDoc(sample string) Tag {
	if reSQL.MatchString(sample) {
		return SQL
	}
	return ""
}

var (
	reSCSS     = regexp.MustCompile(`(?m)^[ \t]*\$[\w-]+[ \t]*:|@mixin\s|@include\s`)
	reLess     = regexp.MustCompile(`(?m)^[ \t]*@[\w-]+[ \t]*:`)
	reCSSBlock = regexp.MustCompile(`(?m)^[ \t]*([^{}\n;]+?)[ \t]*\{\s*[a-z-]+[ \t]*:[^;{}\n]+;`)
)

// words that open code blocks in languages whose bodies can look like
// declarations.
var notSelectors = map[string]bool{
	"interface": true, "class": true, "enum": true, "type": true,
	"struct": true, "function": true, "if": true, "for": true,
	"while": true, "switch": true, "const": true, "let": true,
	"var": true, "export": true, "public": true, "private": true,
	"protected": true, "impl": true, "fn": true, "func": true,
	"namespace": true, "module": true, "declare": true, "union": true,
}

func stylesheet(sample string) Tag {
	if reSCSS.MatchString(sample) {
		return SCSS
	}
	if reLess.MatchString(sample) {
		return Less
	}
	for _, m := range reCSSBlock.FindAllStringSubmatch(sample, -1) {
		first, _, _ := strings.Cut(strings.TrimSpace(m[1]), " ")
		if !notSelectors[first] {
			return CSS
		}
	}
	return ""
}

var reJava = regexp.MustCompile(`(?m)^[ \t]*package[ \t]+\w+(\.\w+)*[ \t]*;|^[ \t]*import[ \t]+javax?\.|\bpublic\s+((abstract|final|static)\s+)*(class|interface|enum)\s+[A-Za-z_]\w*|@Override\b`)

func javaDoc(sample string) Tag {
	if reJava.MatchString(sample) {
		return Java
	}
	return ""
}

var (
	rePHPVar    = regexp.MustCompile(`\$[A-Za-z_]\w*\b`)
	rePHPMember = regexp.MustCompile(`->|::`)
)

func phpDoc(sample string) Tag {
	if strings.HasPrefix(strings.TrimSpace(sample), "<?php") {
		return PHP
	}
	if rePHPVar.MatchString(sample) && rePHPMember.MatchString(sample) {
		return PHP
	}
	return ""
}

var reTS = regexp.MustCompile(`\binterface\s+[A-Za-z_]\w*|\benum\s+[A-Za-z_]\w*|\btype\s+[A-Za-z_]\w*\s*=|\bimport\s+[A-Z]\w*\s+from\s+['"]|\bexport\s+default\b`)

func typescript(sample string) Tag {
	if reTS.MatchString(sample) {
		return TypeScript
	}
	return ""
}

var reJS = regexp.MustCompile(`\b(const|let|var)\s+[A-Za-z_$][\w$]*\s*=|\bfunction\b\s*[\w$]*\s*\(|=>`)

func javascript(sample string) Tag {
	if reJS.MatchString(sample) {
		return JavaScript
	}
	return ""
}
