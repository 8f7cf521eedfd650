package docx

import (
	"html"
	"regexp"
	"strings"
)

// Names of the functions patched actions call into.
const (
	escapeFunc   = "docxEscape"
	richTextFunc = "docxRichText"
)

var (
	// Delimiters split by Word markup, e.g. "{</w:t></w:r><w:r><w:t>{".
	splitOpen  = regexp.MustCompile(`\{(?:<[^>]*>)+\{`)
	splitClose = regexp.MustCompile(`\}(?:<[^>]*>)+\}`)

	action   = regexp.MustCompile(`(?s)\{\{.*?\}\}`)
	xmlTag   = regexp.MustCompile(`<[^>]*>`)
	hoistTag = regexp.MustCompile(`(?s)\{\{(p|tr|r) (.*?)\}\}`)

	assignment = regexp.MustCompile(`^\$\w*\s*:?=`)
)

// hoistTargets maps hoisting prefixes to the element they replace.
var hoistTargets = map[string]string{
	"p":  "w:p",
	"tr": "w:tr",
	"r":  "w:r",
}

// controlWords start actions that produce no value.
var controlWords = map[string]bool{
	"if": true, "else": true, "end": true, "range": true, "with": true,
	"define": true, "template": true, "block": true, "break": true, "continue": true,
}

// smartQuotes undoes Word's typographic quote substitution inside actions.
var smartQuotes = strings.NewReplacer("“", `"`, "”", `"`, "‘", "'", "’", "'")

// patchXML turns a WordprocessingML part into a text/template source.
func patchXML(src string) string {
	src = splitOpen.ReplaceAllString(src, "{{")
	src = splitClose.ReplaceAllString(src, "}}")
	src = action.ReplaceAllStringFunc(src, cleanAction)
	src = hoist(src)
	return action.ReplaceAllStringFunc(src, escapeAction)
}

// cleanAction strips Word markup from inside an action and decodes entities.
func cleanAction(a string) string {
	a = xmlTag.ReplaceAllString(a, "")
	return smartQuotes.Replace(html.UnescapeString(a))
}

// hoist replaces each {{p ...}}, {{tr ...}} and {{r ...}} action together with
// its enclosing element.
func hoist(src string) string {
	for {
		loc := hoistTag.FindStringSubmatchIndex(src)
		if loc == nil {
			return src
		}
		kind := src[loc[2]:loc[3]]
		expr := strings.TrimSpace(src[loc[4]:loc[5]])

		repl := "{{ " + expr + " }}"
		if kind == "r" {
			repl = "{{ " + richTextFunc + " (" + expr + ") }}"
		}

		elem := hoistTargets[kind]
		start := lastOpenTag(src[:loc[0]], elem)
		end := closeTag(src[loc[1]:], elem)
		if start < 0 || end < 0 {
			src = src[:loc[0]] + repl + src[loc[1]:]
			continue
		}
		src = src[:start] + repl + src[loc[1]+end:]
	}
}

// lastOpenTag returns the index of the last opening tag of elem in s, or -1.
// "<w:r" must not match "<w:rPr".
func lastOpenTag(s, elem string) int {
	prefix := "<" + elem
	for {
		i := strings.LastIndex(s, prefix)
		if i < 0 {
			return -1
		}
		if next := i + len(prefix); next < len(s) && (s[next] == '>' || s[next] == ' ') {
			return i
		}
		s = s[:i]
	}
}

// closeTag returns the offset just past the first closing tag of elem in s, or -1.
func closeTag(s, elem string) int {
	tag := "</" + elem + ">"
	i := strings.Index(s, tag)
	if i < 0 {
		return -1
	}
	return i + len(tag)
}

// escapeAction routes value actions through the escape function so that
// plain values are XML-escaped and runs or images are spliced in.
func escapeAction(a string) string {
	body := a[2 : len(a)-2]

	lead, trail := "", ""
	if strings.HasPrefix(body, "- ") {
		lead, body = "-", body[1:]
	}
	if strings.HasSuffix(body, " -") {
		trail, body = "-", body[:len(body)-1]
	}

	expr := strings.TrimSpace(body)
	if isControl(expr) {
		return a
	}
	return "{{" + lead + " " + escapeFunc + " (" + expr + ") " + trail + "}}"
}

func isControl(expr string) bool {
	if expr == "" || strings.HasPrefix(expr, "/*") || assignment.MatchString(expr) {
		return true
	}
	word := expr
	if i := strings.IndexAny(word, " \t\n("); i >= 0 {
		word = word[:i]
	}
	return controlWords[word] || word == escapeFunc || word == richTextFunc
}
