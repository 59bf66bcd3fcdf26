package main

import (
	"bytes"
	"fmt"
	"go/format"
	"sort"
	"strings"
	"text/template"
)

var genTemplate = template.Must(template.New("keywords").Parse(`// Code generated by scripts/genkeywords; DO NOT EDIT.

package keyword

//nolint:revive // keyword constants mirror their SQL spelling
const (
	NoKeyword Keyword = iota
{{- range .}}
	{{.}}
{{- end}}
)

// names is indexed by Keyword and sorted, so it doubles as the lookup table.
var names = [...]string{
	"",
{{- range .}}
	"{{.}}",
{{- end}}
}
`))

// parseList reads one keyword per line, ignoring blanks and # comments, and
// returns the words upper-cased, deduplicated and in byte order.
func parseList(src string) []string {
	seen := make(map[string]bool)
	var words []string
	for _, line := range strings.Split(src, "\n") {
		w := strings.ToUpper(strings.TrimSpace(line))
		if w == "" || strings.HasPrefix(w, "#") || seen[w] {
			continue
		}
		seen[w] = true
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

func formatList(words []string) string {
	return strings.Join(words, "\n") + "\n"
}

// render produces the gofmt'ed source of keywords_gen.go. The words must
// be valid Go identifiers.
func render(words []string) ([]byte, error) {
	for _, w := range words {
		if !validWord.MatchString(w) {
			return nil, fmt.Errorf("invalid keyword %q", w)
		}
	}
	var buf bytes.Buffer
	if err := genTemplate.Execute(&buf, words); err != nil {
		return nil, err
	}
	return format.Source(buf.Bytes())
}
