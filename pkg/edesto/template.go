package edesto

import (
	_ "embed"
	"sort"
	"strings"
	"text/template"
)

//go:embed templates/claude.md.tmpl
var instructionsTemplate string

// templateData is the data passed to the instructions template.
type templateData struct {
	Board *Board
	Port  string
	// Includes holds the capability includes in deterministic order
	Includes []capabilityInclude
}

type capabilityInclude struct {
	Capability string
	Include    string
}

var instructionsTmpl = template.Must(
	template.New("claude.md").Funcs(template.FuncMap{
		"title": titleizeCapability,
	}).Parse(instructionsTemplate),
)

// RenderInstructions renders the complete instructions document for the
// given board and serial port. The document covers compile/flash commands,
// the development loop, serial validation, and board-specific pin notes
// and pitfalls.
func RenderInstructions(board *Board, port string) (string, error) {
	data := templateData{
		Board:    board,
		Port:     port,
		Includes: sortedIncludes(board),
	}

	var sb strings.Builder
	if err := instructionsTmpl.Execute(&sb, data); err != nil {
		return "", &GenerateError{Op: "render", Path: board.Slug, Err: err}
	}
	return sb.String(), nil
}

// sortedIncludes returns the board's capability includes in capability
// order so rendered output is stable across runs.
func sortedIncludes(board *Board) []capabilityInclude {
	tags := make([]string, 0, len(board.Includes))
	for tag := range board.Includes {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	includes := make([]capabilityInclude, 0, len(tags))
	for _, tag := range tags {
		includes = append(includes, capabilityInclude{
			Capability: titleizeCapability(tag),
			Include:    board.Includes[tag],
		})
	}
	return includes
}

// titleizeCapability turns a capability tag into a display label
// ("http_server" -> "Http Server").
func titleizeCapability(tag string) string {
	words := strings.Split(tag, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
