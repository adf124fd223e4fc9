package util

import (
	"strings"
	"text/template"

	"github.com/pkg/errors"
)

// Data is a generic map type for template rendering context.
type Data map[string]interface{}

// Render executes the given template with the provided variables.
func Render(tmpl *template.Template, variables Data) (string, error) {
	var buf strings.Builder
	if err := tmpl.Execute(&buf, variables); err != nil {
		return "", errors.Wrap(err, "failed to render template")
	}
	return buf.String(), nil
}

// RenderString parses and executes the given template string with the provided variables.
func RenderString(tmplStr string, variables Data) (string, error) {
	tmpl, err := template.New("").Option("missingkey=error").Parse(tmplStr)
	if err != nil {
		return "", errors.Wrap(err, "failed to parse template string")
	}
	return Render(tmpl, variables)
}

// MergeData copies every source map into a fresh Data, later sources
// overriding earlier ones. The inputs are never mutated.
func MergeData(sources ...Data) Data {
	merged := Data{}
	for _, src := range sources {
		for k, v := range src {
			merged[k] = v
		}
	}
	return merged
}
