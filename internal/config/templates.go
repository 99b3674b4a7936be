package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"text/template"

	"gopkg.in/yaml.v3"
)

// SummaryLocale holds the template fragments used to build the one-line
// search summary in a single language.
type SummaryLocale struct {
	Found            string `yaml:"found"`
	Empty            string `yaml:"empty"`
	ForStage         string `yaml:"for_stage"`
	ForMeal          string `yaml:"for_meal"`
	Matching         string `yaml:"matching"`
	AllergenExcluded string `yaml:"allergen_excluded"`
	FilterNote       string `yaml:"filter_note"`
	Relaxed          string `yaml:"relaxed"`
	AgeAgnostic      string `yaml:"age_agnostic"`
	Featured         string `yaml:"featured"`
}

// SummaryTemplates maps a language code to its summary fragments.
type SummaryTemplates map[string]SummaryLocale

// Locale returns the fragments for the given language, falling back to
// English when the language is unknown.
func (t SummaryTemplates) Locale(lang string) SummaryLocale {
	if loc, ok := t[lang]; ok {
		return loc
	}
	return t["en"]
}

// LoadSummaries reads and parses a YAML summary template file.
func LoadSummaries(path string) (*SummaryTemplates, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read summaries file: %w", err)
	}

	var templates SummaryTemplates
	if err := yaml.Unmarshal(data, &templates); err != nil {
		return nil, fmt.Errorf("failed to parse summaries YAML: %w", err)
	}
	if _, ok := templates["en"]; !ok {
		return nil, fmt.Errorf("summaries file missing 'en' locale")
	}

	return &templates, nil
}

// RenderFragment executes Go template interpolation on a summary fragment.
// The data map provides values for placeholders like {{.Count}} and
// {{.Stage}}.
func RenderFragment(tmpl string, data map[string]interface{}) (string, error) {
	t, err := template.New("summary").Parse(tmpl)
	if err != nil {
		return "", fmt.Errorf("failed to parse summary template: %w", err)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render summary template: %w", err)
	}

	return strings.TrimSpace(buf.String()), nil
}
