// Package corpus loads the embedded response template corpus and resolves
// (language, category) pairs through the fallback chain. It is the single
// home of fallback logic: callers never special-case which languages carry a
// per-category dictionary.
package corpus

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/nyayamitra/legal-assistant/internal/core/domain"
	"github.com/nyayamitra/legal-assistant/internal/core/ports"
)

//go:embed templates.yaml
var corpusYAML []byte

type corpusFile struct {
	Templates []templateEntry `yaml:"templates"`
}

type templateEntry struct {
	Language  string   `yaml:"language"`
	Category  string   `yaml:"category"`
	Narrative string   `yaml:"narrative"`
	Citations []string `yaml:"citations"`
}

type key struct {
	language domain.LanguageCode
	category domain.Category
}

type Repository struct {
	templates map[key]domain.Template
}

// Load parses the embedded corpus. It fails fast on a malformed corpus or
// one missing the (english, general) entry, which terminates the fallback
// chain and must always exist.
func Load() (*Repository, error) {
	return load(corpusYAML)
}

func load(raw []byte) (*Repository, error) {
	var file corpusFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse template corpus: %w", err)
	}
	if len(file.Templates) == 0 {
		return nil, fmt.Errorf("template corpus is empty")
	}

	templates := make(map[key]domain.Template, len(file.Templates))
	for i, entry := range file.Templates {
		if entry.Language == "" || entry.Category == "" || entry.Narrative == "" {
			return nil, fmt.Errorf("corpus entry %d: language, category and narrative are required", i)
		}
		k := key{
			language: domain.LanguageCode(entry.Language),
			category: domain.Category(entry.Category),
		}
		if _, dup := templates[k]; dup {
			return nil, fmt.Errorf("corpus entry %d: duplicate (%s, %s)", i, entry.Language, entry.Category)
		}
		templates[k] = domain.Template{
			Language:  k.language,
			Category:  k.category,
			Narrative: entry.Narrative,
			Citations: entry.Citations,
		}
	}

	if _, ok := templates[key{domain.LanguageEnglish, domain.CategoryGeneral}]; !ok {
		return nil, fmt.Errorf("template corpus missing the (english, general) fallback entry")
	}
	return &Repository{templates: templates}, nil
}

// Resolve is total. The chain, in order: exact (language, category) entry,
// the language's generic entry, then (english, general).
func (r *Repository) Resolve(language domain.LanguageCode, category domain.Category) (domain.Template, ports.ResolutionLevel) {
	if tmpl, ok := r.templates[key{language, category}]; ok {
		return tmpl, ports.ResolutionExact
	}
	if tmpl, ok := r.templates[key{language, domain.CategoryGeneric}]; ok {
		return tmpl, ports.ResolutionLanguageGeneric
	}
	return r.templates[key{domain.LanguageEnglish, domain.CategoryGeneral}], ports.ResolutionEnglishFallback
}
