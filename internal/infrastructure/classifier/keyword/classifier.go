// Package keyword classifies free-text legal queries with an ordered list
// of keyword rules. The first matching rule wins; ordering is the tie-break
// policy, so a query mixing property and consumer vocabulary is always
// classified as property.
package keyword

import (
	"regexp"
	"strings"

	"github.com/nyayamitra/legal-assistant/internal/core/domain"
)

type rule struct {
	category domain.Category
	pattern  *regexp.Regexp
}

type Classifier struct {
	rules []rule
}

// NewClassifier builds the fixed rule set. Patterns match against
// lowercased input, so they are written lowercase.
func NewClassifier() *Classifier {
	return &Classifier{
		rules: []rule{
			{
				category: domain.CategoryProperty,
				pattern:  regexp.MustCompile(`landlord|tenant|rent|deposit|security|property|lease|eviction|housing`),
			},
			{
				category: domain.CategoryConsumer,
				pattern:  regexp.MustCompile(`refund|warranty|defective|product|purchase|consumer|seller|overcharg|faulty`),
			},
			{
				category: domain.CategoryEmployment,
				pattern:  regexp.MustCompile(`salary|wages|employer|employee|termination|fired|workplace|gratuity|resign|dismissal`),
			},
			{
				category: domain.CategoryNeighbor,
				pattern:  regexp.MustCompile(`neighbou?r|boundary|fence|noise|encroach|nuisance|trespass`),
			},
		},
	}
}

// Classify maps text to a category. Pure and deterministic: no scoring, no
// state. Text that matches no rule is general.
func (c *Classifier) Classify(text string) domain.Category {
	normalized := strings.ToLower(text)
	for _, r := range c.rules {
		if r.pattern.MatchString(normalized) {
			return r.category
		}
	}
	return domain.CategoryGeneral
}
