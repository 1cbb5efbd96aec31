package services

import (
	"regexp"
	"strings"

	"github.com/medtechmfg/bomkit/pkg/domain/entities"
	"github.com/medtechmfg/bomkit/pkg/domain/repositories"
)

// FallbackResolver substitutes a catalog-matching variant identifier when a
// bare requested identifier has no exact catalog match. The core expansion
// algorithm only sees this narrow interface; naming conventions live in the
// rule configuration.
type FallbackResolver interface {
	Resolve(id entities.CatalogID) (entities.CatalogID, bool)
}

// VariantRule describes one parameterized-identifier family: which bare
// identifiers it covers, the tags to try, and where a tag is placed.
type VariantRule struct {
	// Pattern identifies bare identifiers of this family
	Pattern *regexp.Regexp
	// Template rewrites a match into a candidate; "{tag}" marks the tag
	// position and $N refers to Pattern capture groups
	Template string
	// Tags are tried in declared order; the first candidate present in the
	// catalog wins
	Tags []string
}

// Candidates returns the variant identifiers this rule produces for id,
// in tag order. Identifiers that already carry one of the rule's tags are
// not treated as bare.
func (r VariantRule) Candidates(id string) []string {
	if !r.Pattern.MatchString(id) {
		return nil
	}
	for _, tag := range r.Tags {
		if strings.HasSuffix(id, "-"+tag) {
			return nil
		}
	}

	candidates := make([]string, 0, len(r.Tags))
	for _, tag := range r.Tags {
		template := strings.ReplaceAll(r.Template, "{tag}", tag)
		candidate := r.Pattern.ReplaceAllString(id, template)
		if candidate != id {
			candidates = append(candidates, candidate)
		}
	}
	return candidates
}

// DefaultVariantRules returns the rule set for the known parameterized kit
// family: kit identifiers that exist in the catalog only in per-color form.
// The tag list is deliberate configuration, not an inferred convention.
func DefaultVariantRules() []VariantRule {
	return []VariantRule{
		{
			// Identifiers with a literal KIT segment, e.g. KIT-7236 or
			// T2-OHL-KIT, stocked per color as <id>-<COLOR>
			Pattern:  regexp.MustCompile(`^((?:[A-Z0-9]+-)*KIT(?:-[A-Z0-9]+)*)$`),
			Template: "${1}-{tag}",
			Tags:     []string{"GREEN", "BLUE", "RED", "BLACK", "YELLOW", "GREY", "ORANGE", "WHITE"},
		},
	}
}

// VariantResolver resolves bare identifiers against the catalog using a
// fixed rule set
type VariantResolver struct {
	rules   []VariantRule
	catalog repositories.CatalogRepository
}

// NewVariantResolver creates a resolver over the given rules and catalog
func NewVariantResolver(rules []VariantRule, catalog repositories.CatalogRepository) *VariantResolver {
	return &VariantResolver{rules: rules, catalog: catalog}
}

// Verify interface compliance
var _ FallbackResolver = (*VariantResolver)(nil)

// Resolve returns the first rule-generated variant of id that exists in the
// catalog. It reports false when id matches no rule or no variant exists.
func (v *VariantResolver) Resolve(id entities.CatalogID) (entities.CatalogID, bool) {
	for _, rule := range v.rules {
		for _, candidate := range rule.Candidates(string(id)) {
			cid := entities.CatalogID(candidate)
			if v.catalog.Contains(cid) {
				return cid, true
			}
		}
	}
	return "", false
}
