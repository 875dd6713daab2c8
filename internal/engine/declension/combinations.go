package declension

import (
	"strings"

	"github.com/heartmarshall/conlang-backend/internal/domain"
)

// Combinations expands templates into paradigm cells: the cartesian product
// of the dimensional templates in position order, then one cell per
// singleton template. A dimensional template without dimensions empties
// the product.
func Combinations(templates []domain.DeclensionTemplate) []domain.Combination {
	ordered := make([]domain.DeclensionTemplate, len(templates))
	copy(ordered, templates)
	domain.SortByPosition(ordered, func(t domain.DeclensionTemplate) int { return t.Position })

	var dimensional, singletons []domain.DeclensionTemplate
	for _, t := range ordered {
		if t.Singleton {
			singletons = append(singletons, t)
			continue
		}
		dims := make([]domain.DeclensionDimension, len(t.Dimensions))
		copy(dims, t.Dimensions)
		domain.SortByPosition(dims, func(d domain.DeclensionDimension) int { return d.Position })
		t.Dimensions = dims
		dimensional = append(dimensional, t)
	}

	var out []domain.Combination
	if len(dimensional) > 0 {
		expand(dimensional, 0, nil, nil, false, &out)
	}
	for _, t := range singletons {
		out = append(out, domain.Combination{
			ID:        t.SingletonID(),
			Label:     t.Name,
			Mandatory: t.Mandatory,
		})
	}
	return out
}

func expand(templates []domain.DeclensionTemplate, depth int, ids []int64, labels []string, mandatory bool, out *[]domain.Combination) {
	if depth == len(templates) {
		*out = append(*out, domain.Combination{
			ID:        domain.NewCombinationID(ids...),
			Label:     strings.Join(labels, " "),
			Mandatory: mandatory,
		})
		return
	}
	t := templates[depth]
	for _, d := range t.Dimensions {
		expand(templates, depth+1,
			append(ids[:len(ids):len(ids)], d.ID),
			append(labels[:len(labels):len(labels)], d.Name),
			mandatory || t.Mandatory || d.Mandatory,
			out)
	}
}
