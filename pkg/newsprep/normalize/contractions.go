package normalize

import "regexp"

// contractionSet repairs contractions that arrive split in the raw feeds
// ("don t" instead of "don't"). Matching is exact and case-insensitive;
// replacement keeps the original casing of the stem.
type contractionSet struct {
	rules []contractionRule
}

type contractionRule struct {
	re   *regexp.Regexp
	repl string
}

// Stems whose split "<stem> t" form is unambiguous. Only the n't family is
// repaired: pairs like "it s" are left alone because the possessive and the
// contraction cannot be told apart.
var negatedStems = []string{
	"ain", "aren", "can", "couldn", "didn", "doesn", "don", "hadn",
	"hasn", "haven", "isn", "mightn", "mustn", "needn", "shan",
	"shouldn", "wasn", "weren", "won", "wouldn",
}

func defaultContractions() *contractionSet {
	cs := &contractionSet{}
	for _, stem := range negatedStems {
		cs.rules = append(cs.rules, contractionRule{
			re:   regexp.MustCompile(`(?i)\b(` + stem + `)[ ]t\b`),
			repl: "${1}'t",
		})
	}
	return cs
}

func (cs *contractionSet) Repair(s string) string {
	for _, r := range cs.rules {
		s = r.re.ReplaceAllString(s, r.repl)
	}
	return s
}
