package grammar

import (
	"github.com/pkg/errors"

	"github.com/bcoopers/poiboi/internal/token"
)

// Validate enforces the grammar's unambiguity invariant (spec.md §3, §8
// property 2): for every nonterminal, at most one alternative's
// first-set may accept any given lookahead token kind. It returns an
// error describing the first violation found. This is a static property
// of the table, independent of any particular program, so the package's
// init calls Validate once and panics if it reports a
// grammar-construction bug.
func Validate() error {
	for name, rules := range Table {
		nonEmpty := make([]Rule, 0, len(rules))
		emptyCount := 0
		for _, r := range rules {
			if len(r) == 0 {
				emptyCount++
				continue
			}
			nonEmpty = append(nonEmpty, r)
		}
		if emptyCount > 1 {
			return errors.Errorf("grammar bug: nonterminal %s has %d epsilon alternatives, want at most 1", name, emptyCount)
		}
		firsts := make([]map[token.Kind]bool, len(nonEmpty))
		for i, r := range nonEmpty {
			firsts[i] = firstSetOfRule(r)
		}
		for i := 0; i < len(nonEmpty); i++ {
			for j := i + 1; j < len(nonEmpty); j++ {
				for t := range firsts[i] {
					if firsts[j][t] {
						return errors.Errorf("grammar bug: nonterminal %s has ambiguous alternatives both accepting %s", name, t.Name())
					}
				}
			}
		}
	}
	return nil
}

func firstSetOfRule(rule Rule) map[token.Kind]bool {
	if len(rule) == 0 {
		return nil
	}
	switch head := rule[0]; head.Kind {
	case SymToken:
		return map[token.Kind]bool{head.TokenKind: true}
	case SymNonterminal:
		return FirstSet(head.Nonterminal)
	}
	return nil
}

func init() {
	if err := Validate(); err != nil {
		panic(err)
	}
}
