package validate

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/ontovet/ontovet/errors"
	"github.com/ontovet/ontovet/ontology"
)

var wildcardRE = regexp.MustCompile(`%(\d+)`)

// wildcardAssignments discovers the distinct %N wildcards across the given
// fragments, in order, and returns one substitution map per combination of
// their candidate values. A wildcard's candidates come from the referenced
// cell split on pipes: candidates resolving to a label substitute the
// quoted label, the rest substitute the raw term parenthesized. With no
// wildcards the result is a single empty assignment. column is the 1-based
// column the rule belongs to, used for error context.
func wildcardAssignments(fragments []string, row []string, column int, onto *ontology.Ontology) ([]map[string]string, error) {
	var tokens []string
	candidates := make(map[string][]string)
	for _, fragment := range fragments {
		for _, m := range wildcardRE.FindAllStringSubmatch(fragment, -1) {
			token := m[0]
			if _, seen := candidates[token]; seen {
				continue
			}
			n, err := strconv.Atoi(m[1])
			if err != nil || n < 1 {
				return nil, errors.Wrapf(errors.ErrMalformedRule,
					"column %d: invalid wildcard %q", column, token)
			}
			if n > len(row) {
				return nil, errors.Wrapf(errors.ErrColumnOutOfRange,
					"column %d: wildcard %q references column %d but the row has %d cells",
					column, token, n, len(row))
			}
			var subs []string
			for _, term := range strings.Split(row[n-1], "|") {
				term = strings.TrimSpace(term)
				if label, ok := resolveLabel(term, onto); ok {
					subs = append(subs, "'"+label+"'")
				} else {
					subs = append(subs, "("+term+")")
				}
			}
			tokens = append(tokens, token)
			candidates[token] = subs
		}
	}

	assignments := []map[string]string{}
	assignment := make(map[string]string, len(tokens))
	var expand func(i int)
	expand = func(i int) {
		if i == len(tokens) {
			frozen := make(map[string]string, len(assignment))
			for token, sub := range assignment {
				frozen[token] = sub
			}
			assignments = append(assignments, frozen)
			return
		}
		for _, sub := range candidates[tokens[i]] {
			assignment[tokens[i]] = sub
			expand(i + 1)
		}
	}
	expand(0)
	return assignments, nil
}

// substituteWildcards applies one assignment to a fragment.
func substituteWildcards(s string, assignment map[string]string) string {
	if len(assignment) == 0 {
		return s
	}
	return wildcardRE.ReplaceAllStringFunc(s, func(token string) string {
		if sub, ok := assignment[token]; ok {
			return sub
		}
		return token
	})
}

// Interpolate expands %N wildcards in a single rule fragment against the
// current data row, fanning out as a full cross-product in order of
// wildcard discovery. A fragment with no wildcards passes through as a
// single-element result.
func Interpolate(rule string, row []string, column int, onto *ontology.Ontology) ([]string, error) {
	assignments, err := wildcardAssignments([]string{rule}, row, column, onto)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(assignments))
	for i, assignment := range assignments {
		out[i] = substituteWildcards(rule, assignment)
	}
	return out, nil
}
