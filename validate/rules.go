// Package validate implements the table-validation engine: a mini-language
// of per-column rules (subclass/superclass/equivalence/instance queries,
// presence checks, wildcard interpolation, conditional when-guards)
// evaluated cell by cell against an ontology through a reasoner.
package validate

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/ontovet/ontovet/errors"
	"github.com/ontovet/ontovet/logger"
)

// Category partitions rule types by evaluation strategy.
type Category int

const (
	// CategoryQuery rules check a cell's content against the ontology
	// through a reasoner query.
	CategoryQuery Category = iota + 1
	// CategoryPresence rules check only whether a cell is empty.
	CategoryPresence
)

// RuleType enumerates the closed set of recognized rule types.
type RuleType int

const (
	TypeUnknown RuleType = iota
	TypeDirectSuperclassOf
	TypeSuperclassOf
	TypeEquivalentTo
	TypeDirectSubclassOf
	TypeSubclassOf
	TypeDirectInstanceOf
	TypeInstanceOf
	TypeIsRequired
	TypeIsExcluded
)

var ruleTypeTokens = map[string]RuleType{
	"direct-superclass-of": TypeDirectSuperclassOf,
	"superclass-of":        TypeSuperclassOf,
	"equivalent-to":        TypeEquivalentTo,
	"direct-subclass-of":   TypeDirectSubclassOf,
	"subclass-of":          TypeSubclassOf,
	"direct-instance-of":   TypeDirectInstanceOf,
	"instance-of":          TypeInstanceOf,
	"is-required":          TypeIsRequired,
	"is-excluded":          TypeIsExcluded,
}

var ruleTypeNames = func() map[RuleType]string {
	names := make(map[RuleType]string, len(ruleTypeTokens))
	for token, t := range ruleTypeTokens {
		names[t] = token
	}
	return names
}()

// LookupRuleType resolves a single textual token. Compound tokens must be
// split on '|' before lookup.
func LookupRuleType(token string) (RuleType, bool) {
	t, ok := ruleTypeTokens[token]
	return t, ok
}

func (t RuleType) String() string {
	if name, ok := ruleTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("RuleType(%d)", int(t))
}

// Category reports the type's evaluation category. TypeUnknown has no
// category.
func (t RuleType) Category() Category {
	switch t {
	case TypeIsRequired, TypeIsExcluded:
		return CategoryPresence
	case TypeDirectSuperclassOf, TypeSuperclassOf, TypeEquivalentTo,
		TypeDirectSubclassOf, TypeSubclassOf, TypeDirectInstanceOf, TypeInstanceOf:
		return CategoryQuery
	}
	return 0
}

// WhenClause is one guard triple. The rule it belongs to is evaluated only
// if every guard holds for the current row.
type WhenClause struct {
	Subject   string
	TypeToken string
	Axiom     string
}

// Rule is one parsed directive for a table column. TypeToken is kept raw
// because it may be a '|'-joined alternation and because unrecognized
// tokens only become errors once the rule is actually applied.
type Rule struct {
	Column     int // 1-based, for error messages
	TypeToken  string
	MainClause string
	When       []WhenClause
}

// primaryType is the first alternative of the (possibly compound) type
// token.
func (r Rule) primaryType() (RuleType, bool) {
	token, _, _ := strings.Cut(r.TypeToken, "|")
	return LookupRuleType(token)
}

var (
	whenGuardRE = regexp.MustCompile(`^(.*?)\(\s*when\s+(.+)\)(.*)$`)

	// subject is a bare token, a single-quoted label, or a parenthesized
	// expression; then a type token; then the axiom text.
	whenClauseRE = regexp.MustCompile(`^\s*([^'\s()]+|'[^'()]+'|\(.+?\))\s+([a-z\-|]+)\s+(.*?)\s*$`)
)

// ParseRules parses one rule-row cell into the rules it declares for the
// given 1-based column. Empty cells and cells starting with "##" declare
// no rules; a leading '#' on an individual rule comments it out.
func ParseRules(cell string, column int) ([]Rule, error) {
	trimmed := strings.TrimSpace(cell)
	if trimmed == "" || strings.HasPrefix(trimmed, "##") {
		return nil, nil
	}

	var rules []Rule
	for _, raw := range strings.Split(trimmed, ";") {
		raw = strings.TrimSpace(raw)
		if raw == "" || strings.HasPrefix(raw, "#") {
			continue
		}
		rule, err := parseRule(raw, column)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

func parseRule(raw string, column int) (Rule, error) {
	main := raw
	var when []WhenClause

	if m := whenGuardRE.FindStringSubmatch(raw); m != nil {
		main = strings.TrimSpace(m[1])
		if trailing := strings.TrimSpace(m[3]); trailing != "" {
			logger.Logger.Warnw("ignoring text after when-guard",
				"column", column, "text", trailing)
		}
		var err error
		when, err = parseWhenClauses(m[2], column)
		if err != nil {
			return Rule{}, err
		}
	}

	typeToken, remainder := splitOnSpace(main)
	rule := Rule{Column: column, TypeToken: typeToken, MainClause: remainder, When: when}

	if typeToken == "" {
		// A guard alone carries no rule type to apply.
		return Rule{}, errors.Wrapf(errors.ErrNoMainClause,
			"column %d: rule %q", column, raw)
	}
	primary, known := rule.primaryType()
	if !known {
		// Deferred: only an error if the rule is ever applied.
		return rule, nil
	}
	if remainder == "" {
		if primary.Category() != CategoryPresence {
			return Rule{}, errors.Wrapf(errors.ErrMalformedRule,
				"column %d: rule type %q requires an axiom", column, typeToken)
		}
		rule.MainClause = "true"
	}
	return rule, nil
}

func parseWhenClauses(body string, column int) ([]WhenClause, error) {
	var clauses []WhenClause
	for _, part := range strings.Split(body, "&") {
		m := whenClauseRE.FindStringSubmatch(part)
		if m == nil {
			return nil, errors.Wrapf(errors.ErrMalformedWhenClause,
				"column %d: when-clause %q", column, strings.TrimSpace(part))
		}
		for _, alt := range strings.Split(m[2], "|") {
			t, ok := LookupRuleType(alt)
			if !ok {
				return nil, errors.Wrapf(errors.ErrUnrecognizedQueryType,
					"column %d: when-clause type %q", column, alt)
			}
			if t.Category() != CategoryQuery {
				return nil, errors.Wrapf(errors.ErrInvalidWhenType,
					"column %d: when-clause type %q", column, alt)
			}
		}
		clauses = append(clauses, WhenClause{Subject: m[1], TypeToken: m[2], Axiom: m[3]})
	}
	return clauses, nil
}

func splitOnSpace(s string) (head, tail string) {
	i := strings.IndexFunc(s, unicode.IsSpace)
	if i < 0 {
		return s, ""
	}
	return s[:i], strings.TrimSpace(s[i:])
}
