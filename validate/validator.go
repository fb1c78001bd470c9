package validate

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/ontovet/ontovet/errors"
	"github.com/ontovet/ontovet/ontology"
	"github.com/ontovet/ontovet/reasoner"
	"github.com/ontovet/ontovet/report"
)

var (
	truthTrue  = map[string]bool{"true": true, "t": true, "1": true, "yes": true, "y": true}
	truthFalse = map[string]bool{"false": true, "f": true, "0": true, "no": true, "n": true}
)

// TableValidator checks table cells against their column rules. It never
// mutates the ontology; one instance serves any number of runs.
type TableValidator struct {
	onto   *ontology.Ontology
	rsn    reasoner.Reasoner
	parser *ontology.ExprParser
}

func New(onto *ontology.Ontology, rsn reasoner.Reasoner) *TableValidator {
	return &TableValidator{onto: onto, rsn: rsn, parser: ontology.NewExprParser(onto)}
}

// Validate runs the full pass over rows. Row 0 is the header, row 1 the
// rules row, the rest data. Structural errors (malformed rules, bad
// wildcards, unknown types) abort the run; failing cells are written to
// the sink and do not. The caller owns the sink and must close it on
// every exit path.
func (v *TableValidator) Validate(rows [][]string, sink report.Sink) error {
	if len(rows) < 2 {
		return errors.New("table needs a header row and a rules row")
	}
	header := rows[0]
	rulesRow := pad(rows[1], len(header))

	colRules := make([][]Rule, len(header))
	for i, cell := range rulesRow {
		parsed, err := ParseRules(cell, i+1)
		if err != nil {
			return err
		}
		colRules[i] = parsed
	}

	if err := sink.Begin(header, rulesRow, len(rows)-2); err != nil {
		return err
	}

	for r, rawRow := range rows[2:] {
		row := pad(rawRow, len(header))
		for c, cell := range row {
			coords := report.Coords{Row: r, Col: c}
			if err := sink.WriteCell(coords, cell, !hasQueryRules(colRules[c])); err != nil {
				return err
			}
		}
		if blankRow(row) {
			continue
		}
		for c, cell := range row {
			coords := report.Coords{Row: r, Col: c}
			for _, rule := range colRules[c] {
				if err := v.applyRule(rule, cell, row, coords, sink); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func (v *TableValidator) applyRule(rule Rule, cell string, row []string, coords report.Coords, sink report.Sink) error {
	// A typo'd type token aborts the run even when every guard would
	// fail, so the recognition check comes before anything else.
	primary, known := rule.primaryType()
	if !known {
		token, _, _ := strings.Cut(rule.TypeToken, "|")
		return errors.Wrapf(errors.ErrUnrecognizedRuleType,
			"column %d: rule type %q", rule.Column, token)
	}
	presence := primary.Category() == CategoryPresence
	if !presence && strings.TrimSpace(cell) == "" {
		// Nothing to check against the ontology.
		return nil
	}

	// Wildcards fan out over the whole rule at once, so each candidate's
	// guard gates only that candidate's main clause and the two share
	// one substitution.
	assignments, err := wildcardAssignments(ruleFragments(rule), row, rule.Column, v.onto)
	if err != nil {
		return err
	}
	checked := false
	for _, assignment := range assignments {
		applies, err := v.guardHolds(rule, assignment)
		if err != nil {
			return err
		}
		if !applies {
			continue
		}
		if presence {
			// The presence check does not depend on the assignment;
			// one holding guard is enough.
			if checked {
				continue
			}
			checked = true
			if err := v.applyPresenceRule(rule, primary, cell, coords, sink); err != nil {
				return err
			}
			continue
		}
		axiom := substituteWildcards(rule.MainClause, assignment)
		if err := v.applyQueryRule(rule, axiom, cell, coords, sink); err != nil {
			return err
		}
	}
	return nil
}

// ruleFragments lists every wildcard-bearing part of a rule in textual
// order: the main clause, then each guard's subject and axiom.
func ruleFragments(rule Rule) []string {
	fragments := []string{rule.MainClause}
	for _, when := range rule.When {
		fragments = append(fragments, when.Subject, when.Axiom)
	}
	return fragments
}

// guardHolds evaluates every when-clause of the rule under one wildcard
// assignment. Each clause is a full query.
func (v *TableValidator) guardHolds(rule Rule, assignment map[string]string) (bool, error) {
	for _, when := range rule.When {
		subject := substituteWildcards(when.Subject, assignment)
		axiom := substituteWildcards(when.Axiom, assignment)
		ok, err := v.executeQuery(subject, axiom, when.TypeToken)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

func (v *TableValidator) applyPresenceRule(rule Rule, t RuleType, cell string, coords report.Coords, sink report.Sink) error {
	literal := strings.ToLower(strings.TrimSpace(rule.MainClause))
	switch {
	case truthFalse[literal]:
		return nil
	case truthTrue[literal]:
	default:
		return errors.Wrapf(errors.ErrInvalidPresenceValue,
			"column %d: %s %q", rule.Column, t, rule.MainClause)
	}

	blank := strings.TrimSpace(cell) == ""
	switch t {
	case TypeIsRequired:
		if blank {
			return sink.Report(coords, "cell is empty but a value is required")
		}
	case TypeIsExcluded:
		if !blank {
			return sink.Report(coords,
				fmt.Sprintf("cell contains '%s' but must be empty", cell))
		}
	}
	return nil
}

// applyQueryRule checks every pipe entry of the cell against one
// interpolated axiom. Multi-valued cells are validated entry by entry.
func (v *TableValidator) applyQueryRule(rule Rule, axiom, cell string, coords report.Coords, sink report.Sink) error {
	for _, entry := range strings.Split(cell, "|") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		ok, err := v.executeQuery(entry, axiom, rule.TypeToken)
		if err != nil {
			return errors.Wrapf(err, "column %d", rule.Column)
		}
		if ok {
			continue
		}
		msg := fmt.Sprintf("'%s' does not satisfy '%s %s' (rule: %s %s)",
			entry, rule.TypeToken, axiom, rule.TypeToken, rule.MainClause)
		if err := sink.Report(coords, msg); err != nil {
			return err
		}
	}
	return nil
}

// RenderCell renders a cell for the HTML backend: pipe entries that
// resolve to ontology entities become links to their IRIs. Verbatim
// columns carry no query rules, so lookups there would be noise.
func (v *TableValidator) RenderCell(raw string, verbatim bool) string {
	if verbatim || strings.TrimSpace(raw) == "" {
		return template.HTMLEscapeString(raw)
	}
	entries := strings.Split(raw, "|")
	rendered := make([]string, len(entries))
	for i, entry := range entries {
		trimmed := strings.TrimSpace(entry)
		label, ok := resolveLabel(trimmed, v.onto)
		if !ok {
			rendered[i] = template.HTMLEscapeString(entry)
			continue
		}
		iri, _ := v.onto.IRIForLabel(label)
		rendered[i] = fmt.Sprintf("<a href=%q>%s</a>",
			iri, template.HTMLEscapeString(label))
	}
	return strings.Join(rendered, "|")
}

func pad(row []string, width int) []string {
	if len(row) >= width {
		return row
	}
	padded := make([]string, width)
	copy(padded, row)
	return padded
}

func blankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func hasQueryRules(rules []Rule) bool {
	for _, r := range rules {
		if t, ok := r.primaryType(); ok && t.Category() == CategoryQuery {
			return true
		}
	}
	return false
}
