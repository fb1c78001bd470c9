package validate

import (
	"strings"

	"github.com/ontovet/ontovet/errors"
	"github.com/ontovet/ontovet/logger"
	"github.com/ontovet/ontovet/ontology"
)

// subjectKind tags how a query subject resolved.
type subjectKind int

const (
	subjectClass subjectKind = iota + 1
	subjectIndividual
	subjectExpression
)

// querySubject is a subject term resolved once before dispatch: a named
// class, a named individual, or an anonymous class expression.
type querySubject struct {
	kind  subjectKind
	iri   string        // named kinds
	label string        // named kinds
	expr  ontology.Expr // all kinds; anonymous for subjectExpression
}

// resolveSubject applies the three-tier fallback: label (or IRI/short
// form) first, then class-expression parsing. The second return is false
// when the term resolves to nothing usable.
func (v *TableValidator) resolveSubject(term string) (querySubject, bool) {
	if label, ok := resolveLabel(term, v.onto); ok {
		iri, _ := v.onto.IRIForLabel(label)
		named := ontology.Named{IRI: iri, Label: label}
		switch v.onto.KindOf(iri) {
		case ontology.KindIndividual:
			return querySubject{kind: subjectIndividual, iri: iri, label: label, expr: named}, true
		default:
			return querySubject{kind: subjectClass, iri: iri, label: label, expr: named}, true
		}
	}
	expr, ok := resolveClassExpression(v.parser, term, false)
	if !ok {
		return querySubject{}, false
	}
	return querySubject{kind: subjectExpression, expr: expr}, true
}

// executeQuery checks whether subject satisfies the (possibly compound)
// query type against the axiom text. Compound types are a disjunction
// and short-circuit on the first satisfied alternative. Unrecognized
// alternatives are a hard error; alternatives that cannot apply to the
// subject's kind are logged and skipped.
func (v *TableValidator) executeQuery(subjectTerm, axiom, typeToken string) (bool, error) {
	// Resolve every alternative first so a typo is caught even when an
	// earlier alternative would short-circuit the disjunction.
	alts := strings.Split(typeToken, "|")
	types := make([]RuleType, 0, len(alts))
	for _, alt := range alts {
		qt, known := LookupRuleType(alt)
		if !known {
			return false, errors.Wrapf(errors.ErrUnrecognizedQueryType, "query type %q", alt)
		}
		types = append(types, qt)
	}

	target, ok := resolveClassExpression(v.parser, axiom, false)
	if !ok {
		// Degrades to an ordinary failed check; the caller reports it.
		return false, nil
	}
	subject, ok := v.resolveSubject(subjectTerm)
	if !ok {
		return false, nil
	}

	for i, qt := range types {
		if qt.Category() != CategoryQuery {
			logger.Logger.Errorw("non-query rule type in query position, skipping",
				"type", alts[i], "subject", subjectTerm)
			continue
		}
		satisfied, err := v.querySatisfied(subject, qt, target)
		if err != nil {
			return false, err
		}
		if satisfied {
			return true, nil
		}
	}
	return false, nil
}

func (v *TableValidator) querySatisfied(subject querySubject, qt RuleType, target ontology.Expr) (bool, error) {
	switch subject.kind {
	case subjectIndividual:
		switch qt {
		case TypeInstanceOf, TypeDirectInstanceOf:
			set, err := v.rsn.Instances(target, qt == TypeDirectInstanceOf)
			if err != nil {
				return false, err
			}
			return set.Contains(subject.iri), nil
		}
		logger.Logger.Errorw("query type does not apply to a named individual, skipping",
			"type", qt.String(), "subject", subject.label)
		return false, nil

	case subjectClass:
		switch qt {
		case TypeSubclassOf, TypeDirectSubclassOf:
			set, err := v.rsn.Subclasses(target, qt == TypeDirectSubclassOf)
			if err != nil {
				return false, err
			}
			return set.Contains(subject.iri), nil
		case TypeSuperclassOf, TypeDirectSuperclassOf:
			set, err := v.rsn.Superclasses(target, qt == TypeDirectSuperclassOf)
			if err != nil {
				return false, err
			}
			return set.Contains(subject.iri), nil
		case TypeEquivalentTo:
			set, err := v.rsn.Equivalents(target)
			if err != nil {
				return false, err
			}
			return set.Contains(subject.iri), nil
		}
		logger.Logger.Errorw("query type does not apply to a named class, skipping",
			"type", qt.String(), "subject", subject.label)
		return false, nil

	case subjectExpression:
		switch qt {
		case TypeSubclassOf:
			return v.rsn.IsEntailedSubClassOf(subject.expr, target)
		case TypeSuperclassOf:
			return v.rsn.IsEntailedSubClassOf(target, subject.expr)
		case TypeEquivalentTo:
			return v.rsn.IsEntailedEquivalent(subject.expr, target)
		}
		logger.Logger.Errorw("query type does not apply to an anonymous expression, skipping",
			"type", qt.String(), "subject", subject.expr.String())
		return false, nil
	}
	return false, errors.AssertionFailedf("unhandled subject kind %d", subject.kind)
}
