package reasoner

import (
	"github.com/ontovet/ontovet/ontology"
)

// Subclasses implements Reasoner. The strict subclasses of a named class
// come straight from the closure tables; for an anonymous expression the
// named classes are screened by structural entailment.
func (r *MangleReasoner) Subclasses(expr ontology.Expr, direct bool) (IRISet, error) {
	if named, ok := ontology.IsNamed(expr); ok {
		if direct {
			result := make(IRISet)
			for class := range r.equivalenceNode(named.IRI) {
				for sub := range r.directSubs[class] {
					result.Add(sub)
				}
			}
			return result, nil
		}
		return copySet(r.descendants[named.IRI]), nil
	}

	result := make(IRISet)
	for _, class := range r.onto.Classes() {
		subject := r.namedClass(class)
		if r.entailsSub(subject, expr) && !r.entailsEquiv(subject, expr) {
			result.Add(class)
		}
	}
	return result, nil
}

// Superclasses implements Reasoner.
func (r *MangleReasoner) Superclasses(expr ontology.Expr, direct bool) (IRISet, error) {
	if named, ok := ontology.IsNamed(expr); ok {
		if direct {
			result := make(IRISet)
			for class := range r.equivalenceNode(named.IRI) {
				for super := range r.directSupers[class] {
					result.Add(super)
				}
			}
			return result, nil
		}
		return copySet(r.ancestors[named.IRI]), nil
	}

	result := make(IRISet)
	for _, class := range r.onto.Classes() {
		super := r.namedClass(class)
		if r.entailsSub(expr, super) && !r.entailsEquiv(super, expr) {
			result.Add(class)
		}
	}
	return result, nil
}

// Equivalents implements Reasoner.
func (r *MangleReasoner) Equivalents(expr ontology.Expr) (IRISet, error) {
	if named, ok := ontology.IsNamed(expr); ok {
		return r.equivalenceNode(named.IRI), nil
	}
	result := make(IRISet)
	for _, class := range r.onto.Classes() {
		if r.entailsEquiv(r.namedClass(class), expr) {
			result.Add(class)
		}
	}
	return result, nil
}

// Instances implements Reasoner. Direct membership of an anonymous
// expression collapses to full membership; an anonymous description has no
// asserted members of its own.
func (r *MangleReasoner) Instances(expr ontology.Expr, direct bool) (IRISet, error) {
	if named, ok := ontology.IsNamed(expr); ok && direct {
		result := make(IRISet)
		for class := range r.equivalenceNode(named.IRI) {
			for individual := range r.directTypes[class] {
				result.Add(individual)
			}
		}
		return result, nil
	}
	return r.membersOf(expr), nil
}

// IsEntailedSubClassOf implements Reasoner.
func (r *MangleReasoner) IsEntailedSubClassOf(sub, super ontology.Expr) (bool, error) {
	return r.entailsSub(sub, super), nil
}

// IsEntailedEquivalent implements Reasoner.
func (r *MangleReasoner) IsEntailedEquivalent(a, b ontology.Expr) (bool, error) {
	return r.entailsEquiv(a, b), nil
}

func (r *MangleReasoner) namedClass(iri string) ontology.Named {
	label, _ := r.onto.LabelFor(iri)
	return ontology.Named{IRI: iri, Label: label}
}

func copySet(s IRISet) IRISet {
	result := make(IRISet, len(s))
	for iri := range s {
		result.Add(iri)
	}
	return result
}

// membersOf evaluates an expression to its member individuals over the
// closed hierarchy and the asserted property relations.
func (r *MangleReasoner) membersOf(expr ontology.Expr) IRISet {
	switch e := expr.(type) {
	case ontology.Named:
		return copySet(r.members[e.IRI])
	case ontology.And:
		result := r.membersOf(e.Operands[0])
		for _, operand := range e.Operands[1:] {
			other := r.membersOf(operand)
			for individual := range result {
				if !other.Contains(individual) {
					delete(result, individual)
				}
			}
		}
		return result
	case ontology.Or:
		result := make(IRISet)
		for _, operand := range e.Operands {
			for individual := range r.membersOf(operand) {
				result.Add(individual)
			}
		}
		return result
	case ontology.Not:
		excluded := r.membersOf(e.Operand)
		result := make(IRISet)
		for _, individual := range r.onto.Individuals() {
			if !excluded.Contains(individual) {
				result.Add(individual)
			}
		}
		return result
	case ontology.Some:
		filler := r.membersOf(e.Filler)
		result := make(IRISet)
		for _, individual := range r.onto.Individuals() {
			for _, object := range r.onto.Objects(individual, e.Property.IRI) {
				if filler.Contains(object) {
					result.Add(individual)
					break
				}
			}
		}
		return result
	case ontology.Only:
		filler := r.membersOf(e.Filler)
		result := make(IRISet)
		for _, individual := range r.onto.Individuals() {
			all := true
			for _, object := range r.onto.Objects(individual, e.Property.IRI) {
				if !filler.Contains(object) {
					all = false
					break
				}
			}
			if all {
				result.Add(individual)
			}
		}
		return result
	default:
		return make(IRISet)
	}
}

// entailsSub implements structural subsumption over the closed hierarchy.
// Sound but not complete: axioms between anonymous descriptions are only
// derived when the descriptions decompose into comparable parts.
func (r *MangleReasoner) entailsSub(a, b ontology.Expr) bool {
	if na, aok := ontology.IsNamed(a); aok {
		if nb, bok := ontology.IsNamed(b); bok {
			return na.IRI == nb.IRI ||
				r.ancestors[na.IRI].Contains(nb.IRI) ||
				r.equivalents[na.IRI].Contains(nb.IRI)
		}
	}

	// a ⊑ (b1 and b2 ...) needs every part.
	if and, ok := b.(ontology.And); ok {
		for _, operand := range and.Operands {
			if !r.entailsSub(a, operand) {
				return false
			}
		}
		return true
	}
	// (a1 or a2 ...) ⊑ b needs every disjunct.
	if or, ok := a.(ontology.Or); ok {
		for _, operand := range or.Operands {
			if !r.entailsSub(operand, b) {
				return false
			}
		}
		return true
	}
	// (a1 and a2 ...) ⊑ b holds when any conjunct is subsumed.
	if and, ok := a.(ontology.And); ok {
		for _, operand := range and.Operands {
			if r.entailsSub(operand, b) {
				return true
			}
		}
	}
	// a ⊑ (b1 or b2 ...) holds when any part subsumes.
	if or, ok := b.(ontology.Or); ok {
		for _, operand := range or.Operands {
			if r.entailsSub(a, operand) {
				return true
			}
		}
	}
	if sa, ok := a.(ontology.Some); ok {
		if sb, ok := b.(ontology.Some); ok && sa.Property.IRI == sb.Property.IRI {
			return r.entailsSub(sa.Filler, sb.Filler)
		}
	}
	if oa, ok := a.(ontology.Only); ok {
		if ob, ok := b.(ontology.Only); ok && oa.Property.IRI == ob.Property.IRI {
			return r.entailsSub(oa.Filler, ob.Filler)
		}
	}
	if notA, ok := a.(ontology.Not); ok {
		if notB, ok := b.(ontology.Not); ok {
			return r.entailsSub(notB.Operand, notA.Operand)
		}
	}
	return false
}

func (r *MangleReasoner) entailsEquiv(a, b ontology.Expr) bool {
	return r.entailsSub(a, b) && r.entailsSub(b, a)
}
