// Package reasoner defines the query interface the validator consumes and
// provides the bundled Datalog-backed implementation.
//
// The validator only ever asks six questions: the (direct) subclasses,
// superclasses, equivalents or instances of a class expression, and whether
// a subclass-of or equivalence axiom between two expressions is entailed.
// Anything answering those questions can stand in for the bundled backend.
package reasoner

import (
	"github.com/ontovet/ontovet/ontology"
)

// IRISet is a set of entity IRIs returned by node-set queries.
type IRISet map[string]struct{}

// NewIRISet builds a set from the given IRIs.
func NewIRISet(iris ...string) IRISet {
	s := make(IRISet, len(iris))
	for _, iri := range iris {
		s[iri] = struct{}{}
	}
	return s
}

// Add inserts an IRI into the set.
func (s IRISet) Add(iri string) { s[iri] = struct{}{} }

// Contains reports whether the set holds the IRI.
func (s IRISet) Contains(iri string) bool {
	_, ok := s[iri]
	return ok
}

// Reasoner computes logical entailments over an ontology. Implementations
// are read-only with respect to the ontology and safe for repeated queries
// within a single-threaded run.
type Reasoner interface {
	// Subclasses returns the named classes strictly subsumed by expr.
	// With direct set, only asserted (one-step) subclasses are returned.
	Subclasses(expr ontology.Expr, direct bool) (IRISet, error)

	// Superclasses returns the named classes strictly subsuming expr.
	Superclasses(expr ontology.Expr, direct bool) (IRISet, error)

	// Equivalents returns the named classes equivalent to expr, including
	// expr itself when it is named.
	Equivalents(expr ontology.Expr) (IRISet, error)

	// Instances returns the named individuals that are members of expr.
	// With direct set, only individuals asserted into expr's equivalence
	// node are returned.
	Instances(expr ontology.Expr, direct bool) (IRISet, error)

	// IsEntailedSubClassOf reports whether sub ⊑ super follows from the
	// ontology's axioms.
	IsEntailedSubClassOf(sub, super ontology.Expr) (bool, error)

	// IsEntailedEquivalent reports whether a ≡ b follows from the
	// ontology's axioms.
	IsEntailedEquivalent(a, b ontology.Expr) (bool, error)
}
