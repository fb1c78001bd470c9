package reasoner

import (
	"fmt"
	"strings"

	"github.com/google/mangle/analysis"
	"github.com/google/mangle/ast"
	_ "github.com/google/mangle/builtin"
	"github.com/google/mangle/engine"
	"github.com/google/mangle/factstore"
	"github.com/google/mangle/parse"

	"github.com/ontovet/ontovet/errors"
	"github.com/ontovet/ontovet/ontology"
)

// closureProgram computes the hierarchy closure over the asserted axioms:
// subclass transitivity, equivalence symmetry and transitivity, ancestry
// bridged across equivalent classes, and instance membership propagated up
// the closed hierarchy.
const closureProgram = `
Decl subclass_of(Sub, Super).
Decl equiv_to(A, B).
Decl type_of(Ind, Class).
Decl ancestor(Sub, Super).
Decl equivalent(A, B).
Decl instance_of(Ind, Class).

ancestor(X, Y) :- subclass_of(X, Y).
ancestor(X, Y) :- subclass_of(X, Z), ancestor(Z, Y).
ancestor(X, Y) :- equivalent(X, Z), ancestor(Z, Y).
ancestor(X, Y) :- ancestor(X, Z), equivalent(Z, Y).

equivalent(X, Y) :- equiv_to(X, Y).
equivalent(X, Y) :- equiv_to(Y, X).
equivalent(X, Y) :- equivalent(X, Z), equivalent(Z, Y).

instance_of(I, C) :- type_of(I, C).
instance_of(I, C) :- type_of(I, D), ancestor(D, C).
instance_of(I, C) :- type_of(I, D), equivalent(D, C).
`

// MangleReasoner answers hierarchy queries from a Datalog fixed point
// computed once at construction. Class expressions are evaluated
// structurally over the closed hierarchy; entailment between anonymous
// expressions is structural subsumption, which is sound but not complete
// for arbitrary descriptions.
type MangleReasoner struct {
	onto *ontology.Ontology

	// Closure tables read back from the fact store.
	ancestors   map[string]IRISet // class -> strict ancestors
	descendants map[string]IRISet // class -> strict descendants
	equivalents map[string]IRISet // class -> equivalent classes (excluding self)
	members     map[string]IRISet // class -> member individuals (transitive)

	// Asserted edges, for direct queries.
	directSupers map[string]IRISet
	directSubs   map[string]IRISet
	directTypes  map[string]IRISet // class -> individuals asserted into it
}

// NewMangle builds the bundled reasoner for an ontology: asserted axioms
// become Datalog facts, the closure rules are evaluated to a fixed point,
// and the derived relations are read back into lookup tables.
func NewMangle(onto *ontology.Ontology) (*MangleReasoner, error) {
	unit, err := parse.Unit(strings.NewReader(closureProgram))
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse closure program")
	}
	programInfo, err := analysis.AnalyzeOneUnit(unit, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to analyze closure program")
	}

	// Intern IRIs as Datalog name constants; IRIs contain characters a
	// name constant cannot carry.
	names := make(map[string]ast.BaseTerm)
	iriOf := make(map[string]string)
	intern := func(iri string) (ast.BaseTerm, error) {
		if n, ok := names[iri]; ok {
			return n, nil
		}
		symbol := fmt.Sprintf("/e%d", len(names))
		n, err := ast.Name(symbol)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to intern %q", iri)
		}
		names[iri] = n
		iriOf[symbol] = iri
		return n, nil
	}

	store := factstore.NewSimpleInMemoryStore()
	addFact := func(predicate, a, b string) error {
		ta, err := intern(a)
		if err != nil {
			return err
		}
		tb, err := intern(b)
		if err != nil {
			return err
		}
		store.Add(ast.NewAtom(predicate, ta, tb))
		return nil
	}

	r := &MangleReasoner{
		onto:         onto,
		ancestors:    make(map[string]IRISet),
		descendants:  make(map[string]IRISet),
		equivalents:  make(map[string]IRISet),
		members:      make(map[string]IRISet),
		directSupers: make(map[string]IRISet),
		directSubs:   make(map[string]IRISet),
		directTypes:  make(map[string]IRISet),
	}

	for _, class := range onto.Classes() {
		for _, super := range onto.AssertedSuperclasses(class) {
			if err := addFact("subclass_of", class, super); err != nil {
				return nil, err
			}
			setAdd(r.directSupers, class, super)
			setAdd(r.directSubs, super, class)
		}
		for _, equiv := range onto.AssertedEquivalents(class) {
			if err := addFact("equiv_to", class, equiv); err != nil {
				return nil, err
			}
		}
	}
	for _, individual := range onto.Individuals() {
		for _, class := range onto.AssertedTypes(individual) {
			if err := addFact("type_of", individual, class); err != nil {
				return nil, err
			}
			setAdd(r.directTypes, class, individual)
		}
	}

	if _, err := engine.EvalProgramWithStats(programInfo, store); err != nil {
		return nil, errors.Wrap(err, "failed to evaluate closure program")
	}

	read := func(predicate string, visit func(a, b string)) error {
		pred := ast.PredicateSym{Symbol: predicate, Arity: 2}
		return store.GetFacts(ast.NewQuery(pred), func(atom ast.Atom) error {
			a, aok := nameSymbol(atom.Args[0])
			b, bok := nameSymbol(atom.Args[1])
			if !aok || !bok {
				return errors.Newf("unexpected fact shape for %s: %v", predicate, atom)
			}
			visit(iriOf[a], iriOf[b])
			return nil
		})
	}

	if err := read("ancestor", func(sub, super string) {
		setAdd(r.ancestors, sub, super)
		setAdd(r.descendants, super, sub)
	}); err != nil {
		return nil, err
	}
	if err := read("equivalent", func(a, b string) {
		if a != b {
			setAdd(r.equivalents, a, b)
		}
	}); err != nil {
		return nil, err
	}
	if err := read("instance_of", func(individual, class string) {
		setAdd(r.members, class, individual)
	}); err != nil {
		return nil, err
	}

	return r, nil
}

func setAdd(m map[string]IRISet, key, value string) {
	if m[key] == nil {
		m[key] = make(IRISet)
	}
	m[key].Add(value)
}

func nameSymbol(term ast.BaseTerm) (string, bool) {
	c, ok := term.(ast.Constant)
	if !ok || c.Type != ast.NameType {
		return "", false
	}
	return c.Symbol, true
}

// equivalenceNode returns a class together with every class equivalent to it.
func (r *MangleReasoner) equivalenceNode(iri string) IRISet {
	node := NewIRISet(iri)
	for equiv := range r.equivalents[iri] {
		node.Add(equiv)
	}
	return node
}
