// Package ontology holds the read-only ontology view that validation runs
// against: the label and IRI maps, entity kinds, the asserted axioms the
// reasoner closes over, and the class-expression language.
//
// An Ontology is populated once (by the snapshot loader or by tests) and is
// immutable for the duration of a validation run.
package ontology

import (
	"strings"

	"github.com/ontovet/ontovet/logger"
)

// Kind identifies what an IRI names.
type Kind int

const (
	KindUnknown Kind = iota
	KindClass
	KindIndividual
	KindProperty
)

func (k Kind) String() string {
	switch k {
	case KindClass:
		return "class"
	case KindIndividual:
		return "individual"
	case KindProperty:
		return "property"
	default:
		return "unknown"
	}
}

// Ontology is the entity and axiom view shared by the resolver and the
// reasoner. Maps are built once up front; nothing mutates them afterwards.
type Ontology struct {
	labelToIRI map[string]string
	iriToLabel map[string]string
	kinds      map[string]Kind

	subClassOf   map[string][]string // class IRI -> asserted superclass IRIs
	equivalentTo map[string][]string // class IRI -> asserted equivalent IRIs
	typeOf       map[string][]string // individual IRI -> asserted class IRIs
	relations    map[string]map[string][]string // subject IRI -> property IRI -> object IRIs

	classes     []string
	individuals []string
	properties  []string
}

// New returns an empty ontology.
func New() *Ontology {
	return &Ontology{
		labelToIRI:   make(map[string]string),
		iriToLabel:   make(map[string]string),
		kinds:        make(map[string]Kind),
		subClassOf:   make(map[string][]string),
		equivalentTo: make(map[string][]string),
		typeOf:       make(map[string][]string),
		relations:    make(map[string]map[string][]string),
	}
}

func (o *Ontology) addEntity(iri, label string, kind Kind) {
	if _, seen := o.kinds[iri]; !seen {
		switch kind {
		case KindClass:
			o.classes = append(o.classes, iri)
		case KindIndividual:
			o.individuals = append(o.individuals, iri)
		case KindProperty:
			o.properties = append(o.properties, iri)
		}
	}
	o.kinds[iri] = kind
	if label == "" {
		return
	}
	if prev, dup := o.labelToIRI[label]; dup && prev != iri {
		logger.Logger.Warnf("Duplicate rdfs:label %q. Overwriting value %q with %q", label, prev, iri)
	}
	o.labelToIRI[label] = iri
	o.iriToLabel[iri] = label
}

// AddClass declares a class with an optional label.
func (o *Ontology) AddClass(iri, label string) {
	o.addEntity(iri, label, KindClass)
}

// AddIndividual declares a named individual with an optional label.
func (o *Ontology) AddIndividual(iri, label string) {
	o.addEntity(iri, label, KindIndividual)
}

// AddProperty declares an object property with an optional label.
func (o *Ontology) AddProperty(iri, label string) {
	o.addEntity(iri, label, KindProperty)
}

// AddSubClassOf asserts sub ⊑ super.
func (o *Ontology) AddSubClassOf(sub, super string) {
	o.subClassOf[sub] = append(o.subClassOf[sub], super)
}

// AddEquivalentTo asserts a ≡ b.
func (o *Ontology) AddEquivalentTo(a, b string) {
	o.equivalentTo[a] = append(o.equivalentTo[a], b)
}

// AddTypeOf asserts that the individual is an instance of the class.
func (o *Ontology) AddTypeOf(individual, class string) {
	o.typeOf[individual] = append(o.typeOf[individual], class)
}

// AddRelation asserts a property relation between two individuals.
func (o *Ontology) AddRelation(subject, property, object string) {
	if o.relations[subject] == nil {
		o.relations[subject] = make(map[string][]string)
	}
	o.relations[subject][property] = append(o.relations[subject][property], object)
}

// LabelFor returns the rdfs:label declared for an IRI.
func (o *Ontology) LabelFor(iri string) (string, bool) {
	label, ok := o.iriToLabel[iri]
	return label, ok
}

// IRIForLabel returns the IRI a label names.
func (o *Ontology) IRIForLabel(label string) (string, bool) {
	iri, ok := o.labelToIRI[label]
	return iri, ok
}

// KindOf reports what kind of entity an IRI names.
func (o *Ontology) KindOf(iri string) Kind {
	return o.kinds[iri]
}

// FindLabel resolves a term that may be a label, a full IRI, or a
// short-form IRI to the entity's label. The label map is consulted first;
// an exact IRI or short-form match comes second. The boolean is false when
// nothing matches — that is not an error, callers decide significance.
func (o *Ontology) FindLabel(term string) (string, bool) {
	if _, ok := o.labelToIRI[term]; ok {
		return term, true
	}
	for iri, label := range o.iriToLabel {
		if iri == term || ShortForm(iri) == term {
			return label, true
		}
	}
	return "", false
}

// Classes returns the declared class IRIs. Callers must not mutate.
func (o *Ontology) Classes() []string { return o.classes }

// Individuals returns the declared individual IRIs. Callers must not mutate.
func (o *Ontology) Individuals() []string { return o.individuals }

// Properties returns the declared property IRIs. Callers must not mutate.
func (o *Ontology) Properties() []string { return o.properties }

// AssertedSuperclasses returns the directly asserted superclasses of a class.
func (o *Ontology) AssertedSuperclasses(iri string) []string { return o.subClassOf[iri] }

// AssertedEquivalents returns the directly asserted equivalents of a class.
func (o *Ontology) AssertedEquivalents(iri string) []string { return o.equivalentTo[iri] }

// AssertedTypes returns the directly asserted classes of an individual.
func (o *Ontology) AssertedTypes(iri string) []string { return o.typeOf[iri] }

// Objects returns the objects related to subject through property.
func (o *Ontology) Objects(subject, property string) []string {
	return o.relations[subject][property]
}

// ShortForm returns the fragment of an IRI: the part after '#' when
// present, otherwise the last path segment.
func ShortForm(iri string) string {
	if i := strings.LastIndex(iri, "#"); i >= 0 {
		return iri[i+1:]
	}
	if i := strings.LastIndex(iri, "/"); i >= 0 {
		return iri[i+1:]
	}
	return iri
}
