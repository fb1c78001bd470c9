package ontology

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ontovet/ontovet/errors"
)

// Snapshot is the on-disk ontology format: declared entities, the asserted
// axioms the reasoner closes over, and property assertions between
// individuals. Entity references inside axioms and relations may be
// labels, full IRIs, or short-form IRIs.
type Snapshot struct {
	Classes     []EntityDecl   `yaml:"classes"`
	Individuals []EntityDecl   `yaml:"individuals"`
	Properties  []EntityDecl   `yaml:"properties"`
	Axioms      AxiomDecls     `yaml:"axioms"`
	Relations   []RelationDecl `yaml:"relations"`
}

// EntityDecl declares one entity. Individuals may carry their asserted types.
type EntityDecl struct {
	IRI   string   `yaml:"iri"`
	Label string   `yaml:"label"`
	Types []string `yaml:"types,omitempty"`
}

// AxiomDecls lists asserted class axioms as [a, b] pairs.
type AxiomDecls struct {
	SubClassOf   [][]string `yaml:"subclass-of"`
	EquivalentTo [][]string `yaml:"equivalent-to"`
}

// RelationDecl asserts a property relation between two individuals.
type RelationDecl struct {
	Subject  string `yaml:"subject"`
	Property string `yaml:"property"`
	Object   string `yaml:"object"`
}

// LoadSnapshot reads a YAML ontology snapshot from disk and builds the
// immutable ontology view for a run.
func LoadSnapshot(path string) (*Ontology, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read ontology snapshot %s", path)
	}
	return ParseSnapshot(data)
}

// ParseSnapshot builds an Ontology from raw YAML snapshot bytes.
func ParseSnapshot(data []byte) (*Ontology, error) {
	var snap Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return nil, errors.Wrap(err, "failed to parse ontology snapshot")
	}

	onto := New()

	// Declare all entities before resolving any references.
	for _, c := range snap.Classes {
		if c.IRI == "" {
			return nil, errors.Newf("class declaration %q is missing an iri", c.Label)
		}
		onto.AddClass(c.IRI, c.Label)
	}
	for _, p := range snap.Properties {
		if p.IRI == "" {
			return nil, errors.Newf("property declaration %q is missing an iri", p.Label)
		}
		onto.AddProperty(p.IRI, p.Label)
	}
	for _, ind := range snap.Individuals {
		if ind.IRI == "" {
			return nil, errors.Newf("individual declaration %q is missing an iri", ind.Label)
		}
		onto.AddIndividual(ind.IRI, ind.Label)
	}

	resolve := func(term string) (string, error) {
		if iri, ok := onto.IRIForLabel(term); ok {
			return iri, nil
		}
		if onto.KindOf(term) != KindUnknown {
			return term, nil
		}
		for iri := range onto.kinds {
			if ShortForm(iri) == term {
				return iri, nil
			}
		}
		return "", errors.Newf("snapshot references undeclared entity %q", term)
	}

	for _, ind := range snap.Individuals {
		for _, typ := range ind.Types {
			class, err := resolve(typ)
			if err != nil {
				return nil, err
			}
			onto.AddTypeOf(ind.IRI, class)
		}
	}

	for _, pair := range snap.Axioms.SubClassOf {
		if len(pair) != 2 {
			return nil, errors.Newf("subclass-of axiom %v must be a [sub, super] pair", pair)
		}
		sub, err := resolve(pair[0])
		if err != nil {
			return nil, err
		}
		super, err := resolve(pair[1])
		if err != nil {
			return nil, err
		}
		onto.AddSubClassOf(sub, super)
	}
	for _, pair := range snap.Axioms.EquivalentTo {
		if len(pair) != 2 {
			return nil, errors.Newf("equivalent-to axiom %v must be an [a, b] pair", pair)
		}
		a, err := resolve(pair[0])
		if err != nil {
			return nil, err
		}
		b, err := resolve(pair[1])
		if err != nil {
			return nil, err
		}
		onto.AddEquivalentTo(a, b)
	}

	for _, rel := range snap.Relations {
		subject, err := resolve(rel.Subject)
		if err != nil {
			return nil, err
		}
		property, err := resolve(rel.Property)
		if err != nil {
			return nil, err
		}
		object, err := resolve(rel.Object)
		if err != nil {
			return nil, err
		}
		onto.AddRelation(subject, property, object)
	}

	return onto, nil
}
