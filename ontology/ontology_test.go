package ontology

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ns = "http://example.com/onto#"

func zooOntology() *Ontology {
	o := New()
	o.AddClass(ns+"Animal", "Animal")
	o.AddClass(ns+"Cat", "Cat")
	o.AddClass(ns+"BigCat", "big cat")
	o.AddProperty(ns+"part_of", "part of")
	o.AddIndividual(ns+"felix", "Felix")
	o.AddSubClassOf(ns+"Cat", ns+"Animal")
	o.AddTypeOf(ns+"felix", ns+"Cat")
	return o
}

func TestFindLabel(t *testing.T) {
	o := zooOntology()

	tests := []struct {
		name  string
		term  string
		want  string
		found bool
	}{
		{name: "exact label", term: "Cat", want: "Cat", found: true},
		{name: "full IRI", term: ns + "Cat", want: "Cat", found: true},
		{name: "short form", term: "BigCat", want: "big cat", found: true},
		{name: "individual label", term: "Felix", want: "Felix", found: true},
		{name: "unknown term", term: "Unicorn", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := o.FindLabel(tt.term)
			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestShortForm(t *testing.T) {
	assert.Equal(t, "Cat", ShortForm("http://example.com/onto#Cat"))
	assert.Equal(t, "Cat", ShortForm("http://example.com/onto/Cat"))
	assert.Equal(t, "Cat", ShortForm("Cat"))
}

func TestKindOf(t *testing.T) {
	o := zooOntology()
	assert.Equal(t, KindClass, o.KindOf(ns+"Cat"))
	assert.Equal(t, KindIndividual, o.KindOf(ns+"felix"))
	assert.Equal(t, KindProperty, o.KindOf(ns+"part_of"))
	assert.Equal(t, KindUnknown, o.KindOf(ns+"nope"))
}

func TestExprParser(t *testing.T) {
	o := zooOntology()
	p := NewExprParser(o)

	t.Run("named class by label", func(t *testing.T) {
		expr, err := p.Parse("Cat")
		require.NoError(t, err)
		named, ok := IsNamed(expr)
		require.True(t, ok)
		assert.Equal(t, ns+"Cat", named.IRI)
	})

	t.Run("quoted label with whitespace", func(t *testing.T) {
		expr, err := p.Parse("'big cat'")
		require.NoError(t, err)
		named, ok := IsNamed(expr)
		require.True(t, ok)
		assert.Equal(t, ns+"BigCat", named.IRI)
	})

	t.Run("intersection", func(t *testing.T) {
		expr, err := p.Parse("Cat and Animal")
		require.NoError(t, err)
		and, ok := expr.(And)
		require.True(t, ok)
		assert.Len(t, and.Operands, 2)
	})

	t.Run("restriction", func(t *testing.T) {
		expr, err := p.Parse("'part of' some Animal")
		require.NoError(t, err)
		some, ok := expr.(Some)
		require.True(t, ok)
		assert.Equal(t, ns+"part_of", some.Property.IRI)
	})

	t.Run("nested with not and or", func(t *testing.T) {
		expr, err := p.Parse("(Cat or 'big cat') and not ('part of' some Animal)")
		require.NoError(t, err)
		and, ok := expr.(And)
		require.True(t, ok)
		require.Len(t, and.Operands, 2)
		_, ok = and.Operands[0].(Or)
		assert.True(t, ok)
		_, ok = and.Operands[1].(Not)
		assert.True(t, ok)
	})

	t.Run("unknown term is a parse error", func(t *testing.T) {
		_, err := p.Parse("Unicorn")
		require.Error(t, err)
		assert.True(t, IsParseError(err))
	})

	t.Run("restriction on non-property is a parse error", func(t *testing.T) {
		_, err := p.Parse("Cat some Animal")
		require.Error(t, err)
		assert.True(t, IsParseError(err))
	})

	t.Run("trailing garbage is a parse error", func(t *testing.T) {
		_, err := p.Parse("Cat Animal")
		require.Error(t, err)
		assert.True(t, IsParseError(err))
	})

	t.Run("unterminated quote is a parse error", func(t *testing.T) {
		_, err := p.Parse("'big cat")
		require.Error(t, err)
		assert.True(t, IsParseError(err))
	})
}

func TestExprString(t *testing.T) {
	o := zooOntology()
	p := NewExprParser(o)

	expr, err := p.Parse("'part of' some ('big cat' and Animal)")
	require.NoError(t, err)
	assert.Equal(t, "('part of' some ('big cat' and Animal))", expr.String())
}

func TestParseSnapshot(t *testing.T) {
	snapshot := `
classes:
  - {iri: "http://example.com/onto#Animal", label: Animal}
  - {iri: "http://example.com/onto#Cat", label: Cat}
  - {iri: "http://example.com/onto#Feline", label: Feline}
properties:
  - {iri: "http://example.com/onto#part_of", label: part of}
individuals:
  - {iri: "http://example.com/onto#felix", label: Felix, types: [Cat]}
axioms:
  subclass-of:
    - [Cat, Animal]
  equivalent-to:
    - [Cat, Feline]
relations:
  - {subject: Felix, property: part of, object: Felix}
`
	onto, err := ParseSnapshot([]byte(snapshot))
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{ns + "Animal", ns + "Cat", ns + "Feline"}, onto.Classes())
	assert.Equal(t, []string{ns + "Animal"}, onto.AssertedSuperclasses(ns+"Cat"))
	assert.Equal(t, []string{ns + "Feline"}, onto.AssertedEquivalents(ns+"Cat"))
	assert.Equal(t, []string{ns + "Cat"}, onto.AssertedTypes(ns+"felix"))
	assert.Equal(t, []string{ns + "felix"}, onto.Objects(ns+"felix", ns+"part_of"))
}

func TestParseSnapshotUndeclaredReference(t *testing.T) {
	snapshot := `
classes:
  - {iri: "http://example.com/onto#Cat", label: Cat}
axioms:
  subclass-of:
    - [Cat, Animal]
`
	_, err := ParseSnapshot([]byte(snapshot))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "undeclared entity")
}
