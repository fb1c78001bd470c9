package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ontovet/ontovet/errors"
)

func TestInterpolateNoWildcards(t *testing.T) {
	o := testOntology()

	out, err := Interpolate("subclass-of 'Animal'", []string{"Cat"}, 1, o)
	require.NoError(t, err)
	assert.Equal(t, []string{"subclass-of 'Animal'"}, out)

	out, err = Interpolate("", []string{"Cat"}, 1, o)
	require.NoError(t, err)
	assert.Equal(t, []string{""}, out)
}

func TestInterpolateSingleWildcard(t *testing.T) {
	o := testOntology()

	out, err := Interpolate("%1", []string{"Animal"}, 2, o)
	require.NoError(t, err)
	assert.Equal(t, []string{"'Animal'"}, out)
}

func TestInterpolatePipeFanOut(t *testing.T) {
	o := testOntology()

	out, err := Interpolate("%1", []string{"Cat|Dog"}, 2, o)
	require.NoError(t, err)
	assert.Equal(t, []string{"'Cat'", "'Dog'"}, out)
}

func TestInterpolateUnresolvedParenthesized(t *testing.T) {
	o := testOntology()

	out, err := Interpolate("%1", []string{"Cat|Unicorn"}, 2, o)
	require.NoError(t, err)
	assert.Equal(t, []string{"'Cat'", "(Unicorn)"}, out)
}

func TestInterpolateShortFormAndIRI(t *testing.T) {
	o := testOntology()

	out, err := Interpolate("%1", []string{testNS + "Cat"}, 2, o)
	require.NoError(t, err)
	assert.Equal(t, []string{"'Cat'"}, out)

	out, err = Interpolate("%1", []string{"Dog"}, 2, o)
	require.NoError(t, err)
	assert.Equal(t, []string{"'Dog'"}, out)
}

func TestInterpolateCrossProduct(t *testing.T) {
	o := testOntology()

	out, err := Interpolate("%1 and %2", []string{"Cat|Dog", "Animal|Plant"}, 3, o)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"'Cat' and 'Animal'",
		"'Cat' and 'Plant'",
		"'Dog' and 'Animal'",
		"'Dog' and 'Plant'",
	}, out)
}

func TestInterpolateRepeatedWildcard(t *testing.T) {
	o := testOntology()

	out, err := Interpolate("%1 or %1", []string{"Cat|Dog"}, 2, o)
	require.NoError(t, err)
	// A repeated wildcard is one variable, not a second fan-out axis.
	assert.Equal(t, []string{"'Cat' or 'Cat'", "'Dog' or 'Dog'"}, out)
}

func TestInterpolateColumnOutOfRange(t *testing.T) {
	o := testOntology()

	_, err := Interpolate("%3", []string{"Cat", "Dog"}, 2, o)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrColumnOutOfRange)
	assert.Contains(t, err.Error(), "column 2")
	assert.Contains(t, err.Error(), `"%3"`)
	assert.Contains(t, err.Error(), "2 cells")
}
