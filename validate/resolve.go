package validate

import (
	"strings"

	"github.com/ontovet/ontovet/logger"
	"github.com/ontovet/ontovet/ontology"
)

// resolveLabel maps a raw term to a known label. One layer of surrounding
// single quotes is stripped first; an exact label match wins, then an
// exact full-IRI or short-form match. A miss is not an error.
func resolveLabel(term string, onto *ontology.Ontology) (string, bool) {
	t := strings.TrimSpace(term)
	if len(t) >= 2 && strings.HasPrefix(t, "'") && strings.HasSuffix(t, "'") {
		t = t[1 : len(t)-1]
	}
	if t == "" {
		return "", false
	}
	return onto.FindLabel(t)
}

// resolveClassExpression parses a term as a class expression, retrying
// with the term single-quoted to cover labels containing reserved words.
// quiet suppresses the miss to debug level for callers where failure is
// expected, such as cell rendering.
func resolveClassExpression(parser *ontology.ExprParser, term string, quiet bool) (ontology.Expr, bool) {
	expr, err := parser.Parse(term)
	if err == nil {
		return expr, true
	}
	expr, retryErr := parser.Parse("'" + term + "'")
	if retryErr == nil {
		return expr, true
	}
	if quiet {
		logger.Logger.Debugw("unresolvable class expression", "term", term, "error", err)
	} else {
		logger.Logger.Warnw("unresolvable class expression", "term", term, "error", err)
	}
	return nil, false
}
