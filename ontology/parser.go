package ontology

import (
	"fmt"
	"strings"

	"github.com/ontovet/ontovet/errors"
)

// ParseError is the distinguishable failure raised when a term cannot be
// read as a class expression over the ontology's vocabulary.
type ParseError struct {
	Input string
	Pos   int
	Msg   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse class expression %q at offset %d: %s", e.Input, e.Pos, e.Msg)
}

// IsParseError reports whether err is or wraps a *ParseError.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}

// ExprParser parses Manchester-style class expressions against an
// ontology's labels and IRIs.
//
// Grammar, loosest binding first:
//
//	expression  := conjunction ("or" conjunction)*
//	conjunction := unary ("and" unary)*
//	unary       := "not" unary | restriction
//	restriction := primary (("some" | "only") unary)?
//	primary     := "(" expression ")" | name
//
// A name is a bare word, a single-quoted label (which may contain
// whitespace), a full IRI, or a short-form IRI.
type ExprParser struct {
	onto *Ontology
}

// NewExprParser returns a parser bound to the given ontology.
func NewExprParser(o *Ontology) *ExprParser {
	return &ExprParser{onto: o}
}

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokLParen
	tokRParen
	tokWord
	tokQuoted
)

type token struct {
	kind tokenKind
	text string
	pos  int
}

func tokenize(input string) ([]token, error) {
	var tokens []token
	runes := []rune(input)
	i := 0
	for i < len(runes) {
		r := runes[i]
		switch {
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			i++
		case r == '(':
			tokens = append(tokens, token{tokLParen, "(", i})
			i++
		case r == ')':
			tokens = append(tokens, token{tokRParen, ")", i})
			i++
		case r == '\'':
			start := i
			i++
			for i < len(runes) && runes[i] != '\'' {
				i++
			}
			if i >= len(runes) {
				return nil, &ParseError{Input: input, Pos: start, Msg: "unterminated quoted label"}
			}
			tokens = append(tokens, token{tokQuoted, string(runes[start+1 : i]), start})
			i++
		default:
			start := i
			for i < len(runes) && !strings.ContainsRune(" \t\n\r()'", runes[i]) {
				i++
			}
			tokens = append(tokens, token{tokWord, string(runes[start:i]), start})
		}
	}
	tokens = append(tokens, token{tokEOF, "", len(runes)})
	return tokens, nil
}

// Parse parses input into a class expression. Failures are reported as
// *ParseError so callers can tell a vocabulary miss from everything else.
func (p *ExprParser) Parse(input string) (Expr, error) {
	if strings.TrimSpace(input) == "" {
		return nil, &ParseError{Input: input, Pos: 0, Msg: "empty expression"}
	}
	tokens, err := tokenize(input)
	if err != nil {
		return nil, err
	}
	s := &parseState{parser: p, input: input, tokens: tokens}
	expr, err := s.parseExpression()
	if err != nil {
		return nil, err
	}
	if s.peek().kind != tokEOF {
		return nil, &ParseError{Input: input, Pos: s.peek().pos, Msg: fmt.Sprintf("unexpected %q after expression", s.peek().text)}
	}
	return expr, nil
}

type parseState struct {
	parser *ExprParser
	input  string
	tokens []token
	idx    int
}

func (s *parseState) peek() token { return s.tokens[s.idx] }

func (s *parseState) next() token {
	t := s.tokens[s.idx]
	if t.kind != tokEOF {
		s.idx++
	}
	return t
}

func (s *parseState) peekKeyword(word string) bool {
	t := s.peek()
	return t.kind == tokWord && t.text == word
}

func (s *parseState) parseExpression() (Expr, error) {
	first, err := s.parseConjunction()
	if err != nil {
		return nil, err
	}
	operands := []Expr{first}
	for s.peekKeyword("or") {
		s.next()
		operand, err := s.parseConjunction()
		if err != nil {
			return nil, err
		}
		operands = append(operands, operand)
	}
	if len(operands) == 1 {
		return first, nil
	}
	return Or{Operands: operands}, nil
}

func (s *parseState) parseConjunction() (Expr, error) {
	first, err := s.parseUnary()
	if err != nil {
		return nil, err
	}
	operands := []Expr{first}
	for s.peekKeyword("and") {
		s.next()
		operand, err := s.parseUnary()
		if err != nil {
			return nil, err
		}
		operands = append(operands, operand)
	}
	if len(operands) == 1 {
		return first, nil
	}
	return And{Operands: operands}, nil
}

func (s *parseState) parseUnary() (Expr, error) {
	if s.peekKeyword("not") {
		s.next()
		operand, err := s.parseUnary()
		if err != nil {
			return nil, err
		}
		return Not{Operand: operand}, nil
	}
	return s.parseRestriction()
}

func (s *parseState) parseRestriction() (Expr, error) {
	primary, err := s.parsePrimary()
	if err != nil {
		return nil, err
	}
	if !s.peekKeyword("some") && !s.peekKeyword("only") {
		return primary, nil
	}
	quantifier := s.next()
	property, ok := IsNamed(primary)
	if !ok {
		return nil, &ParseError{Input: s.input, Pos: quantifier.pos, Msg: "restriction requires a named property on the left"}
	}
	if s.parser.onto.KindOf(property.IRI) != KindProperty {
		return nil, &ParseError{Input: s.input, Pos: quantifier.pos, Msg: fmt.Sprintf("%q is not an object property", property.String())}
	}
	filler, err := s.parseUnary()
	if err != nil {
		return nil, err
	}
	if quantifier.text == "some" {
		return Some{Property: property, Filler: filler}, nil
	}
	return Only{Property: property, Filler: filler}, nil
}

func (s *parseState) parsePrimary() (Expr, error) {
	t := s.next()
	switch t.kind {
	case tokLParen:
		inner, err := s.parseExpression()
		if err != nil {
			return nil, err
		}
		if closing := s.next(); closing.kind != tokRParen {
			return nil, &ParseError{Input: s.input, Pos: closing.pos, Msg: "missing closing parenthesis"}
		}
		return inner, nil
	case tokWord, tokQuoted:
		return s.resolveName(t)
	case tokEOF:
		return nil, &ParseError{Input: s.input, Pos: t.pos, Msg: "unexpected end of expression"}
	default:
		return nil, &ParseError{Input: s.input, Pos: t.pos, Msg: fmt.Sprintf("unexpected %q", t.text)}
	}
}

func (s *parseState) resolveName(t token) (Expr, error) {
	onto := s.parser.onto
	if iri, ok := onto.IRIForLabel(t.text); ok {
		return Named{IRI: iri, Label: t.text}, nil
	}
	if onto.KindOf(t.text) != KindUnknown {
		label, _ := onto.LabelFor(t.text)
		return Named{IRI: t.text, Label: label}, nil
	}
	// Short-form scan, matching the resolver's third tier.
	for _, pool := range [][]string{onto.Classes(), onto.Individuals(), onto.Properties()} {
		for _, iri := range pool {
			if ShortForm(iri) == t.text {
				label, _ := onto.LabelFor(iri)
				return Named{IRI: iri, Label: label}, nil
			}
		}
	}
	return nil, &ParseError{Input: s.input, Pos: t.pos, Msg: fmt.Sprintf("unknown term %q", t.text)}
}
