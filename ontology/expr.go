package ontology

import "strings"

// Expr is a class expression: either a named class or individual, or an
// anonymous description built from intersections, unions, complements and
// property restrictions.
type Expr interface {
	isExpr()
	// String renders the expression in Manchester style, quoting labels
	// that contain whitespace.
	String() string
}

// Named refers to a declared entity by IRI, carrying its label when known.
type Named struct {
	IRI   string
	Label string
}

// And is an intersection of class expressions.
type And struct {
	Operands []Expr
}

// Or is a union of class expressions.
type Or struct {
	Operands []Expr
}

// Not is the complement of a class expression.
type Not struct {
	Operand Expr
}

// Some is an existential restriction: property some filler.
type Some struct {
	Property Named
	Filler   Expr
}

// Only is a universal restriction: property only filler.
type Only struct {
	Property Named
	Filler   Expr
}

func (Named) isExpr() {}
func (And) isExpr()   {}
func (Or) isExpr()    {}
func (Not) isExpr()   {}
func (Some) isExpr()  {}
func (Only) isExpr()  {}

func (n Named) String() string {
	name := n.Label
	if name == "" {
		name = ShortForm(n.IRI)
	}
	if strings.ContainsAny(name, " \t") {
		return "'" + name + "'"
	}
	return name
}

func joinOperands(operands []Expr, op string) string {
	parts := make([]string, len(operands))
	for i, o := range operands {
		parts[i] = o.String()
	}
	return "(" + strings.Join(parts, " "+op+" ") + ")"
}

func (a And) String() string { return joinOperands(a.Operands, "and") }
func (o Or) String() string  { return joinOperands(o.Operands, "or") }

func (n Not) String() string { return "(not " + n.Operand.String() + ")" }

func (s Some) String() string {
	return "(" + s.Property.String() + " some " + s.Filler.String() + ")"
}

func (o Only) String() string {
	return "(" + o.Property.String() + " only " + o.Filler.String() + ")"
}

// IsNamed reports whether e is a bare named entity and returns it.
func IsNamed(e Expr) (Named, bool) {
	n, ok := e.(Named)
	return n, ok
}
