// Package eval implements the tree-walking statement/expression evaluator
// of §4.5: it executes an *ast.Program against an *environment.Environment,
// writing Print output to an io.Writer and reporting one error per
// top-level statement without aborting the run.
package eval

import (
	"fmt"
	"io"

	"github.com/FFFF-0000h/GIANT-Language/internal/ast"
	"github.com/FFFF-0000h/GIANT-Language/internal/environment"
	"github.com/FFFF-0000h/GIANT-Language/internal/ifaceerr"
	"github.com/FFFF-0000h/GIANT-Language/internal/token"
	"github.com/FFFF-0000h/GIANT-Language/internal/value"
)

// Evaluator walks statements against one environment, writing Print output
// to Out.
type Evaluator struct {
	Env *environment.Environment
	Out io.Writer
}

// New creates an Evaluator over env, writing Print output to out.
func New(env *environment.Environment, out io.Writer) *Evaluator {
	return &Evaluator{Env: env, Out: out}
}

// Run evaluates every statement in prog in order. Each statement's error,
// if any, is collected and reported; evaluation always proceeds to the
// next statement (§5, §7: "an error aborts the current statement... the
// next top-level statement proceeds").
func (e *Evaluator) Run(prog *ast.Program) []error {
	var errs []error
	for _, stmt := range prog.Statements {
		if err := e.execStatement(stmt); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

func (e *Evaluator) execStatement(stmt ast.Statement) error {
	switch s := stmt.(type) {
	case *ast.AssignStatement:
		return e.execAssign(s)
	case *ast.PrintStatement:
		return e.execPrint(s)
	case *ast.AnchorDecl:
		return e.execAnchorDecl(s)
	case *ast.ListAnchorsStatement:
		return e.execListAnchors(s)
	case *ast.DescribeAnchorStatement:
		return e.execDescribeAnchor(s)
	case *ast.RelationalDecl:
		return e.execRelationalDecl(s)
	case *ast.WhenStatement:
		return e.execWhen(s)
	default:
		return ifaceerr.Syntaxf(stmt.Pos(), "cannot execute statement of type %T", stmt)
	}
}

func (e *Evaluator) execAssign(s *ast.AssignStatement) error {
	v, err := e.evalScalar(s.Value)
	if err != nil {
		return err
	}
	e.Env.Bind(s.Name.Value, v)
	return nil
}

func (e *Evaluator) execPrint(s *ast.PrintStatement) error {
	v, err := e.evalExpr(s.Value)
	if err != nil {
		return err
	}
	fmt.Fprintln(e.Out, v.Display())
	return nil
}

// execAnchorDecl evaluates the declaration's value and metadata
// expressions, then constructs and binds the anchor. Re-declaring a name
// overwrites its prior binding, consistent with variable re-assignment
// (§4.5).
func (e *Evaluator) execAnchorDecl(s *ast.AnchorDecl) error {
	val, err := e.evalScalar(s.Value)
	if err != nil {
		return err
	}
	meta, err := e.evalMeta(s.Metadata)
	if err != nil {
		return err
	}
	anchor, err := value.NewAnchor(s.Name.Value, val, meta, s.Pos())
	if err != nil {
		return err
	}
	e.Env.Bind(s.Name.Value, anchor)
	return nil
}

func (e *Evaluator) execListAnchors(s *ast.ListAnchorsStatement) error {
	for _, a := range e.Env.Anchors() {
		fmt.Fprintln(e.Out, a.Display())
	}
	return nil
}

func (e *Evaluator) execDescribeAnchor(s *ast.DescribeAnchorStatement) error {
	a, ok := e.Env.LookupAnchor(s.Name.Value)
	if !ok {
		return ifaceerr.Namef(s.Pos(), "unknown anchor %q", s.Name.Value)
	}
	fmt.Fprintln(e.Out, a.Display())
	return nil
}

// execRelationalDecl resolves each referenced anchor name, evaluates the
// value and metadata expressions, then constructs and binds the
// relational value. A dangling anchor reference is a NameError (§3, §4.5).
func (e *Evaluator) execRelationalDecl(s *ast.RelationalDecl) error {
	val, err := e.evalScalar(s.Value)
	if err != nil {
		return err
	}

	anchors := make([]*value.Anchor, len(s.Anchors))
	for i, id := range s.Anchors {
		a, ok := e.Env.LookupAnchor(id.Value)
		if !ok {
			return ifaceerr.Namef(id.Pos(), "unknown anchor %q", id.Value)
		}
		anchors[i] = a
	}

	meta, err := e.evalMeta(s.Metadata)
	if err != nil {
		return err
	}
	rel, err := value.NewRelational(val, anchors, meta, s.Pos())
	if err != nil {
		return err
	}
	e.Env.Bind(s.Name.Value, rel)
	return nil
}

// execWhen evaluates the subject, derives its qualifier against the named
// reference anchor, and runs the body iff it matches (§4.5). If the
// subject is relational, the qualifier is the one already cached on its
// anchor list (§3: offsets are snapshotted at construction and stay
// stable even if the anchor is later re-declared), falling back to the
// live environment anchor only when the reference isn't in that list, per
// §4.3's "not referenced by r" case. A plain scalar subject always
// resolves the reference name against the live environment.
func (e *Evaluator) execWhen(s *ast.WhenStatement) error {
	subject, err := e.evalExpr(s.Subject)
	if err != nil {
		return err
	}

	if !isKnownQualifier(s.Qualifier) {
		return ifaceerr.Valuef(s.Pos(), "unknown qualifier %q", s.Qualifier)
	}

	var qual string
	switch sv := subject.(type) {
	case value.Scalar:
		if !sv.IsNumeric() {
			return ifaceerr.Typef(s.Subject.Pos(), "when subject must be numeric or relational, got %s", sv.TypeName())
		}
		refAnchor, ok := e.Env.LookupAnchor(s.Reference.Value)
		if !ok {
			return ifaceerr.Namef(s.Reference.Pos(), "unknown anchor %q", s.Reference.Value)
		}
		qual = value.Qualify(sv, refAnchor)
	case *value.Relational:
		if off, ok := sv.FindOffset(s.Reference.Value); ok {
			qual = off.Qualifier
		} else {
			refAnchor, ok := e.Env.LookupAnchor(s.Reference.Value)
			if !ok {
				return ifaceerr.Namef(s.Reference.Pos(), "unknown anchor %q", s.Reference.Value)
			}
			qual = value.Qualify(sv.Value, refAnchor)
		}
	default:
		return ifaceerr.Typef(s.Subject.Pos(), "when subject must be numeric or relational")
	}

	if qual != s.Qualifier {
		return nil
	}

	for _, bodyStmt := range s.Body {
		if err := e.execStatement(bodyStmt); err != nil {
			return err
		}
	}
	return nil
}

func isKnownQualifier(q string) bool {
	return q == "over" || q == "under" || q == "near"
}

// evalMeta evaluates each metadata entry's expression, requiring a
// scalar result (metadata values are always scalar, §3).
func (e *Evaluator) evalMeta(entries []ast.MetaEntry) ([]value.MetaEntry, error) {
	if len(entries) == 0 {
		return nil, nil
	}
	out := make([]value.MetaEntry, len(entries))
	for i, m := range entries {
		v, err := e.evalScalar(m.Value)
		if err != nil {
			return nil, err
		}
		out[i] = value.MetaEntry{Key: m.Key, Value: v}
	}
	return out, nil
}

// evalScalar evaluates expr and requires the result to be a scalar,
// rejecting anchor/relational results (assignment RHS, anchor values, and
// metadata values are always scalar expressions, §4.5).
func (e *Evaluator) evalScalar(expr ast.Expression) (value.Scalar, error) {
	v, err := e.evalExpr(expr)
	if err != nil {
		return value.Scalar{}, err
	}
	sc, ok := v.(value.Scalar)
	if !ok {
		return value.Scalar{}, ifaceerr.Typef(expr.Pos(), "expected a scalar value here")
	}
	return sc, nil
}

// evalExpr evaluates an expression to a value.Value: a plain Scalar for
// literals, arithmetic, and scalar-bound identifiers, or the bound
// *value.Anchor / *value.Relational when the identifier names one (needed
// so a 'when' subject can reference a relational value directly).
func (e *Evaluator) evalExpr(expr ast.Expression) (value.Value, error) {
	switch ex := expr.(type) {
	case *ast.NumberLiteral:
		if ex.IsFloat {
			return value.Float(ex.FloatVal), nil
		}
		return value.Int(ex.IntVal), nil
	case *ast.StringLiteral:
		return value.Str(ex.Value), nil
	case *ast.Identifier:
		v, ok := e.Env.Lookup(ex.Value)
		if !ok {
			return nil, ifaceerr.Namef(ex.Pos(), "unbound name %q", ex.Value)
		}
		return v, nil
	case *ast.GroupedExpression:
		return e.evalExpr(ex.Inner)
	case *ast.InfixExpression:
		return e.evalInfix(ex)
	default:
		return nil, ifaceerr.Syntaxf(expr.Pos(), "cannot evaluate expression of type %T", expr)
	}
}

func (e *Evaluator) evalInfix(ex *ast.InfixExpression) (value.Value, error) {
	left, err := e.evalScalar(ex.Left)
	if err != nil {
		return nil, err
	}
	right, err := e.evalScalar(ex.Right)
	if err != nil {
		return nil, err
	}
	pos := ex.Pos()
	switch ex.Operator {
	case "+":
		return applyArith(value.Add, left, right, pos)
	case "-":
		return applyArith(value.Sub, left, right, pos)
	case "*":
		return applyArith(value.Mul, left, right, pos)
	case "/":
		return applyArith(value.Div, left, right, pos)
	default:
		return nil, ifaceerr.Syntaxf(pos, "unknown operator %q", ex.Operator)
	}
}

func applyArith(op func(a, b value.Scalar, pos token.Position) (value.Scalar, error), a, b value.Scalar, pos token.Position) (value.Value, error) {
	sc, err := op(a, b, pos)
	if err != nil {
		return nil, err
	}
	return sc, nil
}
