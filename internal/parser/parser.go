// Package parser implements a recursive-descent parser that turns a GIANT
// token stream into an AST (§4.2). It buffers the whole token stream from
// the lexer up front (GIANT programs are small) so arbitrary lookahead —
// needed to decide whether a metadata tail
// continues onto an indented following line, or whether an indented
// '@action' line still belongs to the enclosing when-clause — is just an
// integer cursor save/restore, no lexer-level backtracking required.
//
// Parser errors are one-per-statement (§4.2): the first error in a
// statement aborts that statement only; the parser then resynchronizes to
// the next NEWLINE/EOF and keeps going, so one bad line doesn't mask
// later ones.
package parser

import (
	"strconv"
	"strings"

	"github.com/FFFF-0000h/GIANT-Language/internal/ast"
	"github.com/FFFF-0000h/GIANT-Language/internal/ifaceerr"
	"github.com/FFFF-0000h/GIANT-Language/internal/lexer"
	"github.com/FFFF-0000h/GIANT-Language/internal/token"
)

// Parser walks a fully-buffered token stream.
type Parser struct {
	tokens []token.Token
	pos    int
	errors []error
}

// New drains l completely and returns a Parser positioned at the first
// token. Any lexical errors l accumulated while scanning are carried over
// so ParseProgram reports them alongside its own.
func New(l *lexer.Lexer) *Parser {
	var toks []token.Token
	for {
		t := l.NextToken()
		toks = append(toks, t)
		if t.Type == token.EOF {
			break
		}
	}
	p := &Parser{tokens: toks}
	p.errors = append(p.errors, l.Errors()...)
	return p
}

func (p *Parser) cur() token.Token {
	return p.tokens[p.pos]
}

func (p *Parser) peek() token.Token {
	if p.pos+1 < len(p.tokens) {
		return p.tokens[p.pos+1]
	}
	return p.tokens[len(p.tokens)-1]
}

func (p *Parser) advance() {
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
}

func (p *Parser) expect(tt token.TokenType) (token.Token, error) {
	if p.cur().Type != tt {
		return token.Token{}, ifaceerr.Syntaxf(p.cur().Pos, "expected %s, got %s %q", tt, p.cur().Type, p.cur().Literal)
	}
	tok := p.cur()
	p.advance()
	return tok, nil
}

// ParseProgram parses the whole token stream into an ordered statement
// list, recovering from per-statement errors so parsing never stops
// early.
func (p *Parser) ParseProgram() (*ast.Program, []error) {
	prog := &ast.Program{}
	p.skipNewlines()
	for p.cur().Type != token.EOF {
		stmt, err := p.parseStatement()
		if err != nil {
			p.errors = append(p.errors, err)
			p.synchronize()
			p.skipNewlines()
			continue
		}
		prog.Statements = append(prog.Statements, stmt)
		if p.cur().Type == token.NEWLINE {
			p.advance()
		} else if p.cur().Type != token.EOF {
			p.errors = append(p.errors, ifaceerr.Syntaxf(p.cur().Pos, "expected end of statement, got %s %q", p.cur().Type, p.cur().Literal))
			p.synchronize()
		}
		p.skipNewlines()
	}
	return prog, p.errors
}

func (p *Parser) skipNewlines() {
	for p.cur().Type == token.NEWLINE {
		p.advance()
	}
}

// synchronize discards tokens up to (not including) the next NEWLINE or
// EOF, so the caller's skipNewlines can resume clean at the next
// statement.
func (p *Parser) synchronize() {
	for p.cur().Type != token.NEWLINE && p.cur().Type != token.EOF {
		p.advance()
	}
}

func (p *Parser) parseStatement() (ast.Statement, error) {
	switch p.cur().Type {
	case token.MAKE, token.SET, token.LET:
		return p.parseAssign()
	case token.TALK, token.SHOW, token.WETIN_BE:
		return p.parsePrint()
	case token.ANCHOR_SIGIL:
		return p.parseAnchorDecl()
	case token.LIST_ANCHORS:
		return p.parseListAnchors()
	case token.DESCRIBE_ANCHOR, token.INSPECT_ANCHOR:
		return p.parseDescribeAnchor()
	case token.RELATIONAL:
		return p.parseRelationalDecl()
	case token.WHEN:
		return p.parseWhen()
	case token.ACTION_SIGIL:
		return nil, ifaceerr.Syntaxf(p.cur().Pos, "'@action' is only valid inside a 'when' clause body")
	default:
		return nil, ifaceerr.Syntaxf(p.cur().Pos, "unexpected token %s %q", p.cur().Type, p.cur().Literal)
	}
}

// parseAssign lowers make/set/let and their connector variants to one
// AssignStatement node (§4.2).
func (p *Parser) parseAssign() (ast.Statement, error) {
	opener := p.cur()
	p.advance()

	nameTok, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}
	name := &ast.Identifier{Token: nameTok, Value: nameTok.Literal}

	switch opener.Type {
	case token.MAKE:
		if _, err := p.expect(token.BE); err != nil {
			return nil, err
		}
	case token.SET:
		if _, err := p.expect(token.TO); err != nil {
			return nil, err
		}
	case token.LET:
		if p.cur().Type != token.BE && p.cur().Type != token.BE_EQUAL_TO {
			return nil, ifaceerr.Syntaxf(p.cur().Pos, "expected 'be' or 'be equal to', got %s %q", p.cur().Type, p.cur().Literal)
		}
		p.advance()
	}

	val, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &ast.AssignStatement{Token: opener, Name: name, Value: val}, nil
}

// parsePrint lowers talk/show/"wetin be" to one PrintStatement node.
func (p *Parser) parsePrint() (ast.Statement, error) {
	tok := p.cur()
	p.advance()
	val, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &ast.PrintStatement{Token: tok, Value: val}, nil
}

func (p *Parser) parseListAnchors() (ast.Statement, error) {
	tok := p.cur()
	p.advance()
	return &ast.ListAnchorsStatement{Token: tok}, nil
}

// parseDescribeAnchor lowers describe anchor/inspect anchor to one
// DescribeAnchorStatement node.
func (p *Parser) parseDescribeAnchor() (ast.Statement, error) {
	tok := p.cur()
	p.advance()
	nameTok, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}
	return &ast.DescribeAnchorStatement{Token: tok, Name: &ast.Identifier{Token: nameTok, Value: nameTok.Literal}}, nil
}

func (p *Parser) parseAnchorDecl() (ast.Statement, error) {
	tok := p.cur() // '@anchor'
	p.advance()

	nameTok, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}
	name := &ast.Identifier{Token: nameTok, Value: nameTok.Literal}

	if _, err := p.expect(token.ASSIGN); err != nil {
		return nil, err
	}
	val, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	meta, err := p.parseMetaTail(tok.Pos.Column, false)
	if err != nil {
		return nil, err
	}
	return &ast.AnchorDecl{Token: tok, Name: name, Value: val, Metadata: meta}, nil
}

func (p *Parser) parseRelationalDecl() (ast.Statement, error) {
	tok := p.cur() // 'relational'
	p.advance()

	nameTok, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}
	name := &ast.Identifier{Token: nameTok, Value: nameTok.Literal}

	if _, err := p.expect(token.ASSIGN); err != nil {
		return nil, err
	}
	val, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RELATIVE_TO); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LBRACK); err != nil {
		return nil, err
	}

	var anchors []*ast.Identifier
	for {
		idTok, err := p.expect(token.IDENT)
		if err != nil {
			return nil, err
		}
		anchors = append(anchors, &ast.Identifier{Token: idTok, Value: idTok.Literal})
		if p.cur().Type == token.COMMA {
			p.advance()
			continue
		}
		break
	}
	if _, err := p.expect(token.RBRACK); err != nil {
		return nil, err
	}

	// Relational declarations allow their metadata tail to continue onto
	// following indented lines (§4.2).
	meta, err := p.parseMetaTail(tok.Pos.Column, true)
	if err != nil {
		return nil, err
	}
	return &ast.RelationalDecl{Token: tok, Name: name, Value: val, Anchors: anchors, Metadata: meta}, nil
}

// parseMetaTail consumes zero or more "<key> = <expr>" entries following
// a declaration's primary value. When allowMultiline is true (relational
// declarations only), it also consumes metadata continued on subsequent
// lines indented past declCol, restoring position if the next line isn't
// such a continuation.
func (p *Parser) parseMetaTail(declCol int, allowMultiline bool) ([]ast.MetaEntry, error) {
	var meta []ast.MetaEntry
	for {
		if !p.isMetaKeyStart() {
			if !allowMultiline || p.cur().Type != token.NEWLINE {
				break
			}
			saved := p.pos
			p.advance() // tentatively past the NEWLINE
			if !p.isMetaKeyStart() || p.cur().Pos.Column <= declCol {
				p.pos = saved
				break
			}
		}

		keyTok := p.cur()
		key := metaKeyName(keyTok)
		p.advance()
		if _, err := p.expect(token.ASSIGN); err != nil {
			return meta, err
		}
		val, err := p.parseExpression()
		if err != nil {
			return meta, err
		}
		meta = append(meta, ast.MetaEntry{Key: key, Value: val})
	}
	return meta, nil
}

func (p *Parser) isMetaKeyStart() bool {
	if p.peek().Type != token.ASSIGN {
		return false
	}
	switch p.cur().Type {
	case token.UNIT, token.TOLERANCE, token.DESCRIPTION, token.CONTEXT, token.CONFIDENCE, token.POLICY, token.SENSOR_ID, token.IDENT:
		return true
	}
	return false
}

func metaKeyName(tok token.Token) string {
	if name, ok := token.MetadataKeys[tok.Type]; ok {
		return name
	}
	return tok.Literal
}

// parseWhen parses a when-header and its indented @action body (§4.2).
// Per the Design Notes, a body left dangling at EOF (no dedent ever seen)
// is valid: the body is whatever was parsed before EOF.
func (p *Parser) parseWhen() (ast.Statement, error) {
	tok := p.cur()
	whenCol := tok.Pos.Column
	p.advance()

	subject, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.IS); err != nil {
		return nil, err
	}
	qualTok, err := p.expect(token.STRING)
	if err != nil {
		return nil, err
	}
	refTok, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.COLON); err != nil {
		return nil, err
	}

	if p.cur().Type == token.NEWLINE {
		p.advance()
	} else if p.cur().Type != token.EOF {
		return nil, ifaceerr.Syntaxf(p.cur().Pos, "expected newline after 'when' header, got %s %q", p.cur().Type, p.cur().Literal)
	}

	var body []ast.Statement
	for p.cur().Type == token.ACTION_SIGIL && p.cur().Pos.Column > whenCol {
		p.advance()
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		body = append(body, stmt)
		// Step past the NEWLINE only if another indented @action follows;
		// otherwise leave it so ParseProgram ends the statement there.
		if p.cur().Type == token.NEWLINE && p.peek().Type == token.ACTION_SIGIL && p.peek().Pos.Column > whenCol {
			p.advance()
		}
	}

	return &ast.WhenStatement{
		Token:     tok,
		Subject:   subject,
		Qualifier: qualTok.Literal,
		Reference: &ast.Identifier{Token: refTok, Value: refTok.Literal},
		Body:      body,
	}, nil
}

// parseExpression parses the additive precedence level, the loosest
// binding operators in the two-level grammar of §4.2.
func (p *Parser) parseExpression() (ast.Expression, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for isAdditiveOp(p.cur().Type) {
		opTok := p.cur()
		p.advance()
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		left = combineAdditive(opTok, left, right)
	}
	return left, nil
}

func (p *Parser) parseMultiplicative() (ast.Expression, error) {
	left, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for isMultiplicativeOp(p.cur().Type) {
		opTok := p.cur()
		p.advance()
		right, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		left = combineMultiplicative(opTok, left, right)
	}
	return left, nil
}

func isAdditiveOp(tt token.TokenType) bool {
	switch tt {
	case token.PLUS, token.ADDED_TO, token.MINUS, token.SUBTRACT, token.SUBTRACTED_FROM:
		return true
	}
	return false
}

func isMultiplicativeOp(tt token.TokenType) bool {
	switch tt {
	case token.TIMES, token.MULTIPLIED_BY, token.OVER, token.DIVIDED_BY:
		return true
	}
	return false
}

// combineAdditive applies the operand-order lowering of §4.2: "<a>
// subtracted from <b>" lowers to b-a, and "<a> added to <b>" lowers to
// b+a — in both cases the already-parsed left operand is 'a' and the
// just-parsed right operand is 'b', so the canonical node swaps them.
// Plain "plus"/"minus"/"subtract" keep left-to-right order.
func combineAdditive(opTok token.Token, left, right ast.Expression) ast.Expression {
	switch opTok.Type {
	case token.ADDED_TO:
		return &ast.InfixExpression{Token: opTok, Left: right, Operator: "+", Right: left}
	case token.SUBTRACTED_FROM:
		return &ast.InfixExpression{Token: opTok, Left: right, Operator: "-", Right: left}
	case token.MINUS, token.SUBTRACT:
		return &ast.InfixExpression{Token: opTok, Left: left, Operator: "-", Right: right}
	default: // PLUS
		return &ast.InfixExpression{Token: opTok, Left: left, Operator: "+", Right: right}
	}
}

func combineMultiplicative(opTok token.Token, left, right ast.Expression) ast.Expression {
	switch opTok.Type {
	case token.OVER, token.DIVIDED_BY:
		return &ast.InfixExpression{Token: opTok, Left: left, Operator: "/", Right: right}
	default: // TIMES, MULTIPLIED_BY
		return &ast.InfixExpression{Token: opTok, Left: left, Operator: "*", Right: right}
	}
}

func (p *Parser) parsePrimary() (ast.Expression, error) {
	tok := p.cur()
	switch tok.Type {
	case token.NUMBER:
		p.advance()
		return parseNumberLiteral(tok)
	case token.STRING:
		p.advance()
		return &ast.StringLiteral{Token: tok, Value: tok.Literal}, nil
	case token.IDENT:
		p.advance()
		return &ast.Identifier{Token: tok, Value: tok.Literal}, nil
	case token.LPAREN:
		p.advance()
		inner, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		return &ast.GroupedExpression{Token: tok, Inner: inner}, nil
	default:
		return nil, ifaceerr.Syntaxf(tok.Pos, "expected expression, got %s %q", tok.Type, tok.Literal)
	}
}

func parseNumberLiteral(tok token.Token) (ast.Expression, error) {
	if strings.Contains(tok.Literal, ".") {
		f, err := strconv.ParseFloat(tok.Literal, 64)
		if err != nil {
			return nil, ifaceerr.Syntaxf(tok.Pos, "invalid number literal %q", tok.Literal)
		}
		return &ast.NumberLiteral{Token: tok, IsFloat: true, FloatVal: f}, nil
	}
	i, err := strconv.ParseInt(tok.Literal, 10, 64)
	if err != nil {
		return nil, ifaceerr.Syntaxf(tok.Pos, "invalid number literal %q", tok.Literal)
	}
	return &ast.NumberLiteral{Token: tok, IntVal: i}, nil
}
