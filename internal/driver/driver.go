package driver

import (
	"fmt"

	"scopewalk"
)

// exprResult describes what parsing an expression produced, in just enough
// detail for the caller to decide how the result is used: bare holds whether
// the expression was nothing but an identifier reference whose fate (read,
// assignment target, typeof operand) is still undecided. Anything more
// complex than a bare identifier is resolved as a use the moment it is
// folded into something bigger.
type exprResult struct {
	bare bool
	tok  Token
}

// Parser drives a scopewalk.Analyzer from a JS-subset token stream in a
// single forward pass; it never builds an AST.
type Parser struct {
	tokens   []Token
	current  int
	analyzer *scopewalk.Analyzer
}

// Analyze lexes and parses source, feeding the analyzer as it goes, and
// reports structural parse failures as an error. Diagnostics about the
// program's variable bindings go to the analyzer's own Sink instead of this
// return value: a malformed program is a Go error, a well-formed program
// with a scoping problem is a diagnostic.
func Analyze(source string, a *scopewalk.Analyzer) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("driver: %v", r)
		}
	}()

	tokens := NewLexer(source).ScanTokens()
	p := &Parser{tokens: tokens, analyzer: a}

	for !p.atEnd() {
		p.statement()
	}

	a.EndOfModule()

	return nil
}

func identFromToken(tok Token) scopewalk.Identifier {
	return scopewalk.NewIdentifier(tok.Lexeme, scopewalk.SourceRange{Begin: tok.Begin, End: tok.End})
}

func variableKindOf(t TokenType) scopewalk.VariableKind {
	switch t {
	case VAR:
		return scopewalk.VariableKindVar
	case LET:
		return scopewalk.VariableKindLet
	case CONST:
		return scopewalk.VariableKindConst
	default:
		panic(fmt.Sprintf("driver: %v is not a variable-declaring keyword", t))
	}
}

// --- token cursor helpers ---

func (p *Parser) atEnd() bool { return p.tokens[p.current].Type == EOF }

func (p *Parser) peekTok() Token { return p.tokens[p.current] }

func (p *Parser) peekType(offset int) TokenType {
	idx := p.current + offset
	if idx >= len(p.tokens) {
		return EOF
	}

	return p.tokens[idx].Type
}

func (p *Parser) check(t TokenType) bool { return p.peekTok().Type == t }

func (p *Parser) advance() Token {
	tok := p.tokens[p.current]
	if tok.Type != EOF {
		p.current++
	}

	return tok
}

func (p *Parser) match(t TokenType) bool {
	if !p.check(t) {
		return false
	}

	p.advance()

	return true
}

func (p *Parser) expect(t TokenType) Token {
	if !p.check(t) {
		panic(fmt.Sprintf("line %d: expected %v, found %v %q", p.peekTok().Line, t, p.peekTok().Type, p.peekTok().Lexeme))
	}

	return p.advance()
}

func (p *Parser) consumeSemicolon() {
	p.match(SEMICOLON)
}

// checkKeyword, expectKeyword, and matchKeyword test for a contextual
// keyword like "from" or "as", which the lexer hands back as a plain
// IDENTIFIER since it is a reserved word only inside an import clause.
func (p *Parser) checkKeyword(word string) bool {
	return p.check(IDENTIFIER) && p.peekTok().Lexeme == word
}

func (p *Parser) expectKeyword(word string) Token {
	if !p.checkKeyword(word) {
		panic(fmt.Sprintf("line %d: expected %q, found %v %q", p.peekTok().Line, word, p.peekTok().Type, p.peekTok().Lexeme))
	}

	return p.advance()
}

func (p *Parser) matchKeyword(word string) bool {
	if !p.checkKeyword(word) {
		return false
	}

	p.advance()

	return true
}

// resolveUse turns a still-bare identifier result into an actual variable
// use; anything already resolved (or never an identifier) is a no-op.
func (p *Parser) resolveUse(r exprResult) {
	if r.bare {
		p.analyzer.VariableUse(identFromToken(r.tok))
	}
}

// --- statements ---

func (p *Parser) statement() {
	switch p.peekTok().Type {
	case LEFT_BRACE:
		p.block()
	case VAR, LET, CONST:
		p.varDeclStatement()
	case FUNCTION:
		p.functionDeclaration()
	case CLASS:
		p.classDeclaration()
	case IF:
		p.ifStatement()
	case FOR:
		p.forStatement()
	case WHILE:
		p.whileStatement()
	case RETURN:
		p.returnStatement()
	case BREAK, CONTINUE:
		p.advance()
		p.match(IDENTIFIER) // optional label
		p.consumeSemicolon()
	case EXPORT:
		p.exportStatement()
	case IMPORT:
		p.importStatement()
	case SEMICOLON:
		p.advance()
	default:
		r := p.expression()
		p.resolveUse(r)
		p.consumeSemicolon()
	}
}

func (p *Parser) block() {
	p.expect(LEFT_BRACE)
	p.analyzer.EnterBlockScope()

	for !p.check(RIGHT_BRACE) && !p.atEnd() {
		p.statement()
	}

	p.expect(RIGHT_BRACE)
	p.analyzer.ExitBlockScope()
}

// functionBody parses "{ stmt* }" directly into the current scope, without
// pushing a block scope of its own — a function's top-level braces are its
// function scope, not a nested block.
func (p *Parser) functionBody() {
	p.expect(LEFT_BRACE)

	for !p.check(RIGHT_BRACE) && !p.atEnd() {
		p.statement()
	}

	p.expect(RIGHT_BRACE)
}

func (p *Parser) varDeclStatement() {
	p.varDeclarators()
	p.consumeSemicolon()
}

// varDeclarators parses "(var|let|const) name (= init)? (, name (= init)?)*"
// and declares each name as it goes. The initializer, when present, is
// resolved before the declaration so a self-reference in it (e.g. `let x =
// x`) is properly flagged as a use before declaration for let/const.
func (p *Parser) varDeclarators() {
	kindTok := p.advance()
	kind := variableKindOf(kindTok.Type)

	for {
		nameTok := p.expect(IDENTIFIER)

		if p.match(EQUAL) {
			init := p.assignment()
			p.resolveUse(init)
		}

		p.analyzer.VariableDeclaration(identFromToken(nameTok), kind)

		if !p.match(COMMA) {
			break
		}
	}
}

func (p *Parser) functionDeclaration() {
	p.advance() // 'function'
	nameTok := p.expect(IDENTIFIER)
	p.analyzer.VariableDeclaration(identFromToken(nameTok), scopewalk.VariableKindFunction)

	p.analyzer.EnterFunctionScope()
	p.parameters()
	p.analyzer.EnterFunctionScopeBody()
	p.functionBody()
	p.analyzer.ExitFunctionScope()
}

// functionExpr parses a function expression, used from primary(). Named
// function expressions bind their own name only inside their own body;
// anonymous ones don't bind anything.
func (p *Parser) functionExpr() {
	p.advance() // 'function'

	if p.check(IDENTIFIER) {
		nameTok := p.advance()
		p.analyzer.EnterNamedFunctionScope(identFromToken(nameTok))
	} else {
		p.analyzer.EnterFunctionScope()
	}

	p.parameters()
	p.analyzer.EnterFunctionScopeBody()
	p.functionBody()
	p.analyzer.ExitFunctionScope()
}

// parameters parses "(" param ("," param)* ")" and declares each as a
// Parameter binding in the already-pushed function scope.
func (p *Parser) parameters() {
	p.expect(LEFT_PAREN)

	for !p.check(RIGHT_PAREN) {
		p.match(DOT_DOT_DOT) // rest parameter

		nameTok := p.expect(IDENTIFIER)
		p.analyzer.VariableDeclaration(identFromToken(nameTok), scopewalk.VariableKindParameter)

		if p.match(EQUAL) {
			def := p.assignment()
			p.resolveUse(def)
		}

		if !p.match(COMMA) {
			break
		}
	}

	p.expect(RIGHT_PAREN)
}

func (p *Parser) classDeclaration() {
	p.advance() // 'class'
	nameTok := p.expect(IDENTIFIER)
	p.analyzer.VariableDeclaration(identFromToken(nameTok), scopewalk.VariableKindClass)
	p.classTail(nil)
}

// classExpr parses a class expression. A named class expression's name is
// declared directly inside the class's own scope (not in the enclosing
// scope), mirroring how a named function expression's self-name is only
// visible to the class/function's own body.
func (p *Parser) classExpr() {
	p.advance() // 'class'

	var selfName *Token
	if p.check(IDENTIFIER) {
		tok := p.advance()
		selfName = &tok
	}

	p.classTail(selfName)
}

func (p *Parser) classTail(selfName *Token) {
	if p.match(EXTENDS) {
		super := p.callMember()
		p.resolveUse(super)
	}

	p.analyzer.EnterClassScope()

	if selfName != nil {
		p.analyzer.VariableDeclaration(identFromToken(*selfName), scopewalk.VariableKindClass)
	}

	p.expect(LEFT_BRACE)

	for !p.check(RIGHT_BRACE) && !p.atEnd() {
		p.classMember()
	}

	p.expect(RIGHT_BRACE)
	p.analyzer.ExitClassScope()
}

func (p *Parser) classMember() {
	if p.match(SEMICOLON) {
		return
	}

	if p.check(IDENTIFIER) && p.peekTok().Lexeme == "static" && p.peekType(1) != LEFT_PAREN {
		p.advance()
	}

	switch {
	case p.check(LEFT_BRACKET):
		p.advance()
		computed := p.assignment()
		p.resolveUse(computed)
		p.expect(RIGHT_BRACKET)
	case p.check(STRING):
		p.advance()
	default:
		p.advance() // property/method name
	}
	p.analyzer.PropertyDeclaration(nil)

	switch {
	case p.check(LEFT_PAREN):
		p.analyzer.EnterFunctionScope()
		p.parameters()
		p.analyzer.EnterFunctionScopeBody()
		p.functionBody()
		p.analyzer.ExitFunctionScope()
	case p.match(EQUAL):
		init := p.assignment()
		p.resolveUse(init)
		p.consumeSemicolon()
	default:
		p.consumeSemicolon()
	}
}

func (p *Parser) ifStatement() {
	p.advance()
	p.expect(LEFT_PAREN)
	cond := p.expression()
	p.resolveUse(cond)
	p.expect(RIGHT_PAREN)
	p.statement()

	if p.match(ELSE) {
		p.statement()
	}
}

func (p *Parser) whileStatement() {
	p.advance()
	p.expect(LEFT_PAREN)
	cond := p.expression()
	p.resolveUse(cond)
	p.expect(RIGHT_PAREN)
	p.statement()
}

func (p *Parser) returnStatement() {
	p.advance()

	if !p.check(SEMICOLON) && !p.check(RIGHT_BRACE) && !p.atEnd() {
		r := p.expression()
		p.resolveUse(r)
	}

	p.consumeSemicolon()
}

// exportStatement supports "export <decl>", "export default <expr>", and
// the bare-reference form "export <identifier>;", which is recorded as a
// variable-export use rather than an ordinary one.
func (p *Parser) exportStatement() {
	p.advance()
	p.match(DEFAULT)

	switch t, next := p.peekTok().Type, p.peekType(1); {
	case t == VAR || t == LET || t == CONST:
		p.varDeclStatement()
	case t == FUNCTION && next == IDENTIFIER:
		p.functionDeclaration()
	case t == CLASS && next == IDENTIFIER:
		p.classDeclaration()
	case t == IDENTIFIER && (next == SEMICOLON || next == RIGHT_BRACE || next == EOF):
		nameTok := p.advance()
		p.analyzer.VariableExportUse(identFromToken(nameTok))
		p.consumeSemicolon()
	default:
		r := p.expression()
		p.resolveUse(r)
		p.consumeSemicolon()
	}
}

// importStatement parses a default import, a namespace import ("* as
// name"), a named-binding list ("{ a, b as c }"), or any combination of a
// default import with one of the other two, followed by "from
// '<specifier>'". Every local name it introduces is declared as
// VariableKindImport; assigning to one is caught by the same
// assignment-legality rule that governs const.
func (p *Parser) importStatement() {
	p.advance() // 'import'

	if p.check(STRING) {
		p.advance() // side-effect-only import, nothing to bind
		p.consumeSemicolon()

		return
	}

	if p.check(IDENTIFIER) {
		nameTok := p.advance()
		p.analyzer.VariableDeclaration(identFromToken(nameTok), scopewalk.VariableKindImport)
		p.match(COMMA)
	}

	switch {
	case p.match(STAR):
		p.expectKeyword("as")
		nameTok := p.expect(IDENTIFIER)
		p.analyzer.VariableDeclaration(identFromToken(nameTok), scopewalk.VariableKindImport)
	case p.check(LEFT_BRACE):
		p.importNamedBindings()
	}

	p.expectKeyword("from")
	p.expect(STRING)
	p.consumeSemicolon()
}

// importNamedBindings parses "{ name (as local)?, ... }", declaring local
// (or name, when there is no "as" clause) as VariableKindImport.
func (p *Parser) importNamedBindings() {
	p.expect(LEFT_BRACE)

	for !p.check(RIGHT_BRACE) {
		localTok := p.expect(IDENTIFIER)

		if p.matchKeyword("as") {
			localTok = p.expect(IDENTIFIER)
		}

		p.analyzer.VariableDeclaration(identFromToken(localTok), scopewalk.VariableKindImport)

		if !p.match(COMMA) {
			break
		}
	}

	p.expect(RIGHT_BRACE)
}

func (p *Parser) forStatement() {
	p.advance()
	p.expect(LEFT_PAREN)
	p.analyzer.EnterForScope()

	switch {
	case p.check(VAR) || p.check(LET) || p.check(CONST):
		kindTok := p.advance()
		kind := variableKindOf(kindTok.Type)
		nameTok := p.expect(IDENTIFIER)

		if p.check(IN) || p.check(OF) {
			p.advance()
			p.analyzer.VariableDeclaration(identFromToken(nameTok), kind)
			iterable := p.assignment()
			p.resolveUse(iterable)
			p.expect(RIGHT_PAREN)
			p.statement()
		} else {
			p.finishForClassicDeclarators(kind, nameTok)
			p.forRestClauses()
		}
	case p.check(IDENTIFIER) && (p.peekType(1) == IN || p.peekType(1) == OF):
		nameTok := p.advance()
		p.advance() // in/of
		p.analyzer.VariableAssignment(identFromToken(nameTok))
		iterable := p.assignment()
		p.resolveUse(iterable)
		p.expect(RIGHT_PAREN)
		p.statement()
	case !p.check(SEMICOLON):
		init := p.expression()
		p.resolveUse(init)
		p.forRestClauses()
	default:
		p.forRestClauses()
	}

	p.analyzer.ExitForScope()
}

// finishForClassicDeclarators parses the remainder of a classic
// "for (kind name = init, ...; ...)" header whose first declarator's name
// has already been consumed by the caller (needed to disambiguate against
// for-in/for-of).
func (p *Parser) finishForClassicDeclarators(kind scopewalk.VariableKind, firstName Token) {
	declare := func(nameTok Token) {
		if p.match(EQUAL) {
			init := p.assignment()
			p.resolveUse(init)
		}

		p.analyzer.VariableDeclaration(identFromToken(nameTok), kind)
	}

	declare(firstName)

	for p.match(COMMA) {
		declare(p.expect(IDENTIFIER))
	}
}

func (p *Parser) forRestClauses() {
	p.expect(SEMICOLON)

	if !p.check(SEMICOLON) {
		cond := p.expression()
		p.resolveUse(cond)
	}

	p.expect(SEMICOLON)

	if !p.check(RIGHT_PAREN) {
		update := p.expression()
		p.resolveUse(update)
	}

	p.expect(RIGHT_PAREN)
	p.statement()
}

// --- expressions, by ascending precedence ---

func (p *Parser) expression() exprResult {
	r := p.assignment()

	for p.match(COMMA) {
		p.resolveUse(r)
		r = p.assignment()
	}

	return r
}

var assignmentOperators = map[TokenType]bool{
	EQUAL:       true,
	PLUS_EQUAL:  true,
	MINUS_EQUAL: true,
}

func (p *Parser) assignment() exprResult {
	left := p.conditional()

	if assignmentOperators[p.peekTok().Type] {
		p.advance()
		right := p.assignment()
		p.resolveUse(right)

		if left.bare {
			p.analyzer.VariableAssignment(identFromToken(left.tok))
		}

		return exprResult{}
	}

	return left
}

func (p *Parser) conditional() exprResult {
	left := p.logicalOr()

	if p.match(QUESTION) {
		p.resolveUse(left)

		consequent := p.assignment()
		p.resolveUse(consequent)

		p.expect(COLON)

		alternate := p.assignment()
		p.resolveUse(alternate)

		return exprResult{}
	}

	return left
}

func (p *Parser) logicalOr() exprResult { return p.binaryLevel(p.logicalAnd, OR_OR) }

func (p *Parser) logicalAnd() exprResult { return p.binaryLevel(p.equality, AND_AND) }

func (p *Parser) equality() exprResult {
	return p.binaryLevel(p.comparison, EQUAL_EQUAL, EQUAL_EQUAL_EQUAL, BANG_EQUAL, BANG_EQUAL_EQUAL)
}

func (p *Parser) comparison() exprResult {
	return p.binaryLevel(p.term, LESS, LESS_EQUAL, GREATER, GREATER_EQUAL)
}

func (p *Parser) term() exprResult { return p.binaryLevel(p.factor, PLUS, MINUS) }

func (p *Parser) factor() exprResult { return p.binaryLevel(p.unary, STAR, SLASH, PERCENT) }

// binaryLevel implements one left-associative precedence level: parse next,
// and if an operator in ops follows, resolve both sides as uses and fold
// into a non-bare result; otherwise pass next through untouched so an outer
// level (or assignment) can still see a bare identifier.
func (p *Parser) binaryLevel(next func() exprResult, ops ...TokenType) exprResult {
	left := next()

	matched := false
	for p.matchAny(ops...) {
		if !matched {
			p.resolveUse(left)
			matched = true
		}

		right := next()
		p.resolveUse(right)
	}

	if matched {
		return exprResult{}
	}

	return left
}

func (p *Parser) matchAny(ops ...TokenType) bool {
	for _, op := range ops {
		if p.match(op) {
			return true
		}
	}

	return false
}

func (p *Parser) unary() exprResult {
	switch p.peekTok().Type {
	case TYPEOF:
		p.advance()
		operand := p.unary()

		if operand.bare {
			p.analyzer.VariableTypeofUse(identFromToken(operand.tok))
		}

		return exprResult{}
	case BANG, MINUS, PLUS:
		p.advance()
		operand := p.unary()
		p.resolveUse(operand)

		return exprResult{}
	default:
		return p.callMember()
	}
}

// callMember parses a primary expression followed by any chain of member
// access, computed member access, or call. The first time the chain
// continues past a bare identifier, that identifier is resolved as a use:
// it is being read in order to be called or accessed.
func (p *Parser) callMember() exprResult {
	r := p.primary()

	for {
		switch {
		case p.check(DOT):
			p.resolveUse(r)
			p.advance()
			p.expect(IDENTIFIER) // property name, not a lexical binding
			r = exprResult{}
		case p.check(LEFT_BRACKET):
			p.resolveUse(r)
			p.advance()
			key := p.expression()
			p.resolveUse(key)
			p.expect(RIGHT_BRACKET)
			r = exprResult{}
		case p.check(LEFT_PAREN):
			p.resolveUse(r)
			p.callArguments()
			r = exprResult{}
		default:
			return r
		}
	}
}

func (p *Parser) callArguments() {
	p.expect(LEFT_PAREN)

	for !p.check(RIGHT_PAREN) {
		p.match(DOT_DOT_DOT) // spread
		arg := p.assignment()
		p.resolveUse(arg)

		if !p.match(COMMA) {
			break
		}
	}

	p.expect(RIGHT_PAREN)
}

func (p *Parser) primary() exprResult {
	tok := p.peekTok()

	switch tok.Type {
	case NUMBER, STRING, TRUE, FALSE, NULL, UNDEFINED, THIS, SUPER:
		p.advance()

		return exprResult{}
	case IDENTIFIER:
		p.advance()

		return exprResult{bare: true, tok: tok}
	case LEFT_PAREN:
		p.advance()
		r := p.expression()
		p.expect(RIGHT_PAREN)

		return r
	case LEFT_BRACKET:
		p.arrayLiteral()

		return exprResult{}
	case LEFT_BRACE:
		p.objectLiteral()

		return exprResult{}
	case FUNCTION:
		p.functionExpr()

		return exprResult{}
	case CLASS:
		p.classExpr()

		return exprResult{}
	case NEW:
		p.advance()
		callee := p.callMember()
		p.resolveUse(callee)

		return exprResult{}
	default:
		panic(fmt.Sprintf("line %d: unexpected token %v %q in expression", tok.Line, tok.Type, tok.Lexeme))
	}
}

func (p *Parser) arrayLiteral() {
	p.expect(LEFT_BRACKET)

	for !p.check(RIGHT_BRACKET) {
		if p.check(COMMA) {
			p.advance() // elision

			continue
		}

		p.match(DOT_DOT_DOT)
		el := p.assignment()
		p.resolveUse(el)

		if !p.match(COMMA) {
			break
		}
	}

	p.expect(RIGHT_BRACKET)
}

// objectLiteral parses "{ prop: value, ...spread, shorthand }*". Property
// keys are never variable references; shorthand properties ("{x}") are a
// use of the identifier they name.
func (p *Parser) objectLiteral() {
	p.expect(LEFT_BRACE)

	for !p.check(RIGHT_BRACE) {
		if p.match(DOT_DOT_DOT) {
			spread := p.assignment()
			p.resolveUse(spread)
		} else {
			keyTok := p.peekTok()

			switch keyTok.Type {
			case LEFT_BRACKET:
				p.advance()
				computed := p.assignment()
				p.resolveUse(computed)
				p.expect(RIGHT_BRACKET)
			case IDENTIFIER, STRING, NUMBER:
				p.advance()
			default:
				panic(fmt.Sprintf("line %d: unexpected property key %q", keyTok.Line, keyTok.Lexeme))
			}

			if p.match(COLON) {
				val := p.assignment()
				p.resolveUse(val)
			} else if keyTok.Type == IDENTIFIER {
				p.analyzer.VariableUse(identFromToken(keyTok))
			}
		}

		if !p.match(COMMA) {
			break
		}
	}

	p.expect(RIGHT_BRACE)
}
