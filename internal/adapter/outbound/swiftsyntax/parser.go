package swiftsyntax

import (
	"fmt"
	"strings"
)

const maxNesting = 256

var (
	declModifiers = map[string]bool{
		"public": true, "private": true, "fileprivate": true, "internal": true, "open": true,
		"package": true, "static": true, "class": true, "final": true, "override": true,
		"mutating": true, "nonmutating": true, "lazy": true, "weak": true, "unowned": true,
		"indirect": true, "nonisolated": true, "dynamic": true, "optional": true,
		"required": true, "convenience": true, "prefix": true, "postfix": true, "infix": true,
	}
	opaqueDeclKeywords = map[string]bool{
		"class": true, "enum": true, "actor": true, "extension": true, "protocol": true,
		"func": true, "init": true, "deinit": true, "subscript": true, "macro": true,
		"operator": true, "precedencegroup": true,
	}
	lineDeclKeywords = map[string]bool{"typealias": true, "associatedtype": true}
	controlKeywords  = map[string]bool{
		"if": true, "guard": true, "for": true, "while": true, "switch": true,
		"repeat": true, "do": true, "defer": true,
	}
	jumpKeywords     = map[string]bool{"return": true, "throw": true}
	transferKeywords = map[string]bool{"break": true, "continue": true, "fallthrough": true}
	accessorNames    = map[string]bool{
		"get": true, "set": true, "willSet": true, "didSet": true, "_read": true, "_modify": true,
	}
)

type bailout struct {
	err error
}

type parser struct {
	src     string
	toks    []token
	pos     int
	prevEnd Position
	depth   int
}

// Parse parses a fragment into a SourceFile node whose children are CodeBlockItems.
func Parse(src []byte) (file *Node, err error) {
	text := string(src)
	toks, err := tokenize(text)
	if err != nil {
		return nil, err
	}

	p := &parser{src: text, toks: toks}
	defer func() {
		if r := recover(); r != nil {
			b, ok := r.(bailout)
			if !ok {
				panic(r)
			}
			file, err = nil, b.err
		}
	}()

	return p.parseSourceFile(), nil
}

func (p *parser) peek(n int) token {
	if i := p.pos + n; i < len(p.toks) {
		return p.toks[i]
	}
	return p.toks[len(p.toks)-1]
}

func (p *parser) next() token {
	t := p.toks[p.pos]
	if t.kind != tokEOF {
		p.pos++
		p.prevEnd = t.end
	}
	return t
}

func (p *parser) atEOF() bool { return p.peek(0).kind == tokEOF }

func (p *parser) is(kind tokenKind, text string) bool {
	t := p.peek(0)
	return t.kind == kind && t.text == text
}

func (p *parser) isIdent(text string) bool { return p.is(tokIdent, text) }
func (p *parser) isPunct(text string) bool { return p.is(tokPunct, text) }
func (p *parser) isOp(text string) bool    { return p.is(tokOperator, text) }

func (p *parser) errorf(t token, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if t.kind == tokEOF {
		msg += " at end of input"
	} else {
		msg += fmt.Sprintf(" near %q", t.text)
	}
	panic(bailout{err: &SyntaxError{Pos: t.start, Message: msg}})
}

func (p *parser) expectPunct(text string) token {
	if !p.isPunct(text) {
		p.errorf(p.peek(0), "expected %q", text)
	}
	return p.next()
}

func (p *parser) expectIdent() token {
	if p.peek(0).kind != tokIdent {
		p.errorf(p.peek(0), "expected identifier")
	}
	return p.next()
}

func (p *parser) enter() {
	p.depth++
	if p.depth > maxNesting {
		p.errorf(p.peek(0), "nesting too deep")
	}
}

func (p *parser) leave() { p.depth-- }

// finish sets the node's span from start to the end of the last consumed token.
func (p *parser) finish(n *Node, start Position) *Node {
	end := p.prevEnd
	if end.Offset < start.Offset {
		end = start
	}
	n.Start, n.End = start, end
	n.Text = p.src[start.Offset:end.Offset]
	return n
}

// skipGroup consumes a balanced group starting at the current open token.
func (p *parser) skipGroup(open, closing string) {
	start := p.expectPunct(open)
	depth := 1
	for depth > 0 {
		t := p.peek(0)
		switch {
		case t.kind == tokEOF:
			p.errorf(start, "unbalanced %q", open)
		case t.kind == tokPunct && t.text == open:
			depth++
		case t.kind == tokPunct && t.text == closing:
			depth--
		}
		p.next()
	}
}

// skipAngles consumes a generic parameter or argument clause.
func (p *parser) skipAngles() {
	depth := 0
	for {
		t := p.peek(0)
		if t.kind == tokEOF {
			p.errorf(t, "unbalanced generic clause")
		}
		if t.kind == tokOperator && t.text != "->" {
			for _, c := range t.text {
				switch c {
				case '<':
					depth++
				case '>':
					depth--
				}
			}
		}
		p.next()
		if depth <= 0 {
			return
		}
	}
}

func (p *parser) atGenericClause() bool {
	t := p.peek(0)
	return t.kind == tokOperator && !t.spaceBefore && strings.HasPrefix(t.text, "<")
}

// skipToBlock consumes tokens up to and including a brace-delimited block at the
// current nesting level. It reports false if an enclosing '}' or the end of input
// comes first.
func (p *parser) skipToBlock() bool {
	for {
		t := p.peek(0)
		switch {
		case t.kind == tokEOF:
			return false
		case t.kind == tokPunct && t.text == "}":
			return false
		case t.kind == tokPunct && t.text == "{":
			p.skipGroup("{", "}")
			return true
		case t.kind == tokPunct && t.text == "(":
			p.skipGroup("(", ")")
		case t.kind == tokPunct && t.text == "[":
			p.skipGroup("[", "]")
		default:
			p.next()
		}
	}
}

// skipLine consumes tokens until the next token that starts a new line.
func (p *parser) skipLine() {
	for {
		t := p.peek(0)
		if t.kind == tokEOF || (t.kind == tokPunct && (t.text == "}" || t.text == ";")) {
			return
		}
		switch {
		case t.kind == tokPunct && t.text == "(":
			p.skipGroup("(", ")")
		case t.kind == tokPunct && t.text == "[":
			p.skipGroup("[", "]")
		default:
			p.next()
		}
		if p.peek(0).newlineBefore {
			return
		}
	}
}

func (p *parser) parseSourceFile() *Node {
	file := &Node{Kind: KindSourceFile}
	file.Children = p.parseStatements()
	if !p.atEOF() {
		p.errorf(p.peek(0), "unexpected token")
	}
	return p.finish(file, Position{Line: 1, Column: 1})
}

// parseStatements parses CodeBlockItems up to a closing brace or the end of input.
func (p *parser) parseStatements() []*Node {
	var items []*Node
	for !p.atEOF() && !p.isPunct("}") {
		if p.isPunct(";") {
			p.next()
			continue
		}
		start := p.peek(0).start
		stmt := p.parseStatement()
		items = append(items, p.finish(&Node{Kind: KindCodeBlockItem, Children: []*Node{stmt}}, start))
	}
	return items
}

func (p *parser) skipAttributesAndModifiers() {
	for {
		switch {
		case p.isPunct("@"):
			p.next()
			p.expectIdent()
			if p.isPunct("(") && !p.peek(0).spaceBefore {
				p.skipGroup("(", ")")
			}
		case p.peek(0).kind == tokIdent && declModifiers[p.peek(0).text] && p.modifierApplies():
			p.next()
			if p.isPunct("(") && !p.peek(0).spaceBefore {
				p.skipGroup("(", ")")
			}
		default:
			return
		}
	}
}

// modifierApplies reports whether the modifier-like word at the cursor is followed by a
// declaration, as in "public struct", rather than used as an identifier.
func (p *parser) modifierApplies() bool {
	i := 1
	if p.peek(i).kind == tokPunct && p.peek(i).text == "(" {
		for p.peek(i).kind != tokEOF && !(p.peek(i).kind == tokPunct && p.peek(i).text == ")") {
			i++
		}
		i++
	}
	t := p.peek(i)
	if t.kind == tokPunct && t.text == "@" {
		return true
	}
	if t.kind != tokIdent {
		return false
	}
	switch t.text {
	case "let", "var", "struct", "typealias", "associatedtype":
		return true
	}
	return opaqueDeclKeywords[t.text] || declModifiers[t.text]
}

func (p *parser) parseStatement() *Node {
	p.enter()
	defer p.leave()

	start := p.peek(0).start
	p.skipAttributesAndModifiers()

	t := p.peek(0)
	if t.kind == tokIdent {
		switch {
		case t.text == "import":
			return p.parseImport(start)
		case t.text == "let" || t.text == "var":
			return p.parseVariableDecl(start)
		case t.text == "struct":
			return p.parseStructDecl(start)
		case opaqueDeclKeywords[t.text]:
			return p.parseOpaqueDecl(start)
		case lineDeclKeywords[t.text]:
			p.next()
			p.skipLine()
			return p.finish(&Node{Kind: KindOpaqueDecl, Name: t.text}, start)
		case controlKeywords[t.text]:
			return p.parseControlStatement(start)
		case jumpKeywords[t.text]:
			return p.parseJump(start)
		case transferKeywords[t.text]:
			p.next()
			if p.peek(0).kind == tokIdent && !p.peek(0).newlineBefore {
				p.next()
			}
			return p.finish(&Node{Kind: KindOpaqueStmt, Name: t.text}, start)
		}
	}
	return p.parseExpression()
}

func (p *parser) parseImport(start Position) *Node {
	p.next()
	n := &Node{Kind: KindImportDecl}
	for !p.atEOF() && !p.peek(0).newlineBefore && !p.isPunct(";") {
		t := p.next()
		if t.kind == tokIdent {
			n.Name = identName(t.text)
		}
	}
	return p.finish(n, start)
}

func (p *parser) parseVariableDecl(start Position) *Node {
	keyword := p.next()
	n := &Node{Kind: KindVariableDecl, Name: keyword.text}
	for {
		n.Children = append(n.Children, p.parsePattern())
		if p.isPunct(":") {
			p.next()
			typ := p.parseType()
			ann := &Node{Kind: KindTypeAnnotation, Children: []*Node{typ}}
			n.Children = append(n.Children, p.finish(ann, typ.Start))
		}
		if p.isOp("=") {
			initStart := p.next().start
			expr := p.parseExpression()
			n.Children = append(n.Children, p.finish(&Node{Kind: KindInitializer, Children: []*Node{expr}}, initStart))
		} else if p.isPunct("{") {
			n.Children = append(n.Children, p.parseAccessorBlock())
		}
		if !p.isPunct(",") {
			break
		}
		p.next()
	}
	return p.finish(n, start)
}

func (p *parser) parsePattern() *Node {
	start := p.peek(0).start
	if p.isPunct("(") {
		p.skipGroup("(", ")")
		return p.finish(&Node{Kind: KindTuple}, start)
	}
	name := p.expectIdent()
	return p.finish(&Node{Kind: KindIdentifierPattern, Name: identName(name.text)}, start)
}

func (p *parser) parseAccessorBlock() *Node {
	start := p.expectPunct("{").start
	n := &Node{Kind: KindAccessorBlock}

	if t := p.peek(0); t.kind == tokIdent && accessorNames[t.text] && p.peekAccessorBody() {
		for !p.atEOF() && !p.isPunct("}") {
			accStart := p.peek(0).start
			p.skipAttributesAndModifiers()
			name := p.expectIdent()
			acc := &Node{Kind: KindAccessor, Name: name.text}
			for !p.atEOF() && !p.isPunct("{") && !p.isPunct("}") && !p.peek(0).newlineBefore {
				if p.isPunct("(") {
					p.skipGroup("(", ")")
					continue
				}
				p.next()
			}
			if p.isPunct("{") {
				p.next()
				acc.Children = p.parseStatements()
				p.expectPunct("}")
			}
			n.Children = append(n.Children, p.finish(acc, accStart))
		}
	} else {
		n.Children = p.parseStatements()
	}

	p.expectPunct("}")
	return p.finish(n, start)
}

// peekAccessorBody reports whether an accessor keyword at the cursor introduces an
// accessor rather than an expression statement such as `get()`.
func (p *parser) peekAccessorBody() bool {
	next := p.peek(1)
	switch {
	case next.kind == tokPunct && (next.text == "{" || next.text == "}" || next.text == "("):
		return true
	case next.kind == tokIdent && (next.text == "async" || next.text == "throws" || accessorNames[next.text]):
		return true
	}
	return next.newlineBefore
}

func (p *parser) parseStructDecl(start Position) *Node {
	p.next()
	name := p.expectIdent()
	n := &Node{Kind: KindStructDecl, Name: identName(name.text)}

	if p.atGenericClause() {
		p.skipAngles()
	}
	if p.isPunct(":") {
		p.next()
		for {
			typ := p.parseType()
			inherited := &Node{Kind: KindInheritedType, Name: typ.Text, Children: []*Node{typ}}
			n.Children = append(n.Children, p.finish(inherited, typ.Start))
			if !p.isPunct(",") {
				break
			}
			p.next()
		}
	}
	if p.isIdent("where") {
		for !p.atEOF() && !p.isPunct("{") {
			p.next()
		}
	}
	n.Children = append(n.Children, p.parseMemberBlock())
	return p.finish(n, start)
}

func (p *parser) parseMemberBlock() *Node {
	start := p.expectPunct("{").start
	n := &Node{Kind: KindMemberBlock}
	for !p.atEOF() && !p.isPunct("}") {
		if p.isPunct(";") {
			p.next()
			continue
		}
		n.Children = append(n.Children, p.parseStatement())
	}
	p.expectPunct("}")
	return p.finish(n, start)
}

func (p *parser) parseOpaqueDecl(start Position) *Node {
	keyword := p.next()
	p.skipToBlock()
	return p.finish(&Node{Kind: KindOpaqueDecl, Name: keyword.text}, start)
}

func (p *parser) parseControlStatement(start Position) *Node {
	keyword := p.next()
	for {
		if !p.skipToBlock() {
			p.errorf(p.peek(0), "expected block after %q", keyword.text)
		}
		switch {
		case p.isIdent("else"):
			p.next()
			if p.isIdent("if") {
				p.next()
			}
			continue
		case p.isIdent("catch"):
			p.next()
			continue
		case keyword.text == "repeat" && p.isIdent("while"):
			p.next()
			p.parseExpression()
		}
		return p.finish(&Node{Kind: KindOpaqueStmt, Name: keyword.text}, start)
	}
}

func (p *parser) parseJump(start Position) *Node {
	keyword := p.next()
	n := &Node{Kind: KindOpaqueStmt, Name: keyword.text}
	if t := p.peek(0); t.kind != tokEOF && !t.newlineBefore && !(t.kind == tokPunct && (t.text == "}" || t.text == ";")) {
		n.Children = append(n.Children, p.parseExpression())
	}
	return p.finish(n, start)
}
