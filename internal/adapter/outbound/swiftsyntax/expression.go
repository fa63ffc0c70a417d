package swiftsyntax

func (p *parser) parseType() *Node {
	p.enter()
	defer p.leave()

	start := p.peek(0).start
	var n *Node
	if t := p.peek(0); t.kind == tokIdent && (t.text == "some" || t.text == "any") && !p.peek(1).newlineBefore {
		p.next()
		inner := p.parseType()
		n = p.finish(&Node{Kind: KindSomeOrAnyType, Name: t.text, Children: []*Node{inner}}, start)
	} else {
		n = p.parseTypeOperand()
	}

	for {
		switch {
		case p.isOp("&"):
			p.next()
			rhs := p.parseTypeOperand()
			n = p.finish(&Node{Kind: KindOtherType, Children: []*Node{n, rhs}}, start)
		case p.isIdent("async") || p.isIdent("throws") || p.isIdent("rethrows"):
			p.next()
		case p.isOp("->"):
			p.next()
			rhs := p.parseType()
			n = p.finish(&Node{Kind: KindOtherType, Children: []*Node{n, rhs}}, start)
		default:
			return n
		}
	}
}

func (p *parser) parseTypeOperand() *Node {
	for p.isPunct("@") {
		p.next()
		p.expectIdent()
	}
	if p.isIdent("inout") {
		p.next()
	}

	start := p.peek(0).start
	var n *Node
	switch t := p.peek(0); {
	case t.kind == tokPunct && t.text == "(":
		p.skipGroup("(", ")")
		n = p.finish(&Node{Kind: KindOtherType}, start)
	case t.kind == tokPunct && t.text == "[":
		p.skipGroup("[", "]")
		n = p.finish(&Node{Kind: KindOtherType}, start)
	case t.kind == tokIdent:
		kind := KindIdentifierType
		name := p.next()
		for {
			if p.atGenericClause() {
				p.skipAngles()
				continue
			}
			if p.isPunct(".") && !p.peek(0).spaceBefore && p.peek(1).kind == tokIdent {
				p.next()
				name = p.next()
				kind = KindMemberType
				continue
			}
			break
		}
		n = p.finish(&Node{Kind: kind, Name: identName(name.text)}, start)
	default:
		p.errorf(t, "expected type")
	}

	for {
		t := p.peek(0)
		if t.kind != tokOperator || t.spaceBefore || !isOptionalMarker(t.text) {
			return n
		}
		p.next()
		n = p.finish(&Node{Kind: KindOtherType, Children: []*Node{n}}, start)
	}
}

func isOptionalMarker(op string) bool {
	for _, c := range op {
		if c != '?' && c != '!' {
			return op == "..."
		}
	}
	return true
}

// parseExpression parses a sequence of operands joined by binary operators, casts and
// ternaries. A single operand is returned as is.
func (p *parser) parseExpression() *Node {
	p.enter()
	defer p.leave()

	start := p.peek(0).start
	elems := []*Node{p.parseUnary()}
	for {
		t := p.peek(0)
		switch {
		case t.kind == tokIdent && (t.text == "as" || t.text == "is") && !t.newlineBefore:
			p.next()
			if op := p.peek(0); op.kind == tokOperator && !op.spaceBefore && isOptionalMarker(op.text) {
				p.next()
			}
			elems = append(elems, p.parseType())
		case t.kind == tokOperator && t.text == "?" && t.spaceBefore:
			p.next()
			elems = append(elems, p.parseExpression())
			p.expectPunct(":")
			elems = append(elems, p.parseUnary())
		case t.kind == tokOperator && t.spaceBefore == p.peek(1).spaceBefore && p.peek(1).kind != tokEOF:
			p.next()
			elems = append(elems, p.parseUnary())
		default:
			if len(elems) == 1 {
				return elems[0]
			}
			return p.finish(&Node{Kind: KindSequence, Children: elems}, start)
		}
	}
}

func (p *parser) parseUnary() *Node {
	p.enter()
	defer p.leave()

	t := p.peek(0)
	switch {
	case t.kind == tokIdent && (t.text == "try" || t.text == "await") && !p.peek(1).newlineBefore:
		p.next()
		if op := p.peek(0); op.kind == tokOperator && !op.spaceBefore && isOptionalMarker(op.text) {
			p.next()
		}
		operand := p.parseUnary()
		return p.finish(&Node{Kind: KindPrefix, Name: t.text, Children: []*Node{operand}}, t.start)
	case t.kind == tokOperator && !p.peek(1).spaceBefore:
		p.next()
		operand := p.parseUnary()
		return p.finish(&Node{Kind: KindPrefix, Name: t.text, Children: []*Node{operand}}, t.start)
	}
	return p.parsePostfix(p.parsePrimary())
}

func (p *parser) parsePrimary() *Node {
	t := p.peek(0)
	start := t.start
	switch {
	case t.kind == tokIdent:
		p.next()
		switch t.text {
		case "true", "false", "nil":
			return p.finish(&Node{Kind: KindLiteral, Name: t.text}, start)
		}
		return p.finish(&Node{Kind: KindDeclReference, Name: identName(t.text)}, start)
	case t.kind == tokNumber || t.kind == tokString:
		p.next()
		return p.finish(&Node{Kind: KindLiteral}, start)
	case t.kind != tokPunct:
		p.errorf(t, "expected expression")
	}

	switch t.text {
	case ".":
		p.next()
		name := p.expectIdent()
		ref := p.finish(&Node{Kind: KindDeclReference, Name: identName(name.text)}, name.start)
		return p.finish(&Node{Kind: KindMemberAccess, Name: ref.Name, Children: []*Node{ref}}, start)
	case "(":
		args := p.parseArguments("(", ")")
		return p.finish(&Node{Kind: KindTuple, Children: args}, start)
	case "[":
		return p.parseCollection()
	case "{":
		return p.parseClosure()
	case "#":
		p.next()
		name := p.expectIdent()
		if p.isPunct("(") && !p.peek(0).spaceBefore {
			p.skipGroup("(", ")")
		}
		return p.finish(&Node{Kind: KindLiteral, Name: "#" + name.text}, start)
	case "\\":
		p.next()
		for {
			next := p.peek(0)
			if next.spaceBefore || !(next.kind == tokIdent || (next.kind == tokPunct && next.text == ".")) {
				break
			}
			p.next()
		}
		return p.finish(&Node{Kind: KindPrefix, Name: "\\"}, start)
	}
	p.errorf(t, "expected expression")
	return nil
}

func (p *parser) parsePostfix(base *Node) *Node {
	for {
		t := p.peek(0)
		switch {
		case t.kind == tokPunct && t.text == "." && (p.peek(1).kind == tokIdent || p.peek(1).kind == tokNumber):
			p.next()
			name := p.next()
			ref := p.finish(&Node{Kind: KindDeclReference, Name: identName(name.text)}, name.start)
			base = p.finish(&Node{Kind: KindMemberAccess, Name: ref.Name, Children: []*Node{base, ref}}, base.Start)
		case t.kind == tokPunct && t.text == "(" && !t.newlineBefore:
			args := p.parseArguments("(", ")")
			base = p.finish(&Node{Kind: KindFunctionCall, Children: append([]*Node{base}, args...)}, base.Start)
		case t.kind == tokPunct && t.text == "[" && !t.newlineBefore:
			args := p.parseArguments("[", "]")
			base = p.finish(&Node{Kind: KindSubscript, Children: append([]*Node{base}, args...)}, base.Start)
		case t.kind == tokPunct && t.text == "{" && !t.newlineBefore:
			base = p.parseTrailingClosures(base)
		case t.kind == tokOperator && !t.spaceBefore && isOptionalMarker(t.text) && t.text != "..." &&
			(p.peek(1).spaceBefore || p.peek(1).kind == tokPunct || p.peek(1).kind == tokEOF):
			p.next()
			base = p.finish(base, base.Start)
		default:
			return base
		}
	}
}

// parseTrailingClosures attaches a trailing closure and any labeled trailing closures
// that follow it to a call.
func (p *parser) parseTrailingClosures(base *Node) *Node {
	call := base
	if call.Kind != KindFunctionCall {
		call = &Node{Kind: KindFunctionCall, Children: []*Node{base}}
	}
	call.Children = append(call.Children, p.parseClosure())
	for p.peek(0).kind == tokIdent && p.peek(1).kind == tokPunct && p.peek(1).text == ":" &&
		p.peek(2).kind == tokPunct && p.peek(2).text == "{" {
		label := p.next()
		p.next()
		closure := p.parseClosure()
		arg := p.finish(&Node{Kind: KindLabeledExpr, Name: identName(label.text), Children: []*Node{closure}}, label.start)
		call.Children = append(call.Children, arg)
	}
	return p.finish(call, base.Start)
}

// parseArguments parses a delimited, comma separated list of optionally labeled
// expressions. A trailing comma is accepted.
func (p *parser) parseArguments(open, closing string) []*Node {
	p.expectPunct(open)
	var args []*Node
	for !p.isPunct(closing) {
		start := p.peek(0).start
		arg := &Node{Kind: KindLabeledExpr}
		if t := p.peek(0); t.kind == tokIdent && p.peek(1).kind == tokPunct && p.peek(1).text == ":" {
			p.next()
			p.next()
			arg.Name = identName(t.text)
		}
		arg.Children = []*Node{p.parseExpression()}
		args = append(args, p.finish(arg, start))
		if !p.isPunct(",") {
			break
		}
		p.next()
	}
	p.expectPunct(closing)
	return args
}

func (p *parser) parseCollection() *Node {
	start := p.expectPunct("[").start
	n := &Node{Kind: KindCollection}
	if p.isPunct(":") {
		p.next()
	}
	for !p.isPunct("]") {
		n.Children = append(n.Children, p.parseExpression())
		if p.isPunct(":") {
			p.next()
			n.Children = append(n.Children, p.parseExpression())
		}
		if !p.isPunct(",") {
			break
		}
		p.next()
	}
	p.expectPunct("]")
	return p.finish(n, start)
}

func (p *parser) parseClosure() *Node {
	p.enter()
	defer p.leave()

	start := p.expectPunct("{").start
	if n := p.closureSignatureLength(); n > 0 {
		for i := 0; i < n; i++ {
			p.next()
		}
	}
	n := &Node{Kind: KindClosure, Children: p.parseStatements()}
	p.expectPunct("}")
	return p.finish(n, start)
}

// closureSignatureLength returns the number of tokens up to and including the `in`
// that ends a closure signature on the opening line, or 0 if there is none.
func (p *parser) closureSignatureLength() int {
	if first := p.peek(0); first.kind == tokIdent && (controlKeywords[first.text] || jumpKeywords[first.text]) {
		return 0
	}
	depth := 0
	for i := 0; ; i++ {
		t := p.peek(i)
		if t.kind == tokEOF || (i > 0 && t.newlineBefore && depth == 0) {
			return 0
		}
		if t.kind == tokPunct {
			switch t.text {
			case "(", "[":
				depth++
			case ")", "]":
				depth--
			case "{", "}":
				return 0
			}
		}
		if depth == 0 && t.kind == tokIdent && t.text == "in" {
			return i + 1
		}
	}
}
