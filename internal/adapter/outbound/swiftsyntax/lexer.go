package swiftsyntax

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokIdent
	tokNumber
	tokString
	tokPunct
	tokOperator
)

type token struct {
	kind  tokenKind
	text  string
	start Position
	end   Position
	// spaceBefore is set when whitespace, a comment or the start of input precedes the token.
	spaceBefore   bool
	newlineBefore bool
}

const operatorChars = "/=-+!*%<>&|^~?"

var directiveNames = map[string]bool{
	"if": true, "elseif": true, "else": true, "endif": true,
	"sourceLocation": true, "warning": true, "error": true,
}

type lexer struct {
	src  string
	pos  Position
	toks []token
}

func tokenize(src string) ([]token, error) {
	l := &lexer{src: src, pos: Position{Line: 1, Column: 1}}
	for {
		space, newline, err := l.skipTrivia()
		if err != nil {
			return nil, err
		}
		if len(l.toks) == 0 {
			space, newline = true, true
		}
		start := l.pos
		kind, err := l.scan()
		if err != nil {
			return nil, err
		}
		l.toks = append(l.toks, token{
			kind:          kind,
			text:          src[start.Offset:l.pos.Offset],
			start:         start,
			end:           l.pos,
			spaceBefore:   space,
			newlineBefore: newline,
		})
		if kind == tokEOF {
			return l.toks, nil
		}
	}
}

func (l *lexer) peekByte(n int) byte {
	if l.pos.Offset+n < len(l.src) {
		return l.src[l.pos.Offset+n]
	}
	return 0
}

func (l *lexer) hasPrefix(s string) bool {
	return strings.HasPrefix(l.src[l.pos.Offset:], s)
}

func (l *lexer) eof() bool {
	return l.pos.Offset >= len(l.src)
}

// advance moves n bytes forward, tracking lines and columns.
func (l *lexer) advance(n int) {
	for i := 0; i < n && !l.eof(); i++ {
		if l.src[l.pos.Offset] == '\n' {
			l.pos.Line++
			l.pos.Column = 1
		} else {
			l.pos.Column++
		}
		l.pos.Offset++
	}
}

func (l *lexer) errorf(pos Position, msg string) error {
	return &SyntaxError{Pos: pos, Message: msg}
}

func (l *lexer) skipTrivia() (space, newline bool, err error) {
	for !l.eof() {
		c := l.src[l.pos.Offset]
		switch {
		case c == '\n':
			newline, space = true, true
			l.advance(1)
		case c == ' ' || c == '\t' || c == '\r' || c == '\f' || c == '\v':
			space = true
			l.advance(1)
		case l.hasPrefix("//"):
			space = true
			for !l.eof() && l.src[l.pos.Offset] != '\n' {
				l.advance(1)
			}
		case l.hasPrefix("/*"):
			space = true
			if err := l.skipBlockComment(); err != nil {
				return false, false, err
			}
		case c == '#' && (newline || len(l.toks) == 0) && l.atDirective():
			space = true
			for !l.eof() && l.src[l.pos.Offset] != '\n' {
				l.advance(1)
			}
		default:
			return space, newline, nil
		}
	}
	return space, newline, nil
}

func (l *lexer) skipBlockComment() error {
	start := l.pos
	depth := 0
	for !l.eof() {
		switch {
		case l.hasPrefix("/*"):
			depth++
			l.advance(2)
		case l.hasPrefix("*/"):
			depth--
			l.advance(2)
			if depth == 0 {
				return nil
			}
		default:
			l.advance(1)
		}
	}
	return l.errorf(start, "unterminated block comment")
}

// atDirective reports whether a '#' starts a compiler directive such as #if or #endif.
func (l *lexer) atDirective() bool {
	rest := l.src[l.pos.Offset+1:]
	end := strings.IndexFunc(rest, func(r rune) bool { return !isIdentRune(r) })
	if end < 0 {
		end = len(rest)
	}
	return directiveNames[rest[:end]]
}

func (l *lexer) scan() (tokenKind, error) {
	if l.eof() {
		return tokEOF, nil
	}
	start := l.pos
	c := l.src[l.pos.Offset]
	r, size := utf8.DecodeRuneInString(l.src[l.pos.Offset:])

	switch {
	case c == '`':
		end := strings.IndexByte(l.src[l.pos.Offset+1:], '`')
		if end < 0 {
			return 0, l.errorf(start, "unterminated escaped identifier")
		}
		l.advance(end + 2)
		return tokIdent, nil
	case isIdentStart(r):
		l.advance(size)
		for !l.eof() {
			r, size = utf8.DecodeRuneInString(l.src[l.pos.Offset:])
			if !isIdentRune(r) {
				break
			}
			l.advance(size)
		}
		return tokIdent, nil
	case c >= '0' && c <= '9':
		l.scanNumber()
		return tokNumber, nil
	case c == '"':
		return tokString, l.scanString(0)
	case c == '#' && (l.peekByte(1) == '"' || l.peekByte(1) == '#'):
		hashes := 0
		for l.peekByte(hashes) == '#' {
			hashes++
		}
		if l.peekByte(hashes) != '"' {
			l.advance(1)
			return tokPunct, nil
		}
		l.advance(hashes)
		return tokString, l.scanString(hashes)
	case c == '.' && l.peekByte(1) == '.':
		for !l.eof() && (l.src[l.pos.Offset] == '.' || strings.IndexByte(operatorChars, l.src[l.pos.Offset]) >= 0) {
			l.advance(1)
		}
		return tokOperator, nil
	case strings.IndexByte("(){}[],:;.@#\\", c) >= 0:
		l.advance(1)
		return tokPunct, nil
	case strings.IndexByte(operatorChars, c) >= 0:
		for !l.eof() && strings.IndexByte(operatorChars, l.src[l.pos.Offset]) >= 0 {
			if l.hasPrefix("//") || l.hasPrefix("/*") {
				break
			}
			l.advance(1)
		}
		return tokOperator, nil
	}
	return 0, l.errorf(start, "unexpected character "+string(r))
}

func (l *lexer) scanNumber() {
	for !l.eof() {
		c := l.src[l.pos.Offset]
		switch {
		case isAlnum(c) || c == '_':
			l.advance(1)
			if (c == 'e' || c == 'E' || c == 'p' || c == 'P') && (l.peekByte(0) == '+' || l.peekByte(0) == '-') {
				l.advance(1)
			}
		case c == '.' && l.peekByte(1) >= '0' && l.peekByte(1) <= '9':
			l.advance(1)
		default:
			return
		}
	}
}

// scanString consumes a string literal whose opening quote is at the current position.
// hashes is the number of '#' delimiters of a raw string, already consumed.
func (l *lexer) scanString(hashes int) error {
	start := l.pos
	quote := `"`
	if l.hasPrefix(`"""`) {
		quote = `"""`
	}
	multiline := quote == `"""`
	l.advance(len(quote))

	delim := strings.Repeat("#", hashes)
	terminator := quote + delim
	escape := `\` + delim

	for {
		if l.eof() {
			return l.errorf(start, "unterminated string literal")
		}
		if l.hasPrefix(terminator) {
			l.advance(len(terminator))
			return nil
		}
		c := l.src[l.pos.Offset]
		if !multiline && c == '\n' {
			return l.errorf(start, "unterminated string literal")
		}
		if l.hasPrefix(escape) {
			l.advance(len(escape))
			if l.peekByte(0) == '(' {
				if err := l.scanInterpolation(); err != nil {
					return err
				}
				continue
			}
			l.advance(1)
			continue
		}
		l.advance(1)
	}
}

// scanInterpolation consumes a parenthesized interpolation, including nested strings.
func (l *lexer) scanInterpolation() error {
	start := l.pos
	depth := 0
	for !l.eof() {
		switch c := l.src[l.pos.Offset]; c {
		case '(':
			depth++
			l.advance(1)
		case ')':
			depth--
			l.advance(1)
			if depth == 0 {
				return nil
			}
		case '"':
			if err := l.scanString(0); err != nil {
				return err
			}
		default:
			l.advance(1)
		}
	}
	return l.errorf(start, "unterminated string interpolation")
}

func isIdentStart(r rune) bool {
	return r == '_' || r == '$' || unicode.IsLetter(r)
}

func isIdentRune(r rune) bool {
	return isIdentStart(r) || unicode.IsDigit(r)
}

func isAlnum(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func identName(text string) string {
	return strings.Trim(text, "`")
}
