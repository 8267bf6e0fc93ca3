package lexer

// Scanner performs lexical analysis on Pocket Lisp source, producing one
// token per Next call.
type Scanner struct {
	source string
	start  int
	cursor int
	line   int
}

// NewScanner creates a new scanner for the given source.
func NewScanner(source string) *Scanner {
	return &Scanner{
		source: source,
		line:   1,
	}
}

// Reset re-initializes the scanner with new source for reuse.
func (s *Scanner) Reset(source string) {
	s.source = source
	s.start = 0
	s.cursor = 0
	s.line = 1
}

// Next returns the next token from the source and advances past it. Once
// the end of input is reached it keeps returning KindEof tokens.
func (s *Scanner) Next() Token {
	s.skipWhitespace()
	s.start = s.cursor

	if s.isAtEnd() {
		return s.makeToken(KindEof)
	}

	ch := s.advance()

	if ch == ':' {
		return s.scanKeyword()
	}
	if isDigit(ch) || (ch == '-' && isDigit(s.peek())) {
		return s.scanNumber()
	}
	if isAlphanumeric(ch) || isSymbol(ch) {
		return s.scanIdentifier()
	}
	if ch == '"' {
		return s.scanString()
	}

	switch ch {
	case '(':
		return s.makeToken(KindLeftParen)
	case ')':
		return s.makeToken(KindRightParen)
	case '{':
		return s.makeToken(KindLeftBrace)
	case '}':
		return s.makeToken(KindRightBrace)
	case '[':
		return s.makeToken(KindLeftSquare)
	case ']':
		return s.makeToken(KindRightSquare)
	case '#':
		return s.makeToken(KindDispatch)
	}

	return s.errorToken("Unexpected character.")
}

// skipWhitespace consumes spaces, tabs, carriage returns, commas, newlines
// and both comment forms. Newlines increment the line counter.
func (s *Scanner) skipWhitespace() {
	for !s.isAtEnd() {
		switch s.peek() {
		case '\n':
			s.line++
			s.cursor++
		case ' ', '\r', '\t', ',':
			s.cursor++
		case ';':
			if s.peekNext() == '#' {
				s.skipBlockComment()
			} else {
				for !s.isAtEnd() && s.peek() != '\n' {
					s.cursor++
				}
			}
		default:
			return
		}
	}
}

// skipBlockComment consumes a `;# ... #;` comment, terminator included.
// A missing terminator silently consumes the rest of the input.
func (s *Scanner) skipBlockComment() {
	s.cursor += 2
	for !s.isAtEnd() {
		if s.peek() == '#' && s.peekNext() == ';' {
			s.cursor += 2
			return
		}
		if s.peek() == '\n' {
			s.line++
		}
		s.cursor++
	}
}

// scanString consumes a double-quoted string. The token Src excludes the
// quotes, and embedded newlines count toward the line number.
func (s *Scanner) scanString() Token {
	s.start = s.cursor
	for !s.isAtEnd() && s.peek() != '"' {
		if s.peek() == '\n' {
			s.line++
		}
		s.cursor++
	}
	if s.isAtEnd() {
		return s.errorToken("Unterminated string")
	}
	tok := s.makeToken(KindString)
	s.cursor++ // closing '"'
	return tok
}

// scanNumber classifies a numeric literal by what follows the leading
// digit run: '.' makes it a float, '/' a fraction, anything else an
// integer.
func (s *Scanner) scanNumber() Token {
	s.advanceDigits()

	if !s.isAtEnd() {
		switch s.peek() {
		case '.':
			s.cursor++
			s.advanceDigits()
			return s.makeToken(KindFloatNumber)
		case '/':
			if !isDigit(s.peekNext()) {
				return s.errorToken("Unterminated fraction number")
			}
			s.cursor++
			s.advanceDigits()
			return s.makeToken(KindFractionNumber)
		}
	}

	return s.makeToken(KindIntegerNumber)
}

func (s *Scanner) scanIdentifier() Token {
	for !s.isAtEnd() && (isAlphanumeric(s.peek()) || isSymbol(s.peek())) {
		s.cursor++
	}
	switch s.source[s.start:s.cursor] {
	case "true":
		return s.makeToken(KindTrue)
	case "false":
		return s.makeToken(KindFalse)
	}
	return s.makeToken(KindIdentifier)
}

// scanKeyword handles a leading ':'. With at least one alphanumeric
// character after it the run is a keyword, otherwise the lone ':' is an
// ordinary identifier.
func (s *Scanner) scanKeyword() Token {
	if !isAlphanumeric(s.peek()) {
		return s.makeToken(KindIdentifier)
	}
	for !s.isAtEnd() && isAlphanumeric(s.peek()) {
		s.cursor++
	}
	return s.makeToken(KindKeyword)
}

func (s *Scanner) advance() byte {
	s.cursor++
	return s.source[s.cursor-1]
}

func (s *Scanner) advanceDigits() {
	for !s.isAtEnd() && isDigit(s.peek()) {
		s.cursor++
	}
}

func (s *Scanner) peek() byte {
	if s.isAtEnd() {
		return 0
	}
	return s.source[s.cursor]
}

func (s *Scanner) peekNext() byte {
	if s.cursor+1 >= len(s.source) {
		return 0
	}
	return s.source[s.cursor+1]
}

func (s *Scanner) isAtEnd() bool {
	return s.cursor >= len(s.source)
}

func (s *Scanner) makeToken(kind Kind) Token {
	return Token{Kind: kind, Src: s.source[s.start:s.cursor], Line: s.line}
}

func (s *Scanner) errorToken(msg string) Token {
	return Token{Kind: KindError, Src: msg, Line: s.line}
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isAlphanumeric(ch byte) bool {
	return ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z' || isDigit(ch)
}

func isSymbol(ch byte) bool {
	switch ch {
	case '=', '+', '-', '*', '/', '\\', '&', '%', '$', '_', '!', '<', '>', '?', '\'':
		return true
	}
	return false
}
