package scanner

import (
	"github.com/jesperkha/minic/minic/token"
)

type Scanner struct {
	file      *token.File
	text      []byte
	offset    int
	row       int
	lineBegin int

	// Number of ILLEGAL tokens produced so far. The scanner never fails, it
	// is up to the parser to reject illegal tokens where they appear.
	NumIllegal int
}

// New makes a new Scanner object for the given file. Scanner only accepts
// ascii text, any other byte becomes an ILLEGAL token.
func New(file *token.File) *Scanner {
	return &Scanner{
		file: file,
		text: file.Src,
	}
}

// ScanAll scans the whole file and returns the tokens in order. The last
// token is always EOF.
func (s *Scanner) ScanAll() []token.Token {
	toks := []token.Token{}
	for {
		tok := s.Scan()
		toks = append(toks, tok)
		if tok.Eof {
			break
		}
	}

	return toks
}

// Scan consumes the next token and returns it, advancing the Scanner.
// Returns EOF repeatedly once the end of input is reached.
func (s *Scanner) Scan() token.Token {
	s.skipWhitespace()

	if s.eof() {
		pos := s.pos()
		return token.Token{
			Type:   token.EOF,
			Pos:    pos,
			EndPos: pos,
			Eof:    true,
		}
	}

	c := s.cur()
	switch {
	case isAlpha(c):
		return s.scanIdent()
	case isNum(c):
		return s.scanNumber()
	default:
		return s.scanSymbol()
	}
}

func (s *Scanner) scanIdent() token.Token {
	start := s.pos()
	for !s.eof() && (isAlpha(s.cur()) || isNum(s.cur())) {
		s.consume()
	}

	lexeme := string(s.text[start.Offset:s.offset])
	typ := token.IDENT
	if kw, ok := token.Keywords[lexeme]; ok {
		typ = kw
	}

	return s.makeToken(typ, start)
}

func (s *Scanner) scanNumber() token.Token {
	start := s.pos()
	for !s.eof() && isNum(s.cur()) {
		s.consume()
	}

	return s.makeToken(token.NUMBER, start)
}

func (s *Scanner) scanSymbol() token.Token {
	start := s.pos()

	if s.peek() != 0 {
		double := string([]byte{s.cur(), s.peek()})
		if typ, ok := token.DoubleSymbols[double]; ok {
			s.consume()
			s.consume()
			return s.makeToken(typ, start)
		}
	}

	s.consume()
	typ, ok := token.SingleSymbols[string(s.text[start.Offset:s.offset])]
	if !ok {
		typ = token.ILLEGAL
		s.NumIllegal++
	}

	return s.makeToken(typ, start)
}

func (s *Scanner) makeToken(typ token.TokenType, start token.Pos) token.Token {
	lexeme := string(s.text[start.Offset:s.offset])
	return token.Token{
		Type:   typ,
		Pos:    start,
		EndPos: s.pos(),
		Lexeme: lexeme,
		Length: len(lexeme),
	}
}

func (s *Scanner) skipWhitespace() {
	for !s.eof() && isWhitespace(s.cur()) {
		s.consume()
	}
}

func (s *Scanner) pos() token.Pos {
	return token.Pos{
		Col:       s.offset - s.lineBegin,
		Row:       s.row,
		Offset:    s.offset,
		File:      s.file,
		LineBegin: s.lineBegin,
	}
}

func (s *Scanner) eof() bool {
	return s.offset >= len(s.text)
}

// Current byte, or 0 at eof.
func (s *Scanner) cur() byte {
	if s.eof() {
		return 0
	}
	return s.text[s.offset]
}

// Next byte, or 0 if there is none.
func (s *Scanner) peek() byte {
	if s.offset+1 >= len(s.text) {
		return 0
	}
	return s.text[s.offset+1]
}

func (s *Scanner) consume() byte {
	c := s.cur()
	s.offset++
	if c == '\n' {
		s.row++
		s.lineBegin = s.offset
	}
	return c
}
