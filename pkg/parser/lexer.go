package parser

import (
	"sort"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/leapstack-labs/sqlkit/pkg/dialect"
	"github.com/leapstack-labs/sqlkit/pkg/keyword"
	"github.com/leapstack-labs/sqlkit/pkg/token"
)

// builtinOperators maps every fixed operator and punctuation symbol to its
// token type. Symbols are ASCII, so byte slicing is safe for lookups.
var builtinOperators = token.Operators()

const maxOperatorLen = 4 // !~~*

// Tokenizer converts SQL text into tokens. A Tokenizer is single-use.
type Tokenizer struct {
	dialect *dialect.Dialect
	input   string
	pos     int  // byte offset of ch
	readPos int  // byte offset after ch
	ch      rune // current char, 0 at EOF
	line    int  // line of ch (1-based)
	col     int  // column of ch (1-based, in characters)

	unescape bool
	trivia   bool

	last      token.Token // last significant token
	customOps []string        // dialect operators, longest first
	comments  []token.Comment
}

// NewTokenizer creates a tokenizer for src. Unescaping is on and trivia
// (whitespace and comments) is dropped by default.
func NewTokenizer(d *dialect.Dialect, src string) *Tokenizer {
	t := &Tokenizer{
		dialect:  d,
		input:    src,
		line:     1,
		unescape: true,
		last:     token.Token{Type: token.EOF},
	}
	t.customOps = append(t.customOps, d.CustomOperators()...)
	sort.SliceStable(t.customOps, func(i, j int) bool {
		return len(t.customOps[i]) > len(t.customOps[j])
	})
	t.readChar()
	return t
}

// WithUnescape controls whether escape sequences inside strings and quoted
// identifiers are resolved. When false, bodies are kept verbatim.
func (t *Tokenizer) WithUnescape(unescape bool) *Tokenizer {
	t.unescape = unescape
	return t
}

// WithTrivia makes Tokenize also return WHITESPACE and COMMENT tokens.
func (t *Tokenizer) WithTrivia(trivia bool) *Tokenizer {
	t.trivia = trivia
	return t
}

// Comments returns the comments seen so far.
func (t *Tokenizer) Comments() []token.Comment {
	return t.comments
}

// Tokenize lexes src with the given dialect and returns the significant
// tokens followed by EOF.
func Tokenize(d *dialect.Dialect, src string) ([]token.TokenWithSpan, error) {
	return NewTokenizer(d, src).Tokenize()
}

// Tokenize lexes the whole input. The result always ends with an EOF token.
func (t *Tokenizer) Tokenize() ([]token.TokenWithSpan, error) {
	var out []token.TokenWithSpan
	for {
		tok, err := t.next()
		if err != nil {
			return nil, err
		}
		switch tok.Type {
		case token.WHITESPACE, token.COMMENT:
			if t.trivia {
				out = append(out, tok)
			}
			continue
		}
		out = append(out, tok)
		if tok.Type == token.EOF {
			return out, nil
		}
		t.last = tok.Token
	}
}

// ---------- Cursor ----------

func (t *Tokenizer) readChar() {
	if t.ch == '\n' {
		t.line++
		t.col = 0
	}
	t.pos = t.readPos
	if t.readPos >= len(t.input) {
		t.ch = 0
		t.col++
		return
	}
	r, size := utf8.DecodeRuneInString(t.input[t.readPos:])
	t.ch = r
	t.readPos += size
	t.col++
}

// peekChar returns the character n positions after the current one.
func (t *Tokenizer) peekChar(n int) rune {
	off := t.readPos
	if n == 0 {
		off = t.pos
	}
	for i := 1; i < n; i++ {
		if off >= len(t.input) {
			return 0
		}
		_, size := utf8.DecodeRuneInString(t.input[off:])
		off += size
	}
	if off >= len(t.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(t.input[off:])
	return r
}

func (t *Tokenizer) atEOF() bool {
	return t.pos >= len(t.input)
}

func (t *Tokenizer) location() token.Location {
	return token.Location{Line: t.line, Column: t.col, Offset: t.pos}
}

func (t *Tokenizer) hasPrefix(s string) bool {
	return strings.HasPrefix(t.input[t.pos:], s)
}

func (t *Tokenizer) advance(n int) {
	for i := 0; i < n; i++ {
		t.readChar()
	}
}

func (t *Tokenizer) emit(start token.Location, tok token.Token) (token.TokenWithSpan, error) {
	return token.At(tok, token.NewSpan(start, t.location())), nil
}

func (t *Tokenizer) lexErr(kind LexErrorKind, loc token.Location, ch rune) error {
	return &LexError{Kind: kind, Char: ch, Location: loc}
}

// ---------- Dispatch ----------

func (t *Tokenizer) next() (token.TokenWithSpan, error) {
	start := t.location()
	if t.atEOF() {
		return token.At(token.Token{Type: token.EOF}, token.NewSpan(start, start)), nil
	}
	d := t.dialect
	ch := t.ch

	if unicode.IsSpace(ch) {
		for !t.atEOF() && unicode.IsSpace(t.ch) {
			t.readChar()
		}
		return t.emit(start, token.Token{Type: token.WHITESPACE, Value: t.input[start.Offset:t.pos]})
	}

	// Comments
	switch {
	case t.hasPrefix("--"):
		return t.lineComment(start)
	case ch == '#' && d.HashComments:
		return t.lineComment(start)
	case t.hasPrefix("/*"):
		return t.blockComment(start)
	}

	// Dialect operators win over everything but comments.
	for _, op := range t.customOps {
		if t.hasPrefix(op) {
			t.advance(utf8.RuneCountInString(op))
			tt, ok := token.LookupSymbol(op)
			if !ok {
				tt = builtinOperators[op]
			}
			return t.emit(start, token.Token{Type: tt, Value: op})
		}
	}

	// Prefixed strings
	if tok, ok, err := t.prefixedString(start); ok || err != nil {
		return tok, err
	}

	switch {
	case ch == '\'':
		if d.TripleQuotedStrings && t.hasPrefix("'''") {
			return t.tripleQuoted(start, '\'', token.TripleSingleQuoted)
		}
		return t.quotedString(start, '\'', token.SingleQuoted, d.BackslashEscape)
	case ch == '"' && d.DoubleQuotedStrings:
		if d.TripleQuotedStrings && t.hasPrefix(`"""`) {
			return t.tripleQuoted(start, '"', token.TripleDoubleQuoted)
		}
		return t.quotedString(start, '"', token.DoubleQuoted, d.BackslashEscape)
	case d.IsDelimitedIdentifierStart(ch):
		if ch != '[' || d.IsProperIdentifierInsideQuotes([]rune(t.input[t.readPos:])) {
			return t.quotedIdentifier(start)
		}
	case ch == '$':
		return t.dollar(start)
	case ch == '@' && !d.IsIdentifierStart('@') && d.AtPlaceholders && t.isIdentChar(t.peekChar(1)):
		t.readChar()
		return t.placeholder(start)
	case isDigit(ch), ch == '.' && isDigit(t.peekChar(1)) && !t.afterName():
		return t.number(start)
	case d.IsIdentifierStart(ch):
		return t.word(start)
	}

	return t.operator(start)
}

// afterName reports whether the previous token can be followed by .field,
// so that t.1 is not read as t followed by .1. Keywords are not names:
// SELECT .5 is a number.
func (t *Tokenizer) afterName() bool {
	switch t.last.Type {
	case token.WORD:
		return t.last.Quote != 0 || t.last.Keyword == keyword.NoKeyword
	case token.RPAREN, token.RBRACKET:
		return true
	}
	// the second dot of a range such as 1..10
	return t.last.Type == token.DOT
}

func (t *Tokenizer) isIdentChar(r rune) bool {
	return r != 0 && (t.dialect.IsIdentifierPart(r) || unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_')
}

// ---------- Comments ----------

func (t *Tokenizer) lineComment(start token.Location) (token.TokenWithSpan, error) {
	for !t.atEOF() && t.ch != '\n' {
		t.readChar()
	}
	if t.ch == '\n' {
		t.readChar()
	}
	return t.comment(start, token.LineComment)
}

func (t *Tokenizer) blockComment(start token.Location) (token.TokenWithSpan, error) {
	t.advance(2)
	depth := 1
	for depth > 0 {
		switch {
		case t.atEOF():
			return token.TokenWithSpan{}, t.lexErr(UnterminatedComment, start, 0)
		case t.hasPrefix("*/"):
			t.advance(2)
			depth--
		case t.dialect.NestedComments && t.hasPrefix("/*"):
			t.advance(2)
			depth++
		default:
			t.readChar()
		}
	}
	return t.comment(start, token.BlockComment)
}

func (t *Tokenizer) comment(start token.Location, kind token.CommentKind) (token.TokenWithSpan, error) {
	text := t.input[start.Offset:t.pos]
	sp := token.NewSpan(start, t.location())
	t.comments = append(t.comments, token.Comment{Kind: kind, Text: text, Span: sp})
	return token.At(token.Token{Type: token.COMMENT, Value: text}, sp), nil
}

// ---------- Strings ----------

// prefixedString handles N'', E'', X'', B'', R'' and U&'' literals.
func (t *Tokenizer) prefixedString(start token.Location) (token.TokenWithSpan, bool, error) {
	d := t.dialect
	next := t.peekChar(1)
	var (
		tok token.TokenWithSpan
		err error
	)
	switch unicode.ToUpper(t.ch) {
	case 'N':
		if next != '\'' {
			return tok, false, nil
		}
		t.readChar()
		tok, err = t.quotedString(start, '\'', token.National, d.BackslashEscape)
	case 'E':
		if next != '\'' || !d.EscapeStrings {
			return tok, false, nil
		}
		t.readChar()
		tok, err = t.quotedString(start, '\'', token.Escaped, true)
	case 'X':
		if next != '\'' {
			return tok, false, nil
		}
		t.readChar()
		tok, err = t.quotedString(start, '\'', token.Hex, false)
	case 'B':
		switch {
		case next == '\'' && d.ByteStrings && d.TripleQuotedStrings && t.peekChar(2) == '\'' && t.peekChar(3) == '\'':
			t.readChar()
			tok, err = t.tripleQuoted(start, '\'', token.TripleByteSingle)
		case next == '"' && d.ByteStrings && d.TripleQuotedStrings && t.peekChar(2) == '"' && t.peekChar(3) == '"':
			t.readChar()
			tok, err = t.tripleQuoted(start, '"', token.TripleByteDouble)
		case next == '\'':
			t.readChar()
			tok, err = t.quotedString(start, '\'', token.ByteSingle, d.ByteStrings && d.BackslashEscape)
		case next == '"' && d.ByteStrings:
			t.readChar()
			tok, err = t.quotedString(start, '"', token.ByteDouble, d.BackslashEscape)
		default:
			return tok, false, nil
		}
	case 'R':
		if !d.RawStrings {
			return tok, false, nil
		}
		switch {
		case next == '\'' && d.TripleQuotedStrings && t.peekChar(2) == '\'' && t.peekChar(3) == '\'':
			t.readChar()
			tok, err = t.tripleRaw(start, '\'', token.TripleRawSingle)
		case next == '"' && d.TripleQuotedStrings && t.peekChar(2) == '"' && t.peekChar(3) == '"':
			t.readChar()
			tok, err = t.tripleRaw(start, '"', token.TripleRawDouble)
		case next == '\'':
			t.readChar()
			tok, err = t.rawString(start, '\'', token.RawSingle)
		case next == '"':
			t.readChar()
			tok, err = t.rawString(start, '"', token.RawDouble)
		default:
			return tok, false, nil
		}
	case 'U':
		if next != '&' || t.peekChar(2) != '\'' || !d.UnicodeEscape {
			return tok, false, nil
		}
		t.advance(2)
		tok, err = t.unicodeString(start)
	default:
		return tok, false, nil
	}
	return tok, true, err
}

// quotedString reads a string delimited by quote. A doubled quote stands for
// itself; backslash escapes apply when backslash is set.
func (t *Tokenizer) quotedString(start token.Location, quote rune, style token.StringStyle, backslash bool) (token.TokenWithSpan, error) {
	t.readChar() // opening quote
	bodyStart := t.pos
	var b strings.Builder
	for {
		switch {
		case t.atEOF():
			return token.TokenWithSpan{}, t.lexErr(UnterminatedString, start, 0)
		case t.ch == quote:
			if t.peekChar(1) == quote {
				b.WriteRune(quote)
				t.advance(2)
				continue
			}
			raw := t.input[bodyStart:t.pos]
			t.readChar()
			body := b.String()
			if !t.unescape {
				body = raw
			}
			return t.emit(start, token.Token{
				Type:      token.STRING,
				Value:     body,
				Style:     style,
				Backslash: backslash && t.unescape && style != token.Escaped,
			})
		case t.ch == '\\' && backslash:
			loc := t.location()
			t.readChar()
			if t.atEOF() {
				return token.TokenWithSpan{}, t.lexErr(UnterminatedString, start, 0)
			}
			if style == token.Escaped {
				if err := t.cEscape(&b, loc); err != nil {
					return token.TokenWithSpan{}, err
				}
				continue
			}
			b.WriteString(mysqlEscape(t.ch))
			t.readChar()
		default:
			b.WriteRune(t.ch)
			t.readChar()
		}
	}
}

// mysqlEscape resolves a backslash escape in dialects that treat backslash
// as an escape character inside ordinary strings.
func mysqlEscape(r rune) string {
	switch r {
	case '0':
		return "\x00"
	case 'b':
		return "\b"
	case 'n':
		return "\n"
	case 'r':
		return "\r"
	case 't':
		return "\t"
	case 'Z':
		return "\x1a"
	case '%', '_':
		return `\` + string(r)
	default:
		return string(r)
	}
}

// cEscape resolves one escape sequence of a PostgreSQL E'' string. The
// backslash has been consumed.
func (t *Tokenizer) cEscape(b *strings.Builder, loc token.Location) error {
	ch := t.ch
	switch ch {
	case 'b':
		b.WriteByte('\b')
	case 'f':
		b.WriteByte('\f')
	case 'n':
		b.WriteByte('\n')
	case 'r':
		b.WriteByte('\r')
	case 't':
		b.WriteByte('\t')
	case 'x':
		t.readChar()
		digits := t.takeWhile(isHexDigit, 2)
		if digits == "" {
			return t.lexErr(InvalidEscape, loc, 'x')
		}
		n, _ := strconv.ParseUint(digits, 16, 8)
		b.WriteRune(rune(n))
		return nil
	case 'u', 'U':
		width := 4
		if ch == 'U' {
			width = 8
		}
		t.readChar()
		digits := t.takeWhile(isHexDigit, width)
		r, ok := decodeCodePoint(digits, width)
		if !ok {
			return t.lexErr(InvalidEscape, loc, ch)
		}
		b.WriteRune(r)
		return nil
	default:
		if ch >= '0' && ch <= '7' {
			digits := t.takeWhile(func(r rune) bool { return r >= '0' && r <= '7' }, 3)
			n, _ := strconv.ParseUint(digits, 8, 16)
			b.WriteRune(rune(n & 0xff))
			return nil
		}
		b.WriteRune(ch)
	}
	t.readChar()
	return nil
}

func (t *Tokenizer) takeWhile(pred func(rune) bool, limit int) string {
	start := t.pos
	for n := 0; n < limit && !t.atEOF() && pred(t.ch); n++ {
		t.readChar()
	}
	return t.input[start:t.pos]
}

func decodeCodePoint(digits string, width int) (rune, bool) {
	if len(digits) != width {
		return 0, false
	}
	n, err := strconv.ParseUint(digits, 16, 32)
	if err != nil || n > unicode.MaxRune || n >= 0xD800 && n <= 0xDFFF {
		return 0, false
	}
	return rune(n), true
}

// unicodeString reads the body of U&'...'. The U& prefix has been consumed.
func (t *Tokenizer) unicodeString(start token.Location) (token.TokenWithSpan, error) {
	t.readChar() // opening quote
	bodyStart := t.pos
	var b strings.Builder
	for {
		switch {
		case t.atEOF():
			return token.TokenWithSpan{}, t.lexErr(UnterminatedString, start, 0)
		case t.ch == '\'':
			if t.peekChar(1) == '\'' {
				b.WriteByte('\'')
				t.advance(2)
				continue
			}
			raw := t.input[bodyStart:t.pos]
			t.readChar()
			body := b.String()
			if !t.unescape {
				body = raw
			}
			return t.emit(start, token.Token{Type: token.STRING, Value: body, Style: token.Unicode})
		case t.ch == '\\':
			loc := t.location()
			t.readChar()
			switch {
			case t.ch == '\\':
				b.WriteByte('\\')
				t.readChar()
			case t.ch == '+':
				t.readChar()
				r, ok := decodeCodePoint(t.takeWhile(isHexDigit, 6), 6)
				if !ok {
					return token.TokenWithSpan{}, t.lexErr(InvalidEscape, loc, '\\')
				}
				b.WriteRune(r)
			default:
				r, ok := decodeCodePoint(t.takeWhile(isHexDigit, 4), 4)
				if !ok {
					return token.TokenWithSpan{}, t.lexErr(InvalidEscape, loc, '\\')
				}
				b.WriteRune(r)
			}
		default:
			b.WriteRune(t.ch)
			t.readChar()
		}
	}
}

// tripleQuoted reads '''...''' or """...""" with the opening quotes still
// unread.
func (t *Tokenizer) tripleQuoted(start token.Location, quote rune, style token.StringStyle) (token.TokenWithSpan, error) {
	closing := strings.Repeat(string(quote), 3)
	t.advance(3)
	bodyStart := t.pos
	var b strings.Builder
	for {
		switch {
		case t.atEOF():
			return token.TokenWithSpan{}, t.lexErr(UnterminatedString, start, 0)
		case t.hasPrefix(closing):
			raw := t.input[bodyStart:t.pos]
			t.advance(3)
			body := b.String()
			if !t.unescape {
				body = raw
			}
			return t.emit(start, token.Token{Type: token.STRING, Value: body, Style: style})
		case t.ch == '\\' && t.dialect.BackslashEscape:
			t.readChar()
			if t.atEOF() {
				return token.TokenWithSpan{}, t.lexErr(UnterminatedString, start, 0)
			}
			b.WriteString(mysqlEscape(t.ch))
			t.readChar()
		default:
			b.WriteRune(t.ch)
			t.readChar()
		}
	}
}

// rawString reads R'...' where backslashes are literal.
func (t *Tokenizer) rawString(start token.Location, quote rune, style token.StringStyle) (token.TokenWithSpan, error) {
	t.readChar()
	bodyStart := t.pos
	for !t.atEOF() && t.ch != quote {
		t.readChar()
	}
	if t.atEOF() {
		return token.TokenWithSpan{}, t.lexErr(UnterminatedString, start, 0)
	}
	body := t.input[bodyStart:t.pos]
	t.readChar()
	return t.emit(start, token.Token{Type: token.STRING, Value: body, Style: style})
}

func (t *Tokenizer) tripleRaw(start token.Location, quote rune, style token.StringStyle) (token.TokenWithSpan, error) {
	closing := strings.Repeat(string(quote), 3)
	t.advance(3)
	bodyStart := t.pos
	for !t.atEOF() && !t.hasPrefix(closing) {
		t.readChar()
	}
	if t.atEOF() {
		return token.TokenWithSpan{}, t.lexErr(UnterminatedString, start, 0)
	}
	body := t.input[bodyStart:t.pos]
	t.advance(3)
	return t.emit(start, token.Token{Type: token.STRING, Value: body, Style: style})
}

// ---------- Identifiers and words ----------

func (t *Tokenizer) word(start token.Location) (token.TokenWithSpan, error) {
	t.readChar()
	for !t.atEOF() && t.dialect.IsIdentifierPart(t.ch) {
		t.readChar()
	}
	return t.emit(start, token.Word(t.input[start.Offset:t.pos], 0))
}

func (t *Tokenizer) quotedIdentifier(start token.Location) (token.TokenWithSpan, error) {
	quote := t.ch
	closing := quote
	if quote == '[' {
		closing = ']'
	}
	t.readChar()
	bodyStart := t.pos
	var b strings.Builder
	for {
		switch {
		case t.atEOF():
			return token.TokenWithSpan{}, t.lexErr(UnterminatedQuotedIdentifier, start, quote)
		case t.ch == closing:
			if closing != ']' && t.peekChar(1) == closing {
				b.WriteRune(closing)
				t.advance(2)
				continue
			}
			raw := t.input[bodyStart:t.pos]
			t.readChar()
			body := b.String()
			if !t.unescape {
				body = raw
			}
			return t.emit(start, token.Word(body, quote))
		default:
			b.WriteRune(t.ch)
			t.readChar()
		}
	}
}

// dollar handles $tag$ strings, $1 placeholders and $name words.
func (t *Tokenizer) dollar(start token.Location) (token.TokenWithSpan, error) {
	d := t.dialect
	next := t.peekChar(1)

	if d.DollarQuotedStrings {
		if next == '$' {
			t.advance(2)
			return t.dollarBody(start, "")
		}
		if !isDigit(next) && t.isIdentChar(next) {
			// Look ahead for the closing $ of the tag.
			rest := t.input[t.readPos:]
			end := strings.IndexFunc(rest, func(r rune) bool { return !t.isIdentChar(r) || r == '$' })
			if end > 0 && rest[end] == '$' {
				tag := rest[:end]
				t.advance(utf8.RuneCountInString(tag) + 2)
				return t.dollarBody(start, tag)
			}
		}
	}

	if next == '$' {
		// $$ only opens a string where dollar quoting exists
		return token.TokenWithSpan{}, t.lexErr(InvalidChar, start, '$')
	}
	if isDigit(next) {
		t.readChar()
		for isDigit(t.ch) {
			t.readChar()
		}
		return t.emit(start, token.Token{Type: token.PLACEHOLDER, Value: t.input[start.Offset:t.pos]})
	}
	if d.IsIdentifierStart('$') {
		return t.word(start)
	}
	if t.isIdentChar(next) {
		t.readChar()
		return t.placeholder(start)
	}
	return token.TokenWithSpan{}, t.lexErr(InvalidChar, start, '$')
}

func (t *Tokenizer) dollarBody(start token.Location, tag string) (token.TokenWithSpan, error) {
	closing := "$" + tag + "$"
	bodyStart := t.pos
	idx := strings.Index(t.input[bodyStart:], closing)
	if idx < 0 {
		return token.TokenWithSpan{}, t.lexErr(UnterminatedString, start, 0)
	}
	body := t.input[bodyStart : bodyStart+idx]
	t.advance(utf8.RuneCountInString(body) + utf8.RuneCountInString(closing))
	return t.emit(start, token.Token{Type: token.STRING, Value: body, Style: token.DollarQuoted, Tag: tag})
}

// placeholder reads the name after a sigil that has been consumed.
func (t *Tokenizer) placeholder(start token.Location) (token.TokenWithSpan, error) {
	for !t.atEOF() && t.isIdentChar(t.ch) {
		t.readChar()
	}
	return t.emit(start, token.Token{Type: token.PLACEHOLDER, Value: t.input[start.Offset:t.pos]})
}

// ---------- Numbers ----------

func (t *Tokenizer) number(start token.Location) (token.TokenWithSpan, error) {
	d := t.dialect

	if t.ch == '0' && (t.peekChar(1) == 'x' || t.peekChar(1) == 'X') && isHexDigit(t.peekChar(2)) {
		t.advance(2)
		for isHexDigit(t.ch) {
			t.readChar()
		}
		return t.emit(start, token.Token{Type: token.NUMBER, Value: t.input[start.Offset:t.pos]})
	}

	if err := t.digits(start); err != nil {
		return token.TokenWithSpan{}, err
	}
	if t.ch == '.' && t.peekChar(1) != '.' {
		t.readChar()
		if err := t.digits(start); err != nil {
			return token.TokenWithSpan{}, err
		}
	}
	if (t.ch == 'e' || t.ch == 'E') && (isDigit(t.peekChar(1)) || (t.peekChar(1) == '+' || t.peekChar(1) == '-') && isDigit(t.peekChar(2))) {
		t.readChar()
		if t.ch == '+' || t.ch == '-' {
			t.readChar()
		}
		if err := t.digits(start); err != nil {
			return token.TokenWithSpan{}, err
		}
	}

	tok := token.Token{Type: token.NUMBER}
	if d.NumericLiteralSuffixes {
		switch {
		case (t.ch == 'B' || t.ch == 'b') && (t.peekChar(1) == 'D' || t.peekChar(1) == 'd') && !t.isIdentChar(t.peekChar(2)):
			t.advance(2)
		case strings.ContainsRune("LlSsYyDdFf", t.ch) && !t.isIdentChar(t.peekChar(1)):
			tok.Long = t.ch == 'L' || t.ch == 'l'
			t.readChar()
		}
	}
	tok.Value = t.input[start.Offset:t.pos]
	return t.emit(start, tok)
}

// digits reads a digit run, allowing single underscores between digits when
// the dialect does.
func (t *Tokenizer) digits(start token.Location) error {
	for {
		switch {
		case isDigit(t.ch):
			t.readChar()
		case t.ch == '_' && t.dialect.NumberUnderscores && t.pos > start.Offset:
			prev := t.input[t.pos-1]
			if prev < '0' || prev > '9' || !isDigit(t.peekChar(1)) {
				return t.lexErr(InvalidNumber, start, '_')
			}
			t.readChar()
		default:
			return nil
		}
	}
}

// ---------- Operators ----------

func (t *Tokenizer) operator(start token.Location) (token.TokenWithSpan, error) {
	d := t.dialect
	if d.IsCustomOperatorPart(t.ch) {
		return t.customOperator(start)
	}

	rest := t.input[t.pos:]
	for n := min(maxOperatorLen, len(rest)); n > 0; n-- {
		if tt, ok := builtinOperators[rest[:n]]; ok {
			t.advance(n)
			return t.emit(start, token.Token{Type: tt, Value: rest[:n]})
		}
	}
	if t.ch == '?' {
		return t.questionPlaceholder(start)
	}
	return token.TokenWithSpan{}, t.lexErr(InvalidChar, start, t.ch)
}

// customOperator reads a user-definable operator the way PostgreSQL does:
// the longest run of operator characters, not crossing a comment start, and
// not ending in + or - unless it also contains one of ~!@#%^&|`?.
func (t *Tokenizer) customOperator(start token.Location) (token.TokenWithSpan, error) {
	rest := t.input[t.pos:]
	n := 0
	for n < len(rest) {
		r, size := utf8.DecodeRuneInString(rest[n:])
		if !t.dialect.IsCustomOperatorPart(r) {
			break
		}
		if n > 0 && (strings.HasPrefix(rest[n:], "--") || strings.HasPrefix(rest[n:], "/*")) {
			break
		}
		n += size
	}
	op := rest[:n]
	if len(op) > 1 && !strings.ContainsAny(op, "~!@#%^&|`?") {
		for len(op) > 1 && (op[len(op)-1] == '+' || op[len(op)-1] == '-') {
			op = op[:len(op)-1]
		}
	}

	if tt, ok := builtinOperators[op]; ok {
		t.advance(len(op))
		return t.emit(start, token.Token{Type: tt, Value: op})
	}
	if op == "?" {
		return t.questionPlaceholder(start)
	}
	t.advance(len(op))
	return t.emit(start, token.Token{Type: token.CUSTOMOP, Value: op})
}

// questionPlaceholder reads ? or ?NNN.
func (t *Tokenizer) questionPlaceholder(start token.Location) (token.TokenWithSpan, error) {
	t.readChar()
	for isDigit(t.ch) {
		t.readChar()
	}
	return t.emit(start, token.Token{Type: token.PLACEHOLDER, Value: t.input[start.Offset:t.pos]})
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isHexDigit(r rune) bool {
	return isDigit(r) || r >= 'a' && r <= 'f' || r >= 'A' && r <= 'F'
}
