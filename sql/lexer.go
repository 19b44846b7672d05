package sql

import "fmt"

// Position locates a token or error in the input text. Offset is the byte
// offset from the start of the input; Line and Column are 1-based.
type Position struct {
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("line %d, column %d", p.Line, p.Column)
}

type TokenType int

const (
	Identifier TokenType = iota
	Number
	String
	Comma
	Semicolon
	ParenOpen
	ParenClose
	Asterisk
	Plus
	Minus
	Slash
	Equals
	NotEquals
	LessThan
	GreaterThan
	LessThanOrEqual
	GreaterThanOrEqual
	Select
	From
	Where
	Order
	By
	Asc
	Desc
	Create
	Table
	Int
	Varchar
	Bool
	Primary
	Key
	Not
	Null
	Check
	And
	Or
	True
	False
	EOF
)

// Token is a classified lexical unit. Value holds the scanned text; for
// String tokens it excludes the quote delimiters.
type Token struct {
	Type  TokenType
	Value string
	Pos   Position
}

func (token Token) String() string {
	switch token.Type {
	case Identifier:
		return "Identifier(" + token.Value + ")"
	case Number:
		return "Number(" + token.Value + ")"
	case String:
		return "String(" + token.Value + ")"
	case EOF:
		return "EOF"
	default:
		return token.Value
	}
}

// Lexer scans a SQL string into tokens. A Lexer is a pure function of its
// input: two lexers over the same text produce identical token sequences,
// and no state is shared between instances.
type Lexer struct {
	sql          string
	position     int
	readPosition int
	ch           byte
	line         int
	column       int
}

func NewLexer(sql string) *Lexer {
	lexer := &Lexer{sql: sql, line: 1}
	lexer.readChar()
	return lexer
}

func (lexer *Lexer) readChar() {
	if lexer.ch == '\n' {
		lexer.line++
		lexer.column = 0
	}
	if lexer.readPosition >= len(lexer.sql) {
		lexer.ch = 0
	} else {
		lexer.ch = lexer.sql[lexer.readPosition]
	}
	lexer.position = lexer.readPosition
	lexer.readPosition++
	lexer.column++
}

func (lexer *Lexer) peekChar() byte {
	if lexer.readPosition >= len(lexer.sql) {
		return 0
	}
	return lexer.sql[lexer.readPosition]
}

func (lexer *Lexer) pos() Position {
	return Position{Offset: lexer.position, Line: lexer.line, Column: lexer.column}
}

// NextToken scans and returns the next token. It reports
// *InvalidCharacterError for bytes that match no token rule and
// *UnterminatedStringError for a string literal still open at end of input.
func (lexer *Lexer) NextToken() (Token, error) {
	lexer.skipWhitespace()

	pos := lexer.pos()

	switch lexer.ch {
	case 0:
		return Token{Type: EOF, Pos: pos}, nil
	case ',':
		return lexer.single(Comma, pos), nil
	case ';':
		return lexer.single(Semicolon, pos), nil
	case '(':
		return lexer.single(ParenOpen, pos), nil
	case ')':
		return lexer.single(ParenClose, pos), nil
	case '*':
		return lexer.single(Asterisk, pos), nil
	case '+':
		return lexer.single(Plus, pos), nil
	case '-':
		return lexer.single(Minus, pos), nil
	case '/':
		return lexer.single(Slash, pos), nil
	case '=':
		return lexer.single(Equals, pos), nil
	case '!':
		if lexer.peekChar() == '=' {
			lexer.readChar()
			lexer.readChar()
			return Token{Type: NotEquals, Value: "!=", Pos: pos}, nil
		}
		return Token{}, &InvalidCharacterError{Char: '!', Pos: pos}
	case '>':
		if lexer.peekChar() == '=' {
			lexer.readChar()
			lexer.readChar()
			return Token{Type: GreaterThanOrEqual, Value: ">=", Pos: pos}, nil
		}
		return lexer.single(GreaterThan, pos), nil
	case '<':
		if lexer.peekChar() == '=' {
			lexer.readChar()
			lexer.readChar()
			return Token{Type: LessThanOrEqual, Value: "<=", Pos: pos}, nil
		}
		return lexer.single(LessThan, pos), nil
	case '\'', '"':
		return lexer.readString(lexer.ch, pos)
	}

	if isDigit(lexer.ch) {
		return Token{Type: Number, Value: lexer.readNumber(), Pos: pos}, nil
	}
	if isIdentStart(lexer.ch) {
		literal := lexer.readIdentifier()
		return Token{Type: lookupIdentifier(literal), Value: literal, Pos: pos}, nil
	}

	return Token{}, &InvalidCharacterError{Char: lexer.ch, Pos: pos}
}

func (lexer *Lexer) single(tokenType TokenType, pos Position) Token {
	token := Token{Type: tokenType, Value: string(lexer.ch), Pos: pos}
	lexer.readChar()
	return token
}

// skipWhitespace also discards -- line comments.
func (lexer *Lexer) skipWhitespace() {
	for {
		switch {
		case lexer.ch == ' ' || lexer.ch == '\t' || lexer.ch == '\n' || lexer.ch == '\r':
			lexer.readChar()
		case lexer.ch == '-' && lexer.peekChar() == '-':
			for lexer.ch != '\n' && lexer.ch != 0 {
				lexer.readChar()
			}
		default:
			return
		}
	}
}

func (lexer *Lexer) readIdentifier() string {
	position := lexer.position
	for isIdentPart(lexer.ch) {
		lexer.readChar()
	}
	return lexer.sql[position:lexer.position]
}

func (lexer *Lexer) readString(quote byte, pos Position) (Token, error) {
	lexer.readChar() // skip opening quote
	position := lexer.position
	for lexer.ch != quote {
		if lexer.ch == 0 {
			return Token{}, &UnterminatedStringError{Pos: pos}
		}
		lexer.readChar()
	}
	str := lexer.sql[position:lexer.position]
	lexer.readChar() // skip closing quote
	return Token{Type: String, Value: str, Pos: pos}, nil
}

func (lexer *Lexer) readNumber() string {
	position := lexer.position
	for isDigit(lexer.ch) {
		lexer.readChar()
	}
	return lexer.sql[position:lexer.position]
}

func isIdentStart(ch byte) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z') || ch == '_'
}

func isIdentPart(ch byte) bool {
	return isIdentStart(ch) || isDigit(ch)
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

// lookupIdentifier resolves keywords case-insensitively; anything not in the
// keyword table is an identifier.
func lookupIdentifier(id string) TokenType {
	switch toUpper(id) {
	case "SELECT":
		return Select
	case "FROM":
		return From
	case "WHERE":
		return Where
	case "ORDER":
		return Order
	case "BY":
		return By
	case "ASC":
		return Asc
	case "DESC":
		return Desc
	case "CREATE":
		return Create
	case "TABLE":
		return Table
	case "INT":
		return Int
	case "VARCHAR":
		return Varchar
	case "BOOL":
		return Bool
	case "PRIMARY":
		return Primary
	case "KEY":
		return Key
	case "NOT":
		return Not
	case "NULL":
		return Null
	case "CHECK":
		return Check
	case "AND":
		return And
	case "OR":
		return Or
	case "TRUE":
		return True
	case "FALSE":
		return False
	default:
		return Identifier
	}
}

// toUpper converts a string to uppercase without allocating for ASCII
// strings that are already uppercase.
func toUpper(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] >= 'a' && s[i] <= 'z' {
			b := make([]byte, len(s))
			for j := 0; j < len(s); j++ {
				if s[j] >= 'a' && s[j] <= 'z' {
					b[j] = s[j] - 32
				} else {
					b[j] = s[j]
				}
			}
			return string(b)
		}
	}
	return s
}

// Tokenize scans the whole input, returning every token up to and including
// the EOF token.
func Tokenize(sql string) ([]Token, error) {
	lexer := NewLexer(sql)

	var tokens []Token

	for {
		token, err := lexer.NextToken()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, token)
		if token.Type == EOF {
			return tokens, nil
		}
	}
}

// IsKeyword reports whether word is a reserved keyword of the dialect.
func IsKeyword(word string) bool {
	return lookupIdentifier(word) != Identifier
}
