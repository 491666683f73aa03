// Package token defines the PoiBoi token kinds and the per-kind
// recognizers the scanner consults, in the fixed priority order spec.md
// §4.1 requires.
package token

import "regexp"

// Kind identifies the lexical category of a Token.
type Kind int

const (
	OpenCodeBlock Kind = iota // {
	CloseCodeBlock            // }
	EndStatement              // ;
	OpenFunctionCall          // (
	CloseFunctionCall         // )
	ArgumentSeparator         // ,
	OpenControlBlock          // [
	CloseControlBlock         // ]
	Assigner                  // =
	KeywordLocal
	KeywordWhile
	KeywordIf
	KeywordElse
	KeywordElif
	KeywordReturn
	KeywordBreak
	String
	Variable
	Builtin
	FunctionName
	EOF
	comment    // matched and discarded, never emitted as a Token
	whitespace // matched and discarded, never emitted as a Token
)

// Token is one lexeme: its kind, the exact matched text, and the
// 1-indexed source line it started on.
type Token struct {
	Kind Kind
	Text string
	Line int
}

func (t Token) String() string {
	return t.Text
}

// Recognizer reports how many leading bytes of code match this kind, or
// -1 if the kind does not match at all. Structural and keyword kinds
// match a fixed prefix; lexeme kinds use a regular expression anchored at
// the start of the string.
type Recognizer func(code string) int

func literal(s string) Recognizer {
	return func(code string) int {
		if len(code) >= len(s) && code[:len(s)] == s {
			return len(s)
		}
		return -1
	}
}

func pattern(re *regexp.Regexp) Recognizer {
	return func(code string) int {
		loc := re.FindStringIndex(code)
		if loc == nil || loc[0] != 0 {
			return -1
		}
		return loc[1]
	}
}

var (
	stringRE   = regexp.MustCompile(`^("(?:[^"\\]|\\.)*")+`)
	variableRE = regexp.MustCompile(`^[a-z][a-zA-Z]*`)
	builtinRE  = regexp.MustCompile(`^[A-Z][A-Z]+`)
	functionRE = regexp.MustCompile(`^[A-Z][a-zA-Z]*[a-z]+[a-zA-Z]*`)
	commentRE  = regexp.MustCompile(`^#.*?#`)
	spaceRE    = regexp.MustCompile(`^\s+`)
)

// Entry pairs a Kind with its Recognizer. Entries is ordered by the
// priority spec.md §4.1 mandates: the scanner tries them in this order
// and takes the first positive match.
type Entry struct {
	Kind       Kind
	Recognize  Recognizer
	Skip       bool // whitespace/comment: matched but never emitted
}

// Entries is the fixed priority-ordered recognizer table.
//
// Keywords are listed before Builtin/FunctionName so that e.g. "IF" is
// never mistaken for a two-letter Builtin and "WHILE" never for a
// five-letter Builtin.
var Entries = []Entry{
	{OpenCodeBlock, literal("{"), false},
	{CloseCodeBlock, literal("}"), false},
	{EndStatement, literal(";"), false},
	{OpenFunctionCall, literal("("), false},
	{CloseFunctionCall, literal(")"), false},
	{ArgumentSeparator, literal(","), false},
	{OpenControlBlock, literal("["), false},
	{CloseControlBlock, literal("]"), false},
	{Assigner, literal("="), false},
	{KeywordLocal, literal("LOCAL"), false},
	{KeywordWhile, literal("WHILE"), false},
	{KeywordIf, literal("IF"), false},
	{KeywordElse, literal("ELSE"), false},
	{KeywordElif, literal("ELIF"), false},
	{KeywordReturn, literal("RETURN"), false},
	{KeywordBreak, literal("BREAK"), false},
	{String, pattern(stringRE), false},
	{Variable, pattern(variableRE), false},
	{Builtin, pattern(builtinRE), false},
	{FunctionName, pattern(functionRE), false},
	{comment, pattern(commentRE), true},
	{whitespace, pattern(spaceRE), true},
}

// Name returns a human-readable label for a Kind, used in parse-error
// messages.
func (k Kind) Name() string {
	switch k {
	case OpenCodeBlock:
		return "'{'"
	case CloseCodeBlock:
		return "'}'"
	case EndStatement:
		return "';'"
	case OpenFunctionCall:
		return "'('"
	case CloseFunctionCall:
		return "')'"
	case ArgumentSeparator:
		return "','"
	case OpenControlBlock:
		return "'['"
	case CloseControlBlock:
		return "']'"
	case Assigner:
		return "'='"
	case KeywordLocal:
		return "LOCAL"
	case KeywordWhile:
		return "WHILE"
	case KeywordIf:
		return "IF"
	case KeywordElse:
		return "ELSE"
	case KeywordElif:
		return "ELIF"
	case KeywordReturn:
		return "RETURN"
	case KeywordBreak:
		return "BREAK"
	case String:
		return "string literal"
	case Variable:
		return "variable"
	case Builtin:
		return "builtin"
	case FunctionName:
		return "function name"
	case EOF:
		return "end of file"
	default:
		return "unknown token"
	}
}
