package cllang

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"sync"
	"text/scanner"

	"github.com/npillmayer/gocl"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Token types of the CL notation. Parentheses use their character code.
const (
	EOF    gocl.TokType = scanner.EOF
	Atom   gocl.TokType = scanner.Ident
	LParen gocl.TokType = '('
	RParen gocl.TokType = ')'
)

// CLToken is the token type produced by Tokenize.
type CLToken struct {
	toktype gocl.TokType
	lexeme  string
	span    gocl.Span
}

var _ gocl.Token = CLToken{}

func (t CLToken) TokType() gocl.TokType {
	return t.toktype
}

func (t CLToken) Lexeme() string {
	return t.lexeme
}

func (t CLToken) Span() gocl.Span {
	return t.span
}

func (t CLToken) String() string {
	if t.toktype == EOF {
		return "<EOF>"
	}
	return fmt.Sprintf("%q@%s", t.lexeme, t.span)
}

var lexer *lexmachine.Lexer
var lexerErr error
var lexerOnce sync.Once // monitors one-time compilation of the DFA

func compiledLexer() (*lexmachine.Lexer, error) {
	lexerOnce.Do(func() {
		tracer().Infof("Creating lexer")
		lexer = lexmachine.NewLexer()
		lexer.Add([]byte(`\(`), makeToken(LParen))
		lexer.Add([]byte(`\)`), makeToken(RParen))
		lexer.Add([]byte(`[^ \t\n\r\(\)]+`), makeToken(Atom))
		lexer.Add([]byte(`( |\t|\n|\r)+`), skip)
		if lexerErr = lexer.Compile(); lexerErr != nil {
			tracer().Errorf("Error compiling DFA: %v", lexerErr)
		}
	})
	return lexer, lexerErr
}

// Tokenize splits an input string into tokens. The last token is always of
// type EOF, spanning the end of the input.
func Tokenize(input string) ([]CLToken, error) {
	lx, err := compiledLexer()
	if err != nil {
		return nil, err
	}
	scan, err := lx.Scanner([]byte(input))
	if err != nil {
		return nil, err
	}
	var tokens []CLToken
	for tok, err, eof := scan.Next(); !eof; tok, err, eof = scan.Next() {
		if err != nil {
			// every byte is matched by some pattern, should not happen
			tracer().Errorf("scanner error: %v", err)
			if ui, is := err.(*machines.UnconsumedInput); is {
				scan.TC = ui.FailTC
			}
			continue
		}
		token := tok.(*lexmachine.Token)
		tokens = append(tokens, CLToken{
			toktype: gocl.TokType(token.Type),
			lexeme:  string(token.Lexeme),
			span:    gocl.Span{uint64(token.TC), uint64(token.TC + len(token.Lexeme))},
		})
	}
	end := uint64(len(input))
	tokens = append(tokens, CLToken{toktype: EOF, span: gocl.Span{end, end}})
	tracer().Debugf("tokens: %v", tokens)
	return tokens, nil
}

func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

func makeToken(id gocl.TokType) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(int(id), string(m.Bytes), m), nil
	}
}
