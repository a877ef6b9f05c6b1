package config

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/cockroachdb/errors"
)

// ParseExpr parses the short form of a descriptor:
//
//	expr = name [ ":" q ] [ "(" expr ")" ]
//
// Names are not checked here, see Validate.
func ParseExpr(s string) (*Descriptor, error) {
	p := exprParser{input: s}

	d, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	p.skipSpaces()

	if p.pos < len(p.input) {
		return nil, p.errorf("unexpected %q", p.input[p.pos:])
	}

	return d, nil
}

type exprParser struct {
	input string
	pos   int
}

func (p *exprParser) errorf(format string, args ...any) error {
	return errors.WithHint(
		errors.Wrapf(ErrSyntax, "%q at offset %d: "+format, append([]any{p.input, p.pos}, args...)...),
		"expected name[:q][(inner)], e.g. tokenmax(levenshtein) or cosine:3",
	)
}

func (p *exprParser) skipSpaces() {
	for p.pos < len(p.input) && p.input[p.pos] == ' ' {
		p.pos++
	}
}

func (p *exprParser) consume(c byte) bool {
	p.skipSpaces()

	if p.pos < len(p.input) && p.input[p.pos] == c {
		p.pos++

		return true
	}

	return false
}

// scan advances over runes accepted by keep and returns them.
func (p *exprParser) scan(keep func(rune) bool) string {
	p.skipSpaces()

	start := p.pos
	for p.pos < len(p.input) && keep(rune(p.input[p.pos])) {
		p.pos++
	}

	return p.input[start:p.pos]
}

func isNameRune(r rune) bool {
	return r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '-')
}

func (p *exprParser) parseExpr() (*Descriptor, error) {
	name := p.scan(isNameRune)
	if name == "" {
		return nil, p.errorf("metric name expected")
	}

	d := &Descriptor{Metric: strings.ToLower(name)}

	if p.consume(':') {
		digits := p.scan(unicode.IsDigit)
		if digits == "" {
			return nil, p.errorf("q-gram size expected")
		}

		q, err := strconv.Atoi(digits)
		if err != nil {
			return nil, p.errorf("q-gram size %s: %v", digits, err)
		}

		d.Q = q
	}

	if p.consume('(') {
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}

		if !p.consume(')') {
			return nil, p.errorf("')' expected")
		}

		d.Inner = inner
	}

	return d, nil
}
