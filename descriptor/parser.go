package descriptor

import (
	"fmt"
	"strings"
)

type node struct {
	name string
	args []node
}

// parser is a recursive-descent reader over a single type string. Commas and
// parentheses are only significant at the depth they are read at, so nested
// argument lists never split an outer one.
type parser struct {
	s   string
	pos int
}

func (p *parser) parseType() (node, error) {
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.s) {
		c := p.s[p.pos]
		if c == '(' || c == ')' || c == ',' {
			break
		}
		p.pos++
	}
	name := strings.TrimSpace(p.s[start:p.pos])
	if name == "" {
		return node{}, p.errorf("missing type name")
	}
	n := node{name: name}
	if p.pos >= len(p.s) || p.s[p.pos] != '(' {
		return n, nil
	}

	p.pos++ // (
	p.skipSpace()
	if p.pos < len(p.s) && p.s[p.pos] == ')' {
		p.pos++
		return n, nil
	}
	for {
		arg, err := p.parseType()
		if err != nil {
			return node{}, err
		}
		n.args = append(n.args, arg)

		p.skipSpace()
		if p.pos >= len(p.s) {
			return node{}, p.errorf("unbalanced parentheses")
		}
		switch p.s[p.pos] {
		case ',':
			p.pos++
		case ')':
			p.pos++
			return n, nil
		default:
			return node{}, p.errorf("unexpected %q", p.s[p.pos])
		}
	}
}

func (p *parser) skipSpace() {
	for p.pos < len(p.s) && (p.s[p.pos] == ' ' || p.s[p.pos] == '\t' || p.s[p.pos] == '\n' || p.s[p.pos] == '\r') {
		p.pos++
	}
}

func (p *parser) errorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s at offset %d in %q", ErrMalformed, fmt.Sprintf(format, args...), p.pos, p.s)
}
