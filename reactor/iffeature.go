// Copyright 2017 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package reactor

import (
	"fmt"
	"strings"

	"github.com/openconfig/yangschema/qname"
	"github.com/openconfig/yangschema/stmt"
)

// ifExpr is a parsed if-feature boolean expression (RFC 7950 §7.20.2's
// "feature-expr" grammar: feature names combined with not/and/or and
// parentheses).
type ifExpr interface {
	eval(active func(string) bool) bool
	String() string
}

type ifName string

func (e ifName) eval(active func(string) bool) bool { return active(string(e)) }
func (e ifName) String() string                      { return string(e) }

type ifNot struct{ x ifExpr }

func (e ifNot) eval(active func(string) bool) bool { return !e.x.eval(active) }
func (e ifNot) String() string                      { return "not " + e.x.String() }

type ifAnd struct{ a, b ifExpr }

func (e ifAnd) eval(active func(string) bool) bool { return e.a.eval(active) && e.b.eval(active) }
func (e ifAnd) String() string                      { return fmt.Sprintf("(%s and %s)", e.a, e.b) }

type ifOr struct{ a, b ifExpr }

func (e ifOr) eval(active func(string) bool) bool { return e.a.eval(active) || e.b.eval(active) }
func (e ifOr) String() string                      { return fmt.Sprintf("(%s or %s)", e.a, e.b) }

// parseIfFeature parses raw as an if-feature expression. It is deliberately
// small: a tokenizer splitting on whitespace and parens, and a recursive
// descent parser over "or" (lowest precedence), "and", then a unary "not",
// matching RFC 7950's stated precedence.
func parseIfFeature(raw string) (any, error) {
	toks := tokenizeIfFeature(raw)
	p := &ifFeatureParser{toks: toks}
	expr, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.toks) {
		return nil, fmt.Errorf("if-feature %q: unexpected trailing token %q", raw, p.toks[p.pos])
	}
	return expr, nil
}

func tokenizeIfFeature(raw string) []string {
	var toks []string
	var cur strings.Builder
	flush := func() {
		if cur.Len() > 0 {
			toks = append(toks, cur.String())
			cur.Reset()
		}
	}
	for _, r := range raw {
		switch r {
		case '(', ')':
			flush()
			toks = append(toks, string(r))
		case ' ', '\t', '\n':
			flush()
		default:
			cur.WriteRune(r)
		}
	}
	flush()
	return toks
}

type ifFeatureParser struct {
	toks []string
	pos  int
}

func (p *ifFeatureParser) peek() string {
	if p.pos >= len(p.toks) {
		return ""
	}
	return p.toks[p.pos]
}

func (p *ifFeatureParser) next() string {
	t := p.peek()
	p.pos++
	return t
}

func (p *ifFeatureParser) parseOr() (ifExpr, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.peek() == "or" {
		p.next()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = ifOr{left, right}
	}
	return left, nil
}

func (p *ifFeatureParser) parseAnd() (ifExpr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.peek() == "and" {
		p.next()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = ifAnd{left, right}
	}
	return left, nil
}

func (p *ifFeatureParser) parseUnary() (ifExpr, error) {
	if p.peek() == "not" {
		p.next()
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return ifNot{x}, nil
	}
	if p.peek() == "(" {
		p.next()
		expr, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		if p.peek() != ")" {
			return nil, fmt.Errorf("if-feature: expected ')'")
		}
		p.next()
		return expr, nil
	}
	tok := p.next()
	if tok == "" {
		return nil, fmt.Errorf("if-feature: expected a feature name")
	}
	return ifName(qname.StripPrefix(tok)), nil
}

// applyIfFeatureFilter walks the final (post uses/augment/deviate) tree and
// prunes any statement with an unsatisfied if-feature (design §4.1
// "if-feature"). Filtering runs after structural expansion so that a
// feature-gated uses or augment target has already been materialised and is
// pruned along with the rest of its subtree if its feature is inactive.
func (r *Reactor) applyIfFeatureFilter(roots []*Context) {
	for _, root := range roots {
		r.filterChildren(root)
	}
}

func (r *Reactor) filterChildren(ctx *Context) {
	var kept []*Context
	for _, c := range ctx.Children {
		if r.ifFeatureSatisfied(c.Declared) {
			kept = append(kept, c)
		}
	}
	ctx.Children = kept
	declaredChildren := make([]*stmt.Declared, 0, len(kept))
	for _, c := range kept {
		declaredChildren = append(declaredChildren, c.Declared)
		r.filterChildren(c)
	}
	ctx.Declared.Children = declaredChildren
}

func (r *Reactor) ifFeatureSatisfied(d *stmt.Declared) bool {
	for _, c := range d.Children {
		if c.Keyword.Local != "if-feature" {
			continue
		}
		expr, ok := c.Argument.(ifExpr)
		if !ok {
			continue
		}
		if !expr.eval(r.featureActive) {
			return false
		}
	}
	return true
}
