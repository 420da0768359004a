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

// Package stmt holds the declared and effective statement trees the whole
// reactor and inference stack manipulate (design §3), along with the
// namespace and statement-support primitives the reactor phases dispatch
// through.
package stmt

import (
	"strconv"

	"github.com/openconfig/yangschema/qname"
)

// SourceRef is a diagnostic pointer back to where a statement was written,
// supplied by the external parser adapter (design §1 "Out of scope:
// lexer/parser").
type SourceRef struct {
	File string
	Line int
}

func (s SourceRef) String() string {
	if s.File == "" {
		return "<unknown>"
	}
	if s.Line == 0 {
		return s.File
	}
	return s.File + ":" + strconv.Itoa(s.Line)
}

// Declared is a single node of the declared statement tree: a keyword, its
// raw and parsed argument, and its ordered children. The parser produces
// it; during the EffectiveModel phase the reactor's uses, augment, refine
// and deviate handling still splice, replace and remove children in place.
type Declared struct {
	Keyword      qname.QName
	RawArgument  string
	Argument     any // kind depends on Keyword; see stmt/argument.go
	Children     []*Declared
	Source       SourceRef
}

// Find returns the first child with the given keyword, or nil.
func (d *Declared) Find(keyword qname.QName) *Declared {
	for _, c := range d.Children {
		if c.Keyword == keyword {
			return c
		}
	}
	return nil
}

// FindAll returns every child with the given keyword, in declaration order.
func (d *Declared) FindAll(keyword qname.QName) []*Declared {
	var out []*Declared
	for _, c := range d.Children {
		if c.Keyword == keyword {
			out = append(out, c)
		}
	}
	return out
}

// Clone performs a shallow structural copy of d and its children, used by
// the reactor when expanding a uses/augment: the copy gets its own
// Children slice (so appending refine/augment substatements to one copy
// does not mutate another instantiation of the same grouping) but shares
// Argument values, since those are treated as immutable once parsed.
func (d *Declared) Clone() *Declared {
	if d == nil {
		return nil
	}
	cp := *d
	cp.Children = make([]*Declared, len(d.Children))
	for i, c := range d.Children {
		cp.Children[i] = c.Clone()
	}
	return &cp
}
