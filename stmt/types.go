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

package stmt

import (
	"github.com/openconfig/goyang/pkg/yang"
)

// ResolvedType is the result of compiling a typedef chain (design §5.1,
// "Supplemented from original ODL feature set"). Rather than re-deriving a
// parallel builtin-type enum, the base kind is goyang's own yang.TypeKind —
// the one piece of the builtin type catalogue this module consumes directly
// from the external parser's type library instead of reimplementing it.
type ResolvedType struct {
	// Name is the local name of the type as written ("string", "my-int",
	// "leafref", ...).
	Name string
	// Base is the innermost builtin kind at the root of the typedef
	// chain.
	Base yang.TypeKind
	// Parent is the immediately derived-from type, or nil if Base is a
	// builtin with no typedef indirection.
	Parent *ResolvedType

	// Range restricts the value space for numeric and decimal64 kinds.
	// Empty means unrestricted.
	Range []Range
	// Length restricts string/binary length. Empty means unrestricted.
	Length []Range
	// Pattern holds the accumulated set of pattern restrictions; a value
	// must match all of them (RFC 7950 §9.4.6: patterns from all levels
	// of a derivation chain apply).
	Pattern []string
	// Path is the leafref path expression argument, only set when
	// Base == yang.Yleafref.
	Path string
	// RequireInstance is the leafref/instance-identifier require-instance
	// facet; defaults to true.
	RequireInstance bool
	// EnumValues/BitValues hold the member sets for enumeration and bits
	// types.
	EnumValues []string
	BitValues  []string
	// Union holds the member types of a union.
	Union []*ResolvedType

	// ResolvedLeaf caches the effective statement a leafref/deref target
	// resolves to, populated by the reactor's EffectiveModel phase so
	// repeat lookups by the tree-apply engine do not re-walk the
	// inference stack.
	ResolvedLeaf *Effective
}

// Range is a single numeric or length restriction bound, inclusive on both
// ends. Unbounded ends are represented with Min/Max sentinels documented on
// the reactor's range-compilation code, matching the "min"/"max" keyword
// arguments RFC 7950 allows in range and length substatements.
type Range struct {
	Min, Max int64
}

// IsLeafref reports whether t (or, transitively, the type it was derived
// from) is ultimately a leafref. Per the leafref-closure testable property
// (spec §8), resolution must terminate in a non-leafref type; this accessor
// only looks at t's own Base, since a fully-compiled ResolvedType never
// chains Base==Yleafref into another Base==Yleafref — that chain is walked
// and collapsed once, during compilation, not on every query.
func (t *ResolvedType) IsLeafref() bool {
	return t != nil && t.Base == yang.Yleafref
}

// Root returns the builtin ancestor at the root of t's typedef chain.
func (t *ResolvedType) Root() *ResolvedType {
	for t.Parent != nil {
		t = t.Parent
	}
	return t
}
