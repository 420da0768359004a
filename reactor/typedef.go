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
	"strconv"
	"strings"

	"github.com/openconfig/goyang/pkg/yang"

	"github.com/openconfig/yangschema/stmt"
)

// builtinKindByName is the reverse of goyang's yang.TypeKindToName, built
// once so a "type" statement's raw argument can be classified as a builtin
// without this module re-deriving its own builtin-type enum (design §5.1).
var builtinKindByName = func() map[string]yang.TypeKind {
	m := make(map[string]yang.TypeKind, len(yang.TypeKindToName))
	for k, v := range yang.TypeKindToName {
		m[v] = k
	}
	return m
}()

// registerTypedefActions schedules compilation of every "type" statement's
// ResolvedType (design §4.1 "typedef"), reachable from roots, to a fixed
// point: a type deriving from a not-yet-compiled typedef (forward reference
// or cross-module) simply waits for another round.
func (r *Reactor) registerTypedefActions(roots []*Context) {
	if r.resolvedTypes == nil {
		r.resolvedTypes = make(map[*Context]*stmt.ResolvedType)
	}
	for _, root := range roots {
		var collect func(*Context)
		collect = func(c *Context) {
			if c.Declared.Keyword.Local == "type" {
				r.scheduleOneType(c)
			}
			for _, ch := range c.Children {
				collect(ch)
			}
		}
		collect(root)
	}
}

func (r *Reactor) scheduleOneType(typeCtx *Context) {
	raw := typeCtx.Declared.RawArgument
	r.registerAction(&InferenceAction{
		Phase: EffectiveModel,
		Desc:  fmt.Sprintf("type %q compiles", raw),
		Prerequisites: []Prerequisite{
			FuncPrerequisite{
				Desc: fmt.Sprintf("type %q's base is compilable", raw),
				Fn:   func() bool { _, ok := r.tryCompileType(typeCtx); return ok },
			},
		},
		Apply: func() error {
			rt, ok := r.tryCompileType(typeCtx)
			if !ok {
				return fmt.Errorf("type %q: base vanished between prerequisite check and apply", raw)
			}
			r.resolvedTypes[typeCtx] = rt
			return nil
		},
	})
}

// tryCompileType attempts to build typeCtx's ResolvedType. It returns
// ok=false only when resolution depends on a typedef whose own type has not
// yet been compiled; any other problem (unknown type name entirely) is
// reported as a resolved type with no Parent and left for validation
// elsewhere, since the fixed-point loop must never block forever on a
// genuinely undefined name.
func (r *Reactor) tryCompileType(typeCtx *Context) (*stmt.ResolvedType, bool) {
	raw := typeCtx.Declared.RawArgument
	if kind, ok := builtinKindByName[raw]; ok {
		return r.compileBuiltinFacets(typeCtx, kind), true
	}
	if raw == "union" {
		var members []*stmt.ResolvedType
		for _, memberType := range typeCtx.Children {
			if memberType.Declared.Keyword.Local != "type" {
				continue
			}
			mrt, ok := r.resolvedTypes[memberType]
			if !ok {
				return nil, false
			}
			members = append(members, mrt)
		}
		return &stmt.ResolvedType{Name: "union", Base: yang.Yunion, Union: members}, true
	}
	tdCtx, ok := lookupTypedef(typeCtx, raw)
	if !ok {
		// Not a builtin and not a known typedef: report as an unresolved
		// leaf type rather than stalling the fixed point; the missing
		// reference itself is visible in the compiled model's Name field.
		return &stmt.ResolvedType{Name: raw}, true
	}
	innerType := tdCtx.Declared.Find(yq("type"))
	if innerType == nil {
		return nil, false
	}
	innerCtx := findChildContext(tdCtx, innerType)
	parent, ok := r.resolvedTypes[innerCtx]
	if !ok {
		return nil, false
	}
	return applyTypedefFacets(tdCtx, parent), true
}

func findChildContext(parent *Context, d *stmt.Declared) *Context {
	for _, c := range parent.Children {
		if c.Declared == d {
			return c
		}
	}
	return nil
}

// compileBuiltinFacets builds the ResolvedType for a type statement whose
// argument names a builtin kind directly (no typedef indirection),
// gathering its own range/length/pattern/enum/bit/path facets.
func (r *Reactor) compileBuiltinFacets(typeCtx *Context, kind yang.TypeKind) *stmt.ResolvedType {
	rt := &stmt.ResolvedType{Name: typeCtx.Declared.RawArgument, Base: kind, RequireInstance: true}
	applyFacetsFromChildren(rt, typeCtx.Declared)
	return rt
}

// applyTypedefFacets layers a typedef's own type-statement facets on top of
// the ResolvedType its "type" substatement already compiled to (RFC 7950
// §9.4.6: range/length/pattern accumulate down a derivation chain).
func applyTypedefFacets(tdCtx *Context, parent *stmt.ResolvedType) *stmt.ResolvedType {
	rt := &stmt.ResolvedType{
		Name:            tdCtx.Declared.RawArgument,
		Base:            parent.Base,
		Parent:          parent,
		RequireInstance: parent.RequireInstance,
		Path:            parent.Path,
		EnumValues:      parent.EnumValues,
		BitValues:       parent.BitValues,
		Union:           parent.Union,
	}
	rt.Range = append(append([]stmt.Range{}, parent.Range...))
	rt.Length = append(append([]stmt.Range{}, parent.Length...))
	rt.Pattern = append(append([]string{}, parent.Pattern...))
	if def := tdCtx.Declared.Find(yq("default")); def != nil {
		_ = def // default values are carried at the Effective leaf, not the type
	}
	return rt
}

func applyFacetsFromChildren(rt *stmt.ResolvedType, d *stmt.Declared) {
	for _, c := range d.Children {
		switch c.Keyword.Local {
		case "range":
			rt.Range = append(rt.Range, parseRanges(c.RawArgument)...)
		case "length":
			rt.Length = append(rt.Length, parseRanges(c.RawArgument)...)
		case "pattern":
			rt.Pattern = append(rt.Pattern, c.RawArgument)
		case "path":
			rt.Path = c.RawArgument
		case "require-instance":
			rt.RequireInstance = c.RawArgument == "true"
		case "enum":
			rt.EnumValues = append(rt.EnumValues, c.RawArgument)
		case "bit":
			rt.BitValues = append(rt.BitValues, c.RawArgument)
		}
	}
}

// parseRanges parses a range/length argument of the form
// "min..max | min..max | value" into Range bounds, using math.MinInt64/
// MaxInt64 as the "min"/"max" keyword sentinels (RFC 7950 §9.2.4,
// §9.4.4 allow the literal words "min" and "max").
func parseRanges(raw string) []stmt.Range {
	var out []stmt.Range
	for _, part := range strings.Split(raw, "|") {
		part = strings.TrimSpace(part)
		bounds := strings.SplitN(part, "..", 2)
		min := parseBound(bounds[0], true)
		max := min
		if len(bounds) == 2 {
			max = parseBound(bounds[1], false)
		}
		out = append(out, stmt.Range{Min: min, Max: max})
	}
	return out
}

func parseBound(s string, isMin bool) int64 {
	s = strings.TrimSpace(s)
	switch s {
	case "min":
		return minInt64
	case "max":
		return maxInt64
	default:
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			if isMin {
				return minInt64
			}
			return maxInt64
		}
		return v
	}
}

const (
	minInt64 = -(1 << 63)
	maxInt64 = 1<<63 - 1
)
