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

	"github.com/openconfig/yangschema/stmt"
)

// copyMeta records how a cloned Declared statement came to exist, keyed by
// the clone's own pointer identity, so buildEffectiveModel can stamp the
// right CopyType/OriginatingModule onto the Effective it eventually builds
// for that node (design §4.1's provenance tracking). The clone happens at
// the Declared level, before an Effective exists to carry this directly.
type copyMeta struct {
	CopyType stmt.CopyType
	Origin   string
}

func (r *Reactor) noteCopy(d *stmt.Declared, ct stmt.CopyType, origin string) {
	if r.copyInfo == nil {
		r.copyInfo = make(map[*stmt.Declared]copyMeta)
	}
	r.copyInfo[d] = copyMeta{CopyType: ct, Origin: origin}
	for _, c := range d.Children {
		r.noteCopy(c, ct, origin)
	}
}

func (r *Reactor) copyTypeOf(d *stmt.Declared) (stmt.CopyType, string) {
	if m, ok := r.copyInfo[d]; ok {
		return m.CopyType, m.Origin
	}
	return stmt.Original, d.Keyword.Namespace
}

// registerUsesActions finds every "uses" statement reachable from roots and
// schedules its expansion (design §4.1 "uses"). Expansion clones the
// referenced grouping's declared children into the uses statement's
// position once the grouping is resolvable, which may require several
// fixed-point rounds if the grouping itself is defined via a not-yet-
// processed import or contains a nested uses.
func (r *Reactor) registerUsesActions(roots []*Context) {
	for _, root := range roots {
		r.scheduleUsesIn(root)
	}
}

func (r *Reactor) scheduleUsesIn(ctx *Context) {
	for _, c := range ctx.Children {
		r.scheduleUsesForNode(c)
	}
}

func (r *Reactor) scheduleUsesForNode(c *Context) {
	if c.Declared.Keyword.Local == "uses" {
		r.scheduleOneUses(c)
	} else {
		r.scheduleUsesIn(c)
	}
}

func (r *Reactor) scheduleOneUses(usesCtx *Context) {
	r.registerAction(&InferenceAction{
		Phase: EffectiveModel,
		Desc:  fmt.Sprintf("uses %q expands", usesCtx.Declared.RawArgument),
		Prerequisites: []Prerequisite{
			FuncPrerequisite{
				Desc: fmt.Sprintf("grouping %q resolvable", usesCtx.Declared.RawArgument),
				Fn:   func() bool { _, ok := lookupGrouping(usesCtx, usesCtx.Declared.RawArgument); return ok },
			},
		},
		Apply: func() error { return r.expandUses(usesCtx) },
	})
}

func (r *Reactor) expandUses(usesCtx *Context) error {
	gctx, ok := lookupGrouping(usesCtx, usesCtx.Declared.RawArgument)
	if !ok {
		return fmt.Errorf("uses %q: grouping vanished between prerequisite check and apply", usesCtx.Declared.RawArgument)
	}
	parent := usesCtx.Parent
	origin := usesCtx.Source.Module.ID.Namespace
	// A uses that an earlier uses expansion cloned in is a nested
	// expansion; any other uses is the first expansion at its position.
	ct := stmt.Original
	if m, ok := r.copyInfo[usesCtx.Declared]; ok && m.CopyType != stmt.AddedByAugment {
		ct = stmt.AddedByUses
	}

	clones := make([]*stmt.Declared, 0, len(gctx.Declared.Children))
	for _, child := range gctx.Declared.Children {
		if child.Keyword.Local == "description" || child.Keyword.Local == "reference" || child.Keyword.Local == "status" {
			continue // grouping's own documentation, not instantiated
		}
		clone := child.Clone()
		r.noteCopy(clone, ct, origin)
		clones = append(clones, clone)
	}

	spliceDeclared(parent.Declared, usesCtx.Declared, clones)
	newCtxs := make([]*Context, len(clones))
	for i, clone := range clones {
		newCtxs[i] = buildContextTree(clone, parent, parent.Source, parent.Module, r)
	}
	spliceContexts(parent, usesCtx, newCtxs)

	for _, nc := range newCtxs {
		r.bindAndValidateSubtree(nc)
	}
	applyRefines(usesCtx, newCtxs)

	for _, nc := range newCtxs {
		r.scheduleUsesForNode(nc)
	}
	return nil
}

// bindAndValidateSubtree performs the StatementDefinition work a freshly
// spliced-in subtree missed by arriving after that phase already ran to
// completion (Support binding, argument parsing, and recording its
// grouping/typedef/feature declarations), then marks SourceLinkage,
// StatementDefinition and FullDeclaration complete on every node. It does
// not run cardinality validation over the subtree.
func (r *Reactor) bindAndValidateSubtree(ctx *Context) {
	walkContexts(ctx, func(c *Context) {
		c.Support = r.registry.Lookup(c.Declared.Keyword)
		r.parseArgument(c)
		switch c.Declared.Keyword.Local {
		case "grouping":
			Put(c, groupingNS, c.Declared.RawArgument, c)
		case "typedef":
			Put(c, typedefNS, c.Declared.RawArgument, c)
		case "feature":
			Put(c, featureNS, c.Declared.RawArgument, c)
		}
		c.markCompleted(SourceLinkage)
		c.markCompleted(StatementDefinition)
		c.markCompleted(FullDeclaration)
	})
}

// applyRefines applies a minimal subset of "refine" substatements of uses
// (design §4.1's worked refine example covers description/default/config/
// mandatory/presence, the properties most YANG models actually refine);
// a refine targeting any other property is a no-op, which is flagged in
// DESIGN.md as a scoping decision rather than silently mis-applied.
func applyRefines(usesCtx *Context, newChildren []*Context) {
	for _, refine := range usesCtx.Declared.FindAll(yq("refine")) {
		target := findByRelativePath(newChildren, refine.RawArgument)
		if target == nil {
			continue
		}
		for _, kw := range []string{"description", "default", "config", "mandatory", "presence"} {
			if v := refine.Find(yq(kw)); v != nil {
				replaceChildArg(target.Declared, kw, v.RawArgument)
			}
		}
	}
}

func findByRelativePath(roots []*Context, path string) *Context {
	segs := splitPath(path)
	var cur []*Context = roots
	var found *Context
	for _, seg := range segs {
		found = nil
		for _, c := range cur {
			if c.Declared.RawArgument == seg || c.Declared.Keyword.Local == seg {
				found = c
				break
			}
		}
		if found == nil {
			return nil
		}
		cur = found.Children
	}
	return found
}

func splitPath(path string) []string {
	var out []string
	start := 0
	for i := 0; i < len(path); i++ {
		if path[i] == '/' {
			if i > start {
				out = append(out, path[start:i])
			}
			start = i + 1
		}
	}
	if start < len(path) {
		out = append(out, path[start:])
	}
	return out
}

func replaceChildArg(d *stmt.Declared, keyword, raw string) {
	for _, c := range d.Children {
		if c.Keyword.Local == keyword {
			c.RawArgument = raw
			return
		}
	}
	d.Children = append(d.Children, &stmt.Declared{Keyword: yq(keyword), RawArgument: raw})
}

// spliceDeclared replaces old within parent.Children with news, preserving
// order.
func spliceDeclared(parent *stmt.Declared, old *stmt.Declared, news []*stmt.Declared) {
	out := make([]*stmt.Declared, 0, len(parent.Children)-1+len(news))
	for _, c := range parent.Children {
		if c == old {
			out = append(out, news...)
			continue
		}
		out = append(out, c)
	}
	parent.Children = out
}

// spliceContexts replaces old within parent.Children with news, preserving
// order.
func spliceContexts(parent *Context, old *Context, news []*Context) {
	out := make([]*Context, 0, len(parent.Children)-1+len(news))
	for _, c := range parent.Children {
		if c == old {
			out = append(out, news...)
			continue
		}
		out = append(out, c)
	}
	parent.Children = out
}
