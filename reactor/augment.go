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

	"github.com/openconfig/yangschema/stmt"
	"github.com/openconfig/yangschema/yerrs"
)

// registerAugmentActions finds every "augment" statement reachable from
// roots and schedules its application (design §4.1 "augment"): splicing its
// substatements into the node named by its target path, once that path
// fully resolves (which may take several fixed-point rounds if the target
// is itself produced by a not-yet-expanded uses elsewhere).
func (r *Reactor) registerAugmentActions(roots []*Context) {
	for _, root := range roots {
		var collect func(*Context)
		collect = func(c *Context) {
			if c.Declared.Keyword.Local == "augment" {
				r.scheduleOneAugment(c)
				return // an augment's own children are substatements to
				// splice, not themselves further augments to schedule here
			}
			for _, ch := range c.Children {
				collect(ch)
			}
		}
		collect(root)
	}
}

func (r *Reactor) scheduleOneAugment(augCtx *Context) {
	path := augCtx.Declared.RawArgument
	r.registerAction(&InferenceAction{
		Phase: EffectiveModel,
		Desc:  fmt.Sprintf("augment %q resolves", path),
		Prerequisites: []Prerequisite{
			FuncPrerequisite{
				Desc: fmt.Sprintf("target path %q resolvable", path),
				Fn:   func() bool { _, ok := resolveTargetPath(augCtx, path); return ok },
			},
		},
		Apply: func() error { return r.applyAugment(augCtx) },
	})
}

// resolveTargetPath walks an absolute schema path from a module root. Only
// the first step's optional "prefix:" is resolved, against the Context it
// starts in, to pick that module root; later steps are matched by local
// name alone and their prefixes are ignored.
func resolveTargetPath(ctx *Context, path string) (*Context, bool) {
	segs := splitPath(strings.TrimPrefix(path, "/"))
	if len(segs) == 0 {
		return nil, false
	}
	prefix, local := splitPrefixSeg(segs[0])
	cur, ok := resolveModuleRoot(ctx, prefix)
	if !ok {
		return nil, false
	}
	cur = findChildByName(cur, local)
	if cur == nil {
		return nil, false
	}
	for _, seg := range segs[1:] {
		_, local := splitPrefixSeg(seg)
		cur = findChildByName(cur, local)
		if cur == nil {
			return nil, false
		}
	}
	return cur, true
}

func splitPrefixSeg(seg string) (prefix, local string) {
	if i := strings.IndexByte(seg, ':'); i >= 0 {
		return seg[:i], seg[i+1:]
	}
	return "", seg
}

// findChildByName returns the schema-tree child of ctx named local, looking
// through "case" wrappers transparently (a choice's cases do not appear in
// a schema path).
func findChildByName(ctx *Context, local string) *Context {
	for _, c := range ctx.Children {
		if c.Declared.RawArgument == local && schemaTreeKeywords[c.Declared.Keyword.Local] {
			return c
		}
		if c.Declared.Keyword.Local == "case" {
			if found := findChildByName(c, local); found != nil {
				return found
			}
		}
	}
	return nil
}

func (r *Reactor) applyAugment(augCtx *Context) error {
	target, ok := resolveTargetPath(augCtx, augCtx.Declared.RawArgument)
	if !ok {
		return fmt.Errorf("augment %q: target vanished between prerequisite check and apply", augCtx.Declared.RawArgument)
	}

	key := augCtx.Declared.RawArgument
	claimant := augCtx.Declared.Keyword.Namespace
	if existing, ok := r.augmentClaims[key]; ok && existing != claimant {
		r.errs = yerrs.AppendErr(r.errs, yerrs.SchemaViolation{
			Path:   key,
			Reason: fmt.Sprintf("already augmented by module %q, also claimed by %q", existing, claimant),
		})
		return nil
	}
	if r.augmentClaims == nil {
		r.augmentClaims = make(map[string]string)
	}
	r.augmentClaims[key] = claimant
	r.augmentTargets.Add(key, nil)
	// A target path that is itself a strict prefix of another augment's
	// target (e.g. both "/if:interfaces/if:interface" and
	// "/if:interfaces/if:interface/extra" augmented independently) is
	// legal; PrefixSearch is used only to surface it in diagnostics.
	if matches := r.augmentTargets.PrefixSearch(key); len(matches) > 1 {
		logf("augment target %q shares a prefix with %d other augment target(s): %v", key, len(matches)-1, matches)
	}

	origin := augCtx.Source.Module.ID.Namespace
	var clones []*stmt.Declared
	for _, child := range augCtx.Declared.Children {
		if child.Keyword.Local == "when" || child.Keyword.Local == "description" || child.Keyword.Local == "reference" || child.Keyword.Local == "status" {
			continue
		}
		clone := child.Clone()
		r.noteCopy(clone, stmt.AddedByAugment, origin)
		clones = append(clones, clone)
	}
	target.Declared.Children = append(target.Declared.Children, clones...)
	newCtxs := make([]*Context, len(clones))
	for i, clone := range clones {
		newCtxs[i] = buildContextTree(clone, target, target.Source, target.Module, r)
	}
	target.Children = append(target.Children, newCtxs...)
	for _, nc := range newCtxs {
		r.bindAndValidateSubtree(nc)
		r.scheduleUsesForNode(nc)
	}
	return nil
}
