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

	"github.com/openconfig/yangschema/qname"
	"github.com/openconfig/yangschema/stmt"
)

// buildSources creates one SourceContext (and, for a module, one
// ModuleContext) per element of sources, builds the matching Context tree
// and registers the SourceLinkage actions that bind module/submodule
// identity, belongs-to and import prefixes (design §4.1 "SourceLinkage").
// It returns the root Context of each source, in input order.
func (r *Reactor) buildSources(sources []*stmt.Declared) []*Context {
	roots := make([]*Context, len(sources))
	// First pass: every module gets its ModuleContext immediately, since
	// a submodule's belongs-to action needs somewhere to attach once its
	// target module is known, and other modules' import actions need a
	// moduleByIDNS entry to wait on.
	srcs := make([]*SourceContext, len(sources))
	for i, d := range sources {
		isSub := d.Keyword.Local == "submodule"
		src := &SourceContext{Name: d.RawArgument, IsSubmod: isSub}
		srcs[i] = src
		if !isSub {
			rev := firstArg(d, "revision")
			ns := firstArg(d, "namespace")
			id := qname.ModuleID{Namespace: ns, Revision: rev}
			src.ModuleID = id
			mc := &ModuleContext{ID: id, Main: src}
			src.Module = mc
			putGlobal(r, moduleByIDNS, id, mc)
		}
	}
	for i, d := range sources {
		src := srcs[i]
		ctx := buildContextTree(d, nil, src, src.Module, r)
		src.Root = ctx
		roots[i] = ctx
		if src.IsSubmod {
			r.registerBelongsToAction(ctx, src)
		} else {
			r.registerImportActions(ctx, src)
		}
	}
	return roots
}

// firstArg returns the raw argument of the first child of d with the given
// local keyword name, or "" if absent.
func firstArg(d *stmt.Declared, local string) string {
	for _, c := range d.Children {
		if c.Keyword.Local == local {
			return c.RawArgument
		}
	}
	return ""
}

func (r *Reactor) registerBelongsToAction(ctx *Context, src *SourceContext) {
	bt := ctx.Declared.Find(yq("belongs-to"))
	if bt == nil {
		src.Module = &ModuleContext{ID: qname.ModuleID{Namespace: src.Name}, Main: src}
		ctx.markCompleted(SourceLinkage)
		return
	}
	src.BelongsTo = bt.RawArgument
	r.registerAction(&InferenceAction{
		Phase: SourceLinkage,
		Desc:  fmt.Sprintf("submodule %q resolves belongs-to %q", src.Name, src.BelongsTo),
		Prerequisites: []Prerequisite{
			FuncPrerequisite{
				Desc: fmt.Sprintf("module %q registered", src.BelongsTo),
				Fn:   func() bool { return r.lookupModuleByName(src.BelongsTo) != nil },
			},
		},
		Apply: func() error {
			mc := r.lookupModuleByName(src.BelongsTo)
			src.Module = mc
			src.ModuleID = mc.ID
			mc.Submodules = append(mc.Submodules, src)
			ctx.Module = mc
			ctx.markCompleted(SourceLinkage)
			return nil
		},
	})
}

// lookupModuleByName performs a name-based scan of the reactor's global
// module registration; used only during belongs-to resolution, since a
// submodule names its module by plain name rather than by namespace.
func (r *Reactor) lookupModuleByName(name string) *ModuleContext {
	for k, v := range r.global {
		if k.Class() != moduleByIDNS.Name {
			continue
		}
		mc, ok := v.(*ModuleContext)
		if ok && mc.Main.Name == name {
			return mc
		}
	}
	return nil
}

func (r *Reactor) registerImportActions(ctx *Context, src *SourceContext) {
	var pending int
	for _, imp := range ctx.Declared.FindAll(yq("import")) {
		imp := imp
		targetName := imp.RawArgument
		prefix := firstArg(imp, "prefix")
		rev := firstArg(imp, "revision-date")
		pending++
		r.registerAction(&InferenceAction{
			Phase: SourceLinkage,
			Desc:  fmt.Sprintf("%q resolves import of %q", src.Name, targetName),
			Prerequisites: []Prerequisite{
				FuncPrerequisite{
					Desc: fmt.Sprintf("module %q registered", targetName),
					Fn:   func() bool { return r.lookupModuleByName(targetName) != nil },
				},
			},
			Apply: func() error {
				mc := r.lookupModuleByName(targetName)
				id := mc.ID
				if rev != "" {
					id.Revision = rev
				}
				Put(ctx, prefixNS, prefix, id)
				return nil
			},
		})
	}
	if pending == 0 {
		ctx.markCompleted(SourceLinkage)
	} else {
		// Completion of this source's own SourceLinkage work waits for
		// every import action; register a trailing barrier action.
		r.registerAction(&InferenceAction{
			Phase: SourceLinkage,
			Desc:  fmt.Sprintf("%q finishes source linkage", src.Name),
			Prerequisites: importBarrier(ctx, pending),
			Apply: func() error {
				ctx.markCompleted(SourceLinkage)
				return nil
			},
		})
	}
	if !src.IsSubmod {
		ownPrefix := firstArg(ctx.Declared, "prefix")
		Put(ctx, prefixNS, ownPrefix, src.ModuleID)
	}
}

// importBarrier returns a Prerequisite set that is satisfied once n import
// actions for this context have each written their prefixNS entry; modeled
// as a single FuncPrerequisite counting writes rather than n
// PhasePrerequisites, since individual import actions do not have their own
// Context. The count also includes the module's own prefix binding, which
// registerImportActions writes before any phase runs, so the n imports are
// resolved once more than n entries exist.
func importBarrier(ctx *Context, n int) []Prerequisite {
	return []Prerequisite{
		FuncPrerequisite{
			Desc: fmt.Sprintf("all %d import(s) resolved", n),
			Fn: func() bool {
				count := 0
				for k := range ctx.Source.localMap() {
					if k.Class() == prefixNS.Name {
						count++
					}
				}
				return count > n
			},
		},
	}
}
