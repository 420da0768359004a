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
	"github.com/openconfig/yangschema/qname"
	"github.com/openconfig/yangschema/stmt"
)

// SourceContext is the per-file (module or submodule) compilation state
// (design §4.1): it owns the source-local namespace map (e.g. prefix
// bindings) and knows which ModuleContext it belongs to.
type SourceContext struct {
	Name     string // module or submodule name, pre-revision
	ModuleID qname.ModuleID
	IsSubmod bool
	BelongsTo string // only set for submodules

	Module *ModuleContext
	Root   *Context // the Context for this source's own module/submodule statement

	local map[stmt.NamespaceKey]any
}

// ModuleContext is the per-module compilation state shared by a module and
// every submodule that belongs to it (design §4.1 "module-local"). Feature
// and identity namespaces live here so a submodule's feature definitions are
// visible from its belongs-to module and vice versa.
type ModuleContext struct {
	ID     qname.ModuleID
	Main   *SourceContext
	Submodules []*SourceContext

	local map[stmt.NamespaceKey]any
}

// Context mirrors one node of a Declared tree during compilation. It is the
// (context, namespace-class, key) triple's "context" term (design §3): every
// namespace Get/Put call is relative to one of these.
type Context struct {
	Declared *stmt.Declared
	Parent   *Context
	Children []*Context

	Source *SourceContext
	Module *ModuleContext
	R      *Reactor

	Support stmt.Support // bound during StatementDefinition

	// completed records, per phase, whether this context's own work for
	// that phase has finished; used by phase-gate prerequisites.
	completed [len(phaseOrder)]bool

	Effective *stmt.Effective // populated at the end of EffectiveModel

	local map[stmt.NamespaceKey]any // only non-nil on a source's Root context
}

func newContext(d *stmt.Declared, parent *Context, src *SourceContext, mod *ModuleContext, r *Reactor) *Context {
	return &Context{Declared: d, Parent: parent, Source: src, Module: mod, R: r}
}

// buildContextTree walks a Declared tree and creates a matching Context
// tree, threading Source/Module/Reactor backpointers onto every node.
func buildContextTree(d *stmt.Declared, parent *Context, src *SourceContext, mod *ModuleContext, r *Reactor) *Context {
	ctx := newContext(d, parent, src, mod, r)
	ctx.Children = make([]*Context, len(d.Children))
	for i, c := range d.Children {
		ctx.Children[i] = buildContextTree(c, ctx, src, mod, r)
	}
	return ctx
}

// CompletedPhase reports whether ctx finished phase p.
func (ctx *Context) CompletedPhase(p Phase) bool {
	return ctx.completed[p]
}

func (ctx *Context) markCompleted(p Phase) {
	ctx.completed[p] = true
}

// localMap lazily initialises and returns the map backing ctx's own
// namespace storage. Only ever called on a RootStatementLocal-bearing
// context (a source root), a SourceContext, a ModuleContext or the Reactor.
func (ctx *Context) localMap() map[stmt.NamespaceKey]any {
	if ctx.local == nil {
		ctx.local = make(map[stmt.NamespaceKey]any)
	}
	return ctx.local
}

func (sc *SourceContext) localMap() map[stmt.NamespaceKey]any {
	if sc.local == nil {
		sc.local = make(map[stmt.NamespaceKey]any)
	}
	return sc.local
}

func (mc *ModuleContext) localMap() map[stmt.NamespaceKey]any {
	if mc.local == nil {
		mc.local = make(map[stmt.NamespaceKey]any)
	}
	return mc.local
}

// storeFor resolves which backing map a NamespaceClass's Behaviour targets
// for a lookup rooted at ctx.
func storeFor(ctx *Context, b stmt.Behaviour) map[stmt.NamespaceKey]any {
	switch b {
	case stmt.SourceLocal:
		return ctx.Source.localMap()
	case stmt.ModuleLocal:
		return ctx.Module.localMap()
	case stmt.Global:
		return ctx.R.localMap()
	default: // stmt.RootStatementLocal
		return ctx.Source.Root.localMap()
	}
}

// Put writes v under (cls, k) into whichever scope cls.Behaviour names,
// relative to ctx (design §3 "Every lookup resolves against a (context,
// namespace-class, key) triple").
func Put[K comparable, V any](ctx *Context, cls stmt.NamespaceClass[K, V], k K, v V) {
	storeFor(ctx, cls.Behaviour)[stmt.Key(cls, k)] = v
}

// Get reads the value stored under (cls, k) in whichever scope
// cls.Behaviour names, relative to ctx.
func Get[K comparable, V any](ctx *Context, cls stmt.NamespaceClass[K, V], k K) (V, bool) {
	raw, ok := storeFor(ctx, cls.Behaviour)[stmt.Key(cls, k)]
	if !ok {
		var zero V
		return zero, false
	}
	return raw.(V), true
}
