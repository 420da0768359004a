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

// Behaviour selects which scope a namespace's lookups and writes are
// consulted against (design §3, §4.1). This replaces the teacher's source
// namespace class token + reflective cast with an ordinary enum field on a
// typed NamespaceClass value (design §9 "Dynamic dispatch over namespace
// class").
type Behaviour int

const (
	// RootStatementLocal namespaces are consulted by walking up to the
	// root statement of the enclosing source (the module or submodule
	// statement itself), e.g. the grouping-name namespace.
	RootStatementLocal Behaviour = iota
	// SourceLocal namespaces are pinned to whichever source file
	// introduced the entry, even after a submodule's statements are
	// merged under their belongs-to module — e.g. prefix-to-module
	// bindings, which are per-file.
	SourceLocal
	// ModuleLocal namespaces target the owning (belongs-to-resolved)
	// module's context regardless of which submodule performed the
	// write, e.g. the feature-name and identity namespaces.
	ModuleLocal
	// Global namespaces target the reactor-wide map, e.g. the namespace
	// of schema-tree root QNames across every source handed to one
	// reactor instance.
	Global
)

func (b Behaviour) String() string {
	switch b {
	case SourceLocal:
		return "source-local"
	case ModuleLocal:
		return "module-local"
	case Global:
		return "global"
	default:
		return "root-statement-local"
	}
}

// NamespaceClass is a typed namespace key: K is the lookup key type (e.g.
// string for a prefix, qname.QName for a feature name) and V is the value
// type stored under that key (e.g. *ModuleContext, *Effective). Declaring
// Behaviour on the class itself — rather than threading it through every
// call site — means a lookup is an ordinary generic function keyed on
// (class, key), never a reflective map-of-any cast.
type NamespaceClass[K comparable, V any] struct {
	Name      string
	Behaviour Behaviour
}

// NewNamespaceClass constructs a NamespaceClass. Kept as a function (rather
// than requiring callers to build the struct literal) so adding fields to
// NamespaceClass later does not break every call site.
func NewNamespaceClass[K comparable, V any](name string, b Behaviour) NamespaceClass[K, V] {
	return NamespaceClass[K, V]{Name: name, Behaviour: b}
}

// NamespaceKey is the type-erased map key used by the context storage that
// backs every NamespaceClass, regardless of K's concrete type. Exported only
// for use by package reactor's Context implementation, the sole consumer of
// the raw maps a NamespaceClass is backed by.
type NamespaceKey struct {
	class string
	key   any
}

// Key builds the type-erased storage key for a lookup of cls at key k.
func Key[K comparable, V any](cls NamespaceClass[K, V], k K) NamespaceKey {
	return NamespaceKey{class: cls.Name, key: k}
}

// Class returns the owning NamespaceClass's Name, letting a consumer scan a
// raw storage map for every entry belonging to one class without knowing
// its K, V types (used by the reactor's import/belongs-to barrier checks).
func (k NamespaceKey) Class() string { return k.class }
