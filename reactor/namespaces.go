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

// The namespace classes the reactor itself relies on (design §3's worked
// example plus the grouping/typedef/feature/module lookups the EffectiveModel
// phase needs). Each pairs a lookup-key type with a stored-value type and a
// Behaviour; see stmt.NamespaceClass.
var (
	// groupingNS maps a grouping's local name to the Context of its
	// "grouping" statement, scoped to the enclosing source's root
	// statement (RFC 7950 §6.2.1: visible within the module/submodule and
	// anything it uses/includes).
	groupingNS = stmt.NewNamespaceClass[string, *Context]("grouping", stmt.RootStatementLocal)

	// typedefNS maps a typedef's local name to its Context, same scoping
	// rule as groupingNS.
	typedefNS = stmt.NewNamespaceClass[string, *Context]("typedef", stmt.RootStatementLocal)

	// prefixNS maps an import/belongs-to prefix, as used within one
	// source file, to the ModuleID it resolves to. Source-local: two
	// submodules of the same module may bind the same prefix to
	// different imports.
	prefixNS = stmt.NewNamespaceClass[string, qname.ModuleID]("prefix", stmt.SourceLocal)

	// featureNS maps a feature's local name to its declaring Context,
	// shared by a module and all its submodules.
	featureNS = stmt.NewNamespaceClass[string, *Context]("feature", stmt.ModuleLocal)

	// moduleByIDNS maps a module's identifier to its ModuleContext,
	// visible reactor-wide so import resolution works regardless of
	// which source the reactor processes first.
	moduleByIDNS = stmt.NewNamespaceClass[qname.ModuleID, *ModuleContext]("module-by-id", stmt.Global)
)
