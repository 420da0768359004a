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

// Package reactor implements the phased statement-compilation engine
// (design §4): it turns the declared-statement forest handed to it by an
// external parser into an immutable stmt.Model of effective statements,
// running each compilation phase to a fixed point so that statements may
// reference each other regardless of source order.
package reactor

// Phase is one of the four ordered compilation phases (design §4). Every
// inference action is registered against exactly one phase, and a phase
// does not begin until the previous one reaches a fixed point across every
// source handed to the Reactor.
type Phase int

const (
	// SourceLinkage resolves module/submodule identity, belongs-to and
	// import/prefix bindings.
	SourceLinkage Phase = iota
	// StatementDefinition binds every declared statement to its Support
	// (falling back to stmt.OpaqueSupport for unrecognised keywords).
	StatementDefinition
	// FullDeclaration validates substatement cardinality against each
	// Support's rules.
	FullDeclaration
	// EffectiveModel expands uses/grouping, applies augment and deviate,
	// evaluates if-feature, compiles typedef chains, builds the Effective
	// tree bottom-up and finally resolves leafref/deref paths over it.
	EffectiveModel
)

func (p Phase) String() string {
	switch p {
	case SourceLinkage:
		return "source-linkage"
	case StatementDefinition:
		return "statement-definition"
	case FullDeclaration:
		return "full-declaration"
	case EffectiveModel:
		return "effective-model"
	default:
		return "unknown-phase"
	}
}

// phaseOrder is the fixed sequence phases run in.
var phaseOrder = []Phase{SourceLinkage, StatementDefinition, FullDeclaration, EffectiveModel}
