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

// Prerequisite gates an InferenceAction: the action does not run until every
// one of its Prerequisites is Satisfied (design §4.1 "fixed-point
// inference-action loop").
type Prerequisite interface {
	Satisfied() bool
	String() string
}

// PhasePrerequisite blocks until another context reaches a given phase.
type PhasePrerequisite struct {
	Ctx   *Context
	Phase Phase
}

func (p PhasePrerequisite) Satisfied() bool { return p.Ctx.CompletedPhase(p.Phase) }

func (p PhasePrerequisite) String() string {
	name := "?"
	if p.Ctx.Declared != nil {
		name = p.Ctx.Declared.RawArgument
	}
	return fmt.Sprintf("%q reaches phase %s", name, p.Phase)
}

// NamespacePrerequisite blocks until a namespace entry is present.
type NamespacePrerequisite[K comparable, V any] struct {
	Ctx *Context
	Cls stmt.NamespaceClass[K, V]
	Key K
}

func (p NamespacePrerequisite[K, V]) Satisfied() bool {
	_, ok := Get(p.Ctx, p.Cls, p.Key)
	return ok
}

func (p NamespacePrerequisite[K, V]) String() string {
	return fmt.Sprintf("namespace %s has key %v", p.Cls.Name, p.Key)
}

// FuncPrerequisite wraps an arbitrary predicate, for prerequisites that
// cannot be expressed as a fixed namespace lookup (e.g. "this augment's
// target path fully resolves").
type FuncPrerequisite struct {
	Desc string
	Fn   func() bool
}

func (p FuncPrerequisite) Satisfied() bool { return p.Fn() }
func (p FuncPrerequisite) String() string  { return p.Desc }

// InferenceAction is one unit of compilation work (design §4.1). The
// Reactor repeatedly scans each phase's pending actions and Applies any
// whose Prerequisites are all Satisfied, until a full scan makes no
// progress (a fixed point).
type InferenceAction struct {
	Phase         Phase
	Prerequisites []Prerequisite
	Apply         func() error
	Desc          string
}

func (a *InferenceAction) ready() bool {
	for _, p := range a.Prerequisites {
		if !p.Satisfied() {
			return false
		}
	}
	return true
}

func (a *InferenceAction) unmet() []Prerequisite {
	var out []Prerequisite
	for _, p := range a.Prerequisites {
		if !p.Satisfied() {
			out = append(out, p)
		}
	}
	return out
}
