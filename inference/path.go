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

package inference

import (
	"strings"

	gpb "github.com/openconfig/gnmi/proto/gnmi"

	"github.com/openconfig/yangschema/qname"
	"github.com/openconfig/yangschema/stmt"
)

// ResolveSchemaPath resolves a leafref/deref path argument (design §4.2)
// relative to from, walking the Stack's Enter/Exit primitives one step at a
// time, and returns the Effective statement the path names. Absolute paths
// ("/a/b/c") start again from from's owning module; relative paths use ".."
// steps to walk up before any forward steps.
func ResolveSchemaPath(model stmt.Model, from *stmt.Effective, path string) (*stmt.Effective, bool) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, false
	}
	absolute := strings.HasPrefix(path, "/")
	steps := splitSteps(strings.TrimPrefix(path, "/"))

	var start *stmt.Effective
	if absolute {
		start = moduleRootOf(from)
	} else {
		start = from
	}
	stack := NewStack(rootStatement(start))
	if !absolute {
		// Position the stack at `from` itself by replaying from's own
		// schema path, so that relative ".." steps below walk up from
		// the right place rather than from the module root.
		for _, qn := range from.SchemaPath {
			if err := stack.EnterSchemaTree(qn.Local); err != nil {
				return nil, false
			}
		}
	}

	for _, step := range steps {
		if step == ".." {
			if err := stack.Exit(); err != nil {
				return nil, false
			}
			continue
		}
		_, local := qname.SplitPrefix(step)
		if err := stack.EnterSchemaTree(local); err != nil {
			return nil, false
		}
	}
	if stack.Dirty() {
		return nil, false
	}
	return stack.Current(), true
}

func splitSteps(path string) []string {
	var out []string
	for _, s := range strings.Split(path, "/") {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// rootStatement walks up from e to the module/submodule's own Effective
// statement, the only node with Parent == nil.
func rootStatement(e *stmt.Effective) *stmt.Effective {
	for e.Parent != nil {
		e = e.Parent
	}
	return e
}

func moduleRootOf(e *stmt.Effective) *stmt.Effective {
	return rootStatement(e)
}

// ToGNMIPath renders a resolved Effective's SchemaPath as a gNMI Path,
// reusing gpb.Path as the wire-adjacent path representation the rest of the
// ecosystem already speaks (design §2 "Domain Stack"), rather than this
// module inventing its own path wire type. Used by the codec package to
// name a leaf value's location and by the reactor's log line for an
// unresolved leafref.
func ToGNMIPath(sp stmt.SchemaNodeIdentifier) *gpb.Path {
	elems := make([]*gpb.PathElem, len(sp))
	for i, qn := range sp {
		elems[i] = &gpb.PathElem{Name: qn.Local}
	}
	return &gpb.Path{Elem: elems}
}
