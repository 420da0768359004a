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
	"github.com/openconfig/yangschema/inference"
	"github.com/openconfig/yangschema/stmt"
)

// resolveLeafrefs walks the completed effective model and, for every leaf or
// leaf-list whose ResolvedType chain bottoms out in a leafref, resolves the
// "path" facet against the schema tree via the inference package's mutable
// cursor (design §4.2). Resolution failures are left as a nil ResolvedLeaf
// rather than aborting compilation, since an unresolved leafref is a
// testable property the tree-apply engine is expected to surface on its own
// at validation time (design §8).
func (r *Reactor) resolveLeafrefs(model stmt.Model, roots []*Context) {
	for _, root := range roots {
		if root.Effective == nil {
			continue
		}
		walkEffective(root.Effective, func(e *stmt.Effective) {
			if e.Type == nil || !e.Type.IsLeafref() {
				return
			}
			leaf := e.Type.Root()
			target, ok := inference.ResolveSchemaPath(model, e, leaf.Path)
			if !ok {
				logf("leafref %q at %s did not resolve (from %s)", leaf.Path, e.SchemaPath, inference.ToGNMIPath(e.SchemaPath))
				return
			}
			e.Type.ResolvedLeaf = target
		})
	}
}

func walkEffective(e *stmt.Effective, fn func(*stmt.Effective)) {
	fn(e)
	for _, c := range e.Substatements {
		walkEffective(c, fn)
	}
}
