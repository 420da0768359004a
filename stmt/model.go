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

import "github.com/openconfig/yangschema/qname"

// Model is the effective model context (design §3): a mapping from module
// identifier to that module's effective statement. It is the root of all
// schema navigation and is immutable once the reactor's EffectiveModel phase
// completes (design §5). Declared here, rather than in package reactor,
// so that both reactor (which builds a Model) and inference (which walks
// one) can depend on it without an import cycle between them.
type Model map[qname.ModuleID]*Effective

// Module looks up a module's effective statement by identifier.
func (m Model) Module(id qname.ModuleID) (*Effective, bool) {
	e, ok := m[id]
	return e, ok
}

// ModuleByNamespace returns the most-recent-revision effective module with
// the given namespace, used when a reference does not pin a revision.
func (m Model) ModuleByNamespace(namespace string) (*Effective, bool) {
	var best *Effective
	var bestRev string
	for id, e := range m {
		if id.Namespace != namespace {
			continue
		}
		if best == nil || id.Revision > bestRev {
			best, bestRev = e, id.Revision
		}
	}
	return best, best != nil
}
