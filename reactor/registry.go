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

// yangMeta is the namespace all built-in YANG keywords belong to, mirroring
// the teacher's treatment of YANG itself as namespace-less (goyang's parser
// likewise has no module namespace for core keywords).
const yangMeta = "urn:ietf:params:xml:ns:yang:1"

func yq(local string) qname.QName { return qname.New(qname.ModuleID{Namespace: yangMeta}, local) }

// Registry holds the Support bound to every known keyword (design §4.1
// "Statement-support registry"). A keyword absent from the Registry falls
// back to stmt.OpaqueSupport during StatementDefinition.
type Registry struct {
	supports map[qname.QName]stmt.Support
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{supports: make(map[qname.QName]stmt.Support)}
}

// Register binds a Support to its own Keyword().
func (r *Registry) Register(s stmt.Support) {
	r.supports[s.Keyword()] = s
}

// Lookup returns the Support bound to kw, or stmt.OpaqueSupport{kw} if none
// was registered.
func (r *Registry) Lookup(kw qname.QName) stmt.Support {
	if s, ok := r.supports[kw]; ok {
		return s
	}
	return stmt.OpaqueSupport{KeywordQN: kw}
}

// DefaultRegistry builds the Registry covering the YANG core statement set
// this module implements explicitly (design §2 "Domain Stack", the reactor
// row): the schema-tree-bearing statements, the grammar statements that
// drive uses/augment/deviate/if-feature/typedef, and the common
// documentation/meta statements. Anything else (rpc, action, notification,
// extension, and vendor statements) is handled generically via
// stmt.OpaqueSupport, which is still a fully functional Support — it simply
// has no cardinality rules and copies its subtree verbatim.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for _, s := range []stmt.Support{
		moduleSupport{}, submoduleSupport{}, belongsToSupport{}, importSupport{}, includeSupport{},
		containerSupport{}, listSupport{}, leafSupport{}, leafListSupport{}, choiceSupport{}, caseSupport{},
		anydataSupport{}, anyxmlSupport{},
		groupingSupport{}, usesSupport{}, refineSupport{}, augmentSupport{},
		typedefSupport{}, typeSupport{},
		featureSupport{}, ifFeatureSupport{},
		deviationSupport{}, deviateSupport{},
	} {
		r.Register(s)
	}
	for _, s := range simpleSupports() {
		r.Register(s)
	}
	return r
}
