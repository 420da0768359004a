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

package modtree

import (
	"github.com/openconfig/yangschema/datatree"
	"github.com/openconfig/yangschema/stmt"
)

// ApplyContext carries the state a schema-kind strategy needs to validate
// and materialize one Modification: the transaction version being
// stamped, and the case panels already compiled
// for any choice encountered so far in this transaction (built lazily and
// cached, since a choice's panel only depends on its schema, not on the
// data being applied).
type ApplyContext struct {
	Version uint64
	panels  map[*stmt.Effective]*casePanel
}

// NewApplyContext returns a context for one transaction stamped with
// version.
func NewApplyContext(version uint64) *ApplyContext {
	return &ApplyContext{Version: version, panels: make(map[*stmt.Effective]*casePanel)}
}

func (c *ApplyContext) panelFor(choiceSchema *stmt.Effective) *casePanel {
	if p, ok := c.panels[choiceSchema]; ok {
		return p
	}
	p := buildCasePanel(choiceSchema)
	c.panels[choiceSchema] = p
	return p
}

// ApplyOperation is a per-schema-kind strategy (design §4.3 table): it
// validates and materializes mod against schema, given the node currently
// at this position (absent if this is a fresh write).
type ApplyOperation interface {
	Apply(ctx *ApplyContext, schema *stmt.Effective, current *datatree.Versioned, mod *Modification) (*datatree.Versioned, error)
}

// StrategyFor returns the ApplyOperation for a schema-tree keyword, per
// design §4.3's strategy table. Keywords the table does not name (e.g.
// "rpc", "notification", outside this module's scope) fall back to the
// container strategy, which is a reasonable structural default but is
// never expected to be reached by a conforming data-tree schema.
func StrategyFor(keyword string) ApplyOperation {
	switch keyword {
	case "container":
		return containerStrategy{}
	case "list":
		return listStrategy{}
	case "leaf", "leaf-list", "anydata", "anyxml":
		return leafStrategy{}
	case "choice":
		return choiceStrategy{}
	case "augment":
		return augmentationStrategy{}
	default:
		return containerStrategy{}
	}
}

// Apply is the package's entry point (design §4.3 "Apply / merge / write /
// touch"): it dispatches to schema's strategy and returns the new Versioned
// node, or nil if mod was a DELETE that removed the node entirely.
func Apply(ctx *ApplyContext, schema *stmt.Effective, current *datatree.Versioned, mod *Modification) (*datatree.Versioned, error) {
	mod.Seal()
	return StrategyFor(schema.Declared.Keyword.Local).Apply(ctx, schema, current, mod)
}
