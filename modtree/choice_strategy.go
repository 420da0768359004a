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

// choiceStrategy implements design §4.3's "Choice case-enforcement": a
// write/merge/touch that produces a non-empty choice node must draw every
// child from exactly one case.
type choiceStrategy struct{}

func (choiceStrategy) Apply(ctx *ApplyContext, schema *stmt.Effective, current *datatree.Versioned, mod *Modification) (*datatree.Versioned, error) {
	switch mod.Op {
	case DELETE:
		return nil, nil
	case NONE:
		return current, nil
	case WRITE:
		ch, ok := mod.Value.(*datatree.Choice)
		if !ok {
			return nil, schemaViolation(schema, "WRITE value is not a choice")
		}
		if err := enforceCase(ctx, schema, ch.Children); err != nil {
			return nil, err
		}
		return versionedNode(ctx, ch, ctx.Version), nil
	case MERGE, TOUCH:
		base := choiceBase(schema, current)
		var childMax uint64
		for key, childMod := range mod.Children {
			childSchema := schemaChildFor(schema, key)
			if childSchema == nil {
				return nil, schemaViolation(schema, "schema mismatch: no child "+key.String())
			}
			newChild, err := Apply(ctx, childSchema, childCurrent(current, base.Children[key]), childMod)
			if err != nil {
				return nil, err
			}
			if newChild == nil {
				base = base.WithoutChild(key)
				continue
			}
			base = base.WithChild(key, newChild.Node)
			if newChild.SubtreeVersion > childMax {
				childMax = newChild.SubtreeVersion
			}
		}
		if err := enforceCase(ctx, schema, base.Children); err != nil {
			return nil, err
		}
		if len(base.Children) == 0 {
			return nil, nil // automatic lifecycle: an empty choice prunes away
		}
		return versionedNode(ctx, base, childMax), nil
	default:
		return nil, schemaViolation(schema, "unknown modification operation")
	}
}

func choiceBase(schema *stmt.Effective, current *datatree.Versioned) *datatree.Choice {
	if current != nil {
		if c, ok := current.Node.(*datatree.Choice); ok {
			return c
		}
	}
	qn := schema.SchemaPath[len(schema.SchemaPath)-1]
	return &datatree.Choice{Id: datatree.NodeIdentifier{QName: qn}, Children: map[datatree.PathArgument]datatree.Node{}}
}

// enforceCase implements design §4.3's algorithm exactly: inspect any one
// child's identifier, look up its owning case, then assert no identifier
// from any other case is present, then run that case's mandatory-child
// check.
func enforceCase(ctx *ApplyContext, schema *stmt.Effective, children map[datatree.PathArgument]datatree.Node) error {
	if len(children) == 0 {
		return nil
	}
	panel := ctx.panelFor(schema)
	var first datatree.PathArgument
	for k := range children {
		first = k
		break
	}
	owner, ok := panel.ownerOf[first]
	if !ok {
		return schemaViolation(schema, "child "+first.String()+" does not belong to this choice")
	}
	excluded := panel.excluded[owner.Name]
	for k := range children {
		if excluded[k] {
			return schemaViolation(schema, "child "+k.String()+" belongs to another case than "+owner.Name)
		}
	}
	for _, m := range owner.Mandatory {
		if _, ok := children[m]; !ok {
			return schemaViolation(schema, "case "+owner.Name+" missing mandatory child "+m.String())
		}
	}
	return nil
}
