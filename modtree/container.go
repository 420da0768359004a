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

// containerStrategy implements design §4.3's "container / list / list-entry"
// row for container and augmentation-target containers: recursive apply,
// mandatory-descendant enforcement on write.
type containerStrategy struct{}

func (containerStrategy) Apply(ctx *ApplyContext, schema *stmt.Effective, current *datatree.Versioned, mod *Modification) (*datatree.Versioned, error) {
	switch mod.Op {
	case DELETE:
		return nil, nil
	case NONE:
		return current, nil
	case WRITE:
		cont, ok := mod.Value.(*datatree.Container)
		if !ok {
			return nil, schemaViolation(schema, "WRITE value is not a container")
		}
		if err := enforceMandatoryChildren(schema, cont.Children); err != nil {
			return nil, err
		}
		return versionedNode(ctx, cont, ctx.Version), nil
	case MERGE, TOUCH:
		base := containerBase(schema, current)
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
		if err := enforceMandatoryChildren(schema, base.Children); err != nil {
			return nil, err
		}
		if isAutomaticLifecycle(schema) && base.IsEmpty() {
			return nil, nil
		}
		return versionedNode(ctx, base, childMax), nil
	default:
		return nil, schemaViolation(schema, "unknown modification operation")
	}
}

// containerBase returns the Container current already holds, or a freshly
// synthesized empty default if absent (design §4.3 automatic-lifecycle
// mixin: "materializes the empty default before recursing").
func containerBase(schema *stmt.Effective, current *datatree.Versioned) *datatree.Container {
	if current != nil {
		if c, ok := current.Node.(*datatree.Container); ok {
			return c
		}
	}
	qn := schema.SchemaPath[len(schema.SchemaPath)-1]
	return &datatree.Container{
		Id:       datatree.NodeIdentifier{QName: qn},
		Presence: schema.Flags.Presence(),
		Children: map[datatree.PathArgument]datatree.Node{},
	}
}

// enforceMandatoryChildren checks every mandatory schema-tree child of
// schema is present in children (design §4.3 "enforce mandatory-descendants
// on write").
func enforceMandatoryChildren(schema *stmt.Effective, children map[datatree.PathArgument]datatree.Node) error {
	for _, c := range schema.Substatements {
		if !c.IsSchemaNode() || !c.Flags.Mandatory() {
			continue
		}
		qn := c.SchemaPath[len(c.SchemaPath)-1]
		if _, ok := children[datatree.NodeIdentifier{QName: qn}]; !ok {
			return schemaViolation(schema, "missing mandatory child "+qn.Local)
		}
	}
	return nil
}
