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

// augmentationStrategy implements design §4.3's "augmentation" row by
// applying the nested strategy for each augmented child. It does not check
// that the augmentation's parent is present before applying. An
// Augmentation groups the children one `augment` statement added to its
// target (design §3 "composite for augmentation"); it has no schema kind of
// its own distinct from its target, and its MERGE/TOUCH case repeats
// containerStrategy's per-child recursion.
type augmentationStrategy struct{}

func (augmentationStrategy) Apply(ctx *ApplyContext, schema *stmt.Effective, current *datatree.Versioned, mod *Modification) (*datatree.Versioned, error) {
	switch mod.Op {
	case DELETE:
		return nil, nil
	case NONE:
		return current, nil
	case WRITE:
		aug, ok := mod.Value.(*datatree.Augmentation)
		if !ok {
			return nil, schemaViolation(schema, "WRITE value is not an augmentation")
		}
		return versionedNode(ctx, aug, ctx.Version), nil
	case MERGE, TOUCH:
		base := augmentationBase(schema, current)
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
		if len(base.Children) == 0 {
			return nil, nil
		}
		return versionedNode(ctx, base, childMax), nil
	default:
		return nil, schemaViolation(schema, "unknown modification operation")
	}
}

func augmentationBase(schema *stmt.Effective, current *datatree.Versioned) *datatree.Augmentation {
	if current != nil {
		if a, ok := current.Node.(*datatree.Augmentation); ok {
			return a
		}
	}
	return &datatree.Augmentation{Children: map[datatree.PathArgument]datatree.Node{}}
}
