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

// listStrategy implements design §4.3's "container / list / list-entry"
// row for the list collection itself: per-entry recursive apply, plus
// min-elements/max-elements enforcement across the whole collection.
type listStrategy struct{}

func (listStrategy) Apply(ctx *ApplyContext, schema *stmt.Effective, current *datatree.Versioned, mod *Modification) (*datatree.Versioned, error) {
	switch mod.Op {
	case DELETE:
		return nil, nil
	case NONE:
		return current, nil
	case WRITE:
		list, ok := mod.Value.(*datatree.List)
		if !ok {
			return nil, schemaViolation(schema, "WRITE value is not a list")
		}
		if err := checkListBounds(schema, list); err != nil {
			return nil, err
		}
		return versionedNode(ctx, list, ctx.Version), nil
	case MERGE, TOUCH:
		base := listBase(schema, current)
		var childMax uint64
		for key, entryMod := range mod.Children {
			entryID, ok := key.(datatree.ListEntryIdentifier)
			if !ok {
				return nil, schemaViolation(schema, "list child must be keyed by ListEntryIdentifier")
			}
			existing := base.Entries[key]
			newEntry, err := applyListEntry(ctx, schema, entryID, existing, entryMod)
			if err != nil {
				return nil, err
			}
			if newEntry == nil {
				base = base.WithoutEntry(entryID)
				continue
			}
			base = base.WithEntry(newEntry)
		}
		if err := checkListBounds(schema, base); err != nil {
			return nil, err
		}
		return versionedNode(ctx, base, childMax), nil
	default:
		return nil, schemaViolation(schema, "unknown modification operation")
	}
}

func listBase(schema *stmt.Effective, current *datatree.Versioned) *datatree.List {
	if current != nil {
		if l, ok := current.Node.(*datatree.List); ok {
			return l
		}
	}
	qn := schema.SchemaPath[len(schema.SchemaPath)-1]
	return &datatree.List{Id: datatree.NodeIdentifier{QName: qn}, Entries: map[datatree.PathArgument]*datatree.ListEntry{}}
}

// applyListEntry applies entryMod to one keyed entry, recursing into its
// children (key leaves included) the same way containerStrategy does, since a list entry
// is schema-identical to its owning list for child lookup purposes (design
// §4.2: the schema-inference stack does not distinguish "list" from "list
// entry" when descending into children).
func applyListEntry(ctx *ApplyContext, schema *stmt.Effective, id datatree.ListEntryIdentifier, existing *datatree.ListEntry, mod *Modification) (*datatree.ListEntry, error) {
	switch mod.Op {
	case DELETE:
		return nil, nil
	case NONE:
		return existing, nil
	case WRITE:
		entry, ok := mod.Value.(*datatree.ListEntry)
		if !ok {
			return nil, schemaViolation(schema, "WRITE value is not a list entry")
		}
		if err := enforceMandatoryChildren(schema, entry.Children); err != nil {
			return nil, err
		}
		return entry, nil
	case MERGE, TOUCH:
		base := existing
		if base == nil {
			base = &datatree.ListEntry{Id: id, Children: map[datatree.PathArgument]datatree.Node{}}
		}
		for key, childMod := range mod.Children {
			childSchema := schemaChildFor(schema, key)
			if childSchema == nil {
				return nil, schemaViolation(schema, "schema mismatch: no child "+key.String())
			}
			var childVersioned *datatree.Versioned
			if v, ok := base.Children[key]; ok {
				childVersioned = versionedPtr(datatree.NewVersioned(v, 0))
			}
			newChild, err := Apply(ctx, childSchema, childVersioned, childMod)
			if err != nil {
				return nil, err
			}
			if newChild == nil {
				base = base.WithoutChild(key)
				continue
			}
			base = base.WithChild(key, newChild.Node)
		}
		if err := enforceMandatoryChildren(schema, base.Children); err != nil {
			return nil, err
		}
		return base, nil
	default:
		return nil, schemaViolation(schema, "unknown modification operation")
	}
}

// checkListBounds enforces min-elements/max-elements (design §4.3 "enforce
// min-elements/max-elements").
func checkListBounds(schema *stmt.Effective, list *datatree.List) error {
	n := len(list.Entries)
	if c := schema.Declared.Find(yangKeyword("min-elements")); c != nil {
		if min, ok := c.Argument.(int); ok && n < min {
			return schemaViolation(schema, "fewer than min-elements entries")
		}
	}
	if c := schema.Declared.Find(yangKeyword("max-elements")); c != nil {
		// "unbounded" parses to -1 and sets no upper limit.
		if max, ok := c.Argument.(int); ok && max >= 0 && n > max {
			return schemaViolation(schema, "more than max-elements entries")
		}
	}
	return nil
}
