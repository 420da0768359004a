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
	"github.com/openconfig/yangschema/qname"
	"github.com/openconfig/yangschema/stmt"
	"github.com/openconfig/yangschema/yerrs"
)

// yangKeywordMeta is the namespace every built-in YANG keyword belongs to,
// matching the reactor's own yangMeta constant (registry.go) — duplicated
// here rather than exported from reactor to avoid a reactor<->modtree
// import either package would otherwise never need.
const yangKeywordMeta = "urn:ietf:params:xml:ns:yang:1"

func yangKeyword(local string) qname.QName {
	return qname.New(qname.ModuleID{Namespace: yangKeywordMeta}, local)
}

func schemaPathString(schema *stmt.Effective) string {
	if schema.IsSchemaNode() {
		return schema.SchemaPath.String()
	}
	return schema.Declared.Keyword.Local
}

// schemaChildFor finds schema's data-tree child named by key, looking
// through any intervening "case" wrapper (design §4.2 enterDataTree).
func schemaChildFor(schema *stmt.Effective, key datatree.PathArgument) *stmt.Effective {
	id, ok := key.(datatree.NodeIdentifier)
	if !ok {
		return nil
	}
	return findDataChild(schema, id.QName)
}

func findDataChild(schema *stmt.Effective, qn qname.QName) *stmt.Effective {
	for _, c := range schema.Substatements {
		if !c.IsSchemaNode() {
			continue
		}
		if c.Declared.Keyword.Local == "case" {
			if found := findDataChild(c, qn); found != nil {
				return found
			}
			continue
		}
		if c.SchemaPath[len(c.SchemaPath)-1] == qn {
			return c
		}
	}
	return nil
}

// versionedNode wraps node with ctx's transaction version, computing
// SubtreeVersion as the max of this node's own version and childMax
// (design §3 "Versioning": a node's subtree version is the highest version
// stamped anywhere at or below it).
func versionedNode(ctx *ApplyContext, node datatree.Node, childMax uint64) *datatree.Versioned {
	v := datatree.NewVersioned(node, ctx.Version)
	return versionedPtr(v.WithSubtreeVersion(childMax))
}

func versionedPtr(v datatree.Versioned) *datatree.Versioned { return &v }

// childCurrent synthesizes a Versioned view of a child pulled out of a
// container-like current's Children map, for handing to a recursive Apply
// call. The module does not persist a version per child in storage (see
// DESIGN.md), so this approximates the child's prior version as its
// parent's own stamp, sufficient for the structural-sharing and
// mandatory/type validation this engine performs.
func childCurrent(current *datatree.Versioned, node datatree.Node) *datatree.Versioned {
	if node == nil {
		return nil
	}
	if current == nil {
		return versionedPtr(datatree.NewVersioned(node, 0))
	}
	return versionedPtr(datatree.Versioned{Node: node, Version: current.Version, SubtreeVersion: current.SubtreeVersion})
}

func schemaViolation(schema *stmt.Effective, reason string) error {
	return yerrs.SchemaViolation{Path: schemaPathString(schema), Reason: reason}
}

// isAutomaticLifecycle reports whether schema's node synthesizes an empty
// default rather than requiring an explicit presence write (design §4.3
// "automatic lifecycle"): a non-presence container or a choice.
func isAutomaticLifecycle(schema *stmt.Effective) bool {
	switch schema.Declared.Keyword.Local {
	case "container":
		return !schema.Flags.Presence()
	case "choice":
		return true
	default:
		return false
	}
}
