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

package datatree

// Versioned wraps a Node with the monotonic stamps the tree-apply engine
// uses to detect concurrent writes and to let unmodified subtrees be shared
// by reference between successive tree versions (design §3, §4.3
// "Versioning").
type Versioned struct {
	Node Node
	// Version is the transaction that last modified this exact node.
	Version uint64
	// SubtreeVersion is the highest Version stamped anywhere at or below
	// this node; unequal to Version only when a descendant changed but
	// this node's own value did not (e.g. a container whose child
	// changed but that itself was not rewritten).
	SubtreeVersion uint64
}

// NewVersioned stamps node with version as both its own and subtree
// version, the state of a freshly written leaf node with no children to
// propagate from.
func NewVersioned(node Node, version uint64) Versioned {
	return Versioned{Node: node, Version: version, SubtreeVersion: version}
}

// WithSubtreeVersion returns a copy of v with SubtreeVersion raised to at
// least version, used when a descendant's write bumps an ancestor's
// subtree stamp without changing the ancestor's own Node value.
func (v Versioned) WithSubtreeVersion(version uint64) Versioned {
	if version > v.SubtreeVersion {
		v.SubtreeVersion = version
	}
	return v
}

// VersionGenerator hands out monotonically increasing transaction version
// numbers, one per successfully applied modification (design §4.3
// "Versioning"). Not safe for concurrent use, matching the reactor's own
// single-threaded model (design §6) — the apply engine serializes
// transactions against one tree root.
type VersionGenerator struct {
	next uint64
}

// Next returns the next version number, starting at 1 so the zero value of
// Versioned is distinguishable from any applied version.
func (g *VersionGenerator) Next() uint64 {
	g.next++
	return g.next
}
