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

import (
	"strings"

	"github.com/openconfig/yangschema/qname"
)

// SchemaNodeIdentifier is the sequence of QNames from the module root that
// uniquely names a schema node (design §3, glossary). Only schema-tree
// statements (container, list, leaf, leaf-list, choice, case, anydata,
// anyxml, augmentation targets) carry one.
type SchemaNodeIdentifier []qname.QName

// Equal reports whether s and other name the same node.
func (s SchemaNodeIdentifier) Equal(other SchemaNodeIdentifier) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Child returns the schema node identifier for a child named qn.
func (s SchemaNodeIdentifier) Child(qn qname.QName) SchemaNodeIdentifier {
	out := make(SchemaNodeIdentifier, len(s)+1)
	copy(out, s)
	out[len(s)] = qn
	return out
}

// String renders s as a "/"-joined path of local names, prefixed with the
// namespace of the first element, e.g. "(ns)module/container/leaf".
func (s SchemaNodeIdentifier) String() string {
	if len(s) == 0 {
		return "/"
	}
	parts := make([]string, len(s))
	for i, qn := range s {
		parts[i] = qn.Local
	}
	return "(" + s[0].Namespace + ")" + strings.Join(parts, "/")
}

// Effective is a declared statement together with its fully resolved
// sub-statements and inferred attributes (design §3). It is produced only
// by the reactor's EffectiveModel phase and is immutable thereafter: a
// schema change always yields a new Effective tree, never an in-place edit
// (design §5).
type Effective struct {
	*Declared

	// SchemaPath is populated only on schema-tree-bearing statements.
	SchemaPath SchemaNodeIdentifier
	// Flags is the packed status/config/mandatory/user-ordered/presence
	// word (design §3).
	Flags Flags
	// Type is populated on leaf, leaf-list and typedef-bearing
	// statements once the EffectiveModel phase's typedef compilation
	// runs.
	Type *ResolvedType
	// Substatements holds the effective children, in the order produced
	// by grouping/augment expansion and if-feature filtering — this is
	// NOT necessarily Declared.Children, since uses/augment/deviate may
	// have added, removed or reordered children relative to what was
	// literally written at this position.
	Substatements []*Effective
	// Parent is nil only for a module/submodule's own Effective.
	Parent *Effective

	// CopyType records how this statement came to be at its current
	// position (design §4.1).
	CopyType CopyType
	// OriginatingModule is the namespace of the module whose augment or
	// uses caused this statement to be injected here; equal to
	// Keyword.Namespace for a statement no uses or augment copied. The
	// reactor records it for callers and does not read it back itself.
	OriginatingModule string
}

// FindEffective returns the first effective child with the given keyword.
func (e *Effective) FindEffective(keyword qname.QName) *Effective {
	for _, c := range e.Substatements {
		if c.Keyword == keyword {
			return c
		}
	}
	return nil
}

// SchemaChild returns the effective child whose SchemaPath's last element is
// qn, skipping over children with no schema path (e.g. "description").
func (e *Effective) SchemaChild(qn qname.QName) *Effective {
	for _, c := range e.Substatements {
		if len(c.SchemaPath) == 0 {
			continue
		}
		if c.SchemaPath[len(c.SchemaPath)-1] == qn {
			return c
		}
	}
	return nil
}

// IsSchemaNode reports whether e carries a schema node identifier.
func (e *Effective) IsSchemaNode() bool {
	return len(e.SchemaPath) > 0
}
