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
	"fmt"

	"github.com/openconfig/yangschema/datatree"
)

// PathArgument re-exports datatree's key type for callers that only need
// the modification tree API and shouldn't otherwise need to import
// datatree directly.
type PathArgument = datatree.PathArgument

// Modification is the transient per-path overlay record (design §3
// glossary "Modification node"). It is mutated while a transaction is
// open and Sealed once handed to Apply; mutating a sealed Modification is
// an IllegalStateUse-class programmer error.
type Modification struct {
	Op       Operation
	Value    datatree.Node
	Children map[PathArgument]*Modification

	sealed bool
}

// NewModification returns an open Modification recording op against value
// (value may be nil for TOUCH/DELETE/NONE, which carry no value of their
// own).
func NewModification(op Operation, value datatree.Node) *Modification {
	return &Modification{Op: op, Value: value}
}

// Child returns the child Modification recorded at key, or nil.
func (m *Modification) Child(key PathArgument) *Modification {
	return m.Children[key]
}

// SetChild records child at key, creating the Children map on first use.
// Panics if m is sealed, mirroring the teacher's fail-fast style for
// programmer misuse rather than returning an error for something that can
// never happen at runtime from valid input.
func (m *Modification) SetChild(key PathArgument, child *Modification) {
	if m.sealed {
		panic(fmt.Sprintf("modtree: SetChild on sealed modification at %v", key))
	}
	if m.Children == nil {
		m.Children = make(map[PathArgument]*Modification)
	}
	m.Children[key] = child
}

// Seal marks m and its descendants read-only; Apply seals every
// Modification it consumes before returning, discarding the transaction's
// write handle per design §3's "sealed and discarded after apply"
// lifecycle note.
func (m *Modification) Seal() {
	if m.sealed {
		return
	}
	m.sealed = true
	for _, c := range m.Children {
		c.Seal()
	}
}

// Sealed reports whether m has been sealed.
func (m *Modification) Sealed() bool { return m.sealed }
