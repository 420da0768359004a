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

// Package datatree implements the normalized-node tree (design §3): the
// tagged union of instance-data node kinds (leaf, leaf-set entry, leaf-set,
// container, list, list entry, choice, augmentation, anydata, anyxml) and
// the versioned wrapper the tree-apply engine stamps on every successful
// write. Every node is structurally immutable; constructing a modified node
// yields a new value that shares unchanged children by reference, the same
// discipline the teacher's generated GoStructs follow for their own
// validated-in-place-but-logically-replaced field updates.
package datatree

import (
	"fmt"
	"sort"
	"strings"

	"github.com/openconfig/yangschema/qname"
)

// PathArgument identifies one child slot under a container-like node (design
// §3 "composite for augmentation/list-entry"). Implementations are
// comparable so they can key the Children maps directly.
type PathArgument interface {
	fmt.Stringer
	pathArgument()
}

// NodeIdentifier is the PathArgument for every node kind whose identity is a
// single QName: container, list (the list itself, not an entry), choice,
// leaf, anydata, anyxml.
type NodeIdentifier struct {
	QName qname.QName
}

func (NodeIdentifier) pathArgument() {}

func (n NodeIdentifier) String() string { return n.QName.String() }

// LeafSetEntryIdentifier identifies one entry of a leaf-list by the pair of
// its owning QName and value, since leaf-list entries have no key
// statement of their own (design §3 glossary "leaf-set entry").
type LeafSetEntryIdentifier struct {
	QName qname.QName
	Value any
}

func (LeafSetEntryIdentifier) pathArgument() {}

func (n LeafSetEntryIdentifier) String() string {
	return fmt.Sprintf("%s[.=%v]", n.QName, n.Value)
}

// ListEntryIdentifier identifies one entry of a keyed list by its key
// values, held in a map from key leaf QName to value; String renders them
// sorted by local name.
type ListEntryIdentifier struct {
	QName qname.QName
	Keys  map[qname.QName]any
}

func (ListEntryIdentifier) pathArgument() {}

func (n ListEntryIdentifier) String() string {
	names := make([]string, 0, len(n.Keys))
	for k := range n.Keys {
		names = append(names, k.Local)
	}
	sort.Strings(names)
	var b strings.Builder
	b.WriteString(n.QName.String())
	for _, name := range names {
		for k, v := range n.Keys {
			if k.Local == name {
				fmt.Fprintf(&b, "[%s=%v]", name, v)
			}
		}
	}
	return b.String()
}

// Equal reports whether two ListEntryIdentifiers name the same entry: the
// same list QName and the same set of key QNames, with each key value
// compared by its fmt.Sprint rendering. Go's == cannot compare two
// ListEntryIdentifiers, since Keys is a map.
func (n ListEntryIdentifier) Equal(other ListEntryIdentifier) bool {
	if n.QName != other.QName || len(n.Keys) != len(other.Keys) {
		return false
	}
	for k, v := range n.Keys {
		ov, ok := other.Keys[k]
		if !ok || fmt.Sprint(v) != fmt.Sprint(ov) {
			return false
		}
	}
	return true
}

// AugmentationIdentifier identifies an augmentation node by the set of
// child QNames it groups, exactly as yangtools does: an augmentation has no
// QName of its own, only the children it was declared to add (design §3
// "composite for augmentation").
type AugmentationIdentifier struct {
	Children []qname.QName
}

func (AugmentationIdentifier) pathArgument() {}

func (n AugmentationIdentifier) String() string {
	names := make([]string, len(n.Children))
	for i, qn := range n.Children {
		names[i] = qn.Local
	}
	sort.Strings(names)
	return "augmentation{" + strings.Join(names, ",") + "}"
}
