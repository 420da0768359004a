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

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/openconfig/yangschema/qname"
)

func TestContainerWithChildSharesUnchangedChildren(t *testing.T) {
	leafID := NodeIdentifier{QName: qname.New(qname.ModuleID{Namespace: "t"}, "a")}
	other := &Leaf{Id: NodeIdentifier{QName: qname.New(qname.ModuleID{Namespace: "t"}, "b")}, Value: "x"}
	base := &Container{
		Id:       NodeIdentifier{QName: qname.New(qname.ModuleID{Namespace: "t"}, "top")},
		Children: map[PathArgument]Node{leafID: &Leaf{Id: leafID, Value: "1"}},
	}

	updated := base.WithChild(other.Id, other)

	if base.Children[other.Id] != nil {
		t.Fatalf("WithChild mutated the receiver: found %v in original", base.Children[other.Id])
	}
	if got := updated.Children[leafID]; got != base.Children[leafID] {
		t.Errorf("updated container did not share the untouched leaf by reference: got %v want %v", got, base.Children[leafID])
	}
	if updated.Children[other.Id] != other {
		t.Errorf("updated container did not record the new child")
	}
}

func TestContainerWithoutChildIsEmpty(t *testing.T) {
	id := NodeIdentifier{QName: qname.New(qname.ModuleID{Namespace: "t"}, "a")}
	c := &Container{Id: id, Children: map[PathArgument]Node{id: &Leaf{Id: id, Value: "1"}}}

	out := c.WithoutChild(id)
	if !out.IsEmpty() {
		t.Errorf("WithoutChild left a non-empty container: %v", out.Children)
	}
	if c.IsEmpty() {
		t.Errorf("WithoutChild mutated the receiver")
	}
}

func TestListEntryIdentifierString(t *testing.T) {
	id := ListEntryIdentifier{
		QName: qname.New(qname.ModuleID{Namespace: "t"}, "neighbor"),
		Keys:  map[qname.QName]any{qname.New(qname.ModuleID{Namespace: "t"}, "address"): "10.0.0.1"},
	}
	want := "t/neighbor[address=10.0.0.1]"
	if got := id.String(); got != want {
		t.Errorf("ListEntryIdentifier.String() = %q, want %q", got, want)
	}
}

func TestVersionGeneratorIsMonotonic(t *testing.T) {
	var g VersionGenerator
	var got []uint64
	for i := 0; i < 3; i++ {
		got = append(got, g.Next())
	}
	want := []uint64{1, 2, 3}
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("VersionGenerator.Next() sequence mismatch (-want +got):\n%s", diff)
	}
}
