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
	"testing"

	"github.com/openconfig/gnmi/errdiff"
	"github.com/openconfig/goyang/pkg/yang"

	"github.com/openconfig/yangschema/datatree"
	"github.com/openconfig/yangschema/qname"
	"github.com/openconfig/yangschema/stmt"
)

var testModule = qname.ModuleID{Namespace: "urn:test:mod"}

func yk(local string) qname.QName { return yangKeyword(local) }

func tq(local string) qname.QName { return qname.New(testModule, local) }

// leafSchema builds a mandatory or optional string leaf effective statement
// named local, restricted to length 1..10, as a child of parent.
func leafSchema(parent *stmt.Effective, local string, mandatory bool) *stmt.Effective {
	e := &stmt.Effective{
		Declared:   &stmt.Declared{Keyword: yk("leaf"), RawArgument: local},
		SchemaPath: parent.SchemaPath.Child(tq(local)),
		Flags:      stmt.Flags(0).SetMandatory(mandatory),
		Type: &stmt.ResolvedType{
			Name:   "string",
			Base:   yang.Ystring,
			Length: []stmt.Range{{Min: 1, Max: 10}},
		},
		Parent: parent,
	}
	parent.Substatements = append(parent.Substatements, e)
	return e
}

// containerSchema builds a non-presence container effective statement
// named local under parent (or as a module root if parent is nil).
func containerSchema(parent *stmt.Effective, local string) *stmt.Effective {
	var path stmt.SchemaNodeIdentifier
	if parent != nil {
		path = parent.SchemaPath.Child(tq(local))
	} else {
		path = stmt.SchemaNodeIdentifier{tq(local)}
	}
	e := &stmt.Effective{
		Declared:   &stmt.Declared{Keyword: yk("container"), RawArgument: local},
		SchemaPath: path,
		Parent:     parent,
	}
	if parent != nil {
		parent.Substatements = append(parent.Substatements, e)
	}
	return e
}

func leafID(local string) datatree.NodeIdentifier {
	return datatree.NodeIdentifier{QName: tq(local)}
}

func TestStrategyForDispatchesByKeyword(t *testing.T) {
	tests := []struct {
		keyword string
		want    ApplyOperation
	}{
		{"container", containerStrategy{}},
		{"list", listStrategy{}},
		{"leaf", leafStrategy{}},
		{"leaf-list", leafStrategy{}},
		{"anydata", leafStrategy{}},
		{"anyxml", leafStrategy{}},
		{"choice", choiceStrategy{}},
		{"augment", augmentationStrategy{}},
		{"rpc", containerStrategy{}},
	}
	for _, tt := range tests {
		if got := StrategyFor(tt.keyword); got != tt.want {
			t.Errorf("StrategyFor(%q) = %#v, want %#v", tt.keyword, got, tt.want)
		}
	}
}

func TestLeafStrategyWriteValidatesLength(t *testing.T) {
	root := containerSchema(nil, "top")
	name := leafSchema(root, "name", false)

	tests := []struct {
		name       string
		value      string
		wantErrSub string
	}{
		{name: "within bounds", value: "abc"},
		{name: "too long", value: "this value is far too long", wantErrSub: "out of range"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := NewApplyContext(1)
			mod := NewModification(WRITE, &datatree.Leaf{Id: leafID("name"), Value: tt.value})
			_, err := Apply(ctx, name, nil, mod)
			if diff := errdiff.Check(err, tt.wantErrSub); diff != "" {
				t.Errorf("Apply() error mismatch: %s", diff)
			}
		})
	}
}

func TestLeafStrategyDeleteRejectsMandatory(t *testing.T) {
	root := containerSchema(nil, "top")
	name := leafSchema(root, "name", true)
	current := datatree.NewVersioned(&datatree.Leaf{Id: leafID("name"), Value: "abc"}, 1)

	ctx := NewApplyContext(2)
	_, err := Apply(ctx, name, &current, NewModification(DELETE, nil))
	if diff := errdiff.Check(err, "mandatory"); diff != "" {
		t.Errorf("Apply() error mismatch: %s", diff)
	}
}

func TestContainerStrategyEnforcesMandatoryChild(t *testing.T) {
	root := containerSchema(nil, "top")
	leafSchema(root, "name", true)

	ctx := NewApplyContext(1)
	mod := NewModification(WRITE, &datatree.Container{
		Id:       datatree.NodeIdentifier{QName: tq("top")},
		Children: map[datatree.PathArgument]datatree.Node{},
	})
	_, err := Apply(ctx, root, nil, mod)
	if diff := errdiff.Check(err, "missing mandatory child"); diff != "" {
		t.Errorf("Apply() error mismatch: %s", diff)
	}
}

func TestContainerStrategyMergeRecursesIntoChild(t *testing.T) {
	root := containerSchema(nil, "top")
	leafSchema(root, "name", true)

	childMod := NewModification(WRITE, &datatree.Leaf{Id: leafID("name"), Value: "abc"})
	topMod := NewModification(MERGE, nil)
	topMod.SetChild(leafID("name"), childMod)

	ctx := NewApplyContext(1)
	got, err := Apply(ctx, root, nil, topMod)
	if err != nil {
		t.Fatalf("Apply() unexpected error: %v", err)
	}
	cont, ok := got.Node.(*datatree.Container)
	if !ok {
		t.Fatalf("Apply() returned %T, want *datatree.Container", got.Node)
	}
	leaf, ok := cont.Children[leafID("name")].(*datatree.Leaf)
	if !ok || leaf.Value != "abc" {
		t.Errorf("Apply() child = %v, want leaf value \"abc\"", cont.Children[leafID("name")])
	}
}
