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

package qname

import "testing"

func TestModuleIDString(t *testing.T) {
	tests := []struct {
		name string
		mod  ModuleID
		want string
	}{
		{name: "no revision", mod: ModuleID{Namespace: "urn:test:a"}, want: "urn:test:a"},
		{name: "with revision", mod: ModuleID{Namespace: "urn:test:a", Revision: "2023-01-01"}, want: "urn:test:a@2023-01-01"},
	}
	for _, tt := range tests {
		if got := tt.mod.String(); got != tt.want {
			t.Errorf("%s: ModuleID.String() = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestQNameStringAndModule(t *testing.T) {
	q := New(ModuleID{Namespace: "urn:test:a", Revision: "2023-01-01"}, "foo")
	if got, want := q.String(), "urn:test:a?revision=2023-01-01/foo"; got != want {
		t.Errorf("QName.String() = %q, want %q", got, want)
	}
	if got, want := q.Module(), (ModuleID{Namespace: "urn:test:a", Revision: "2023-01-01"}); got != want {
		t.Errorf("QName.Module() = %v, want %v", got, want)
	}
}

func TestQNameSameNamespace(t *testing.T) {
	a := New(ModuleID{Namespace: "urn:test:a", Revision: "2023-01-01"}, "foo")
	b := New(ModuleID{Namespace: "urn:test:a", Revision: "2024-06-01"}, "foo")
	c := New(ModuleID{Namespace: "urn:test:a"}, "bar")

	if !a.SameNamespace(b) {
		t.Errorf("SameNamespace across revisions = false, want true (same namespace+local)")
	}
	if a.SameNamespace(c) {
		t.Errorf("SameNamespace with different local = true, want false")
	}
}

func TestStripPrefix(t *testing.T) {
	tests := []struct{ in, want string }{
		{"if-mib:foo", "foo"},
		{"foo", "foo"},
		{"a:b:c", "a:b:c"}, // more than one colon: left alone for the caller to reject
	}
	for _, tt := range tests {
		if got := StripPrefix(tt.in); got != tt.want {
			t.Errorf("StripPrefix(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSplitPrefix(t *testing.T) {
	tests := []struct {
		in         string
		wantPrefix string
		wantLocal  string
	}{
		{"if-mib:foo", "if-mib", "foo"},
		{"foo", "", "foo"},
	}
	for _, tt := range tests {
		prefix, local := SplitPrefix(tt.in)
		if prefix != tt.wantPrefix || local != tt.wantLocal {
			t.Errorf("SplitPrefix(%q) = (%q, %q), want (%q, %q)", tt.in, prefix, local, tt.wantPrefix, tt.wantLocal)
		}
	}
}
