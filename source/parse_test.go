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

package source

import (
	"fmt"
	"sort"
	"testing"

	"github.com/openconfig/gnmi/errdiff"

	"github.com/openconfig/yangschema/qname"
	"github.com/openconfig/yangschema/stmt"
)

var moduleKeyword = qname.New(qname.ModuleID{Namespace: "urn:ietf:params:xml:ns:yang:1"}, "module")

func fakeParse(in Input) (*stmt.Declared, error) {
	if len(in.Text) == 0 {
		return nil, fmt.Errorf("empty source")
	}
	return &stmt.Declared{Keyword: moduleKeyword, RawArgument: in.Name, Argument: in.Name}, nil
}

func TestParseAllPreservesOrder(t *testing.T) {
	inputs := []Input{
		{Name: "a", Text: []byte("module a {}")},
		{Name: "b", Text: []byte("module b {}")},
		{Name: "c", Text: []byte("module c {}")},
		{Name: "d", Text: []byte("module d {}")},
	}
	got, err := ParseAll(inputs, fakeParse, 2)
	if err != nil {
		t.Fatalf("ParseAll() unexpected error: %v", err)
	}
	if len(got) != len(inputs) {
		t.Fatalf("ParseAll() returned %d results, want %d", len(got), len(inputs))
	}
	var gotNames []string
	for _, d := range got {
		gotNames = append(gotNames, d.RawArgument)
	}
	if want := []string{"a", "b", "c", "d"}; fmt.Sprint(gotNames) != fmt.Sprint(want) {
		t.Errorf("ParseAll() order = %v, want %v", gotNames, want)
	}
}

func TestParseAllPropagatesError(t *testing.T) {
	inputs := []Input{
		{Name: "good", Text: []byte("module good {}")},
		{Name: "bad", Text: nil},
	}
	_, err := ParseAll(inputs, fakeParse, 4)
	if diff := errdiff.Check(err, "empty source"); diff != "" {
		t.Errorf("ParseAll() error mismatch: %s", diff)
	}
}

func TestParseAllEmptyInput(t *testing.T) {
	got, err := ParseAll(nil, fakeParse, 4)
	if err != nil {
		t.Fatalf("ParseAll(nil) unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("ParseAll(nil) = %v, want empty", got)
	}
}

func TestParseAllWorkerCountClampedToInputSize(t *testing.T) {
	// Asking for more workers than inputs must not deadlock or drop work.
	inputs := make([]Input, 9)
	names := make([]string, 9)
	for i := range inputs {
		name := fmt.Sprintf("mod%d", i)
		inputs[i] = Input{Name: name, Text: []byte("module " + name + " {}")}
		names[i] = name
	}
	got, err := ParseAll(inputs, fakeParse, 100)
	if err != nil {
		t.Fatalf("ParseAll() unexpected error: %v", err)
	}
	var gotNames []string
	for _, d := range got {
		gotNames = append(gotNames, d.RawArgument)
	}
	sort.Strings(gotNames)
	sort.Strings(names)
	if fmt.Sprint(gotNames) != fmt.Sprint(names) {
		t.Errorf("ParseAll() names = %v, want %v", gotNames, names)
	}
}
