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

package yerrs

import (
	"errors"
	"testing"

	"github.com/openconfig/yangschema/qname"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "source error",
			err:  SourceError{Source: "foo.yang:12", Keyword: qname.New(qname.ModuleID{Namespace: "ns"}, "leaf"), Msg: "bad cardinality"},
			want: "foo.yang:12: bad cardinality (leaf)",
		},
		{
			name: "inference error without argument",
			err:  InferenceError{Path: qname.New(qname.ModuleID{Namespace: "ns"}, "foo"), Msg: "unresolved grouping"},
			want: "ns/foo: unresolved grouping",
		},
		{
			name: "inference error with argument",
			err:  InferenceError{Path: qname.New(qname.ModuleID{Namespace: "ns"}, "foo"), Arg: "../bar", Msg: "unresolved leafref"},
			want: `ns/foo: unresolved leafref (argument "../bar")`,
		},
		{
			name: "schema violation",
			err:  SchemaViolation{Path: "/top/name", Reason: "missing mandatory child"},
			want: "/top/name: missing mandatory child",
		},
		{
			name: "illegal state use",
			err:  IllegalStateUse{Msg: "pop of empty stack"},
			want: "pop of empty stack",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAppendErrSkipsNil(t *testing.T) {
	var errs Errors
	errs = AppendErr(errs, nil)
	errs = AppendErr(errs, errors.New("first"))
	errs = AppendErr(errs, nil)
	errs = AppendErr(errs, errors.New("second"))

	if len(errs) != 2 {
		t.Fatalf("AppendErr() len = %d, want 2: %v", len(errs), errs)
	}
	if got, want := errs.Error(), "first, second"; got != want {
		t.Errorf("Errors.Error() = %q, want %q", got, want)
	}
}

func TestAppendErrsAggregatesNonNil(t *testing.T) {
	var errs Errors
	errs = AppendErrs(errs, []error{nil, errors.New("a"), nil, errors.New("b")})
	if got, want := errs.Error(), "a, b"; got != want {
		t.Errorf("Errors.Error() = %q, want %q", got, want)
	}
}

func TestNewErrs(t *testing.T) {
	if got := NewErrs(nil); got != nil {
		t.Errorf("NewErrs(nil) = %v, want nil", got)
	}
	err := errors.New("boom")
	got := NewErrs(err)
	if len(got) != 1 || got[0] != err {
		t.Errorf("NewErrs(err) = %v, want [err]", got)
	}
}

func TestToStringSkipsNilEntries(t *testing.T) {
	got := ToString([]error{nil, errors.New("x"), nil})
	if want := "x"; got != want {
		t.Errorf("ToString() = %q, want %q", got, want)
	}
}
