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

package codec

import (
	"strings"
	"testing"

	"github.com/openconfig/gnmi/errdiff"
)

func TestEncodeStringSelectsTagByLength(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Tag
	}{
		{name: "empty", in: "", want: StringType},
		{name: "short", in: "hello world", want: StringType},
		{name: "just under threshold", in: strings.Repeat("a", stringBytesThreshold-1), want: StringType},
		{name: "at threshold", in: strings.Repeat("a", stringBytesThreshold), want: StringBytesType},
		{name: "over threshold", in: strings.Repeat("a", stringBytesThreshold+1), want: StringBytesType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, tag := EncodeString(tt.in)
			if tag != tt.want {
				t.Errorf("EncodeString(len=%d) tag = %v, want %v", len(tt.in), tag, tt.want)
			}
		})
	}
}

func TestEncodeDecodeStringRoundTrips(t *testing.T) {
	tests := []string{"", "short value", strings.Repeat("x", stringBytesThreshold+10)}
	for _, in := range tests {
		msg, tag := EncodeString(in)
		got, err := DecodeString(msg, tag)
		if err != nil {
			t.Fatalf("DecodeString(%d bytes) failed: %v", len(in), err)
		}
		if got != in {
			t.Errorf("round trip mismatch: got %d bytes, want %d bytes", len(got), len(in))
		}
	}
}

func TestDecodeStringTagMismatch(t *testing.T) {
	msg, _ := EncodeString("hello")
	_, err := DecodeString(msg, StringBytesType)
	if diff := errdiff.Check(err, "StringBytesType tag but value is"); diff != "" {
		t.Errorf("DecodeString() error mismatch: %s", diff)
	}
}

func TestTagString(t *testing.T) {
	if got, want := StringType.String(), "STRING_TYPE"; got != want {
		t.Errorf("StringType.String() = %q, want %q", got, want)
	}
	if got, want := StringBytesType.String(), "STRING_BYTES_TYPE"; got != want {
		t.Errorf("StringBytesType.String() = %q, want %q", got, want)
	}
}
