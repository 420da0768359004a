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
	"fmt"

	"github.com/openconfig/yangschema/inference"
	"github.com/openconfig/yangschema/stmt"
)

// DescribeValue renders a leaf's encoded value and schema location for
// error/diagnostic messages (design §7: the apply engine calls into codec
// "only when materializing a leaf's default/value representation for
// diagnostics", not on the hot path of every apply).
func DescribeValue(schema *stmt.Effective, value string) string {
	_, tag := EncodeString(value)
	return fmt.Sprintf("%s = %q (%s)", inference.ToGNMIPath(schema.SchemaPath), value, tag)
}
