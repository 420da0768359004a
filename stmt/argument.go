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

import "github.com/openconfig/yangschema/qname"

// Axis is the direction of one step of a location path (design §6 "XPath
// dependency").
type Axis uint8

const (
	AxisChild Axis = iota
	AxisParent
)

// Step is one step of a location path: an axis and, for a child step, the
// QName to descend into. A parent step ("..") carries a zero QName.
type Step struct {
	Axis Axis
	QN   qname.QName
}

// PathExpression is the typed shape the external XPath-adjacent parser
// delivers for leafref, deref and instance-identifier default-value
// arguments (design §6): either an absolute or relative sequence of Steps,
// or a Deref pair. The core never evaluates XPath; it only interprets this
// structural shape.
type PathExpression struct {
	// Kind selects which of Absolute/Relative/Deref is populated.
	Kind PathExpressionKind
	// Steps is populated for Kind == AbsoluteLocationPath or
	// Kind == RelativeLocationPath.
	Steps []Step
	// DerefSteps is populated for Kind == Deref: the first element is
	// the relative path to the leafref to dereference, the second is
	// the relative path to resolve from the dereferenced target.
	DerefSteps [2][]Step
}

// PathExpressionKind discriminates the PathExpression union.
type PathExpressionKind uint8

const (
	AbsoluteLocationPath PathExpressionKind = iota
	RelativeLocationPath
	Deref
)

// String renders a PathExpression back to RFC 7950 path syntax, used for
// diagnostics (e.g. the stuck-action / unresolved-leafref messages in
// design §7).
func (p PathExpression) String() string {
	switch p.Kind {
	case Deref:
		return "deref(" + stepsString(p.DerefSteps[0], false) + ")/" + stepsString(p.DerefSteps[1], true)
	case AbsoluteLocationPath:
		return stepsString(p.Steps, true)
	default:
		return stepsString(p.Steps, false)
	}
}

func stepsString(steps []Step, absolute bool) string {
	out := ""
	if absolute {
		out = "/"
	}
	for i, s := range steps {
		if i > 0 {
			out += "/"
		}
		if s.Axis == AxisParent {
			out += ".."
		} else {
			out += s.QN.Local
		}
	}
	return out
}
