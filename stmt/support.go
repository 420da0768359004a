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

// Policy declares how a statement relates to copying by uses or augment
// (design §4.1 "Statement-support registry"). Every Support reports one,
// but the reactor does not consult it: uses and augment expansion
// deep-clone every statement whatever its Policy.
type Policy uint8

const (
	// CopyOnUse statements (most of the grammar: container, leaf, list,
	// ...) are cloned afresh at every instantiation site.
	CopyOnUse Policy = iota
	// ContextIndependent statements (e.g. type, typedef facets) do not
	// depend on where they are instantiated; they are still deep-copied
	// like every other statement.
	ContextIndependent
	// RejectReplica statements (module, submodule) are declared as never
	// appearing twice in a single instantiation chain; no reactor check
	// enforces this.
	RejectReplica
)

// Cardinality is one (child-keyword, min, max) rule used by the
// FullDeclaration phase's substatement validator (design §6). Max of -1
// means unbounded.
type Cardinality struct {
	Child qname.QName
	Min   int
	Max   int
}

// Support is the per-keyword implementation the reactor dispatches to:
// parsing arguments, building declared/effective statements and reacting to
// phase transitions (design §4.1 "Statement-support registry"). Unknown
// (extension) statements fall back to a generic opaque Support.
type Support interface {
	// Keyword is the QName this Support implements.
	Keyword() qname.QName
	// Cardinalities lists this keyword's substatement cardinality rules,
	// enforced during FullDeclaration.
	Cardinalities() []Cardinality
	// Policy controls copy behaviour under uses/augment.
	Policy() Policy
	// ParseArgument parses a raw argument string into the keyword's
	// argument value kind.
	ParseArgument(raw string) (any, error)
	// CreateEffective builds the Effective statement for a Declared
	// whose substatements have already each been made effective. It is
	// called once every prerequisite registered by this keyword's
	// inference actions is satisfied.
	CreateEffective(d *Declared, children []*Effective) (*Effective, error)
}

// OpaqueSupport is the generic fallback Support used for any keyword not
// registered explicitly — principally extension statements, whose argument
// and substatement shape is unconstrained by this module (design §4.1
// "Statement-support registry ... Unknown (extension) statements fall back
// to a generic support that treats the keyword as opaque").
type OpaqueSupport struct {
	KeywordQN qname.QName
}

func (o OpaqueSupport) Keyword() qname.QName       { return o.KeywordQN }
func (o OpaqueSupport) Cardinalities() []Cardinality { return nil }
func (o OpaqueSupport) Policy() Policy              { return CopyOnUse }

func (o OpaqueSupport) ParseArgument(raw string) (any, error) {
	return raw, nil
}

func (o OpaqueSupport) CreateEffective(d *Declared, children []*Effective) (*Effective, error) {
	return &Effective{Declared: d, Substatements: children}, nil
}
