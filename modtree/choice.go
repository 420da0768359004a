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
	"github.com/openconfig/yangschema/datatree"
	"github.com/openconfig/yangschema/stmt"
)

// CaseEnforcer is the compiled per-case membership record for one case of a
// choice (design §4.3 "Choice case-enforcement"). Built once from the
// schema and reused across every apply against that choice.
type CaseEnforcer struct {
	Name       string
	Members    map[datatree.PathArgument]bool
	Mandatory  []datatree.PathArgument
}

// casePanel is the compiled choice-wide case table: which CaseEnforcer owns
// each child path-argument, and, per case, the full set of identifiers that
// belong to every *other* case (the exclusion map design §4.3 names).
type casePanel struct {
	ownerOf   map[datatree.PathArgument]*CaseEnforcer
	excluded  map[string]map[datatree.PathArgument]bool
	enforcers []*CaseEnforcer
}

// buildCasePanel compiles choiceSchema's cases. A case is either an
// explicit "case" substatement (its schema children are the case's
// members) or a data node declared directly under the choice using RFC
// 7950's short-case form, which this treats as a singleton case named
// after that one child.
func buildCasePanel(choiceSchema *stmt.Effective) *casePanel {
	p := &casePanel{
		ownerOf:  make(map[datatree.PathArgument]*CaseEnforcer),
		excluded: make(map[string]map[datatree.PathArgument]bool),
	}
	for _, child := range choiceSchema.Substatements {
		if !child.IsSchemaNode() {
			continue
		}
		var ce *CaseEnforcer
		if child.Declared.Keyword.Local == "case" {
			ce = &CaseEnforcer{Name: child.Declared.RawArgument, Members: make(map[datatree.PathArgument]bool)}
			for _, member := range child.Substatements {
				if !member.IsSchemaNode() {
					continue
				}
				pa := schemaPathArgument(member)
				ce.Members[pa] = true
				if member.Flags.Mandatory() {
					ce.Mandatory = append(ce.Mandatory, pa)
				}
			}
		} else {
			pa := schemaPathArgument(child)
			ce = &CaseEnforcer{Name: child.Declared.RawArgument, Members: map[datatree.PathArgument]bool{pa: true}}
			if child.Flags.Mandatory() {
				ce.Mandatory = append(ce.Mandatory, pa)
			}
		}
		for pa := range ce.Members {
			p.ownerOf[pa] = ce
		}
		p.enforcers = append(p.enforcers, ce)
	}
	for _, ce := range p.enforcers {
		excl := make(map[datatree.PathArgument]bool)
		for _, other := range p.enforcers {
			if other == ce {
				continue
			}
			for pa := range other.Members {
				excl[pa] = true
			}
		}
		p.excluded[ce.Name] = excl
	}
	return p
}

func schemaPathArgument(e *stmt.Effective) datatree.PathArgument {
	qn := e.SchemaPath[len(e.SchemaPath)-1]
	return datatree.NodeIdentifier{QName: qn}
}
