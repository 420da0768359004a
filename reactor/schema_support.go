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

package reactor

import (
	"github.com/openconfig/yangschema/qname"
	"github.com/openconfig/yangschema/stmt"
)

// stmtQN is a local alias to keep the Support method signatures below on one
// line; it is exactly qname.QName.
type stmtQN = qname.QName

// schemaTreeKeywords names every keyword whose Effective statement carries a
// SchemaNodeIdentifier (design glossary "schema tree"). It is a literal
// map, kept by hand in step with the Support types below.
var schemaTreeKeywords = map[string]bool{
	"container": true, "list": true, "leaf": true, "leaf-list": true,
	"choice": true, "case": true, "anydata": true, "anyxml": true,
}

func wrapEffective(d *stmt.Declared, children []*stmt.Effective) *stmt.Effective {
	return &stmt.Effective{Declared: d, Substatements: children}
}

type containerSupport struct{}

func (containerSupport) Keyword() stmtQN          { return yq("container") }
func (containerSupport) Policy() stmt.Policy      { return stmt.CopyOnUse }
func (containerSupport) ParseArgument(raw string) (any, error) { return raw, nil }
func (containerSupport) Cardinalities() []stmt.Cardinality {
	return []stmt.Cardinality{{Child: yq("presence"), Min: 0, Max: 1}, {Child: yq("config"), Min: 0, Max: 1}}
}
func (s containerSupport) CreateEffective(d *stmt.Declared, children []*stmt.Effective) (*stmt.Effective, error) {
	return wrapEffective(d, children), nil
}

type listSupport struct{}

func (listSupport) Keyword() stmtQN     { return yq("list") }
func (listSupport) Policy() stmt.Policy { return stmt.CopyOnUse }
func (listSupport) ParseArgument(raw string) (any, error) { return raw, nil }
func (listSupport) Cardinalities() []stmt.Cardinality {
	return []stmt.Cardinality{{Child: yq("key"), Min: 0, Max: 1}, {Child: yq("min-elements"), Min: 0, Max: 1}, {Child: yq("max-elements"), Min: 0, Max: 1}}
}
func (s listSupport) CreateEffective(d *stmt.Declared, children []*stmt.Effective) (*stmt.Effective, error) {
	return wrapEffective(d, children), nil
}

type leafSupport struct{}

func (leafSupport) Keyword() stmtQN     { return yq("leaf") }
func (leafSupport) Policy() stmt.Policy { return stmt.CopyOnUse }
func (leafSupport) ParseArgument(raw string) (any, error) { return raw, nil }
func (leafSupport) Cardinalities() []stmt.Cardinality {
	return []stmt.Cardinality{{Child: yq("type"), Min: 1, Max: 1}, {Child: yq("mandatory"), Min: 0, Max: 1}}
}
func (s leafSupport) CreateEffective(d *stmt.Declared, children []*stmt.Effective) (*stmt.Effective, error) {
	return wrapEffective(d, children), nil
}

type leafListSupport struct{}

func (leafListSupport) Keyword() stmtQN     { return yq("leaf-list") }
func (leafListSupport) Policy() stmt.Policy { return stmt.CopyOnUse }
func (leafListSupport) ParseArgument(raw string) (any, error) { return raw, nil }
func (leafListSupport) Cardinalities() []stmt.Cardinality {
	return []stmt.Cardinality{{Child: yq("type"), Min: 1, Max: 1}}
}
func (s leafListSupport) CreateEffective(d *stmt.Declared, children []*stmt.Effective) (*stmt.Effective, error) {
	return wrapEffective(d, children), nil
}

type choiceSupport struct{}

func (choiceSupport) Keyword() stmtQN     { return yq("choice") }
func (choiceSupport) Policy() stmt.Policy { return stmt.CopyOnUse }
func (choiceSupport) ParseArgument(raw string) (any, error) { return raw, nil }
func (choiceSupport) Cardinalities() []stmt.Cardinality {
	return []stmt.Cardinality{{Child: yq("default"), Min: 0, Max: 1}, {Child: yq("mandatory"), Min: 0, Max: 1}}
}
func (s choiceSupport) CreateEffective(d *stmt.Declared, children []*stmt.Effective) (*stmt.Effective, error) {
	return wrapEffective(d, children), nil
}

type caseSupport struct{}

func (caseSupport) Keyword() stmtQN                           { return yq("case") }
func (caseSupport) Policy() stmt.Policy                       { return stmt.CopyOnUse }
func (caseSupport) ParseArgument(raw string) (any, error)     { return raw, nil }
func (caseSupport) Cardinalities() []stmt.Cardinality         { return nil }
func (s caseSupport) CreateEffective(d *stmt.Declared, children []*stmt.Effective) (*stmt.Effective, error) {
	return wrapEffective(d, children), nil
}

type anydataSupport struct{}

func (anydataSupport) Keyword() stmtQN                       { return yq("anydata") }
func (anydataSupport) Policy() stmt.Policy                   { return stmt.CopyOnUse }
func (anydataSupport) ParseArgument(raw string) (any, error) { return raw, nil }
func (anydataSupport) Cardinalities() []stmt.Cardinality     { return nil }
func (s anydataSupport) CreateEffective(d *stmt.Declared, children []*stmt.Effective) (*stmt.Effective, error) {
	return wrapEffective(d, children), nil
}

type anyxmlSupport struct{}

func (anyxmlSupport) Keyword() stmtQN                       { return yq("anyxml") }
func (anyxmlSupport) Policy() stmt.Policy                   { return stmt.CopyOnUse }
func (anyxmlSupport) ParseArgument(raw string) (any, error) { return raw, nil }
func (anyxmlSupport) Cardinalities() []stmt.Cardinality     { return nil }
func (s anyxmlSupport) CreateEffective(d *stmt.Declared, children []*stmt.Effective) (*stmt.Effective, error) {
	return wrapEffective(d, children), nil
}
