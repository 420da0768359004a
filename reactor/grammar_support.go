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

import "github.com/openconfig/yangschema/stmt"

type moduleSupport struct{}

func (moduleSupport) Keyword() stmtQN                       { return yq("module") }
func (moduleSupport) Policy() stmt.Policy                   { return stmt.RejectReplica }
func (moduleSupport) ParseArgument(raw string) (any, error) { return raw, nil }
func (moduleSupport) Cardinalities() []stmt.Cardinality {
	return []stmt.Cardinality{{Child: yq("namespace"), Min: 1, Max: 1}, {Child: yq("prefix"), Min: 1, Max: 1}}
}
func (s moduleSupport) CreateEffective(d *stmt.Declared, children []*stmt.Effective) (*stmt.Effective, error) {
	return wrapEffective(d, children), nil
}

type submoduleSupport struct{}

func (submoduleSupport) Keyword() stmtQN                       { return yq("submodule") }
func (submoduleSupport) Policy() stmt.Policy                   { return stmt.RejectReplica }
func (submoduleSupport) ParseArgument(raw string) (any, error) { return raw, nil }
func (submoduleSupport) Cardinalities() []stmt.Cardinality {
	return []stmt.Cardinality{{Child: yq("belongs-to"), Min: 1, Max: 1}}
}
func (s submoduleSupport) CreateEffective(d *stmt.Declared, children []*stmt.Effective) (*stmt.Effective, error) {
	return wrapEffective(d, children), nil
}

type belongsToSupport struct{}

func (belongsToSupport) Keyword() stmtQN                       { return yq("belongs-to") }
func (belongsToSupport) Policy() stmt.Policy                   { return stmt.ContextIndependent }
func (belongsToSupport) ParseArgument(raw string) (any, error) { return raw, nil }
func (belongsToSupport) Cardinalities() []stmt.Cardinality {
	return []stmt.Cardinality{{Child: yq("prefix"), Min: 1, Max: 1}}
}
func (s belongsToSupport) CreateEffective(d *stmt.Declared, children []*stmt.Effective) (*stmt.Effective, error) {
	return wrapEffective(d, children), nil
}

type importSupport struct{}

func (importSupport) Keyword() stmtQN                       { return yq("import") }
func (importSupport) Policy() stmt.Policy                   { return stmt.ContextIndependent }
func (importSupport) ParseArgument(raw string) (any, error) { return raw, nil }
func (importSupport) Cardinalities() []stmt.Cardinality {
	return []stmt.Cardinality{{Child: yq("prefix"), Min: 1, Max: 1}}
}
func (s importSupport) CreateEffective(d *stmt.Declared, children []*stmt.Effective) (*stmt.Effective, error) {
	return wrapEffective(d, children), nil
}

type includeSupport struct{}

func (includeSupport) Keyword() stmtQN                       { return yq("include") }
func (includeSupport) Policy() stmt.Policy                   { return stmt.ContextIndependent }
func (includeSupport) ParseArgument(raw string) (any, error) { return raw, nil }
func (includeSupport) Cardinalities() []stmt.Cardinality     { return nil }
func (s includeSupport) CreateEffective(d *stmt.Declared, children []*stmt.Effective) (*stmt.Effective, error) {
	return wrapEffective(d, children), nil
}

type groupingSupport struct{}

func (groupingSupport) Keyword() stmtQN                       { return yq("grouping") }
func (groupingSupport) Policy() stmt.Policy                   { return stmt.ContextIndependent }
func (groupingSupport) ParseArgument(raw string) (any, error) { return raw, nil }
func (groupingSupport) Cardinalities() []stmt.Cardinality     { return nil }
func (s groupingSupport) CreateEffective(d *stmt.Declared, children []*stmt.Effective) (*stmt.Effective, error) {
	// A grouping is never itself instantiated in a data tree; its
	// Effective form exists only as the template uses expansion clones
	// from (design §4.1 "uses"). Built anyway, bottom-up like everything
	// else, so nested typedefs/groupings inside it are resolved once.
	return wrapEffective(d, children), nil
}

type usesSupport struct{}

func (usesSupport) Keyword() stmtQN                       { return yq("uses") }
func (usesSupport) Policy() stmt.Policy                   { return stmt.CopyOnUse }
func (usesSupport) ParseArgument(raw string) (any, error) { return raw, nil }
func (usesSupport) Cardinalities() []stmt.Cardinality     { return nil }
func (s usesSupport) CreateEffective(d *stmt.Declared, children []*stmt.Effective) (*stmt.Effective, error) {
	// By the time CreateEffective runs for a uses statement, the uses
	// expansion action (uses.go) has already spliced the grouping's
	// children into the parent's Declared tree and removed this uses
	// node; a uses Support's own CreateEffective firing at all means the
	// grouping reference never resolved, which upstream code surfaces as
	// an InferenceError rather than reaching here.
	return wrapEffective(d, children), nil
}

type refineSupport struct{}

func (refineSupport) Keyword() stmtQN                       { return yq("refine") }
func (refineSupport) Policy() stmt.Policy                   { return stmt.CopyOnUse }
func (refineSupport) ParseArgument(raw string) (any, error) { return raw, nil }
func (refineSupport) Cardinalities() []stmt.Cardinality     { return nil }
func (s refineSupport) CreateEffective(d *stmt.Declared, children []*stmt.Effective) (*stmt.Effective, error) {
	return wrapEffective(d, children), nil
}

type augmentSupport struct{}

func (augmentSupport) Keyword() stmtQN                       { return yq("augment") }
func (augmentSupport) Policy() stmt.Policy                   { return stmt.CopyOnUse }
func (augmentSupport) ParseArgument(raw string) (any, error) { return raw, nil }
func (augmentSupport) Cardinalities() []stmt.Cardinality     { return nil }
func (s augmentSupport) CreateEffective(d *stmt.Declared, children []*stmt.Effective) (*stmt.Effective, error) {
	return wrapEffective(d, children), nil
}

type typedefSupport struct{}

func (typedefSupport) Keyword() stmtQN                       { return yq("typedef") }
func (typedefSupport) Policy() stmt.Policy                   { return stmt.ContextIndependent }
func (typedefSupport) ParseArgument(raw string) (any, error) { return raw, nil }
func (typedefSupport) Cardinalities() []stmt.Cardinality {
	return []stmt.Cardinality{{Child: yq("type"), Min: 1, Max: 1}}
}
func (s typedefSupport) CreateEffective(d *stmt.Declared, children []*stmt.Effective) (*stmt.Effective, error) {
	return wrapEffective(d, children), nil
}

type typeSupport struct{}

func (typeSupport) Keyword() stmtQN                       { return yq("type") }
func (typeSupport) Policy() stmt.Policy                   { return stmt.ContextIndependent }
func (typeSupport) ParseArgument(raw string) (any, error) { return raw, nil }
func (typeSupport) Cardinalities() []stmt.Cardinality     { return nil }
func (s typeSupport) CreateEffective(d *stmt.Declared, children []*stmt.Effective) (*stmt.Effective, error) {
	return wrapEffective(d, children), nil
}

type featureSupport struct{}

func (featureSupport) Keyword() stmtQN                       { return yq("feature") }
func (featureSupport) Policy() stmt.Policy                   { return stmt.ContextIndependent }
func (featureSupport) ParseArgument(raw string) (any, error) { return raw, nil }
func (featureSupport) Cardinalities() []stmt.Cardinality     { return nil }
func (s featureSupport) CreateEffective(d *stmt.Declared, children []*stmt.Effective) (*stmt.Effective, error) {
	return wrapEffective(d, children), nil
}

type ifFeatureSupport struct{}

func (ifFeatureSupport) Keyword() stmtQN                       { return yq("if-feature") }
func (ifFeatureSupport) Policy() stmt.Policy                   { return stmt.CopyOnUse }
func (ifFeatureSupport) ParseArgument(raw string) (any, error) { return parseIfFeature(raw) }
func (ifFeatureSupport) Cardinalities() []stmt.Cardinality     { return nil }
func (s ifFeatureSupport) CreateEffective(d *stmt.Declared, children []*stmt.Effective) (*stmt.Effective, error) {
	return wrapEffective(d, children), nil
}

type deviationSupport struct{}

func (deviationSupport) Keyword() stmtQN                       { return yq("deviation") }
func (deviationSupport) Policy() stmt.Policy                   { return stmt.ContextIndependent }
func (deviationSupport) ParseArgument(raw string) (any, error) { return raw, nil }
func (deviationSupport) Cardinalities() []stmt.Cardinality {
	return []stmt.Cardinality{{Child: yq("deviate"), Min: 1, Max: -1}}
}
func (s deviationSupport) CreateEffective(d *stmt.Declared, children []*stmt.Effective) (*stmt.Effective, error) {
	return wrapEffective(d, children), nil
}

type deviateSupport struct{}

func (deviateSupport) Keyword() stmtQN                       { return yq("deviate") }
func (deviateSupport) Policy() stmt.Policy                   { return stmt.ContextIndependent }
func (deviateSupport) ParseArgument(raw string) (any, error) { return raw, nil }
func (deviateSupport) Cardinalities() []stmt.Cardinality     { return nil }
func (s deviateSupport) CreateEffective(d *stmt.Declared, children []*stmt.Effective) (*stmt.Effective, error) {
	return wrapEffective(d, children), nil
}
