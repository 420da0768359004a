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
	"strconv"

	"github.com/openconfig/yangschema/qname"
	"github.com/openconfig/yangschema/stmt"
)

// leafArgSupport implements stmt.Support for the large set of leaf-argument,
// no-further-inference statements (description, reference, prefix, key,
// mandatory, ...): their ParseArgument is the whole of their behaviour, and
// CreateEffective is the ordinary "wrap the declared form" case every
// keyword falls back to once its own substatements are effective. This one
// shared type, parameterised by keyword and parse function, stands in for
// what would otherwise be dozens of near-identical small Support types.
type leafArgSupport struct {
	keyword qname.QName
	parse   func(string) (any, error)
}

func (s leafArgSupport) Keyword() qname.QName              { return s.keyword }
func (s leafArgSupport) Cardinalities() []stmt.Cardinality { return nil }
func (s leafArgSupport) Policy() stmt.Policy                { return stmt.CopyOnUse }

func (s leafArgSupport) ParseArgument(raw string) (any, error) {
	if s.parse != nil {
		return s.parse(raw)
	}
	return raw, nil
}

func (s leafArgSupport) CreateEffective(d *stmt.Declared, children []*stmt.Effective) (*stmt.Effective, error) {
	return &stmt.Effective{Declared: d, Substatements: children}, nil
}

func intArg(raw string) (any, error) {
	if raw == "unbounded" {
		return -1, nil
	}
	return strconv.Atoi(raw)
}

func simpleSupports() []stmt.Support {
	mk := func(local string, parse func(string) (any, error)) leafArgSupport {
		return leafArgSupport{keyword: yq(local), parse: parse}
	}
	return []stmt.Support{
		mk("description", nil),
		mk("reference", nil),
		mk("prefix", nil),
		mk("namespace", nil),
		mk("revision", nil),
		mk("key", nil),
		mk("unique", nil),
		mk("status", nil),
		mk("config", func(raw string) (any, error) { return raw == "true", nil }),
		mk("mandatory", func(raw string) (any, error) { return raw == "true", nil }),
		mk("presence", nil),
		mk("min-elements", intArg),
		mk("max-elements", intArg),
		mk("ordered-by", nil),
		mk("default", nil),
		mk("units", nil),
		mk("path", nil),
		mk("require-instance", func(raw string) (any, error) { return raw == "true", nil }),
		mk("pattern", nil),
		mk("range", nil),
		mk("length", nil),
		mk("fraction-digits", intArg),
		mk("enum", nil),
		mk("bit", nil),
		mk("value", intArg),
		mk("position", intArg),
		mk("base", nil),
		mk("yang-version", nil),
		mk("organization", nil),
		mk("contact", nil),
	}
}
