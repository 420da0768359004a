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
	"fmt"
	"strings"

	"github.com/openconfig/yangschema/stmt"
)

// deviatableProperties lists the substatement keywords deviate add/replace
// recognise (design §4.1 "deviate"): the properties most deviations in
// practice target. deviate add and replace skip any substatement whose
// keyword is not listed; deviate delete does not consult this set and
// removes a matching substatement of any keyword.
var deviatableProperties = map[string]bool{
	"description": true, "default": true, "config": true, "mandatory": true,
	"presence": true, "min-elements": true, "max-elements": true,
	"type": true, "units": true, "unique": true, "must": true,
}

// registerDeviateActions finds every "deviation" statement reachable from
// roots and schedules its application (design §4.1 "deviate"), gated on the
// supported-deviation-modules set (design §6) and on the target path
// resolving.
func (r *Reactor) registerDeviateActions(roots []*Context) {
	for _, root := range roots {
		var collect func(*Context)
		collect = func(c *Context) {
			if c.Declared.Keyword.Local == "deviation" {
				r.scheduleOneDeviation(c)
				return
			}
			for _, ch := range c.Children {
				collect(ch)
			}
		}
		collect(root)
	}
}

func (r *Reactor) scheduleOneDeviation(devCtx *Context) {
	path := devCtx.Declared.RawArgument
	claimant := devCtx.Source.Module.ID.Namespace
	r.registerAction(&InferenceAction{
		Phase: EffectiveModel,
		Desc:  fmt.Sprintf("deviation %q resolves", path),
		Prerequisites: []Prerequisite{
			FuncPrerequisite{
				Desc: fmt.Sprintf("target path %q resolvable", path),
				Fn:   func() bool { _, ok := resolveTargetPath(devCtx, path); return ok },
			},
		},
		Apply: func() error {
			if !r.deviationAllowed(claimant) {
				logf("deviation %q from module %q skipped: module not in supported-deviation-modules", path, claimant)
				return nil
			}
			return r.applyDeviation(devCtx)
		},
	})
}

func (r *Reactor) applyDeviation(devCtx *Context) error {
	target, ok := resolveTargetPath(devCtx, devCtx.Declared.RawArgument)
	if !ok {
		return fmt.Errorf("deviation %q: target vanished between prerequisite check and apply", devCtx.Declared.RawArgument)
	}
	for _, dev := range devCtx.Declared.FindAll(yq("deviate")) {
		switch dev.RawArgument {
		case "not-supported":
			removeFromParent(target)
		case "add":
			applyDeviateAdd(target, dev)
		case "replace":
			applyDeviateReplace(target, dev)
		case "delete":
			applyDeviateDelete(target, dev)
		}
	}
	return nil
}

func removeFromParent(ctx *Context) {
	p := ctx.Parent
	if p == nil {
		return
	}
	p.Declared.Children = removeDeclared(p.Declared.Children, ctx.Declared)
	p.Children = removeContext(p.Children, ctx)
}

func removeDeclared(list []*stmt.Declared, target *stmt.Declared) []*stmt.Declared {
	out := list[:0:0]
	for _, d := range list {
		if d != target {
			out = append(out, d)
		}
	}
	return out
}

func removeContext(list []*Context, target *Context) []*Context {
	out := list[:0:0]
	for _, c := range list {
		if c != target {
			out = append(out, c)
		}
	}
	return out
}

func applyDeviateAdd(target *Context, dev *stmt.Declared) {
	for _, prop := range dev.Children {
		if !deviatableProperties[prop.Keyword.Local] {
			continue
		}
		if existing := target.Declared.Find(prop.Keyword); existing != nil {
			continue // add never overwrites an already-present property
		}
		clone := prop.Clone()
		target.Declared.Children = append(target.Declared.Children, clone)
		nc := buildContextTree(clone, target, target.Source, target.Module, target.R)
		target.Children = append(target.Children, nc)
		target.R.bindAndValidateSubtree(nc)
	}
}

func applyDeviateReplace(target *Context, dev *stmt.Declared) {
	for _, prop := range dev.Children {
		if !deviatableProperties[prop.Keyword.Local] {
			continue
		}
		replaceOrAppend(target, prop)
	}
}

func replaceOrAppend(target *Context, prop *stmt.Declared) {
	for i, c := range target.Children {
		if c.Declared.Keyword.Local == prop.Keyword.Local {
			clone := prop.Clone()
			target.Declared.Children[declaredIndex(target.Declared, c.Declared)] = clone
			nc := buildContextTree(clone, target, target.Source, target.Module, target.R)
			target.Children[i] = nc
			target.R.bindAndValidateSubtree(nc)
			return
		}
	}
	applyDeviateAdd(target, &stmt.Declared{Children: []*stmt.Declared{prop}})
}

func declaredIndex(parent *stmt.Declared, d *stmt.Declared) int {
	for i, c := range parent.Children {
		if c == d {
			return i
		}
	}
	return -1
}

func applyDeviateDelete(target *Context, dev *stmt.Declared) {
	for _, prop := range dev.Children {
		var match *Context
		for _, c := range target.Children {
			if c.Declared.Keyword.Local == prop.Keyword.Local &&
				(prop.RawArgument == "" || strings.TrimSpace(c.Declared.RawArgument) == strings.TrimSpace(prop.RawArgument)) {
				match = c
				break
			}
		}
		if match == nil {
			// design §4.1's documented "silent-log-not-error" behaviour:
			// a deviate-delete naming a property that is not present is
			// logged, not treated as a compilation failure.
			logf("deviate delete: %q has no %s %q to remove", target.Declared.RawArgument, prop.Keyword.Local, prop.RawArgument)
			continue
		}
		removeFromParent(match)
	}
}
