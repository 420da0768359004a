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

// buildEffectiveModel builds the Effective tree for every root, bottom-up
// (design §4.1 "EffectiveModel"): children are always built before their
// parent, since a parent's Support.CreateEffective receives its children's
// already-built Effective statements, while Flags are computed top-down,
// each statement's before its children's, so config inheritance sees the
// parent's value.
func (r *Reactor) buildEffectiveModel(roots []*Context) stmt.Model {
	model := make(stmt.Model)
	for _, root := range roots {
		if root.Source.IsSubmod {
			continue // submodules are skipped; their statements are not added to the model
		}
		eff := r.buildEffective(root, nil, stmt.SchemaNodeIdentifier{})
		root.Effective = eff
		model[root.Source.ModuleID] = eff
	}
	return model
}

func (r *Reactor) buildEffective(ctx *Context, parent *stmt.Effective, parentPath stmt.SchemaNodeIdentifier) *stmt.Effective {
	var path stmt.SchemaNodeIdentifier
	if schemaTreeKeywords[ctx.Declared.Keyword.Local] {
		qn := qname.New(ctx.Module.ID, ctx.Declared.RawArgument)
		path = parentPath.Child(qn)
	} else {
		path = parentPath
	}

	flags := r.computeFlags(ctx, parent)
	// Children are built before this statement's Effective exists, so they
	// read the inherited config value from a stand-in carrying these Flags;
	// their Parent is reset to the real Effective below.
	flagParent := &stmt.Effective{Flags: flags}
	children := make([]*stmt.Effective, 0, len(ctx.Children))
	for _, c := range ctx.Children {
		children = append(children, r.buildEffective(c, flagParent, path))
	}

	eff, err := ctx.Support.CreateEffective(ctx.Declared, children)
	if err != nil {
		r.errs = append(r.errs, err)
		eff = &stmt.Effective{Declared: ctx.Declared, Substatements: children}
	}
	eff.SchemaPath = path
	eff.Parent = parent
	for _, c := range children {
		c.Parent = eff
	}
	ct, origin := r.copyTypeOf(ctx.Declared)
	eff.CopyType = ct
	eff.OriginatingModule = origin
	eff.Flags = flags
	if ctx.Declared.Keyword.Local == "leaf" || ctx.Declared.Keyword.Local == "leaf-list" {
		if tc := findTypeContext(ctx); tc != nil {
			eff.Type = r.resolvedTypes[tc]
		}
	}
	ctx.Effective = eff
	ctx.markCompleted(EffectiveModel)
	return eff
}

func findTypeContext(ctx *Context) *Context {
	for _, c := range ctx.Children {
		if c.Declared.Keyword.Local == "type" {
			return c
		}
	}
	return nil
}

// computeFlags derives ctx's packed Flags word: config is inherited from
// the parent unless overridden locally (design §3, "config defaults to
// inherited, root default true"); status, mandatory, presence and
// user-ordered are each read directly off ctx's own substatements.
func (r *Reactor) computeFlags(ctx *Context, parent *stmt.Effective) stmt.Flags {
	var f stmt.Flags
	configSet, configVal := false, true
	if c := ctx.Declared.Find(yq("config")); c != nil {
		if b, ok := c.Argument.(bool); ok {
			configSet, configVal = true, b
		}
	}
	if !configSet && parent != nil {
		configVal = parent.Flags.Config()
	}
	f = f.SetConfig(configVal)

	status := stmt.StatusCurrent
	if c := ctx.Declared.Find(yq("status")); c != nil {
		switch c.RawArgument {
		case "deprecated":
			status = stmt.StatusDeprecated
		case "obsolete":
			status = stmt.StatusObsolete
		}
	}
	f = f.WithStatus(status)

	if c := ctx.Declared.Find(yq("mandatory")); c != nil {
		if b, ok := c.Argument.(bool); ok && b {
			f = f.SetMandatory(true)
		}
	}
	if ctx.Declared.Find(yq("presence")) != nil {
		f = f.SetPresence(true)
	}
	if c := ctx.Declared.Find(yq("ordered-by")); c != nil && c.RawArgument == "user" {
		f = f.SetUserOrdered(true)
	}
	return f
}
