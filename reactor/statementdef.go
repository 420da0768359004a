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

	"github.com/openconfig/yangschema/yerrs"
)

// bindSupports walks every Context reachable from roots and binds its
// Support from the Registry (design §4.1 "StatementDefinition"), then
// records every "grouping", "typedef" and "feature" statement into its
// namespace so later phases can resolve a uses/type/if-feature reference
// regardless of declaration order.
func (r *Reactor) bindSupports(roots []*Context) {
	for _, root := range roots {
		walkContexts(root, func(ctx *Context) {
			ctx.Support = r.registry.Lookup(ctx.Declared.Keyword)
			r.parseArgument(ctx)
			switch ctx.Declared.Keyword.Local {
			case "grouping":
				Put(ctx, groupingNS, ctx.Declared.RawArgument, ctx)
			case "typedef":
				Put(ctx, typedefNS, ctx.Declared.RawArgument, ctx)
			case "feature":
				Put(ctx, featureNS, ctx.Declared.RawArgument, ctx)
			}
			ctx.markCompleted(StatementDefinition)
		})
	}
}

// parseArgument runs ctx's Support.ParseArgument over its raw argument once,
// storing the typed result on the Declared node so every later phase (and
// any clone taken of it by uses/augment/deviate) shares the same parsed
// value rather than re-parsing the string.
func (r *Reactor) parseArgument(ctx *Context) {
	if ctx.Declared.Argument != nil {
		return
	}
	v, err := ctx.Support.ParseArgument(ctx.Declared.RawArgument)
	if err != nil {
		r.errs = yerrs.AppendErr(r.errs, yerrs.SourceError{
			Source:  ctx.Source.Name,
			Keyword: ctx.Declared.Keyword,
			Msg:     fmt.Sprintf("invalid argument %q: %v", ctx.Declared.RawArgument, err),
		})
		return
	}
	ctx.Declared.Argument = v
}

// walkContexts visits ctx and every descendant, pre-order.
func walkContexts(ctx *Context, fn func(*Context)) {
	fn(ctx)
	for _, c := range ctx.Children {
		walkContexts(c, fn)
	}
}
