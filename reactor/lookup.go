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

// resolveModuleRoot finds the root Context of the module a prefix refers to,
// relative to ctx's own source (design §4.1's prefix-to-module lookup). An
// empty prefix resolves to ctx's own source's module.
func resolveModuleRoot(ctx *Context, prefix string) (*Context, bool) {
	if prefix == "" {
		return ctx.Source.Root, true
	}
	id, ok := Get(ctx, prefixNS, prefix)
	if !ok {
		return nil, false
	}
	mc, ok := getGlobal(ctx.R, moduleByIDNS, id)
	if !ok {
		return nil, false
	}
	return mc.Main.Root, true
}

// lookupGrouping resolves a "uses" argument (possibly "prefix:name") to the
// Context of the grouping it names.
func lookupGrouping(ctx *Context, raw string) (*Context, bool) {
	prefix, local := qname.SplitPrefix(raw)
	root, ok := resolveModuleRoot(ctx, prefix)
	if !ok {
		return nil, false
	}
	raw2, ok := root.localMap()[stmt.Key(groupingNS, local)]
	if !ok {
		return nil, false
	}
	gctx, ok := raw2.(*Context)
	return gctx, ok
}

// lookupTypedef resolves a "type" argument to the Context of the typedef it
// names, or ok=false if raw names a YANG built-in type rather than a
// typedef.
func lookupTypedef(ctx *Context, raw string) (*Context, bool) {
	prefix, local := qname.SplitPrefix(raw)
	root, ok := resolveModuleRoot(ctx, prefix)
	if !ok {
		return nil, false
	}
	raw2, ok := root.localMap()[stmt.Key(typedefNS, local)]
	if !ok {
		return nil, false
	}
	tctx, ok := raw2.(*Context)
	return tctx, ok
}
