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

// validateCardinalities walks every Context and checks its children's
// keyword counts against its Support's Cardinalities() (design §6's
// substatement cardinality table). Violations are appended to r.errs as
// yerrs.SourceError rather than aborting the walk, so a single malformed
// statement does not hide every other problem in the same source (design §7
// "partial failure").
func (r *Reactor) validateCardinalities(roots []*Context) {
	for _, root := range roots {
		walkContexts(root, func(ctx *Context) {
			rules := ctx.Support.Cardinalities()
			if len(rules) == 0 {
				ctx.markCompleted(FullDeclaration)
				return
			}
			counts := make(map[string]int, len(rules))
			for _, c := range ctx.Children {
				counts[c.Declared.Keyword.Local]++
			}
			for _, rule := range rules {
				n := counts[rule.Child.Local]
				if n < rule.Min || (rule.Max >= 0 && n > rule.Max) {
					r.errs = yerrs.AppendErr(r.errs, yerrs.SourceError{
						Source: ctx.Source.Name,
						Keyword: ctx.Declared.Keyword,
						Msg: fmt.Sprintf("%q requires %s to appear %s, found %d",
							ctx.Declared.Keyword.Local, rule.Child.Local, cardinalityDesc(rule.Min, rule.Max), n),
					})
				}
			}
			ctx.markCompleted(FullDeclaration)
		})
	}
}

func cardinalityDesc(min, max int) string {
	switch {
	case min == max:
		return fmt.Sprintf("exactly %d time(s)", min)
	case max < 0:
		return fmt.Sprintf("at least %d time(s)", min)
	default:
		return fmt.Sprintf("between %d and %d times", min, max)
	}
}
