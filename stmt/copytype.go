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

// CopyType records how an effective statement came to exist at its current
// position, per design §4.1 "uses / grouping": ORIGINAL for a statement that
// was declared in place (including the first expansion of a uses), and
// ADDED_BY_USES / ADDED_BY_AUGMENT for statements cloned in by a nested
// uses or an augment respectively. Diagnostics walk CopyType back to the
// clone's Source to report errors against the authored location rather
// than the instantiation site.
type CopyType uint8

const (
	// Original marks a statement declared at this position, or the
	// top-level clone of a grouping's direct substatements into a uses.
	Original CopyType = iota
	// AddedByUses marks a statement that arrived via a uses nested
	// inside the grouping being expanded (a grouping using another
	// grouping).
	AddedByUses
	// AddedByAugment marks a statement injected as a child by an augment
	// target resolution.
	AddedByAugment
)

func (c CopyType) String() string {
	switch c {
	case AddedByUses:
		return "added-by-uses"
	case AddedByAugment:
		return "added-by-augment"
	default:
		return "original"
	}
}
