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

// Package source adapts external YANG source text into the stmt.Declared
// forest the reactor consumes (design §1 "Out of scope: lexer/parser").
// Parsing itself is delegated to an external parser (SPEC_FULL.md §1:
// `github.com/openconfig/goyang`'s `pkg/yang`); this package owns only the
// independent-source parallelism spec §5 calls out ("Parallelism is
// exposed only at the source-linkage boundary") and the shape conversion
// from one source's AST into one *stmt.Declared root.
package source

import (
	"fmt"
	"sync"

	"github.com/openconfig/yangschema/stmt"
)

// Input is one YANG source to parse: its name (module/submodule file name,
// used in diagnostics) and its raw text.
type Input struct {
	Name string
	Text []byte
}

// ParseFunc converts one Input into its root stmt.Declared ("module" or
// "submodule"). The production implementation wraps the external parser's
// AST walk (see DESIGN.md's `source` entry for why that walk is not wired
// here yet); ParseAll takes it as a parameter so tests can supply a fake
// without needing real YANG text or a parser dependency.
type ParseFunc func(Input) (*stmt.Declared, error)

// ParseAll parses every input concurrently using a bounded worker pool —
// a sync.WaitGroup coordinating goroutines that drain a shared input
// channel into a pre-sized result slice, the idiom the teacher itself uses
// for bounded fan-out (SPEC_FULL.md §5.1: the teacher imports no
// `errgroup`, so this does not either) — then hands the single-threaded
// reactor the resulting forest once every source is parsed (design §5:
// "Parallelism is exposed only at the source-linkage boundary").
func ParseAll(inputs []Input, parse ParseFunc, workers int) ([]*stmt.Declared, error) {
	if workers <= 0 {
		workers = 1
	}
	if workers > len(inputs) {
		workers = len(inputs)
	}
	if workers == 0 {
		return nil, nil
	}

	results := make([]*stmt.Declared, len(inputs))
	errs := make([]error, len(inputs))

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				d, err := parse(inputs[i])
				if err != nil {
					errs[i] = fmt.Errorf("%s: %w", inputs[i].Name, err)
					continue
				}
				results[i] = d
			}
		}()
	}
	for i := range inputs {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	var out []*stmt.Declared
	for i, d := range results {
		if errs[i] != nil {
			return nil, errs[i]
		}
		out = append(out, d)
	}
	return out, nil
}
