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

package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/openconfig/yangschema/reactor"
	"github.com/openconfig/yangschema/source"
	"github.com/openconfig/yangschema/stmt"
)

func newCompileCmd() *cobra.Command {
	compile := &cobra.Command{
		Use:   "compile",
		RunE:  runCompile,
		Short: "Compiles one or more YANG source files through the statement reactor.",
		Args:  cobra.MinimumNArgs(1),
	}

	compile.Flags().StringSlice("feature", nil, "Restrict compilation to these if-feature names (default: every feature supported).")
	compile.Flags().StringSlice("supported-deviation-module", nil, "Honour deviations only from modules with these namespaces (default: every module).")
	compile.Flags().Int("workers", 4, "Number of sources to parse concurrently.")

	return compile
}

// runCompile reads each named file and hands it through source.ParseAll to
// the reactor, exactly as ygen/codegen.go's processModules reads a YANG
// file list before handing it to goyang's moduleSet.Process.
//
// parseSource itself (see below) is the one piece this command cannot wire
// to a real YANG grammar yet (DESIGN.md's `source` ledger entry records
// why); this command still exercises the rest of the pipeline end to end —
// flag parsing, concurrent read/parse fan-out, and reactor.Compile — against
// whatever parseSource is able to produce.
func runCompile(cmd *cobra.Command, args []string) error {
	workers := viper.GetInt("workers")

	var inputs []source.Input
	for _, path := range args {
		text, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		inputs = append(inputs, source.Input{Name: filepath.Base(path), Text: text})
	}

	declared, err := source.ParseAll(inputs, parseSource, workers)
	if err != nil {
		return err
	}

	var opts []reactor.Option
	if features := viper.GetStringSlice("feature"); len(features) > 0 {
		opts = append(opts, reactor.WithFeatures(features...))
	}
	if modules := viper.GetStringSlice("supported-deviation-module"); len(modules) > 0 {
		opts = append(opts, reactor.WithSupportedDeviationModules(modules...))
	}

	r := reactor.New(reactor.DefaultRegistry(), opts...)
	model, err := r.Compile(declared)
	if err != nil {
		return err
	}
	for id := range model {
		fmt.Fprintf(os.Stdout, "compiled module %s\n", id)
	}
	return nil
}

// parseSource is the ParseFunc this command hands to source.ParseAll. It
// deliberately does not attempt to walk goyang's raw pre-compile AST: no
// call site for that API (yang.Parse's yang.Node/yang.Statement shape)
// exists anywhere in the retrieval pack to ground a field-by-field
// conversion against, unlike every other goyang symbol this module depends
// on (DESIGN.md's `source` entry records the grep that came up empty). A
// fabricated conversion would silently miscompile every source handed to
// it, which is worse than failing loudly here.
func parseSource(in source.Input) (*stmt.Declared, error) {
	if len(in.Text) == 0 {
		return nil, fmt.Errorf("%s: empty source", in.Name)
	}
	return nil, fmt.Errorf("%s: no YANG-text parser is wired yet (see DESIGN.md's `source` entry); supply a *stmt.Declared forest programmatically instead of through this command", in.Name)
}
