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

// Package yerrs defines the four error kinds used across the reactor and
// tree-apply engine (design §7): SourceError, InferenceError,
// SchemaViolation and IllegalStateUse. It also carries Errors, a slice of
// error used to aggregate many failures before a phase reports them, exactly
// as the teacher's util.Errors aggregates reflect-walk failures.
package yerrs

import (
	"fmt"

	"github.com/openconfig/yangschema/qname"
)

// SourceError is raised when a single source (module or submodule) contains
// a statement that violates substatement cardinality, has an unparseable
// argument, or is missing a mandatory child. It is fatal to the affected
// source but does not by itself abort sibling sources.
type SourceError struct {
	Source  string // source reference: file path or module name, plus line if known
	Keyword qname.QName
	Msg     string
}

func (e SourceError) Error() string {
	return fmt.Sprintf("%s: %s (%s)", e.Source, e.Msg, e.Keyword.Local)
}

// InferenceError is raised for an unresolved reference, a cycle (grouping,
// typedef chain, leafref chain) or a type-derivation/deviation-target
// mismatch detected during the EffectiveModel phase. The reactor aggregates
// every InferenceError produced across all sources before reporting.
type InferenceError struct {
	Path qname.QName
	Arg  string
	Msg  string
}

func (e InferenceError) Error() string {
	if e.Arg == "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Msg)
	}
	return fmt.Sprintf("%s: %s (argument %q)", e.Path, e.Msg, e.Arg)
}

// SchemaViolation is raised by the tree-apply engine when a modification
// violates structure, type or choice-case constraints. It is fail-fast: the
// first SchemaViolation aborts the modification pass and is surfaced to the
// caller unchanged, referencing the offending path and reason.
type SchemaViolation struct {
	Path   string
	Reason string
}

func (e SchemaViolation) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Reason)
}

// IllegalStateUse indicates programmatic misuse of the inference stack or
// the modification tree by the caller: popping an empty stack, converting a
// dirty/uninstantiated stack to a schema-node identifier, applying a sealed
// modification, and similar invariant violations that are bugs in the
// caller rather than malformed input.
type IllegalStateUse struct {
	Msg string
}

func (e IllegalStateUse) Error() string {
	return e.Msg
}

// Errors is a slice of error, aggregated across a phase or a traversal.
// Mirrors the teacher's util.Errors shape exactly (NewErrs/AppendErr/
// AppendErrs/ToString), generalized from "reflect-walk failures" to "any of
// the four kinds above".
type Errors []error

// Error implements the error interface.
func (e Errors) Error() string {
	return ToString([]error(e))
}

// String implements fmt.Stringer.
func (e Errors) String() string {
	return e.Error()
}

// NewErrs returns a slice of error with a single element err, or nil if err
// is nil.
func NewErrs(err error) Errors {
	if err == nil {
		return nil
	}
	return Errors{err}
}

// AppendErr appends err to errs if it is not nil, and returns the result.
func AppendErr(errs []error, err error) Errors {
	if err == nil {
		return errs
	}
	return append(errs, err)
}

// AppendErrs appends each non-nil error in newErrs to errs.
func AppendErrs(errs []error, newErrs []error) Errors {
	for _, e := range newErrs {
		errs = AppendErr(errs, e)
	}
	return errs
}

// ToString renders a slice of error as a single comma-separated string,
// skipping any nil entries.
func ToString(errs []error) string {
	var out string
	for i, e := range errs {
		if e == nil {
			continue
		}
		if i != 0 && out != "" {
			out += ", "
		}
		out += e.Error()
	}
	return out
}
