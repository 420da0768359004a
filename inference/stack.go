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

// Package inference implements the mutable schema-inference cursor used to
// resolve leafref/deref path expressions and to navigate a data tree against
// its schema (design §4.2). It is a stack of frames, one per schema level
// entered, that can walk into and back out of the choice/case and grouping
// wrappers the schema tree carries but a data tree instance never does.
package inference

import (
	"fmt"

	"github.com/openconfig/yangschema/stmt"
)

// frameKind records why a Stack frame was pushed, so exit/exitToDataTree
// know how many frames a single logical step actually unwound.
type frameKind int

const (
	frameSchema frameKind = iota
	frameData
	frameChoice
	frameGrouping
)

type frame struct {
	kind frameKind
	node *stmt.Effective
}

// Stack is the mutable inference cursor (design §4.2). A zero Stack is
// ready to use once Reset is called with a starting node; it is not safe
// for concurrent use, matching the reactor's single-threaded compilation
// model (design §6).
type Stack struct {
	frames []frame
	dirty  bool
}

// NewStack returns a Stack positioned at root.
func NewStack(root *stmt.Effective) *Stack {
	s := &Stack{}
	s.Reset(root)
	return s
}

// Reset repositions the stack at root, discarding any prior frames.
func (s *Stack) Reset(root *stmt.Effective) {
	s.frames = []frame{{kind: frameSchema, node: root}}
	s.dirty = false
}

// Current returns the Effective statement the cursor is positioned at.
func (s *Stack) Current() *stmt.Effective {
	return s.frames[len(s.frames)-1].node
}

// EnterSchemaTree pushes a plain schema-tree step: the child named qn's
// Local under the current node, transparently looking through any
// intervening "case" wrapper (a choice's cases are never named in a schema
// or data path).
func (s *Stack) EnterSchemaTree(local string) error {
	cur := s.Current()
	child := findSchemaChild(cur, local)
	if child == nil {
		s.dirty = true
		return fmt.Errorf("inference: %s has no schema child %q", cur.SchemaPath, local)
	}
	s.frames = append(s.frames, frame{kind: frameSchema, node: child})
	return nil
}

// EnterDataTree behaves like EnterSchemaTree but additionally records that
// this frame corresponds to a data-tree instance boundary, for
// ExitToDataTree to find.
func (s *Stack) EnterDataTree(local string) error {
	if err := s.EnterSchemaTree(local); err != nil {
		return err
	}
	s.frames[len(s.frames)-1].kind = frameData
	return nil
}

// EnterChoice pushes a choice-tree step without requiring the caller to
// name the intervening case, mirroring how a data tree instance never
// spells out which case is active.
func (s *Stack) EnterChoice(choiceLocal string) error {
	cur := s.Current()
	child := findSchemaChild(cur, choiceLocal)
	if child == nil || child.Declared.Keyword.Local != "choice" {
		s.dirty = true
		return fmt.Errorf("inference: %s has no choice child %q", cur.SchemaPath, choiceLocal)
	}
	s.frames = append(s.frames, frame{kind: frameChoice, node: child})
	return nil
}

// EnterGrouping pushes a frame for descending into a grouping template
// (used while compiling a uses expansion's own nested references, before
// the clone has been spliced into a schema tree with a real SchemaPath).
func (s *Stack) EnterGrouping(g *stmt.Effective) {
	s.frames = append(s.frames, frame{kind: frameGrouping, node: g})
}

// Exit pops the most recently pushed frame.
func (s *Stack) Exit() error {
	if len(s.frames) <= 1 {
		return fmt.Errorf("inference: cannot exit the root frame")
	}
	s.frames = s.frames[:len(s.frames)-1]
	return nil
}

// ExitToDataTree pops frames until (and including popping back to) the
// nearest enclosing frame pushed by EnterDataTree, clearing any choice/case
// bookkeeping accumulated along the way (design §4.2's clean/dirty
// reconstruction: once a data-tree boundary is reached the cursor is clean
// again regardless of how it got dirty in between).
func (s *Stack) ExitToDataTree() error {
	for i := len(s.frames) - 1; i >= 1; i-- {
		if s.frames[i].kind == frameData {
			s.frames = s.frames[:i+1]
			s.dirty = false
			return nil
		}
	}
	return fmt.Errorf("inference: no enclosing data-tree frame")
}

// Dirty reports whether the cursor is in a recoverable error state (an
// Enter* call since the last Reset or ExitToDataTree failed to find its
// target). A dirty cursor still answers Current() (returning the last good
// position) and still accepts Enter* calls; only ExitToDataTree or Reset
// clears the flag.
func (s *Stack) Dirty() bool { return s.dirty }

func findSchemaChild(cur *stmt.Effective, local string) *stmt.Effective {
	for _, c := range cur.Substatements {
		if !c.IsSchemaNode() {
			continue
		}
		if c.Declared.Keyword.Local == "case" {
			if found := findSchemaChild(c, local); found != nil {
				return found
			}
			continue
		}
		if c.SchemaPath[len(c.SchemaPath)-1].Local == local {
			return c
		}
	}
	return nil
}
