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
)

// StuckActionError is raised when a phase's fixed-point loop stops making
// progress while actions remain pending (design §7 "ReactorException"): it
// names every stuck action and the prerequisites each is still waiting on,
// so a user can tell a genuine forward-reference error (e.g. a grouping
// that was never defined) from a bug in action registration.
type StuckActionError struct {
	Phase Phase
	Stuck []stuckDetail
}

type stuckDetail struct {
	Desc    string
	Waiting []string
}

func (e *StuckActionError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "phase %s did not reach a fixed point: %d action(s) stuck", e.Phase, len(e.Stuck))
	for _, s := range e.Stuck {
		fmt.Fprintf(&b, "\n  %s: waiting on %s", s.Desc, strings.Join(s.Waiting, ", "))
	}
	return b.String()
}

func newStuckActionError(phase Phase, actions []*InferenceAction) *StuckActionError {
	e := &StuckActionError{Phase: phase}
	for _, a := range actions {
		var waiting []string
		for _, p := range a.unmet() {
			waiting = append(waiting, p.String())
		}
		e.Stuck = append(e.Stuck, stuckDetail{Desc: a.Desc, Waiting: waiting})
	}
	return e
}
