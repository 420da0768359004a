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

// Status is the three-state lifecycle of a statement: current (the
// default), deprecated or obsolete.
type Status uint8

const (
	StatusCurrent Status = iota
	StatusDeprecated
	StatusObsolete
)

func (s Status) String() string {
	switch s {
	case StatusDeprecated:
		return "deprecated"
	case StatusObsolete:
		return "obsolete"
	default:
		return "current"
	}
}

// Flags is the packed attribute word every schema-tree-bearing effective
// statement carries: status, config, mandatory, user-ordered and presence,
// exactly as design §3 describes. Packing these into one word keeps
// Effective small and lets "inherited from parent" fall out of a single
// copy rather than a walk back up the tree at every query.
type Flags uint16

const (
	// FlagMandatory is set when the statement carries an explicit
	// "mandatory true", or is implied mandatory by min-elements > 0 for a
	// list/leaf-list.
	FlagMandatory Flags = 1 << iota
	// FlagUserOrdered is set when a list or leaf-list carries
	// "ordered-by user".
	FlagUserOrdered
	// FlagPresence is set on a container with an explicit "presence"
	// statement; such a container has no "automatic lifecycle" default
	// (design §4.3).
	FlagPresence
	// FlagConfigSet records that "config" was stated explicitly somewhere
	// on this statement or an ancestor, as opposed to defaulting from the
	// inherited value. FlagConfigFalse is only meaningful when this is set.
	FlagConfigSet
	// FlagConfigFalse is set when the effective config value is false.
	// Config defaults to inherited, and the root default is true.
	FlagConfigFalse
	statusBit0
	statusBit1
)

// WithStatus returns flags with the status field set to s.
func (f Flags) WithStatus(s Status) Flags {
	f &^= statusBit0 | statusBit1
	return f | Flags(s)<<5
}

// Status returns the statement's effective status.
func (f Flags) Status() Status {
	return Status((f >> 5) & 0x3)
}

// Mandatory reports whether the statement is mandatory.
func (f Flags) Mandatory() bool { return f&FlagMandatory != 0 }

// UserOrdered reports whether a list/leaf-list is user-ordered.
func (f Flags) UserOrdered() bool { return f&FlagUserOrdered != 0 }

// Presence reports whether a container is a presence container.
func (f Flags) Presence() bool { return f&FlagPresence != 0 }

// Config reports the statement's effective config value. Per RFC 7950
// §7.21.1, config defaults to the inherited value, and the implicit root
// default is true.
func (f Flags) Config() bool {
	if f&FlagConfigSet == 0 {
		return true
	}
	return f&FlagConfigFalse == 0
}

// SetMandatory returns f with FlagMandatory set to v.
func (f Flags) SetMandatory(v bool) Flags { return setBit(f, FlagMandatory, v) }

// SetUserOrdered returns f with FlagUserOrdered set to v.
func (f Flags) SetUserOrdered(v bool) Flags { return setBit(f, FlagUserOrdered, v) }

// SetPresence returns f with FlagPresence set to v.
func (f Flags) SetPresence(v bool) Flags { return setBit(f, FlagPresence, v) }

// SetConfig returns f with config explicitly recorded as v.
func (f Flags) SetConfig(v bool) Flags {
	f |= FlagConfigSet
	return setBit(f, FlagConfigFalse, !v)
}

func setBit(f, bit Flags, v bool) Flags {
	if v {
		return f | bit
	}
	return f &^ bit
}
