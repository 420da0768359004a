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

// Package qname defines the identifiers shared by every statement, schema
// node and feature in the reactor and tree-apply engine: the qualified name
// and the module identifier it is drawn from.
package qname

import "strings"

// ModuleID identifies a single revision of a YANG module by its namespace
// URI and an optional revision date. Distinct revisions of the same
// namespace are distinct ModuleIDs and coexist in an effective model.
type ModuleID struct {
	Namespace string
	Revision  string
}

// String renders m as "namespace@revision", or just "namespace" when no
// revision is set.
func (m ModuleID) String() string {
	if m.Revision == "" {
		return m.Namespace
	}
	return m.Namespace + "@" + m.Revision
}

// QName is the triple (namespace URI, optional revision date, local name)
// that identifies every schema node, every normalized-node child slot and
// every feature. QName is comparable and may be used directly as a map key.
type QName struct {
	Namespace string
	Revision  string
	Local     string
}

// New builds a QName from a module identifier and a local name.
func New(mod ModuleID, local string) QName {
	return QName{Namespace: mod.Namespace, Revision: mod.Revision, Local: local}
}

// Module returns the ModuleID component of q.
func (q QName) Module() ModuleID {
	return ModuleID{Namespace: q.Namespace, Revision: q.Revision}
}

// SameNamespace reports whether q and other share both namespace and local
// name, ignoring revision. Two statements copied across a uses/augment
// boundary are considered to collide when they share namespace and local
// name, independent of which revision performed the copy.
func (q QName) SameNamespace(other QName) bool {
	return q.Namespace == other.Namespace && q.Local == other.Local
}

// String renders q for diagnostics as "namespace?revision=rev/local", or
// "namespace/local" when no revision is carried.
func (q QName) String() string {
	if q.Revision == "" {
		return q.Namespace + "/" + q.Local
	}
	return q.Namespace + "?revision=" + q.Revision + "/" + q.Local
}

// StripPrefix removes a leading "prefix:" from a raw YANG identifier, as
// used when argument strings (e.g. the target of a leafref path step) are
// written with a module prefix. It returns name unchanged if it carries no
// prefix, or if the string has more than one colon (an invalid identifier,
// left for the caller to reject).
func StripPrefix(name string) string {
	if i := strings.IndexByte(name, ':'); i >= 0 && strings.LastIndexByte(name, ':') == i {
		return name[i+1:]
	}
	return name
}

// SplitPrefix splits a raw identifier of the form "prefix:local" into its
// prefix and local parts. If name carries no prefix, prefix is returned
// empty and local is name unchanged.
func SplitPrefix(name string) (prefix, local string) {
	if i := strings.IndexByte(name, ':'); i >= 0 && strings.LastIndexByte(name, ':') == i {
		return name[:i], name[i+1:]
	}
	return "", name
}
