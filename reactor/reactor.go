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
	"github.com/derekparker/trie"
	"github.com/golang/glog"

	"github.com/openconfig/yangschema/qname"
	"github.com/openconfig/yangschema/stmt"
	"github.com/openconfig/yangschema/yerrs"
)

// Reactor drives the four compilation phases over every source handed to
// Compile (design §4). One Reactor corresponds to one compilation run: it
// is not safe to reuse across unrelated source sets, since its Global
// namespace storage accumulates module registrations for the lifetime of
// the run.
type Reactor struct {
	registry *Registry

	pending map[Phase][]*InferenceAction
	global  map[stmt.NamespaceKey]any

	features          map[string]bool // nil means "every feature supported"
	allFeatures       bool
	deviationModules  map[string]bool // nil means "every module may deviate"
	allDeviations     bool

	augmentTargets *trie.Trie        // prefix-conflict diagnostics for augment targets (design §4.1)
	augmentClaims  map[string]string // authoritative target-path -> claiming module namespace

	copyInfo      map[*stmt.Declared]copyMeta
	resolvedTypes map[*Context]*stmt.ResolvedType

	errs yerrs.Errors
}

// Option configures a Reactor at construction.
type Option func(*Reactor)

// WithFeatures restricts which if-feature names evaluate true. Absent this
// option every feature is considered supported.
func WithFeatures(names ...string) Option {
	return func(r *Reactor) {
		r.features = make(map[string]bool, len(names))
		for _, n := range names {
			r.features[n] = true
		}
	}
}

// WithSupportedDeviationModules restricts which modules' deviation
// statements the reactor honours (design §4.1 "supported-deviation-modules
// gating"); a deviation declared in a module whose namespace is outside this
// set is dropped with a logged message rather than an error. Absent this
// option every module's deviations are honoured.
func WithSupportedDeviationModules(modules ...string) Option {
	return func(r *Reactor) {
		r.deviationModules = make(map[string]bool, len(modules))
		for _, m := range modules {
			r.deviationModules[m] = true
		}
	}
}

// New builds a Reactor bound to reg. Pass reactor.DefaultRegistry() for the
// ordinary YANG statement set.
func New(reg *Registry, opts ...Option) *Reactor {
	r := &Reactor{
		registry:       reg,
		pending:        make(map[Phase][]*InferenceAction),
		global:         make(map[stmt.NamespaceKey]any),
		allFeatures:    true,
		allDeviations:  true,
		augmentTargets: trie.New(),
	}
	for _, o := range opts {
		o(r)
		if r.features != nil {
			r.allFeatures = false
		}
		if r.deviationModules != nil {
			r.allDeviations = false
		}
	}
	return r
}

func (r *Reactor) localMap() map[stmt.NamespaceKey]any { return r.global }

// putGlobal and getGlobal write/read a Global-behaviour NamespaceClass
// directly against the Reactor, for use before any Context exists yet (e.g.
// registering a module's identity during buildSources).
func putGlobal[K comparable, V any](r *Reactor, cls stmt.NamespaceClass[K, V], k K, v V) {
	r.global[stmt.Key(cls, k)] = v
}

func getGlobal[K comparable, V any](r *Reactor, cls stmt.NamespaceClass[K, V], k K) (V, bool) {
	raw, ok := r.global[stmt.Key(cls, k)]
	if !ok {
		var zero V
		return zero, false
	}
	return raw.(V), true
}

func (r *Reactor) registerAction(a *InferenceAction) {
	r.pending[a.Phase] = append(r.pending[a.Phase], a)
}

func (r *Reactor) featureActive(name string) bool {
	if r.allFeatures {
		return true
	}
	return r.features[name]
}

func (r *Reactor) deviationAllowed(moduleNamespace string) bool {
	if r.allDeviations {
		return true
	}
	return r.deviationModules[moduleNamespace]
}

// Compile runs every phase, in order, to completion over the given declared
// source trees (design §4). Each element of sources must be the Declared
// statement for a single top-level "module" or "submodule" keyword. On
// return the Reactor's accumulated errors (parse/cardinality/inference
// failures collected per-source, design §7) are returned as a yerrs.Errors
// if non-empty; a non-nil *StuckActionError from a genuine fixed-point
// failure is returned directly instead, since it indicates a structural
// problem rather than a per-source semantic one.
func (r *Reactor) Compile(sources []*stmt.Declared) (stmt.Model, error) {
	roots := r.buildSources(sources)

	if err := r.runPhase(SourceLinkage); err != nil {
		return nil, err
	}
	r.bindSupports(roots)
	if err := r.runPhase(StatementDefinition); err != nil {
		return nil, err
	}
	r.validateCardinalities(roots)
	if err := r.runPhase(FullDeclaration); err != nil {
		return nil, err
	}

	r.registerUsesActions(roots)
	if err := r.runPhase(EffectiveModel); err != nil {
		return nil, err
	}
	r.registerAugmentActions(roots)
	if err := r.runPhase(EffectiveModel); err != nil {
		return nil, err
	}
	r.registerDeviateActions(roots)
	if err := r.runPhase(EffectiveModel); err != nil {
		return nil, err
	}
	r.applyIfFeatureFilter(roots)
	r.registerTypedefActions(roots)
	if err := r.runPhase(EffectiveModel); err != nil {
		return nil, err
	}

	model := r.buildEffectiveModel(roots)
	r.resolveLeafrefs(model, roots)

	if len(r.errs) > 0 {
		return model, r.errs
	}
	return model, nil
}

// runPhase scans phase's pending actions repeatedly, running whichever are
// ready, until a full scan runs none (a fixed point) or every remaining
// action is stuck (design §4.1 "fixed-point inference-action loop").
func (r *Reactor) runPhase(phase Phase) error {
	for {
		actions := r.pending[phase]
		if len(actions) == 0 {
			return nil
		}
		var ready, stillPending []*InferenceAction
		for _, a := range actions {
			if a.ready() {
				ready = append(ready, a)
			} else {
				stillPending = append(stillPending, a)
			}
		}
		r.pending[phase] = stillPending
		if len(ready) == 0 {
			return newStuckActionError(phase, stillPending)
		}
		for _, a := range ready {
			if err := a.Apply(); err != nil {
				r.errs = yerrs.AppendErr(r.errs, err)
			}
		}
	}
}

func yqLocal(kw qname.QName) string { return kw.Local }

func logf(format string, args ...any) {
	glog.V(1).Infof(format, args...)
}
