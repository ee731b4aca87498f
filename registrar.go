// Copyright 2025 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package fluentroutes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// Registrar is the host router contract. An adapter implements it for one
// concrete router and translates this package's path spelling (":param"
// placeholders, "/"-joined literals) into the host's own syntax.
//
// Both primitives are synchronous and report success or failure at call time.
// All calls happen at startup during registration, never in the request path,
// so interface dispatch overhead is irrelevant here.
type Registrar interface {
	// RegisterEndpoint binds a handler at an exact path. An empty method
	// means the handler answers every method the host supports.
	RegisterEndpoint(path, method string, h http.Handler) error

	// RegisterMount binds a handler under a path prefix. The handler already
	// strips the prefix itself; the host only has to route the subtree to it.
	RegisterMount(prefix string, h http.Handler) error
}

// Register flattens a completed route tree and issues one host call per
// descriptor: endpoints with their middleware chain applied outside-in, and
// directory mounts as prefix registrations. Registration order is the tree's
// deterministic flattening order, so registering the same tree twice against
// the same kind of host produces the same call sequence.
//
// Failures accumulate rather than abort: build errors recorded while the tree
// was constructed and per-call host rejections are joined into the returned
// error, and every remaining descriptor is still attempted. Registration is
// not transactional; calls that succeeded before a failure stay registered.
// The caller decides whether a non-nil result is startup-fatal.
func Register(reg Registrar, tree *RouteSegment, opts ...RegisterOption) error {
	if reg == nil {
		return ErrNilRegistrar
	}

	cfg := newRegisterConfig(opts)
	descriptors, err := tree.Build()

	var errs []error
	if err != nil {
		errs = append(errs, err)
	}

	for _, d := range descriptors {
		h := d.WrappedHandler()

		var callErr error
		if d.Mount {
			callErr = reg.RegisterMount(d.Path, h)
		} else {
			callErr = reg.RegisterEndpoint(d.Path, d.Method, h)
		}
		if callErr != nil {
			errs = append(errs, fmt.Errorf("register %s %s: %w", describeMethod(d), d.Path, callErr))
			continue
		}

		cfg.recordRegistration(context.Background(), d)
	}

	return errors.Join(errs...)
}

// describeMethod renders a descriptor's method for error and log output.
func describeMethod(d RouteDescriptor) string {
	switch {
	case d.Mount:
		return "MOUNT"
	case d.Method == "":
		return "ANY"
	default:
		return d.Method
	}
}
