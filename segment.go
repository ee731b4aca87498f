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
	"fmt"
	"net/http"
	"strings"
)

// Middleware wraps an http.Handler with additional behavior. Middleware
// declared closer to the tree root wraps middleware declared deeper, so the
// root-declared middleware is the outermost wrapper at dispatch time.
type Middleware func(http.Handler) http.Handler

// methodAll is the catch-all key in a segment's endpoint map. It flattens to
// a RouteDescriptor with an empty Method, which host adapters register as an
// any-method route.
const methodAll = "*"

// RouteSegment is a node in a route tree and, at the same time, the builder
// position used to grow that tree. Segments compose into a tree of path
// fragments, middleware scopes, and endpoints that defines the routes of an
// application. A completed tree is flattened with [RouteSegment.Build] or
// handed to [Register] to be materialized on a host router.
//
// The tree is append-only: builder calls add nodes and bindings but never
// remove them. Construction is single-threaded and happens before the host
// server accepts traffic, so no locking is involved.
type RouteSegment struct {
	// segment is one path component ("users", ":id"). It is empty on the tree
	// root and on middleware scopes created by With.
	segment string

	middleware []Middleware
	name       string
	endpoints  map[string]http.Handler
	serve      *serveTarget
	branches   []*RouteSegment

	// errs holds build errors recorded at this node. They surface when the
	// tree is flattened; nothing during construction is fatal.
	errs []error
}

// Root starts a new route tree. The returned segment sits at the tree root
// with an empty path and no bindings.
//
// Example:
//
//	tree := fluentroutes.Root().
//	    Get(homeHandler).
//	    At("api/v1", func(r *fluentroutes.RouteSegment) *fluentroutes.RouteSegment {
//	        return r.Get(listHandler).Post(createHandler)
//	    })
func Root() *RouteSegment {
	return &RouteSegment{}
}

// At adds sub-routes under a path fragment. The fragment may carry several
// segments at once ("api/v1"); it is split into nested single-segment nodes,
// and fn receives a builder rooted at the deepest of them. The tree fn returns
// is grafted back at that location, and At returns the receiver so chaining
// continues at the original level.
//
// The returned tree does not have to originate from the builder fn received:
// a helper can assemble a sub-tree independently (starting from [Root]) and
// return it, which splices the sub-tree into the parent at the fragment's
// path. This is what makes modular route definitions compose.
//
// A malformed fragment is recorded as a build error before any node is
// created; the error surfaces when the tree is flattened.
func (s *RouteSegment) At(fragment string, fn func(*RouteSegment) *RouteSegment) *RouteSegment {
	child, err := s.descend(fragment)
	if err != nil {
		s.errs = append(s.errs, fmt.Errorf("at %q: %w", fragment, err))
		return s
	}

	if fn != nil {
		child.graft(fn(child))
	}

	return s
}

// With pushes middleware onto a scope at the current path. fn receives a
// builder at the same path position; the middleware applies to every handler
// added within fn and to all of its descendants, and to nothing else. Siblings
// added before or after the With call are unaffected.
//
// Scopes nest: middleware from enclosing scopes wraps middleware from inner
// ones, outside-in.
func (s *RouteSegment) With(mw Middleware, fn func(*RouteSegment) *RouteSegment) *RouteSegment {
	if mw == nil {
		s.errs = append(s.errs, fmt.Errorf("with: %w", ErrNilMiddleware))
		return s
	}

	scope := &RouteSegment{middleware: []Middleware{mw}}
	s.branches = append(s.branches, scope)

	if fn != nil {
		scope.graft(fn(scope))
	}

	return s
}

// Method binds an endpoint to the current node under the given HTTP method.
// Binding the same method twice on one node overwrites the previous binding;
// handlers are never merged. Returns the receiver for chaining.
func (s *RouteSegment) Method(method string, h http.Handler) *RouteSegment {
	return s.bind(strings.ToUpper(strings.TrimSpace(method)), h)
}

// All binds a catch-all endpoint that the host registers for every method.
func (s *RouteSegment) All(h http.Handler) *RouteSegment {
	return s.bind(methodAll, h)
}

// Name makes the current node a named route for reverse routing. Naming a
// node twice is recorded as a build error; the first name stands.
func (s *RouteSegment) Name(name string) *RouteSegment {
	if s.name != "" {
		s.errs = append(s.errs, fmt.Errorf("%w: %q", ErrRouteAlreadyNamed, s.name))
		return s
	}
	s.name = name

	return s
}

// Err returns the build errors recorded so far in this tree, joined into a
// single error, or nil if construction has been clean. Flattening and
// registration report the same errors; Err is a convenience for callers that
// want to fail fast between building and registering.
func (s *RouteSegment) Err() error {
	_, err := s.Build()
	return err
}

// bind stores a handler under a method key, guarding the node invariants.
func (s *RouteSegment) bind(method string, h http.Handler) *RouteSegment {
	if h == nil {
		s.errs = append(s.errs, fmt.Errorf("bind %s: %w", method, ErrNilHandler))
		return s
	}
	if s.serve != nil {
		s.errs = append(s.errs, fmt.Errorf("bind %s: %w", method, ErrServeConflict))
		return s
	}

	if s.endpoints == nil {
		s.endpoints = make(map[string]http.Handler)
	}
	s.endpoints[method] = h

	return s
}

// descend creates the node chain for a fragment under s and returns the
// deepest node. Every call creates fresh nodes; duplicate fragments simply
// produce sibling branches, which flatten to the same full paths.
func (s *RouteSegment) descend(fragment string) (*RouteSegment, error) {
	segments, err := splitFragment(fragment)
	if err != nil {
		return nil, err
	}

	current := s
	for _, segment := range segments {
		next := &RouteSegment{segment: segment}
		current.branches = append(current.branches, next)
		current = next
	}

	return current, nil
}

// graft merges the tree returned from a configuration function back onto the
// node that hosted the scope. Three shapes come back in practice:
//
//   - the same builder the function received (plain chaining): nothing to do,
//     the mutations already live in the tree;
//   - an independently built tree started from Root: its contents are adopted
//     wholesale, so its children hang below this node's path;
//   - a sub-tree whose root carries its own segment (a helper returning a
//     tree rooted at "articles"): it becomes a branch, extending the path.
func (s *RouteSegment) graft(returned *RouteSegment) {
	if returned == nil || returned == s {
		return
	}

	if returned.segment != "" {
		s.branches = append(s.branches, returned)
		return
	}

	s.middleware = append(s.middleware, returned.middleware...)
	s.branches = append(s.branches, returned.branches...)
	s.errs = append(s.errs, returned.errs...)

	if returned.name != "" {
		if s.name != "" {
			s.errs = append(s.errs, fmt.Errorf("%w: %q", ErrRouteAlreadyNamed, s.name))
		} else {
			s.name = returned.name
		}
	}
	if returned.serve != nil {
		if s.serve != nil || len(s.endpoints) > 0 {
			s.errs = append(s.errs, fmt.Errorf("graft: %w", ErrServeConflict))
		} else {
			s.serve = returned.serve
		}
	}
	for method, h := range returned.endpoints {
		s.bind(method, h)
	}
}
