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
	"errors"
	"net/http"
	"sort"
)

// RouteDescriptor is one flattened registration: the full path from the tree
// root, the HTTP method, the middleware in scope from root to the node, and
// the endpoint handler. Descriptors are what [Register] turns into host
// router calls.
type RouteDescriptor struct {
	// Path is the full route path, "/"-joined from the root.
	Path string

	// Method is the HTTP method, or empty for catch-all endpoints and for
	// directory mounts.
	Method string

	// Middleware is the effective chain for this route, in root-to-leaf
	// declaration order. Index 0 wraps outermost.
	Middleware []Middleware

	// Handler is the endpoint to dispatch to.
	Handler http.Handler

	// Mount marks Path as a directory prefix mount rather than an exact
	// route. The handler serves the directory with the prefix stripped.
	Mount bool
}

// WrappedHandler applies the descriptor's middleware chain to its handler,
// outside-in: Middleware[0] is the outermost wrapper.
func (d RouteDescriptor) WrappedHandler() http.Handler {
	h := d.Handler
	for i := len(d.Middleware) - 1; i >= 0; i-- {
		h = d.Middleware[i](h)
	}

	return h
}

// Build flattens the tree into its registration sequence with a pre-order
// depth-first walk. At each node the local method bindings flatten first, in
// fixed method order, then the catch-all, then the static-serving annotation,
// and finally the branches in insertion order. Building the same tree twice
// yields an identical sequence.
//
// The returned error joins every build error recorded while the tree was
// constructed; descriptors for the valid parts of the tree are returned
// alongside, and the caller decides whether the errors are fatal.
func (s *RouteSegment) Build() ([]RouteDescriptor, error) {
	var (
		descriptors []RouteDescriptor
		errs        []error
	)
	s.flatten(nil, nil, &descriptors, &errs)

	return descriptors, errors.Join(errs...)
}

// flatten walks one node. segments and chain accumulate the path and the
// middleware scope from the root; both are copied before extension so sibling
// branches never observe each other's state.
func (s *RouteSegment) flatten(segments []string, chain []Middleware, out *[]RouteDescriptor, errs *[]error) {
	if s.segment != "" {
		segments = append(append([]string(nil), segments...), s.segment)
	}
	if len(s.middleware) > 0 {
		chain = append(append([]Middleware(nil), chain...), s.middleware...)
	}

	*errs = append(*errs, s.errs...)
	path := joinPath(segments)

	for _, method := range s.sortedMethods() {
		*out = append(*out, RouteDescriptor{
			Path:       path,
			Method:     method,
			Middleware: chain,
			Handler:    s.endpoints[method],
		})
	}
	if h, ok := s.endpoints[methodAll]; ok {
		*out = append(*out, RouteDescriptor{
			Path:       path,
			Middleware: chain,
			Handler:    h,
		})
	}

	if s.serve != nil {
		switch s.serve.kind {
		case serveFile:
			// A file is an exact route; HEAD rides along with GET per RFC 7231.
			h := fileHandler(s.serve.fsPath)
			*out = append(*out,
				RouteDescriptor{Path: path, Method: http.MethodGet, Middleware: chain, Handler: h},
				RouteDescriptor{Path: path, Method: http.MethodHead, Middleware: chain, Handler: h},
			)
		case serveDir:
			*out = append(*out, RouteDescriptor{
				Path:       path,
				Middleware: chain,
				Handler:    dirHandler(path, s.serve.fsPath),
				Mount:      true,
			})
		}
	}

	for _, branch := range s.branches {
		branch.flatten(segments, chain, out, errs)
	}
}

// sortedMethods returns the node's bound methods in flattening order: the
// standard methods in fixed table order first, then any extension methods
// sorted lexically. The catch-all key is excluded.
func (s *RouteSegment) sortedMethods() []string {
	if len(s.endpoints) == 0 {
		return nil
	}

	methods := make([]string, 0, len(s.endpoints))
	seen := make(map[string]bool, len(s.endpoints))
	for _, method := range methodOrder {
		if _, ok := s.endpoints[method]; ok {
			methods = append(methods, method)
			seen[method] = true
		}
	}

	var extensions []string
	for method := range s.endpoints {
		if !seen[method] && method != methodAll {
			extensions = append(extensions, method)
		}
	}
	sort.Strings(extensions)

	return append(methods, extensions...)
}
