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

import "net/http"

// methodOrder fixes the order in which a node's method bindings flatten.
// Map iteration order would make registration order run-dependent; the host
// router's conflict resolution may be order-sensitive, so flattening must be
// reproducible.
var methodOrder = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodConnect,
	http.MethodOptions,
	http.MethodTrace,
}

// Get binds a GET endpoint to the current node.
//
// Example:
//
//	tree := fluentroutes.Root().Get(homeHandler)
func (s *RouteSegment) Get(h http.Handler) *RouteSegment {
	return s.bind(http.MethodGet, h)
}

// Head binds a HEAD endpoint to the current node.
func (s *RouteSegment) Head(h http.Handler) *RouteSegment {
	return s.bind(http.MethodHead, h)
}

// Post binds a POST endpoint to the current node.
func (s *RouteSegment) Post(h http.Handler) *RouteSegment {
	return s.bind(http.MethodPost, h)
}

// Put binds a PUT endpoint to the current node.
func (s *RouteSegment) Put(h http.Handler) *RouteSegment {
	return s.bind(http.MethodPut, h)
}

// Patch binds a PATCH endpoint to the current node.
func (s *RouteSegment) Patch(h http.Handler) *RouteSegment {
	return s.bind(http.MethodPatch, h)
}

// Delete binds a DELETE endpoint to the current node.
func (s *RouteSegment) Delete(h http.Handler) *RouteSegment {
	return s.bind(http.MethodDelete, h)
}

// Connect binds a CONNECT endpoint to the current node.
func (s *RouteSegment) Connect(h http.Handler) *RouteSegment {
	return s.bind(http.MethodConnect, h)
}

// Options binds an OPTIONS endpoint to the current node.
func (s *RouteSegment) Options(h http.Handler) *RouteSegment {
	return s.bind(http.MethodOptions, h)
}

// Trace binds a TRACE endpoint to the current node.
func (s *RouteSegment) Trace(h http.Handler) *RouteSegment {
	return s.bind(http.MethodTrace, h)
}
