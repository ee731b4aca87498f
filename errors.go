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

import "errors"

var (
	// ErrSegmentEmpty indicates that a path fragment contained no segments.
	ErrSegmentEmpty = errors.New("path fragment has no segments")

	// ErrSegmentInvalid indicates that a path segment contains invalid characters.
	ErrSegmentInvalid = errors.New("path segment contains invalid characters")

	// ErrNilHandler indicates that a nil endpoint handler was bound to a route.
	ErrNilHandler = errors.New("nil endpoint handler")

	// ErrNilMiddleware indicates that nil middleware was pushed onto a scope.
	ErrNilMiddleware = errors.New("nil middleware")

	// ErrRouteAlreadyNamed indicates that a route segment was named twice.
	ErrRouteAlreadyNamed = errors.New("route already has a name")

	// ErrRouteNotFound indicates that a named route could not be resolved.
	ErrRouteNotFound = errors.New("route not found")

	// ErrMissingRouteParameter indicates that a required parameter for the route is missing.
	ErrMissingRouteParameter = errors.New("missing required parameter")

	// ErrServeConflict indicates that a node holds both method handlers and a
	// static-serving target. A node is one or the other, never both.
	ErrServeConflict = errors.New("node cannot mix endpoint handlers and static serving")

	// ErrServeTarget indicates that the file or directory behind ServeFile or
	// ServeDir is not accessible at build time.
	ErrServeTarget = errors.New("static serving target not accessible")

	// ErrNilRegistrar indicates that Register was called without a host registrar.
	ErrNilRegistrar = errors.New("nil registrar")
)
