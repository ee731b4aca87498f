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

// Package fluentroutes builds HTTP route trees with a fluent, composable API
// and materializes them onto a host router.
//
// A route tree describes paths, per-method endpoint bindings, scoped
// middleware, and static file serving as one expression. The tree is built in
// memory with no host interaction; handing it to [Register] flattens it into
// an ordered sequence of registration calls against any router that
// implements [Registrar]. Adapters for net/http's ServeMux, chi, gorilla/mux,
// echo, and gin live under host/.
//
// # Building a tree
//
// [Root] starts a tree; [RouteSegment.At] descends a path fragment and
// configures it through a closure; per-method shorthands bind endpoints:
//
//	tree := fluentroutes.Root().
//	    Get(homeHandler).
//	    At("api/v1", func(r *fluentroutes.RouteSegment) *fluentroutes.RouteSegment {
//	        return r.
//	            At("users", func(r *fluentroutes.RouteSegment) *fluentroutes.RouteSegment {
//	                return r.Get(listUsers).Post(createUser)
//	            }).
//	            At("users/:id", func(r *fluentroutes.RouteSegment) *fluentroutes.RouteSegment {
//	                return r.Get(showUser)
//	            })
//	    })
//
// Because the closures are plain functions from builder to builder, sub-trees
// can be assembled by helpers elsewhere and returned into an At call, which
// splices them under the parent's path.
//
// # Middleware scoping
//
// [RouteSegment.With] scopes middleware to exactly the handlers added inside
// its closure and their descendants. The effective chain of a handler is the
// concatenation of the middleware declared from the root down to its node,
// applied outside-in:
//
//	tree := fluentroutes.Root().At("api", func(r *fluentroutes.RouteSegment) *fluentroutes.RouteSegment {
//	    return r.
//	        With(requireAuth, func(r *fluentroutes.RouteSegment) *fluentroutes.RouteSegment {
//	            return r.Get(privateHandler) // wrapped by requireAuth
//	        }).
//	        Post(publicHandler) // not wrapped
//	})
//
// # Static serving
//
// [RouteSegment.ServeFile] and [RouteSegment.ServeDir] attach filesystem
// serving to a path with the same splitting and middleware-scoping rules as
// endpoints. Existence is checked at build time and reported as a recoverable
// error; content is only read when the host serves requests.
//
// # Registration
//
// [Register] walks the finished tree once, depth-first, and issues one host
// call per route with the full path and the middleware-wrapped handler.
// The walk order is deterministic, so conflict resolution on order-sensitive
// hosts is reproducible. Host rejections and build errors are joined into the
// returned error; there is no rollback of calls that already succeeded, and
// nothing in this package aborts the process.
//
// All of this happens once, at startup, on one goroutine. The tree is not
// meant to be shared or mutated after registration.
package fluentroutes
