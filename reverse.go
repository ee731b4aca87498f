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
	"net/url"
	"strings"
)

// ReverseRouter resolves route names back to paths. It is a snapshot of the
// named segments of one tree, taken with [RouteSegment.ReverseRouter];
// changes to the tree after the snapshot are not reflected.
type ReverseRouter struct {
	routes map[string]string
}

// ReverseRouter collects the tree's named segments into a name → path lookup.
// Middleware plays no part in naming, only the path position of the Name call.
//
// Example:
//
//	tree := fluentroutes.Root().At("users/:id", func(r *fluentroutes.RouteSegment) *fluentroutes.RouteSegment {
//	    return r.Name("users.show").Get(showUser)
//	})
//	rev := tree.ReverseRouter()
//	path, _ := rev.Resolve("users.show") // "/users/:id"
func (s *RouteSegment) ReverseRouter() *ReverseRouter {
	rr := &ReverseRouter{routes: make(map[string]string)}
	s.collectNames(nil, rr.routes)

	return rr
}

func (s *RouteSegment) collectNames(segments []string, routes map[string]string) {
	if s.segment != "" {
		segments = append(append([]string(nil), segments...), s.segment)
	}
	if s.name != "" {
		routes[s.name] = joinPath(segments)
	}
	for _, branch := range s.branches {
		branch.collectNames(segments, routes)
	}
}

// Resolve returns the path registered under a route name, parameter
// placeholders included as declared.
func (rr *ReverseRouter) Resolve(name string) (string, error) {
	path, ok := rr.routes[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrRouteNotFound, name)
	}

	return path, nil
}

// ResolveParams returns the path registered under a route name with its
// ":param" placeholders substituted from params, values URL-escaped. A
// placeholder without a matching entry in params is an error.
//
// Example:
//
//	url, err := rev.ResolveParams("users.show", map[string]string{"id": "42"})
//	// "/users/42"
func (rr *ReverseRouter) ResolveParams(name string, params map[string]string) (string, error) {
	path, err := rr.Resolve(name)
	if err != nil {
		return "", err
	}
	if path == "/" {
		return path, nil
	}

	var sb strings.Builder
	for segment := range strings.SplitSeq(strings.TrimPrefix(path, "/"), "/") {
		sb.WriteByte('/')
		if !isParam(segment) {
			sb.WriteString(segment)
			continue
		}

		value, ok := params[segment[1:]]
		if !ok {
			return "", fmt.Errorf("%w: %s", ErrMissingRouteParameter, segment[1:])
		}
		sb.WriteString(url.PathEscape(value))
	}

	return sb.String(), nil
}
