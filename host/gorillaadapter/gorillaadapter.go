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

// Package gorillaadapter registers fluentroutes trees on a gorilla/mux router.
package gorillaadapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"rivaas.dev/fluentroutes"
)

// Host adapts a *mux.Router to the fluentroutes registrar contract.
type Host struct {
	router *mux.Router
}

var _ fluentroutes.Registrar = (*Host)(nil)

// New wraps a gorilla router for registration.
//
// Example:
//
//	r := mux.NewRouter()
//	err := fluentroutes.Register(gorillaadapter.New(r), tree)
func New(router *mux.Router) *Host {
	return &Host{router: router}
}

// RegisterEndpoint binds a handler at an exact path. gorilla records pattern
// problems on the route itself, so the route error is checked after adding.
func (h *Host) RegisterEndpoint(path, method string, handler http.Handler) error {
	route := h.router.Handle(translate(path), handler)
	if method != "" {
		route.Methods(method)
	}

	if err := route.GetError(); err != nil {
		return fmt.Errorf("gorillaadapter: %w", err)
	}

	return nil
}

// RegisterMount hangs a handler under a path prefix. The mounted handler
// receives the unmodified request path and strips the prefix itself.
func (h *Host) RegisterMount(prefix string, handler http.Handler) error {
	route := h.router.PathPrefix(prefix).Handler(handler)
	if err := route.GetError(); err != nil {
		return fmt.Errorf("gorillaadapter: %w", err)
	}

	return nil
}

// translate rewrites ":param" segments into gorilla's "{param}" spelling.
func translate(path string) string {
	if !strings.Contains(path, ":") {
		return path
	}

	segments := strings.Split(path, "/")
	for i, segment := range segments {
		if strings.HasPrefix(segment, ":") {
			segments[i] = "{" + segment[1:] + "}"
		}
	}

	return strings.Join(segments, "/")
}
