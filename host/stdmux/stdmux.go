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

// Package stdmux registers fluentroutes trees on the standard library's
// http.ServeMux, using the method-aware patterns available since Go 1.22.
package stdmux

import (
	"fmt"
	"net/http"
	"strings"

	"rivaas.dev/fluentroutes"
)

// Host adapts an http.ServeMux to the fluentroutes registrar contract.
type Host struct {
	mux *http.ServeMux
}

// Compile-time check that Host satisfies the registrar contract.
var _ fluentroutes.Registrar = (*Host)(nil)

// New wraps a ServeMux for registration.
//
// Example:
//
//	mux := http.NewServeMux()
//	err := fluentroutes.Register(stdmux.New(mux), tree)
func New(mux *http.ServeMux) *Host {
	return &Host{mux: mux}
}

// RegisterEndpoint binds a handler at an exact path. ServeMux reports
// pattern conflicts by panicking; the panic is converted to an error.
func (h *Host) RegisterEndpoint(path, method string, handler http.Handler) error {
	pattern := translate(path)
	if pattern == "/" {
		// A bare "/" pattern is a subtree match; "/{$}" pins the root.
		pattern = "/{$}"
	}
	if method != "" {
		pattern = method + " " + pattern
	}

	return capture(func() {
		h.mux.Handle(pattern, handler)
	})
}

// RegisterMount binds a handler under a path prefix using ServeMux's
// trailing-slash subtree matching.
func (h *Host) RegisterMount(prefix string, handler http.Handler) error {
	pattern := translate(prefix)
	if !strings.HasSuffix(pattern, "/") {
		pattern += "/"
	}

	return capture(func() {
		h.mux.Handle(pattern, handler)
	})
}

// translate rewrites ":param" segments into ServeMux's "{param}" spelling.
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

// capture runs a registration call and converts ServeMux panics into errors.
func capture(register func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("stdmux: %v", r)
		}
	}()
	register()

	return nil
}
