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

// Package chiadapter registers fluentroutes trees on a go-chi router.
package chiadapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"rivaas.dev/fluentroutes"
)

// Host adapts a chi.Router to the fluentroutes registrar contract.
type Host struct {
	router chi.Router
}

var _ fluentroutes.Registrar = (*Host)(nil)

// New wraps a chi router for registration.
//
// Example:
//
//	r := chi.NewRouter()
//	err := fluentroutes.Register(chiadapter.New(r), tree)
func New(router chi.Router) *Host {
	return &Host{router: router}
}

// RegisterEndpoint binds a handler at an exact path. chi reports invalid and
// conflicting patterns by panicking; the panic is converted to an error.
func (h *Host) RegisterEndpoint(path, method string, handler http.Handler) error {
	pattern := translate(path)

	return capture(func() {
		if method == "" {
			h.router.Handle(pattern, handler)
			return
		}
		h.router.Method(method, pattern, handler)
	})
}

// RegisterMount hangs a handler under a path prefix. The mounted handler
// receives the unmodified request path and strips the prefix itself.
func (h *Host) RegisterMount(prefix string, handler http.Handler) error {
	return capture(func() {
		h.router.Mount(prefix, handler)
	})
}

// translate rewrites ":param" segments into chi's "{param}" spelling.
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

func capture(register func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("chiadapter: %v", r)
		}
	}()
	register()

	return nil
}
