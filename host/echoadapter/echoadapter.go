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

// Package echoadapter registers fluentroutes trees on an echo instance.
//
// Echo shares the ":param" parameter spelling, so paths pass through without
// translation.
package echoadapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"rivaas.dev/fluentroutes"
)

// Host adapts an *echo.Echo to the fluentroutes registrar contract.
type Host struct {
	echo *echo.Echo
}

var _ fluentroutes.Registrar = (*Host)(nil)

// New wraps an echo instance for registration.
//
// Example:
//
//	e := echo.New()
//	err := fluentroutes.Register(echoadapter.New(e), tree)
func New(e *echo.Echo) *Host {
	return &Host{echo: e}
}

// RegisterEndpoint binds a handler at an exact path. Echo reports route
// conflicts by panicking; the panic is converted to an error.
func (h *Host) RegisterEndpoint(path, method string, handler http.Handler) error {
	wrapped := echo.WrapHandler(handler)

	return capture(func() {
		if method == "" {
			h.echo.Any(path, wrapped)
			return
		}
		h.echo.Add(method, path, wrapped)
	})
}

// RegisterMount hangs a handler under a path prefix. The mounted handler
// receives the unmodified request path and strips the prefix itself.
func (h *Host) RegisterMount(prefix string, handler http.Handler) error {
	wrapped := echo.WrapHandler(handler)

	return capture(func() {
		h.echo.Any(strings.TrimSuffix(prefix, "/")+"/*", wrapped)
	})
}

func capture(register func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("echoadapter: %v", r)
		}
	}()
	register()

	return nil
}
