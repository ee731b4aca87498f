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

// Package ginadapter registers fluentroutes trees on a gin engine.
//
// Gin shares the ":param" parameter spelling, so paths pass through without
// translation.
package ginadapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"rivaas.dev/fluentroutes"
)

// Host adapts a *gin.Engine to the fluentroutes registrar contract.
type Host struct {
	engine *gin.Engine
}

var _ fluentroutes.Registrar = (*Host)(nil)

// New wraps a gin engine for registration.
//
// Example:
//
//	e := gin.New()
//	err := fluentroutes.Register(ginadapter.New(e), tree)
func New(engine *gin.Engine) *Host {
	return &Host{engine: engine}
}

// RegisterEndpoint binds a handler at an exact path. Gin reports route
// conflicts by panicking; the panic is converted to an error.
func (h *Host) RegisterEndpoint(path, method string, handler http.Handler) error {
	wrapped := gin.WrapH(handler)

	return capture(func() {
		if method == "" {
			h.engine.Any(path, wrapped)
			return
		}
		h.engine.Handle(method, path, wrapped)
	})
}

// RegisterMount hangs a handler under a path prefix. The mounted handler
// receives the unmodified request path and strips the prefix itself.
func (h *Host) RegisterMount(prefix string, handler http.Handler) error {
	wrapped := gin.WrapH(handler)

	return capture(func() {
		h.engine.Any(strings.TrimSuffix(prefix, "/")+"/*filepath", wrapped)
	})
}

func capture(register func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("ginadapter: %v", r)
		}
	}()
	register()

	return nil
}
