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

package chiadapter

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rivaas.dev/fluentroutes"
)

func tagged(tag string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(tag))
	})
}

func get(t *testing.T, h http.Handler, method, target string) *httptest.ResponseRecorder {
	t.Helper()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, nil))

	return rec
}

func TestHost_RegisterEndpoint(t *testing.T) {
	t.Parallel()

	tree := fluentroutes.Root().
		Get(tagged("home")).
		At("users", func(s *fluentroutes.RouteSegment) *fluentroutes.RouteSegment {
			return s.Get(tagged("list")).Post(tagged("create"))
		})

	r := chi.NewRouter()
	require.NoError(t, fluentroutes.Register(New(r), tree))

	assert.Equal(t, "home", get(t, r, http.MethodGet, "/").Body.String())
	assert.Equal(t, "list", get(t, r, http.MethodGet, "/users").Body.String())
	assert.Equal(t, "create", get(t, r, http.MethodPost, "/users").Body.String())
	assert.Equal(t, http.StatusMethodNotAllowed, get(t, r, http.MethodDelete, "/users").Code)
}

func TestHost_ParameterTranslation(t *testing.T) {
	t.Parallel()

	tree := fluentroutes.Root().
		At("users/:id", func(s *fluentroutes.RouteSegment) *fluentroutes.RouteSegment {
			return s.Get(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(chi.URLParam(r, "id")))
			}))
		})

	r := chi.NewRouter()
	require.NoError(t, fluentroutes.Register(New(r), tree))

	assert.Equal(t, "42", get(t, r, http.MethodGet, "/users/42").Body.String())
}

func TestHost_CatchAll(t *testing.T) {
	t.Parallel()

	tree := fluentroutes.Root().
		At("anything", func(s *fluentroutes.RouteSegment) *fluentroutes.RouteSegment {
			return s.All(tagged("any"))
		})

	r := chi.NewRouter()
	require.NoError(t, fluentroutes.Register(New(r), tree))

	for _, method := range []string{http.MethodGet, http.MethodPost, http.MethodDelete} {
		assert.Equal(t, "any", get(t, r, method, "/anything").Body.String())
	}
}

func TestHost_Mount(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.css"), []byte("body{}"), 0o600))

	tree := fluentroutes.Root()
	require.NoError(t, tree.ServeDir("assets", dir))

	r := chi.NewRouter()
	require.NoError(t, fluentroutes.Register(New(r), tree))

	assert.Equal(t, "body{}", get(t, r, http.MethodGet, "/assets/app.css").Body.String())
	assert.Equal(t, http.StatusNotFound, get(t, r, http.MethodGet, "/assets/missing.css").Code)
}

func TestHost_ConflictBecomesError(t *testing.T) {
	t.Parallel()

	dirA := t.TempDir()
	dirB := t.TempDir()

	// Each ServeDir call creates its own branch, so both mounts flatten to
	// the same prefix and chi panics on the second one.
	tree := fluentroutes.Root()
	require.NoError(t, tree.ServeDir("assets", dirA))
	require.NoError(t, tree.ServeDir("assets", dirB))

	r := chi.NewRouter()
	err := fluentroutes.Register(New(r), tree)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "register MOUNT /assets")
	assert.Contains(t, err.Error(), "chiadapter:")
}
