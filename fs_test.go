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
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFixture creates a file under a temp dir and returns its path.
func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestServeFile_RegistersGetAndHead(t *testing.T) {
	t.Parallel()

	file := writeFixture(t, "index.html", "<h1>hi</h1>")
	tree := Root()
	require.NoError(t, tree.ServeFile("index.html", file))

	ds, err := tree.Build()
	require.NoError(t, err)
	require.Len(t, ds, 2)

	assert.Equal(t, http.MethodGet, ds[0].Method)
	assert.Equal(t, http.MethodHead, ds[1].Method)
	assert.Equal(t, "/index.html", ds[0].Path)
	assert.False(t, ds[0].Mount)

	rec := httptest.NewRecorder()
	ds[0].Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/index.html", nil))
	assert.Equal(t, "<h1>hi</h1>", rec.Body.String())
}

func TestServeFile_MissingIsRecoverableAndAddsNoNode(t *testing.T) {
	t.Parallel()

	tree := Root().Get(tagged("root"))

	err := tree.ServeFile("missing.html", filepath.Join(t.TempDir(), "missing.html"))

	require.ErrorIs(t, err, ErrServeTarget)

	// The failed call left no trace in the tree.
	ds, buildErr := tree.Build()
	require.NoError(t, buildErr)
	require.Len(t, ds, 1)
	assert.Equal(t, "/", ds[0].Path)
}

func TestServeFile_DirectoryRejected(t *testing.T) {
	t.Parallel()

	err := Root().ServeFile("stuff", t.TempDir())

	require.ErrorIs(t, err, ErrServeTarget)
}

func TestServeDir_MountsPrefix(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.css"), []byte("body{}"), 0o600))

	tree := Root()
	require.NoError(t, tree.ServeDir("assets", dir))

	ds, err := tree.Build()
	require.NoError(t, err)
	require.Len(t, ds, 1)
	assert.True(t, ds[0].Mount)
	assert.Equal(t, "/assets", ds[0].Path)
	assert.Empty(t, ds[0].Method)

	// The mounted handler strips the prefix before hitting the file server.
	rec := httptest.NewRecorder()
	ds[0].Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/assets/app.css", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "body{}", rec.Body.String())
}

func TestServeDir_MissingIsRecoverable(t *testing.T) {
	t.Parallel()

	err := Root().ServeDir("assets", filepath.Join(t.TempDir(), "nope"))

	require.ErrorIs(t, err, ErrServeTarget)
}

func TestServeDir_FileRejected(t *testing.T) {
	t.Parallel()

	file := writeFixture(t, "f.txt", "x")

	err := Root().ServeDir("assets", file)

	require.ErrorIs(t, err, ErrServeTarget)
}

func TestServe_ConflictsWithEndpoints(t *testing.T) {
	t.Parallel()

	file := writeFixture(t, "f.txt", "x")

	// Serving at a node that already has handlers is rejected.
	withEndpoint := Root().Get(tagged("h"))
	require.ErrorIs(t, withEndpoint.ServeFile("/", file), ErrServeConflict)

	// Binding a handler on a node that already serves is recorded.
	serving := Root()
	require.NoError(t, serving.ServeFile("/", file))
	serving.Get(tagged("h"))
	require.ErrorIs(t, serving.Err(), ErrServeConflict)
}

func TestServeDir_MiddlewareApplies(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("a"), 0o600))

	tree := Root().With(tracing("static"), func(r *RouteSegment) *RouteSegment {
		require.NoError(t, r.ServeDir("files", dir))
		return r
	})

	ds, err := tree.Build()
	require.NoError(t, err)
	require.Len(t, ds, 1)

	rec := httptest.NewRecorder()
	ds[0].WrappedHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/files/a.txt", nil))
	assert.Equal(t, []string{"static"}, rec.Header().Values("X-Trace"))
	assert.Equal(t, "a", rec.Body.String())
}

func TestServeFile_NestedFragment(t *testing.T) {
	t.Parallel()

	file := writeFixture(t, "robots.txt", "User-agent: *")
	tree := Root()
	require.NoError(t, tree.ServeFile("static/robots.txt", file))

	ds, err := tree.Build()
	require.NoError(t, err)
	require.Len(t, ds, 2)
	assert.Equal(t, "/static/robots.txt", ds[0].Path)
}
