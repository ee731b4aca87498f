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
	"net/http"
	"os"
)

// serveKind distinguishes the two static-serving shapes a node can carry.
type serveKind uint8

const (
	serveFile serveKind = iota // one file at one exact path
	serveDir                   // a directory mounted as a path prefix
)

// serveTarget is the static-serving annotation on a route node. It is
// mutually exclusive with method handlers on the same node.
type serveTarget struct {
	kind   serveKind
	fsPath string
}

// ServeFile serves a single file from the filesystem at the given path
// fragment, creating intermediate nodes with the same splitting rule as At.
// An empty or "/" fragment attaches the file to the current node's own path.
//
// The file's existence is checked now, at build time; its content is only
// read when the host serves requests. If the file is missing, unreadable, or
// a directory, ServeFile returns the error immediately and adds nothing to
// the tree. Route middleware in scope at the node applies to the file
// endpoint like to any other.
//
// Example:
//
//	if err := tree.ServeFile("favicon.ico", "./assets/favicon.ico"); err != nil {
//	    log.Fatal(err)
//	}
func (s *RouteSegment) ServeFile(fragment, file string) error {
	info, err := os.Stat(file)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrServeTarget, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory, use ServeDir", ErrServeTarget, file)
	}

	return s.attachServe(fragment, &serveTarget{kind: serveFile, fsPath: file})
}

// ServeDir serves a directory as a path-prefix mount at the given path
// fragment, creating intermediate nodes with the same splitting rule as At.
// An empty or "/" fragment mounts the directory at the current node's path.
//
// The directory's existence is checked now, at build time. If it is missing
// or not a directory, ServeDir returns the error immediately and adds nothing
// to the tree.
//
// Path traversal outside the directory is prevented by http.FileServer at
// serve time; keep only publicly servable files under dir.
//
// Example:
//
//	if err := tree.ServeDir("assets", "./public"); err != nil {
//	    log.Fatal(err)
//	}
func (s *RouteSegment) ServeDir(fragment, dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrServeTarget, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrServeTarget, dir)
	}

	return s.attachServe(fragment, &serveTarget{kind: serveDir, fsPath: dir})
}

// attachServe resolves the target node for a fragment and annotates it,
// holding the endpoint/serving exclusivity invariant.
func (s *RouteSegment) attachServe(fragment string, target *serveTarget) error {
	node := s
	if fragment != "" && fragment != "/" {
		var err error
		node, err = s.descend(fragment)
		if err != nil {
			return err
		}
	}

	if node.serve != nil || len(node.endpoints) > 0 {
		return fmt.Errorf("serve %q: %w", fragment, ErrServeConflict)
	}
	node.serve = target

	return nil
}

// fileHandler returns the endpoint that serves a single file.
func fileHandler(file string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, file)
	})
}

// dirHandler returns the handler mounted for a directory prefix. The prefix
// is stripped before the request reaches the file server, so the directory's
// own layout decides the rest of the path.
func dirHandler(prefix, dir string) http.Handler {
	fs := http.FileServer(http.Dir(dir))
	if prefix == "/" {
		return fs
	}

	return http.StripPrefix(prefix, fs)
}
