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

// Command fluentroutes-demo serves a small API built with fluentroutes on
// the standard library mux. Configuration is read from config.yaml in the
// working directory and may be overridden through the environment.
package main

import (
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/viper"

	"rivaas.dev/fluentroutes"
	"rivaas.dev/fluentroutes/host/stdmux"
	"rivaas.dev/logging"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	initConfig()

	log := logging.MustNew(
		logging.WithServiceName("fluentroutes-demo"),
		logging.WithTextHandler(),
		logging.WithDebugLevel(),
	)

	tree, err := buildTree(viper.GetString("static_dir"))
	if err != nil {
		return err
	}

	mux := http.NewServeMux()
	if err := fluentroutes.Register(stdmux.New(mux), tree,
		fluentroutes.WithLogger(log.Logger()),
	); err != nil {
		return err
	}

	addr := viper.GetString("server.addr")
	srv := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  viper.GetDuration("server.read_timeout"),
		WriteTimeout: viper.GetDuration("server.write_timeout"),
	}

	log.Info("server listening", "addr", addr)

	return srv.ListenAndServe()
}

func initConfig() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	viper.SetDefault("server.addr", ":8080")
	viper.SetDefault("server.read_timeout", "5s")
	viper.SetDefault("server.write_timeout", "10s")
	viper.SetDefault("static_dir", "")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			panic(fmt.Errorf("reading config: %w", err))
		}
	}
	viper.AutomaticEnv()
}

func buildTree(staticDir string) (*fluentroutes.RouteSegment, error) {
	tree := fluentroutes.Root().
		Get(text("fluentroutes demo")).
		At("api", func(api *fluentroutes.RouteSegment) *fluentroutes.RouteSegment {
			return api.With(requestID, func(s *fluentroutes.RouteSegment) *fluentroutes.RouteSegment {
				return s.
					At("users", func(s *fluentroutes.RouteSegment) *fluentroutes.RouteSegment {
						return s.Get(text("user list")).Post(text("user created"))
					}).
					At("users/:id", func(s *fluentroutes.RouteSegment) *fluentroutes.RouteSegment {
						return s.Get(user)
					})
			})
		})

	if staticDir != "" {
		if err := tree.ServeDir("assets", staticDir); err != nil {
			return nil, err
		}
	}

	return tree, nil
}

func text(body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, body)
	})
}

var user = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	fmt.Fprintf(w, "user %s\n", r.PathValue("id"))
})

func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Request-Id") == "" {
			r.Header.Set("X-Request-Id", "demo")
		}
		next.ServeHTTP(w, r)
	})
}
