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
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// meterName identifies this package's OpenTelemetry instrumentation scope.
const meterName = "rivaas.dev/fluentroutes"

// RegisterOption configures a Register call.
type RegisterOption func(*registerConfig)

// registerConfig holds the observability hooks active during one Register
// walk. Registration happens once at startup, so hooks are per-call rather
// than stored on the tree.
type registerConfig struct {
	logger        *slog.Logger
	registrations metric.Int64Counter
}

// WithLogger logs each issued registration at debug level on the given
// structured logger. Register stays silent without it.
//
// Example:
//
//	err := fluentroutes.Register(host, tree, fluentroutes.WithLogger(logger))
func WithLogger(logger *slog.Logger) RegisterOption {
	return func(cfg *registerConfig) {
		cfg.logger = logger
	}
}

// WithMeterProvider counts issued registrations on the
// "fluentroutes.registrations" counter of the given provider, attributed by
// method and mount kind. Useful when startup diagnostics feed the same
// pipeline as runtime metrics.
func WithMeterProvider(provider metric.MeterProvider) RegisterOption {
	return func(cfg *registerConfig) {
		counter, err := provider.Meter(meterName).Int64Counter(
			"fluentroutes.registrations",
			metric.WithDescription("Route registrations issued against the host router."),
		)
		if err != nil {
			return
		}
		cfg.registrations = counter
	}
}

func newRegisterConfig(opts []RegisterOption) *registerConfig {
	cfg := &registerConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// recordRegistration reports one successful host call to the configured hooks.
func (cfg *registerConfig) recordRegistration(ctx context.Context, d RouteDescriptor) {
	if cfg.logger != nil {
		cfg.logger.Debug("route registered",
			"method", describeMethod(d),
			"path", d.Path,
			"middleware", len(d.Middleware),
		)
	}
	if cfg.registrations != nil {
		cfg.registrations.Add(ctx, 1, metric.WithAttributes(
			attribute.String("http.request.method", describeMethod(d)),
			attribute.Bool("mount", d.Mount),
		))
	}
}
