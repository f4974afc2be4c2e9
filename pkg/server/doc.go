// Copyright (c) 2025, The Tempmon Authors.  All rights reserved.
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

// Package server implements the tempmond HTTP surface: the Prometheus
// exposition endpoint, the probe dashboard, and health/readiness probes.
//
// # Architecture
//
// The server is handler-agnostic. Routes are injected through the config
// and wrapped in a common middleware chain:
//
//   - Request instrumentation (RED metrics via prometheus/client_golang)
//   - API version negotiation
//   - Request ID tracking (X-Request-Id, google/uuid)
//   - Panic recovery
//   - Rate limiting using token bucket algorithm (golang.org/x/time/rate)
//   - Request logging (log/slog)
//
// Health endpoints bypass the chain so probes are never rate limited.
//
// # Usage
//
//	dash := server.NewDashboard(st, devices, "tempmond", version)
//
//	s := server.New(
//	    server.WithName("tempmond"),
//	    server.WithVersion(version),
//	    server.WithMetrics(registry),
//	    server.WithHandler(map[string]http.HandlerFunc{
//	        "/":        dash.Handle,
//	        "/metrics": promhttp.HandlerFor(registry, opts).ServeHTTP,
//	    }),
//	)
//
//	if err := s.Start(ctx); err != nil {
//	    slog.Error("server failed", "error", err)
//	}
//
// # Endpoints
//
// GET / - HTML dashboard
//
//	Latest reading per probe with color-coded temperature bands,
//	reading age, and error tallies. Refreshes every 15 seconds.
//
// GET /metrics - Prometheus exposition
//
//	Temperature gauges, error counters, last-read timestamps, plus the
//	server's own HTTP metrics and Go runtime collectors.
//
// GET /health - Health check (for liveness probe)
//
//	Always returns 200 OK with {"status": "healthy", "timestamp": "..."}
//
// GET /ready - Readiness check (for readiness probe)
//
//	Returns 200 OK when ready, 503 when not ready
//
// # Observability
//
// Request ID Tracking:
//
//	All requests accept an optional X-Request-Id header (UUID format).
//	If not provided, the server generates one automatically.
//	The request ID is returned in the X-Request-Id response header
//	and included in all error responses for tracing.
//
// Rate Limiting:
//
//	Response headers indicate rate limit status:
//	  X-RateLimit-Limit: Total requests allowed per window
//	  X-RateLimit-Remaining: Requests remaining in current window
//	  X-RateLimit-Reset: Unix timestamp when window resets
//
//	When rate limited, returns 429 with Retry-After header.
//
// # Error Handling
//
// All errors return a consistent JSON structure:
//
//	{
//	  "code": "RATE_LIMIT_EXCEEDED",
//	  "message": "Rate limit exceeded",
//	  "details": {"limit": 100, "burst": 200},
//	  "requestId": "550e8400-e29b-41d4-a716-446655440000",
//	  "timestamp": "2025-12-22T12:00:00Z",
//	  "retryable": true
//	}
//
// # Deployment
//
// The daemon is designed to run under systemd on the host that owns the
// 1-wire bus. A scrape config pointing at the metrics port is all that is
// needed on the Prometheus side:
//
//	scrape_configs:
//	  - job_name: tempmond
//	    static_configs:
//	      - targets: ["sensor-host:9184"]
//
// # References
//
//   - Rate limiting: https://pkg.go.dev/golang.org/x/time/rate
//   - UUID generation: https://pkg.go.dev/github.com/google/uuid
//   - Exposition formats: https://prometheus.io/docs/instrumenting/exposition_formats/
package server
