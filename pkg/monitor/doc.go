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

// Package monitor assembles and runs the daemon: probe discovery,
// resolution setup, the polling loop, the HTTP server, and systemd
// readiness/watchdog notifications.
//
// Run blocks until the context is canceled or a SIGINT/SIGTERM arrives,
// then shuts everything down gracefully.
package monitor
