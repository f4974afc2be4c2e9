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

// Package poller drives the periodic probe read cycle.
//
// A Poller walks the discovered devices in order, once per interval, and
// records each outcome in the store. A failed probe never stops the cycle
// or touches its neighbors. The device set is fixed at construction;
// probes plugged in after startup are picked up on the next daemon
// restart, not mid-run.
package poller
