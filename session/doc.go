// Copyright 2025 Poiesic Systems
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


// Package session holds the mutable, session-scoped state of the engine:
// the user preference profile and the conversation history.
//
// Exactly one Session exists per session key, owned by the Manager. A
// Session is not safe for concurrent mutation; callers serving concurrent
// sessions must keep each session on a single goroutine at a time. The
// Manager itself is safe for concurrent use.
package session
