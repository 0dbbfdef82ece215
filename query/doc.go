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


// Package query provides rule-based understanding of shopper queries.
//
// The Extractor pulls structured attributes (colors, categories, materials,
// sizes, style/occasion/season/fit, price ranges) out of raw query text
// using fixed lookup tables. The Classifier assigns multi-label intents
// with fixed per-rule confidences.
//
// All rule tables live in tables.go as declarative data so they can be
// extended without touching extraction or classification logic. Both types
// are pure: identical input always yields identical output, and absence of
// any signal yields empty collections rather than an error.
package query
