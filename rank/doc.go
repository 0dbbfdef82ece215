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


// Package rank scores retrieval candidates with explicit weighted sums.
//
// The Ranker combines four normalized sub-scores per product (semantic
// entity overlap, behavioral signals, record quality, and intent alignment)
// into one final score. The Recommender reuses the same entity-overlap
// terms against a session preference profile. All weights are hand-tuned
// constants documented next to the formulas; there is no learned model.
package rank
