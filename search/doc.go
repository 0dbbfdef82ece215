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


// Package search provides lexical retrieval over a catalog snapshot.
//
// The Index type holds a TF-IDF term space derived from the catalog:
// vocabulary, inverse document frequencies, and one sparse term vector per
// product. Queries are vectorized against the same term space and ranked by
// cosine similarity. The Searcher additionally runs an attention pass that
// weights query terms by position and boosts terms recently discussed in the
// conversation, so context can pull in candidates plain similarity misses.
//
// An Index is immutable once built. Replacing the catalog snapshot means
// building a new Index and swapping the reference; a half-rebuilt index is
// never observable.
package search
