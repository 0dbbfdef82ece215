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


package shopsense

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/poiesic/shopsense/catalog"
	"github.com/poiesic/shopsense/catalog/badger"
	"github.com/poiesic/shopsense/core"
	"github.com/poiesic/shopsense/indexing"
	"github.com/poiesic/shopsense/query"
	"github.com/poiesic/shopsense/rank"
	"github.com/poiesic/shopsense/respond"
	"github.com/poiesic/shopsense/search"
	"github.com/poiesic/shopsense/session"
)

// defaultMaxHits caps how many candidates the retrieval stage hands to the
// ranker per search.
const defaultMaxHits = 20

// Engine bundles the catalog store, search index, and per-session state
// behind a single facade. One Engine serves many shopper sessions.
type Engine struct {
	backend     *badger.Backend
	productRepo catalog.ProductRepository
	stateRepo   catalog.StateRepository
	pipeline    *indexing.Pipeline

	// index holds the current term space. It is rebuilt on demand and
	// swapped atomically so in-flight searches keep their snapshot.
	index   atomic.Pointer[search.Index]
	buildMu sync.Mutex

	sessions    *session.Manager
	extractor   *query.Extractor
	classifier  *query.Classifier
	ranker      *rank.Ranker
	recommender *rank.Recommender
	responder   *respond.Responder

	maxHits int
	logger  *slog.Logger
}

// EngineOption configures an Engine.
type EngineOption func(*engineOptions)

type engineOptions struct {
	inMemory bool
	poolSize int
	maxHits  int
	logger   *slog.Logger
}

// WithInMemory opens the catalog store in memory instead of on disk.
// Intended for tests and throwaway environments.
func WithInMemory() EngineOption {
	return func(o *engineOptions) {
		o.inMemory = true
	}
}

// WithIndexPoolSize sets the worker pool size used for index builds.
func WithIndexPoolSize(size int) EngineOption {
	return func(o *engineOptions) {
		o.poolSize = size
	}
}

// WithMaxHits caps the number of retrieval candidates per search.
// Default is 20.
func WithMaxHits(maxHits int) EngineOption {
	return func(o *engineOptions) {
		if maxHits > 0 {
			o.maxHits = maxHits
		}
	}
}

// WithEngineLogger sets a custom logger. Default is slog.Default().
func WithEngineLogger(logger *slog.Logger) EngineOption {
	return func(o *engineOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// NewEngine opens the catalog store at filePath and wires up the search,
// query understanding, ranking, and session components.
func NewEngine(filePath string, opts ...EngineOption) (*Engine, error) {
	options := &engineOptions{
		maxHits: defaultMaxHits,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(options)
	}

	backend, err := badger.OpenBackend(filePath, options.inMemory)
	if err != nil {
		return nil, err
	}

	productRepo := badger.NewProductRepository(backend)
	stateRepo := badger.NewStateRepository(backend)

	pipelineOpts := []indexing.Option{indexing.WithLogger(options.logger)}
	if options.poolSize > 0 {
		pipelineOpts = append(pipelineOpts, indexing.WithPoolSize(options.poolSize))
	}
	pipeline, err := indexing.NewPipeline(productRepo, stateRepo, pipelineOpts...)
	if err != nil {
		productRepo.Close()
		backend.Close()
		return nil, err
	}

	return &Engine{
		backend:     backend,
		productRepo: productRepo,
		stateRepo:   stateRepo,
		pipeline:    pipeline,
		sessions:    session.NewManager(),
		extractor:   query.NewExtractor(),
		classifier:  query.NewClassifier(),
		ranker:      rank.NewRanker(),
		recommender: rank.NewRecommender(),
		responder:   respond.NewResponder(),
		maxHits:     options.maxHits,
		logger:      options.logger,
	}, nil
}

// Close releases the worker pool and closes the catalog store.
func (e *Engine) Close() error {
	e.pipeline.Release()

	if err := e.productRepo.Close(); err != nil {
		e.logger.Error("error closing product repository", "err", err)
		return err
	}
	if err := e.backend.Close(); err != nil {
		e.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

// ProductRepository exposes the underlying catalog store.
func (e *Engine) ProductRepository() catalog.ProductRepository {
	return e.productRepo
}

// StateRepository exposes the index build state store.
func (e *Engine) StateRepository() catalog.StateRepository {
	return e.stateRepo
}

// AddProducts validates and stores products, invalidating the current
// index. The next search or explicit rebuild constructs a fresh term space.
func (e *Engine) AddProducts(ctx context.Context, products ...*core.Product) ([]*core.Product, error) {
	added, err := e.pipeline.Ingest(ctx, products...)
	if err != nil {
		return nil, err
	}
	if len(added) > 0 {
		e.index.Store(nil)
	}
	return added, nil
}

// RebuildIndex builds a fresh term space from the stored catalog and swaps
// it in.
func (e *Engine) RebuildIndex(ctx context.Context) error {
	e.buildMu.Lock()
	defer e.buildMu.Unlock()

	index, err := e.pipeline.BuildIndex(ctx)
	if err != nil {
		return err
	}
	e.index.Store(index)
	return nil
}

// ensureIndex returns the current term space, building it on first use or
// after invalidation.
func (e *Engine) ensureIndex(ctx context.Context) (*search.Index, error) {
	if index := e.index.Load(); index != nil {
		return index, nil
	}

	e.buildMu.Lock()
	defer e.buildMu.Unlock()

	if index := e.index.Load(); index != nil {
		return index, nil
	}

	index, err := e.pipeline.BuildIndex(ctx)
	if err != nil {
		return nil, err
	}
	e.index.Store(index)
	return index, nil
}

// SearchResult carries everything one search turn produced.
type SearchResult struct {
	Query    string
	Entities core.QueryEntities
	Intent   core.Intent
	Intents  []core.Intent
	Products []core.RankedProduct
	Response string
}

// Search runs the full pipeline for one query turn: entity extraction,
// intent classification, retrieval, ranking, response generation, and
// session state updates. The sessionKey identifies the shopper; a new
// session is created on first use.
func (e *Engine) Search(ctx context.Context, sessionKey, queryText string) (*SearchResult, error) {
	return e.SearchWithMonitor(ctx, sessionKey, queryText, nil)
}

// SearchWithMonitor is Search with observer callbacks on the retrieval
// stages.
func (e *Engine) SearchWithMonitor(ctx context.Context, sessionKey, queryText string, monitor search.SearchMonitor) (*SearchResult, error) {
	index, err := e.ensureIndex(ctx)
	if err != nil {
		return nil, err
	}

	entities := e.extractor.Extract(queryText)
	intents := e.classifier.Classify(queryText)
	primary := intents[0]

	searcher, err := search.NewSearcher(index, search.WithLogger(e.logger))
	if err != nil {
		return nil, err
	}

	sess := e.sessions.Get(sessionKey)
	recent := sess.Conversation.RecentQueries(5)

	candidates, err := searcher.SearchWithMonitor(ctx, queryText, recent, e.maxHits, monitor)
	if err != nil {
		return nil, err
	}

	ranked := e.ranker.Rank(candidates, entities, primary)

	response, err := e.responder.Respond(primary, queryText, ranked)
	if err != nil {
		return nil, err
	}

	productIds := make([]core.ID, len(ranked))
	for i, hit := range ranked {
		productIds[i] = hit.Product.Id
	}

	sess.Profile.TrackSearch(queryText)
	sess.Conversation.AddTurn(session.Turn{
		Query:      queryText,
		Entities:   entities,
		ProductIDs: productIds,
	})

	e.logger.Debug("search complete",
		"session", sessionKey,
		"intent", primary.Label,
		"hits", len(ranked))

	return &SearchResult{
		Query:    queryText,
		Entities: entities,
		Intent:   primary,
		Intents:  intents,
		Products: ranked,
		Response: response,
	}, nil
}

// Recommend scores the catalog against the session's profile and returns
// up to limit products. Shoppers with no history get popularity-driven
// results.
func (e *Engine) Recommend(ctx context.Context, sessionKey string, limit int) ([]core.RankedProduct, error) {
	index, err := e.ensureIndex(ctx)
	if err != nil {
		return nil, err
	}

	sess := e.sessions.Get(sessionKey)
	return e.recommender.Recommend(index.Products(), sess.Profile, limit), nil
}

// TrackView records a product view against the session profile.
func (e *Engine) TrackView(ctx context.Context, sessionKey string, productID core.ID) error {
	product, err := e.productRepo.GetProduct(ctx, productID)
	if err != nil {
		return err
	}

	sess := e.sessions.Get(sessionKey)
	sess.Profile.TrackView(product)
	return nil
}

// Session returns the session state for a key, creating it on first use.
func (e *Engine) Session(sessionKey string) *session.Session {
	return e.sessions.Get(sessionKey)
}

// EndSession discards a session's profile and conversation state.
func (e *Engine) EndSession(sessionKey string) {
	e.sessions.End(sessionKey)
}
