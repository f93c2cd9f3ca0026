// Package pipeline runs the asynchronous document analysis state
// machine: pending documents are scored, tagged and screened for
// profanity by a worker pool, ending in review or approved.
package pipeline

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/vasantha-kumar-s/bloggy/internal/analysis"
	"github.com/vasantha-kumar-s/bloggy/internal/domain"
	"github.com/vasantha-kumar-s/bloggy/internal/logger"
	"github.com/vasantha-kumar-s/bloggy/internal/metrics"
	"github.com/vasantha-kumar-s/bloggy/internal/repository"
)

// ErrQueueFull is returned by Enqueue when the pipeline cannot accept
// more work. Callers should surface this as backpressure, not retry in
// a loop.
var ErrQueueFull = errors.New("pipeline queue is full")

// ApprovalNotifier is notified after a document reaches approved.
type ApprovalNotifier interface {
	DocumentApproved(ctx context.Context, doc *domain.Document) error
}

// Pipeline owns the worker pool that moves documents from pending
// through processing to review or approved.
type Pipeline struct {
	docRepo   repository.DocumentRepository
	tokenizer *analysis.Tokenizer
	scorer    *analysis.Scorer
	notifier  ApprovalNotifier

	maxTags    int
	runTimeout time.Duration

	jobQueue chan string
	stopChan chan struct{}
	wg       sync.WaitGroup
	closed   bool
	mu       sync.RWMutex

	// inFlight guards each document id so two workers (or a retried
	// submission) can never analyze the same document concurrently.
	inFlight   map[string]struct{}
	inFlightMu sync.Mutex
}

// Config carries the pipeline tuning knobs.
type Config struct {
	Workers    int
	QueueSize  int
	MaxTags    int
	RunTimeout time.Duration
}

// New creates a Pipeline and starts its worker pool.
func New(
	docRepo repository.DocumentRepository,
	tokenizer *analysis.Tokenizer,
	scorer *analysis.Scorer,
	notifier ApprovalNotifier,
	cfg Config,
) *Pipeline {
	p := &Pipeline{
		docRepo:    docRepo,
		tokenizer:  tokenizer,
		scorer:     scorer,
		notifier:   notifier,
		maxTags:    cfg.MaxTags,
		runTimeout: cfg.RunTimeout,
		jobQueue:   make(chan string, cfg.QueueSize),
		stopChan:   make(chan struct{}),
		inFlight:   make(map[string]struct{}),
	}

	for i := 0; i < cfg.Workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}

	return p
}

func (p *Pipeline) worker() {
	defer p.wg.Done()

	for {
		select {
		case id, ok := <-p.jobQueue:
			if !ok {
				return
			}
			metrics.PipelineQueueDepth.Set(float64(len(p.jobQueue)))
			p.process(id)
		case <-p.stopChan:
			return
		}
	}
}

// Enqueue submits a document id for analysis. It never blocks: when
// the queue is full ErrQueueFull is returned and the document stays
// pending.
func (p *Pipeline) Enqueue(id string) error {
	// The lock is held across the send so Close cannot close the queue
	// between the closed check and the send.
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return errors.New("pipeline is shutting down")
	}

	select {
	case p.jobQueue <- id:
		metrics.PipelineQueueDepth.Set(float64(len(p.jobQueue)))
		return nil
	default:
		return ErrQueueFull
	}
}

// Close shuts down the worker pool and waits for in-flight runs.
func (p *Pipeline) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	p.mu.Unlock()

	close(p.stopChan)
	close(p.jobQueue)
	p.wg.Wait()
}

// acquire claims the per-document run slot. It reports false when a
// run for the same id is already underway.
func (p *Pipeline) acquire(id string) bool {
	p.inFlightMu.Lock()
	defer p.inFlightMu.Unlock()
	if _, busy := p.inFlight[id]; busy {
		return false
	}
	p.inFlight[id] = struct{}{}
	return true
}

func (p *Pipeline) release(id string) {
	p.inFlightMu.Lock()
	delete(p.inFlight, id)
	p.inFlightMu.Unlock()
}

func (p *Pipeline) process(id string) {
	log := logger.WithDocumentID(id)

	if !p.acquire(id) {
		log.Warn("skipping run, document is already being analyzed")
		return
	}
	defer p.release(id)

	ctx, cancel := context.WithTimeout(context.Background(), p.runTimeout)
	defer cancel()

	metrics.PipelineDocumentsInFlight.Inc()
	defer metrics.PipelineDocumentsInFlight.Dec()

	start := time.Now()

	doc, err := p.docRepo.GetByID(ctx, id)
	if err != nil {
		log.Error("failed to load document", "error", err)
		metrics.ObservePipelineRun("failed", time.Since(start).Seconds())
		return
	}

	// Only pending documents enter the pipeline. Anything else means a
	// duplicate submission or a moderated document.
	if doc.Status != domain.StatusPending {
		log.Warn("skipping run, document is not pending", "status", doc.Status)
		return
	}

	doc.Status = domain.StatusProcessing
	doc.UpdatedAt = time.Now()
	if err := p.docRepo.Update(ctx, doc); err != nil {
		log.Error("failed to mark document processing", "error", err)
		metrics.ObservePipelineRun("failed", time.Since(start).Seconds())
		return
	}

	quality, profane := p.scorer.Score(doc.Title, doc.Body)
	tokens := p.tokenizer.Tokenize(doc.Title, doc.Body)
	tags := analysis.ExtractTags(tokens, p.maxTags)

	// Placeholder until a real similarity model exists. The value is
	// stored but never drives a decision.
	novelty := rand.Float64()

	doc.QualityScore = &quality
	doc.NoveltyScore = &novelty
	doc.ProfanityFound = &profane
	doc.Tags = tags

	if profane {
		doc.Status = domain.StatusReview
	} else {
		doc.Status = domain.StatusApproved
	}
	doc.UpdatedAt = time.Now()

	// A timeout here leaves the document in processing; that is the
	// stuck marker an operator sweep can look for.
	if err := p.docRepo.Update(ctx, doc); err != nil {
		log.Error("failed to store analysis result", "error", err, "status", doc.Status)
		metrics.ObservePipelineRun("failed", time.Since(start).Seconds())
		return
	}

	elapsed := time.Since(start)
	metrics.ObservePipelineRun(string(doc.Status), elapsed.Seconds())
	log.Info("analysis run complete",
		"status", doc.Status,
		"quality_score", quality,
		"profanity_found", profane,
		"tags", doc.TagsString(),
		"elapsed", elapsed.Round(time.Millisecond).String(),
	)

	if doc.Status == domain.StatusApproved && p.notifier != nil {
		if err := p.notifier.DocumentApproved(ctx, doc); err != nil {
			log.Error("approval notification failed", "error", err)
		}
	}
}
