package pipeline_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vasantha-kumar-s/bloggy/internal/analysis"
	"github.com/vasantha-kumar-s/bloggy/internal/domain"
	"github.com/vasantha-kumar-s/bloggy/internal/mocks"
	"github.com/vasantha-kumar-s/bloggy/internal/notify"
	"github.com/vasantha-kumar-s/bloggy/internal/pipeline"
)

func defaultConfig() pipeline.Config {
	return pipeline.Config{
		Workers:    2,
		QueueSize:  8,
		MaxTags:    5,
		RunTimeout: 5 * time.Second,
	}
}

func newAnalyzers() (*analysis.Tokenizer, *analysis.Scorer) {
	return analysis.NewTokenizer(analysis.DefaultStopWords),
		analysis.NewScorer(analysis.DefaultProfanityList)
}

func pendingDoc(id, title, body string) *domain.Document {
	now := time.Now()
	return &domain.Document{
		ID:        id,
		Title:     title,
		Body:      body,
		Author:    "alice",
		Status:    domain.StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestPipeline_CleanDocumentApprovedAndFollowersNotified(t *testing.T) {
	docRepo := mocks.NewMockDocumentRepository(t)
	followRepo := mocks.NewMockFollowRepository(t)
	mailer := mocks.NewMockMailer(t)
	tokenizer, scorer := newAnalyzers()

	doc := pendingDoc("doc-1", "Kubernetes Deployment Patterns",
		"Deployments on kubernetes clusters need careful rollout strategies. Deployment rollouts matter.")

	docRepo.EXPECT().GetByID(mock.Anything, "doc-1").Return(doc, nil)

	var statuses []domain.Status
	var final *domain.Document
	docRepo.EXPECT().
		Update(mock.Anything, mock.AnythingOfType("*domain.Document")).
		Run(func(ctx context.Context, d *domain.Document) {
			statuses = append(statuses, d.Status)
			if d.Status != domain.StatusProcessing {
				copied := *d
				final = &copied
			}
		}).
		Return(nil).
		Times(2)

	followRepo.EXPECT().
		FollowerEmailsByAuthor(mock.Anything, "alice").
		Return([]string{"bob@example.com", "carol@example.com"}, nil)

	sent := make(chan string, 2)
	mailer.EXPECT().
		Send(mock.Anything, mock.AnythingOfType("string"), mock.Anything, mock.Anything).
		Run(func(ctx context.Context, to, subject, body string) {
			sent <- to
		}).
		Return(nil).
		Times(2)

	notifier := notify.NewNotifier(followRepo, mailer, "http://localhost:3000")
	p := pipeline.New(docRepo, tokenizer, scorer, notifier, defaultConfig())

	require.NoError(t, p.Enqueue("doc-1"))

	recipients := map[string]bool{}
	for i := 0; i < 2; i++ {
		select {
		case to := <-sent:
			recipients[to] = true
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for notifications")
		}
	}
	p.Close()

	assert.True(t, recipients["bob@example.com"])
	assert.True(t, recipients["carol@example.com"])

	require.Equal(t, []domain.Status{domain.StatusProcessing, domain.StatusApproved}, statuses)
	require.NotNil(t, final)
	require.NotNil(t, final.QualityScore)
	assert.GreaterOrEqual(t, *final.QualityScore, 0.0)
	assert.LessOrEqual(t, *final.QualityScore, 100.0)
	require.NotNil(t, final.NoveltyScore)
	assert.GreaterOrEqual(t, *final.NoveltyScore, 0.0)
	assert.Less(t, *final.NoveltyScore, 1.0)
	require.NotNil(t, final.ProfanityFound)
	assert.False(t, *final.ProfanityFound)
	assert.NotEmpty(t, final.Tags)
	assert.Contains(t, final.Tags, "deployment")
}

func TestPipeline_ProfaneDocumentHeldForReview(t *testing.T) {
	docRepo := mocks.NewMockDocumentRepository(t)
	followRepo := mocks.NewMockFollowRepository(t)
	mailer := mocks.NewMockMailer(t)
	tokenizer, scorer := newAnalyzers()

	doc := pendingDoc("doc-2", "An Angry Rant", "This whole situation is shit and everyone knows it.")

	docRepo.EXPECT().GetByID(mock.Anything, "doc-2").Return(doc, nil)

	done := make(chan *domain.Document, 1)
	docRepo.EXPECT().
		Update(mock.Anything, mock.AnythingOfType("*domain.Document")).
		Run(func(ctx context.Context, d *domain.Document) {
			if d.Status != domain.StatusProcessing {
				copied := *d
				done <- &copied
			}
		}).
		Return(nil).
		Times(2)

	notifier := notify.NewNotifier(followRepo, mailer, "http://localhost:3000")
	p := pipeline.New(docRepo, tokenizer, scorer, notifier, defaultConfig())

	require.NoError(t, p.Enqueue("doc-2"))

	var final *domain.Document
	select {
	case final = <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for run to finish")
	}
	p.Close()

	assert.Equal(t, domain.StatusReview, final.Status)
	require.NotNil(t, final.ProfanityFound)
	assert.True(t, *final.ProfanityFound)

	// Held documents never trigger fan-out.
	followRepo.AssertNotCalled(t, "FollowerEmailsByAuthor", mock.Anything, mock.Anything)
	mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPipeline_NonPendingDocumentSkipped(t *testing.T) {
	docRepo := mocks.NewMockDocumentRepository(t)
	tokenizer, scorer := newAnalyzers()

	doc := pendingDoc("doc-3", "Already Done", "body")
	doc.Status = domain.StatusApproved

	loaded := make(chan struct{}, 1)
	docRepo.EXPECT().
		GetByID(mock.Anything, "doc-3").
		Run(func(ctx context.Context, id string) {
			loaded <- struct{}{}
		}).
		Return(doc, nil)

	p := pipeline.New(docRepo, tokenizer, scorer, nil, defaultConfig())

	require.NoError(t, p.Enqueue("doc-3"))

	select {
	case <-loaded:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for load")
	}
	p.Close()

	docRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestPipeline_EnqueueBackpressure(t *testing.T) {
	docRepo := mocks.NewMockDocumentRepository(t)
	tokenizer, scorer := newAnalyzers()

	// No workers: nothing drains the queue.
	cfg := pipeline.Config{
		Workers:    0,
		QueueSize:  1,
		MaxTags:    5,
		RunTimeout: time.Second,
	}
	p := pipeline.New(docRepo, tokenizer, scorer, nil, cfg)
	defer p.Close()

	require.NoError(t, p.Enqueue("doc-a"))
	err := p.Enqueue("doc-b")
	require.ErrorIs(t, err, pipeline.ErrQueueFull)
}

func TestPipeline_EnqueueAfterClose(t *testing.T) {
	docRepo := mocks.NewMockDocumentRepository(t)
	tokenizer, scorer := newAnalyzers()

	p := pipeline.New(docRepo, tokenizer, scorer, nil, defaultConfig())
	p.Close()

	err := p.Enqueue("doc-4")
	require.Error(t, err)
}

func TestPipeline_EnqueueRacingCloseDoesNotPanic(t *testing.T) {
	docRepo := mocks.NewMockDocumentRepository(t)
	tokenizer, scorer := newAnalyzers()

	// No workers, tiny queue: submissions hit the full-queue and
	// shutting-down paths quickly while Close races them.
	cfg := pipeline.Config{
		Workers:    0,
		QueueSize:  1,
		MaxTags:    5,
		RunTimeout: time.Second,
	}
	p := pipeline.New(docRepo, tokenizer, scorer, nil, cfg)

	done := make(chan struct{})
	for i := 0; i < 4; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for {
				if err := p.Enqueue("doc-r"); err != nil && err != pipeline.ErrQueueFull {
					// Shutdown reached; stop submitting.
					return
				}
			}
		}()
	}

	time.Sleep(10 * time.Millisecond)
	p.Close()

	for i := 0; i < 4; i++ {
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("submitter did not observe shutdown")
		}
	}
}

func TestPipeline_DuplicateSubmissionRunsOnce(t *testing.T) {
	docRepo := mocks.NewMockDocumentRepository(t)
	tokenizer, scorer := newAnalyzers()

	doc := pendingDoc("doc-5", "A Perfectly Normal Title", "Some perfectly normal body text here.")

	// Hold the first load long enough that both workers are looking at
	// the same document id at once.
	docRepo.EXPECT().
		GetByID(mock.Anything, "doc-5").
		Run(func(ctx context.Context, id string) {
			time.Sleep(100 * time.Millisecond)
		}).
		Return(doc, nil).
		Maybe()

	updates := make(chan domain.Status, 4)
	docRepo.EXPECT().
		Update(mock.Anything, mock.AnythingOfType("*domain.Document")).
		Run(func(ctx context.Context, d *domain.Document) {
			updates <- d.Status
		}).
		Return(nil).
		Maybe()

	p := pipeline.New(docRepo, tokenizer, scorer, nil, defaultConfig())

	require.NoError(t, p.Enqueue("doc-5"))
	require.NoError(t, p.Enqueue("doc-5"))

	time.Sleep(500 * time.Millisecond)
	p.Close()

	// Exactly one full run: processing then approved. The duplicate is
	// either blocked by the in-flight guard or sees a non-pending
	// status, and writes nothing.
	close(updates)
	var statuses []domain.Status
	for s := range updates {
		statuses = append(statuses, s)
	}
	require.Equal(t, []domain.Status{domain.StatusProcessing, domain.StatusApproved}, statuses)
}
