package services

import (
	"context"
	"log"
	"sync"

	"alfredoptarigan/smart-talent/internal/models"
)

// QuestionSink receives generated question sets for indexing.
type QuestionSink interface {
	Enqueue(set *models.InterviewQuestionSet)
}

type Worker interface {
	QuestionSink
	Start(ctx context.Context)
	Stop()
}

type worker struct {
	questionBank QuestionBankService
	jobQueue     chan *models.InterviewQuestionSet
	concurrency  int
	wg           sync.WaitGroup
	stopChan     chan struct{}
	stopOnce     sync.Once
}

// NewWorker indexes generated questions into the question bank in the
// background. Request handlers never wait on it.
func NewWorker(questionBank QuestionBankService, concurrency, queueSize int) Worker {
	if concurrency < 1 {
		concurrency = 1
	}
	if queueSize < 1 {
		queueSize = 1
	}

	return &worker{
		questionBank: questionBank,
		jobQueue:     make(chan *models.InterviewQuestionSet, queueSize),
		concurrency:  concurrency,
		stopChan:     make(chan struct{}),
	}
}

func (w *worker) Start(ctx context.Context) {
	log.Printf("🚀 Starting question indexer with %d workers\n", w.concurrency)

	for i := 0; i < w.concurrency; i++ {
		w.wg.Add(1)
		go w.processJobs(ctx, i+1)
	}
}

func (w *worker) Stop() {
	w.stopOnce.Do(func() {
		log.Println("🛑 Stopping question indexer...")
		close(w.stopChan)
		w.wg.Wait()
		log.Println("✅ Question indexer stopped")
	})
}

// Enqueue drops the set when the queue is full or the worker has stopped.
func (w *worker) Enqueue(set *models.InterviewQuestionSet) {
	if set == nil || len(set.Questions) == 0 {
		return
	}

	select {
	case <-w.stopChan:
		log.Printf("⚠️  Indexer stopped, dropping %d %s questions\n", len(set.Questions), set.Kind)
		return
	default:
	}

	select {
	case w.jobQueue <- set:
		log.Printf("📥 %d %s questions queued for indexing\n", len(set.Questions), set.Kind)
	default:
		log.Printf("⚠️  Indexer queue full, dropping %d %s questions\n", len(set.Questions), set.Kind)
	}
}

func (w *worker) processJobs(ctx context.Context, workerID int) {
	defer w.wg.Done()

	for {
		select {
		case <-w.stopChan:
			return
		case <-ctx.Done():
			return
		case set := <-w.jobQueue:
			indexed := 0
			for _, q := range set.Questions {
				entry := QuestionEntry{
					Question:    q.Question,
					IdealAnswer: q.IdealAnswer,
					Kind:        set.Kind,
					Context:     set.Context,
					Source:      string(set.Kind),
				}
				if err := w.questionBank.Index(ctx, entry); err != nil {
					log.Printf("❌ Indexer #%d failed on question: %v\n", workerID, err)
					continue
				}
				indexed++
			}
			log.Printf("✅ Indexer #%d stored %d/%d %s questions\n", workerID, indexed, len(set.Questions), set.Kind)
		}
	}
}
