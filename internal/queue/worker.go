// Package queue consumes transcript analysis jobs from RabbitMQ and
// publishes lifecycle status updates.
package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/streadway/amqp"
	"go.uber.org/zap"

	"github.com/mcggEz/backend-gradalyze-capstone/internal/extract"
	"github.com/mcggEz/backend-gradalyze-capstone/internal/pipeline"
)

const (
	// JobsQueue is the durable queue carrying analysis jobs.
	JobsQueue = "analyses"
	// UpdatesExchange receives one status event per lifecycle transition,
	// routed by "analysis.<job id>".
	UpdatesExchange = "analysis_updates"
)

// Job lifecycle statuses.
const (
	StatusQueued     = "queued"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

const downloadAttempts = 3

// Job is the message enqueued when a student requests an analysis of a
// stored transcript document.
type Job struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	ObjectKey string    `json:"object_key"`
	Mime      string    `json:"mime"`
}

// Downloader fetches stored transcript objects.
type Downloader interface {
	Download(ctx context.Context, key string) ([]byte, error)
}

// JobStatusStore records job lifecycle transitions.
type JobStatusStore interface {
	UpdateJobStatus(ctx context.Context, id uuid.UUID, status string) error
}

// Deps carries everything a worker needs to process a job.
type Deps struct {
	Logger   *zap.Logger
	Analyzer *pipeline.Analyzer
	Store    pipeline.Store
	Jobs     JobStatusStore
	Storage  Downloader
}

// Worker consumes the jobs queue with a pool of goroutines.
type Worker struct {
	conn    *amqp.Connection
	deps    *Deps
	workers int
}

func NewWorker(conn *amqp.Connection, workers int, deps *Deps) *Worker {
	if workers < 1 {
		workers = 1
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	return &Worker{conn: conn, deps: deps, workers: workers}
}

// Run starts the worker pool and blocks until every consumer channel closes.
func (w *Worker) Run(ctx context.Context) error {
	if err := w.declareTopology(); err != nil {
		return err
	}

	var wg sync.WaitGroup
	wg.Add(w.workers)

	for i := 0; i < w.workers; i++ {
		id := i + 1
		go func() {
			defer wg.Done()
			if err := w.consume(ctx, id); err != nil {
				w.deps.Logger.Error("consumer stopped", zap.Int("worker", id), zap.Error(err))
			}
		}()
	}

	wg.Wait()
	return nil
}

func (w *Worker) declareTopology() error {
	ch, err := w.conn.Channel()
	if err != nil {
		return fmt.Errorf("opening channel: %w", err)
	}
	defer ch.Close()

	if _, err := ch.QueueDeclare(JobsQueue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declaring queue %q: %w", JobsQueue, err)
	}
	if err := ch.ExchangeDeclare(UpdatesExchange, "topic", true, false, false, false, nil); err != nil {
		return fmt.Errorf("declaring exchange %q: %w", UpdatesExchange, err)
	}

	return nil
}

func (w *Worker) consume(ctx context.Context, id int) error {
	ch, err := w.conn.Channel()
	if err != nil {
		return fmt.Errorf("opening channel: %w", err)
	}
	defer ch.Close()

	msgs, err := ch.Consume(JobsQueue, "", true, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("consuming %q: %w", JobsQueue, err)
	}

	logger := w.deps.Logger.With(zap.Int("worker", id))
	logger.Info("worker started", zap.String("queue", JobsQueue))

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-msgs:
			if !ok {
				return nil
			}
			w.handle(ctx, logger, msg.Body)
		}
	}
}

func (w *Worker) handle(ctx context.Context, logger *zap.Logger, body []byte) {
	var job Job
	if err := json.Unmarshal(body, &job); err != nil {
		logger.Error("dropping undecodable job", zap.Error(err))
		return
	}

	logger = logger.With(zap.String("job_id", job.ID.String()), zap.String("user_id", job.UserID.String()))
	logger.Info("processing analysis job", zap.String("object_key", job.ObjectKey))

	w.transition(ctx, logger, job, StatusProcessing, "analysis started")

	record, err := w.process(ctx, job)
	if err != nil {
		logger.Error("analysis failed", zap.Error(err))
		w.transition(ctx, logger, job, StatusFailed, err.Error())
		return
	}

	if err := w.persist(ctx, job, record); err != nil {
		logger.Error("persisting analysis failed", zap.Error(err))
		w.transition(ctx, logger, job, StatusFailed, err.Error())
		return
	}

	w.transition(ctx, logger, job, StatusCompleted, "analysis completed")
	logger.Info("analysis job completed",
		zap.String("archetype", record.LearningArchetype.Primary),
		zap.Float64("gpa", record.AcademicMetrics.GPA),
	)
}

func (w *Worker) process(ctx context.Context, job Job) (*pipeline.Record, error) {
	data, err := retry(downloadAttempts, func() ([]byte, error) {
		return w.deps.Storage.Download(ctx, job.ObjectKey)
	})
	if err != nil {
		return nil, fmt.Errorf("downloading %q: %w", job.ObjectKey, err)
	}

	text, err := extract.Text(job.Mime, data)
	if err != nil {
		return nil, fmt.Errorf("extracting text: %w", err)
	}

	record, err := w.deps.Analyzer.AnalyzeText(text)
	if err != nil {
		return nil, fmt.Errorf("analyzing transcript: %w", err)
	}

	return record, nil
}

func (w *Worker) persist(ctx context.Context, job Job, record *pipeline.Record) error {
	_, err := retry(downloadAttempts, func() (struct{}, error) {
		return struct{}{}, w.deps.Store.SaveAnalysis(ctx, job.UserID, record)
	})
	return err
}

// transition records the status in the database and publishes the matching
// event. Neither failure aborts the job: status plumbing is best-effort.
func (w *Worker) transition(ctx context.Context, logger *zap.Logger, job Job, status, message string) {
	if w.deps.Jobs != nil {
		if err := w.deps.Jobs.UpdateJobStatus(ctx, job.ID, status); err != nil {
			logger.Warn("updating job status", zap.String("status", status), zap.Error(err))
		}
	}

	if err := w.PublishUpdate(job.ID, status, message); err != nil {
		logger.Warn("publishing status update", zap.String("status", status), zap.Error(err))
	}
}

// PublishUpdate emits one status event for the job.
func (w *Worker) PublishUpdate(jobID uuid.UUID, status, message string) error {
	ch, err := w.conn.Channel()
	if err != nil {
		return fmt.Errorf("opening channel: %w", err)
	}
	defer ch.Close()

	body, err := json.Marshal(map[string]any{
		"job_id":    jobID,
		"status":    status,
		"message":   message,
		"timestamp": time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("marshaling status update: %w", err)
	}

	return ch.Publish(UpdatesExchange, "analysis."+jobID.String(), false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
}

// retry runs fn up to attempts times with linear backoff.
func retry[T any](attempts int, fn func() (T, error)) (T, error) {
	var zero T
	var lastErr error

	for i := 0; i < attempts; i++ {
		result, err := fn()
		if err == nil {
			return result, nil
		}
		lastErr = err
		time.Sleep(time.Duration(500*(i+1)) * time.Millisecond)
	}

	return zero, fmt.Errorf("after %d attempts: %w", attempts, lastErr)
}
