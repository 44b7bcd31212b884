package queue

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/mcggEz/backend-gradalyze-capstone/internal/extract"
	"github.com/mcggEz/backend-gradalyze-capstone/internal/pipeline"
)

type stubDownloader struct {
	data     []byte
	err      error
	failures int
	calls    int
}

func (s *stubDownloader) Download(_ context.Context, _ string) ([]byte, error) {
	s.calls++
	if s.calls <= s.failures {
		return nil, errors.New("transient download error")
	}
	if s.err != nil {
		return nil, s.err
	}
	return s.data, nil
}

func newTestWorker(downloader Downloader) *Worker {
	return NewWorker(nil, 1, &Deps{
		Analyzer: pipeline.New(nil),
		Storage:  downloader,
	})
}

func TestProcessDownloadsExtractsAndAnalyzes(t *testing.T) {
	downloader := &stubDownloader{
		data: []byte("ICC 0101 Introduction to Computing 3 1.50\nICC 0102 Programming Fundamentals 3 1.75"),
	}

	record, err := newTestWorker(downloader).process(context.Background(), Job{
		ObjectKey: "tor/sample.txt",
		Mime:      extract.MimePlain,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if record.Grades.Len() != 2 {
		t.Fatalf("expected 2 parsed records, got %d", record.Grades.Len())
	}
	if record.LearningArchetype == nil {
		t.Fatalf("expected classified archetype")
	}
}

func TestProcessRetriesTransientDownloadFailures(t *testing.T) {
	downloader := &stubDownloader{
		data:     []byte("ICC 0101 Introduction to Computing 3 1.50"),
		failures: 2,
	}

	if _, err := newTestWorker(downloader).process(context.Background(), Job{Mime: extract.MimePlain}); err != nil {
		t.Fatalf("expected retries to absorb transient failures, got %v", err)
	}
	if downloader.calls != 3 {
		t.Fatalf("expected 3 download attempts, got %d", downloader.calls)
	}
}

func TestProcessGivesUpAfterRetries(t *testing.T) {
	downloader := &stubDownloader{failures: downloadAttempts + 1}

	_, err := newTestWorker(downloader).process(context.Background(), Job{ObjectKey: "tor/missing.pdf", Mime: extract.MimePDF})
	if err == nil {
		t.Fatalf("expected error after exhausted retries")
	}
	if !strings.Contains(err.Error(), "downloading") {
		t.Fatalf("expected download error, got %v", err)
	}
	if downloader.calls != downloadAttempts {
		t.Fatalf("expected %d attempts, got %d", downloadAttempts, downloader.calls)
	}
}

func TestProcessRejectsUnsupportedMime(t *testing.T) {
	downloader := &stubDownloader{data: []byte{0x89, 0x50}}

	_, err := newTestWorker(downloader).process(context.Background(), Job{ObjectKey: "tor/scan.png", Mime: "image/png"})
	if err == nil || !strings.Contains(err.Error(), "extracting text") {
		t.Fatalf("expected extraction error, got %v", err)
	}
}

func TestRetryReturnsLastError(t *testing.T) {
	calls := 0
	_, err := retry(2, func() (int, error) {
		calls++
		return 0, errors.New("boom")
	})
	if err == nil || !strings.Contains(err.Error(), "after 2 attempts") {
		t.Fatalf("unexpected error %v", err)
	}
	if calls != 2 {
		t.Fatalf("expected 2 calls, got %d", calls)
	}
}
