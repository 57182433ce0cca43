package batch_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"rice-leaf-detection/internal/classification"
	"rice-leaf-detection/internal/classification/batch"
	"rice-leaf-detection/internal/model"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// echoUseCase labels each image with its own bytes and tracks concurrency.
type echoUseCase struct {
	mu       sync.Mutex
	inputs   []classification.ClassifyInput
	inFlight atomic.Int32
	peak     atomic.Int32
}

func (u *echoUseCase) Classify(ctx context.Context, input classification.ClassifyInput) classification.Outcome {
	n := u.inFlight.Add(1)
	defer u.inFlight.Add(-1)
	for {
		p := u.peak.Load()
		if n <= p || u.peak.CompareAndSwap(p, n) {
			break
		}
	}
	time.Sleep(5 * time.Millisecond)

	u.mu.Lock()
	u.inputs = append(u.inputs, input)
	u.mu.Unlock()

	top := model.Prediction{Label: string(input.Image), Score: 0.5}
	return classification.Success(model.ParseResult{TopPrediction: &top, AllPredictions: []model.Prediction{top}}, "")
}

func (u *echoUseCase) UpstreamStatus(ctx context.Context) classification.UpstreamStatus {
	return classification.UpstreamStatus{}
}

func readFake(path string) ([]byte, error) {
	if path == "missing.jpg" {
		return nil, errors.New("no such file")
	}
	return []byte("img:" + path), nil
}

func TestRunner_Run(t *testing.T) {
	uc := &echoUseCase{}
	r := batch.New(&mockLogger{}, uc, 2, readFake)

	paths := make([]string, 8)
	for i := range paths {
		paths[i] = fmt.Sprintf("leaf-%d.png", i)
	}
	paths[3] = "missing.jpg"

	results := r.Run(context.Background(), paths)

	if len(results) != len(paths) {
		t.Fatalf("expected %d results, got %d", len(paths), len(results))
	}
	for i, res := range results {
		if res.Path != paths[i] {
			t.Errorf("result %d out of order: %s", i, res.Path)
		}
		if paths[i] == "missing.jpg" {
			if res.Err == nil {
				t.Errorf("expected read error for missing file")
			}
			continue
		}
		if res.Err != nil || !res.Outcome.Succeeded() {
			t.Errorf("unexpected failure for %s: %v %+v", res.Path, res.Err, res.Outcome)
			continue
		}
		if res.Outcome.TopPrediction.Label != "img:"+paths[i] {
			t.Errorf("result %d carries another file's outcome: %s", i, res.Outcome.TopPrediction.Label)
		}
	}

	if len(uc.inputs) != len(paths)-1 {
		t.Errorf("expected %d classify calls, got %d", len(paths)-1, len(uc.inputs))
	}
	if peak := uc.peak.Load(); peak > 2 {
		t.Errorf("concurrency bound exceeded: %d", peak)
	}
}

func TestRunner_InputFromPath(t *testing.T) {
	uc := &echoUseCase{}
	batch.New(&mockLogger{}, uc, 0, readFake).Run(context.Background(), []string{"photos/leaf.png"})

	if len(uc.inputs) != 1 {
		t.Fatalf("expected one call, got %d", len(uc.inputs))
	}
	in := uc.inputs[0]
	if in.FileName != "leaf.png" {
		t.Errorf("expected base name, got %q", in.FileName)
	}
	if in.MimeType != "image/png" {
		t.Errorf("expected image/png from extension, got %q", in.MimeType)
	}
}
