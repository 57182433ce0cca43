package batch

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"github.com/sourcegraph/conc/pool"

	"rice-leaf-detection/internal/classification"
	"rice-leaf-detection/pkg/log"
)

// DefaultConcurrency bounds in-flight calls to the Space.
const DefaultConcurrency = 4

// Result is the outcome for one file. Err is set when the file could not be read.
type Result struct {
	Path    string
	Outcome classification.Outcome
	Err     error
}

// ReadFunc loads an image from disk.
type ReadFunc func(path string) ([]byte, error)

type Runner struct {
	l           log.Logger
	uc          classification.UseCase
	concurrency int
	read        ReadFunc
}

// New creates a Runner. A nil read uses os.ReadFile.
func New(l log.Logger, uc classification.UseCase, concurrency int, read ReadFunc) *Runner {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	if read == nil {
		read = os.ReadFile
	}
	return &Runner{
		l:           l,
		uc:          uc,
		concurrency: concurrency,
		read:        read,
	}
}

// Run classifies every path, each as an independent request. Results keep
// the order of paths.
func (r *Runner) Run(ctx context.Context, paths []string) []Result {
	results := make([]Result, len(paths))
	p := pool.New().WithMaxGoroutines(r.concurrency)

	for idx, path := range paths {
		idx, path := idx, path
		p.Go(func() {
			results[idx] = r.classifyFile(ctx, path)
		})
	}
	p.Wait()

	return results
}

func (r *Runner) classifyFile(ctx context.Context, path string) Result {
	res := Result{Path: path}

	data, err := r.read(path)
	if err != nil {
		r.l.Errorf(ctx, "batch.classifyFile %s: %v", path, err)
		res.Err = fmt.Errorf("read %s: %w", path, err)
		return res
	}

	res.Outcome = r.uc.Classify(ctx, classification.ClassifyInput{
		Image:    data,
		MimeType: mime.TypeByExtension(filepath.Ext(path)),
		FileName: filepath.Base(path),
	})
	if !res.Outcome.Succeeded() {
		r.l.Warnf(ctx, "batch.classifyFile %s: %s", path, res.Outcome.Reason)
	}
	return res
}
