package engine

import (
	"context"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/NeuroGhostOutput/Decentralized-Ethical-Protocol-Framework/internal/model"
)

func (e *Engine) workers() int {
	n := e.cfg.Workers
	if n <= 0 {
		n = runtime.NumCPU()
	}
	if n < 2 {
		n = 2
	}
	return n
}

// auditFiles fans files out over a bounded pool; results keep input order.
// Files not started before ctx is done are reported as cancelled.
func (e *Engine) auditFiles(ctx context.Context, files []string, base Baseline) []model.FileResult {
	out := make([]model.FileResult, len(files))
	var wg sync.WaitGroup
	sem := make(chan struct{}, e.workers())
	for i, file := range files {
		select {
		case sem <- struct{}{}:
		case <-ctx.Done():
			out[i] = cancelled(file, ctx.Err())
			continue
		}
		wg.Add(1)
		go func(i int, file string) {
			defer wg.Done()
			defer func() { <-sem }()
			if err := ctx.Err(); err != nil {
				out[i] = cancelled(file, err)
				return
			}
			out[i] = e.AuditFile(ctx, file, base)
		}(i, file)
	}
	wg.Wait()
	return out
}

func cancelled(file string, err error) model.FileResult {
	return model.FileResult{File: filepath.ToSlash(file), Report: model.Report{Findings: []model.Finding{}, Error: err.Error()}}
}
