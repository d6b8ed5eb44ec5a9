package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"time"

	"github.com/NeuroGhostOutput/Decentralized-Ethical-Protocol-Framework/internal/model"
)

type Result struct {
	Tool     string
	Raw      []byte
	Err      error
	Duration time.Duration
}

// RunWithTimeout runs tool with stdin attached and returns its stdout.
func RunWithTimeout(ctx context.Context, stdin []byte, tool string, args ...string) Result {
	start := time.Now()
	cmd := exec.CommandContext(ctx, tool, args...)
	cmd.Stdin = bytes.NewReader(stdin)
	out, err := cmd.Output()
	return Result{Tool: tool, Raw: out, Err: err, Duration: time.Since(start)}
}

// Command is a Classifier backed by a model bridge process. The contract source
// is written to stdin; stdout must be {"probability": p, "model": "..."}.
type Command struct {
	Path    string
	Args    []string
	Timeout time.Duration
}

func (c Command) Predict(ctx context.Context, source string) (model.Prediction, error) {
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}
	res := RunWithTimeout(ctx, []byte(source), c.Path, c.Args...)
	if res.Err != nil {
		return model.Prediction{}, fmt.Errorf("classifier %s: %w", c.Path, res.Err)
	}
	return decode(res.Raw)
}

func decode(raw []byte) (model.Prediction, error) {
	var p model.Prediction
	if err := json.Unmarshal(raw, &p); err != nil {
		return p, fmt.Errorf("%w: %v", ErrBadResponse, err)
	}
	if p.Probability < 0 || p.Probability > 1 {
		return p, fmt.Errorf("%w: probability %v out of range", ErrBadResponse, p.Probability)
	}
	return p, nil
}
