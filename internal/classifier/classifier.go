// Package classifier talks to an optional, externally trained model that
// estimates how likely a contract is to be vulnerable. Training and inference
// live outside this repository; only the exchange format is defined here.
package classifier

import (
	"context"
	"errors"

	"github.com/NeuroGhostOutput/Decentralized-Ethical-Protocol-Framework/internal/model"
	"github.com/NeuroGhostOutput/Decentralized-Ethical-Protocol-Framework/internal/scoring"
)

var ErrBadResponse = errors.New("classifier: malformed response")

type Classifier interface {
	Predict(ctx context.Context, source string) (model.Prediction, error)
}

// Func adapts a plain function to Classifier.
type Func func(ctx context.Context, source string) (model.Prediction, error)

func (f Func) Predict(ctx context.Context, source string) (model.Prediction, error) {
	return f(ctx, source)
}

// Blend mixes the rule-based score with the classifier probability.
// weight <= 0 leaves score untouched.
func Blend(score float64, p model.Prediction, weight float64) float64 {
	if weight <= 0 {
		return score
	}
	weight = scoring.Clamp(weight)
	return scoring.Clamp((1-weight)*score + weight*p.Probability)
}
