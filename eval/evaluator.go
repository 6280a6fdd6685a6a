package eval

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
	"k8s.io/klog/v2"

	"github.com/sitedata/opennlp/namefind"
	"github.com/sitedata/opennlp/sequence"
)

// PredictFunc produces the predicted spans for one sentence. It must be safe
// to call concurrently across sentences.
type PredictFunc func(ctx context.Context, tokens []string) ([]sequence.Span, error)

// Evaluator scores a prediction function over a corpus, fanning sentences
// out to parallel workers. Codec calls are pure, so cross-document
// parallelism is safe; only the score accumulation is synchronized.
type Evaluator struct {
	predict  PredictFunc
	workers  int
	listener *ErrorListener
}

// NewEvaluator returns an evaluator running predict over up to workers
// sentences at a time. workers below 1 means sequential evaluation.
func NewEvaluator(predict PredictFunc, workers int) *Evaluator {
	if workers < 1 {
		workers = 1
	}
	return &Evaluator{predict: predict, workers: workers}
}

// WithErrorListener makes the evaluator report misclassified sentences to
// the listener. Calls to the listener are serialized.
func (e *Evaluator) WithErrorListener(listener *ErrorListener) *Evaluator {
	e.listener = listener
	return e
}

// Evaluate scores every sample and returns the merged span F-measure. It
// stops at the first prediction error or context cancellation.
func (e *Evaluator) Evaluate(ctx context.Context, samples []*namefind.Sample) (*FMeasure, error) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)

	var mu sync.Mutex
	var measure FMeasure

	for _, sample := range samples {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			tokens := sample.Tokens()
			predictions, err := e.predict(ctx, tokens)
			if err != nil {
				return err
			}
			references := sample.Names()

			mu.Lock()
			defer mu.Unlock()
			measure.Update(references, predictions)
			misses := countTruePositives(references, predictions) != len(references) ||
				len(predictions) != len(references)
			if e.listener != nil && misses {
				e.listener.Missclassified(tokens, references, predictions)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	klog.V(1).Infof("Evaluated %d samples: %s", len(samples), measure.String())
	return &measure, nil
}
