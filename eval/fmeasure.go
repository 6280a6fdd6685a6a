// Package eval scores span predictions against reference labels and builds
// per-tag reports for trained sequence models.
package eval

import (
	"fmt"

	"github.com/sitedata/opennlp/sequence"
)

// FMeasure accumulates span-set precision and recall over many sentences.
// The zero value is ready to use. Not safe for concurrent use; Merge
// per-worker instances instead.
type FMeasure struct {
	selected      int // predicted spans
	target        int // reference spans
	truePositives int
}

// Update scores one sentence worth of predictions against its reference
// spans. Span equality covers range and type.
func (f *FMeasure) Update(references, predictions []sequence.Span) {
	f.selected += len(predictions)
	f.target += len(references)
	f.truePositives += countTruePositives(references, predictions)
}

// Merge folds another accumulator into this one.
func (f *FMeasure) Merge(other *FMeasure) {
	f.selected += other.selected
	f.target += other.target
	f.truePositives += other.truePositives
}

// Precision returns the fraction of predicted spans that are correct, or -1
// if nothing was predicted.
func (f *FMeasure) Precision() float64 {
	if f.selected == 0 {
		return -1
	}
	return float64(f.truePositives) / float64(f.selected)
}

// Recall returns the fraction of reference spans that were found, or -1 if
// there are no reference spans.
func (f *FMeasure) Recall() float64 {
	if f.target == 0 {
		return -1
	}
	return float64(f.truePositives) / float64(f.target)
}

// F returns the balanced F1 score, or -1 if it is undefined.
func (f *FMeasure) F() float64 {
	precision := f.Precision()
	recall := f.Recall()
	if precision < 0 || recall < 0 || precision+recall == 0 {
		return -1
	}
	return 2 * precision * recall / (precision + recall)
}

func (f *FMeasure) String() string {
	return fmt.Sprintf("Precision: %.4f, Recall: %.4f, F-Measure: %.4f",
		f.Precision(), f.Recall(), f.F())
}

// countTruePositives counts predictions that exactly match a reference span.
// Each reference span can be matched at most once.
func countTruePositives(references, predictions []sequence.Span) int {
	matched := make([]bool, len(references))
	count := 0
	for _, prediction := range predictions {
		for i, reference := range references {
			if !matched[i] && prediction.Equal(reference) {
				matched[i] = true
				count++
				break
			}
		}
	}
	return count
}
