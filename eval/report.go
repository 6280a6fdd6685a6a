package eval

import (
	"sort"

	"github.com/google/uuid"
)

// TagReport accumulates fine-grained per-tag statistics over (reference,
// predicted) tag sequences: per-tag accuracy and a confusion matrix. It
// holds data only; rendering is up to the caller. Not safe for concurrent
// use.
type TagReport struct {
	// RunID identifies one evaluation run in persisted or printed reports.
	RunID string

	total   int
	correct int

	referenceCounts map[string]int
	correctCounts   map[string]int
	// confusion[reference][predicted] counts misclassifications.
	confusion map[string]map[string]int
}

// NewTagReport returns an empty report with a fresh run id.
func NewTagReport() *TagReport {
	return &TagReport{
		RunID:           uuid.NewString(),
		referenceCounts: make(map[string]int),
		correctCounts:   make(map[string]int),
		confusion:       make(map[string]map[string]int),
	}
}

// Update records one sentence worth of predicted tags against the reference
// tags. Positions past the shorter sequence are ignored.
func (r *TagReport) Update(reference, predicted []string) {
	n := len(reference)
	if len(predicted) < n {
		n = len(predicted)
	}
	for i := 0; i < n; i++ {
		ref := reference[i]
		pred := predicted[i]
		r.total++
		r.referenceCounts[ref]++
		if ref == pred {
			r.correct++
			r.correctCounts[ref]++
			continue
		}
		row := r.confusion[ref]
		if row == nil {
			row = make(map[string]int)
			r.confusion[ref] = row
		}
		row[pred]++
	}
}

// Accuracy returns the overall token accuracy, or -1 before any update.
func (r *TagReport) Accuracy() float64 {
	if r.total == 0 {
		return -1
	}
	return float64(r.correct) / float64(r.total)
}

// Tags returns the reference tags seen, sorted by descending frequency and
// then lexically.
func (r *TagReport) Tags() []string {
	tags := make([]string, 0, len(r.referenceCounts))
	for tag := range r.referenceCounts {
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool {
		ci, cj := r.referenceCounts[tags[i]], r.referenceCounts[tags[j]]
		if ci != cj {
			return ci > cj
		}
		return tags[i] < tags[j]
	})
	return tags
}

// TagCount returns how often the tag occurs in the references.
func (r *TagReport) TagCount(tag string) int { return r.referenceCounts[tag] }

// TagAccuracy returns the accuracy for one reference tag, or -1 if the tag
// never occurred.
func (r *TagReport) TagAccuracy(tag string) float64 {
	count := r.referenceCounts[tag]
	if count == 0 {
		return -1
	}
	return float64(r.correctCounts[tag]) / float64(count)
}

// Confusions returns the misclassification counts for one reference tag,
// sorted by descending count and then lexically by predicted tag.
func (r *TagReport) Confusions(tag string) []Confusion {
	row := r.confusion[tag]
	confusions := make([]Confusion, 0, len(row))
	for predicted, count := range row {
		confusions = append(confusions, Confusion{Predicted: predicted, Count: count})
	}
	sort.Slice(confusions, func(i, j int) bool {
		if confusions[i].Count != confusions[j].Count {
			return confusions[i].Count > confusions[j].Count
		}
		return confusions[i].Predicted < confusions[j].Predicted
	})
	return confusions
}

// Confusion is one cell of the confusion matrix: a predicted tag and how
// often it was wrongly chosen for the reference tag.
type Confusion struct {
	Predicted string
	Count     int
}
