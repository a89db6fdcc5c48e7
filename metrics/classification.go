// Package metrics provides evaluation metrics for classifiers.
package metrics

import (
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/textlearn/textlearn/pkg/errors"
)

// validateLabelVectors checks that yTrue and yPred are non-empty n×1 matrices
// of equal length and returns n.
func validateLabelVectors(op string, yTrue, yPred mat.Matrix) (int, error) {
	n, c := yTrue.Dims()
	if n == 0 {
		return 0, errors.NewValueError(op, "empty label vector")
	}
	if c != 1 {
		return 0, errors.NewValueError(op, "labels must be a column vector")
	}

	np, cp := yPred.Dims()
	if cp != 1 {
		return 0, errors.NewValueError(op, "predictions must be a column vector")
	}
	if np != n {
		return 0, errors.NewDimensionError(op, n, np, 0)
	}
	return n, nil
}

// Accuracy returns the fraction of predictions matching the true labels.
func Accuracy(yTrue, yPred mat.Matrix) (float64, error) {
	n, err := validateLabelVectors("Accuracy", yTrue, yPred)
	if err != nil {
		return 0, err
	}

	correct := 0
	for i := 0; i < n; i++ {
		if int(yTrue.At(i, 0)) == int(yPred.At(i, 0)) {
			correct++
		}
	}
	return float64(correct) / float64(n), nil
}

// Precision returns TP / (TP + FP) with respect to positiveLabel. When no
// positive predictions exist the metric is ill-defined; an
// UndefinedMetricWarning is emitted and 0 is returned.
func Precision(yTrue, yPred mat.Matrix, positiveLabel int) (float64, error) {
	n, err := validateLabelVectors("Precision", yTrue, yPred)
	if err != nil {
		return 0, err
	}

	tp, fp := 0, 0
	for i := 0; i < n; i++ {
		if int(yPred.At(i, 0)) != positiveLabel {
			continue
		}
		if int(yTrue.At(i, 0)) == positiveLabel {
			tp++
		} else {
			fp++
		}
	}

	if tp+fp == 0 {
		errors.Warn(errors.NewUndefinedMetricWarning("precision", "no predicted samples of the positive class", 0))
		return 0, nil
	}
	return float64(tp) / float64(tp+fp), nil
}

// Recall returns TP / (TP + FN) with respect to positiveLabel. When the
// positive class is absent from yTrue the metric is ill-defined; an
// UndefinedMetricWarning is emitted and 0 is returned.
func Recall(yTrue, yPred mat.Matrix, positiveLabel int) (float64, error) {
	n, err := validateLabelVectors("Recall", yTrue, yPred)
	if err != nil {
		return 0, err
	}

	tp, fn := 0, 0
	for i := 0; i < n; i++ {
		if int(yTrue.At(i, 0)) != positiveLabel {
			continue
		}
		if int(yPred.At(i, 0)) == positiveLabel {
			tp++
		} else {
			fn++
		}
	}

	if tp+fn == 0 {
		errors.Warn(errors.NewUndefinedMetricWarning("recall", "no true samples of the positive class", 0))
		return 0, nil
	}
	return float64(tp) / float64(tp+fn), nil
}

// F1Score returns the harmonic mean of precision and recall with respect to
// positiveLabel, or 0 when both are 0.
func F1Score(yTrue, yPred mat.Matrix, positiveLabel int) (float64, error) {
	p, err := Precision(yTrue, yPred, positiveLabel)
	if err != nil {
		return 0, err
	}
	r, err := Recall(yTrue, yPred, positiveLabel)
	if err != nil {
		return 0, err
	}

	if p+r == 0 {
		return 0, nil
	}
	return 2 * p * r / (p + r), nil
}

// ConfusionMatrix returns a c×c count matrix over the sorted union of labels
// in yTrue and yPred, rows indexed by true label and columns by predicted
// label, together with the label order.
func ConfusionMatrix(yTrue, yPred mat.Matrix) (*mat.Dense, []int, error) {
	n, err := validateLabelVectors("ConfusionMatrix", yTrue, yPred)
	if err != nil {
		return nil, nil, err
	}

	seen := make(map[int]bool)
	for i := 0; i < n; i++ {
		seen[int(yTrue.At(i, 0))] = true
		seen[int(yPred.At(i, 0))] = true
	}
	labels := make([]int, 0, len(seen))
	for label := range seen {
		labels = append(labels, label)
	}
	sort.Ints(labels)

	index := make(map[int]int, len(labels))
	for rank, label := range labels {
		index[label] = rank
	}

	cm := mat.NewDense(len(labels), len(labels), nil)
	for i := 0; i < n; i++ {
		r := index[int(yTrue.At(i, 0))]
		c := index[int(yPred.At(i, 0))]
		cm.Set(r, c, cm.At(r, c)+1)
	}
	return cm, labels, nil
}
