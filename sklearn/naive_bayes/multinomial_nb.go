// Package naive_bayes implements naive Bayes classifiers for bag-of-words
// text classification.
package naive_bayes

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/textlearn/textlearn/core/model"
	"github.com/textlearn/textlearn/core/parallel"
	"github.com/textlearn/textlearn/metrics"
	"github.com/textlearn/textlearn/pkg/errors"
	"github.com/textlearn/textlearn/pkg/log"
)

// Row count above which batch inference loops run in parallel.
const predictParallelThreshold = 256

// MultinomialNB is a multinomial naive Bayes classifier over non-negative
// word-count feature vectors. It estimates empirical class priors and
// additively smoothed per-class word likelihoods from labeled examples, and
// scores new feature vectors by their log-posteriors.
//
// The estimator is not safe for a concurrent Fit, or a Fit concurrent with
// inference. A fitted estimator may be shared for concurrent reads.
type MultinomialNB struct {
	state *model.StateManager

	// alpha is the additive smoothing strength applied during Fit.
	alpha float64

	// Model parameters, fully recomputed on every Fit call.
	classes_    []int                 // distinct labels, ascending
	classPriors map[int]float64       // label -> empirical prior
	condProb    map[int]*mat.VecDense // label -> per-word likelihood vector
	vocabSize   int                   // smoothing denominator scale
}

var _ model.Classifier = (*MultinomialNB)(nil)

// MultinomialNBOption is a functional option for MultinomialNB.
type MultinomialNBOption func(*MultinomialNB)

// WithAlpha sets the additive (Laplace) smoothing strength. Zero disables
// smoothing and permits zero-probability words; negative values are rejected
// by Fit.
func WithAlpha(alpha float64) MultinomialNBOption {
	return func(nb *MultinomialNB) {
		nb.alpha = alpha
	}
}

// NewMultinomialNB creates a new MultinomialNB with alpha = 1.0.
func NewMultinomialNB(opts ...MultinomialNBOption) *MultinomialNB {
	nb := &MultinomialNB{
		state: model.NewStateManager(),
		alpha: 1.0,
	}
	for _, opt := range opts {
		opt(nb)
	}
	return nb
}

// Fit trains the classifier on feature matrix X (one word-count row per
// example) and column vector y of integer class labels. All parameters from a
// previous Fit are overwritten.
//
// The vocabulary-size scale used in the smoothing denominator is set from the
// number of training labels before the likelihoods are estimated.
func (nb *MultinomialNB) Fit(X, y mat.Matrix) error {
	r, c := X.Dims()
	yr, yc := y.Dims()

	if r == 0 || c == 0 {
		return errors.NewModelError("MultinomialNB.Fit", "empty data", errors.ErrEmptyData)
	}
	if yc != 1 {
		return errors.NewValueError("MultinomialNB.Fit", "y must be a column vector")
	}
	if yr != r {
		return errors.NewDimensionError("MultinomialNB.Fit", r, yr, 0)
	}
	if nb.alpha < 0 {
		return errors.NewValidationError("alpha", "must be non-negative", nb.alpha)
	}

	nb.classPriors = nb.EstimateClassPriors(y)
	nb.vocabSize = yr
	nb.condProb = nb.EstimateConditionalProbabilities(X, y, nb.alpha)
	nb.classes_ = sortedLabels(nb.classPriors)

	nb.state.SetDimensions(c, r)
	nb.state.SetFitted()

	if nb.alpha == 0 {
		if zeros := nb.zeroLikelihoodCount(); zeros > 0 {
			errors.Warn(errors.NewZeroProbabilityWarning("MultinomialNB", zeros))
		}
	}

	log.GetLoggerWithName("naive_bayes").Debug("estimator fitted",
		log.ModelNameKey, "MultinomialNB",
		log.OperationKey, "fit",
		log.SamplesKey, r,
		log.FeaturesKey, c,
		log.ClassesKey, len(nb.classes_),
		log.AlphaKey, nb.alpha,
	)
	return nil
}

// EstimateClassPriors returns the empirical frequency of each distinct class
// label in y. Priors are not smoothed. An empty y is an unchecked
// precondition and yields NaN frequencies.
func (nb *MultinomialNB) EstimateClassPriors(y mat.Matrix) map[int]float64 {
	n, _ := y.Dims()

	counts := make(map[int]int)
	warned := false
	for i := 0; i < n; i++ {
		v := y.At(i, 0)
		if !warned && v != math.Trunc(v) {
			errors.Warn(errors.NewDataConversionWarning("float64", "int", "class labels are truncated toward zero"))
			warned = true
		}
		counts[int(v)]++
	}

	priors := make(map[int]float64, len(counts))
	for label, count := range counts {
		priors[label] = float64(count) / float64(n)
	}
	return priors
}

// EstimateConditionalProbabilities returns, for each class, a length-V vector
// approximating P(word_j | class). Each class vector accumulates its training
// rows divided by V·delta + total word count of the class, where V is the
// vocabulary-size scale already stored on the estimator (Fit sets it before
// calling here). The smoothing term delta enters the numerator of the first
// row encountered for a class only; later rows of the same class contribute
// their raw counts.
//
// With delta > 0 every component is strictly positive, so its logarithm is
// always defined. The vectors are likelihoods per word, not a distribution
// over words, and need not sum to 1.
func (nb *MultinomialNB) EstimateConditionalProbabilities(X, y mat.Matrix, delta float64) map[int]*mat.VecDense {
	n, v := X.Dims()

	row := make([]float64, v)
	totalWords := make(map[int]float64)
	for i := 0; i < n; i++ {
		for j := 0; j < v; j++ {
			row[j] = X.At(i, j)
		}
		totalWords[int(y.At(i, 0))] += floats.Sum(row)
	}

	condProb := make(map[int]*mat.VecDense)
	for i := 0; i < n; i++ {
		label := int(y.At(i, 0))
		denom := float64(nb.vocabSize)*delta + totalWords[label]

		vec, seen := condProb[label]
		if !seen {
			vec = mat.NewVecDense(v, nil)
			for j := 0; j < v; j++ {
				vec.SetVec(j, (X.At(i, j)+delta)/denom)
			}
			condProb[label] = vec
			continue
		}
		for j := 0; j < v; j++ {
			vec.SetVec(j, vec.AtVec(j)+X.At(i, j)/denom)
		}
	}
	return condProb
}

// EstimateClassPosteriors returns the log-posterior of each class for a
// single feature vector: log(prior) plus the count-weighted sum of per-word
// log-likelihoods. The output is indexed by the rank of each class label in
// Classes() (index 0 = smallest label).
func (nb *MultinomialNB) EstimateClassPosteriors(x mat.Vector) (*mat.VecDense, error) {
	if err := nb.state.RequireFitted("MultinomialNB", "EstimateClassPosteriors"); err != nil {
		return nil, err
	}
	return nb.logPosteriors(x), nil
}

// logPosteriors assumes the estimator is fitted. A feature vector wider than
// the trained vocabulary panics on indexing, an unchecked precondition.
func (nb *MultinomialNB) logPosteriors(x mat.Vector) *mat.VecDense {
	out := mat.NewVecDense(len(nb.classes_), nil)
	for rank, label := range nb.classes_ {
		cond := nb.condProb[label]
		lp := math.Log(nb.classPriors[label])
		for j := 0; j < x.Len(); j++ {
			lp += math.Log(cond.AtVec(j)) * x.AtVec(j)
		}
		out.SetVec(rank, lp)
	}
	return out
}

// Predict returns an n×1 matrix of predicted class labels, one per row of X.
// Each row is assigned the arg-max of its log-posteriors; a tie goes to the
// smaller label.
func (nb *MultinomialNB) Predict(X mat.Matrix) (mat.Matrix, error) {
	if err := nb.state.RequireFitted("MultinomialNB", "Predict"); err != nil {
		return nil, err
	}

	n, c := X.Dims()
	predictions := mat.NewDense(n, 1, nil)

	parallel.ParallelizeWithThreshold(n, predictParallelThreshold, func(start, end int) {
		x := mat.NewVecDense(c, nil)
		for i := start; i < end; i++ {
			for j := 0; j < c; j++ {
				x.SetVec(j, X.At(i, j))
			}
			post := nb.logPosteriors(x)
			best := floats.MaxIdx(post.RawVector().Data)
			predictions.Set(i, 0, float64(nb.classes_[best]))
		}
	})

	return predictions, nil
}

// PredictProba returns an n×c matrix of class probabilities, columns aligned
// with Classes(). Each row is the softmax of its log-posteriors, computed
// with a log-sum-exp shift.
func (nb *MultinomialNB) PredictProba(X mat.Matrix) (mat.Matrix, error) {
	if err := nb.state.RequireFitted("MultinomialNB", "PredictProba"); err != nil {
		return nil, err
	}

	n, c := X.Dims()
	k := len(nb.classes_)
	probas := mat.NewDense(n, k, nil)

	parallel.ParallelizeWithThreshold(n, predictParallelThreshold, func(start, end int) {
		x := mat.NewVecDense(c, nil)
		for i := start; i < end; i++ {
			for j := 0; j < c; j++ {
				x.SetVec(j, X.At(i, j))
			}
			post := nb.logPosteriors(x).RawVector().Data
			norm := errors.LogSumExp(post)
			for rank := 0; rank < k; rank++ {
				probas.Set(i, rank, math.Exp(post[rank]-norm))
			}
		}
	})

	return probas, nil
}

// PredictLogProba returns the logarithm of PredictProba's output.
func (nb *MultinomialNB) PredictLogProba(X mat.Matrix) (mat.Matrix, error) {
	if err := nb.state.RequireFitted("MultinomialNB", "PredictLogProba"); err != nil {
		return nil, err
	}

	n, c := X.Dims()
	k := len(nb.classes_)
	logProbas := mat.NewDense(n, k, nil)

	parallel.ParallelizeWithThreshold(n, predictParallelThreshold, func(start, end int) {
		x := mat.NewVecDense(c, nil)
		for i := start; i < end; i++ {
			for j := 0; j < c; j++ {
				x.SetVec(j, X.At(i, j))
			}
			post := nb.logPosteriors(x).RawVector().Data
			norm := errors.LogSumExp(post)
			for rank := 0; rank < k; rank++ {
				logProbas.Set(i, rank, post[rank]-norm)
			}
		}
	})

	return logProbas, nil
}

// Score returns the mean accuracy of Predict on X against the labels y.
func (nb *MultinomialNB) Score(X, y mat.Matrix) (float64, error) {
	if err := nb.state.RequireFitted("MultinomialNB", "Score"); err != nil {
		return 0, err
	}

	yPred, err := nb.Predict(X)
	if err != nil {
		return 0, err
	}
	return metrics.Accuracy(y, yPred)
}

// GetParams returns the hyperparameters.
func (nb *MultinomialNB) GetParams() map[string]interface{} {
	return map[string]interface{}{
		"alpha": nb.alpha,
	}
}

// SetParams updates hyperparameters. It does not touch fitted parameters;
// call Fit again for the new values to take effect.
func (nb *MultinomialNB) SetParams(params map[string]interface{}) error {
	for key, value := range params {
		switch key {
		case "alpha":
			alpha, ok := value.(float64)
			if !ok {
				return errors.NewValidationError("alpha", "must be a float64", value)
			}
			nb.alpha = alpha
		default:
			return errors.Newf("unknown parameter: %s", key)
		}
	}
	return nil
}

// Classes returns the distinct class labels seen during training, ascending.
func (nb *MultinomialNB) Classes() []int {
	return append([]int(nil), nb.classes_...)
}

// VocabSize returns the vocabulary-size scale stored by Fit.
func (nb *MultinomialNB) VocabSize() int {
	return nb.vocabSize
}

// IsFitted returns whether the estimator has been trained.
func (nb *MultinomialNB) IsFitted() bool {
	return nb.state.IsFitted()
}

// zeroLikelihoodCount counts likelihood components that are exactly zero.
func (nb *MultinomialNB) zeroLikelihoodCount() int {
	zeros := 0
	for _, vec := range nb.condProb {
		for j := 0; j < vec.Len(); j++ {
			if vec.AtVec(j) == 0 {
				zeros++
			}
		}
	}
	return zeros
}

func sortedLabels(priors map[int]float64) []int {
	labels := make([]int, 0, len(priors))
	for label := range priors {
		labels = append(labels, label)
	}
	sort.Ints(labels)
	return labels
}
