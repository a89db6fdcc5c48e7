package log

// Standard attribute keys for machine learning operations. Using these keys
// keeps log output consistent across estimators and enables structured
// filtering downstream.
const (
	// ModelNameKey identifies the estimator type, e.g. "MultinomialNB".
	ModelNameKey = "model.name"

	// ComponentKey identifies the package performing the operation,
	// e.g. "naive_bayes", "metrics".
	ComponentKey = "ml.component"

	// OperationKey names the operation: "fit", "predict", "predict_proba",
	// "score".
	OperationKey = "ml.operation"

	// SamplesKey is the number of samples (rows) processed.
	SamplesKey = "data.samples"

	// FeaturesKey is the number of features (columns) processed.
	FeaturesKey = "data.features"

	// ClassesKey is the number of distinct class labels seen during training.
	ClassesKey = "model.classes"

	// AlphaKey is the additive smoothing strength used during training.
	AlphaKey = "model.alpha"
)
