package model

import (
	"gonum.org/v1/gonum/mat"
)

// Estimator is the minimal contract shared by all trainable models.
type Estimator interface {
	// Fit trains the model on feature matrix X and target y.
	Fit(X, y mat.Matrix) error
}

// Classifier is an estimator that predicts discrete class labels.
type Classifier interface {
	Estimator

	// Predict returns an n×1 matrix of predicted class labels.
	Predict(X mat.Matrix) (mat.Matrix, error)

	// PredictProba returns an n×c matrix of class membership
	// probabilities, columns aligned with Classes.
	PredictProba(X mat.Matrix) (mat.Matrix, error)

	// Classes returns the distinct class labels in ascending order.
	Classes() []int
}
