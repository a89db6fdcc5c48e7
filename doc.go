// Package textlearn provides text classification estimators for Go with a
// scikit-learn-like API.
//
// The estimators consume bag-of-words count matrices built upstream; feature
// extraction itself is out of scope. The main entry point is the multinomial
// naive Bayes classifier:
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/textlearn/textlearn/sklearn/naive_bayes"
//	    "gonum.org/v1/gonum/mat"
//	)
//
//	func main() {
//	    // One word-count row per training example, one label per row.
//	    X := mat.NewDense(4, 3, []float64{
//	        2, 1, 0,
//	        1, 1, 0,
//	        0, 1, 2,
//	        0, 0, 2,
//	    })
//	    y := mat.NewDense(4, 1, []float64{0, 0, 1, 1})
//
//	    clf := naive_bayes.NewMultinomialNB()
//	    if err := clf.Fit(X, y); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    pred, err := clf.Predict(mat.NewDense(1, 3, []float64{1, 1, 0}))
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Printf("predicted class: %.0f\n", pred.At(0, 0))
//	}
//
// Evaluation metrics live in the metrics package, structured errors and the
// warning system in pkg/errors, and the logging facade in pkg/log.
package textlearn
