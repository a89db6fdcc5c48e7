package errors

import (
	"math"
	"strings"
	"testing"
)

func TestNotFittedError(t *testing.T) {
	err := NewNotFittedError("MultinomialNB", "Predict")

	var nfe *NotFittedError
	if !As(err, &nfe) {
		t.Fatalf("expected NotFittedError in chain, got %T", err)
	}
	if nfe.ModelName != "MultinomialNB" || nfe.Method != "Predict" {
		t.Errorf("unexpected fields: %+v", nfe)
	}
	if !strings.Contains(err.Error(), "not fitted yet") {
		t.Errorf("unexpected message: %s", err.Error())
	}
}

func TestDimensionError(t *testing.T) {
	tests := []struct {
		name string
		axis int
		want string
	}{
		{name: "row axis", axis: 0, want: "rows"},
		{name: "feature axis", axis: 1, want: "features"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewDimensionError("MultinomialNB.Fit", 4, 3, tt.axis)
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("message %q should mention %q", err.Error(), tt.want)
			}

			var de *DimensionError
			if !As(err, &de) {
				t.Fatalf("expected DimensionError in chain")
			}
			if de.Expected != 4 || de.Got != 3 {
				t.Errorf("unexpected fields: %+v", de)
			}
		})
	}
}

func TestModelErrorUnwrap(t *testing.T) {
	err := NewModelError("MultinomialNB.Fit", "empty data", ErrEmptyData)
	if !Is(err, ErrEmptyData) {
		t.Error("ModelError should unwrap to ErrEmptyData")
	}
}

func TestWarnUsesHandler(t *testing.T) {
	var captured error
	SetWarningHandler(func(w error) { captured = w })
	defer SetWarningHandler(nil)

	warning := NewZeroProbabilityWarning("MultinomialNB", 7)
	Warn(warning)

	if captured == nil {
		t.Fatal("warning handler was not invoked")
	}
	if !strings.Contains(captured.Error(), "7 likelihood components") {
		t.Errorf("unexpected warning message: %s", captured.Error())
	}
}

func TestWarnPrefersZerologSink(t *testing.T) {
	var viaHandler, viaZerolog error
	SetWarningHandler(func(w error) { viaHandler = w })
	SetZerologWarnFunc(func(w error) { viaZerolog = w })
	defer func() {
		SetWarningHandler(nil)
		SetZerologWarnFunc(nil)
	}()

	Warn(NewDataConversionWarning("float64", "int", "labels truncated"))

	if viaZerolog == nil {
		t.Error("zerolog sink should receive the warning")
	}
	if viaHandler != nil {
		t.Error("plain handler should be bypassed when zerolog sink is set")
	}
}

func TestLogSumExp(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   float64
	}{
		{name: "single value", values: []float64{2.5}, want: 2.5},
		{name: "two equal values", values: []float64{0, 0}, want: math.Log(2)},
		{name: "large values do not overflow", values: []float64{1000, 1000}, want: 1000 + math.Log(2)},
		{name: "all negative infinity", values: []float64{math.Inf(-1), math.Inf(-1)}, want: math.Inf(-1)},
		{name: "empty", values: nil, want: math.Inf(-1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LogSumExp(tt.values)
			if math.IsInf(tt.want, -1) {
				if !math.IsInf(got, -1) {
					t.Errorf("LogSumExp(%v) = %v, want -Inf", tt.values, got)
				}
				return
			}
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("LogSumExp(%v) = %v, want %v", tt.values, got, tt.want)
			}
		})
	}
}

func TestCheckNumericalStability(t *testing.T) {
	if err := CheckNumericalStability("softmax", []float64{0.1, 0.9}); err != nil {
		t.Errorf("finite values should pass: %v", err)
	}

	err := CheckNumericalStability("softmax", []float64{0.1, math.NaN()})
	if err == nil {
		t.Fatal("NaN should be detected")
	}
	var nie *NumericalInstabilityError
	if !As(err, &nie) {
		t.Errorf("expected NumericalInstabilityError, got %T", err)
	}

	if err := CheckScalar("log_posterior", math.Inf(1)); err == nil {
		t.Error("Inf should be detected")
	}
}
