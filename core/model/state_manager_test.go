package model

import (
	"testing"

	"github.com/textlearn/textlearn/pkg/errors"
)

func TestStateManagerLifecycle(t *testing.T) {
	s := NewStateManager()

	if s.IsFitted() {
		t.Error("new state manager should not be fitted")
	}

	if err := s.RequireFitted("MultinomialNB", "Predict"); err == nil {
		t.Error("RequireFitted should fail before SetFitted")
	} else {
		var nfe *errors.NotFittedError
		if !errors.As(err, &nfe) {
			t.Errorf("expected NotFittedError, got %T", err)
		}
	}

	s.SetDimensions(3, 10)
	s.SetFitted()

	if !s.IsFitted() {
		t.Error("should be fitted after SetFitted")
	}
	if err := s.RequireFitted("MultinomialNB", "Predict"); err != nil {
		t.Errorf("RequireFitted should pass after SetFitted: %v", err)
	}

	nFeatures, nSamples := s.GetDimensions()
	if nFeatures != 3 || nSamples != 10 {
		t.Errorf("dimensions = (%d, %d), want (3, 10)", nFeatures, nSamples)
	}

	s.Reset()
	if s.IsFitted() {
		t.Error("should not be fitted after Reset")
	}
	nFeatures, nSamples = s.GetDimensions()
	if nFeatures != 0 || nSamples != 0 {
		t.Errorf("dimensions after Reset = (%d, %d), want (0, 0)", nFeatures, nSamples)
	}
}
