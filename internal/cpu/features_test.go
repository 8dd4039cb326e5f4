package cpu

import "testing"

func TestDetectFeatures(t *testing.T) {
	t.Parallel()

	f := DetectFeatures()

	if f.Architecture == "" {
		t.Error("Architecture should be populated")
	}

	if f.ForceGeneric {
		t.Error("ForceGeneric must default to false")
	}
}

func TestHasWideVectors(t *testing.T) {
	t.Parallel()

	f := Features{HasAVX2: true}
	if !f.HasWideVectors() {
		t.Error("AVX2 implies wide vectors")
	}

	f.ForceGeneric = true
	if f.HasWideVectors() {
		t.Error("ForceGeneric disables wide vectors")
	}

	if (Features{HasSSE2: true}).HasWideVectors() {
		t.Error("SSE2 alone is not wide")
	}
}
