package stats

import "testing"

func TestMeanAndMedian(t *testing.T) {
	values := []float64{1, 2, 3, 4}
	if got := Mean(values); got != 2.5 {
		t.Fatalf("expected mean 2.5, got %v", got)
	}
	if got := Median(values); got != 2.5 {
		t.Fatalf("expected median 2.5, got %v", got)
	}
	if got := Median([]float64{3, 1, 2}); got != 2 {
		t.Fatalf("expected median 2, got %v", got)
	}
}

func TestEmptyInputsYieldZero(t *testing.T) {
	if got := Mean(nil); got != 0 {
		t.Fatalf("expected 0 mean, got %v", got)
	}
	if got := Median(nil); got != 0 {
		t.Fatalf("expected 0 median, got %v", got)
	}
	if got := SampleStdDev(nil); got != 0 {
		t.Fatalf("expected 0 stdev, got %v", got)
	}
	if got := Min(nil); got != 0 {
		t.Fatalf("expected 0 min, got %v", got)
	}
	if got := Max(nil); got != 0 {
		t.Fatalf("expected 0 max, got %v", got)
	}
}

func TestSampleStdDev(t *testing.T) {
	// Sample (n-1) deviation of {2,4,4,4,5,5,7,9} is sqrt(32/7).
	got := Round(SampleStdDev([]float64{2, 4, 4, 4, 5, 5, 7, 9}), 4)
	if got != 2.1381 {
		t.Fatalf("expected 2.1381, got %v", got)
	}
}

func TestSampleStdDevSingleValueIsZero(t *testing.T) {
	if got := SampleStdDev([]float64{42}); got != 0 {
		t.Fatalf("expected 0 for single value, got %v", got)
	}
}

func TestRound(t *testing.T) {
	if got := Round(3.14159, 2); got != 3.14 {
		t.Fatalf("expected 3.14, got %v", got)
	}
	if got := Round(0.12345, 4); got != 0.1235 {
		t.Fatalf("expected 0.1235, got %v", got)
	}
	if got := Round(-1.005, 1); got != -1.0 {
		t.Fatalf("expected -1.0, got %v", got)
	}
}
