package session

import (
	"errors"
	"os"
	"sync"
	"testing"
)

func TestMockInfer(t *testing.T) {
	mock := NewMock()

	data := make([]float32, 1*2*2)
	out, err := mock.Infer(data, []int64{1, 1, 2, 2})
	if err != nil {
		t.Fatalf("Infer failed: %v", err)
	}

	expected := []float32{0.1, 0.2, 0.3}
	if len(out) != len(expected) {
		t.Fatalf("Expected %d outputs, got %d", len(expected), len(out))
	}
	for i, v := range expected {
		if out[i] != v {
			t.Errorf("Output[%d] = %f, expected %f", i, out[i], v)
		}
	}

	if mock.CallCount != 1 {
		t.Errorf("Expected CallCount=1, got %d", mock.CallCount)
	}
}

func TestMockInferCustomOutput(t *testing.T) {
	custom := []float32{1.0, 2.0, 3.0, 4.0, 5.0}
	mock := NewMockWithOutput(custom)

	out, err := mock.Infer(make([]float32, 4), []int64{1, 1, 2, 2})
	if err != nil {
		t.Fatalf("Infer failed: %v", err)
	}
	if len(out) != len(custom) {
		t.Fatalf("Expected %d outputs, got %d", len(custom), len(out))
	}
	for i, v := range custom {
		if out[i] != v {
			t.Errorf("Output[%d] = %f, expected %f", i, out[i], v)
		}
	}

	shape := mock.OutputShape()
	if len(shape) != 2 || shape[0] != 1 || shape[1] != 5 {
		t.Errorf("Expected output shape [1 5], got %v", shape)
	}
}

func TestMockInferBackendError(t *testing.T) {
	mock := NewMock()
	mock.SetError("unsupported operator")

	_, err := mock.Infer(make([]float32, 4), []int64{1, 1, 2, 2})
	if err == nil {
		t.Fatal("Expected error, got nil")
	}
	if !errors.Is(err, ErrInferenceFailed) {
		t.Errorf("Expected ErrInferenceFailed, got: %v", err)
	}

	mock.ClearError()
	if _, err := mock.Infer(make([]float32, 4), []int64{1, 1, 2, 2}); err != nil {
		t.Errorf("Expected success after ClearError, got: %v", err)
	}
}

func TestInferValidation(t *testing.T) {
	cases := []struct {
		name  string
		data  []float32
		shape []int64
	}{
		{"rank 3", make([]float32, 12), []int64{3, 2, 2}},
		{"rank 5", make([]float32, 12), []int64{1, 3, 2, 2, 1}},
		{"batch not 1", make([]float32, 24), []int64{2, 3, 2, 2}},
		{"zero dim", make([]float32, 0), []int64{1, 3, 0, 2}},
		{"negative dim", make([]float32, 12), []int64{1, 3, -2, 2}},
		{"count mismatch", make([]float32, 100), []int64{1, 3, 224, 224}},
		{"empty data", nil, []int64{1, 3, 2, 2}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mock := NewMock()
			_, err := mock.Infer(tc.data, tc.shape)
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("Expected ErrInvalidInput, got: %v", err)
			}
		})
	}
}

func TestClosedEngineReturnsNotLoaded(t *testing.T) {
	mock := NewMock()
	if !mock.IsLoaded() {
		t.Fatal("Expected new mock to be loaded")
	}

	if err := mock.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if mock.IsLoaded() {
		t.Error("Expected IsLoaded=false after Close")
	}

	// Any input, including an otherwise invalid one, reports NotLoaded.
	_, err := mock.Infer(make([]float32, 4), []int64{1, 1, 2, 2})
	if !errors.Is(err, ErrNotLoaded) {
		t.Errorf("Expected ErrNotLoaded, got: %v", err)
	}
	_, err = mock.Infer(nil, []int64{7})
	if !errors.Is(err, ErrNotLoaded) {
		t.Errorf("Expected ErrNotLoaded for invalid input too, got: %v", err)
	}
}

func TestGeometryIsStable(t *testing.T) {
	mock := NewMock()
	for i := 0; i < 10; i++ {
		if w := mock.InputWidth(); w != 224 {
			t.Fatalf("InputWidth changed to %d on read %d", w, i)
		}
		if h := mock.InputHeight(); h != 224 {
			t.Fatalf("InputHeight changed to %d on read %d", h, i)
		}
	}
}

func TestConcurrentInferOnOneEngine(t *testing.T) {
	mock := NewMock()

	const goroutines = 8
	const callsEach = 25

	// One engine shared across goroutines; calls serialize, so under the
	// race detector this stays clean and no increment is lost.
	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < callsEach; i++ {
				if _, err := mock.Infer(make([]float32, 4), []int64{1, 1, 2, 2}); err != nil {
					t.Errorf("Infer failed: %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()

	if mock.CallCount != goroutines*callsEach {
		t.Errorf("Expected CallCount=%d, got %d", goroutines*callsEach, mock.CallCount)
	}
}

func TestLoadMissingFile(t *testing.T) {
	s, err := Load("testdata/missing/file.onnx", Options{})
	if err == nil {
		s.Close()
		t.Fatal("Expected error for missing model file")
	}
	if !errors.Is(err, ErrLoadFailed) {
		t.Errorf("Expected ErrLoadFailed, got: %v", err)
	}
	if s != nil {
		t.Error("Expected no session on load failure")
	}
}

func TestLoadRealModel(t *testing.T) {
	// Needs both a model in testdata and the onnxruntime shared library.
	modelPath := "testdata/model.onnx"
	if _, err := os.Stat(modelPath); os.IsNotExist(err) {
		t.Skip("Skipping: testdata/model.onnx not found")
	}

	s, err := Load(modelPath, Options{})
	if err != nil {
		t.Skipf("Skipping: %v", err)
	}
	defer s.Close()

	if !s.IsLoaded() {
		t.Error("Expected IsLoaded=true after successful Load")
	}
	if s.InputWidth() <= 0 || s.InputHeight() <= 0 {
		t.Errorf("Expected positive geometry, got %dx%d", s.InputWidth(), s.InputHeight())
	}

	n := int64(3) * int64(s.InputHeight()) * int64(s.InputWidth())
	data := make([]float32, n)
	out, err := s.Infer(data, []int64{1, 3, int64(s.InputHeight()), int64(s.InputWidth())})
	if err != nil {
		t.Fatalf("Infer failed: %v", err)
	}

	var want int64 = 1
	for _, d := range s.OutputShape() {
		want *= d
	}
	if int64(len(out)) != want {
		t.Errorf("Expected %d output elements, got %d", want, len(out))
	}
}
