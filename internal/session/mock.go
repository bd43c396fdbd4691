package session

import (
	"fmt"
	"sync"
)

// MockEngine is a deterministic Engine for tests and the -mock flag. It
// enforces the same validation contract as Session, including safe use
// from multiple goroutines, without needing the onnxruntime shared
// library.
type MockEngine struct {
	mu sync.Mutex


	// Output is returned from every successful Infer call.
	Output []float32
	// Width and Height are reported as the input geometry.
	Width  int
	Height int
	// FailMessage, when set, makes Infer fail with ErrInferenceFailed.
	FailMessage string
	// CallCount counts Infer invocations, including failed ones.
	CallCount int

	closed bool
}

// NewMock returns a loaded mock with a 224x224 input signature and a fixed
// three-element output.
func NewMock() *MockEngine {
	return &MockEngine{
		Output: []float32{0.1, 0.2, 0.3},
		Width:  224,
		Height: 224,
	}
}

// NewMockWithOutput returns a loaded mock producing the given output.
func NewMockWithOutput(output []float32) *MockEngine {
	m := NewMock()
	m.Output = output
	return m
}

func (m *MockEngine) Infer(data []float32, shape []int64) ([]float32, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.CallCount++

	if m.closed {
		return nil, fmt.Errorf("%w: mock engine closed", ErrNotLoaded)
	}
	if err := validateInput(data, shape); err != nil {
		return nil, err
	}
	if m.FailMessage != "" {
		return nil, fmt.Errorf("%w: %s", ErrInferenceFailed, m.FailMessage)
	}

	out := make([]float32, len(m.Output))
	copy(out, m.Output)
	return out, nil
}

func (m *MockEngine) IsLoaded() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return !m.closed
}

func (m *MockEngine) InputWidth() int  { return m.Width }
func (m *MockEngine) InputHeight() int { return m.Height }

func (m *MockEngine) OutputShape() []int64 {
	return []int64{1, int64(len(m.Output))}
}

func (m *MockEngine) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// SetError makes subsequent Infer calls fail with ErrInferenceFailed.
func (m *MockEngine) SetError(msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FailMessage = msg
}

// ClearError restores successful Infer behavior.
func (m *MockEngine) ClearError() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FailMessage = ""
}

var _ Engine = (*MockEngine)(nil)
