package session

// Engine is the surface the serving layer depends on. Session implements it
// against onnxruntime; MockEngine implements it without the shared library.
type Engine interface {
	// Infer runs one forward pass on a flat NCHW tensor. See Session.Infer
	// for the validation and failure contract.
	Infer(data []float32, shape []int64) ([]float32, error)

	// IsLoaded reports whether the engine can serve Infer calls.
	IsLoaded() bool

	// InputWidth and InputHeight are the spatial dimensions of the model's
	// input signature, fixed at load time.
	InputWidth() int
	InputHeight() int

	// OutputShape is the model's declared output shape.
	OutputShape() []int64

	// Close releases backend resources. The engine reports not loaded
	// afterwards.
	Close() error
}

var _ Engine = (*Session)(nil)
