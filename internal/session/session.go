// Package session binds one loaded ONNX model to a handle exposing load,
// infer, and introspection of the model's declared input geometry.
package session

import (
	"fmt"
	"os"
	"sync"

	ort "github.com/yalue/onnxruntime_go"
)

// Options tunes how a model is loaded. The zero value works for models with
// fully static [1, C, H, W] input signatures and any tensor names.
type Options struct {
	// InputName and OutputName select tensors by name. Empty means the
	// first input/output declared by the model.
	InputName  string
	OutputName string

	// InputHeight and InputWidth resolve symbolic (-1) spatial dimensions
	// in the model signature. Ignored when the signature is static.
	InputHeight int64
	InputWidth  int64

	// LibraryPath points at the onnxruntime shared library. Empty leaves
	// the runtime's default lookup in place.
	LibraryPath string
}

// Session is a handle bound to one loaded model. Infer calls are serialized
// per handle; the handle itself may be shared across goroutines. Close is
// the only exit from the loaded state.
type Session struct {
	mu          sync.Mutex
	sess        *ort.DynamicAdvancedSession
	modelPath   string
	inputName   string
	outputName  string
	inputShape  ort.Shape
	outputShape ort.Shape
	loaded      bool
}

// Load reads the model at modelPath, resolves its input/output signature,
// and creates a backend session. Every failure, from a missing file to a
// backend initialization error, comes back as ErrLoadFailed with a
// diagnostic, and no session object exists.
func Load(modelPath string, opts Options) (*Session, error) {
	if opts.LibraryPath != "" && !ort.IsInitialized() {
		ort.SetSharedLibraryPath(opts.LibraryPath)
	}
	if !ort.IsInitialized() {
		if err := ort.InitializeEnvironment(); err != nil {
			return nil, fmt.Errorf("%w: initializing onnxruntime: %v", ErrLoadFailed, err)
		}
	}

	if _, err := os.Stat(modelPath); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadFailed, err)
	}

	inputs, outputs, err := ort.GetInputOutputInfo(modelPath)
	if err != nil {
		return nil, fmt.Errorf("%w: reading model signature: %v", ErrLoadFailed, err)
	}
	if len(inputs) == 0 || len(outputs) == 0 {
		return nil, fmt.Errorf("%w: model declares %d inputs and %d outputs",
			ErrLoadFailed, len(inputs), len(outputs))
	}

	input, err := pickTensor(inputs, opts.InputName)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadFailed, err)
	}
	output, err := pickTensor(outputs, opts.OutputName)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadFailed, err)
	}

	inputShape, err := resolveInputShape(input, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadFailed, err)
	}
	outputShape, err := resolveOutputShape(output)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadFailed, err)
	}

	sess, err := ort.NewDynamicAdvancedSession(
		modelPath,
		[]string{input.Name},
		[]string{output.Name},
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: creating backend session: %v", ErrLoadFailed, err)
	}

	return &Session{
		sess:        sess,
		modelPath:   modelPath,
		inputName:   input.Name,
		outputName:  output.Name,
		inputShape:  inputShape,
		outputShape: outputShape,
		loaded:      true,
	}, nil
}

// Infer runs one forward pass. The shape must be [1, C, H, W] and data must
// hold exactly C*H*W values; both are checked before the backend is touched.
// The returned slice is owned by the caller. A failed call leaves the
// session in its prior usable state.
func (s *Session) Infer(data []float32, shape []int64) ([]float32, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded || s.sess == nil {
		return nil, fmt.Errorf("%w: load a model before calling Infer", ErrNotLoaded)
	}
	if err := validateInput(data, shape); err != nil {
		return nil, err
	}

	inputTensor, err := ort.NewTensor(ort.NewShape(shape...), data)
	if err != nil {
		return nil, fmt.Errorf("%w: creating input tensor: %v", ErrInferenceFailed, err)
	}
	defer inputTensor.Destroy()

	outputTensor, err := ort.NewEmptyTensor[float32](s.outputShape)
	if err != nil {
		return nil, fmt.Errorf("%w: creating output tensor: %v", ErrInferenceFailed, err)
	}
	defer outputTensor.Destroy()

	err = s.sess.Run(
		[]ort.ArbitraryTensor{inputTensor},
		[]ort.ArbitraryTensor{outputTensor},
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInferenceFailed, err)
	}

	// The tensor buffer dies with the tensor; hand back a copy.
	src := outputTensor.GetData()
	out := make([]float32, len(src))
	copy(out, src)
	return out, nil
}

// IsLoaded reports whether the session holds a usable backend session.
func (s *Session) IsLoaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded
}

// InputWidth returns the W dimension of the model's input signature.
func (s *Session) InputWidth() int {
	return int(s.inputShape[3])
}

// InputHeight returns the H dimension of the model's input signature.
func (s *Session) InputHeight() int {
	return int(s.inputShape[2])
}

// ModelPath returns the path the model was loaded from.
func (s *Session) ModelPath() string {
	return s.modelPath
}

// OutputShape returns the model's declared output shape.
func (s *Session) OutputShape() []int64 {
	out := make([]int64, len(s.outputShape))
	copy(out, s.outputShape)
	return out
}

// Close destroys the backend session. The handle stays valid but reports
// NotLoaded from then on; there is no reload. The onnxruntime environment
// is process-global and is left initialized for other sessions.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sess == nil {
		return nil
	}
	err := s.sess.Destroy()
	s.sess = nil
	s.loaded = false
	if err != nil {
		return fmt.Errorf("destroying session: %w", err)
	}
	return nil
}

func validateInput(data []float32, shape []int64) error {
	if len(shape) != 4 {
		return fmt.Errorf("%w: shape must have rank 4 [1, C, H, W], got rank %d",
			ErrInvalidInput, len(shape))
	}
	if shape[0] != 1 {
		return fmt.Errorf("%w: batch dimension must be 1, got %d", ErrInvalidInput, shape[0])
	}
	for i, d := range shape {
		if d <= 0 {
			return fmt.Errorf("%w: shape dimension %d is %d, want positive", ErrInvalidInput, i, d)
		}
	}
	want := shape[1] * shape[2] * shape[3]
	if int64(len(data)) != want {
		return fmt.Errorf("%w: data has %d elements, shape %v requires %d",
			ErrInvalidInput, len(data), shape, want)
	}
	return nil
}

func pickTensor(infos []ort.InputOutputInfo, name string) (ort.InputOutputInfo, error) {
	if name == "" {
		return infos[0], nil
	}
	for _, info := range infos {
		if info.Name == name {
			return info, nil
		}
	}
	return ort.InputOutputInfo{}, fmt.Errorf("model has no tensor named %q", name)
}

// resolveInputShape turns the declared input signature into a concrete
// [1, C, H, W] shape. Symbolic batch collapses to 1; symbolic H/W resolve
// from the options or fail the load, so a loaded session always advertises
// positive geometry.
func resolveInputShape(info ort.InputOutputInfo, opts Options) (ort.Shape, error) {
	dims := info.Dimensions
	if len(dims) != 4 {
		return nil, fmt.Errorf("input %q has rank %d, want 4 (NCHW)", info.Name, len(dims))
	}

	resolved := ort.NewShape(dims...)
	if resolved[0] <= 0 {
		resolved[0] = 1
	}
	if resolved[1] <= 0 {
		return nil, fmt.Errorf("input %q has a dynamic channel dimension", info.Name)
	}
	if resolved[2] <= 0 {
		if opts.InputHeight <= 0 {
			return nil, fmt.Errorf("input %q has dynamic height and no input_height override", info.Name)
		}
		resolved[2] = opts.InputHeight
	}
	if resolved[3] <= 0 {
		if opts.InputWidth <= 0 {
			return nil, fmt.Errorf("input %q has dynamic width and no input_width override", info.Name)
		}
		resolved[3] = opts.InputWidth
	}
	return resolved, nil
}

// resolveOutputShape concretizes the declared output shape so the output
// tensor can be preallocated. Only a dynamic batch is tolerated.
func resolveOutputShape(info ort.InputOutputInfo) (ort.Shape, error) {
	if len(info.Dimensions) == 0 {
		return nil, fmt.Errorf("output %q declares no dimensions", info.Name)
	}
	resolved := ort.NewShape(info.Dimensions...)
	if resolved[0] <= 0 {
		resolved[0] = 1
	}
	for i, d := range resolved {
		if d <= 0 {
			return nil, fmt.Errorf("output %q has dynamic dimension %d", info.Name, i)
		}
	}
	return resolved, nil
}
