package cache

import (
	"strings"
	"testing"
)

func TestFloatCodecRoundTrip(t *testing.T) {
	values := []float32{0, 1.5, -3.25, 1e-7, 3.4e38}

	decoded, err := decodeFloats(encodeFloats(values))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(decoded) != len(values) {
		t.Fatalf("Expected %d values, got %d", len(values), len(decoded))
	}
	for i, v := range values {
		if decoded[i] != v {
			t.Errorf("Value[%d] = %f, expected %f", i, decoded[i], v)
		}
	}
}

func TestDecodeRejectsTruncatedPayload(t *testing.T) {
	if _, err := decodeFloats([]byte{0x01, 0x02, 0x03}); err == nil {
		t.Error("Expected error for payload not divisible by 4")
	}
}

func TestKeyIncludesShape(t *testing.T) {
	data := []float32{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1.0, 1.1, 1.2}

	a := Key("model.onnx", []int64{1, 3, 2, 2}, data)
	b := Key("model.onnx", []int64{1, 2, 3, 2}, data)
	if a == b {
		t.Error("Expected different keys for same data under different shapes")
	}

	if !strings.HasPrefix(a, "infer:") {
		t.Errorf("Expected infer: prefix, got %s", a)
	}
}

func TestKeyIncludesModel(t *testing.T) {
	// Two models behind one Redis must never serve each other's results,
	// even for identical inputs.
	shape := []int64{1, 1, 2, 2}
	data := []float32{0.1, 0.2, 0.3, 0.4}

	a := Key("models/squeeze.onnx", shape, data)
	b := Key("models/resnet.onnx", shape, data)
	if a == b {
		t.Error("Expected different keys for the same input under different models")
	}
}

func TestKeyIsDeterministic(t *testing.T) {
	shape := []int64{1, 3, 2, 2}
	data := make([]float32, 12)

	if Key("model.onnx", shape, data) != Key("model.onnx", shape, data) {
		t.Error("Expected identical keys for identical inputs")
	}
}

func TestNilCacheDegradesToMiss(t *testing.T) {
	var c *Cache
	out, ok, err := c.GetResult(nil, "infer:0")
	if err != nil || ok || out != nil {
		t.Errorf("Expected nil cache to report a clean miss, got (%v, %v, %v)", out, ok, err)
	}
}
