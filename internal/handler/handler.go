// internal/handler/handler.go
package handler

import (
	"context"
	"time"

	"sessiond/internal/cache"
	"sessiond/internal/logger"
	"sessiond/internal/metrics"
	"sessiond/internal/middleware"
	"sessiond/internal/session"
	pb "sessiond/proto/runnerpb"
)

// Handler implements the ModelRunnerServer interface over a session.Engine.
// The cache is optional; a nil cache means every call reaches the backend.
type Handler struct {
	pb.UnimplementedModelRunnerServer
	engine    session.Engine
	cache     *cache.Cache
	log       *logger.Logger
	modelPath string
}

// New creates a Handler serving the given engine. log must not be nil.
func New(engine session.Engine, cache *cache.Cache, log *logger.Logger, modelPath string) *Handler {
	return &Handler{
		engine:    engine,
		cache:     cache,
		log:       log,
		modelPath: modelPath,
	}
}

// Infer runs one inference call. Validation failures map to InvalidArgument,
// an unloaded engine to FailedPrecondition, and backend errors to Internal;
// none of them disturb the engine.
func (h *Handler) Infer(ctx context.Context, req *pb.InferRequest) (*pb.InferResponse, error) {
	start := time.Now()

	requestID := middleware.GetRequestID(ctx)
	if requestID == "" {
		requestID = "unknown"
	}

	if req == nil {
		return nil, invalidArgumentError("request cannot be nil")
	}
	if h.engine == nil {
		return nil, failedPreconditionError("inference engine not initialized")
	}
	if !h.engine.IsLoaded() {
		return nil, failedPreconditionError("model not loaded")
	}

	metrics.RecordInputElements(len(req.Data))

	// Result cache is consulted only for requests a loaded engine could
	// serve; cache trouble degrades to recomputation.
	var key string
	if h.cache != nil {
		key = cache.Key(h.modelPath, req.Shape, req.Data)
		cached, ok, err := h.cache.GetResult(ctx, key)
		if err != nil {
			h.log.WithRequestID(requestID).Warnf("cache lookup failed: %v", err)
		}
		if ok {
			metrics.RecordCacheHit()
			return &pb.InferResponse{
				Output: cached,
				Shape:  h.engine.OutputShape(),
				Cached: true,
			}, nil
		}
		metrics.RecordCacheMiss()
	}

	inferStart := time.Now()
	output, err := h.engine.Infer(req.Data, req.Shape)
	inferDuration := time.Since(inferStart)
	metrics.RecordInferenceLatency(inferDuration.Seconds())

	if err != nil {
		h.log.WithRequestID(requestID).Errorf("inference error: %v", err)
		return nil, grpcError(err)
	}

	if h.cache != nil {
		if err := h.cache.SetResult(ctx, key, output); err != nil {
			h.log.WithRequestID(requestID).Warnf("cache store failed: %v", err)
		}
	}

	h.log.WithRequestID(requestID).Debugf(
		"Infer: elements=%d inference_ms=%.2f total_ms=%.2f",
		len(req.Data),
		float64(inferDuration.Microseconds())/1000.0,
		float64(time.Since(start).Microseconds())/1000.0,
	)

	return &pb.InferResponse{
		Output: output,
		Shape:  h.engine.OutputShape(),
	}, nil
}

// ModelInfo reports the load state and the input geometry read from the
// model signature. It never fails on an unloaded engine.
func (h *Handler) ModelInfo(ctx context.Context, req *pb.ModelInfoRequest) (*pb.ModelInfoResponse, error) {
	if h.engine == nil {
		return &pb.ModelInfoResponse{Loaded: false, ModelPath: h.modelPath}, nil
	}

	return &pb.ModelInfoResponse{
		Loaded:      h.engine.IsLoaded(),
		InputWidth:  int32(h.engine.InputWidth()),
		InputHeight: int32(h.engine.InputHeight()),
		ModelPath:   h.modelPath,
	}, nil
}
