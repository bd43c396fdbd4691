// cmd/server/main.go
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"sessiond/internal/cache"
	"sessiond/internal/config"
	"sessiond/internal/handler"
	"sessiond/internal/logger"
	"sessiond/internal/metrics"
	"sessiond/internal/middleware"
	"sessiond/internal/session"
	"sessiond/internal/status"
	pb "sessiond/proto/runnerpb"
)

const serviceName = "model-runner"

func main() {
	// Parse command-line flags
	port := flag.Int("port", 0, "gRPC server port (default: 50051)")
	modelPath := flag.String("model", "", "Path to ONNX model file")
	redisAddr := flag.String("redis", "", "Redis address for the result cache (default: disabled)")
	metricsPort := flag.Int("metrics", 0, "HTTP sidecar port for metrics and health (default: 9100)")
	configFile := flag.String("config", "", "Path to config file (optional)")
	useMock := flag.Bool("mock", false, "Use mock inference engine (for testing)")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Flags win over everything else
	if *port > 0 {
		cfg.Port = *port
	}
	if *modelPath != "" {
		cfg.Model = *modelPath
	}
	if *redisAddr != "" {
		cfg.Redis = *redisAddr
	}
	if *metricsPort > 0 {
		cfg.MetricsPort = *metricsPort
	}
	if *useMock {
		cfg.UseMock = true
	}

	log := logger.New(cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	log.Infof("Starting %s", serviceName)
	log.Infof("Configuration: port=%d, model=%s, redis=%s, metrics=%d, otel=%v, mock=%v",
		cfg.Port, cfg.Model, cfg.Redis, cfg.MetricsPort, cfg.OTELEnabled, cfg.UseMock)

	// Initialize OpenTelemetry tracer
	var tracerShutdown func(context.Context) error
	if cfg.OTELEnabled {
		tracerShutdown, err = initTracer(cfg.OTELEndpoint, log)
		if err != nil {
			log.Warnf("Failed to initialize tracer: %v", err)
		} else {
			log.Infof("OpenTelemetry tracing enabled (endpoint: %s)", cfg.OTELEndpoint)
		}
	}

	// Load inference engine
	var engine session.Engine
	if cfg.UseMock {
		log.Info("Using mock inference engine")
		engine = session.NewMock()
	} else {
		log.Infof("Loading ONNX model from %s", cfg.Model)
		engine, err = session.Load(cfg.Model, session.Options{
			InputName:   cfg.InputName,
			OutputName:  cfg.OutputName,
			InputHeight: cfg.InputHeight,
			InputWidth:  cfg.InputWidth,
			LibraryPath: cfg.ONNXLib,
		})
		if err != nil {
			log.Fatalf("Failed to load model: %v", err)
		}
		log.Infof("Model loaded: input %dx%d", engine.InputWidth(), engine.InputHeight())
	}
	defer engine.Close()

	// Result cache (optional)
	var cacheClient *cache.Cache
	if cfg.Redis != "" {
		log.Infof("Connecting to Redis at %s", cfg.Redis)
		cacheClient, err = cache.New(cfg.Redis, cfg.CacheTTL)
		if err != nil {
			log.Warnf("Failed to connect to Redis: %v (continuing without cache)", err)
			cacheClient = nil
		} else {
			defer cacheClient.Close()
			log.Info("Redis connected")
		}
	}

	// Create gRPC health server
	healthServer := health.NewServer()

	// Start HTTP sidecar for metrics, health, and process status
	httpServer := startHTTPServer(cfg.MetricsPort, healthServer, log)

	// Build interceptor chain
	interceptors := []grpc.UnaryServerInterceptor{
		middleware.UnaryRequestIDInterceptor(),
		middleware.UnaryMetricsInterceptor(),
	}
	if cfg.OTELEnabled {
		interceptors = append(interceptors, otelgrpc.UnaryServerInterceptor())
	}

	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(interceptors...),
	)

	// Register ModelRunner service
	h := handler.New(engine, cacheClient, log, cfg.Model)
	pb.RegisterModelRunnerServer(grpcServer, h)

	// Register health service
	healthpb.RegisterHealthServer(grpcServer, healthServer)

	// Enable server reflection for debugging
	reflection.Register(grpcServer)

	addr := fmt.Sprintf(":%d", cfg.Port)
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatalf("Failed to listen on %s: %v", addr, err)
	}

	healthServer.SetServingStatus(serviceName, healthpb.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	metrics.SetHealthy()

	// Graceful shutdown on SIGINT/SIGTERM
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		log.Infof("Received signal %v, shutting down gracefully", sig)

		healthServer.SetServingStatus(serviceName, healthpb.HealthCheckResponse_NOT_SERVING)
		healthServer.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
		metrics.SetUnhealthy()

		// Give load balancers time to notice the health flip
		time.Sleep(5 * time.Second)

		grpcServer.GracefulStop()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		httpServer.Shutdown(ctx)

		if tracerShutdown != nil {
			tracerShutdown(ctx)
		}
	}()

	log.Infof("gRPC server listening on %s", addr)

	if err := grpcServer.Serve(lis); err != nil {
		log.Fatalf("Failed to serve: %v", err)
	}

	log.Info("Server shutdown complete")
}

func startHTTPServer(port int, healthServer *health.Server, log *logger.Logger) *http.Server {
	r := mux.NewRouter()

	// Prometheus metrics endpoint
	r.Handle("/metrics", promhttp.Handler())

	healthz := func(w http.ResponseWriter, req *http.Request) {
		resp, err := healthServer.Check(req.Context(), &healthpb.HealthCheckRequest{})
		if err != nil || resp.Status != healthpb.HealthCheckResponse_SERVING {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("Service Unavailable"))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}
	r.HandleFunc("/healthz", healthz).Methods(http.MethodGet)
	r.HandleFunc("/readyz", healthz).Methods(http.MethodGet)

	// Process resource snapshot
	r.HandleFunc("/statusz", func(w http.ResponseWriter, req *http.Request) {
		snap, err := status.Collect()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(snap)
	}).Methods(http.MethodGet)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: r,
	}

	go func() {
		log.Infof("HTTP sidecar listening on %s (metrics, health, status)", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Errorf("HTTP server error: %v", err)
		}
	}()

	return server
}

func initTracer(endpoint string, log *logger.Logger) (func(context.Context) error, error) {
	if endpoint != "" {
		// Collector deployments would swap in otlptracegrpc here.
		log.Infof("Note: using stdout trace exporter (OTLP endpoint: %s)", endpoint)
	}
	exporter, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
	if err != nil {
		return nil, fmt.Errorf("failed to create trace exporter: %w", err)
	}

	res, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion("1.0.0"),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)
	otel.SetTracerProvider(tp)

	return tp.Shutdown, nil
}
