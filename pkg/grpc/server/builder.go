package server

import (
	"context"
	"fmt"
	"net"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	health "google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

type Option func(*Options)

type Options struct {
	port              int
	logger            *zap.Logger
	reflection        bool
	unaryInterceptors []grpc.UnaryServerInterceptor
	enableLogging     bool
}

func WithPort(port int) Option {
	return func(o *Options) { o.port = port }
}

func WithLogger(logger *zap.Logger) Option {
	return func(o *Options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithReflection toggles the gRPC reflection service; keep it off
// outside development environments.
func WithReflection(enabled bool) Option {
	return func(o *Options) { o.reflection = enabled }
}

func WithUnaryInterceptors(interceptors ...grpc.UnaryServerInterceptor) Option {
	return func(o *Options) {
		o.unaryInterceptors = append(o.unaryInterceptors, interceptors...)
	}
}

// WithLogging prepends the request logging interceptor to the chain.
func WithLogging(enabled bool) Option {
	return func(o *Options) { o.enableLogging = enabled }
}

// Server wraps a grpc.Server together with its listener and the
// standard health service, which reports SERVING from construction
// until Shutdown flips it.
type Server struct {
	grpcServer   *grpc.Server
	lis          net.Listener
	logger       *zap.Logger
	healthServer *health.Server
}

// New binds the listener and assembles the server. The port is taken
// as-is from the options, so a bad value fails here rather than at
// Start.
func New(opts ...Option) (*Server, error) {
	options := &Options{
		port:   50051,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(options)
	}

	if options.port < 1 || options.port > 65535 {
		return nil, fmt.Errorf("port %d out of range 1..65535", options.port)
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", options.port))
	if err != nil {
		return nil, fmt.Errorf("listen on :%d: %w", options.port, err)
	}

	var interceptors []grpc.UnaryServerInterceptor
	if options.enableLogging {
		interceptors = append(interceptors, LoggingInterceptor(options.logger))
	}
	interceptors = append(interceptors, options.unaryInterceptors...)

	var serverOpts []grpc.ServerOption
	if len(interceptors) > 0 {
		serverOpts = append(serverOpts, grpc.ChainUnaryInterceptor(interceptors...))
	}

	grpcServer := grpc.NewServer(serverOpts...)
	if options.reflection {
		reflection.Register(grpcServer)
	}

	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	return &Server{
		grpcServer:   grpcServer,
		lis:          lis,
		logger:       options.logger.Named("grpc-server"),
		healthServer: healthServer,
	}, nil
}

// RegisterService hands the raw grpc.Server to the caller's
// registration function.
func (s *Server) RegisterService(registerFunc func(s *grpc.Server)) {
	registerFunc(s.grpcServer)
}

// RegisterServiceWithHealth registers a service and marks it SERVING
// under its own name, so per-service health checks work alongside the
// blanket one.
func (s *Server) RegisterServiceWithHealth(serviceName string, registerFunc func(s *grpc.Server)) {
	registerFunc(s.grpcServer)

	if s.healthServer != nil && serviceName != "" {
		s.healthServer.SetServingStatus(serviceName, healthpb.HealthCheckResponse_SERVING)
		s.logger.Info("service registered", zap.String("service", serviceName))
	}
}

// SetServiceHealth updates one service's reported health status.
func (s *Server) SetServiceHealth(serviceName string, status healthpb.HealthCheckResponse_ServingStatus) {
	if s.healthServer == nil {
		return
	}
	s.healthServer.SetServingStatus(serviceName, status)
	s.logger.Info("service health updated",
		zap.String("service", serviceName),
		zap.String("status", status.String()))
}

// Start begins serving on the bound listener and returns immediately.
func (s *Server) Start() {
	s.logger.Info("serving", zap.String("addr", s.lis.Addr().String()))

	go func() {
		if err := s.grpcServer.Serve(s.lis); err != nil {
			s.logger.Error("serve stopped", zap.Error(err))
		}
	}()
}

// Shutdown drains in-flight RPCs, forcing a hard stop if the context
// expires first. Health flips to NOT_SERVING before the drain so load
// balancers stop routing new work here.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down")

	if s.healthServer != nil {
		s.healthServer.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	}

	done := make(chan struct{})
	go func() {
		s.grpcServer.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
		s.logger.Info("stopped")
		return nil
	case <-ctx.Done():
		s.logger.Warn("graceful stop timed out, forcing stop")
		s.grpcServer.Stop()
		return ctx.Err()
	}
}

// Addr returns the address the server is listening on.
func (s *Server) Addr() net.Addr {
	return s.lis.Addr()
}
