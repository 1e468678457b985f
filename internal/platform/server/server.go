package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	operatorv1 "github.com/ogurasousui/operator-registry/internal/adapters/grpc/api/operator/v1"
	"github.com/ogurasousui/operator-registry/internal/adapters/grpc/handler"
	"github.com/ogurasousui/operator-registry/internal/core/access"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// Options は Server の任意設定です。
type Options struct {
	Logger *zap.Logger
	// Interceptors はアクター解決より前に実行されます（メトリクスなど）。
	Interceptors    []grpc.UnaryServerInterceptor
	ShutdownTimeout time.Duration
	ServerOptions   []grpc.ServerOption
}

// Server は gRPC サーバーのライフサイクルを管理します。
type Server struct {
	listenAddr      string
	grpcServer      *grpc.Server
	health          *health.Server
	logger          *zap.Logger
	shutdownTimeout time.Duration
}

// New は OperatorService とヘルスチェックを登録した gRPC サーバーを構築します。
func New(listenAddr string, svc operatorv1.OperatorServiceServer, opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	timeout := opts.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	interceptors := append([]grpc.UnaryServerInterceptor{}, opts.Interceptors...)
	interceptors = append(interceptors,
		handler.ActorUnaryInterceptor(),
		handler.LoggingUnaryInterceptor(logger),
		handler.AccessUnaryInterceptor(access.NewGate()),
	)

	serverOpts := append([]grpc.ServerOption{grpc.ChainUnaryInterceptor(interceptors...)}, opts.ServerOptions...)
	srv := grpc.NewServer(serverOpts...)
	operatorv1.RegisterOperatorServiceServer(srv, svc)

	healthSrv := health.NewServer()
	healthpb.RegisterHealthServer(srv, healthSrv)
	healthSrv.SetServingStatus(operatorv1.ServiceName, healthpb.HealthCheckResponse_SERVING)

	return &Server{
		listenAddr:      listenAddr,
		grpcServer:      srv,
		health:          healthSrv,
		logger:          logger,
		shutdownTimeout: timeout,
	}
}

// Run はサーバーを起動し、コンテキストがキャンセルされると GracefulStop します。
func (s *Server) Run(ctx context.Context) error {
	lis, err := net.Listen("tcp", s.listenAddr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.listenAddr, err)
	}
	return s.Serve(ctx, lis)
}

// Serve は与えられたリスナーで待ち受けます。
func (s *Server) Serve(ctx context.Context, lis net.Listener) error {
	go func() {
		<-ctx.Done()
		s.GracefulStop()
	}()

	s.logger.Info("grpc server listening", zap.String("addr", lis.Addr().String()))
	if err := s.grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("serve gRPC: %w", err)
	}

	return nil
}

// GracefulStop はヘルスチェックを NOT_SERVING にしてからサーバーを停止します。
// ShutdownTimeout を超えた場合は強制停止します。
func (s *Server) GracefulStop() {
	s.health.Shutdown()

	done := make(chan struct{})
	go func() {
		s.grpcServer.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(s.shutdownTimeout):
		s.logger.Warn("graceful stop timed out, forcing stop")
		s.grpcServer.Stop()
	}
}
