// Package grpcserver exposes the standard gRPC health service.
package grpcserver

import (
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/sbilibin2017/gw-finance-assistant/internal/logger"
)

type Server struct {
	addr   string
	lis    net.Listener
	health *health.Server
	Server *grpc.Server
}

func New(addr string) *Server {
	s := grpc.NewServer()
	hs := health.NewServer()
	hs.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	healthpb.RegisterHealthServer(s, hs)
	return &Server{
		addr:   addr,
		health: hs,
		Server: s,
	}
}

// Listen binds the address so Addr is known before Serve is called.
func (s *Server) Listen() error {
	lis, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	s.lis = lis
	return nil
}

// Addr returns the bound address, or the configured one before Listen.
func (s *Server) Addr() string {
	if s.lis != nil {
		return s.lis.Addr().String()
	}
	return s.addr
}

// Start listens if needed, reports SERVING and blocks serving requests.
func (s *Server) Start() error {
	if s.lis == nil {
		if err := s.Listen(); err != nil {
			return err
		}
	}
	s.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	logger.Log.Infow("gRPC health server listening", "addr", s.Addr())
	return s.Server.Serve(s.lis)
}

// Stop reports NOT_SERVING and drains in-flight calls.
func (s *Server) Stop() {
	s.health.Shutdown()
	s.Server.GracefulStop()
	if s.lis != nil {
		_ = s.lis.Close()
	}
}
