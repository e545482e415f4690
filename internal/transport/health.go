// Package transport exposes the admin gRPC/HTTP handlers.
package transport

import (
	"context"

	"github.com/goodnatureofminers/chainwatch-backend/internal/chainwatch/model"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// Health reports per-chain serving status over the standard gRPC health service.
// The service name of a chain is the chain name; the empty name is the process.
type Health struct {
	server *health.Server
}

// NewHealth marks every chain NOT_SERVING until its first successful head fetch.
func NewHealth(chains []model.Chain) *Health {
	server := health.NewServer()
	for _, c := range chains {
		server.SetServingStatus(string(c), healthpb.HealthCheckResponse_NOT_SERVING)
	}
	return &Health{server: server}
}

func (h *Health) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.server)
}

func (h *Health) SetServing(chain model.Chain, serving bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		status = healthpb.HealthCheckResponse_SERVING
	}
	h.server.SetServingStatus(string(chain), status)
}

// Serving reports the last status set for chain.
func (h *Health) Serving(ctx context.Context, chain model.Chain) bool {
	resp, err := h.server.Check(ctx, &healthpb.HealthCheckRequest{Service: string(chain)})
	if err != nil {
		return false
	}
	return resp.GetStatus() == healthpb.HealthCheckResponse_SERVING
}

// Shutdown flips every service to NOT_SERVING.
func (h *Health) Shutdown() {
	h.server.Shutdown()
}
