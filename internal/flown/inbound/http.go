package inbound

import (
	"context"

	"github.com/Juhwan24/Flown/internal/flown/usecase"
	"github.com/Juhwan24/Flown/internal/pkg/pkgrouter"
)

type uc interface {
	Search(ctx context.Context, in usecase.SearchInput) (*usecase.SearchOutput, error)
}

func RegisterHTTPEndpoint(r *pkgrouter.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.POST("/api/search", end.Search)
	r.GET("/api/health", end.Health)
}
