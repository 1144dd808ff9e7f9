// Package provider contains the external flight-price provider clients.
// Each provider owns its retry policy and pooled transport and exposes
// an explicit Close invoked once at process shutdown.
package provider

import (
	"context"
	"errors"
	"time"

	"github.com/Juhwan24/Flown/internal/flown/entity"
)

// ErrTemporary marks provider failures that are worth retrying.
var ErrTemporary = errors.New("temporary provider error")

// SearchRequest asks for priced segments between two airports on one date.
type SearchRequest struct {
	Origin      string
	Destination string
	Date        time.Time
}

type Provider interface {
	Name() string
	// Search returns zero or more priced segment candidates for the
	// requested airport pair and date.
	Search(ctx context.Context, req SearchRequest) ([]entity.FlightSegment, error)
	// Close releases the provider's pooled connections.
	Close() error
}
