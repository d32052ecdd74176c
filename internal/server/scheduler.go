package server

import (
	"context"

	"gamewatch/internal/scheduler"
)

// Scheduler defines the minimal scheduling behavior needed by the server.
type Scheduler interface {
	Start(ctx context.Context)
	Stop(ctx context.Context) error
	Status() scheduler.Status
}
