package domain

import "context"

// HealthChecker is a dependency that can be probed, e.g. a database connection
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

type HealthService interface {
	Check(ctx context.Context) HealthResponse
}
