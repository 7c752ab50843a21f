package domain

import (
	"kucukaslan/nodeapp/buildinfo"
	"time"
)

// HelloMessage is the fixed greeting served at the root route
const HelloMessage = "Hello from Node.js!"

// MessageResponse is the body of GET /
type MessageResponse struct {
	Message string `json:"message" example:"Hello from Node.js!"`
}

// NewHelloResponse builds a fresh greeting payload
func NewHelloResponse() MessageResponse {
	return MessageResponse{Message: HelloMessage}
}

// HealthResponse represents the health status of the service
type HealthResponse struct {
	Status    string                   `json:"status" example:"healthy"`
	Timestamp time.Time                `json:"timestamp" example:"2025-11-22T10:00:00Z"`
	BuildInfo buildinfo.Info           `json:"buildInfo"`
	Services  map[string]ServiceStatus `json:"services"`
}

// ServiceStatus represents the status of a single service
type ServiceStatus struct {
	Status  string `json:"status" example:"healthy"`
	Message string `json:"message,omitempty" example:""`
}

const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
)
