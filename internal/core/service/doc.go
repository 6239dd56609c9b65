// Package service provides domain services for the platform service.
//
// Domain services contain pure business logic and orchestrate operations
// on domain models.
//
// This package contains:
//
//   - DemoService: Demo catalog access, item creation, simulated failures
//
// Services are thread-safe and designed for concurrent request handling.
package service
