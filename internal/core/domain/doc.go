// Package domain defines the core domain models for the platform service.
//
// Domain models are pure value objects without any IO dependencies
// or framework coupling. This package contains:
//
//   - Item: Entry in the demo data catalog
//   - Errors: Simulated failure modes for the error endpoint
package domain
