// Package shutdown provides graceful shutdown for the platform service.
//
// This package handles process termination:
//
//   - Signal handling (SIGINT, SIGTERM)
//   - Internal failure triggering via Fail
//   - Timeout-bounded cleanup hooks, run in reverse registration order
//
// Usage:
//
//	h := shutdown.NewHandler(30 * time.Second)
//	h.OnShutdown(func(ctx context.Context) error { return srv.Shutdown(ctx) })
//	err := h.Wait() // blocks until signal or Fail
package shutdown
