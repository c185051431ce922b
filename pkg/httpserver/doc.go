// Package httpserver runs an http.Handler with graceful shutdown.
//
// Server.Run binds the configured address, serves until the context is
// canceled or the process receives SIGINT or SIGTERM, and then drains
// in-flight requests within the shutdown timeout. Config carries the
// HTTP_* environment variables and NewFromConfig turns it into a Server.
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		return err
//	}
//
// HealthCheckHandler serves liveness and readiness checks.
package httpserver
