// Package httpserver runs an http.Handler with configured timeouts and shuts
// it down gracefully when the run context is canceled.
//
//	srv := httpserver.New(cfg, log)
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
//	defer stop()
//	if err := srv.Run(ctx, router); err != nil { ... }
//
// LivenessHandler and ReadinessHandler serve the health probes.
package httpserver
