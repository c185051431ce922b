// Package logger builds structured slog loggers for the validation service.
//
// New creates a *slog.Logger from functional options: output format, level,
// static attributes and ContextExtractor callbacks that copy request-scoped
// values (the request id, the environment) into every record. WithEnvironment
// applies the per-environment defaults used by the command line tool.
//
//	log := logger.New(
//		logger.WithEnvironment(environment.Production, "attrvalid"),
//		logger.WithLevelName(cfg.LogLevel),
//		logger.WithContextExtractors(environment.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "validated",
//		logger.Model("user"),
//		logger.Outcome("invalid"),
//		logger.Duration(time.Since(start)),
//	)
//
// The attribute helpers in attr.go keep key names consistent. Error returns
// an empty attribute for a nil error, so it can be passed unconditionally.
//
// Discard returns a logger that drops everything; it is the default for
// library components that were not given a logger.
package logger
