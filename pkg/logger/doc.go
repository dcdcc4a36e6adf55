// Package logger builds log/slog loggers for the service.
//
// Production loggers write JSON at info level; development loggers write text
// at debug level. Context extractors add request-scoped attributes, such as
// the request ID, to every record logged with a *Context method:
//
//	log := logger.New(
//	    logger.WithEnvironment("production", "pixkit"),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "user registered", logger.UserID(u.ID), logger.CPF(u.CPF))
//
// The attribute helpers keep key names consistent across packages. CPF masks
// the document so logs never carry the full taxpayer number.
package logger
