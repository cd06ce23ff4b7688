// Package logger builds *slog.Logger instances with functional options and
// adds attributes pulled from context.Context to every record.
//
// New picks a text or JSON handler. When ContextExtractor callbacks are
// registered, each record is passed through them first. The HTTP middleware
// uses this to stamp every validation log line with the request id.
//
//	log := logger.New(
//	    logger.WithEnvironment("development"),
//	    logger.WithContextExtractors(httpvalidate.RequestIDExtractor()),
//	)
//	log.WarnContext(ctx, "request rejected",
//	    logger.Kind("parametersValidationError"),
//	    logger.Violations(3),
//	)
//
// Each environment has a level and format profile: development logs debug
// text, staging and production log info JSON. Config and NewFromConfig apply
// the profile and the LOG_LEVEL and LOG_FORMAT overrides.
//
// Error and Errors return an empty attribute for nil errors, so
//
//	log.Info("validated", logger.Error(err))
//
// needs no nil check.
package logger
