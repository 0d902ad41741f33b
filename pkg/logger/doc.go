// Package logger builds slog loggers for the engine and provides helpers that
// keep attribute names consistent across packages.
//
// New applies functional options (format, level, output, static attributes,
// context extractors) and returns a *slog.Logger. When extractors are
// registered the handler is wrapped so every record also carries values
// pulled from the call's context, for example a request id:
//
//	log := logger.New(
//	    logger.WithFormat(logger.FormatText),
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithContextValue("request_id", ctxKeyRequestID),
//	)
//	log.DebugContext(ctx, "validator compiled",
//	    logger.SchemaType("int"),
//	    logger.Variant("int_constrained"),
//	)
//
// Error, Kind and Field return an empty Attr for nil or empty input, so they
// can be passed unconditionally.
package logger
