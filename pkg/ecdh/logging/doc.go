// Package logging provides a minimal logging facade for the ECDH core.
//
// The Logger interface wraps a subset of the standard library's
// log/slog functionality. It is intentionally small so applications can
// substitute their own implementation for testing, redaction, or
// integration with an existing logging system.
//
// Sessions log peer-value rejections and computation failures through
// this facade; they never log key material. The package defines the
// attribute vocabulary for those records: Group names the ECDH group,
// WireLen describes an encoding length mismatch, and Redacted marks
// attributes whose value was intentionally withheld:
//
//	logger.Debug(ctx, "shared secret computed",
//	    logging.Group("ecp256bp"),
//	    logging.Redacted("secret"),
//	)
//
// New(nil) binds slog.Default(), so the facade costs nothing to adopt.
package logging
