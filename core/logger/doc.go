// Package logger builds slog loggers and provides attribute helpers with
// consistent keys.
//
//	log := logger.New(
//		logger.WithProduction("egyptid"),
//		logger.WithLevel(logger.ParseLevel("debug")),
//	)
//
//	log.Info("card checked",
//		logger.Component("card"),
//		logger.MaskedPAN(pan),
//		logger.Result("valid"),
//	)
//
// Helpers return an empty slog.Attr for zero input, which slog drops, so
// logger.Error(nil) is safe to pass unconditionally.
//
// MaskedPAN never writes the full card number; only the first six and last
// four digits survive.
//
// Library packages in this module do not log. Only the command line tool does.
package logger
