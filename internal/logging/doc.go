// Package logging provides structured logging for coinscan on top of Zap.
//
// The wrapper adds:
//   - a Trace level (-2) below Debug
//   - automatic context fields: OpenTelemetry trace_id/span_id, run.id,
//     source.file and source.sheet
//   - redaction of sensitive keys, Stellar secret seeds and WIF private keys in any value
//   - level-aware sampling (errors never sampled)
//
// Create a logger from config and carry correlation in the context:
//
//	logger, err := logging.NewLogger(logging.NewDefaultConfig())
//	if err != nil {
//	    return err
//	}
//	defer logger.Sync()
//
//	ctx = logging.WithRunID(ctx, runID)
//	ctx = logging.WithSource(ctx, "wallets.csv", "")
//	logger.Debug(ctx, "candidate rejected", zap.String("symbol", "BTC"))
//
// Logs go to stderr unless Output.File is set; standard output carries
// command results.
//
// Tests use TestLogger:
//
//	tl := logging.NewTestLogger()
//	v := validator.New(tl.Logger)
//	tl.AssertLogged(t, zapcore.DebugLevel, "validation failed")
package logging
