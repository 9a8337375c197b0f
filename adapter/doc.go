// Package adapter groups implementations of logger.Logger over
// third-party logging libraries, so a capture.Registry can decorate
// whatever logger an application already uses:
//
//   - zapadapter: go.uber.org/zap
//   - zerologadapter: github.com/rs/zerolog
//   - logrusadapter: github.com/sirupsen/logrus
//   - slogadapter: log/slog
//
// Every adapter names the category with logger.CategoryKey (or the
// backend's own logger name), writes the context's scope fields and the
// state's fields, and leaves level filtering to the backend.
package adapter
