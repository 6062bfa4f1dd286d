// Package logger provides structured logging for funkit using zerolog.
//
// Library types such as ref.Ref take a *Logger through an option and
// default to Nop, so embedding applications decide whether cell activity
// is logged at all.
//
// # Configuration
//
//	logging:
//	  level: "debug"
//	  format: "json"
//
// # Usage
//
//	log := logger.Get("cells")
//	log.Debug("value committed", logger.Fields(logger.FieldKey, "counter"))
package logger
