// Package logging builds the zap logger and carries request-scoped loggers
// through context.
//
// Entries use Cloud Logging field names (severity, timestamp, message) so
// they are parsed natively when the service runs on Cloud Run.
package logging
