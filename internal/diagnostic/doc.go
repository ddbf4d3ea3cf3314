// Package diagnostic provides the error taxonomy and the notification block
// carried by every generation report.
//
// Key capabilities:
//   - Kind-tagged errors (structural board, binding, I/O, template, generator)
//   - Notifications with the legacy {enum, message} error entries
//   - Conversion of any failure into a single report-ready notice
package diagnostic
