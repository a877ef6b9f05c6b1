// Package diagnostic collects structured findings produced while checking
// metric configurations and scanning candidate lists.
//
// Key capabilities:
//   - Configuration errors with the path of the offending descriptor
//   - Warnings for parameters a metric ignores
//   - Info entries for missing candidates skipped during a scan
package diagnostic
