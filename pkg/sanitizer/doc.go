// Package sanitizer provides input normalization and threat detection for
// user-submitted text.
//
// Normalize produces the canonical working value every validation rule
// operates on: leading and trailing whitespace is trimmed and the remainder
// is Unicode-NFD-decomposed. Nothing beyond whitespace and diacritic
// representation is ever rewritten.
//
// ContainsThreat runs a fixed, ordered list of case-insensitive structural
// checks for well-known injection markers (script tags, javascript:/vbscript:
// URIs, inline event handlers, eval calls, document/window references, SQL
// UNION SELECT and DROP TABLE fragments). The scan is applied before any
// business pattern so that dangerous content can never satisfy a permissive
// rule. Threats reports which detectors fired, in scan order.
//
// The package is stateless and goroutine-safe; all detectors are compiled
// once at process start and there is no runtime mutation API.
package sanitizer
