// SPDX-License-Identifier: MIT
// Package: treelink/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Implementations SHOULD attach context using `%w`.
//   • Constructors never panic; invalid parameters return sentinels.

package builder

import "errors"

// ErrTooFewNodes indicates that a numeric parameter (n, leaves, depth) is
// smaller than the allowed minimum for the requested constructor.
// Classification: Validation error (parameters).
// Usage: if errors.Is(err, ErrTooFewNodes) { /* report invalid size */ }.
var ErrTooFewNodes = errors.New("builder: parameter too small")
