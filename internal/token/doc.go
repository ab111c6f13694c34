// Package token defines the lexical token model for NVGT scripts.
// Invariants:
//   - Token.Text is exactly the source text covered by Token.Location.
//   - Within one file, token locations are non-decreasing and never overlap.
//   - Operator symbols and fixed keywords share the Reserved kind; the lexer
//     does not distinguish them further.
//   - Highlight is a default classification; semantic analysis may refine it.
package token
