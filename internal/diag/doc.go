// Package diag defines the diagnostic model shared by all pipeline phases.
//
// Diagnostic is the central record: Severity, a numeric Code with a stable
// string ID (LEX1001, INC5001, ...), a human message, the primary Location and
// the fixed source tag "NVGT".
//
// Phases emit through a Reporter and never format or print. Two sinks exist:
//
//   - Bag / BagReporter collect diagnostics for a single standalone run
//     (the CLI tokenizer, tests).
//   - Sessions is a stack of bags driven by the inspector. Launch opens a
//     session for a pipeline run, Complete closes it and hands back what was
//     collected, restoring the outer session. Nested runs started while
//     resolving includes therefore never leak diagnostics into the file that
//     included them.
//
// ToProtocol converts diagnostics into LSP protocol values; rendering for
// terminals lives in internal/diagfmt.
package diag
