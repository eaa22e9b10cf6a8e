// Package crash wraps a program's entry point so that any fault escaping
// it produces a plain-text diagnostic report before the process terminates.
//
// The package implements four pieces:
//
//   - Registry: process-wide diagnostic key/value data and ordered cleanup
//     callbacks, surfaced in the report when a crash occurs.
//
//   - ResolvePath: collision-avoiding resolution of the report filename.
//
//   - Render: substitution of {filename}-style placeholders in the
//     user-facing crash messages.
//
//   - Catcher: the wrapper itself. It invokes the entry function, and on a
//     recovered panic or a returned error runs the registered callbacks in
//     order, writes the report, and signals an unrecoverable Fault to the
//     caller. Process termination stays with the top-level main.
//
// The wrapper is meant for a program's outermost entry point only: past a
// crash it never hands control back to the wrapped function's caller.
package crash
