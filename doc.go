// Package bookstore implements a single-operator bookstore management
// system: tiered-privilege operator accounts, a priced and quantified
// catalog of books, an append-only financial ledger, and an audit trail
// of privileged actions. It is designed to be local-first and
// self-contained, persisting everything in flat record files with no
// external database.
//
// The core functionalities include:
//   - Record Store: a generic fixed-layout, append/scan/rewrite
//     persistence engine, instantiated for accounts, books, and ledger
//     entries.
//   - Session Management: a stack of nested logins with
//     privilege-dependent re-authentication rules and a per-session
//     selected book.
//   - Command Dispatch: a line-oriented command protocol that gates
//     every operation on session state and emits exactly one line of
//     result, or the failure marker, per command.
//   - Financial Ledger: an immutable, append-ordered record of income
//     and expenditure used for aggregation and reporting.
//
// This package serves as the foundational logic for the `bks`
// command-line tool.
package bookstore
