// Package linda implements the command grammar of a single-line personal
// finance tracker. A command line such as "&10,groceries" is tokenized into a
// leading operation marker followed by typed fields, classified against the
// order shape [marker, number, text], and turned into a persistable record
// and an insert statement for the local database.
//
// The core functionalities include:
//   - Tokenizing: splitting a raw line into a marker plus typed tokens.
//   - Classification: matching the token shape and mapping the marker to an
//     order kind (income or expense).
//   - Record Building: extracting the typed fields of an income order into a
//     domain record.
//   - Statement Generation: rendering an income order into a parameterized
//     insert statement executed through the store package.
//
// This package serves as the foundational logic for the `linda` command-line
// tool, ensuring every persisted row went through a fully validated
// classification first.
package linda
