// Package naming compiles the rename pipeline: regular-expression
// substitution, slugification, case and space rules, and literal
// prefix/suffix, applied to a file stem or a whole name.
//
// A [Transformer] is pure. The same input always yields the same output,
// and it never touches the filesystem.
package naming
