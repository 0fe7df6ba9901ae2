// Package textops implements the line and selection transforms: trailing
// whitespace stripping, line comment toggling, case changes and line
// sorting. Each transform runs inside one user action on the buffer.
package textops
