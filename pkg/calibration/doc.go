// Package calibration extracts calibration values from lines of text.
// It contains:
//
//   - Token: the fixed table of digit spellings, literal ("7") and spelled ("seven")
//   - Parser: finds the first and last token in a line and joins them into a two-digit value
//   - Sum: walks the lines of a document in order and accumulates their values
//
// Matching is substring based. Spelled digits may overlap ("eightwo" holds both
// eight and two) and each one is still seen as a candidate.
package calibration
