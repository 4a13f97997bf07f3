// Package structure handles RNA secondary structures in dot-bracket notation.
//
// A structure over n positions is a string of n symbols from {'.', '(', ')'}:
// '.' is an unpaired position; a '(' at i matched with a ')' at j > i means
// positions i and j are paired. Valid structures are balanced and properly
// nested, i.e. no two pairs cross (never i1 < i2 < j1 < j2).
//
// Provided helpers:
//   - Parse:      dot-bracket → ordered pair list (stack matching)
//   - FromPairs:  pair list → dot-bracket, rejecting conflicts and crossings
//   - Validate:   balanced + nested check
//   - Verify:     Validate + sequence length, minimum loop and pair legality
//   - CountPairs: number of base pairs
//
// Design:
//   - No logging, no panics on user input — only sentinel errors from types.go.
//   - O(n) time for every helper (FromPairs is O(n + p) for p pairs).
package structure
