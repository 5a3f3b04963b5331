// Package gesture turns raw pointer samples into direction signatures.
//
// A gesture is captured into a bounded Stroke, reduced by Simplify to the
// vertices where the path bends, and encoded by Classify as a string of
// numeric keypad digits (6 right, 4 left, 2 down, 8 up, 3/1/9/7 for the
// diagonals), with immediate repeats collapsed. ParseSignature turns the digit
// string into the integer the direction table is keyed by.
package gesture
