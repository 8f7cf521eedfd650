// Package richtext turns a parsed markup tree into a flat sequence of styled runs.
//
// The walk is a plain recursion over a closed Node variant. Each call receives the
// Format inherited from its ancestors by value and may only turn flags on or set
// size, color and link. Paragraph-level nodes accumulate text into a current run
// and flush it whenever an inline image interrupts the text, so images keep their
// position in the output sequence.
//
// The output Sequence is consumed by a Sink (the document writer); Emit feeds a
// sequence into a sink in document order.
package richtext
