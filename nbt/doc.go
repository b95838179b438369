// Package nbt decodes the binary NBT format into a tree of Tag nodes.
//
// The decoder only needs enough of the format to reach string leaves:
// compounds, lists and strings are fully represented, every other tag
// type is retained as an opaque payload so that traversal stays exact
// without interpreting numerics. Decoding is iterative with an explicit
// frame stack, so adversarially nested input cannot exhaust the call
// stack; a hard MaxDepth cap guards memory on top of that.
//
// All multi-byte integers on the wire are big-endian. String payloads
// are modified UTF-8 and pass through the decoder byte-verbatim.
package nbt
