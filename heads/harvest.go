// Package heads finds and validates custom head texture references in
// decoded NBT trees.
package heads

import (
	"iter"

	"github.com/minescan/headscan/nbt"
)

// Harvest yields every string leaf value anywhere in root, in
// pre-order. Compounds contribute all their values, lists all their
// elements, other leaves nothing; tree shape is otherwise irrelevant.
// The walk keeps its own stack, so nesting depth is not bounded by the
// call stack.
func Harvest(root *nbt.Tag) iter.Seq[string] {
	return func(yield func(string) bool) {
		if root == nil {
			return
		}
		stack := []*nbt.Tag{root}
		for len(stack) > 0 {
			y := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			switch y.Type {
			case nbt.TypeString:
				if !yield(y.Str) {
					return
				}
			case nbt.TypeCompound, nbt.TypeList:
				for i := len(y.Values) - 1; i >= 0; i-- {
					stack = append(stack, y.Values[i])
				}
			}
		}
	}
}
