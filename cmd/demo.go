package cmd

import (
	"fmt"

	"github.com/fzft/go-dynset/set"
)

// Demo runs a scripted walkthrough of the set operations.
func Demo() {
	s := set.New[any](1)
	s.UnionUpdate(2, 3, 4, 5, 1)
	fmt.Println(s)
	fmt.Println(s.Len())
	s.IntersectionUpdate(4, 5, 2, 1)
	fmt.Println(s)
	s.DifferenceUpdate(4, 5, 6, 7)
	fmt.Println(s)
	fmt.Println(s.Contains(2))
	fmt.Println(s.Len())
}
