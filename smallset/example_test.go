package smallset_test

import (
	"fmt"

	"github.com/adm87/collections/smallset"
)

func Example() {
	s := smallset.New[uint32](4)
	s.Insert(1)
	s.Insert(2)
	s.Insert(3)
	fmt.Println(s.Len(), s.Contains(1), s.Mode())

	s.Insert(4)
	s.Insert(5)
	fmt.Println(s.Len(), s.Mode())

	s.Clear()
	fmt.Println(s.Len(), s.Mode())
	// Output:
	// 3 true inline
	// 5 heap
	// 0 heap
}

func ExampleKeyedSet_Replace() {
	mod7 := func(v int) int { return v % 7 }

	s := smallset.NewKeyed(4, mod7)
	s.Insert(1)
	s.Insert(2)

	old, _ := s.Replace(8)
	fmt.Println(old, s)
	// Output: 1 [8, 2]
}
