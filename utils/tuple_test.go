package utils_test

import (
	"fmt"

	"reflector/utils"
)

func ExampleConcat() {
	fmt.Println(utils.Concat([]int{1, 2}, []int{3}, nil, []int{4}))
	fmt.Println(utils.Concat[[]int]() == nil)
	// Output:
	// [1 2 3 4]
	// true
}

func ExampleFoldl() {
	sum := utils.Foldl([]int{1, 2, 3, 4}, 0, func(acc, e int) int { return acc + e })
	fmt.Println(sum)

	parts := utils.Foldl([][]string{{"a"}, {"b", "c"}}, nil, func(acc []string, g []string) []string {
		return utils.Concat(acc, g)
	})
	fmt.Println(parts)
	// Output:
	// 10
	// [a b c]
}

func ExampleAt() {
	s := []string{"x", "y"}

	v, ok := utils.At(s, 1)
	fmt.Println(v, ok)

	_, ok = utils.At(s, 2)
	fmt.Println(ok)

	_, ok = utils.At(s, -1)
	fmt.Println(ok)
	// Output:
	// y true
	// false
	// false
}

func ExampleMakePair() {
	p := utils.MakePair("offset", 16)
	fmt.Println(p.First, p.Second)
	// Output:
	// offset 16
}
