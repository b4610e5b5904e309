package field

import "fmt"

// Shape is the value shape of a field or expression: empty for scalars, one
// entry for vectors, two for tensors.
type Shape []int

func ScalarShape() Shape { return Shape{} }

func VectorShape(n int) Shape { return Shape{n} }

func TensorShape(n, m int) Shape { return Shape{n, m} }

func (s Shape) Rank() int { return len(s) }

// Components is the flattened scalar component count, row-major for rank 2.
func (s Shape) Components() (n int) {
	n = 1
	for _, d := range s {
		n *= d
	}
	return
}

func (s Shape) Equals(o Shape) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if s[i] != o[i] {
			return false
		}
	}
	return true
}

func (s Shape) String() string { return fmt.Sprintf("%v", []int(s)) }
