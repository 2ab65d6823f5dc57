package Trees

import "testing"

func TestErrors_Messages(t *testing.T) {
	for _, c := range []struct {
		err  error
		want string
	}{
		{NilComparatorError{}, "Trees: nil comparator"},
		{IndexOutOfRangeError{7, 3}, "Trees: index 7 out of range [0:3]"},
		{ShortBufferError{Need: 4, Have: 1}, "Trees: buffer has room for 1 values, need 4"},
		{EmptyTreeError{"Min"}, "Trees: Min called on an empty tree"},
		{NilValueError{"Has"}, "Trees: nil value given to Has"},
	} {
		if got := c.err.Error(); got != c.want {
			t.Errorf("%T: %q, want %q", c.err, got, c.want)
		}
	}
}
