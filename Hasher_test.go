package Go_Collections

import "testing"

func TestHashInteger(t *testing.T) {
	if HashInteger(int8(-1)) != HashInteger(int64(-1)) {
		t.Error("sign extended values hash differently")
	}
	if HashInteger(uint16(7)) != HashInteger(7) {
		t.Error("equal values of different widths hash differently")
	}
	if HashInteger(1) == HashInteger(2) {
		t.Error("1 and 2 collide")
	}
}

func TestHashString(t *testing.T) {
	if HashString("tree") != HashBytes([]byte("tree")) {
		t.Error("string and byte forms hash differently")
	}
	if HashBytes(nil) != HashString("") {
		t.Error("nil slice and empty string hash differently")
	}
}
