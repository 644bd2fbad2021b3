package sign

import (
	"bytes"
	"testing"
)

func TestLine_Format(t *testing.T) {
	key := bytes.Repeat([]byte{0x0b}, 32)
	got := Line([]byte("Hi There"), key, "greeting.txt")
	want := "198a607eb44bfbc69903a0f1cf2bbdc5ba0aa3f3d9ae3c1c7a3b1696a0b68cf7  greeting.txt"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
