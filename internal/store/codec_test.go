package store

import "testing"

func TestFixedNameRoundTrip(t *testing.T) {
	buf := make([]byte, NameMax)
	putFixedName(buf, "users")
	if got := getFixedName(buf); got != "users" {
		t.Fatalf("got %q, want %q", got, "users")
	}
}

func TestFixedNameFillsNameMax(t *testing.T) {
	buf := make([]byte, NameMax)
	putFixedName(buf, "exactly16letters")
	if got := getFixedName(buf); got != "exactly16letters" {
		t.Fatalf("got %q, want %q", got, "exactly16letters")
	}
}

func TestFixedStringRoundTrip(t *testing.T) {
	buf := make([]byte, stringFieldSize)
	putFixedString(buf, "hello world")
	if got := getFixedString(buf); got != "hello world" {
		t.Fatalf("got %q, want %q", got, "hello world")
	}
}

func TestFixedStringEmpty(t *testing.T) {
	buf := make([]byte, stringFieldSize)
	putFixedString(buf, "")
	if got := getFixedString(buf); got != "" {
		t.Fatalf("got %q, want empty string", got)
	}
}

func TestDecodeNullPaddedStopsAtFirstZero(t *testing.T) {
	buf := []byte{'a', 'b', 0, 'c', 'd'}
	if got := decodeNullPadded(buf); got != "ab" {
		t.Fatalf("got %q, want %q", got, "ab")
	}
}

func TestU16RoundTrip(t *testing.T) {
	buf := make([]byte, 2)
	putU16(buf, 0xBEEF)
	if got := getU16(buf); got != 0xBEEF {
		t.Fatalf("got %#x, want %#x", got, 0xBEEF)
	}
}

func TestU32RoundTrip(t *testing.T) {
	buf := make([]byte, 4)
	putU32(buf, DeadEnd)
	if got := getU32(buf); got != DeadEnd {
		t.Fatalf("got %#x, want %#x", got, DeadEnd)
	}
}

func TestI32RoundTripNegative(t *testing.T) {
	buf := make([]byte, 4)
	putI32(buf, -12345)
	if got := getI32(buf); got != -12345 {
		t.Fatalf("got %d, want %d", got, -12345)
	}
}

func TestF32RoundTrip(t *testing.T) {
	buf := make([]byte, 4)
	putF32(buf, 3.5)
	if got := getF32(buf); got != 3.5 {
		t.Fatalf("got %v, want %v", got, 3.5)
	}
}
