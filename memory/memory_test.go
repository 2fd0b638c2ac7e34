package memory

import "testing"

func TestNewRejectsBadSizes(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"zero", 0},
		{"negative", -1},
		{"not power of two", 100},
		{"bigger than 64k", 1 << 17},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := New(tc.size); err == nil {
				t.Errorf("New(%d) = nil error, want error", tc.size)
			}
		})
	}
}

func TestReadWriteRoundTrip(t *testing.T) {
	r, err := New(65536)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	r.Write(0x1234, 0x42)
	if got := r.Read(0x1234); got != 0x42 {
		t.Errorf("Read(0x1234) = %#02x, want 0x42", got)
	}
}

func TestAddressMaskingOnSmallerBank(t *testing.T) {
	r, err := New(256)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	r.Write(0x0010, 0xAA)
	if got := r.Read(0x0110); got != 0xAA {
		t.Errorf("Read(0x0110) = %#02x, want 0xAA (aliased from 0x0010)", got)
	}
}

func TestLoadAt(t *testing.T) {
	r, err := New(65536)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	data := []uint8{0xDE, 0xAD, 0xBE, 0xEF}
	r.LoadAt(0x0600, data)
	for i, want := range data {
		if got := r.Read(0x0600 + uint16(i)); got != want {
			t.Errorf("Read(%#04x) = %#02x, want %#02x", 0x0600+i, got, want)
		}
	}
}
