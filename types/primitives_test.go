package types

import (
	"encoding/json"
	"testing"

	"github.com/holiman/uint256"
)

func TestUint64JSON(t *testing.T) {
	out, err := json.Marshal(Uint64(12345))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `"12345"` {
		t.Fatalf("got %s, want \"12345\"", out)
	}

	var u Uint64
	if err := json.Unmarshal([]byte(`"67890"`), &u); err != nil {
		t.Fatalf("unmarshal string: %v", err)
	}
	if u != 67890 {
		t.Fatalf("got %d, want 67890", u)
	}

	// Bare numbers are accepted too.
	if err := json.Unmarshal([]byte(`42`), &u); err != nil {
		t.Fatalf("unmarshal number: %v", err)
	}
	if u != 42 {
		t.Fatalf("got %d, want 42", u)
	}

	if err := json.Unmarshal([]byte(`"not a number"`), &u); err == nil {
		t.Fatal("expected error for non-numeric string")
	}
}

func TestUint256JSON(t *testing.T) {
	var u Uint256
	u.SetInt(uint256.NewInt(1_000_000_007))

	out, err := json.Marshal(u)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `"1000000007"` {
		t.Fatalf("got %s, want \"1000000007\"", out)
	}

	var back Uint256
	if err := json.Unmarshal(out, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back != u {
		t.Fatalf("round trip mismatch: %x != %x", back, u)
	}

	if err := json.Unmarshal([]byte(`"0x10"`), &back); err == nil {
		t.Fatal("expected error for hex input to a decimal field")
	}
}

func TestUint256LittleEndian(t *testing.T) {
	var u Uint256
	u.SetInt(uint256.NewInt(0x0102))
	if u[0] != 0x02 || u[1] != 0x01 {
		t.Fatalf("expected little-endian layout, got % x", u[:4])
	}
	if u.Int().Uint64() != 0x0102 {
		t.Fatalf("Int() = %d, want %d", u.Int().Uint64(), 0x0102)
	}
}

func TestRootJSON(t *testing.T) {
	var r Root
	r[0] = 0xab

	out, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `"0xab00000000000000000000000000000000000000000000000000000000000000"`
	if string(out) != want {
		t.Fatalf("got %s, want %s", out, want)
	}

	var back Root
	if err := json.Unmarshal(out, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back != r {
		t.Fatal("round trip mismatch")
	}

	if err := json.Unmarshal([]byte(`"0x0102"`), &back); err == nil {
		t.Fatal("expected error for short root")
	}
	if err := json.Unmarshal([]byte(`"0xzz"`), &back); err == nil {
		t.Fatal("expected error for invalid hex")
	}
}

func TestBitvectorJSON(t *testing.T) {
	b := Bitvector{0x0f, 0xf0}
	out, err := json.Marshal(b)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `"0x0ff0"` {
		t.Fatalf("got %s, want \"0x0ff0\"", out)
	}
	var back Bitvector
	if err := json.Unmarshal(out, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(back) != 2 || back[0] != 0x0f || back[1] != 0xf0 {
		t.Fatalf("round trip mismatch: % x", back)
	}
}
