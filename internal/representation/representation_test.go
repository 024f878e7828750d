package representation

import (
	"bytes"
	"testing"
)

func TestRepresentation_OrderPreserved(t *testing.T) {
	r := New().
		Set("id", int64(1)).
		Set("name", "Kenneth").
		Set("ssn", "720104-1111111")

	got, err := r.MarshalJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"id":1,"name":"Kenneth","ssn":"720104-1111111"}`
	if string(got) != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestRepresentation_SetOverwriteKeepsPosition(t *testing.T) {
	r := New().
		Set("id", int64(1)).
		Set("name", "before").
		Set("ssn", "x")
	r.Set("name", "after")

	got, _ := r.MarshalJSON()
	want := `{"id":1,"name":"after","ssn":"x"}`
	if string(got) != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
	if r.Len() != 3 {
		t.Fatalf("expected 3 fields, got %d", r.Len())
	}
}

func TestRepresentation_MarshalDeterministic(t *testing.T) {
	r := New().
		Set("id", int64(7)).
		Set("name", "user1").
		Set("joinDate", "2023-01-02T03:04:05Z")

	first, err := r.MarshalJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	second, err := r.MarshalJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Fatalf("marshal not deterministic: %s vs %s", first, second)
	}
}

func TestRepresentation_NamesReturnsCopy(t *testing.T) {
	r := New().Set("a", 1).Set("b", 2)
	names := r.Names()
	names[0] = "mutated"

	if got := r.Names()[0]; got != "a" {
		t.Fatalf("internal order leaked: got %q", got)
	}
}

func TestRepresentation_GetAbsent(t *testing.T) {
	r := New().Set("a", 1)
	if _, ok := r.Get("missing"); ok {
		t.Fatal("expected absent field")
	}
}
