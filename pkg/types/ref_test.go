package types

import (
	"encoding/json"
	"testing"
)

func TestRefUnmarshalRawID(t *testing.T) {
	var r Ref
	if err := json.Unmarshal([]byte(`42`), &r); err != nil {
		t.Fatalf("unmarshal raw id: %v", err)
	}
	if !r.Valid || r.ID != 42 {
		t.Fatalf("unexpected ref %+v", r)
	}
	if r.Expanded() {
		t.Fatalf("raw id should not be expanded")
	}
}

func TestRefUnmarshalEmbeddedRecord(t *testing.T) {
	payload := []byte(`{"id_proveedor":7,"nombre":"Acme"}`)

	var r Ref
	if err := json.Unmarshal(payload, &r); err != nil {
		t.Fatalf("unmarshal embedded record: %v", err)
	}
	if !r.Valid || r.ID != 7 {
		t.Fatalf("expected id 7, got %+v", r)
	}
	if !r.Expanded() {
		t.Fatalf("embedded record should report expanded")
	}

	out, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != string(payload) {
		t.Fatalf("expanded record should round-trip, got %s", out)
	}
}

func TestRefUnmarshalNull(t *testing.T) {
	r := RefTo(9)
	if err := json.Unmarshal([]byte(`null`), &r); err != nil {
		t.Fatalf("unmarshal null: %v", err)
	}
	if r.Valid || r.ID != 0 {
		t.Fatalf("null should reset the ref, got %+v", r)
	}

	out, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != "null" {
		t.Fatalf("invalid ref should marshal to null, got %s", out)
	}
}

func TestRefMarshalPlainID(t *testing.T) {
	out, err := json.Marshal(RefTo(3))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != "3" {
		t.Fatalf("expected raw id, got %s", out)
	}
}
