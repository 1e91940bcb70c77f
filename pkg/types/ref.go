package types

import (
	"bytes"
	"encoding/json"
)

// Ref is a foreign-key field whose wire form is either a raw integer id or,
// when the backend eagerly expands the relation, the embedded related record.
type Ref struct {
	Valid  bool
	ID     int64
	Record json.RawMessage
}

// RefTo builds a plain id reference.
func RefTo(id int64) Ref {
	return Ref{Valid: true, ID: id}
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *Ref) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*r = Ref{}
		return nil
	}

	if trimmed[0] == '{' {
		r.Valid = true
		r.Record = append(json.RawMessage(nil), trimmed...)
		// Pull a uniform id out of the embedded record when one is present
		// under any of the backend's id field names.
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &fields); err != nil {
			return err
		}
		for _, key := range []string{"id", "id_categoria", "id_empresa", "id_proveedor", "id_pedido", "id_inventario"} {
			raw, ok := fields[key]
			if !ok {
				continue
			}
			var id int64
			if err := json.Unmarshal(raw, &id); err == nil {
				r.ID = id
				break
			}
		}
		return nil
	}

	var id int64
	if err := json.Unmarshal(trimmed, &id); err != nil {
		return err
	}
	*r = Ref{Valid: true, ID: id}
	return nil
}

// MarshalJSON implements json.Marshaler. Expanded records round-trip untouched;
// plain references serialize back to the raw id.
func (r Ref) MarshalJSON() ([]byte, error) {
	if !r.Valid {
		return []byte("null"), nil
	}
	if r.Record != nil {
		return r.Record, nil
	}
	return json.Marshal(r.ID)
}

// Expanded reports whether the backend embedded the related record.
func (r Ref) Expanded() bool {
	return r.Record != nil
}
