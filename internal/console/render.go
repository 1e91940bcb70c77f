package console

import (
	"encoding/json"
	"fmt"
	"sort"
	"text/tabwriter"
)

// idColumns lists the id-ish fields rendered first, in this order.
var idColumns = []string{"id", "id_categoria", "id_empresa", "id_proveedor", "id_pedido", "id_inventario"}

func (c *Console) renderTable(items []record) error {
	if len(items) == 0 {
		fmt.Fprintln(c.out, "(sin registros)")
		return nil
	}

	columns := tableColumns(items)
	w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	for i, column := range columns {
		if i > 0 {
			fmt.Fprint(w, "\t")
		}
		fmt.Fprint(w, column)
	}
	fmt.Fprintln(w)

	for _, item := range items {
		for i, column := range columns {
			if i > 0 {
				fmt.Fprint(w, "\t")
			}
			fmt.Fprint(w, formatCell(item[column]))
		}
		fmt.Fprintln(w)
	}
	return w.Flush()
}

func (c *Console) renderRecord(item record) error {
	keys := make([]string, 0, len(item))
	for key := range item {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	for _, key := range keys {
		fmt.Fprintf(w, "%s\t%s\n", key, formatCell(item[key]))
	}
	return w.Flush()
}

// tableColumns takes the union of keys across rows, id fields first and the
// rest alphabetical.
func tableColumns(items []record) []string {
	seen := map[string]bool{}
	for _, item := range items {
		for key := range item {
			seen[key] = true
		}
	}

	var columns []string
	for _, key := range idColumns {
		if seen[key] {
			columns = append(columns, key)
			delete(seen, key)
		}
	}

	rest := make([]string, 0, len(seen))
	for key := range seen {
		rest = append(rest, key)
	}
	sort.Strings(rest)
	return append(columns, rest...)
}

func formatCell(value any) string {
	switch v := value.(type) {
	case nil:
		return "-"
	case string:
		return v
	case float64:
		if v == float64(int64(v)) {
			return fmt.Sprintf("%d", int64(v))
		}
		return fmt.Sprintf("%g", v)
	case bool:
		return fmt.Sprintf("%t", v)
	default:
		raw, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(raw)
	}
}
