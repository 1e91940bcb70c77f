package mockapi

import "sync"

// collection is one in-memory record set. Records keep insertion order, ids
// are server-assigned under the collection's native id field name, mirroring
// the backend this mock stands in for.
type collection struct {
	mu      sync.Mutex
	idField string
	nextID  int64
	order   []int64
	records map[int64]map[string]any
}

func newCollection(idField string) *collection {
	return &collection{
		idField: idField,
		nextID:  1,
		records: map[int64]map[string]any{},
	}
}

func (c *collection) list() []map[string]any {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]map[string]any, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, cloneRecord(c.records[id]))
	}
	return out
}

func (c *collection) get(id int64) (map[string]any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	record, ok := c.records[id]
	if !ok {
		return nil, false
	}
	return cloneRecord(record), true
}

func (c *collection) create(input map[string]any) map[string]any {
	c.mu.Lock()
	defer c.mu.Unlock()

	record := cloneRecord(input)
	id := c.nextID
	c.nextID++
	record[c.idField] = id
	c.records[id] = record
	c.order = append(c.order, id)
	return cloneRecord(record)
}

// update merges changes into the stored record, keeping the id; the client's
// allowlists never resend every field, so replace semantics would destroy
// unlisted ones.
func (c *collection) update(id int64, changes map[string]any) (map[string]any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	record, ok := c.records[id]
	if !ok {
		return nil, false
	}
	for key, value := range changes {
		record[key] = value
	}
	record[c.idField] = id
	return cloneRecord(record), true
}

func (c *collection) remove(id int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.records[id]; !ok {
		return false
	}
	delete(c.records, id)
	for i, existing := range c.order {
		if existing == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return true
}

func cloneRecord(record map[string]any) map[string]any {
	out := make(map[string]any, len(record))
	for key, value := range record {
		out[key] = value
	}
	return out
}
