package pipeline

// dedupCapacity caps each consumer's processed-id set.
const dedupCapacity = 100_000

// dedupSet remembers processed event ids so redelivered messages are
// skipped. Insertion order is tracked so overflow eviction is
// deterministic: when the set exceeds its capacity the older half is
// dropped. Not safe for concurrent use; each consumer owns one.
type dedupSet struct {
	ids      map[string]struct{}
	order    []string
	capacity int
}

func newDedupSet(capacity int) *dedupSet {
	if capacity <= 0 {
		capacity = dedupCapacity
	}
	return &dedupSet{
		ids:      make(map[string]struct{}),
		capacity: capacity,
	}
}

// Contains reports whether id was already processed.
func (d *dedupSet) Contains(id string) bool {
	_, ok := d.ids[id]
	return ok
}

// Add records id as processed.
func (d *dedupSet) Add(id string) {
	if _, ok := d.ids[id]; ok {
		return
	}
	d.ids[id] = struct{}{}
	d.order = append(d.order, id)

	if len(d.ids) <= d.capacity {
		return
	}
	evict := len(d.order) / 2
	for _, old := range d.order[:evict] {
		delete(d.ids, old)
	}
	d.order = append([]string(nil), d.order[evict:]...)
}

// Len returns the number of remembered ids.
func (d *dedupSet) Len() int {
	return len(d.ids)
}
