package sim

// Herd owns the live cow collection as an indexed arena: a dense slice of
// cows plus a stable id -> slot map. Removal swaps the last slot in, so both
// removal and rescue-in-place are O(1). Iteration order is the slice order,
// which also defines the first-match rule for lasso rescue.
type Herd struct {
	cows   []*Cow
	slots  map[int]int // cow id -> index in cows
	nextID int
}

// NewHerd creates an empty herd.
func NewHerd() *Herd {
	return &Herd{
		cows:  make([]*Cow, 0, 16),
		slots: make(map[int]int),
	}
}

// Add inserts a cow and assigns it a fresh stable id.
func (h *Herd) Add(c *Cow) {
	c.ID = h.nextID
	h.nextID++
	h.slots[c.ID] = len(h.cows)
	h.cows = append(h.cows, c)
}

// Remove deletes the cow with the given id, if present. The last cow is
// swapped into the freed slot.
func (h *Herd) Remove(id int) {
	i, ok := h.slots[id]
	if !ok {
		return
	}
	last := len(h.cows) - 1
	if i != last {
		h.cows[i] = h.cows[last]
		h.slots[h.cows[i].ID] = i
	}
	h.cows = h.cows[:last]
	delete(h.slots, id)
}

// Get returns the cow with the given id, or nil.
func (h *Herd) Get(id int) *Cow {
	i, ok := h.slots[id]
	if !ok {
		return nil
	}
	return h.cows[i]
}

// Len returns the number of live cows.
func (h *Herd) Len() int {
	return len(h.cows)
}

// IDs returns the live cow ids in iteration order. The tick loop walks this
// snapshot so removals during the tick cannot skip or repeat a cow.
func (h *Herd) IDs() []int {
	ids := make([]int, len(h.cows))
	for i, c := range h.cows {
		ids[i] = c.ID
	}
	return ids
}

// Each calls fn for every live cow in iteration order.
func (h *Herd) Each(fn func(*Cow)) {
	for _, c := range h.cows {
		fn(c)
	}
}
