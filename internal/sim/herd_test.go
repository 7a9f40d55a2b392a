package sim

import "testing"

func TestHerdAddAssignsStableIDs(t *testing.T) {
	h := NewHerd()
	a := &Cow{}
	b := &Cow{}
	h.Add(a)
	h.Add(b)

	if a.ID == b.ID {
		t.Fatalf("Cows share id %d", a.ID)
	}
	if h.Get(a.ID) != a || h.Get(b.ID) != b {
		t.Error("Get should return the cow stored under its id")
	}
}

func TestHerdRemoveSwapsLastSlot(t *testing.T) {
	h := NewHerd()
	cows := make([]*Cow, 4)
	for i := range cows {
		cows[i] = &Cow{}
		h.Add(cows[i])
	}

	h.Remove(cows[1].ID)

	if h.Len() != 3 {
		t.Fatalf("Len after remove: got %d, expected 3", h.Len())
	}
	if h.Get(cows[1].ID) != nil {
		t.Error("Removed cow should not be retrievable")
	}
	// The swapped-in cow remains reachable under its own id.
	for _, c := range []*Cow{cows[0], cows[2], cows[3]} {
		if h.Get(c.ID) != c {
			t.Errorf("Cow %d lost after unrelated removal", c.ID)
		}
	}

	// Removing an unknown id is a no-op.
	h.Remove(999)
	if h.Len() != 3 {
		t.Errorf("Removing unknown id changed herd size to %d", h.Len())
	}
}

func TestHerdIDsIsStableSnapshot(t *testing.T) {
	h := NewHerd()
	for i := 0; i < 3; i++ {
		h.Add(&Cow{})
	}

	ids := h.IDs()
	h.Remove(ids[0])

	// The snapshot still lists the removed id; callers re-check via Get.
	if len(ids) != 3 {
		t.Fatalf("IDs snapshot length changed: %d", len(ids))
	}
	if h.Get(ids[0]) != nil {
		t.Error("Removed cow should resolve to nil")
	}
}
