package quota

// Limit is a fixed ceiling on the count of active rows of one resource kind
// owned by a single provider. The count scope differs per resource (gallery
// counts every photo, promotions count only active, unexpired rows) and is
// re-derived on every check, never cached.
type Limit struct {
	Resource string
	Max      int
}

func (l Limit) CanAdd(used int) bool {
	return used < l.Max
}

func (l Limit) Remaining(used int) int {
	if used >= l.Max {
		return 0
	}
	return l.Max - used
}

// Info is the "x of y used" shape the boundary renders for quota endpoints.
type Info struct {
	Used      int  `json:"used"`
	Limit     int  `json:"limit"`
	Remaining int  `json:"remaining"`
	CanAdd    bool `json:"can_add"`
}

func (l Limit) InfoFor(used int) Info {
	return Info{
		Used:      used,
		Limit:     l.Max,
		Remaining: l.Remaining(used),
		CanAdd:    l.CanAdd(used),
	}
}
