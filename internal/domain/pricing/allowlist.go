package pricing

// AllowList is the fixed set of Stripe price ids a client may check out
// with. Built once at startup, read-only afterwards.
type AllowList struct {
	ids map[string]struct{}
}

// NewAllowList builds the set from the configured price ids. Empty entries
// (unconfigured tiers) are skipped.
func NewAllowList(ids ...string) *AllowList {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		set[id] = struct{}{}
	}
	return &AllowList{ids: set}
}

// IsAllowed reports whether id exactly matches a configured price id.
// No trimming, no case folding.
func (a *AllowList) IsAllowed(id string) bool {
	if a == nil || id == "" {
		return false
	}
	_, ok := a.ids[id]
	return ok
}
