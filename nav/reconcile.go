package nav

// Reconcile merges group link registrations against the live link
// definitions. For each registration whose id matches a live link, the
// registration's fields overlay the live link's (registration wins on
// conflict — today that is just the order override). Registrations with no
// matching live link are stale and silently dropped, so the result never
// contains an id absent from live. Output follows registration order.
func Reconcile(regs []GroupLink, live []NavLink) []NavLink {
	byID := make(map[string]NavLink, len(live))
	for _, l := range live {
		byID[l.ID] = l
	}

	out := make([]NavLink, 0, len(regs))
	for _, reg := range regs {
		link, ok := byID[reg.ID]
		if !ok {
			continue
		}
		if reg.Order != nil {
			link.Order = reg.Order
		}
		out = append(out, link)
	}
	return out
}
