package reports

import "bus_ledger/internal/models"

// BusTypes lists the distinct bus types in order of first registration.
func BusTypes(buses []models.Bus) []string {
	seen := map[string]struct{}{}
	out := []string{}
	for _, b := range buses {
		if _, ok := seen[b.Type]; ok {
			continue
		}
		seen[b.Type] = struct{}{}
		out = append(out, b.Type)
	}
	return out
}

// AvailableBuses lists the buses that can be picked for an employee entry:
// those without one, plus the bus of the entry being edited (editingID, 0 for none).
func AvailableBuses(buses []models.Bus, emps []models.Employee, editingID int) []models.Bus {
	taken := map[int]bool{}
	for _, e := range emps {
		if e.ID != editingID {
			taken[e.BusID] = true
		}
	}
	out := []models.Bus{}
	for _, b := range buses {
		if !taken[b.ID] {
			out = append(out, b)
		}
	}
	return out
}
