package entity

// FilterPatients narrows an already-fetched list with Patient.Matches, keeping order.
func FilterPatients(patients []Patient, query string) []Patient {
	if query == "" {
		return patients
	}
	filtered := make([]Patient, 0, len(patients))
	for _, p := range patients {
		if p.Matches(query) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
