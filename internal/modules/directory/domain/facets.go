package domain

// Facets lists the filter values offered to the user, each list starting with All.
type Facets struct {
	Mediums     []string `json:"mediums"`
	Experiences []string `json:"experiences"`
}

// DeriveFacets builds the facet lists from the values present in records,
// in enumeration order. Values outside the enumerations are appended in
// first-seen order.
func DeriveFacets(records []Artist) Facets {
	mediums := make(map[string]bool)
	experiences := make(map[string]bool)
	var extraMediums, extraExperiences []string

	for _, a := range records {
		m := string(a.Medium)
		if m != "" && !mediums[m] {
			mediums[m] = true
			if !a.Medium.Valid() {
				extraMediums = append(extraMediums, m)
			}
		}
		e := string(a.Experience)
		if e != "" && !experiences[e] {
			experiences[e] = true
			if !a.Experience.Valid() {
				extraExperiences = append(extraExperiences, e)
			}
		}
	}

	f := Facets{Mediums: []string{All}, Experiences: []string{All}}
	for _, m := range Mediums() {
		if mediums[string(m)] {
			f.Mediums = append(f.Mediums, string(m))
		}
	}
	for _, e := range Experiences() {
		if experiences[string(e)] {
			f.Experiences = append(f.Experiences, string(e))
		}
	}
	f.Mediums = append(f.Mediums, extraMediums...)
	f.Experiences = append(f.Experiences, extraExperiences...)
	return f
}
