package curriculum

import "slices"

// Catalog is the merged, read-only standards dataset for every subject.
// Built once by NewCatalog and safe for concurrent use; nothing mutates
// it after construction.
type Catalog struct {
	courses []CourseStandards
	byID    map[string]Standard
}

// NewCatalog builds the catalog from the hand-authored subject datasets
// and precomputes the flat id index.
func NewCatalog() *Catalog {
	var courses []CourseStandards
	courses = append(courses, mathematicsStandards()...)
	courses = append(courses, chemistryStandards()...)

	byID := make(map[string]Standard)
	for _, c := range courses {
		for _, d := range c.Domains {
			for _, s := range d.Standards {
				byID[s.ID] = s
			}
		}
	}

	return &Catalog{courses: courses, byID: byID}
}

// StandardsForCourse returns all standards for the course, flattened
// across domains. Unknown courses yield an empty slice, never an error.
func (c *Catalog) StandardsForCourse(courseName string) []Standard {
	course, ok := c.findCourse(courseName)
	if !ok {
		return nil
	}
	var out []Standard
	for _, d := range course.Domains {
		out = append(out, d.Standards...)
	}
	return out
}

// DomainsForCourse returns the course's standards preserving domain
// grouping, for selection UIs. Empty for unknown courses.
func (c *Catalog) DomainsForCourse(courseName string) []DomainGroup {
	course, ok := c.findCourse(courseName)
	if !ok {
		return nil
	}
	return slices.Clone(course.Domains)
}

// StandardByID looks up a standard in the flat index, O(1) across every
// subject's sub-catalog.
func (c *Catalog) StandardByID(id string) (Standard, bool) {
	s, ok := c.byID[id]
	return s, ok
}

// StandardsByIDs resolves ids to standards, silently dropping any id
// with no match. Stale or renamed ids must not break the caller.
func (c *Catalog) StandardsByIDs(ids []string) []Standard {
	out := make([]Standard, 0, len(ids))
	for _, id := range ids {
		if s, ok := c.byID[id]; ok {
			out = append(out, s)
		}
	}
	return out
}

// Courses returns the names of every course in the catalog, in dataset
// order (mathematics first, then chemistry).
func (c *Catalog) Courses() []string {
	out := make([]string, len(c.courses))
	for i, course := range c.courses {
		out[i] = course.Course
	}
	return out
}

func (c *Catalog) findCourse(courseName string) (CourseStandards, bool) {
	// Subject resolution narrows which sub-catalog the name can live in,
	// but course names are globally unique so a direct scan suffices.
	for _, course := range c.courses {
		if course.Course == courseName {
			return course, true
		}
	}
	return CourseStandards{}, false
}
