package curriculum

// Standard is a single curriculum-framework learning objective.
// Standards are immutable after catalog load; identity is ID.
type Standard struct {
	// ID is the framework identifier, e.g. "G-SRT.6". Unique across
	// every subject and course in the catalog.
	ID string

	// Domain is the named grouping this standard belongs to within its
	// course, e.g. "Circles".
	Domain string

	// Cluster is the finer grouping within the domain.
	Cluster string

	// Description is the full standard text.
	Description string

	// KeyVocabulary lists terms associated with the standard. Fed to the
	// matcher prompt as matching signal.
	KeyVocabulary []string

	// KeyFormulas lists LaTeX formulas associated with the standard.
	KeyFormulas []string
}

// DomainGroup partitions a course's standards by domain. Display and
// selection grouping only, not a separate identity space.
type DomainGroup struct {
	Domain    string
	Standards []Standard
}

// CourseStandards is the full standards set for one course.
type CourseStandards struct {
	Course  string
	Domains []DomainGroup
}

// Subject names a top-level sub-catalog.
type Subject string

const (
	SubjectMathematics Subject = "Mathematics"
	SubjectChemistry   Subject = "Chemistry"
)
