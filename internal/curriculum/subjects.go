package curriculum

// courseNamesBySubject is the static course → subject mapping. Subject
// resolution is data, not inference.
var courseNamesBySubject = map[Subject][]string{
	SubjectMathematics: {"Algebra I", "Geometry", "Algebra II", "Precalculus"},
	SubjectChemistry:   {"Chemistry I", "Honors Chemistry", "Chemistry II", "AP Chemistry"},
}

// courseGrades maps each course to the grade levels it is offered in.
var courseGrades = map[string][]int{
	"Algebra I":        {9, 10},
	"Geometry":         {9, 10, 11},
	"Algebra II":       {10, 11},
	"Precalculus":      {11, 12},
	"Chemistry I":      {9, 10},
	"Honors Chemistry": {10, 11},
	"Chemistry II":     {11, 12},
	"AP Chemistry":     {11, 12},
}

// SubjectForCourse resolves which sub-catalog a course name belongs to.
// Unknown names default to Mathematics, matching historical behavior for
// courses created before the chemistry catalog existed.
func SubjectForCourse(courseName string) Subject {
	for subject, names := range courseNamesBySubject {
		for _, n := range names {
			if n == courseName {
				return subject
			}
		}
	}
	return SubjectMathematics
}

// CourseNames returns all known course names for a subject.
func CourseNames(subject Subject) []string {
	return courseNamesBySubject[subject]
}

// GradesForCourse returns the grade levels a course is offered in, or nil
// for unknown courses.
func GradesForCourse(courseName string) []int {
	return courseGrades[courseName]
}
