package curriculum

import "sort"

// Course types
const (
	TypeMandatory = "mandatory"
	TypeSelective = "selective"
)

// HoursPerCredit ties one credit to 30 hours of total workload.
const HoursPerCredit = 30

// SemesterData is one course offering in one semester: its credits and the
// hour distribution backing them. It is owned by exactly one Course.
type SemesterData struct {
	Semester int              `json:"semester"`
	Credits  int              `json:"credits"`
	Hours    HourDistribution `json:"hours"`
}

// Validate checks the credit/hour arithmetic. Checks run in a fixed order and
// the first failure is returned.
func (sd SemesterData) Validate() error {
	if sd.Credits <= 0 {
		return newInvariantErrorf("", "credits must be positive")
	}
	if total, expected := sd.Hours.TotalHours(), sd.Credits*HoursPerCredit; total != expected {
		return newInvariantErrorf("", "total hours (%d) must equal credits x 30 (%d)", total, expected)
	}
	if sd.Hours.Individual <= 0 {
		return newInvariantErrorf("", "individual hours must be present")
	}
	if sd.Hours.InstructionalHours() <= 0 {
		return newInvariantErrorf("", "at least one type of instructional hour must be present")
	}
	return nil
}

// Course is a unit of study identified by a unique code, offered in one or
// more semesters. Prerequisites are stored as code references, resolved by
// lookup in the owning CourseMap.
type Course struct {
	Code          string         `json:"code"`
	Name          string         `json:"name"`
	Type          string         `json:"type"`
	Semesters     []SemesterData `json:"semesters"`
	Prerequisites []string       `json:"prerequisites"`
}

// TotalCredits sums the course's credits across all its semesters.
func (c Course) TotalCredits() int {
	var total int
	for _, sd := range c.Semesters {
		total += sd.Credits
	}
	return total
}

// Validate checks the course's internal consistency. The first duplicate
// semester number encountered in sequence order is rejected; each semester's
// own validation runs in sequence order and the first failure propagates.
func (c Course) Validate() error {
	if c.Code == "" || c.Name == "" {
		return newInvariantErrorf(c.Code, "course code and name are required")
	}
	if c.Type != TypeMandatory && c.Type != TypeSelective {
		return newInvariantErrorf(c.Code, "invalid course type: %q", c.Type)
	}
	if len(c.Semesters) == 0 {
		return newInvariantErrorf(c.Code, "at least one semester is required")
	}

	seen := make(map[int]bool, len(c.Semesters))
	for _, sd := range c.Semesters {
		if seen[sd.Semester] {
			return newInvariantErrorf(c.Code, "duplicate semester number: %d", sd.Semester)
		}
		seen[sd.Semester] = true
		if err := sd.Validate(); err != nil {
			return withCourseCode(err, c.Code)
		}
	}
	return nil
}

// CourseMap maps course codes to their records. It is the root of the
// curriculum data structure and owns all Course values.
type CourseMap map[string]Course

// Codes returns all course codes in sorted order. Go maps are unordered, so
// sorted-by-code is the canonical iteration order everywhere.
func (cm CourseMap) Codes() []string {
	codes := make([]string, 0, len(cm))
	for code := range cm {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Validate checks every course, then the prerequisite cross-references.
// Courses are checked in code order, stopping at the first failure; the
// prerequisite scan only runs once all courses are known valid, and reports
// the owning course along with every unknown code it references.
func (cm CourseMap) Validate() error {
	for _, code := range cm.Codes() {
		course := cm[code]
		if course.Code != code {
			return newInvariantErrorf(code, "course code mismatch: %s vs %s", code, course.Code)
		}
		if err := course.Validate(); err != nil {
			return err
		}
	}

	for _, code := range cm.Codes() {
		course := cm[code]
		unknown := make(map[string]bool)
		for _, prereq := range course.Prerequisites {
			if _, ok := cm[prereq]; !ok {
				unknown[prereq] = true
			}
		}
		if len(unknown) > 0 {
			codes := make([]string, 0, len(unknown))
			for c := range unknown {
				codes = append(codes, c)
			}
			sort.Strings(codes)
			return newInvariantErrorf(code, "invalid prerequisites: %v", codes)
		}
	}
	return nil
}
