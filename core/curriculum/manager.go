package curriculum

// Manager exposes safe mutation over a validated CourseMap. The wrapped map
// is mutated in place; concurrent writers must be serialized by the caller
// (in practice the storage layer, one in-flight mutation per curriculum).
type Manager struct {
	courses CourseMap
}

// NewManager wraps courses after validating them; an invalid map is refused.
func NewManager(courses CourseMap) (*Manager, error) {
	if courses == nil {
		courses = make(CourseMap)
	}
	if err := courses.Validate(); err != nil {
		return nil, err
	}
	return &Manager{courses: courses}, nil
}

// Courses returns the wrapped map.
func (m *Manager) Courses() CourseMap { return m.courses }

// AddCourse inserts a new course after validating it.
func (m *Manager) AddCourse(course Course) error {
	if _, ok := m.courses[course.Code]; ok {
		return newInvariantErrorf(course.Code, "course already exists")
	}
	if err := course.Validate(); err != nil {
		return err
	}
	m.courses[course.Code] = course
	return nil
}

// UpdateCourse replaces an existing course after validating the replacement.
func (m *Manager) UpdateCourse(course Course) error {
	if _, ok := m.courses[course.Code]; !ok {
		return &NotFoundError{Code: course.Code}
	}
	if err := course.Validate(); err != nil {
		return err
	}
	m.courses[course.Code] = course
	return nil
}

// RemoveCourse deletes a course, unless another course still lists it as a
// prerequisite; the first conflicting course found (in code order) is
// reported.
func (m *Manager) RemoveCourse(code string) error {
	if _, ok := m.courses[code]; !ok {
		return &NotFoundError{Code: code}
	}

	for _, other := range m.courses.Codes() {
		if other == code {
			continue
		}
		for _, prereq := range m.courses[other].Prerequisites {
			if prereq == code {
				return newInvariantErrorf(code, "cannot remove: it is a prerequisite for %s", other)
			}
		}
	}

	delete(m.courses, code)
	return nil
}

// CoursesInSemester returns every course with at least one offering in the
// given semester, in code order.
func (m *Manager) CoursesInSemester(semester int) []Course {
	var courses []Course
	for _, code := range m.courses.Codes() {
		course := m.courses[code]
		for _, sd := range course.Semesters {
			if sd.Semester == semester {
				courses = append(courses, course)
				break
			}
		}
	}
	return courses
}

// CoursesOfType returns every course of the given type, in code order.
func (m *Manager) CoursesOfType(courseType string) []Course {
	var courses []Course
	for _, code := range m.courses.Codes() {
		if course := m.courses[code]; course.Type == courseType {
			courses = append(courses, course)
		}
	}
	return courses
}

// TreeNode is one node of a prerequisite tree.
type TreeNode struct {
	Code          string               `json:"code"`
	Name          string               `json:"name"`
	Prerequisites map[string]*TreeNode `json:"prerequisites"`
}

// PrerequisiteTree builds the rooted prerequisite tree of a course.
//
// Each branch of the traversal carries its own copy of the visited set; a
// prerequisite already on the current branch is pruned. This keeps the
// traversal finite in the presence of cycles (cycles are tolerated, not
// rejected) while still letting a course appear in sibling branches that did
// not pass through it.
func (m *Manager) PrerequisiteTree(code string) (*TreeNode, error) {
	if _, ok := m.courses[code]; !ok {
		return nil, &NotFoundError{Code: code}
	}
	return m.buildTree(code, make(map[string]bool)), nil
}

func (m *Manager) buildTree(code string, visited map[string]bool) *TreeNode {
	visited[code] = true
	course := m.courses[code]

	prereqs := make(map[string]*TreeNode, len(course.Prerequisites))
	for _, prereq := range course.Prerequisites {
		if visited[prereq] {
			continue // already on this branch; prune
		}
		branch := make(map[string]bool, len(visited)+1)
		for c := range visited {
			branch[c] = true
		}
		prereqs[prereq] = m.buildTree(prereq, branch)
	}
	return &TreeNode{Code: code, Name: course.Name, Prerequisites: prereqs}
}
