package curriculum

import (
	"time"

	"github.com/academica/curricula/core"
)

type (
	Repository interface {
		CheckCurriculumUniqueness(code string, excluded ...Curriculum) error
		CreateCurriculum(crm Curriculum) (Curriculum, error)
		QueryAllCurricula() ([]Curriculum, error)
		GetCurriculumByCode(code string) (Curriculum, error)
		UpdateCurriculum(crm Curriculum) (Curriculum, error)
		DeleteCurriculum(code string) error
	}

	Service interface {
		CheckUniqueness(code string, excluded ...Curriculum) error
		Create(nc NewCurriculum) (Curriculum, error)
		QueryAll() ([]Curriculum, error)
		GetByCode(code string) (Curriculum, error)
		Update(code string, uc UpdateCurriculum) (Curriculum, error)
		Delete(code string) error

		// Import decodes tab and, when apply is set, replaces the curriculum's
		// courses with the decoded map. Warnings are returned either way.
		Import(code string, tab Table, apply bool) (CourseMap, []string, error)
		Export(code string) (Table, error)

		AddCourse(code string, course Course) (Curriculum, error)
		UpdateCourse(code string, course Course) (Curriculum, error)
		RemoveCourse(code, courseCode string) (Curriculum, error)
		CoursesInSemester(code string, semester int) ([]Course, error)
		CoursesOfType(code, courseType string) ([]Course, error)
		PrerequisiteTree(code, courseCode string) (*TreeNode, error)
	}

	service struct {
		repo Repository
	}
)

var _ Service = (*service)(nil)

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (svc *service) CheckUniqueness(code string, excluded ...Curriculum) error {
	if err := svc.repo.CheckCurriculumUniqueness(code, excluded...); err != nil {
		if err == ErrCurriculumExists {
			return core.NewValidationError(err, core.FieldError{Field: "code", Error: err.Error()})
		}
		return err
	}
	return nil
}

func (svc *service) Create(nc NewCurriculum) (Curriculum, error) {
	now := time.Now().UTC()
	crm := Curriculum{
		MajorCode:      nc.MajorCode,
		Classification: nc.Classification,
		Code:           nc.Code,
		DegreeType:     nc.DegreeType,
		TotalCredits:   nc.TotalCredits,
		DepartmentCode: nc.DepartmentCode,
		Courses:        make(CourseMap),
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	return svc.repo.CreateCurriculum(crm)
}

func (svc *service) QueryAll() ([]Curriculum, error) {
	return svc.repo.QueryAllCurricula()
}

func (svc *service) GetByCode(code string) (Curriculum, error) {
	return svc.repo.GetCurriculumByCode(code)
}

func (svc *service) Update(code string, uc UpdateCurriculum) (Curriculum, error) {
	crm, err := svc.repo.GetCurriculumByCode(code)
	if err != nil {
		return Curriculum{}, err
	}
	crm.MajorCode = uc.MajorCode
	crm.Classification = uc.Classification
	crm.DegreeType = uc.DegreeType
	crm.TotalCredits = uc.TotalCredits
	crm.DepartmentCode = uc.DepartmentCode
	if uc.IsActive != nil {
		crm.IsActive = *uc.IsActive
	}
	crm.UpdatedAt = time.Now().UTC()
	return svc.repo.UpdateCurriculum(crm)
}

func (svc *service) Delete(code string) error {
	return svc.repo.DeleteCurriculum(code)
}

func (svc *service) Import(code string, tab Table, apply bool) (CourseMap, []string, error) {
	courses, warnings, err := Decode(tab)
	if err != nil {
		return nil, nil, err
	}
	if !apply {
		return courses, warnings, nil
	}

	crm, err := svc.repo.GetCurriculumByCode(code)
	if err != nil {
		return nil, nil, err
	}
	crm.Courses = courses
	crm.UpdatedAt = time.Now().UTC()
	if _, err := svc.repo.UpdateCurriculum(crm); err != nil {
		return nil, nil, err
	}
	return courses, warnings, nil
}

func (svc *service) Export(code string) (Table, error) {
	crm, err := svc.repo.GetCurriculumByCode(code)
	if err != nil {
		return Table{}, err
	}
	return Encode(crm.Courses), nil
}

// mutateCourses runs op against a Manager wrapping the curriculum's courses
// and saves the result.
func (svc *service) mutateCourses(code string, op func(*Manager) error) (Curriculum, error) {
	crm, err := svc.repo.GetCurriculumByCode(code)
	if err != nil {
		return Curriculum{}, err
	}
	mgr, err := NewManager(crm.Courses)
	if err != nil {
		return Curriculum{}, err
	}
	if err := op(mgr); err != nil {
		return Curriculum{}, err
	}
	crm.Courses = mgr.Courses()
	crm.UpdatedAt = time.Now().UTC()
	return svc.repo.UpdateCurriculum(crm)
}

func (svc *service) AddCourse(code string, course Course) (Curriculum, error) {
	return svc.mutateCourses(code, func(mgr *Manager) error { return mgr.AddCourse(course) })
}

func (svc *service) UpdateCourse(code string, course Course) (Curriculum, error) {
	return svc.mutateCourses(code, func(mgr *Manager) error { return mgr.UpdateCourse(course) })
}

func (svc *service) RemoveCourse(code, courseCode string) (Curriculum, error) {
	return svc.mutateCourses(code, func(mgr *Manager) error { return mgr.RemoveCourse(courseCode) })
}

func (svc *service) withManager(code string) (*Manager, error) {
	crm, err := svc.repo.GetCurriculumByCode(code)
	if err != nil {
		return nil, err
	}
	return NewManager(crm.Courses)
}

func (svc *service) CoursesInSemester(code string, semester int) ([]Course, error) {
	mgr, err := svc.withManager(code)
	if err != nil {
		return nil, err
	}
	return mgr.CoursesInSemester(semester), nil
}

func (svc *service) CoursesOfType(code, courseType string) ([]Course, error) {
	mgr, err := svc.withManager(code)
	if err != nil {
		return nil, err
	}
	return mgr.CoursesOfType(courseType), nil
}

func (svc *service) PrerequisiteTree(code, courseCode string) (*TreeNode, error) {
	mgr, err := svc.withManager(code)
	if err != nil {
		return nil, err
	}
	return mgr.PrerequisiteTree(courseCode)
}
