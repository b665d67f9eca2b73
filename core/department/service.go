package department

import (
	"errors"
	"time"

	"github.com/academica/curricula/core"
)

var (
	// errors
	ErrNotFound           = errors.New("department not found")
	ErrExists             = errors.New("a department with this code already exists")
	ErrProfessorNotFound  = errors.New("professor not found")
	ErrProfessorEmailUsed = errors.New("a professor with this email already exists")
)

type (
	Repository interface {
		CheckDepartmentUniqueness(code string, excluded ...Department) error
		CreateDepartment(dept Department) (Department, error)
		QueryAllDepartments() ([]Department, error)
		GetDepartmentByCode(code string) (Department, error)
		UpdateDepartment(dept Department) (Department, error)
		DeleteDepartment(code string) error

		CheckProfessorEmailUniqueness(email string, excluded ...Professor) error
		CreateProfessor(prof Professor) (Professor, error)
		QueryAllProfessors() ([]Professor, error)
		QueryProfessorsByDepartment(code string) ([]Professor, error)
		GetProfessorByID(id string) (Professor, error)
		UpdateProfessor(prof Professor) (Professor, error)
		DeleteProfessor(id string) error
	}

	Service interface {
		CheckUniqueness(code string, excluded ...Department) error
		Create(nd NewDepartment) (Department, error)
		QueryAll() ([]Department, error)
		GetByCode(code string) (Department, error)
		Update(code string, ud UpdateDepartment) (Department, error)
		Delete(code string) error

		CheckProfessorEmailUniqueness(email string, excluded ...Professor) error
		CreateProfessor(np NewProfessor) (Professor, error)
		QueryProfessors(departmentCode string) ([]Professor, error)
		GetProfessorByID(id string) (Professor, error)
		UpdateProfessor(id string, up UpdateProfessor) (Professor, error)
		DeleteProfessor(id string) error
	}

	service struct {
		repo Repository
	}
)

var _ Service = (*service)(nil)

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (svc *service) CheckUniqueness(code string, excluded ...Department) error {
	if err := svc.repo.CheckDepartmentUniqueness(code, excluded...); err != nil {
		if err == ErrExists {
			return core.NewValidationError(err, core.FieldError{Field: "code", Error: err.Error()})
		}
		return err
	}
	return nil
}

func (svc *service) Create(nd NewDepartment) (Department, error) {
	now := time.Now().UTC()
	dept := Department{
		Code:        nd.Code,
		Title:       nd.Title,
		Description: nd.Description,
		HeadID:      nd.HeadID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return svc.repo.CreateDepartment(dept)
}

func (svc *service) QueryAll() ([]Department, error) {
	return svc.repo.QueryAllDepartments()
}

func (svc *service) GetByCode(code string) (Department, error) {
	return svc.repo.GetDepartmentByCode(core.CleanString(code, true /* lower */))
}

func (svc *service) Update(code string, ud UpdateDepartment) (Department, error) {
	dept, err := svc.GetByCode(code)
	if err != nil {
		return Department{}, err
	}
	dept.Title = ud.Title
	dept.Description = ud.Description
	if ud.HeadID != nil {
		dept.HeadID = *ud.HeadID
	}
	dept.UpdatedAt = time.Now().UTC()
	return svc.repo.UpdateDepartment(dept)
}

func (svc *service) Delete(code string) error {
	return svc.repo.DeleteDepartment(core.CleanString(code, true /* lower */))
}

func (svc *service) CheckProfessorEmailUniqueness(email string, excluded ...Professor) error {
	if err := svc.repo.CheckProfessorEmailUniqueness(email, excluded...); err != nil {
		if err == ErrProfessorEmailUsed {
			return core.NewValidationError(err, core.FieldError{Field: "email", Error: err.Error()})
		}
		return err
	}
	return nil
}

func (svc *service) CreateProfessor(np NewProfessor) (Professor, error) {
	// the department must exist
	if _, err := svc.GetByCode(np.DepartmentCode); err != nil {
		if err == ErrNotFound {
			return Professor{}, core.NewValidationError(err, core.FieldError{Field: "department_code", Error: err.Error()})
		}
		return Professor{}, err
	}

	now := time.Now().UTC()
	prof := Professor{
		UserID:            np.UserID,
		DepartmentCode:    np.DepartmentCode,
		FullName:          np.FullName,
		Email:             np.Email,
		PhoneNumber:       np.PhoneNumber,
		YearsOfExperience: np.YearsOfExperience,
		HasPhD:            np.HasPhD,
		ExperienceLevel:   ExperienceLevelFor(np.YearsOfExperience),
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	return svc.repo.CreateProfessor(prof)
}

func (svc *service) QueryProfessors(departmentCode string) ([]Professor, error) {
	if departmentCode == "" {
		return svc.repo.QueryAllProfessors()
	}
	return svc.repo.QueryProfessorsByDepartment(core.CleanString(departmentCode, true /* lower */))
}

func (svc *service) GetProfessorByID(id string) (Professor, error) {
	return svc.repo.GetProfessorByID(id)
}

func (svc *service) UpdateProfessor(id string, up UpdateProfessor) (Professor, error) {
	prof, err := svc.repo.GetProfessorByID(id)
	if err != nil {
		return Professor{}, err
	}
	prof.FullName = up.FullName
	prof.Email = up.Email
	if up.PhoneNumber != "" {
		prof.PhoneNumber = up.PhoneNumber
	}
	if up.YearsOfExperience != nil {
		prof.YearsOfExperience = *up.YearsOfExperience
		prof.ExperienceLevel = ExperienceLevelFor(prof.YearsOfExperience)
	}
	if up.HasPhD != nil {
		prof.HasPhD = *up.HasPhD
	}
	prof.UpdatedAt = time.Now().UTC()
	return svc.repo.UpdateProfessor(prof)
}

func (svc *service) DeleteProfessor(id string) error {
	return svc.repo.DeleteProfessor(id)
}
