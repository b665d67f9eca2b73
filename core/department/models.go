package department

import (
	"time"

	"github.com/academica/curricula/core"
)

// Professor experience levels, derived from years of experience.
const (
	ExperienceBeginner     = "beginner"
	ExperienceIntermediate = "intermediate"
	ExperienceExperienced  = "experienced"
)

// ExperienceLevelFor derives a professor's experience level. The level is
// never client-set.
func ExperienceLevelFor(years int) string {
	switch {
	case years < 1:
		return ExperienceBeginner
	case years < 5:
		return ExperienceIntermediate
	default:
		return ExperienceExperienced
	}
}

type Department struct {
	ID          string    `json:"id" db:"id"`
	Code        string    `json:"code" db:"code"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	HeadID      string    `json:"head_id" db:"head_id"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"` // UTC
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"` // UTC
}

type Professor struct {
	ID                string    `json:"id" db:"id"`
	UserID            string    `json:"user_id" db:"user_id"`
	DepartmentCode    string    `json:"department_code" db:"department_code"`
	FullName          string    `json:"full_name" db:"full_name"`
	Email             string    `json:"email" db:"email"`
	PhoneNumber       string    `json:"phone_number" db:"phone_number"`
	YearsOfExperience int       `json:"years_of_experience" db:"years_of_experience"`
	HasPhD            bool      `json:"has_phd" db:"has_phd"`
	ExperienceLevel   string    `json:"experience_level" db:"experience_level"`
	CreatedAt         time.Time `json:"created_at" db:"created_at"` // UTC
	UpdatedAt         time.Time `json:"updated_at" db:"updated_at"` // UTC
}

// NewDepartment contains information needed to create a new Department.
type NewDepartment struct {
	Code        string `json:"code" validate:"required,alphanum"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	HeadID      string `json:"head_id"`
}

func (nd *NewDepartment) Validate(svc Service) error {
	nd.Code = core.CleanString(nd.Code, true /* lower */)
	nd.Title = core.CleanString(nd.Title)
	nd.Description = core.CleanString(nd.Description)

	if err := core.Validate.Struct(nd); err != nil {
		return err
	}
	return svc.CheckUniqueness(nd.Code)
}

// UpdateDepartment defines what information may be provided to modify an
// existing Department; zero values leave the original untouched.
type UpdateDepartment struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	HeadID      *string `json:"head_id"`
}

func (ud *UpdateDepartment) Validate(orig Department) error {
	if title := core.CleanString(ud.Title); title != "" {
		ud.Title = title
	} else {
		ud.Title = orig.Title
	}
	if desc := core.CleanString(ud.Description); desc != "" {
		ud.Description = desc
	} else {
		ud.Description = orig.Description
	}
	return core.Validate.Struct(ud)
}

// NewProfessor contains information needed to create a new Professor.
type NewProfessor struct {
	UserID            string `json:"user_id" validate:"required"`
	DepartmentCode    string `json:"department_code" validate:"required"`
	FullName          string `json:"full_name" validate:"required"`
	Email             string `json:"email" validate:"required,email"`
	PhoneNumber       string `json:"phone_number"`
	YearsOfExperience int    `json:"years_of_experience" validate:"gte=0"`
	HasPhD            bool   `json:"has_phd"`
}

func (np *NewProfessor) Validate(svc Service) error {
	np.DepartmentCode = core.CleanString(np.DepartmentCode, true /* lower */)
	np.FullName = core.CleanString(np.FullName)
	np.Email = core.CleanString(np.Email, true /* lower */)
	np.PhoneNumber = core.CleanString(np.PhoneNumber)

	if err := core.Validate.Struct(np); err != nil {
		return err
	}
	return svc.CheckProfessorEmailUniqueness(np.Email)
}

// UpdateProfessor defines what information may be provided to modify an
// existing Professor; zero values leave the original untouched. The experience
// level is re-derived whenever the years of experience change.
type UpdateProfessor struct {
	FullName          string `json:"full_name"`
	Email             string `json:"email" validate:"omitempty,email"`
	PhoneNumber       string `json:"phone_number"`
	YearsOfExperience *int   `json:"years_of_experience" validate:"omitempty,gte=0"`
	HasPhD            *bool  `json:"has_phd"`
}

func (up *UpdateProfessor) Validate(orig Professor, svc Service) error {
	if name := core.CleanString(up.FullName); name != "" {
		up.FullName = name
	} else {
		up.FullName = orig.FullName
	}
	if email := core.CleanString(up.Email, true /* lower */); email != "" {
		up.Email = email
	} else {
		up.Email = orig.Email
	}
	if phone := core.CleanString(up.PhoneNumber); phone != "" {
		up.PhoneNumber = phone
	}

	if err := core.Validate.Struct(up); err != nil {
		return err
	}
	return svc.CheckProfessorEmailUniqueness(up.Email, orig)
}
