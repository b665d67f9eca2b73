package curriculum

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/academica/curricula/core"
)

// Degree types
const (
	DegreeBachelors = "BSC"
	DegreeMasters   = "MSC"
)

// Minimum graduation credits per degree type.
const (
	minBachelorsCredits = 120
	minMastersCredits   = 30
)

// Curriculum is the complete course mapping of one academic program, plus the
// program's administrative identity.
type Curriculum struct {
	ID             string    `json:"id" db:"id"`
	MajorCode      string    `json:"major_code" db:"major_code"`
	Classification string    `json:"classification" db:"classification"`
	Code           string    `json:"code" db:"code"`
	DegreeType     string    `json:"degree_type" db:"degree_type"`
	TotalCredits   int       `json:"total_credits" db:"total_credits"`
	DepartmentCode string    `json:"department_code" db:"department_code"`
	Courses        CourseMap `json:"courses" db:"courses"`
	IsActive       bool      `json:"is_active" db:"is_active"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"` // UTC
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"` // UTC
}

// CalculatedCredits sums the credits of all courses across all semesters.
func (c Curriculum) CalculatedCredits() int {
	var total int
	for _, course := range c.Courses {
		total += course.TotalCredits()
	}
	return total
}

// Value implements driver.Valuer; Courses persist as a JSON document.
func (cm CourseMap) Value() (driver.Value, error) {
	if cm == nil {
		cm = make(CourseMap)
	}
	return json.Marshal(cm)
}

// Scan implements sql.Scanner.
func (cm *CourseMap) Scan(src interface{}) error {
	if src == nil {
		*cm = make(CourseMap)
		return nil
	}
	switch data := src.(type) {
	case []byte:
		return json.Unmarshal(data, cm)
	case string:
		return json.Unmarshal([]byte(data), cm)
	default:
		return errors.New("unsupported source type for CourseMap")
	}
}

// NewCurriculum contains information needed to create a new Curriculum.
// Courses start empty and are filled through import or course mutations.
type NewCurriculum struct {
	MajorCode      string `json:"major_code" validate:"required"`
	Classification string `json:"classification" validate:"required"`
	Code           string `json:"code" validate:"required,alphanum"`
	DegreeType     string `json:"degree_type" validate:"required,oneof=BSC MSC"`
	TotalCredits   int    `json:"total_credits" validate:"required,gt=0"`
	DepartmentCode string `json:"department_code" validate:"required"`
}

func (nc *NewCurriculum) Validate(svc Service) error {
	nc.MajorCode = core.CleanString(nc.MajorCode)
	nc.Classification = core.CleanString(nc.Classification)
	nc.Code = core.CleanString(nc.Code)
	nc.DepartmentCode = core.CleanString(nc.DepartmentCode)

	if err := core.Validate.Struct(nc); err != nil {
		return err
	}
	if err := validateDegreeCredits(nc.DegreeType, nc.TotalCredits); err != nil {
		return err
	}
	return svc.CheckUniqueness(nc.Code)
}

// UpdateCurriculum defines what information may be provided to modify an
// existing Curriculum; zero values leave the original untouched.
type UpdateCurriculum struct {
	MajorCode      string `json:"major_code"`
	Classification string `json:"classification"`
	DegreeType     string `json:"degree_type" validate:"omitempty,oneof=BSC MSC"`
	TotalCredits   int    `json:"total_credits" validate:"omitempty,gt=0"`
	DepartmentCode string `json:"department_code"`
	IsActive       *bool  `json:"is_active"`
}

func (uc *UpdateCurriculum) Validate(orig Curriculum) error {
	if mc := core.CleanString(uc.MajorCode); mc != "" {
		uc.MajorCode = mc
	} else {
		uc.MajorCode = orig.MajorCode
	}
	if cl := core.CleanString(uc.Classification); cl != "" {
		uc.Classification = cl
	} else {
		uc.Classification = orig.Classification
	}
	if uc.DegreeType == "" {
		uc.DegreeType = orig.DegreeType
	}
	if uc.TotalCredits == 0 {
		uc.TotalCredits = orig.TotalCredits
	}
	if dc := core.CleanString(uc.DepartmentCode); dc != "" {
		uc.DepartmentCode = dc
	} else {
		uc.DepartmentCode = orig.DepartmentCode
	}

	if err := core.Validate.Struct(uc); err != nil {
		return err
	}
	return validateDegreeCredits(uc.DegreeType, uc.TotalCredits)
}

func validateDegreeCredits(degreeType string, totalCredits int) error {
	switch degreeType {
	case DegreeBachelors:
		if totalCredits < minBachelorsCredits {
			return core.NewValidationError(nil, core.FieldError{
				Field: "total_credits",
				Error: "a Bachelor's degree must have at least 120 credits",
			})
		}
	case DegreeMasters:
		if totalCredits < minMastersCredits {
			return core.NewValidationError(nil, core.FieldError{
				Field: "total_credits",
				Error: "a Master's degree must have at least 30 credits",
			})
		}
	}
	return nil
}
