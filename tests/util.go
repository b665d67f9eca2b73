package testutil

import (
	"testing"
	"time"

	"github.com/academica/curricula/core/curriculum"
	"github.com/academica/curricula/core/department"
	"github.com/academica/curricula/core/user"
)

func CreateUser(
	t *testing.T,
	repo user.Repository,
	name, uname, email, pwd string,
	roles []string,
	isActive bool,
	createdAt ...time.Time,
) user.User {
	t.Helper()

	tstamp := time.Now().UTC()
	if len(createdAt) > 0 {
		tstamp = createdAt[0].UTC()
	}
	usr := user.User{
		Name:      name,
		Username:  uname,
		Email:     email,
		Roles:     roles,
		IsActive:  isActive,
		CreatedAt: tstamp,
		UpdatedAt: tstamp,
	}
	if pwd != "" {
		if err := usr.SetPassword(pwd); err != nil {
			t.Fatalf("CreateUser() failed: %v", err)
		}
	}
	usr, err := repo.CreateUser(usr)
	if err != nil {
		t.Fatalf("CreateUser() failed: %v", err)
	}
	return usr
}

func CreateDepartment(t *testing.T, repo department.Repository, code, title, headID string) department.Department {
	t.Helper()

	now := time.Now().UTC()
	dept, err := repo.CreateDepartment(department.Department{
		Code:      code,
		Title:     title,
		HeadID:    headID,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		t.Fatalf("CreateDepartment() failed: %v", err)
	}
	return dept
}

func CreateCurriculum(
	t *testing.T,
	repo curriculum.Repository,
	code, departmentCode string,
	courses curriculum.CourseMap,
) curriculum.Curriculum {
	t.Helper()

	if courses == nil {
		courses = make(curriculum.CourseMap)
	}
	now := time.Now().UTC()
	crm, err := repo.CreateCurriculum(curriculum.Curriculum{
		MajorCode:      "6B061",
		Classification: "Information Systems",
		Code:           code,
		DegreeType:     curriculum.DegreeBachelors,
		TotalCredits:   240,
		DepartmentCode: departmentCode,
		Courses:        courses,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	})
	if err != nil {
		t.Fatalf("CreateCurriculum() failed: %v", err)
	}
	return crm
}
