package main

import (
	"fmt"

	"github.com/academica/curricula/core/curriculum"
	"github.com/academica/curricula/core/department"
)

// seed loads a small sample dataset for local development.
func (cli *commandLine) seed() error {
	deptSvc := department.NewService(cli.deptRepo)

	dept, err := deptSvc.Create(department.NewDepartment{
		Code:        "cs",
		Title:       "Computer Science",
		Description: "Computer Science and Software Engineering",
	})
	if err != nil {
		return err
	}

	if _, err := deptSvc.CreateProfessor(department.NewProfessor{
		UserID:            "seed",
		DepartmentCode:    dept.Code,
		FullName:          "Ada Lovelace",
		Email:             "ada@example.edu",
		YearsOfExperience: 7,
		HasPhD:            true,
	}); err != nil {
		return err
	}

	crm, err := cli.crmSvc.Create(curriculum.NewCurriculum{
		MajorCode:      "6B061",
		Classification: "Information Systems",
		Code:           "CS2026",
		DegreeType:     curriculum.DegreeBachelors,
		TotalCredits:   240,
		DepartmentCode: dept.Code,
	})
	if err != nil {
		return err
	}

	// the import template doubles as sample course data
	if _, _, err := cli.crmSvc.Import(crm.Code, curriculum.Template(), true); err != nil {
		return err
	}

	fmt.Println("sample data loaded")
	return nil
}
