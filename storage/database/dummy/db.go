package dummydb

import (
	"sync"

	"github.com/academica/curricula/core/curriculum"
	"github.com/academica/curricula/core/department"
	"github.com/academica/curricula/core/user"
)

type (
	DB struct {
		user       *userTable
		department *departmentTable
		professor  *professorTable
		curriculum *curriculumTable
	}

	userTable struct {
		sync.RWMutex
		table map[string]*user.User
	}

	departmentTable struct {
		sync.RWMutex
		table map[string]*department.Department
	}

	professorTable struct {
		sync.RWMutex
		table map[string]*department.Professor
	}

	curriculumTable struct {
		sync.RWMutex
		table map[string]*curriculum.Curriculum
	}
)

func Open() (*DB, error) {
	db := &DB{
		user:       &userTable{table: make(map[string]*user.User)},
		department: &departmentTable{table: make(map[string]*department.Department)},
		professor:  &professorTable{table: make(map[string]*department.Professor)},
		curriculum: &curriculumTable{table: make(map[string]*curriculum.Curriculum)},
	}
	return db, nil
}
