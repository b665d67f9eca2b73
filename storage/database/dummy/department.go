package dummydb

import (
	"sort"

	"github.com/google/uuid"

	"github.com/academica/curricula/core/department"
)

type departmentRepository struct {
	depts *departmentTable
	profs *professorTable
}

var _ department.Repository = (*departmentRepository)(nil) // interface compliance check

func NewDepartmentRepository(db *DB) department.Repository {
	return &departmentRepository{depts: db.department, profs: db.professor}
}

func (repo *departmentRepository) CheckDepartmentUniqueness(code string, excluded ...department.Department) error {
	repo.depts.RLock()
	defer repo.depts.RUnlock()

	for _, dept := range repo.depts.table {
		if dept.Code != code {
			continue
		}
		if len(excluded) > 0 && excluded[0].ID == dept.ID {
			continue
		}
		return department.ErrExists
	}
	return nil
}

func (repo *departmentRepository) CreateDepartment(dept department.Department) (department.Department, error) {
	repo.depts.Lock()
	defer repo.depts.Unlock()

	dept.ID = uuid.New().String()
	repo.depts.table[dept.ID] = &dept
	return dept, nil
}

func (repo *departmentRepository) QueryAllDepartments() ([]department.Department, error) {
	repo.depts.RLock()
	defer repo.depts.RUnlock()

	depts := make([]department.Department, 0, len(repo.depts.table))
	for _, dept := range repo.depts.table {
		depts = append(depts, *dept)
	}
	sort.Slice(depts, func(i, j int) bool { return depts[i].Code < depts[j].Code })
	return depts, nil
}

func (repo *departmentRepository) GetDepartmentByCode(code string) (department.Department, error) {
	repo.depts.RLock()
	defer repo.depts.RUnlock()

	for _, dept := range repo.depts.table {
		if dept.Code == code {
			return *dept, nil
		}
	}
	return department.Department{}, department.ErrNotFound
}

func (repo *departmentRepository) UpdateDepartment(dept department.Department) (department.Department, error) {
	repo.depts.Lock()
	defer repo.depts.Unlock()

	if _, ok := repo.depts.table[dept.ID]; !ok {
		return department.Department{}, department.ErrNotFound
	}
	repo.depts.table[dept.ID] = &dept
	return dept, nil
}

func (repo *departmentRepository) DeleteDepartment(code string) error {
	repo.depts.Lock()
	defer repo.depts.Unlock()

	for id, dept := range repo.depts.table {
		if dept.Code == code {
			delete(repo.depts.table, id)
			return nil
		}
	}
	return department.ErrNotFound
}

func (repo *departmentRepository) CheckProfessorEmailUniqueness(email string, excluded ...department.Professor) error {
	repo.profs.RLock()
	defer repo.profs.RUnlock()

	for _, prof := range repo.profs.table {
		if prof.Email != email {
			continue
		}
		if len(excluded) > 0 && excluded[0].ID == prof.ID {
			continue
		}
		return department.ErrProfessorEmailUsed
	}
	return nil
}

func (repo *departmentRepository) CreateProfessor(prof department.Professor) (department.Professor, error) {
	repo.profs.Lock()
	defer repo.profs.Unlock()

	prof.ID = uuid.New().String()
	repo.profs.table[prof.ID] = &prof
	return prof, nil
}

func (repo *departmentRepository) queryProfessors(match func(department.Professor) bool) []department.Professor {
	profs := make([]department.Professor, 0, len(repo.profs.table))
	for _, prof := range repo.profs.table {
		if match(*prof) {
			profs = append(profs, *prof)
		}
	}
	sort.Slice(profs, func(i, j int) bool { return profs[i].FullName < profs[j].FullName })
	return profs
}

func (repo *departmentRepository) QueryAllProfessors() ([]department.Professor, error) {
	repo.profs.RLock()
	defer repo.profs.RUnlock()
	return repo.queryProfessors(func(department.Professor) bool { return true }), nil
}

func (repo *departmentRepository) QueryProfessorsByDepartment(code string) ([]department.Professor, error) {
	repo.profs.RLock()
	defer repo.profs.RUnlock()
	return repo.queryProfessors(func(p department.Professor) bool { return p.DepartmentCode == code }), nil
}

func (repo *departmentRepository) GetProfessorByID(id string) (department.Professor, error) {
	repo.profs.RLock()
	defer repo.profs.RUnlock()

	if prof, ok := repo.profs.table[id]; ok {
		return *prof, nil
	}
	return department.Professor{}, department.ErrProfessorNotFound
}

func (repo *departmentRepository) UpdateProfessor(prof department.Professor) (department.Professor, error) {
	repo.profs.Lock()
	defer repo.profs.Unlock()

	if _, ok := repo.profs.table[prof.ID]; !ok {
		return department.Professor{}, department.ErrProfessorNotFound
	}
	repo.profs.table[prof.ID] = &prof
	return prof, nil
}

func (repo *departmentRepository) DeleteProfessor(id string) error {
	repo.profs.Lock()
	defer repo.profs.Unlock()

	if _, ok := repo.profs.table[id]; !ok {
		return department.ErrProfessorNotFound
	}
	delete(repo.profs.table, id)
	return nil
}
