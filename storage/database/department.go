package database

import (
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/academica/curricula/core/department"
)

type departmentRepository struct {
	db *sqlx.DB
}

var _ department.Repository = (*departmentRepository)(nil) // interface compliance check

func NewDepartmentRepository(db *sqlx.DB) department.Repository {
	return &departmentRepository{db: db}
}

func (repo *departmentRepository) CheckDepartmentUniqueness(code string, excluded ...department.Department) error {
	query := `SELECT COUNT(*) FROM department WHERE code = $1`
	args := []interface{}{code}
	if len(excluded) > 0 {
		query += ` AND id != $2`
		args = append(args, excluded[0].ID)
	}
	var count int
	if err := repo.db.Get(&count, query, args...); err != nil {
		return errors.Wrap(err, "checking department uniqueness")
	}
	if count > 0 {
		return department.ErrExists
	}
	return nil
}

func (repo *departmentRepository) CreateDepartment(dept department.Department) (department.Department, error) {
	dept.ID = uuid.New().String()
	query := `
		INSERT INTO department (id, code, title, description, head_id, created_at, updated_at)
		VALUES (:id, :code, :title, :description, :head_id, :created_at, :updated_at)`
	if _, err := repo.db.NamedExec(query, dept); err != nil {
		return department.Department{}, errors.Wrap(err, "creating department")
	}
	return dept, nil
}

func (repo *departmentRepository) QueryAllDepartments() ([]department.Department, error) {
	depts := make([]department.Department, 0)
	if err := repo.db.Select(&depts, `SELECT * FROM department ORDER BY code`); err != nil {
		return nil, errors.Wrap(err, "querying departments")
	}
	return depts, nil
}

func (repo *departmentRepository) GetDepartmentByCode(code string) (department.Department, error) {
	var dept department.Department
	if err := repo.db.Get(&dept, `SELECT * FROM department WHERE code = $1`, code); err != nil {
		if err == sql.ErrNoRows {
			return department.Department{}, department.ErrNotFound
		}
		return department.Department{}, errors.Wrap(err, "getting department")
	}
	return dept, nil
}

func (repo *departmentRepository) UpdateDepartment(dept department.Department) (department.Department, error) {
	query := `
		UPDATE department
		SET title = :title, description = :description, head_id = :head_id, updated_at = :updated_at
		WHERE id = :id`
	if _, err := repo.db.NamedExec(query, dept); err != nil {
		return department.Department{}, errors.Wrap(err, "updating department")
	}
	return dept, nil
}

func (repo *departmentRepository) DeleteDepartment(code string) error {
	res, err := repo.db.Exec(`DELETE FROM department WHERE code = $1`, code)
	if err != nil {
		return errors.Wrap(err, "deleting department")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return department.ErrNotFound
	}
	return nil
}

func (repo *departmentRepository) CheckProfessorEmailUniqueness(email string, excluded ...department.Professor) error {
	query := `SELECT COUNT(*) FROM professor WHERE email = $1`
	args := []interface{}{email}
	if len(excluded) > 0 {
		query += ` AND id != $2`
		args = append(args, excluded[0].ID)
	}
	var count int
	if err := repo.db.Get(&count, query, args...); err != nil {
		return errors.Wrap(err, "checking professor email uniqueness")
	}
	if count > 0 {
		return department.ErrProfessorEmailUsed
	}
	return nil
}

func (repo *departmentRepository) CreateProfessor(prof department.Professor) (department.Professor, error) {
	prof.ID = uuid.New().String()
	query := `
		INSERT INTO professor (id, user_id, department_code, full_name, email, phone_number,
			years_of_experience, has_phd, experience_level, created_at, updated_at)
		VALUES (:id, :user_id, :department_code, :full_name, :email, :phone_number,
			:years_of_experience, :has_phd, :experience_level, :created_at, :updated_at)`
	if _, err := repo.db.NamedExec(query, prof); err != nil {
		return department.Professor{}, errors.Wrap(err, "creating professor")
	}
	return prof, nil
}

func (repo *departmentRepository) QueryAllProfessors() ([]department.Professor, error) {
	profs := make([]department.Professor, 0)
	if err := repo.db.Select(&profs, `SELECT * FROM professor ORDER BY full_name`); err != nil {
		return nil, errors.Wrap(err, "querying professors")
	}
	return profs, nil
}

func (repo *departmentRepository) QueryProfessorsByDepartment(code string) ([]department.Professor, error) {
	profs := make([]department.Professor, 0)
	if err := repo.db.Select(&profs, `SELECT * FROM professor WHERE department_code = $1 ORDER BY full_name`, code); err != nil {
		return nil, errors.Wrap(err, "querying professors")
	}
	return profs, nil
}

func (repo *departmentRepository) GetProfessorByID(id string) (department.Professor, error) {
	var prof department.Professor
	if err := repo.db.Get(&prof, `SELECT * FROM professor WHERE id = $1`, id); err != nil {
		if err == sql.ErrNoRows {
			return department.Professor{}, department.ErrProfessorNotFound
		}
		return department.Professor{}, errors.Wrap(err, "getting professor")
	}
	return prof, nil
}

func (repo *departmentRepository) UpdateProfessor(prof department.Professor) (department.Professor, error) {
	query := `
		UPDATE professor
		SET department_code = :department_code, full_name = :full_name, email = :email,
			phone_number = :phone_number, years_of_experience = :years_of_experience,
			has_phd = :has_phd, experience_level = :experience_level, updated_at = :updated_at
		WHERE id = :id`
	if _, err := repo.db.NamedExec(query, prof); err != nil {
		return department.Professor{}, errors.Wrap(err, "updating professor")
	}
	return prof, nil
}

func (repo *departmentRepository) DeleteProfessor(id string) error {
	res, err := repo.db.Exec(`DELETE FROM professor WHERE id = $1`, id)
	if err != nil {
		return errors.Wrap(err, "deleting professor")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return department.ErrProfessorNotFound
	}
	return nil
}
