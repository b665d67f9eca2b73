package database

import (
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/academica/curricula/core/curriculum"
)

type curriculumRepository struct {
	db *sqlx.DB
}

var _ curriculum.Repository = (*curriculumRepository)(nil) // interface compliance check

func NewCurriculumRepository(db *sqlx.DB) curriculum.Repository {
	return &curriculumRepository{db: db}
}

func (repo *curriculumRepository) CheckCurriculumUniqueness(code string, excluded ...curriculum.Curriculum) error {
	query := `SELECT COUNT(*) FROM curriculum WHERE code = $1`
	args := []interface{}{code}
	if len(excluded) > 0 {
		query += ` AND id != $2`
		args = append(args, excluded[0].ID)
	}
	var count int
	if err := repo.db.Get(&count, query, args...); err != nil {
		return errors.Wrap(err, "checking curriculum uniqueness")
	}
	if count > 0 {
		return curriculum.ErrCurriculumExists
	}
	return nil
}

func (repo *curriculumRepository) CreateCurriculum(crm curriculum.Curriculum) (curriculum.Curriculum, error) {
	crm.ID = uuid.New().String()
	query := `
		INSERT INTO curriculum (id, major_code, classification, code, degree_type, total_credits,
			department_code, courses, is_active, created_at, updated_at)
		VALUES (:id, :major_code, :classification, :code, :degree_type, :total_credits,
			:department_code, :courses, :is_active, :created_at, :updated_at)`
	if _, err := repo.db.NamedExec(query, crm); err != nil {
		return curriculum.Curriculum{}, errors.Wrap(err, "creating curriculum")
	}
	return crm, nil
}

func (repo *curriculumRepository) QueryAllCurricula() ([]curriculum.Curriculum, error) {
	curricula := make([]curriculum.Curriculum, 0)
	if err := repo.db.Select(&curricula, `SELECT * FROM curriculum ORDER BY code`); err != nil {
		return nil, errors.Wrap(err, "querying curricula")
	}
	return curricula, nil
}

func (repo *curriculumRepository) GetCurriculumByCode(code string) (curriculum.Curriculum, error) {
	var crm curriculum.Curriculum
	if err := repo.db.Get(&crm, `SELECT * FROM curriculum WHERE code = $1`, code); err != nil {
		if err == sql.ErrNoRows {
			return curriculum.Curriculum{}, curriculum.ErrCurriculumNotFound
		}
		return curriculum.Curriculum{}, errors.Wrap(err, "getting curriculum")
	}
	return crm, nil
}

func (repo *curriculumRepository) UpdateCurriculum(crm curriculum.Curriculum) (curriculum.Curriculum, error) {
	query := `
		UPDATE curriculum
		SET major_code = :major_code, classification = :classification, degree_type = :degree_type,
			total_credits = :total_credits, department_code = :department_code, courses = :courses,
			is_active = :is_active, updated_at = :updated_at
		WHERE id = :id`
	if _, err := repo.db.NamedExec(query, crm); err != nil {
		return curriculum.Curriculum{}, errors.Wrap(err, "updating curriculum")
	}
	return crm, nil
}

func (repo *curriculumRepository) DeleteCurriculum(code string) error {
	res, err := repo.db.Exec(`DELETE FROM curriculum WHERE code = $1`, code)
	if err != nil {
		return errors.Wrap(err, "deleting curriculum")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return curriculum.ErrCurriculumNotFound
	}
	return nil
}
