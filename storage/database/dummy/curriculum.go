package dummydb

import (
	"sort"

	"github.com/google/uuid"

	"github.com/academica/curricula/core/curriculum"
)

type curriculumRepository struct {
	db *curriculumTable
}

var _ curriculum.Repository = (*curriculumRepository)(nil) // interface compliance check

func NewCurriculumRepository(db *DB) curriculum.Repository {
	return &curriculumRepository{db: db.curriculum}
}

func (repo *curriculumRepository) CheckCurriculumUniqueness(code string, excluded ...curriculum.Curriculum) error {
	repo.db.RLock()
	defer repo.db.RUnlock()

	for _, crm := range repo.db.table {
		if crm.Code != code {
			continue
		}
		if len(excluded) > 0 && excluded[0].ID == crm.ID {
			continue
		}
		return curriculum.ErrCurriculumExists
	}
	return nil
}

func (repo *curriculumRepository) CreateCurriculum(crm curriculum.Curriculum) (curriculum.Curriculum, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	crm.ID = uuid.New().String()
	repo.db.table[crm.ID] = &crm
	return crm, nil
}

func (repo *curriculumRepository) QueryAllCurricula() ([]curriculum.Curriculum, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	curricula := make([]curriculum.Curriculum, 0, len(repo.db.table))
	for _, crm := range repo.db.table {
		curricula = append(curricula, *crm)
	}
	sort.Slice(curricula, func(i, j int) bool { return curricula[i].Code < curricula[j].Code })
	return curricula, nil
}

func (repo *curriculumRepository) GetCurriculumByCode(code string) (curriculum.Curriculum, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	for _, crm := range repo.db.table {
		if crm.Code == code {
			return *crm, nil
		}
	}
	return curriculum.Curriculum{}, curriculum.ErrCurriculumNotFound
}

func (repo *curriculumRepository) UpdateCurriculum(crm curriculum.Curriculum) (curriculum.Curriculum, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, ok := repo.db.table[crm.ID]; !ok {
		return curriculum.Curriculum{}, curriculum.ErrCurriculumNotFound
	}
	repo.db.table[crm.ID] = &crm
	return crm, nil
}

func (repo *curriculumRepository) DeleteCurriculum(code string) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	for id, crm := range repo.db.table {
		if crm.Code == code {
			delete(repo.db.table, id)
			return nil
		}
	}
	return curriculum.ErrCurriculumNotFound
}
