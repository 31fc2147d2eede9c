package database

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/avasquez/portfolio-backend/errs"
	"github.com/avasquez/portfolio-backend/models"
)

// PortfolioRepo is the single authority for reading and mutating the
// Portfolio aggregate. Every mutation is a read-modify-write of the one row,
// serialized through mu, and persisted as an update of only the column that
// changed so writers touching different collections cannot clobber each other.
type PortfolioRepo struct {
	db *gorm.DB
	mu sync.Mutex
}

func NewPortfolioRepo(db *gorm.DB) *PortfolioRepo {
	return &PortfolioRepo{db: db}
}

// GetDB returns the underlying database connection for debugging purposes
func (r *PortfolioRepo) GetDB() *gorm.DB {
	return r.db
}

// GetOrCreate returns the singleton aggregate, creating an empty one with all
// collections empty on first read. It never fails with not-found.
func (r *PortfolioRepo) GetOrCreate() (*models.Portfolio, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loadOrCreate()
}

func (r *PortfolioRepo) loadOrCreate() (*models.Portfolio, error) {
	var portfolio models.Portfolio
	err := r.db.First(&portfolio).Error
	if err == nil {
		return &portfolio, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	portfolio = models.Portfolio{
		ID:           uuid.New(),
		Skills:       datatypes.JSONSlice[models.Skill]{},
		Projects:     datatypes.JSONSlice[models.Project]{},
		Experience:   datatypes.JSONSlice[models.Experience]{},
		Education:    datatypes.JSONSlice[models.Education]{},
		Certificates: datatypes.JSONSlice[models.Certificate]{},
		Languages:    datatypes.JSONSlice[models.Language]{},
		Messages:     datatypes.JSONSlice[models.Message]{},
	}
	if err := r.db.Create(&portfolio).Error; err != nil {
		return nil, err
	}
	return &portfolio, nil
}

// saveColumn persists a single column of the singleton row.
func (r *PortfolioRepo) saveColumn(id uuid.UUID, column string, value any) error {
	return r.db.Model(&models.Portfolio{}).Where("id = ?", id).Update(column, value).Error
}

// MergePersonalInfo shallow-merges the patch into the stored personal info.
// Fields absent from the patch are left untouched; fields present overwrite,
// including explicit empty strings.
func (r *PortfolioRepo) MergePersonalInfo(patch models.PersonalInfoPatch) (models.PersonalInfo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	portfolio, err := r.loadOrCreate()
	if err != nil {
		return models.PersonalInfo{}, err
	}

	info := portfolio.PersonalInfo.Data()
	patch.Apply(&info)
	portfolio.PersonalInfo = datatypes.NewJSONType(info)

	if err := r.saveColumn(portfolio.ID, "personal_info", portfolio.PersonalInfo); err != nil {
		return models.PersonalInfo{}, err
	}
	return info, nil
}

// indexByID locates a sub-item inside one collection. Identifier spaces are
// independent per collection; lookups are always scoped to the slice given.
func indexByID[T interface{ GetID() uuid.UUID }](items []T, id uuid.UUID) int {
	for i := range items {
		if items[i].GetID() == id {
			return i
		}
	}
	return -1
}

// Skills

func (r *PortfolioRepo) AppendSkill(skill models.Skill) ([]models.Skill, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	portfolio, err := r.loadOrCreate()
	if err != nil {
		return nil, err
	}

	skill.ID = uuid.New()
	portfolio.Skills = append(portfolio.Skills, skill)
	if err := r.saveColumn(portfolio.ID, "skills", portfolio.Skills); err != nil {
		return nil, err
	}
	return portfolio.Skills, nil
}

func (r *PortfolioRepo) UpdateSkill(id uuid.UUID, patch models.SkillPatch) ([]models.Skill, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	portfolio, err := r.loadOrCreate()
	if err != nil {
		return nil, err
	}

	i := indexByID(portfolio.Skills, id)
	if i < 0 {
		return nil, fmt.Errorf("skill %w", errs.ErrNotFound)
	}

	patch.Apply(&portfolio.Skills[i])
	if err := r.saveColumn(portfolio.ID, "skills", portfolio.Skills); err != nil {
		return nil, err
	}
	return portfolio.Skills, nil
}

func (r *PortfolioRepo) RemoveSkill(id uuid.UUID) ([]models.Skill, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	portfolio, err := r.loadOrCreate()
	if err != nil {
		return nil, err
	}

	i := indexByID(portfolio.Skills, id)
	if i < 0 {
		return nil, fmt.Errorf("skill %w", errs.ErrNotFound)
	}

	portfolio.Skills = append(portfolio.Skills[:i], portfolio.Skills[i+1:]...)
	if err := r.saveColumn(portfolio.ID, "skills", portfolio.Skills); err != nil {
		return nil, err
	}
	return portfolio.Skills, nil
}

// Projects

func (r *PortfolioRepo) AppendProject(project models.Project) ([]models.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	portfolio, err := r.loadOrCreate()
	if err != nil {
		return nil, err
	}

	project.ID = uuid.New()
	portfolio.Projects = append(portfolio.Projects, project)
	if err := r.saveColumn(portfolio.ID, "projects", portfolio.Projects); err != nil {
		return nil, err
	}
	return portfolio.Projects, nil
}

func (r *PortfolioRepo) UpdateProject(id uuid.UUID, patch models.ProjectPatch) ([]models.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	portfolio, err := r.loadOrCreate()
	if err != nil {
		return nil, err
	}

	i := indexByID(portfolio.Projects, id)
	if i < 0 {
		return nil, fmt.Errorf("project %w", errs.ErrNotFound)
	}

	patch.Apply(&portfolio.Projects[i])
	if err := r.saveColumn(portfolio.ID, "projects", portfolio.Projects); err != nil {
		return nil, err
	}
	return portfolio.Projects, nil
}

func (r *PortfolioRepo) RemoveProject(id uuid.UUID) ([]models.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	portfolio, err := r.loadOrCreate()
	if err != nil {
		return nil, err
	}

	i := indexByID(portfolio.Projects, id)
	if i < 0 {
		return nil, fmt.Errorf("project %w", errs.ErrNotFound)
	}

	portfolio.Projects = append(portfolio.Projects[:i], portfolio.Projects[i+1:]...)
	if err := r.saveColumn(portfolio.ID, "projects", portfolio.Projects); err != nil {
		return nil, err
	}
	return portfolio.Projects, nil
}

// Experience

func (r *PortfolioRepo) AppendExperience(experience models.Experience) ([]models.Experience, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	portfolio, err := r.loadOrCreate()
	if err != nil {
		return nil, err
	}

	experience.ID = uuid.New()
	portfolio.Experience = append(portfolio.Experience, experience)
	if err := r.saveColumn(portfolio.ID, "experience", portfolio.Experience); err != nil {
		return nil, err
	}
	return portfolio.Experience, nil
}

func (r *PortfolioRepo) UpdateExperience(id uuid.UUID, patch models.ExperiencePatch) ([]models.Experience, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	portfolio, err := r.loadOrCreate()
	if err != nil {
		return nil, err
	}

	i := indexByID(portfolio.Experience, id)
	if i < 0 {
		return nil, fmt.Errorf("experience %w", errs.ErrNotFound)
	}

	patch.Apply(&portfolio.Experience[i])
	if err := r.saveColumn(portfolio.ID, "experience", portfolio.Experience); err != nil {
		return nil, err
	}
	return portfolio.Experience, nil
}

func (r *PortfolioRepo) RemoveExperience(id uuid.UUID) ([]models.Experience, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	portfolio, err := r.loadOrCreate()
	if err != nil {
		return nil, err
	}

	i := indexByID(portfolio.Experience, id)
	if i < 0 {
		return nil, fmt.Errorf("experience %w", errs.ErrNotFound)
	}

	portfolio.Experience = append(portfolio.Experience[:i], portfolio.Experience[i+1:]...)
	if err := r.saveColumn(portfolio.ID, "experience", portfolio.Experience); err != nil {
		return nil, err
	}
	return portfolio.Experience, nil
}

// Education

func (r *PortfolioRepo) AppendEducation(education models.Education) ([]models.Education, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	portfolio, err := r.loadOrCreate()
	if err != nil {
		return nil, err
	}

	education.ID = uuid.New()
	portfolio.Education = append(portfolio.Education, education)
	if err := r.saveColumn(portfolio.ID, "education", portfolio.Education); err != nil {
		return nil, err
	}
	return portfolio.Education, nil
}

func (r *PortfolioRepo) UpdateEducation(id uuid.UUID, patch models.EducationPatch) ([]models.Education, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	portfolio, err := r.loadOrCreate()
	if err != nil {
		return nil, err
	}

	i := indexByID(portfolio.Education, id)
	if i < 0 {
		return nil, fmt.Errorf("education %w", errs.ErrNotFound)
	}

	patch.Apply(&portfolio.Education[i])
	if err := r.saveColumn(portfolio.ID, "education", portfolio.Education); err != nil {
		return nil, err
	}
	return portfolio.Education, nil
}

func (r *PortfolioRepo) RemoveEducation(id uuid.UUID) ([]models.Education, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	portfolio, err := r.loadOrCreate()
	if err != nil {
		return nil, err
	}

	i := indexByID(portfolio.Education, id)
	if i < 0 {
		return nil, fmt.Errorf("education %w", errs.ErrNotFound)
	}

	portfolio.Education = append(portfolio.Education[:i], portfolio.Education[i+1:]...)
	if err := r.saveColumn(portfolio.ID, "education", portfolio.Education); err != nil {
		return nil, err
	}
	return portfolio.Education, nil
}

// Certificates

func (r *PortfolioRepo) AppendCertificate(certificate models.Certificate) ([]models.Certificate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	portfolio, err := r.loadOrCreate()
	if err != nil {
		return nil, err
	}

	certificate.ID = uuid.New()
	portfolio.Certificates = append(portfolio.Certificates, certificate)
	if err := r.saveColumn(portfolio.ID, "certificates", portfolio.Certificates); err != nil {
		return nil, err
	}
	return portfolio.Certificates, nil
}

func (r *PortfolioRepo) UpdateCertificate(id uuid.UUID, patch models.CertificatePatch) ([]models.Certificate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	portfolio, err := r.loadOrCreate()
	if err != nil {
		return nil, err
	}

	i := indexByID(portfolio.Certificates, id)
	if i < 0 {
		return nil, fmt.Errorf("certificate %w", errs.ErrNotFound)
	}

	patch.Apply(&portfolio.Certificates[i])
	if err := r.saveColumn(portfolio.ID, "certificates", portfolio.Certificates); err != nil {
		return nil, err
	}
	return portfolio.Certificates, nil
}

func (r *PortfolioRepo) RemoveCertificate(id uuid.UUID) ([]models.Certificate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	portfolio, err := r.loadOrCreate()
	if err != nil {
		return nil, err
	}

	i := indexByID(portfolio.Certificates, id)
	if i < 0 {
		return nil, fmt.Errorf("certificate %w", errs.ErrNotFound)
	}

	portfolio.Certificates = append(portfolio.Certificates[:i], portfolio.Certificates[i+1:]...)
	if err := r.saveColumn(portfolio.ID, "certificates", portfolio.Certificates); err != nil {
		return nil, err
	}
	return portfolio.Certificates, nil
}

// Languages

func (r *PortfolioRepo) AppendLanguage(language models.Language) ([]models.Language, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	portfolio, err := r.loadOrCreate()
	if err != nil {
		return nil, err
	}

	language.ID = uuid.New()
	portfolio.Languages = append(portfolio.Languages, language)
	if err := r.saveColumn(portfolio.ID, "languages", portfolio.Languages); err != nil {
		return nil, err
	}
	return portfolio.Languages, nil
}

func (r *PortfolioRepo) UpdateLanguage(id uuid.UUID, patch models.LanguagePatch) ([]models.Language, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	portfolio, err := r.loadOrCreate()
	if err != nil {
		return nil, err
	}

	i := indexByID(portfolio.Languages, id)
	if i < 0 {
		return nil, fmt.Errorf("language %w", errs.ErrNotFound)
	}

	patch.Apply(&portfolio.Languages[i])
	if err := r.saveColumn(portfolio.ID, "languages", portfolio.Languages); err != nil {
		return nil, err
	}
	return portfolio.Languages, nil
}

func (r *PortfolioRepo) RemoveLanguage(id uuid.UUID) ([]models.Language, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	portfolio, err := r.loadOrCreate()
	if err != nil {
		return nil, err
	}

	i := indexByID(portfolio.Languages, id)
	if i < 0 {
		return nil, fmt.Errorf("language %w", errs.ErrNotFound)
	}

	portfolio.Languages = append(portfolio.Languages[:i], portfolio.Languages[i+1:]...)
	if err := r.saveColumn(portfolio.ID, "languages", portfolio.Languages); err != nil {
		return nil, err
	}
	return portfolio.Languages, nil
}

// Messages

// AppendMessage stores a contact-form submission. CreatedAt and Read are
// always server-assigned; whatever the caller set is discarded.
func (r *PortfolioRepo) AppendMessage(message models.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	portfolio, err := r.loadOrCreate()
	if err != nil {
		return err
	}

	message.ID = uuid.New()
	message.CreatedAt = time.Now().UTC()
	message.Read = false
	portfolio.Messages = append(portfolio.Messages, message)
	return r.saveColumn(portfolio.ID, "messages", portfolio.Messages)
}

func (r *PortfolioRepo) Messages() ([]models.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	portfolio, err := r.loadOrCreate()
	if err != nil {
		return nil, err
	}
	return portfolio.Messages, nil
}

func (r *PortfolioRepo) MarkMessageRead(id uuid.UUID) ([]models.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	portfolio, err := r.loadOrCreate()
	if err != nil {
		return nil, err
	}

	i := indexByID(portfolio.Messages, id)
	if i < 0 {
		return nil, fmt.Errorf("message %w", errs.ErrNotFound)
	}

	portfolio.Messages[i].Read = true
	if err := r.saveColumn(portfolio.ID, "messages", portfolio.Messages); err != nil {
		return nil, err
	}
	return portfolio.Messages, nil
}

func (r *PortfolioRepo) RemoveMessage(id uuid.UUID) ([]models.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	portfolio, err := r.loadOrCreate()
	if err != nil {
		return nil, err
	}

	i := indexByID(portfolio.Messages, id)
	if i < 0 {
		return nil, fmt.Errorf("message %w", errs.ErrNotFound)
	}

	portfolio.Messages = append(portfolio.Messages[:i], portfolio.Messages[i+1:]...)
	if err := r.saveColumn(portfolio.ID, "messages", portfolio.Messages); err != nil {
		return nil, err
	}
	return portfolio.Messages, nil
}
