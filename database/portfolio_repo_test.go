package database

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/avasquez/portfolio-backend/errs"
	"github.com/avasquez/portfolio-backend/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A single connection keeps every session on the same in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Portfolio{}, &models.User{}))
	return db
}

func newTestRepo(t *testing.T) *PortfolioRepo {
	t.Helper()
	return NewPortfolioRepo(newTestDB(t))
}

func TestGetOrCreateReturnsSameAggregate(t *testing.T) {
	repo := newTestRepo(t)

	first, err := repo.GetOrCreate()
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, first.ID)

	second, err := repo.GetOrCreate()
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, repo.GetDB().Model(&models.Portfolio{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestGetOrCreateStartsWithEmptyCollections(t *testing.T) {
	repo := newTestRepo(t)

	portfolio, err := repo.GetOrCreate()
	require.NoError(t, err)

	assert.NotNil(t, portfolio.Skills)
	assert.Empty(t, portfolio.Skills)
	assert.NotNil(t, portfolio.Projects)
	assert.Empty(t, portfolio.Projects)
	assert.NotNil(t, portfolio.Messages)
	assert.Empty(t, portfolio.Messages)
	assert.Equal(t, models.PersonalInfo{}, portfolio.PersonalInfo.Data())
}

func TestAppendSkillAssignsFreshIDAndPreservesOrder(t *testing.T) {
	repo := newTestRepo(t)

	clientID := uuid.New()
	_, err := repo.AppendSkill(models.Skill{ID: clientID, Name: "Go"})
	require.NoError(t, err)

	skills, err := repo.AppendSkill(models.Skill{Name: "Postgres"})
	require.NoError(t, err)

	require.Len(t, skills, 2)
	assert.Equal(t, "Go", skills[0].Name)
	assert.Equal(t, "Postgres", skills[1].Name)

	// Identifiers are always server-assigned.
	assert.NotEqual(t, clientID, skills[0].ID)
	assert.NotEqual(t, uuid.Nil, skills[0].ID)
	assert.NotEqual(t, skills[0].ID, skills[1].ID)

	// Order survives persistence.
	portfolio, err := repo.GetOrCreate()
	require.NoError(t, err)
	require.Len(t, portfolio.Skills, 2)
	assert.Equal(t, "Go", portfolio.Skills[0].Name)
	assert.Equal(t, "Postgres", portfolio.Skills[1].Name)
}

func TestUpdateSkillMergesOnlyProvidedFields(t *testing.T) {
	repo := newTestRepo(t)

	skills, err := repo.AppendSkill(models.Skill{Name: "Go", Category: "Backend", Level: "Advanced"})
	require.NoError(t, err)
	id := skills[0].ID

	level := "Intermediate"
	updated, err := repo.UpdateSkill(id, models.SkillPatch{Level: &level})
	require.NoError(t, err)

	require.Len(t, updated, 1)
	assert.Equal(t, id, updated[0].ID)
	assert.Equal(t, "Go", updated[0].Name)
	assert.Equal(t, "Backend", updated[0].Category)
	assert.Equal(t, "Intermediate", updated[0].Level)
}

func TestUpdateSkillOverwritesWithExplicitEmptyString(t *testing.T) {
	repo := newTestRepo(t)

	skills, err := repo.AppendSkill(models.Skill{Name: "Go", Category: "Backend"})
	require.NoError(t, err)

	empty := ""
	updated, err := repo.UpdateSkill(skills[0].ID, models.SkillPatch{Category: &empty})
	require.NoError(t, err)
	assert.Equal(t, "", updated[0].Category)
	assert.Equal(t, "Go", updated[0].Name)
}

func TestUpdateUnknownSkillReturnsNotFound(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.AppendSkill(models.Skill{Name: "Go"})
	require.NoError(t, err)

	name := "Rust"
	_, err = repo.UpdateSkill(uuid.New(), models.SkillPatch{Name: &name})
	require.Error(t, err)
	assert.True(t, errs.IsNotFound(err))

	portfolio, err := repo.GetOrCreate()
	require.NoError(t, err)
	require.Len(t, portfolio.Skills, 1)
	assert.Equal(t, "Go", portfolio.Skills[0].Name)
}

func TestRemoveSkillKeepsRemainingOrder(t *testing.T) {
	repo := newTestRepo(t)

	for _, name := range []string{"Go", "Postgres", "Docker"} {
		_, err := repo.AppendSkill(models.Skill{Name: name})
		require.NoError(t, err)
	}
	portfolio, err := repo.GetOrCreate()
	require.NoError(t, err)

	remaining, err := repo.RemoveSkill(portfolio.Skills[1].ID)
	require.NoError(t, err)
	require.Len(t, remaining, 2)
	assert.Equal(t, "Go", remaining[0].Name)
	assert.Equal(t, "Docker", remaining[1].Name)
}

func TestRemoveUnknownSkillReturnsNotFoundAndChangesNothing(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.AppendSkill(models.Skill{Name: "Go"})
	require.NoError(t, err)

	_, err = repo.RemoveSkill(uuid.New())
	require.Error(t, err)
	assert.True(t, errs.IsNotFound(err))

	portfolio, err := repo.GetOrCreate()
	require.NoError(t, err)
	assert.Len(t, portfolio.Skills, 1)
}

func TestSubItemIDsAreScopedPerCollection(t *testing.T) {
	repo := newTestRepo(t)

	skills, err := repo.AppendSkill(models.Skill{Name: "Go"})
	require.NoError(t, err)

	// A skill id means nothing to the projects collection.
	_, err = repo.RemoveProject(skills[0].ID)
	require.Error(t, err)
	assert.True(t, errs.IsNotFound(err))
}

func TestMergePersonalInfoLeavesAbsentFieldsUntouched(t *testing.T) {
	repo := newTestRepo(t)

	name := "Ada Lovelace"
	email := "ada@example.com"
	_, err := repo.MergePersonalInfo(models.PersonalInfoPatch{Name: &name, Email: &email})
	require.NoError(t, err)

	title := "Software Engineer"
	info, err := repo.MergePersonalInfo(models.PersonalInfoPatch{Title: &title})
	require.NoError(t, err)

	assert.Equal(t, "Ada Lovelace", info.Name)
	assert.Equal(t, "ada@example.com", info.Email)
	assert.Equal(t, "Software Engineer", info.Title)

	portfolio, err := repo.GetOrCreate()
	require.NoError(t, err)
	assert.Equal(t, info, portfolio.PersonalInfo.Data())
}

func TestProjectLifecycle(t *testing.T) {
	repo := newTestRepo(t)

	projects, err := repo.AppendProject(models.Project{
		Title:        "Portfolio Backend",
		Description:  "REST API for a personal site",
		Technologies: []string{"Go", "Postgres"},
		Status:       "In Progress",
	})
	require.NoError(t, err)
	require.Len(t, projects, 1)
	id := projects[0].ID

	status := "Completed"
	endDate := "2026-08-01"
	updated, err := repo.UpdateProject(id, models.ProjectPatch{Status: &status, EndDate: &endDate})
	require.NoError(t, err)
	assert.Equal(t, "Completed", updated[0].Status)
	assert.Equal(t, "2026-08-01", updated[0].EndDate)
	assert.Equal(t, []string{"Go", "Postgres"}, updated[0].Technologies)

	remaining, err := repo.RemoveProject(id)
	require.NoError(t, err)
	assert.Empty(t, remaining)
}

func TestExperienceAndEducationLifecycle(t *testing.T) {
	repo := newTestRepo(t)

	exp, err := repo.AppendExperience(models.Experience{Company: "Acme", Position: "Engineer", Current: true})
	require.NoError(t, err)
	require.Len(t, exp, 1)

	current := false
	end := "2025-12-31"
	exp, err = repo.UpdateExperience(exp[0].ID, models.ExperiencePatch{Current: &current, EndDate: &end})
	require.NoError(t, err)
	assert.False(t, exp[0].Current)
	assert.Equal(t, "2025-12-31", exp[0].EndDate)

	edu, err := repo.AppendEducation(models.Education{Institution: "MIT", Degree: "BSc"})
	require.NoError(t, err)
	require.Len(t, edu, 1)

	field := "Computer Science"
	edu, err = repo.UpdateEducation(edu[0].ID, models.EducationPatch{Field: &field})
	require.NoError(t, err)
	assert.Equal(t, "Computer Science", edu[0].Field)

	edu, err = repo.RemoveEducation(edu[0].ID)
	require.NoError(t, err)
	assert.Empty(t, edu)
}

func TestCertificateAndLanguageLifecycle(t *testing.T) {
	repo := newTestRepo(t)

	certs, err := repo.AppendCertificate(models.Certificate{Name: "CKA", Issuer: "CNCF"})
	require.NoError(t, err)
	require.Len(t, certs, 1)

	url := "https://example.com/cka"
	certs, err = repo.UpdateCertificate(certs[0].ID, models.CertificatePatch{CredentialURL: &url})
	require.NoError(t, err)
	assert.Equal(t, url, certs[0].CredentialURL)

	langs, err := repo.AppendLanguage(models.Language{Name: "Spanish", Proficiency: "Native"})
	require.NoError(t, err)
	require.Len(t, langs, 1)

	prof := "Fluent"
	langs, err = repo.UpdateLanguage(langs[0].ID, models.LanguagePatch{Proficiency: &prof})
	require.NoError(t, err)
	assert.Equal(t, "Fluent", langs[0].Proficiency)

	langs, err = repo.RemoveLanguage(langs[0].ID)
	require.NoError(t, err)
	assert.Empty(t, langs)
}

func TestAppendMessageStampsServerFields(t *testing.T) {
	repo := newTestRepo(t)

	err := repo.AppendMessage(models.Message{
		ID:      uuid.New(),
		Name:    "Visitor",
		Email:   "visitor@example.com",
		Subject: "Hello",
		Message: "Nice site",
		Read:    true,
	})
	require.NoError(t, err)

	messages, err := repo.Messages()
	require.NoError(t, err)
	require.Len(t, messages, 1)

	assert.Equal(t, "Visitor", messages[0].Name)
	assert.False(t, messages[0].Read)
	assert.False(t, messages[0].CreatedAt.IsZero())
	assert.NotEqual(t, uuid.Nil, messages[0].ID)
}

func TestMarkMessageReadAndRemove(t *testing.T) {
	repo := newTestRepo(t)

	require.NoError(t, repo.AppendMessage(models.Message{Name: "A", Message: "first"}))
	require.NoError(t, repo.AppendMessage(models.Message{Name: "B", Message: "second"}))

	messages, err := repo.Messages()
	require.NoError(t, err)
	require.Len(t, messages, 2)

	messages, err = repo.MarkMessageRead(messages[0].ID)
	require.NoError(t, err)
	assert.True(t, messages[0].Read)
	assert.False(t, messages[1].Read)

	messages, err = repo.RemoveMessage(messages[0].ID)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "B", messages[0].Name)

	_, err = repo.MarkMessageRead(uuid.New())
	require.Error(t, err)
	assert.True(t, errs.IsNotFound(err))
}

func TestConcurrentWritersToDifferentCollectionsAllPersist(t *testing.T) {
	repo := newTestRepo(t)

	const perCollection = 10

	var g errgroup.Group
	g.Go(func() error {
		for i := 0; i < perCollection; i++ {
			if _, err := repo.AppendSkill(models.Skill{Name: fmt.Sprintf("skill-%d", i)}); err != nil {
				return err
			}
		}
		return nil
	})
	g.Go(func() error {
		for i := 0; i < perCollection; i++ {
			if _, err := repo.AppendLanguage(models.Language{Name: fmt.Sprintf("lang-%d", i), Proficiency: "Fluent"}); err != nil {
				return err
			}
		}
		return nil
	})
	g.Go(func() error {
		for i := 0; i < perCollection; i++ {
			if err := repo.AppendMessage(models.Message{Name: fmt.Sprintf("sender-%d", i)}); err != nil {
				return err
			}
		}
		return nil
	})
	require.NoError(t, g.Wait())

	portfolio, err := repo.GetOrCreate()
	require.NoError(t, err)
	assert.Len(t, portfolio.Skills, perCollection)
	assert.Len(t, portfolio.Languages, perCollection)
	assert.Len(t, portfolio.Messages, perCollection)

	// No duplicate identifiers slipped in under concurrency.
	seen := map[uuid.UUID]bool{}
	for _, s := range portfolio.Skills {
		assert.False(t, seen[s.ID])
		seen[s.ID] = true
	}
}
