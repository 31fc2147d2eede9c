package models

import (
	"github.com/avasquez/portfolio-backend/errs"
)

// The patch types below are the explicit allow-lists of mergeable fields per
// entity. Update payloads are decoded into a patch, never assigned onto the
// stored record wholesale, so a client cannot persist fields outside the
// schema. A nil pointer means "leave untouched"; a non-nil pointer overwrites,
// including overwriting to the empty string when one is explicitly sent.

type PersonalInfoPatch struct {
	Name         *string `json:"name"`
	Title        *string `json:"title"`
	Email        *string `json:"email"`
	Phone        *string `json:"phone"`
	Location     *string `json:"location"`
	Summary      *string `json:"summary"`
	ProfileImage *string `json:"profileImage"`
	Linkedin     *string `json:"linkedin"`
	Github       *string `json:"github"`
	Website      *string `json:"website"`
}

func (p PersonalInfoPatch) Apply(info *PersonalInfo) {
	assign(&info.Name, p.Name)
	assign(&info.Title, p.Title)
	assign(&info.Email, p.Email)
	assign(&info.Phone, p.Phone)
	assign(&info.Location, p.Location)
	assign(&info.Summary, p.Summary)
	assign(&info.ProfileImage, p.ProfileImage)
	assign(&info.Linkedin, p.Linkedin)
	assign(&info.Github, p.Github)
	assign(&info.Website, p.Website)
}

type SkillPatch struct {
	Name     *string `json:"name"`
	Category *string `json:"category"`
	Level    *string `json:"level"`
	Icon     *string `json:"icon"`
}

func (p SkillPatch) Apply(s *Skill) {
	assign(&s.Name, p.Name)
	assign(&s.Category, p.Category)
	assign(&s.Level, p.Level)
	assign(&s.Icon, p.Icon)
}

type ProjectPatch struct {
	Title        *string   `json:"title"`
	Description  *string   `json:"description"`
	Technologies *[]string `json:"technologies"`
	Image        *string   `json:"image"`
	LiveURL      *string   `json:"liveUrl"`
	GithubURL    *string   `json:"githubUrl"`
	Features     *[]string `json:"features"`
	StartDate    *string   `json:"startDate"`
	EndDate      *string   `json:"endDate"`
	Status       *string   `json:"status"`
}

func (p ProjectPatch) Validate() error {
	if p.Status != nil && *p.Status != "" && !ValidProjectStatus(*p.Status) {
		return errs.NewInvalidFieldError("status", "must be one of Completed, In Progress, Planned")
	}
	return nil
}

func (p ProjectPatch) Apply(pr *Project) {
	assign(&pr.Title, p.Title)
	assign(&pr.Description, p.Description)
	assign(&pr.Technologies, p.Technologies)
	assign(&pr.Image, p.Image)
	assign(&pr.LiveURL, p.LiveURL)
	assign(&pr.GithubURL, p.GithubURL)
	assign(&pr.Features, p.Features)
	assign(&pr.StartDate, p.StartDate)
	assign(&pr.EndDate, p.EndDate)
	assign(&pr.Status, p.Status)
}

type ExperiencePatch struct {
	Company      *string   `json:"company"`
	Position     *string   `json:"position"`
	Location     *string   `json:"location"`
	StartDate    *string   `json:"startDate"`
	EndDate      *string   `json:"endDate"`
	Current      *bool     `json:"current"`
	Description  *string   `json:"description"`
	Achievements *[]string `json:"achievements"`
	Technologies *[]string `json:"technologies"`
}

func (p ExperiencePatch) Apply(e *Experience) {
	assign(&e.Company, p.Company)
	assign(&e.Position, p.Position)
	assign(&e.Location, p.Location)
	assign(&e.StartDate, p.StartDate)
	assign(&e.EndDate, p.EndDate)
	assign(&e.Current, p.Current)
	assign(&e.Description, p.Description)
	assign(&e.Achievements, p.Achievements)
	assign(&e.Technologies, p.Technologies)
}

type EducationPatch struct {
	Institution  *string   `json:"institution"`
	Degree       *string   `json:"degree"`
	Field        *string   `json:"field"`
	StartDate    *string   `json:"startDate"`
	EndDate      *string   `json:"endDate"`
	GPA          *string   `json:"gpa"`
	Description  *string   `json:"description"`
	Achievements *[]string `json:"achievements"`
}

func (p EducationPatch) Apply(e *Education) {
	assign(&e.Institution, p.Institution)
	assign(&e.Degree, p.Degree)
	assign(&e.Field, p.Field)
	assign(&e.StartDate, p.StartDate)
	assign(&e.EndDate, p.EndDate)
	assign(&e.GPA, p.GPA)
	assign(&e.Description, p.Description)
	assign(&e.Achievements, p.Achievements)
}

type CertificatePatch struct {
	Name          *string `json:"name"`
	Issuer        *string `json:"issuer"`
	IssueDate     *string `json:"issueDate"`
	ExpiryDate    *string `json:"expiryDate"`
	CredentialID  *string `json:"credentialId"`
	CredentialURL *string `json:"credentialUrl"`
	Image         *string `json:"image"`
	Description   *string `json:"description"`
}

func (p CertificatePatch) Apply(c *Certificate) {
	assign(&c.Name, p.Name)
	assign(&c.Issuer, p.Issuer)
	assign(&c.IssueDate, p.IssueDate)
	assign(&c.ExpiryDate, p.ExpiryDate)
	assign(&c.CredentialID, p.CredentialID)
	assign(&c.CredentialURL, p.CredentialURL)
	assign(&c.Image, p.Image)
	assign(&c.Description, p.Description)
}

type LanguagePatch struct {
	Name        *string `json:"name"`
	Proficiency *string `json:"proficiency"`
}

func (p LanguagePatch) Validate() error {
	if p.Proficiency != nil && !ValidProficiency(*p.Proficiency) {
		return errs.NewInvalidFieldError("proficiency", "must be one of Beginner, Intermediate, Advanced, Native, Fluent")
	}
	return nil
}

func (p LanguagePatch) Apply(l *Language) {
	assign(&l.Name, p.Name)
	assign(&l.Proficiency, p.Proficiency)
}

// Validate checks the required fields of a new sub-item before it is appended.

func (s Skill) Validate() error {
	if s.Name == "" {
		return errs.NewMissingRequiredFieldError("name")
	}
	return nil
}

func (p Project) Validate() error {
	if p.Title == "" {
		return errs.NewMissingRequiredFieldError("title")
	}
	if p.Description == "" {
		return errs.NewMissingRequiredFieldError("description")
	}
	if p.Status != "" && !ValidProjectStatus(p.Status) {
		return errs.NewInvalidFieldError("status", "must be one of Completed, In Progress, Planned")
	}
	return nil
}

func (e Experience) Validate() error {
	if e.Company == "" {
		return errs.NewMissingRequiredFieldError("company")
	}
	if e.Position == "" {
		return errs.NewMissingRequiredFieldError("position")
	}
	return nil
}

func (e Education) Validate() error {
	if e.Institution == "" {
		return errs.NewMissingRequiredFieldError("institution")
	}
	if e.Degree == "" {
		return errs.NewMissingRequiredFieldError("degree")
	}
	return nil
}

func (c Certificate) Validate() error {
	if c.Name == "" {
		return errs.NewMissingRequiredFieldError("name")
	}
	if c.Issuer == "" {
		return errs.NewMissingRequiredFieldError("issuer")
	}
	return nil
}

func (l Language) Validate() error {
	if l.Name == "" {
		return errs.NewMissingRequiredFieldError("name")
	}
	if l.Proficiency == "" {
		return errs.NewMissingRequiredFieldError("proficiency")
	}
	if !ValidProficiency(l.Proficiency) {
		return errs.NewInvalidFieldError("proficiency", "must be one of Beginner, Intermediate, Advanced, Native, Fluent")
	}
	return nil
}

func assign[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
