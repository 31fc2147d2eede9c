package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Portfolio is the singleton aggregate backing the whole site. Exactly one row
// exists; it is created lazily on first read and never deleted. Each embedded
// collection is an ordered JSON column so a mutation can be persisted as a
// single column update scoped to the collection it touched.
type Portfolio struct {
	ID           uuid.UUID                        `json:"id" gorm:"type:uuid;primaryKey"`
	PersonalInfo datatypes.JSONType[PersonalInfo] `json:"personalInfo"`
	Skills       datatypes.JSONSlice[Skill]       `json:"skills"`
	Projects     datatypes.JSONSlice[Project]     `json:"projects"`
	Experience   datatypes.JSONSlice[Experience]  `json:"experience"`
	Education    datatypes.JSONSlice[Education]   `json:"education"`
	Certificates datatypes.JSONSlice[Certificate] `json:"certificates"`
	Languages    datatypes.JSONSlice[Language]    `json:"languages"`
	Messages     datatypes.JSONSlice[Message]     `json:"messages"`
	CreatedAt    time.Time                        `json:"createdAt" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt    time.Time                        `json:"updatedAt" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
}

// PersonalInfo is the flat header of the aggregate. Every field is optional.
type PersonalInfo struct {
	Name         string `json:"name,omitempty"`
	Title        string `json:"title,omitempty"`
	Email        string `json:"email,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Location     string `json:"location,omitempty"`
	Summary      string `json:"summary,omitempty"`
	ProfileImage string `json:"profileImage,omitempty"`
	Linkedin     string `json:"linkedin,omitempty"`
	Github       string `json:"github,omitempty"`
	Website      string `json:"website,omitempty"`
}

// Skill is one entry of the skills collection.
type Skill struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Category string    `json:"category,omitempty"`
	Level    string    `json:"level,omitempty"`
	Icon     string    `json:"icon,omitempty"`
}

// Project is one entry of the projects collection. Image holds a blob
// reference path, never binary content.
type Project struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Technologies []string  `json:"technologies,omitempty"`
	Image        string    `json:"image,omitempty"`
	LiveURL      string    `json:"liveUrl,omitempty"`
	GithubURL    string    `json:"githubUrl,omitempty"`
	Features     []string  `json:"features,omitempty"`
	StartDate    string    `json:"startDate,omitempty"`
	EndDate      string    `json:"endDate,omitempty"`
	Status       string    `json:"status,omitempty"`
}

// Experience is one entry of the experience collection.
type Experience struct {
	ID           uuid.UUID `json:"id"`
	Company      string    `json:"company"`
	Position     string    `json:"position"`
	Location     string    `json:"location,omitempty"`
	StartDate    string    `json:"startDate,omitempty"`
	EndDate      string    `json:"endDate,omitempty"`
	Current      bool      `json:"current"`
	Description  string    `json:"description,omitempty"`
	Achievements []string  `json:"achievements,omitempty"`
	Technologies []string  `json:"technologies,omitempty"`
}

// Education is one entry of the education collection.
type Education struct {
	ID           uuid.UUID `json:"id"`
	Institution  string    `json:"institution"`
	Degree       string    `json:"degree"`
	Field        string    `json:"field,omitempty"`
	StartDate    string    `json:"startDate,omitempty"`
	EndDate      string    `json:"endDate,omitempty"`
	GPA          string    `json:"gpa,omitempty"`
	Description  string    `json:"description,omitempty"`
	Achievements []string  `json:"achievements,omitempty"`
}

// Certificate is one entry of the certificates collection.
type Certificate struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Issuer        string    `json:"issuer"`
	IssueDate     string    `json:"issueDate,omitempty"`
	ExpiryDate    string    `json:"expiryDate,omitempty"`
	CredentialID  string    `json:"credentialId,omitempty"`
	CredentialURL string    `json:"credentialUrl,omitempty"`
	Image         string    `json:"image,omitempty"`
	Description   string    `json:"description,omitempty"`
}

// Language is one entry of the languages collection.
type Language struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Proficiency string    `json:"proficiency"`
}

// Message is one contact-form submission. CreatedAt is stamped at insertion
// and never changes; the admin path may only toggle Read or delete.
type Message struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name,omitempty"`
	Email     string    `json:"email,omitempty"`
	Subject   string    `json:"subject,omitempty"`
	Message   string    `json:"message,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	Read      bool      `json:"read"`
}

func (s Skill) GetID() uuid.UUID       { return s.ID }
func (p Project) GetID() uuid.UUID     { return p.ID }
func (e Experience) GetID() uuid.UUID  { return e.ID }
func (e Education) GetID() uuid.UUID   { return e.ID }
func (c Certificate) GetID() uuid.UUID { return c.ID }
func (l Language) GetID() uuid.UUID    { return l.ID }
func (m Message) GetID() uuid.UUID     { return m.ID }

// ProjectStatuses and Proficiencies are the closed value sets accepted for
// Project.Status and Language.Proficiency.
var (
	ProjectStatuses = []string{"Completed", "In Progress", "Planned"}
	Proficiencies   = []string{"Beginner", "Intermediate", "Advanced", "Native", "Fluent"}
)

func ValidProjectStatus(s string) bool { return contains(ProjectStatuses, s) }
func ValidProficiency(s string) bool   { return contains(Proficiencies, s) }

func contains(set []string, s string) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}
