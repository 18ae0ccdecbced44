package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/BramsuryaJP/my-portfolio-backend/internal/domain"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserBuilder creates test users with a builder pattern
type UserBuilder struct {
	username string
	email    string
	password string
}

// NewUserBuilder creates a new UserBuilder with default values
func NewUserBuilder() *UserBuilder {
	suffix := uuid.New().String()[:8]
	return &UserBuilder{
		username: fmt.Sprintf("testuser_%s", suffix),
		email:    fmt.Sprintf("testuser_%s@example.com", suffix),
		password: "testpassword123",
	}
}

// WithUsername sets the username
func (b *UserBuilder) WithUsername(username string) *UserBuilder {
	b.username = username
	return b
}

// WithEmail sets the email
func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.email = email
	return b
}

// WithPassword sets the password
func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.password = password
	return b
}

// Build creates the user in the database and returns the user with the raw password
func (b *UserBuilder) Build(t *testing.T, db *gorm.DB) (*domain.User, string) {
	t.Helper()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(b.password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &domain.User{
		Username:     b.username,
		Email:        b.email,
		PasswordHash: string(hashedPassword),
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return user, b.password
}

// LoginResponse matches the API login response
type LoginResponse struct {
	Message  string `json:"message"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Token    string `json:"token"`
}

// BuildAndLogin creates a user in the database, logs in via the API and
// returns the user together with the issued token.
func (b *UserBuilder) BuildAndLogin(t *testing.T, ts *TestServer) (*domain.User, string) {
	t.Helper()

	user, rawPassword := b.Build(t, ts.DB.DB)

	reqBody := map[string]string{
		"usernameOrEmail": user.Username,
		"password":        rawPassword,
	}
	body, _ := json.Marshal(reqBody)

	resp, err := http.Post(ts.APIURL("/auth/login"), "application/json", bytes.NewBuffer(body))
	if err != nil {
		t.Fatalf("failed to log in: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status code: %d", resp.StatusCode)
	}

	var loginResp LoginResponse
	if err := json.NewDecoder(resp.Body).Decode(&loginResp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	return user, loginResp.Token
}

// ProjectBuilder creates test projects with a builder pattern
type ProjectBuilder struct {
	name        string
	description string
	tags        []string
	image       string
}

// NewProjectBuilder creates a new ProjectBuilder with default values
func NewProjectBuilder() *ProjectBuilder {
	return &ProjectBuilder{
		name:        fmt.Sprintf("project_%s", uuid.New().String()[:8]),
		description: "a test project",
		tags:        []string{"go"},
	}
}

// WithName sets the project name
func (b *ProjectBuilder) WithName(name string) *ProjectBuilder {
	b.name = name
	return b
}

// WithTags sets the project tags
func (b *ProjectBuilder) WithTags(tags ...string) *ProjectBuilder {
	b.tags = tags
	return b
}

// WithImage sets the stored image path
func (b *ProjectBuilder) WithImage(image string) *ProjectBuilder {
	b.image = image
	return b
}

// Build creates the project in the database
func (b *ProjectBuilder) Build(t *testing.T, db *gorm.DB) *domain.Project {
	t.Helper()

	tags, err := json.Marshal(b.tags)
	if err != nil {
		t.Fatalf("failed to marshal tags: %v", err)
	}

	project := &domain.Project{
		Name:        b.name,
		Description: b.description,
		Tags:        tags,
		Image:       b.image,
	}

	if err := db.Create(project).Error; err != nil {
		t.Fatalf("failed to create project: %v", err)
	}

	return project
}

// SkillBuilder creates test skills with a builder pattern
type SkillBuilder struct {
	name string
}

// NewSkillBuilder creates a new SkillBuilder with default values
func NewSkillBuilder() *SkillBuilder {
	return &SkillBuilder{
		name: fmt.Sprintf("skill_%s", uuid.New().String()[:8]),
	}
}

// WithName sets the skill name
func (b *SkillBuilder) WithName(name string) *SkillBuilder {
	b.name = name
	return b
}

// Build creates the skill in the database
func (b *SkillBuilder) Build(t *testing.T, db *gorm.DB) *domain.Skill {
	t.Helper()

	skill := &domain.Skill{Name: b.name}
	if err := db.Create(skill).Error; err != nil {
		t.Fatalf("failed to create skill: %v", err)
	}

	return skill
}
