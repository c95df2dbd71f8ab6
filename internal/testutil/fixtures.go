package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/teamdebug/quizard/internal/domain"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserBuilder creates test users with a builder pattern
type UserBuilder struct {
	name     string
	email    string
	password string
	active   bool
}

// NewUserBuilder creates a new UserBuilder with default values
func NewUserBuilder() *UserBuilder {
	suffix := uuid.New().String()[:8]
	return &UserBuilder{
		name:     fmt.Sprintf("testuser_%s", suffix),
		email:    fmt.Sprintf("testuser_%s@example.com", suffix),
		password: "testpassword123",
		active:   true,
	}
}

// WithName sets the display name
func (b *UserBuilder) WithName(name string) *UserBuilder {
	b.name = name
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

// Disabled marks the user inactive
func (b *UserBuilder) Disabled() *UserBuilder {
	b.active = false
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
		ID:           uuid.New(),
		Name:         b.name,
		Email:        b.email,
		PasswordHash: string(hashedPassword),
		IsActive:     b.active,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return user, b.password
}

// LoginResponse matches the API login response
type LoginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// BuildAndAuthenticate creates a user and logs in via the API, returning the
// user and a bearer token. Signup issues no token, so the login round trip
// is part of the fixture.
func (b *UserBuilder) BuildAndAuthenticate(t *testing.T, ts *TestServer) (*domain.User, string) {
	t.Helper()

	user, password := b.Build(t, ts.DB.DB)

	reqBody := map[string]string{
		"email":    user.Email,
		"password": password,
	}
	body, _ := json.Marshal(reqBody)

	resp, err := http.Post(ts.APIURL("/login"), "application/json", bytes.NewBuffer(body))
	if err != nil {
		t.Fatalf("failed to log in user: %v", err)
	}
	defer resp.Body.Close()

	var loginResp LoginResponse
	if err := json.NewDecoder(resp.Body).Decode(&loginResp); err != nil {
		t.Fatalf("failed to decode login response: %v", err)
	}
	if !loginResp.Success || loginResp.Token == "" {
		t.Fatalf("login failed for fixture user: %s", loginResp.Message)
	}

	return user, loginResp.Token
}

// SampleDocument is long enough to drive summary, flashcard and quiz
// generation in tests.
const SampleDocument = "Object-oriented programming organizes code around objects containing data and methods. " +
	"Encapsulation hides the internal state of an object behind a public interface. " +
	"Inheritance lets one class reuse and extend the behavior of another class. " +
	"Polymorphism allows different types to respond to the same message in their own way. " +
	"Composition builds complex behavior by combining simple independent components together. " +
	"Abstraction reduces complexity by modeling only the relevant details of a problem."

// UploadDocument uploads a text file through the API and returns the new
// reviewer id.
func UploadDocument(t *testing.T, ts *TestServer, token, fileName, content string) string {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", fileName)
	if err != nil {
		t.Fatalf("failed to create form file: %v", err)
	}
	if _, err := fw.Write([]byte(content)); err != nil {
		t.Fatalf("failed to write form file: %v", err)
	}
	mw.Close()

	req, err := http.NewRequestWithContext(context.Background(), http.MethodPost, ts.APIURL("/reviewers/upload"), &buf)
	if err != nil {
		t.Fatalf("failed to create upload request: %v", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("failed to upload document: %v", err)
	}
	defer resp.Body.Close()

	var uploadResp struct {
		Success  bool   `json:"success"`
		ID       string `json:"id"`
		FileName string `json:"fileName"`
		Message  string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&uploadResp); err != nil {
		t.Fatalf("failed to decode upload response: %v", err)
	}
	if !uploadResp.Success {
		t.Fatalf("upload failed: %s", uploadResp.Message)
	}

	return uploadResp.ID
}

// CreateAuthenticatedRequest creates an HTTP request with auth token
func CreateAuthenticatedRequest(t *testing.T, method, url string, body interface{}, token string) *http.Request {
	t.Helper()

	var bodyReader *bytes.Buffer
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		bodyReader = bytes.NewBuffer(jsonBody)
	} else {
		bodyReader = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequestWithContext(context.Background(), method, url, bodyReader)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return req
}
