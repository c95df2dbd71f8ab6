package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"mime/multipart"
	"net/http"
	"os"
	"time"
)

const apiBase = "http://localhost:8080/api"

type User struct {
	Name     string
	Email    string
	Password string
	Token    string
}

type LoginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
	Message string `json:"message"`
}

type UploadResponse struct {
	Success  bool   `json:"success"`
	ID       string `json:"id"`
	FileName string `json:"fileName"`
	Message  string `json:"message"`
}

const sampleNotes = "Object-oriented programming organizes code around objects containing data and methods. " +
	"Encapsulation hides the internal state of an object behind a public interface. " +
	"Inheritance lets one class reuse and extend the behavior of another class. " +
	"Polymorphism allows different types to respond to the same message in their own way. " +
	"Composition builds complex behavior by combining simple independent components together. " +
	"Abstraction reduces complexity by modeling only the relevant details of a problem."

func signup(name, email, password string) error {
	body, _ := json.Marshal(map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
	})

	resp, err := http.Post(apiBase+"/signup", "application/json", bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	var result struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("decode failed: %w", err)
	}
	if !result.Success {
		return fmt.Errorf("signup failed: %s", result.Message)
	}

	return nil
}

func login(email, password string) (string, error) {
	body, _ := json.Marshal(map[string]string{
		"email":    email,
		"password": password,
	})

	resp, err := http.Post(apiBase+"/login", "application/json", bytes.NewBuffer(body))
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	var result LoginResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("decode failed: %w", err)
	}
	if !result.Success {
		return "", fmt.Errorf("login failed: %s", result.Message)
	}

	return result.Token, nil
}

func uploadDocument(token, fileName, content string) (*UploadResponse, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", fileName)
	if err != nil {
		return nil, fmt.Errorf("form file failed: %w", err)
	}
	if _, err := fw.Write([]byte(content)); err != nil {
		return nil, fmt.Errorf("write failed: %w", err)
	}
	mw.Close()

	req, _ := http.NewRequest("POST", apiBase+"/reviewers/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("upload failed (%d): %s", resp.StatusCode, string(bodyBytes))
	}

	var result UploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode failed: %w", err)
	}
	if !result.Success {
		return nil, fmt.Errorf("upload failed: %s", result.Message)
	}

	return &result, nil
}

func generateEmail(index int) string {
	const letters = "abcdefghijklmnopqrstuvwxyz0123456789"
	random := make([]byte, 4)
	for i := range random {
		random[i] = letters[rand.Intn(len(letters))]
	}
	return fmt.Sprintf("demo_%d_%d_%s@example.com", index, time.Now().Unix(), string(random))
}

func main() {
	fmt.Println("Seeding demo data...")

	password := "demopassword123"
	var users []*User

	// Register 3 demo users
	fmt.Println("Registering 3 users...")
	for i := 1; i <= 3; i++ {
		email := generateEmail(i)
		name := fmt.Sprintf("Demo User %d", i)
		if err := signup(name, email, password); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to register user %d: %v\n", i, err)
			os.Exit(1)
		}
		users = append(users, &User{Name: name, Email: email, Password: password})
		fmt.Printf("  ✓ User %d: %s\n", i, email)
	}

	fmt.Println("\nLogging in...")
	for i, user := range users {
		token, err := login(user.Email, user.Password)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to log in user %d: %v\n", i+1, err)
			os.Exit(1)
		}
		user.Token = token
	}
	fmt.Println("  ✓ All users logged in")

	// First user uploads a study document
	fmt.Println("\nUploading sample document...")
	upload, err := uploadDocument(users[0].Token, "oop-notes.txt", sampleNotes)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to upload document: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("  ✓ Reviewer created: %s\n", upload.ID)

	fmt.Println("\n" + "============================================================")
	fmt.Println("DEMO DATA SEEDED")
	fmt.Println("============================================================")

	fmt.Println("\nReviewer:")
	fmt.Printf("  ID: %s\n", upload.ID)
	fmt.Printf("  File: %s\n", upload.FileName)
	fmt.Printf("  Summary: GET %s/reviewers/%s/summary\n", apiBase, upload.ID)

	fmt.Println("\nUsers:")
	for _, user := range users {
		fmt.Printf("  %s / %s\n", user.Email, user.Password)
	}
}
