package keywords

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRelevant(t *testing.T) {
	lib := &Library{
		Roles: map[string][]string{
			"frontend": {"react", "css"},
		},
		General: []string{"g1", "g2", "g3", "g4", "g5", "g6", "g7", "g8", "g9", "g10", "g11", "react"},
	}

	tests := []struct {
		name          string
		role          string
		interviewType string
		wantLen       int
		wantFirst     string
	}{
		{name: "technical takes first ten general", role: "frontend", interviewType: "technical", wantLen: 12, wantFirst: "react"},
		{name: "behavioral is general only", role: "frontend", interviewType: "behavioral", wantLen: 12, wantFirst: "g1"},
		{name: "system design takes all general", role: "frontend", interviewType: "system-design", wantLen: 14, wantFirst: "react"},
		{name: "other types get the union", role: "frontend", interviewType: "hr", wantLen: 13, wantFirst: "react"},
		{name: "unknown role", role: "astronaut", interviewType: "technical", wantLen: 10, wantFirst: "g1"},
		{name: "case insensitive", role: "FrontEnd", interviewType: "Technical", wantLen: 12, wantFirst: "react"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := lib.Relevant(tt.role, tt.interviewType)
			if len(got) != tt.wantLen {
				t.Fatalf("Expected %d keywords, got %d (%v)", tt.wantLen, len(got), got)
			}
			if got[0] != tt.wantFirst {
				t.Errorf("Expected first keyword %s, got %s", tt.wantFirst, got[0])
			}
		})
	}
}

func TestDefaultLibraryValid(t *testing.T) {
	lib := Default()

	err := lib.Validate()
	if err != nil {
		t.Fatalf("Default library invalid: %v", err)
	}

	for _, role := range []string{RoleFrontend, RoleBackend, RoleFullstack, RoleDataScience, RoleDevOps, RoleGeneral} {
		if len(lib.Roles[role]) == 0 {
			t.Errorf("Expected keywords for role %s", role)
		}
	}

	// Callers get independent copies.
	lib.General[0] = "mutated"
	if Default().General[0] == "mutated" {
		t.Error("Default library shares state between calls")
	}
}

func TestLoadYAML(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "keywords.yaml")

	content := `version: "test"
roles:
  backend:
    - sql
    - redis
general:
  - testing
  - caching
`
	err := os.WriteFile(path, []byte(content), 0600)
	if err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	lib, err := Load(path)
	if err != nil {
		t.Fatalf("Failed to load library: %v", err)
	}

	if lib.Version != "test" {
		t.Errorf("Expected version 'test', got '%s'", lib.Version)
	}

	if len(lib.Roles["backend"]) != 2 {
		t.Errorf("Expected 2 backend keywords, got %d", len(lib.Roles["backend"]))
	}
}

func TestLoadJSON(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "keywords.json")

	err := os.WriteFile(path, []byte(`{"version":"j","roles":{"devops":["docker"]},"general":["testing"]}`), 0600)
	if err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	lib, err := Load(path)
	if err != nil {
		t.Fatalf("Failed to load library: %v", err)
	}

	if lib.Roles["devops"][0] != "docker" {
		t.Errorf("Unexpected devops keywords: %v", lib.Roles["devops"])
	}
}

func TestLoadInvalid(t *testing.T) {
	tmpDir := t.TempDir()

	noGeneral := filepath.Join(tmpDir, "empty.json")
	err := os.WriteFile(noGeneral, []byte(`{"roles":{"devops":["docker"]}}`), 0600)
	if err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	_, err = Load(noGeneral)
	if err == nil {
		t.Error("Expected validation error for library without general keywords")
	}

	_, err = Load(filepath.Join(tmpDir, "missing.yaml"))
	if err == nil {
		t.Error("Expected error loading nonexistent file")
	}
}
