// Package catalog holds the learning-resource catalog and the interview question bank.
package catalog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/nikogura/interview-coach/pkg/profile"
)

// Resource difficulties.
const (
	Beginner     = "beginner"
	Intermediate = "intermediate"
	Advanced     = "advanced"
)

// Resource types.
const (
	TypeArticle  = "article"
	TypeVideo    = "video"
	TypeCourse   = "course"
	TypePractice = "practice"
	TypeBook     = "book"
)

// Question difficulties.
const (
	QuestionEasy   = "easy"
	QuestionMedium = "medium"
	QuestionHard   = "hard"
)

// Resource is one learning resource.
type Resource struct {
	ID         string   `json:"id" yaml:"id"`
	Title      string   `json:"title" yaml:"title"`
	URL        string   `json:"url" yaml:"url"`
	Type       string   `json:"type" yaml:"type"`
	Difficulty string   `json:"difficulty" yaml:"difficulty"`
	Duration   string   `json:"duration" yaml:"duration"`
	Tags       []string `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// Category groups resources that train one skill.
type Category struct {
	ID           string        `json:"id" yaml:"id"`
	Name         string        `json:"name" yaml:"name"`
	Skill        profile.Skill `json:"skill" yaml:"skill"`
	Domains      []string      `json:"domains,omitempty" yaml:"domains,omitempty"`
	Foundational bool          `json:"foundational,omitempty" yaml:"foundational,omitempty"`
	Resources    []Resource    `json:"resources" yaml:"resources"`
}

// Question is one entry in the question bank.
type Question struct {
	ID         string `json:"id" yaml:"id"`
	Category   string `json:"category" yaml:"category"`
	Role       string `json:"role" yaml:"role"`
	Difficulty string `json:"difficulty" yaml:"difficulty"`
	Text       string `json:"text" yaml:"text"`
}

// Catalog is the full resource catalog plus question bank.
type Catalog struct {
	Version    string     `json:"version" yaml:"version"`
	Categories []Category `json:"categories" yaml:"categories"`
	Bank       []Question `json:"questions,omitempty" yaml:"questions,omitempty"`
}

// Load reads a catalog from YAML (.yaml/.yml) or JSON and validates it.
func Load(path string) (catalog *Catalog, err error) {
	var fileData []byte
	fileData, err = os.ReadFile(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to read catalog file: %s", path)
		return catalog, err
	}

	catalog = &Catalog{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(fileData, catalog)
	default:
		err = json.Unmarshal(fileData, catalog)
	}
	if err != nil {
		err = errors.Wrapf(err, "failed to parse catalog: %s", path)
		return nil, err
	}

	err = catalog.Validate()
	if err != nil {
		err = errors.Wrapf(err, "invalid catalog: %s", path)
		return nil, err
	}

	return catalog, err
}

// Validate checks identifiers are unique and enum fields are known.
func (c *Catalog) Validate() (err error) {
	if len(c.Categories) == 0 {
		err = errors.New("catalog has no categories")
		return err
	}

	categoryIDs := make(map[string]bool)
	resourceIDs := make(map[string]bool)
	for _, category := range c.Categories {
		if category.ID == "" {
			err = errors.New("category with empty id")
			return err
		}
		if categoryIDs[category.ID] {
			err = errors.Errorf("duplicate category id: %s", category.ID)
			return err
		}
		categoryIDs[category.ID] = true

		if !knownSkill(category.Skill) {
			err = errors.Errorf("category %s: unknown skill %q", category.ID, category.Skill)
			return err
		}

		for _, resource := range category.Resources {
			err = resource.validate()
			if err != nil {
				err = errors.Wrapf(err, "category %s", category.ID)
				return err
			}
			if resourceIDs[resource.ID] {
				err = errors.Errorf("duplicate resource id: %s", resource.ID)
				return err
			}
			resourceIDs[resource.ID] = true
		}
	}

	questionIDs := make(map[string]bool)
	for _, question := range c.Bank {
		if question.ID == "" || strings.TrimSpace(question.Text) == "" {
			err = errors.Errorf("question %q needs an id and text", question.ID)
			return err
		}
		if questionIDs[question.ID] {
			err = errors.Errorf("duplicate question id: %s", question.ID)
			return err
		}
		questionIDs[question.ID] = true

		switch question.Difficulty {
		case QuestionEasy, QuestionMedium, QuestionHard:
		default:
			err = errors.Errorf("question %s: unknown difficulty %q", question.ID, question.Difficulty)
			return err
		}
	}

	return err
}

func (r Resource) validate() (err error) {
	if r.ID == "" || r.Title == "" {
		err = errors.Errorf("resource %q needs an id and title", r.ID)
		return err
	}

	switch r.Difficulty {
	case Beginner, Intermediate, Advanced:
	default:
		err = errors.Errorf("resource %s: unknown difficulty %q", r.ID, r.Difficulty)
		return err
	}

	switch r.Type {
	case TypeArticle, TypeVideo, TypeCourse, TypePractice, TypeBook:
	default:
		err = errors.Errorf("resource %s: unknown type %q", r.ID, r.Type)
		return err
	}

	if strings.TrimSpace(r.Duration) == "" {
		err = errors.Errorf("resource %s: missing duration", r.ID)
		return err
	}

	return err
}

// Category returns the category with the given id.
func (c *Catalog) Category(id string) (category Category, ok bool) {
	for _, cat := range c.Categories {
		if cat.ID == id {
			category = cat
			ok = true
			return category, ok
		}
	}
	return category, ok
}

// ResourcesForSkill returns every resource of every category that trains skill, in catalog order.
func (c *Catalog) ResourcesForSkill(skill profile.Skill) (resources []Resource) {
	for _, category := range c.Categories {
		if category.Skill == skill {
			resources = append(resources, category.Resources...)
		}
	}
	return resources
}

// Questions filters the question bank. Empty arguments match anything.
func (c *Catalog) Questions(role, category, difficulty string) (questions []Question) {
	questions = []Question{}
	for _, q := range c.Bank {
		if role != "" && !strings.EqualFold(q.Role, role) {
			continue
		}
		if category != "" && !strings.EqualFold(q.Category, category) {
			continue
		}
		if difficulty != "" && !strings.EqualFold(q.Difficulty, difficulty) {
			continue
		}
		questions = append(questions, q)
	}
	return questions
}

// ResourceDifficulty maps a question difficulty to the matching resource difficulty.
func ResourceDifficulty(questionDifficulty string) (difficulty string) {
	switch strings.ToLower(questionDifficulty) {
	case QuestionEasy:
		difficulty = Beginner
	case QuestionHard:
		difficulty = Advanced
	default:
		difficulty = Intermediate
	}
	return difficulty
}

func knownSkill(skill profile.Skill) (ok bool) {
	for _, s := range profile.Skills() {
		if s == skill {
			ok = true
			return ok
		}
	}
	return ok
}
