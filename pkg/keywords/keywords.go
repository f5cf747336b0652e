// Package keywords holds the per-role domain vocabulary used to measure technical depth.
package keywords

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Role tags known to the default library.
const (
	RoleFrontend    = "frontend"
	RoleBackend     = "backend"
	RoleFullstack   = "fullstack"
	RoleDataScience = "data-science"
	RoleDevOps      = "devops"
	RoleGeneral     = "general"
)

// Interview types that change keyword selection.
const (
	TypeTechnical    = "technical"
	TypeBehavioral   = "behavioral"
	TypeSystemDesign = "system-design"
	TypeHR           = "hr"
)

// technicalGeneralCount is how many general keywords are appended for technical interviews.
const technicalGeneralCount = 10

// Library maps role tags to ordered keyword lists.
type Library struct {
	Version string              `json:"version" yaml:"version"`
	Roles   map[string][]string `json:"roles" yaml:"roles"`
	General []string            `json:"general" yaml:"general"`
}

// Relevant returns the keywords for a role and interview type.
// Unknown roles contribute no role keywords.
func (l *Library) Relevant(role, interviewType string) (keywords []string) {
	roleKeywords := l.Roles[strings.ToLower(role)]

	switch strings.ToLower(interviewType) {
	case TypeTechnical:
		general := l.General
		if len(general) > technicalGeneralCount {
			general = general[:technicalGeneralCount]
		}
		keywords = concat(roleKeywords, general)
	case TypeBehavioral:
		keywords = concat(nil, l.General)
	case TypeSystemDesign:
		keywords = concat(roleKeywords, l.General)
	default:
		keywords = union(roleKeywords, l.General)
	}

	return keywords
}

// Validate checks the library has a general list and no empty keywords.
func (l *Library) Validate() (err error) {
	if len(l.General) == 0 {
		err = errors.New("keyword library has no general keywords")
		return err
	}

	for role, list := range l.Roles {
		if role == "" {
			err = errors.New("keyword library contains an empty role tag")
			return err
		}
		for i, kw := range list {
			if strings.TrimSpace(kw) == "" {
				err = errors.Errorf("role %s has an empty keyword at index %d", role, i)
				return err
			}
		}
	}

	return err
}

// Load reads a keyword library from a YAML or JSON file.
func Load(path string) (lib *Library, err error) {
	var data []byte
	data, err = os.ReadFile(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to read keyword library: %s", path)
		return lib, err
	}

	lib = &Library{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, lib)
	default:
		err = json.Unmarshal(data, lib)
	}
	if err != nil {
		err = errors.Wrapf(err, "failed to parse keyword library: %s", path)
		return lib, err
	}

	err = lib.Validate()
	if err != nil {
		err = errors.Wrap(err, "keyword library validation failed")
		return lib, err
	}

	return lib, err
}

func concat(a, b []string) (out []string) {
	out = make([]string, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return out
}

// union keeps first-occurrence order and drops case-insensitive duplicates.
func union(a, b []string) (out []string) {
	seen := make(map[string]bool, len(a)+len(b))
	out = make([]string, 0, len(a)+len(b))
	for _, list := range [][]string{a, b} {
		for _, kw := range list {
			key := strings.ToLower(kw)
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, kw)
		}
	}
	return out
}
