// Package domains maps the domains a user selected to interview roles and question categories.
package domains

import (
	"sort"
	"strings"

	"github.com/nikogura/interview-coach/pkg/keywords"
)

// Question categories.
const (
	CategoryTechnical    = keywords.TypeTechnical
	CategoryBehavioral   = keywords.TypeBehavioral
	CategorySystemDesign = keywords.TypeSystemDesign
	CategoryHR           = keywords.TypeHR
)

// Domain names with special handling.
const (
	DomainSystemDesign = "system-design"
)

// Category thresholds on the number of selected domains.
const (
	SystemDesignMinDomains = 3
	HRMinDomains           = 2
)

//nolint:gochecknoglobals // Domain grouping table
var roleGroups = map[string]string{
	"frontend":         keywords.RoleFrontend,
	"web":              keywords.RoleFrontend,
	"mobile":           keywords.RoleFrontend,
	"ui-ux":            keywords.RoleFrontend,
	"backend":          keywords.RoleBackend,
	"api":              keywords.RoleBackend,
	"database":         keywords.RoleBackend,
	"data-science":     keywords.RoleBackend,
	"machine-learning": keywords.RoleBackend,
	"devops":           keywords.RoleBackend,
	"cloud":            keywords.RoleBackend,
	"security":         keywords.RoleBackend,
	"fullstack":        keywords.RoleFullstack,
	"system-design":    keywords.RoleFullstack,
}

//nolint:gochecknoglobals // Domain focus table
var skillFocus = map[string][]string{
	keywords.RoleFrontend:  {"component design", "state management", "rendering performance"},
	keywords.RoleBackend:   {"api design", "data modeling", "scalability"},
	keywords.RoleFullstack: {"end-to-end architecture", "api design", "state management"},
	keywords.RoleGeneral:   {"problem solving", "communication"},
}

// Mapping is the result of mapping a set of domains.
type Mapping struct {
	PrimaryRole   string   `json:"primary_role"`
	SecondaryRole string   `json:"secondary_role,omitempty"`
	Roles         []string `json:"roles"`
	Categories    []string `json:"categories"`
	SkillFocus    []string `json:"skill_focus"`
}

// SessionConfig is a suggested configuration for the next practice session.
type SessionConfig struct {
	Role       string   `json:"role"`
	Type       string   `json:"type"`
	Categories []string `json:"categories"`
	Reason     string   `json:"reason"`
}

// RoleFor returns the role group a domain belongs to. Unknown domains map to general.
func RoleFor(domain string) (role string) {
	role, ok := roleGroups[normalize(domain)]
	if !ok {
		role = keywords.RoleGeneral
	}
	return role
}

// MapDomainsToQuestions groups domains into roles, ranks the roles by frequency with ties broken by first
// occurrence, and derives the question categories to practice.
func MapDomainsToQuestions(domains []string) (mapping Mapping) {
	counts := make(map[string]int)
	var order []string
	for _, domain := range domains {
		if normalize(domain) == "" {
			continue
		}
		role := RoleFor(domain)
		if counts[role] == 0 {
			order = append(order, role)
		}
		counts[role]++
	}

	mapping.Roles = rankRoles(order, counts)
	if len(mapping.Roles) == 0 {
		mapping.Roles = []string{keywords.RoleGeneral}
	}
	mapping.PrimaryRole = mapping.Roles[0]
	if len(mapping.Roles) > 1 {
		mapping.SecondaryRole = mapping.Roles[1]
	}

	mapping.Categories = categoriesFor(domains)

	seen := make(map[string]bool)
	mapping.SkillFocus = []string{}
	for _, role := range mapping.Roles {
		for _, focus := range skillFocus[role] {
			if !seen[focus] {
				seen[focus] = true
				mapping.SkillFocus = append(mapping.SkillFocus, focus)
			}
		}
	}

	return mapping
}

// RecommendSessionConfig suggests a session for the domains, overridden by a weakness label.
// Communication or clarity weaknesses get behavioral practice, confidence weaknesses get hr practice.
func RecommendSessionConfig(domains []string, weakness string) (config SessionConfig) {
	mapping := MapDomainsToQuestions(domains)
	label := strings.ToLower(weakness)

	switch {
	case strings.Contains(label, "communication") || strings.Contains(label, "clarity"):
		config = SessionConfig{
			Role:       keywords.RoleGeneral,
			Type:       CategoryBehavioral,
			Categories: []string{CategoryBehavioral},
			Reason:     "Behavioral questions train structured, clear answers.",
		}
	case strings.Contains(label, "confidence"):
		config = SessionConfig{
			Role:       keywords.RoleGeneral,
			Type:       CategoryHR,
			Categories: []string{CategoryHR},
			Reason:     "HR questions are a low-pressure way to practice speaking with confidence.",
		}
	default:
		config = SessionConfig{
			Role:       mapping.PrimaryRole,
			Type:       CategoryTechnical,
			Categories: mapping.Categories,
			Reason:     "Technical practice focused on your primary domain.",
		}
	}

	return config
}

func categoriesFor(domains []string) (categories []string) {
	var selected []string
	hasSystemDesign := false
	for _, domain := range domains {
		d := normalize(domain)
		if d == "" {
			continue
		}
		selected = append(selected, d)
		if d == DomainSystemDesign {
			hasSystemDesign = true
		}
	}

	onlySystemDesign := len(selected) > 0
	for _, d := range selected {
		if d != DomainSystemDesign {
			onlySystemDesign = false
			break
		}
	}

	if !onlySystemDesign {
		categories = append(categories, CategoryTechnical)
	}
	if hasSystemDesign || len(selected) >= SystemDesignMinDomains {
		categories = append(categories, CategorySystemDesign)
	}
	categories = append(categories, CategoryBehavioral)
	if len(selected) >= HRMinDomains {
		categories = append(categories, CategoryHR)
	}

	return categories
}

// rankRoles orders roles by descending count. Ties keep first-occurrence order.
func rankRoles(order []string, counts map[string]int) (ranked []string) {
	ranked = append([]string{}, order...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return counts[ranked[i]] > counts[ranked[j]]
	})
	return ranked
}

func normalize(domain string) (d string) {
	d = strings.ToLower(strings.TrimSpace(domain))
	d = strings.ReplaceAll(d, " ", "-")
	d = strings.ReplaceAll(d, "_", "-")
	return d
}
