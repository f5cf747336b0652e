package catalog

import (
	"github.com/nikogura/interview-coach/pkg/keywords"
	"github.com/nikogura/interview-coach/pkg/profile"
)

// DefaultVersion is the version of the built-in catalog.
const DefaultVersion = "2024.1"

// Default returns a fresh copy of the built-in catalog.
func Default() (catalog *Catalog) {
	catalog = &Catalog{
		Version: DefaultVersion,
		Categories: []Category{
			{
				ID:           "cs-fundamentals",
				Name:         "Computer Science Fundamentals",
				Skill:        profile.SkillTechnical,
				Domains:      []string{"frontend", "backend", "fullstack", "data-science"},
				Foundational: true,
				Resources: []Resource{
					{ID: "cs-big-o", Title: "Big-O Cheat Sheet", URL: "https://www.bigocheatsheet.com/", Type: TypeArticle, Difficulty: Beginner, Duration: "30 minutes", Tags: []string{"complexity", "algorithms"}},
					{ID: "cs-ds-course", Title: "Data Structures Crash Course", URL: "https://www.freecodecamp.org/news/learn-data-structures-flowchart/", Type: TypeCourse, Difficulty: Beginner, Duration: "6 hours", Tags: []string{"data structures"}},
					{ID: "cs-leetcode-easy", Title: "Easy Array and String Drills", URL: "https://leetcode.com/problemset/?difficulty=EASY", Type: TypePractice, Difficulty: Beginner, Duration: "2 hours", Tags: []string{"practice", "algorithms"}},
					{ID: "cs-leetcode-medium", Title: "Medium Graph and DP Drills", URL: "https://leetcode.com/problemset/?difficulty=MEDIUM", Type: TypePractice, Difficulty: Intermediate, Duration: "1 day", Tags: []string{"practice", "graphs", "dynamic programming"}},
					{ID: "cs-algorithms-book", Title: "The Algorithm Design Manual", URL: "https://www.algorist.com/", Type: TypeBook, Difficulty: Advanced, Duration: "2 weeks", Tags: []string{"algorithms"}},
				},
			},
			{
				ID:      "frontend-engineering",
				Name:    "Frontend Engineering",
				Skill:   profile.SkillTechnical,
				Domains: []string{"frontend", "fullstack", "mobile", "ui-ux"},
				Resources: []Resource{
					{ID: "fe-react-docs", Title: "Thinking in React", URL: "https://react.dev/learn/thinking-in-react", Type: TypeArticle, Difficulty: Beginner, Duration: "45 minutes", Tags: []string{"react"}},
					{ID: "fe-effects", Title: "Synchronizing with Effects", URL: "https://react.dev/learn/synchronizing-with-effects", Type: TypeArticle, Difficulty: Intermediate, Duration: "1 hour", Tags: []string{"react", "useeffect"}},
					{ID: "fe-perf", Title: "Web Performance Fundamentals", URL: "https://web.dev/learn/performance", Type: TypeCourse, Difficulty: Intermediate, Duration: "8 hours", Tags: []string{"performance"}},
					{ID: "fe-build-app", Title: "Build a Component Library", URL: "https://storybook.js.org/tutorials/", Type: TypePractice, Difficulty: Intermediate, Duration: "2 days", Tags: []string{"practice", "components"}},
					{ID: "fe-rendering", Title: "Rendering Patterns in Depth", URL: "https://www.patterns.dev/react/", Type: TypeBook, Difficulty: Advanced, Duration: "1 week", Tags: []string{"rendering", "ssr"}},
				},
			},
			{
				ID:      "backend-systems",
				Name:    "Backend Systems",
				Skill:   profile.SkillTechnical,
				Domains: []string{"backend", "fullstack", "devops", "cloud", "data-science"},
				Resources: []Resource{
					{ID: "be-http", Title: "HTTP for Backend Engineers", URL: "https://developer.mozilla.org/en-US/docs/Web/HTTP/Overview", Type: TypeArticle, Difficulty: Beginner, Duration: "1 hour", Tags: []string{"http", "api"}},
					{ID: "be-sql", Title: "SQL Indexing Explained", URL: "https://use-the-index-luke.com/", Type: TypeArticle, Difficulty: Intermediate, Duration: "4 hours", Tags: []string{"sql", "database"}},
					{ID: "be-api-lab", Title: "Design and Build a REST API", URL: "https://roadmap.sh/projects/blogging-platform-api", Type: TypePractice, Difficulty: Intermediate, Duration: "2 days", Tags: []string{"practice", "api"}},
					{ID: "be-ddia", Title: "Designing Data-Intensive Applications", URL: "https://dataintensive.net/", Type: TypeBook, Difficulty: Advanced, Duration: "3 weeks", Tags: []string{"distributed systems"}},
				},
			},
			{
				ID:      "system-design",
				Name:    "System Design",
				Skill:   profile.SkillTechnical,
				Domains: []string{"system-design", "fullstack", "backend"},
				Resources: []Resource{
					{ID: "sd-primer", Title: "System Design Primer", URL: "https://github.com/donnemartin/system-design-primer", Type: TypeArticle, Difficulty: Beginner, Duration: "3 hours", Tags: []string{"scalability"}},
					{ID: "sd-mock", Title: "Mock System Design Interviews", URL: "https://www.pramp.com/", Type: TypePractice, Difficulty: Intermediate, Duration: "2 hours", Tags: []string{"practice", "mock interview"}},
					{ID: "sd-case-studies", Title: "Large-Scale Architecture Case Studies", URL: "https://highscalability.com/", Type: TypeArticle, Difficulty: Advanced, Duration: "1 day", Tags: []string{"architecture"}},
				},
			},
			{
				ID:           "communication-basics",
				Name:         "Communication Basics",
				Skill:        profile.SkillCommunication,
				Foundational: true,
				Resources: []Resource{
					{ID: "comm-explain", Title: "Explaining Technical Concepts Simply", URL: "https://www.freecodecamp.org/news/how-to-explain-technical-ideas/", Type: TypeArticle, Difficulty: Beginner, Duration: "30 minutes", Tags: []string{"communication"}},
					{ID: "comm-record", Title: "Record and Review a Two-Minute Answer", URL: "https://www.interviewing.io/", Type: TypePractice, Difficulty: Beginner, Duration: "1 hour", Tags: []string{"practice", "speaking"}},
					{ID: "comm-course", Title: "Effective Technical Communication", URL: "https://www.coursera.org/learn/technical-communication", Type: TypeCourse, Difficulty: Intermediate, Duration: "2 weeks", Tags: []string{"communication"}},
				},
			},
			{
				ID:    "behavioral-storytelling",
				Name:  "Behavioral Storytelling",
				Skill: profile.SkillCommunication,
				Resources: []Resource{
					{ID: "star-guide", Title: "The STAR Method Explained", URL: "https://www.themuse.com/advice/star-interview-method", Type: TypeArticle, Difficulty: Beginner, Duration: "20 minutes", Tags: []string{"star", "behavioral"}},
					{ID: "star-bank", Title: "Build Your Story Bank", URL: "https://www.techinterviewhandbook.org/behavioral-interview/", Type: TypePractice, Difficulty: Intermediate, Duration: "3 hours", Tags: []string{"practice", "star"}},
					{ID: "star-leadership", Title: "Leadership and Conflict Stories for Senior Roles", URL: "https://www.staffeng.com/guides/", Type: TypeArticle, Difficulty: Advanced, Duration: "2 hours", Tags: []string{"leadership"}},
				},
			},
			{
				ID:           "confidence-building",
				Name:         "Interview Confidence",
				Skill:        profile.SkillConfidence,
				Foundational: true,
				Resources: []Resource{
					{ID: "conf-language", Title: "Replacing Hedging Language", URL: "https://hbr.org/2019/10/how-to-speak-with-confidence", Type: TypeArticle, Difficulty: Beginner, Duration: "15 minutes", Tags: []string{"confidence"}},
					{ID: "conf-mock", Title: "Peer Mock Interview", URL: "https://www.pramp.com/", Type: TypePractice, Difficulty: Beginner, Duration: "1 hour", Tags: []string{"practice", "mock interview"}},
					{ID: "conf-video", Title: "Presence Under Pressure", URL: "https://www.ted.com/talks/amy_cuddy_your_body_language_may_shape_who_you_are", Type: TypeVideo, Difficulty: Intermediate, Duration: "25 minutes", Tags: []string{"confidence"}},
					{ID: "conf-negotiation", Title: "Negotiating Offers with Confidence", URL: "https://www.kalzumeus.com/2012/01/23/salary-negotiation/", Type: TypeArticle, Difficulty: Advanced, Duration: "1 hour", Tags: []string{"negotiation"}},
				},
			},
			{
				ID:    "clarity-concision",
				Name:  "Clarity and Concision",
				Skill: profile.SkillClarity,
				Resources: []Resource{
					{ID: "clar-plain", Title: "Plain Language Guidelines", URL: "https://www.plainlanguage.gov/guidelines/", Type: TypeArticle, Difficulty: Beginner, Duration: "1 hour", Tags: []string{"writing"}},
					{ID: "clar-drill", Title: "One-Minute Answer Drill", URL: "https://www.toastmasters.org/education/table-topics", Type: TypePractice, Difficulty: Intermediate, Duration: "30 minutes", Tags: []string{"practice", "speaking"}},
					{ID: "clar-pyramid", Title: "The Pyramid Principle", URL: "https://www.barbaraminto.com/", Type: TypeBook, Difficulty: Advanced, Duration: "1 week", Tags: []string{"structure"}},
				},
			},
		},
		Bank: []Question{
			{ID: "fe-easy-1", Category: keywords.TypeTechnical, Role: keywords.RoleFrontend, Difficulty: QuestionEasy, Text: "What is the difference between props and state in React?"},
			{ID: "fe-med-1", Category: keywords.TypeTechnical, Role: keywords.RoleFrontend, Difficulty: QuestionMedium, Text: "Explain how React's useEffect hook works and when its cleanup function runs."},
			{ID: "fe-hard-1", Category: keywords.TypeTechnical, Role: keywords.RoleFrontend, Difficulty: QuestionHard, Text: "How would you diagnose and fix slow rendering in a large React application?"},
			{ID: "be-easy-1", Category: keywords.TypeTechnical, Role: keywords.RoleBackend, Difficulty: QuestionEasy, Text: "What is the difference between GET and POST requests?"},
			{ID: "be-med-1", Category: keywords.TypeTechnical, Role: keywords.RoleBackend, Difficulty: QuestionMedium, Text: "When would you choose a SQL database over a NoSQL database?"},
			{ID: "be-hard-1", Category: keywords.TypeTechnical, Role: keywords.RoleBackend, Difficulty: QuestionHard, Text: "How would you make a write-heavy service horizontally scalable while keeping data consistent?"},
			{ID: "fs-med-1", Category: keywords.TypeTechnical, Role: keywords.RoleFullstack, Difficulty: QuestionMedium, Text: "Walk through what happens between typing a URL and seeing the rendered page."},
			{ID: "sd-med-1", Category: keywords.TypeSystemDesign, Role: keywords.RoleFullstack, Difficulty: QuestionMedium, Text: "Design a URL shortening service."},
			{ID: "sd-hard-1", Category: keywords.TypeSystemDesign, Role: keywords.RoleBackend, Difficulty: QuestionHard, Text: "Design a real-time chat system for millions of concurrent users."},
			{ID: "ds-med-1", Category: keywords.TypeTechnical, Role: keywords.RoleDataScience, Difficulty: QuestionMedium, Text: "How do you detect and handle overfitting in a model?"},
			{ID: "ops-med-1", Category: keywords.TypeTechnical, Role: keywords.RoleDevOps, Difficulty: QuestionMedium, Text: "How would you set up a CI/CD pipeline for a containerized service?"},
			{ID: "beh-easy-1", Category: keywords.TypeBehavioral, Role: keywords.RoleGeneral, Difficulty: QuestionEasy, Text: "Tell me about a project you are proud of."},
			{ID: "beh-med-1", Category: keywords.TypeBehavioral, Role: keywords.RoleGeneral, Difficulty: QuestionMedium, Text: "Tell me about a time you had a conflict with a teammate and how you resolved it."},
			{ID: "beh-hard-1", Category: keywords.TypeBehavioral, Role: keywords.RoleGeneral, Difficulty: QuestionHard, Text: "Describe a decision you made with incomplete information that turned out to be wrong."},
			{ID: "hr-easy-1", Category: keywords.TypeHR, Role: keywords.RoleGeneral, Difficulty: QuestionEasy, Text: "Tell me about yourself."},
			{ID: "hr-med-1", Category: keywords.TypeHR, Role: keywords.RoleGeneral, Difficulty: QuestionMedium, Text: "Why do you want to work here?"},
			{ID: "hr-hard-1", Category: keywords.TypeHR, Role: keywords.RoleGeneral, Difficulty: QuestionHard, Text: "What are your salary expectations and how did you arrive at them?"},
		},
	}
	return catalog
}
