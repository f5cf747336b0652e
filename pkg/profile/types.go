// Package profile defines the caller-supplied user profile and analytics snapshot.
package profile

// ExperienceLevel is the self-declared seniority of a user.
type ExperienceLevel string

// Experience levels.
const (
	Student ExperienceLevel = "student"
	Fresher ExperienceLevel = "fresher"
	Junior  ExperienceLevel = "junior"
	Senior  ExperienceLevel = "senior"
)

// Trend is the direction of recent scores.
type Trend string

// Score trends.
const (
	Improving Trend = "improving"
	Declining Trend = "declining"
	Stable    Trend = "stable"
)

// Skill is one of the four tracked skills.
type Skill string

// Tracked skills, in tie-break order.
const (
	SkillTechnical     Skill = "technical"
	SkillCommunication Skill = "communication"
	SkillConfidence    Skill = "confidence"
	SkillClarity       Skill = "clarity"
)

// GoalImproveCommunication is the interview goal that raises the communication baseline deficit.
const GoalImproveCommunication = "improve-communication"

// Limits on profile sets.
const (
	MaxDomains = 5
	MaxGoals   = 5
)

// Skills returns every tracked skill in tie-break order.
func Skills() (skills []Skill) {
	skills = []Skill{SkillTechnical, SkillCommunication, SkillConfidence, SkillClarity}
	return skills
}

// UserProfile is what a user told us about themselves.
type UserProfile struct {
	ExperienceLevel ExperienceLevel `json:"experience_level"`
	Domains         []string        `json:"domains"`
	InterviewGoals  []string        `json:"interview_goals"`
	ConfidenceLevel int             `json:"confidence_level"`
	WeakAreas       []string        `json:"weak_areas,omitempty"`
}

// SkillBreakdown holds 0-10 scores per skill.
type SkillBreakdown struct {
	Technical     float64 `json:"technical"`
	Communication float64 `json:"communication"`
	Confidence    float64 `json:"confidence"`
	Clarity       float64 `json:"clarity"`
}

// Get returns the score of one skill.
func (b SkillBreakdown) Get(skill Skill) (score float64) {
	switch skill {
	case SkillTechnical:
		score = b.Technical
	case SkillCommunication:
		score = b.Communication
	case SkillConfidence:
		score = b.Confidence
	case SkillClarity:
		score = b.Clarity
	}
	return score
}

// AnalyticsSnapshot summarizes a user's past sessions.
type AnalyticsSnapshot struct {
	TotalSessions     int            `json:"total_sessions"`
	AverageScore      float64        `json:"average_score"`
	SkillBreakdown    SkillBreakdown `json:"skill_breakdown"`
	ScoreTrend        Trend          `json:"score_trend"`
	RecentPerformance []int          `json:"recent_performance"`
}

// HasWeakArea reports whether the profile lists area as weak.
func (p UserProfile) HasWeakArea(area string) (found bool) {
	found = containsFold(p.WeakAreas, area)
	return found
}

// HasDomain reports whether the profile lists domain.
func (p UserProfile) HasDomain(domain string) (found bool) {
	found = containsFold(p.Domains, domain)
	return found
}

// HasGoal reports whether the profile lists goal.
func (p UserProfile) HasGoal(goal string) (found bool) {
	found = containsFold(p.InterviewGoals, goal)
	return found
}
