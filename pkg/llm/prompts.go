package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// buildFeedbackPrompt creates the coaching prompt. The computed scores are passed in as fixed facts.
func buildFeedbackPrompt(req FeedbackRequest) (prompt string) {
	scoresJSON, _ := json.MarshalIndent(req.Result.Breakdown, "", "  ")

	interviewType := req.Context.Type
	if interviewType == "" {
		interviewType = "technical"
	}
	role := req.Context.Role
	if role == "" {
		role = "general"
	}

	prompt = fmt.Sprintf(`You are an experienced interview coach reviewing a candidate's answer in a %s interview for a %s role.

QUESTION:
%s

CANDIDATE ANSWER:
%s

SCORES (already computed, 0-10 per dimension, overall %d/100):
%s

STRENGTHS ALREADY IDENTIFIED:
%s

IMPROVEMENTS ALREADY IDENTIFIED:
%s

Write feedback for the candidate:
1. Two to four sentences, second person, encouraging but specific
2. Refer to concrete parts of the answer
3. Do NOT restate or change the scores
4. Do NOT invent experience the candidate did not mention
5. Add up to three short, actionable tips

Return ONLY valid JSON in this exact format (no markdown, no commentary):
{
  "feedback": "feedback text",
  "tips": ["tip one", "tip two"]
}`, interviewType, role, req.Question, req.Answer, req.Result.OverallScore, string(scoresJSON),
		bulletList(req.Result.Strengths), bulletList(req.Result.Improvements))

	return prompt
}

func bulletList(items []string) (list string) {
	if len(items) == 0 {
		list = "- none"
		return list
	}

	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, "- "+item)
	}
	list = strings.Join(lines, "\n")
	return list
}
