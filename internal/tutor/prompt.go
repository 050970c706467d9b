package tutor

import (
	"fmt"
	"strings"

	"github.com/mchawi/sukulu/internal/quiz"
)

const chatSystemPrompt = `You are a patient study tutor for Malawian secondary school students
preparing for their MSCE examinations. You explain concepts in simple,
clear English and use examples from everyday life in Malawi where they
help. Keep answers short: two or three paragraphs at most. If a question
is not about schoolwork, gently steer the student back to their studies.`

const explainSystemPrompt = `You are a study tutor helping a Malawian secondary school student
review a quiz question they just answered. Explain why the correct
answer is right in plain English a Form 3 student can follow, and point
out why each tempting wrong option fails. Be encouraging and brief.`

// buildExplainPrompt renders a quiz question into the review request
// sent to the model.
func buildExplainPrompt(q quiz.Question, selected int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Subject: %s\n", q.Subject.DisplayName())
	fmt.Fprintf(&b, "Question: %s\n", q.Text)
	for i, opt := range q.Options {
		marker := " "
		if i == q.CorrectIndex {
			marker = "correct"
		}
		fmt.Fprintf(&b, "Option %d (%s): %s\n", i+1, marker, opt)
	}
	if selected >= 0 && selected < len(q.Options) {
		fmt.Fprintf(&b, "The student chose option %d.\n", selected+1)
	}
	if q.Explanation != "" {
		fmt.Fprintf(&b, "Reference note: %s\n", q.Explanation)
	}
	b.WriteString("Explain the answer.")

	return b.String()
}
