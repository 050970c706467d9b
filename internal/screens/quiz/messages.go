package quiz

import (
	"github.com/mchawi/sukulu/internal/quiz"
	"github.com/mchawi/sukulu/internal/tutor"
)

// questionsReadyMsg is sent when the question batch has been fetched.
type questionsReadyMsg struct {
	Questions []quiz.Question
}

// autoAdvanceMsg fires when the feedback display period ends. Gen is
// the session generation captured when the timer was scheduled; the
// session ignores the message if it has moved on since.
type autoAdvanceMsg struct {
	Gen uint64
}

// reviewMsg delivers the tutor's walkthrough of the current question.
type reviewMsg struct {
	Review *tutor.Review
	Err    error
}
