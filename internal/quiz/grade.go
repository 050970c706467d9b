package quiz

// Grade is a qualitative band for a final score percentage, used only
// for display.
type Grade struct {
	Emoji   string
	Message string
}

// GradeFor bands a percentage into a display grade.
func GradeFor(percent int) Grade {
	switch {
	case percent >= 90:
		return Grade{Emoji: "🏆", Message: "Outstanding!"}
	case percent >= 70:
		return Grade{Emoji: "🎉", Message: "Great work!"}
	case percent >= 50:
		return Grade{Emoji: "👍", Message: "Good effort."}
	default:
		return Grade{Emoji: "🌱", Message: "Keep practising — you'll get there."}
	}
}
