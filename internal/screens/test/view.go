package test

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/fairpersona/skillcert/internal/question"
	"github.com/fairpersona/skillcert/internal/ui/theme"
)

// renderQuestionView renders the active question display.
func (s *TestScreen) renderQuestionView(width, height int) string {
	a := s.attempt

	var b strings.Builder

	// Info line: skill, progress, answered count, countdown.
	mins := a.RemainingSecs / 60
	secs := a.RemainingSecs % 60
	timerStr := fmt.Sprintf("%d:%02d", mins, secs)

	timerStyle := lipgloss.NewStyle().Foreground(theme.Accent)
	if a.RemainingSecs <= 60 {
		timerStyle = lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
	}

	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  %s", s.skill.Name))

	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Q %d/%d  answered %d  ",
			a.Current+1, len(a.Questions), a.AnsweredCount())) +
		timerStyle.Render(timerStr)

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}

	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", width-4)))
	b.WriteString("\n")

	if s.resumed {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Italic(true).
			Render("Resumed from your earlier session"))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	q := a.CurrentQuestion()

	// Question metadata line.
	meta := fmt.Sprintf("%s · %s · %d points", typeLabel(q.Type), q.Difficulty, q.Points)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(meta))
	b.WriteString("\n\n")

	// Prompt.
	promptStyle := lipgloss.NewStyle().
		Width(min(width-8, 80)).
		Foreground(theme.Text).
		Bold(true)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, promptStyle.Render(q.Prompt)))
	b.WriteString("\n\n")

	// Input area.
	if q.Type == question.TypeMultipleChoice {
		b.WriteString(s.renderOptions(width, q))
	} else {
		answerLine := lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render("Answer: " + s.input.View())
		b.WriteString(answerLine)
	}

	return b.String()
}

// renderOptions renders the multiple choice selector.
func (s *TestScreen) renderOptions(width int, q question.Question) string {
	var b strings.Builder

	answered := s.attempt.Answers[s.attempt.Current] != nil

	for i, opt := range q.Options {
		prefix := "  "
		if i == s.mcSelected {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%d) %s", prefix, i+1, opt)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.mcSelected {
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
			if answered {
				style = lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
			}
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	hint := "Select (1-4) or use arrows + Enter"
	if answered {
		hint = "Answer recorded. Enter to re-confirm, ←→ to move on"
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n" + hint))

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, b.String())
}

// renderSubmitConfirm renders the submit confirmation dialog.
func (s *TestScreen) renderSubmitConfirm(width int) string {
	a := s.attempt
	unanswered := len(a.Questions) - a.AnsweredCount()

	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("Submit your test for grading?"))
	b.WriteString("\n")

	detail := fmt.Sprintf("%d of %d questions answered", a.AnsweredCount(), len(a.Questions))
	if unanswered > 0 {
		detail += fmt.Sprintf(" — %d will score zero", unanswered)
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(detail))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Render("[Y] Yes, submit"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, review my answers"))

	return b.String()
}

// renderQuitConfirm renders the abandon confirmation dialog.
func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("Abandon this test?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("The attempt is recorded but nothing is graded."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render("[Y] Yes, abandon"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep going"))

	return b.String()
}

// renderSubmitting renders the grading-in-progress state.
func renderSubmitting(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n\n  Grading your answers...")
}

// renderLoading renders the loading state.
func renderLoading(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n\n  Preparing your test...")
}

// renderError renders an error message.
func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg))
}

func typeLabel(t question.Type) string {
	switch t {
	case question.TypeMultipleChoice:
		return "Multiple choice"
	case question.TypeShortText:
		return "Written answer"
	case question.TypeScenario:
		return "Scenario"
	case question.TypeCode:
		return "Code sample"
	case question.TypeFileUpload:
		return "File reference"
	default:
		return string(t)
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
