package test

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/fairpersona/skillcert/internal/attempt"
	"github.com/fairpersona/skillcert/internal/cert"
	"github.com/fairpersona/skillcert/internal/identity"
	"github.com/fairpersona/skillcert/internal/question"
	"github.com/fairpersona/skillcert/internal/router"
	"github.com/fairpersona/skillcert/internal/screen"
	"github.com/fairpersona/skillcert/internal/screens/results"
	"github.com/fairpersona/skillcert/internal/skills"
	"github.com/fairpersona/skillcert/internal/ui/components"
	"github.com/fairpersona/skillcert/internal/ui/layout"
)

// TestScreen runs one timed certification test attempt.
type TestScreen struct {
	svc    *attempt.Service
	issuer *cert.Issuer
	idents identity.Provider
	skill  skills.Skill

	attempt *attempt.Attempt
	ident   identity.Identity
	resumed bool

	input         components.TextInput
	mcSelected    int
	mcTouched     bool
	questionShown time.Time

	showingQuitConfirm   bool
	showingSubmitConfirm bool
	submitting           bool
	errMsg               string
}

var _ screen.Screen = (*TestScreen)(nil)
var _ screen.KeyHintProvider = (*TestScreen)(nil)
var _ screen.EscInterceptor = (*TestScreen)(nil)

// New creates a new TestScreen with injected dependencies.
func New(svc *attempt.Service, issuer *cert.Issuer, idents identity.Provider, skill skills.Skill) *TestScreen {
	return &TestScreen{
		svc:    svc,
		issuer: issuer,
		idents: idents,
		skill:  skill,
		input:  components.NewTextInput("Type your answer...", false, 2000),
	}
}

func (s *TestScreen) Init() tea.Cmd {
	return tea.Batch(
		s.startAttempt(),
		s.input.Init(),
	)
}

func (s *TestScreen) Title() string {
	return s.skill.Name
}

// InterceptEsc keeps esc inside the screen while an attempt is live so
// it opens the abandon confirmation instead of popping the screen.
func (s *TestScreen) InterceptEsc() bool {
	return s.errMsg == "" && s.attempt != nil && !s.attempt.Status.Terminal()
}

func (s *TestScreen) KeyHints() []layout.KeyHint {
	if s.showingQuitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "Abandon test"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if s.showingSubmitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "Submit"},
			{Key: "N", Description: "Review answers"},
		}
	}
	return []layout.KeyHint{
		{Key: "←→", Description: "Question"},
		{Key: "Enter", Description: "Answer"},
		{Key: "Ctrl+S", Description: "Submit"},
		{Key: "Esc", Description: "Abandon"},
	}
}

func (s *TestScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, s.errMsg)
	}
	if s.attempt == nil {
		return renderLoading(width)
	}
	if s.submitting {
		return renderSubmitting(width)
	}
	if s.showingQuitConfirm {
		return renderQuitConfirm(width)
	}
	if s.showingSubmitConfirm {
		return s.renderSubmitConfirm(width)
	}
	return s.renderQuestionView(width, height)
}

func (s *TestScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case attemptReadyMsg:
		return s.handleReady(msg)

	case timerTickMsg:
		return s.handleTimerTick()

	case submitDoneMsg:
		return s.handleSubmitDone(msg)

	case abandonDoneMsg:
		return s, func() tea.Msg { return router.PopScreenMsg{} }

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	// Forward to input while a free-form question is active.
	if s.textInputActive() {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	return s, nil
}

// startAttempt resolves the local identity and starts or resumes the
// attempt asynchronously.
func (s *TestScreen) startAttempt() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		ident, err := s.idents.Current(ctx)
		if err != nil {
			return attemptReadyMsg{Err: err}
		}

		a, err := s.svc.Start(ctx, ident.UserID, s.skill.ID)
		if err != nil {
			return attemptReadyMsg{Err: err}
		}

		return attemptReadyMsg{
			Attempt: a,
			Ident:   ident,
			Resumed: a.AnsweredCount() > 0 || a.TimeSpentSecs > 0,
		}
	}
}

func (s *TestScreen) handleReady(msg attemptReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	s.attempt = msg.Attempt
	s.ident = msg.Ident
	s.resumed = msg.Resumed
	s.syncQuestion()
	return s, tickCmd()
}

func (s *TestScreen) handleTimerTick() (screen.Screen, tea.Cmd) {
	if s.attempt == nil || s.attempt.Status.Terminal() || s.submitting {
		return s, nil
	}

	if expired := s.attempt.Tick(); expired {
		// Time is up: capture whatever is in the current slot and
		// submit with the answers recorded so far.
		s.recordCurrent()
		return s, s.submit()
	}

	return s, tickCmd()
}

func (s *TestScreen) handleSubmitDone(msg submitDoneMsg) (screen.Screen, tea.Cmd) {
	s.submitting = false
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}

	a := s.attempt
	resultScreen := results.New(a, msg.Result, s.skill, s.issuer, s.ident)
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: resultScreen}
	}
}

func (s *TestScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// Error state: any key goes back.
	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if s.attempt == nil || s.submitting {
		return s, nil
	}

	if s.showingQuitConfirm {
		switch key {
		case "y", "Y":
			s.showingQuitConfirm = false
			return s, s.abandon()
		case "n", "N", "esc":
			s.showingQuitConfirm = false
		}
		return s, nil
	}

	if s.showingSubmitConfirm {
		switch key {
		case "y", "Y", "enter":
			s.showingSubmitConfirm = false
			s.recordCurrent()
			return s, s.submit()
		case "n", "N", "esc":
			s.showingSubmitConfirm = false
		}
		return s, nil
	}

	switch key {
	case "esc":
		s.showingQuitConfirm = true
		return s, nil
	case "ctrl+s":
		s.showingSubmitConfirm = true
		return s, nil
	case "left":
		s.recordCurrent()
		s.attempt.Prev()
		s.syncQuestion()
		return s, nil
	case "right":
		s.recordCurrent()
		s.attempt.Next()
		s.syncQuestion()
		return s, nil
	case "enter":
		if s.attempt.CurrentQuestion().Type == question.TypeMultipleChoice {
			s.mcTouched = true
		}
		return s.answerAndAdvance()
	}

	q := s.attempt.CurrentQuestion()
	if q.Type == question.TypeMultipleChoice {
		switch key {
		case "1", "2", "3", "4":
			idx := int(key[0] - '1')
			if idx < len(q.Options) {
				s.mcSelected = idx
				s.mcTouched = true
				return s.answerAndAdvance()
			}
		case "up", "k":
			if s.mcSelected > 0 {
				s.mcSelected--
				s.mcTouched = true
			}
			return s, nil
		case "down", "j":
			if s.mcSelected < len(q.Options)-1 {
				s.mcSelected++
				s.mcTouched = true
			}
			return s, nil
		}
		return s, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// answerAndAdvance records the current slot and moves forward. On the
// last question it opens the submit confirmation instead.
func (s *TestScreen) answerAndAdvance() (screen.Screen, tea.Cmd) {
	s.recordCurrent()

	a := s.attempt
	if a.Current == len(a.Questions)-1 {
		s.showingSubmitConfirm = true
		return s, nil
	}
	a.Next()
	s.syncQuestion()
	return s, nil
}

// recordCurrent captures whatever the candidate has entered for the
// question under the cursor. Empty input leaves the slot untouched so
// unanswered questions stay unanswered.
func (s *TestScreen) recordCurrent() {
	a := s.attempt
	if a == nil || a.Status.Terminal() {
		return
	}

	q := a.CurrentQuestion()
	spent := int(time.Since(s.questionShown) / time.Second)

	var ans attempt.Answer
	if q.Type == question.TypeMultipleChoice {
		// An untouched selector means the question was skipped, not
		// answered with the first option.
		if !s.mcTouched {
			return
		}
		ans = attempt.Answer{Option: s.mcSelected, TimeSpentSecs: spent}
	} else {
		text := s.input.Value()
		if text == "" {
			return
		}
		ans = attempt.Answer{Option: -1, Text: text, TimeSpentSecs: spent}
	}

	_ = s.svc.RecordAnswer(context.Background(), a, ans)
	s.questionShown = time.Now()
}

// syncQuestion resets the input widgets to reflect the answer already
// recorded for the question under the cursor, if any.
func (s *TestScreen) syncQuestion() {
	a := s.attempt
	q := a.CurrentQuestion()
	prev := a.Answers[a.Current]

	if q.Type == question.TypeMultipleChoice {
		s.mcSelected = 0
		s.mcTouched = prev != nil
		if prev != nil {
			s.mcSelected = prev.Option
		}
	} else {
		s.input = components.NewTextInput("Type your answer...", false, 2000)
		if prev != nil {
			s.input.Model.SetValue(prev.Text)
		}
	}

	s.questionShown = time.Now()
}

func (s *TestScreen) textInputActive() bool {
	if s.attempt == nil || s.attempt.Status.Terminal() {
		return false
	}
	if s.showingQuitConfirm || s.showingSubmitConfirm || s.submitting {
		return false
	}
	return s.attempt.CurrentQuestion().Type != question.TypeMultipleChoice
}

// submit grades the attempt asynchronously.
func (s *TestScreen) submit() tea.Cmd {
	s.submitting = true
	a := s.attempt
	return func() tea.Msg {
		result, err := s.svc.Submit(context.Background(), a)
		return submitDoneMsg{Result: result, Err: err}
	}
}

// abandon records the attempt as abandoned asynchronously.
func (s *TestScreen) abandon() tea.Cmd {
	a := s.attempt
	return func() tea.Msg {
		err := s.svc.Abandon(context.Background(), a)
		return abandonDoneMsg{Err: err}
	}
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}
