package test

import (
	"time"

	"github.com/fairpersona/skillcert/internal/attempt"
	"github.com/fairpersona/skillcert/internal/grading"
	"github.com/fairpersona/skillcert/internal/identity"
)

// attemptReadyMsg is sent when the attempt has been started or resumed.
type attemptReadyMsg struct {
	Attempt *attempt.Attempt
	Ident   identity.Identity
	Resumed bool
	Err     error
}

// timerTickMsg is sent every second to advance the countdown.
type timerTickMsg time.Time

// submitDoneMsg is sent when grading has finished.
type submitDoneMsg struct {
	Result *grading.Result
	Err    error
}

// abandonDoneMsg is sent when the attempt has been recorded as abandoned.
type abandonDoneMsg struct {
	Err error
}
