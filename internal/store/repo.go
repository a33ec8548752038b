package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// QuestionSnapshot is the stored form of one generated question. The
// started event carries the full set so an interrupted attempt resumes
// with identical questions.
type QuestionSnapshot struct {
	ID            string
	Type          string
	Prompt        string
	Options       []string
	CorrectOption int
	Points        int
	Difficulty    string
}

// AttemptEventData captures one lifecycle transition of a test attempt.
type AttemptEventData struct {
	AttemptID     string
	UserID        string
	SkillID       string
	Action        string // started, resumed, submitted, abandoned, expired
	QuestionCount int
	TimeLimitSecs int
	TimeSpentSecs int
	Questions     []QuestionSnapshot
}

// AttemptEventRecord is a stored attempt event.
type AttemptEventRecord struct {
	AttemptID     string
	UserID        string
	SkillID       string
	Action        string
	QuestionCount int
	TimeLimitSecs int
	TimeSpentSecs int
	Questions     []QuestionSnapshot
	Sequence      int64
	Timestamp     time.Time
}

// AnswerEventData captures a recorded answer within an attempt.
type AnswerEventData struct {
	AttemptID      string
	QuestionID     string
	QuestionType   string
	Prompt         string
	SelectedOption int
	AnswerText     string
	TimeSpentSecs  int
}

// AnswerEventRecord is a stored answer event.
type AnswerEventRecord struct {
	AttemptID      string
	QuestionID     string
	QuestionType   string
	Prompt         string
	SelectedOption int
	AnswerText     string
	TimeSpentSecs  int
	Sequence       int64
	Timestamp      time.Time
}

// GradeEventData captures the grading outcome of a submitted attempt.
type GradeEventData struct {
	AttemptID     string
	UserID        string
	SkillID       string
	Score         int
	EarnedPoints  int
	TotalPoints   int
	PassThreshold int
	Passed        bool
	Feedback      []string
}

// GradeEventRecord is a stored grade event.
type GradeEventRecord struct {
	AttemptID     string
	UserID        string
	SkillID       string
	Score         int
	EarnedPoints  int
	TotalPoints   int
	PassThreshold int
	Passed        bool
	Feedback      []string
	Sequence      int64
	Timestamp     time.Time
}

// SkillGradeStats aggregates grading outcomes for one skill.
type SkillGradeStats struct {
	SkillID   string
	Attempts  int
	Passes    int
	BestScore int
	AvgScore  float64
}

// CertificationEventData captures an issuance or confirmation of a
// skill certification.
type CertificationEventData struct {
	CertID      string
	AttemptID   string
	UserID      string
	SkillID     string
	SkillName   string
	Score       int
	Action      string // issued or confirmed
	MetadataCID string
	TokenID     string
	TxHash      string
	Verified    bool
}

// CertificationRecord is a stored certification event.
type CertificationRecord struct {
	CertID      string
	AttemptID   string
	UserID      string
	SkillID     string
	SkillName   string
	Score       int
	Action      string
	MetadataCID string
	TokenID     string
	TxHash      string
	Verified    bool
	Sequence    int64
	Timestamp   time.Time
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEventRecord is a stored LLM request event.
type LLMRequestEventRecord struct {
	ID           int
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
	Sequence     int64
	Timestamp    time.Time
}

// LLMUsageStats aggregates token usage for one purpose label.
type LLMUsageStats struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates token usage for one model.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to domain events. All
// appends draw from the shared sequence counter, so events of different
// types are totally ordered.
type EventRepo interface {
	// AppendAttemptEvent records an attempt lifecycle transition.
	AppendAttemptEvent(ctx context.Context, data AttemptEventData) error

	// LatestAttemptEvent returns the most recent attempt event for a
	// user and skill, or nil if the pair has no attempts.
	LatestAttemptEvent(ctx context.Context, userID, skillID string) (*AttemptEventRecord, error)

	// AttemptStartEvent returns the started event of an attempt, which
	// carries its question set, or nil if unknown.
	AttemptStartEvent(ctx context.Context, attemptID string) (*AttemptEventRecord, error)

	// QueryAttemptEvents returns attempt events, newest first.
	QueryAttemptEvents(ctx context.Context, opts QueryOpts) ([]AttemptEventRecord, error)

	// AppendAnswerEvent records a recorded answer.
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error

	// AnswersForAttempt returns an attempt's answer events in append
	// order, oldest first.
	AnswersForAttempt(ctx context.Context, attemptID string) ([]AnswerEventRecord, error)

	// AppendGradeEvent records a grading outcome.
	AppendGradeEvent(ctx context.Context, data GradeEventData) error

	// GradeForAttempt returns the grade of an attempt, or nil if the
	// attempt was never graded.
	GradeForAttempt(ctx context.Context, attemptID string) (*GradeEventRecord, error)

	// QueryGradeEvents returns grade events, newest first.
	QueryGradeEvents(ctx context.Context, opts QueryOpts) ([]GradeEventRecord, error)

	// GradeStatsBySkill aggregates grading outcomes per skill.
	GradeStatsBySkill(ctx context.Context) ([]SkillGradeStats, error)

	// AppendCertificationEvent records a certification issuance or
	// confirmation.
	AppendCertificationEvent(ctx context.Context, data CertificationEventData) error

	// QueryCertificationEvents returns certification events, newest first.
	QueryCertificationEvents(ctx context.Context, opts QueryOpts) ([]CertificationRecord, error)

	// LatestCertifications returns the newest event per certification,
	// newest first. This is the current state of each certification.
	LatestCertifications(ctx context.Context) ([]CertificationRecord, error)

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns LLM request events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEventRecord, error)

	// GetLLMEvent returns one LLM event by ID, or nil if not found.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEventRecord, error)

	// LLMUsageByPurpose aggregates token usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStats, error)

	// LLMUsageByModel aggregates token usage per model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}

// Profile is the locally stored identity of the test taker.
type Profile struct {
	UserID        string
	DisplayName   string
	Specialty     string
	WalletAddress string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ProfileRepo manages the local profile. A database holds at most one.
type ProfileRepo interface {
	// Get returns the profile, or nil if none has been created.
	Get(ctx context.Context) (*Profile, error)

	// Save creates the profile or updates the existing one, keyed by
	// UserID.
	Save(ctx context.Context, p *Profile) error
}

// SnapshotData caches aggregate test-taking state so the stats surfaces
// can render without replaying the event log.
type SnapshotData struct {
	Version    int            `json:"version"`
	Attempts   int            `json:"attempts"`
	Passes     int            `json:"passes"`
	CertCount  int            `json:"cert_count"`
	BestScores map[string]int `json:"best_scores"` // skill ID -> best score
}

// Snapshot represents a point-in-time capture of aggregate state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages aggregate state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}
