// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/fairpersona/skillcert/ent/answerevent"
	"github.com/fairpersona/skillcert/ent/attemptevent"
	"github.com/fairpersona/skillcert/ent/certificationevent"
	"github.com/fairpersona/skillcert/ent/gradeevent"
	"github.com/fairpersona/skillcert/ent/llmrequestevent"
	"github.com/fairpersona/skillcert/ent/profile"
	"github.com/fairpersona/skillcert/ent/schema"
	"github.com/fairpersona/skillcert/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescAttemptID is the schema descriptor for attempt_id field.
	answereventDescAttemptID := answereventFields[0].Descriptor()
	// answerevent.AttemptIDValidator is a validator for the "attempt_id" field. It is called by the builders before save.
	answerevent.AttemptIDValidator = answereventDescAttemptID.Validators[0].(func(string) error)
	// answereventDescQuestionID is the schema descriptor for question_id field.
	answereventDescQuestionID := answereventFields[1].Descriptor()
	// answerevent.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	answerevent.QuestionIDValidator = answereventDescQuestionID.Validators[0].(func(string) error)
	// answereventDescQuestionType is the schema descriptor for question_type field.
	answereventDescQuestionType := answereventFields[2].Descriptor()
	// answerevent.QuestionTypeValidator is a validator for the "question_type" field. It is called by the builders before save.
	answerevent.QuestionTypeValidator = answereventDescQuestionType.Validators[0].(func(string) error)
	// answereventDescPrompt is the schema descriptor for prompt field.
	answereventDescPrompt := answereventFields[3].Descriptor()
	// answerevent.PromptValidator is a validator for the "prompt" field. It is called by the builders before save.
	answerevent.PromptValidator = answereventDescPrompt.Validators[0].(func(string) error)
	// answereventDescSelectedOption is the schema descriptor for selected_option field.
	answereventDescSelectedOption := answereventFields[4].Descriptor()
	// answerevent.DefaultSelectedOption holds the default value on creation for the selected_option field.
	answerevent.DefaultSelectedOption = answereventDescSelectedOption.Default.(int)
	// answereventDescAnswerText is the schema descriptor for answer_text field.
	answereventDescAnswerText := answereventFields[5].Descriptor()
	// answerevent.DefaultAnswerText holds the default value on creation for the answer_text field.
	answerevent.DefaultAnswerText = answereventDescAnswerText.Default.(string)
	// answereventDescTimeSpentSecs is the schema descriptor for time_spent_secs field.
	answereventDescTimeSpentSecs := answereventFields[6].Descriptor()
	// answerevent.DefaultTimeSpentSecs holds the default value on creation for the time_spent_secs field.
	answerevent.DefaultTimeSpentSecs = answereventDescTimeSpentSecs.Default.(int)
	attempteventMixin := schema.AttemptEvent{}.Mixin()
	attempteventMixinFields0 := attempteventMixin[0].Fields()
	_ = attempteventMixinFields0
	attempteventFields := schema.AttemptEvent{}.Fields()
	_ = attempteventFields
	// attempteventDescTimestamp is the schema descriptor for timestamp field.
	attempteventDescTimestamp := attempteventMixinFields0[1].Descriptor()
	// attemptevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	attemptevent.DefaultTimestamp = attempteventDescTimestamp.Default.(func() time.Time)
	// attempteventDescAttemptID is the schema descriptor for attempt_id field.
	attempteventDescAttemptID := attempteventFields[0].Descriptor()
	// attemptevent.AttemptIDValidator is a validator for the "attempt_id" field. It is called by the builders before save.
	attemptevent.AttemptIDValidator = attempteventDescAttemptID.Validators[0].(func(string) error)
	// attempteventDescUserID is the schema descriptor for user_id field.
	attempteventDescUserID := attempteventFields[1].Descriptor()
	// attemptevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	attemptevent.UserIDValidator = attempteventDescUserID.Validators[0].(func(string) error)
	// attempteventDescSkillID is the schema descriptor for skill_id field.
	attempteventDescSkillID := attempteventFields[2].Descriptor()
	// attemptevent.SkillIDValidator is a validator for the "skill_id" field. It is called by the builders before save.
	attemptevent.SkillIDValidator = attempteventDescSkillID.Validators[0].(func(string) error)
	// attempteventDescAction is the schema descriptor for action field.
	attempteventDescAction := attempteventFields[3].Descriptor()
	// attemptevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	attemptevent.ActionValidator = attempteventDescAction.Validators[0].(func(string) error)
	// attempteventDescQuestionCount is the schema descriptor for question_count field.
	attempteventDescQuestionCount := attempteventFields[4].Descriptor()
	// attemptevent.DefaultQuestionCount holds the default value on creation for the question_count field.
	attemptevent.DefaultQuestionCount = attempteventDescQuestionCount.Default.(int)
	// attempteventDescTimeLimitSecs is the schema descriptor for time_limit_secs field.
	attempteventDescTimeLimitSecs := attempteventFields[5].Descriptor()
	// attemptevent.DefaultTimeLimitSecs holds the default value on creation for the time_limit_secs field.
	attemptevent.DefaultTimeLimitSecs = attempteventDescTimeLimitSecs.Default.(int)
	// attempteventDescTimeSpentSecs is the schema descriptor for time_spent_secs field.
	attempteventDescTimeSpentSecs := attempteventFields[6].Descriptor()
	// attemptevent.DefaultTimeSpentSecs holds the default value on creation for the time_spent_secs field.
	attemptevent.DefaultTimeSpentSecs = attempteventDescTimeSpentSecs.Default.(int)
	certificationeventMixin := schema.CertificationEvent{}.Mixin()
	certificationeventMixinFields0 := certificationeventMixin[0].Fields()
	_ = certificationeventMixinFields0
	certificationeventFields := schema.CertificationEvent{}.Fields()
	_ = certificationeventFields
	// certificationeventDescTimestamp is the schema descriptor for timestamp field.
	certificationeventDescTimestamp := certificationeventMixinFields0[1].Descriptor()
	// certificationevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	certificationevent.DefaultTimestamp = certificationeventDescTimestamp.Default.(func() time.Time)
	// certificationeventDescCertID is the schema descriptor for cert_id field.
	certificationeventDescCertID := certificationeventFields[0].Descriptor()
	// certificationevent.CertIDValidator is a validator for the "cert_id" field. It is called by the builders before save.
	certificationevent.CertIDValidator = certificationeventDescCertID.Validators[0].(func(string) error)
	// certificationeventDescAttemptID is the schema descriptor for attempt_id field.
	certificationeventDescAttemptID := certificationeventFields[1].Descriptor()
	// certificationevent.AttemptIDValidator is a validator for the "attempt_id" field. It is called by the builders before save.
	certificationevent.AttemptIDValidator = certificationeventDescAttemptID.Validators[0].(func(string) error)
	// certificationeventDescUserID is the schema descriptor for user_id field.
	certificationeventDescUserID := certificationeventFields[2].Descriptor()
	// certificationevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	certificationevent.UserIDValidator = certificationeventDescUserID.Validators[0].(func(string) error)
	// certificationeventDescSkillID is the schema descriptor for skill_id field.
	certificationeventDescSkillID := certificationeventFields[3].Descriptor()
	// certificationevent.SkillIDValidator is a validator for the "skill_id" field. It is called by the builders before save.
	certificationevent.SkillIDValidator = certificationeventDescSkillID.Validators[0].(func(string) error)
	// certificationeventDescSkillName is the schema descriptor for skill_name field.
	certificationeventDescSkillName := certificationeventFields[4].Descriptor()
	// certificationevent.SkillNameValidator is a validator for the "skill_name" field. It is called by the builders before save.
	certificationevent.SkillNameValidator = certificationeventDescSkillName.Validators[0].(func(string) error)
	// certificationeventDescAction is the schema descriptor for action field.
	certificationeventDescAction := certificationeventFields[6].Descriptor()
	// certificationevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	certificationevent.ActionValidator = certificationeventDescAction.Validators[0].(func(string) error)
	// certificationeventDescMetadataCid is the schema descriptor for metadata_cid field.
	certificationeventDescMetadataCid := certificationeventFields[7].Descriptor()
	// certificationevent.DefaultMetadataCid holds the default value on creation for the metadata_cid field.
	certificationevent.DefaultMetadataCid = certificationeventDescMetadataCid.Default.(string)
	// certificationeventDescTokenID is the schema descriptor for token_id field.
	certificationeventDescTokenID := certificationeventFields[8].Descriptor()
	// certificationevent.DefaultTokenID holds the default value on creation for the token_id field.
	certificationevent.DefaultTokenID = certificationeventDescTokenID.Default.(string)
	// certificationeventDescTxHash is the schema descriptor for tx_hash field.
	certificationeventDescTxHash := certificationeventFields[9].Descriptor()
	// certificationevent.DefaultTxHash holds the default value on creation for the tx_hash field.
	certificationevent.DefaultTxHash = certificationeventDescTxHash.Default.(string)
	// certificationeventDescVerified is the schema descriptor for verified field.
	certificationeventDescVerified := certificationeventFields[10].Descriptor()
	// certificationevent.DefaultVerified holds the default value on creation for the verified field.
	certificationevent.DefaultVerified = certificationeventDescVerified.Default.(bool)
	gradeeventMixin := schema.GradeEvent{}.Mixin()
	gradeeventMixinFields0 := gradeeventMixin[0].Fields()
	_ = gradeeventMixinFields0
	gradeeventFields := schema.GradeEvent{}.Fields()
	_ = gradeeventFields
	// gradeeventDescTimestamp is the schema descriptor for timestamp field.
	gradeeventDescTimestamp := gradeeventMixinFields0[1].Descriptor()
	// gradeevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	gradeevent.DefaultTimestamp = gradeeventDescTimestamp.Default.(func() time.Time)
	// gradeeventDescAttemptID is the schema descriptor for attempt_id field.
	gradeeventDescAttemptID := gradeeventFields[0].Descriptor()
	// gradeevent.AttemptIDValidator is a validator for the "attempt_id" field. It is called by the builders before save.
	gradeevent.AttemptIDValidator = gradeeventDescAttemptID.Validators[0].(func(string) error)
	// gradeeventDescUserID is the schema descriptor for user_id field.
	gradeeventDescUserID := gradeeventFields[1].Descriptor()
	// gradeevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	gradeevent.UserIDValidator = gradeeventDescUserID.Validators[0].(func(string) error)
	// gradeeventDescSkillID is the schema descriptor for skill_id field.
	gradeeventDescSkillID := gradeeventFields[2].Descriptor()
	// gradeevent.SkillIDValidator is a validator for the "skill_id" field. It is called by the builders before save.
	gradeevent.SkillIDValidator = gradeeventDescSkillID.Validators[0].(func(string) error)
	// gradeeventDescEarnedPoints is the schema descriptor for earned_points field.
	gradeeventDescEarnedPoints := gradeeventFields[4].Descriptor()
	// gradeevent.DefaultEarnedPoints holds the default value on creation for the earned_points field.
	gradeevent.DefaultEarnedPoints = gradeeventDescEarnedPoints.Default.(int)
	// gradeeventDescTotalPoints is the schema descriptor for total_points field.
	gradeeventDescTotalPoints := gradeeventFields[5].Descriptor()
	// gradeevent.DefaultTotalPoints holds the default value on creation for the total_points field.
	gradeevent.DefaultTotalPoints = gradeeventDescTotalPoints.Default.(int)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	profileFields := schema.Profile{}.Fields()
	_ = profileFields
	// profileDescUserID is the schema descriptor for user_id field.
	profileDescUserID := profileFields[0].Descriptor()
	// profile.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	profile.UserIDValidator = profileDescUserID.Validators[0].(func(string) error)
	// profileDescDisplayName is the schema descriptor for display_name field.
	profileDescDisplayName := profileFields[1].Descriptor()
	// profile.DefaultDisplayName holds the default value on creation for the display_name field.
	profile.DefaultDisplayName = profileDescDisplayName.Default.(string)
	// profileDescSpecialty is the schema descriptor for specialty field.
	profileDescSpecialty := profileFields[2].Descriptor()
	// profile.DefaultSpecialty holds the default value on creation for the specialty field.
	profile.DefaultSpecialty = profileDescSpecialty.Default.(string)
	// profileDescWalletAddress is the schema descriptor for wallet_address field.
	profileDescWalletAddress := profileFields[3].Descriptor()
	// profile.DefaultWalletAddress holds the default value on creation for the wallet_address field.
	profile.DefaultWalletAddress = profileDescWalletAddress.Default.(string)
	// profileDescCreatedAt is the schema descriptor for created_at field.
	profileDescCreatedAt := profileFields[4].Descriptor()
	// profile.DefaultCreatedAt holds the default value on creation for the created_at field.
	profile.DefaultCreatedAt = profileDescCreatedAt.Default.(func() time.Time)
	// profileDescUpdatedAt is the schema descriptor for updated_at field.
	profileDescUpdatedAt := profileFields[5].Descriptor()
	// profile.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	profile.DefaultUpdatedAt = profileDescUpdatedAt.Default.(func() time.Time)
	// profile.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	profile.UpdateDefaultUpdatedAt = profileDescUpdatedAt.UpdateDefault.(func() time.Time)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}
