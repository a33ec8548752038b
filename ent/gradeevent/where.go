// Code generated by ent, DO NOT EDIT.

package gradeevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/fairpersona/skillcert/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldEQ(FieldTimestamp, v))
}

// AttemptID applies equality check predicate on the "attempt_id" field. It's identical to AttemptIDEQ.
func AttemptID(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldEQ(FieldAttemptID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldEQ(FieldUserID, v))
}

// SkillID applies equality check predicate on the "skill_id" field. It's identical to SkillIDEQ.
func SkillID(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldEQ(FieldSkillID, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v int) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldEQ(FieldScore, v))
}

// EarnedPoints applies equality check predicate on the "earned_points" field. It's identical to EarnedPointsEQ.
func EarnedPoints(v int) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldEQ(FieldEarnedPoints, v))
}

// TotalPoints applies equality check predicate on the "total_points" field. It's identical to TotalPointsEQ.
func TotalPoints(v int) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldEQ(FieldTotalPoints, v))
}

// PassThreshold applies equality check predicate on the "pass_threshold" field. It's identical to PassThresholdEQ.
func PassThreshold(v int) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldEQ(FieldPassThreshold, v))
}

// Passed applies equality check predicate on the "passed" field. It's identical to PassedEQ.
func Passed(v bool) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldEQ(FieldPassed, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldLTE(FieldTimestamp, v))
}

// AttemptIDEQ applies the EQ predicate on the "attempt_id" field.
func AttemptIDEQ(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldEQ(FieldAttemptID, v))
}

// AttemptIDNEQ applies the NEQ predicate on the "attempt_id" field.
func AttemptIDNEQ(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldNEQ(FieldAttemptID, v))
}

// AttemptIDIn applies the In predicate on the "attempt_id" field.
func AttemptIDIn(vs ...string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldIn(FieldAttemptID, vs...))
}

// AttemptIDNotIn applies the NotIn predicate on the "attempt_id" field.
func AttemptIDNotIn(vs ...string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldNotIn(FieldAttemptID, vs...))
}

// AttemptIDGT applies the GT predicate on the "attempt_id" field.
func AttemptIDGT(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldGT(FieldAttemptID, v))
}

// AttemptIDGTE applies the GTE predicate on the "attempt_id" field.
func AttemptIDGTE(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldGTE(FieldAttemptID, v))
}

// AttemptIDLT applies the LT predicate on the "attempt_id" field.
func AttemptIDLT(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldLT(FieldAttemptID, v))
}

// AttemptIDLTE applies the LTE predicate on the "attempt_id" field.
func AttemptIDLTE(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldLTE(FieldAttemptID, v))
}

// AttemptIDContains applies the Contains predicate on the "attempt_id" field.
func AttemptIDContains(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldContains(FieldAttemptID, v))
}

// AttemptIDHasPrefix applies the HasPrefix predicate on the "attempt_id" field.
func AttemptIDHasPrefix(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldHasPrefix(FieldAttemptID, v))
}

// AttemptIDHasSuffix applies the HasSuffix predicate on the "attempt_id" field.
func AttemptIDHasSuffix(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldHasSuffix(FieldAttemptID, v))
}

// AttemptIDEqualFold applies the EqualFold predicate on the "attempt_id" field.
func AttemptIDEqualFold(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldEqualFold(FieldAttemptID, v))
}

// AttemptIDContainsFold applies the ContainsFold predicate on the "attempt_id" field.
func AttemptIDContainsFold(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldContainsFold(FieldAttemptID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldContainsFold(FieldUserID, v))
}

// SkillIDEQ applies the EQ predicate on the "skill_id" field.
func SkillIDEQ(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldEQ(FieldSkillID, v))
}

// SkillIDNEQ applies the NEQ predicate on the "skill_id" field.
func SkillIDNEQ(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldNEQ(FieldSkillID, v))
}

// SkillIDIn applies the In predicate on the "skill_id" field.
func SkillIDIn(vs ...string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldIn(FieldSkillID, vs...))
}

// SkillIDNotIn applies the NotIn predicate on the "skill_id" field.
func SkillIDNotIn(vs ...string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldNotIn(FieldSkillID, vs...))
}

// SkillIDGT applies the GT predicate on the "skill_id" field.
func SkillIDGT(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldGT(FieldSkillID, v))
}

// SkillIDGTE applies the GTE predicate on the "skill_id" field.
func SkillIDGTE(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldGTE(FieldSkillID, v))
}

// SkillIDLT applies the LT predicate on the "skill_id" field.
func SkillIDLT(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldLT(FieldSkillID, v))
}

// SkillIDLTE applies the LTE predicate on the "skill_id" field.
func SkillIDLTE(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldLTE(FieldSkillID, v))
}

// SkillIDContains applies the Contains predicate on the "skill_id" field.
func SkillIDContains(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldContains(FieldSkillID, v))
}

// SkillIDHasPrefix applies the HasPrefix predicate on the "skill_id" field.
func SkillIDHasPrefix(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldHasPrefix(FieldSkillID, v))
}

// SkillIDHasSuffix applies the HasSuffix predicate on the "skill_id" field.
func SkillIDHasSuffix(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldHasSuffix(FieldSkillID, v))
}

// SkillIDEqualFold applies the EqualFold predicate on the "skill_id" field.
func SkillIDEqualFold(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldEqualFold(FieldSkillID, v))
}

// SkillIDContainsFold applies the ContainsFold predicate on the "skill_id" field.
func SkillIDContainsFold(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldContainsFold(FieldSkillID, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v int) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v int) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...int) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...int) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v int) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v int) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v int) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v int) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldLTE(FieldScore, v))
}

// EarnedPointsEQ applies the EQ predicate on the "earned_points" field.
func EarnedPointsEQ(v int) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldEQ(FieldEarnedPoints, v))
}

// EarnedPointsNEQ applies the NEQ predicate on the "earned_points" field.
func EarnedPointsNEQ(v int) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldNEQ(FieldEarnedPoints, v))
}

// EarnedPointsIn applies the In predicate on the "earned_points" field.
func EarnedPointsIn(vs ...int) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldIn(FieldEarnedPoints, vs...))
}

// EarnedPointsNotIn applies the NotIn predicate on the "earned_points" field.
func EarnedPointsNotIn(vs ...int) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldNotIn(FieldEarnedPoints, vs...))
}

// EarnedPointsGT applies the GT predicate on the "earned_points" field.
func EarnedPointsGT(v int) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldGT(FieldEarnedPoints, v))
}

// EarnedPointsGTE applies the GTE predicate on the "earned_points" field.
func EarnedPointsGTE(v int) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldGTE(FieldEarnedPoints, v))
}

// EarnedPointsLT applies the LT predicate on the "earned_points" field.
func EarnedPointsLT(v int) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldLT(FieldEarnedPoints, v))
}

// EarnedPointsLTE applies the LTE predicate on the "earned_points" field.
func EarnedPointsLTE(v int) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldLTE(FieldEarnedPoints, v))
}

// TotalPointsEQ applies the EQ predicate on the "total_points" field.
func TotalPointsEQ(v int) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldEQ(FieldTotalPoints, v))
}

// TotalPointsNEQ applies the NEQ predicate on the "total_points" field.
func TotalPointsNEQ(v int) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldNEQ(FieldTotalPoints, v))
}

// TotalPointsIn applies the In predicate on the "total_points" field.
func TotalPointsIn(vs ...int) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldIn(FieldTotalPoints, vs...))
}

// TotalPointsNotIn applies the NotIn predicate on the "total_points" field.
func TotalPointsNotIn(vs ...int) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldNotIn(FieldTotalPoints, vs...))
}

// TotalPointsGT applies the GT predicate on the "total_points" field.
func TotalPointsGT(v int) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldGT(FieldTotalPoints, v))
}

// TotalPointsGTE applies the GTE predicate on the "total_points" field.
func TotalPointsGTE(v int) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldGTE(FieldTotalPoints, v))
}

// TotalPointsLT applies the LT predicate on the "total_points" field.
func TotalPointsLT(v int) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldLT(FieldTotalPoints, v))
}

// TotalPointsLTE applies the LTE predicate on the "total_points" field.
func TotalPointsLTE(v int) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldLTE(FieldTotalPoints, v))
}

// PassThresholdEQ applies the EQ predicate on the "pass_threshold" field.
func PassThresholdEQ(v int) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldEQ(FieldPassThreshold, v))
}

// PassThresholdNEQ applies the NEQ predicate on the "pass_threshold" field.
func PassThresholdNEQ(v int) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldNEQ(FieldPassThreshold, v))
}

// PassThresholdIn applies the In predicate on the "pass_threshold" field.
func PassThresholdIn(vs ...int) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldIn(FieldPassThreshold, vs...))
}

// PassThresholdNotIn applies the NotIn predicate on the "pass_threshold" field.
func PassThresholdNotIn(vs ...int) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldNotIn(FieldPassThreshold, vs...))
}

// PassThresholdGT applies the GT predicate on the "pass_threshold" field.
func PassThresholdGT(v int) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldGT(FieldPassThreshold, v))
}

// PassThresholdGTE applies the GTE predicate on the "pass_threshold" field.
func PassThresholdGTE(v int) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldGTE(FieldPassThreshold, v))
}

// PassThresholdLT applies the LT predicate on the "pass_threshold" field.
func PassThresholdLT(v int) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldLT(FieldPassThreshold, v))
}

// PassThresholdLTE applies the LTE predicate on the "pass_threshold" field.
func PassThresholdLTE(v int) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldLTE(FieldPassThreshold, v))
}

// PassedEQ applies the EQ predicate on the "passed" field.
func PassedEQ(v bool) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldEQ(FieldPassed, v))
}

// PassedNEQ applies the NEQ predicate on the "passed" field.
func PassedNEQ(v bool) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldNEQ(FieldPassed, v))
}

// FeedbackIsNil applies the IsNil predicate on the "feedback" field.
func FeedbackIsNil() predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldIsNull(FieldFeedback))
}

// FeedbackNotNil applies the NotNil predicate on the "feedback" field.
func FeedbackNotNil() predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldNotNull(FieldFeedback))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.GradeEvent) predicate.GradeEvent {
	return predicate.GradeEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.GradeEvent) predicate.GradeEvent {
	return predicate.GradeEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.GradeEvent) predicate.GradeEvent {
	return predicate.GradeEvent(sql.NotPredicates(p))
}
