// Code generated by ent, DO NOT EDIT.

package certificationevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/fairpersona/skillcert/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldEQ(FieldTimestamp, v))
}

// CertID applies equality check predicate on the "cert_id" field. It's identical to CertIDEQ.
func CertID(v string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldEQ(FieldCertID, v))
}

// AttemptID applies equality check predicate on the "attempt_id" field. It's identical to AttemptIDEQ.
func AttemptID(v string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldEQ(FieldAttemptID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldEQ(FieldUserID, v))
}

// SkillID applies equality check predicate on the "skill_id" field. It's identical to SkillIDEQ.
func SkillID(v string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldEQ(FieldSkillID, v))
}

// SkillName applies equality check predicate on the "skill_name" field. It's identical to SkillNameEQ.
func SkillName(v string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldEQ(FieldSkillName, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v int) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldEQ(FieldScore, v))
}

// Action applies equality check predicate on the "action" field. It's identical to ActionEQ.
func Action(v string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldEQ(FieldAction, v))
}

// MetadataCid applies equality check predicate on the "metadata_cid" field. It's identical to MetadataCidEQ.
func MetadataCid(v string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldEQ(FieldMetadataCid, v))
}

// TokenID applies equality check predicate on the "token_id" field. It's identical to TokenIDEQ.
func TokenID(v string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldEQ(FieldTokenID, v))
}

// TxHash applies equality check predicate on the "tx_hash" field. It's identical to TxHashEQ.
func TxHash(v string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldEQ(FieldTxHash, v))
}

// Verified applies equality check predicate on the "verified" field. It's identical to VerifiedEQ.
func Verified(v bool) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldEQ(FieldVerified, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldLTE(FieldTimestamp, v))
}

// CertIDEQ applies the EQ predicate on the "cert_id" field.
func CertIDEQ(v string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldEQ(FieldCertID, v))
}

// CertIDNEQ applies the NEQ predicate on the "cert_id" field.
func CertIDNEQ(v string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldNEQ(FieldCertID, v))
}

// CertIDIn applies the In predicate on the "cert_id" field.
func CertIDIn(vs ...string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldIn(FieldCertID, vs...))
}

// CertIDNotIn applies the NotIn predicate on the "cert_id" field.
func CertIDNotIn(vs ...string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldNotIn(FieldCertID, vs...))
}

// CertIDGT applies the GT predicate on the "cert_id" field.
func CertIDGT(v string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldGT(FieldCertID, v))
}

// CertIDGTE applies the GTE predicate on the "cert_id" field.
func CertIDGTE(v string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldGTE(FieldCertID, v))
}

// CertIDLT applies the LT predicate on the "cert_id" field.
func CertIDLT(v string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldLT(FieldCertID, v))
}

// CertIDLTE applies the LTE predicate on the "cert_id" field.
func CertIDLTE(v string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldLTE(FieldCertID, v))
}

// CertIDContains applies the Contains predicate on the "cert_id" field.
func CertIDContains(v string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldContains(FieldCertID, v))
}

// CertIDHasPrefix applies the HasPrefix predicate on the "cert_id" field.
func CertIDHasPrefix(v string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldHasPrefix(FieldCertID, v))
}

// CertIDHasSuffix applies the HasSuffix predicate on the "cert_id" field.
func CertIDHasSuffix(v string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldHasSuffix(FieldCertID, v))
}

// CertIDEqualFold applies the EqualFold predicate on the "cert_id" field.
func CertIDEqualFold(v string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldEqualFold(FieldCertID, v))
}

// CertIDContainsFold applies the ContainsFold predicate on the "cert_id" field.
func CertIDContainsFold(v string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldContainsFold(FieldCertID, v))
}

// AttemptIDEQ applies the EQ predicate on the "attempt_id" field.
func AttemptIDEQ(v string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldEQ(FieldAttemptID, v))
}

// AttemptIDNEQ applies the NEQ predicate on the "attempt_id" field.
func AttemptIDNEQ(v string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldNEQ(FieldAttemptID, v))
}

// AttemptIDIn applies the In predicate on the "attempt_id" field.
func AttemptIDIn(vs ...string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldIn(FieldAttemptID, vs...))
}

// AttemptIDNotIn applies the NotIn predicate on the "attempt_id" field.
func AttemptIDNotIn(vs ...string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldNotIn(FieldAttemptID, vs...))
}

// AttemptIDGT applies the GT predicate on the "attempt_id" field.
func AttemptIDGT(v string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldGT(FieldAttemptID, v))
}

// AttemptIDGTE applies the GTE predicate on the "attempt_id" field.
func AttemptIDGTE(v string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldGTE(FieldAttemptID, v))
}

// AttemptIDLT applies the LT predicate on the "attempt_id" field.
func AttemptIDLT(v string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldLT(FieldAttemptID, v))
}

// AttemptIDLTE applies the LTE predicate on the "attempt_id" field.
func AttemptIDLTE(v string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldLTE(FieldAttemptID, v))
}

// AttemptIDContains applies the Contains predicate on the "attempt_id" field.
func AttemptIDContains(v string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldContains(FieldAttemptID, v))
}

// AttemptIDHasPrefix applies the HasPrefix predicate on the "attempt_id" field.
func AttemptIDHasPrefix(v string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldHasPrefix(FieldAttemptID, v))
}

// AttemptIDHasSuffix applies the HasSuffix predicate on the "attempt_id" field.
func AttemptIDHasSuffix(v string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldHasSuffix(FieldAttemptID, v))
}

// AttemptIDEqualFold applies the EqualFold predicate on the "attempt_id" field.
func AttemptIDEqualFold(v string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldEqualFold(FieldAttemptID, v))
}

// AttemptIDContainsFold applies the ContainsFold predicate on the "attempt_id" field.
func AttemptIDContainsFold(v string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldContainsFold(FieldAttemptID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldContainsFold(FieldUserID, v))
}

// SkillIDEQ applies the EQ predicate on the "skill_id" field.
func SkillIDEQ(v string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldEQ(FieldSkillID, v))
}

// SkillIDNEQ applies the NEQ predicate on the "skill_id" field.
func SkillIDNEQ(v string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldNEQ(FieldSkillID, v))
}

// SkillIDIn applies the In predicate on the "skill_id" field.
func SkillIDIn(vs ...string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldIn(FieldSkillID, vs...))
}

// SkillIDNotIn applies the NotIn predicate on the "skill_id" field.
func SkillIDNotIn(vs ...string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldNotIn(FieldSkillID, vs...))
}

// SkillIDGT applies the GT predicate on the "skill_id" field.
func SkillIDGT(v string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldGT(FieldSkillID, v))
}

// SkillIDGTE applies the GTE predicate on the "skill_id" field.
func SkillIDGTE(v string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldGTE(FieldSkillID, v))
}

// SkillIDLT applies the LT predicate on the "skill_id" field.
func SkillIDLT(v string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldLT(FieldSkillID, v))
}

// SkillIDLTE applies the LTE predicate on the "skill_id" field.
func SkillIDLTE(v string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldLTE(FieldSkillID, v))
}

// SkillIDContains applies the Contains predicate on the "skill_id" field.
func SkillIDContains(v string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldContains(FieldSkillID, v))
}

// SkillIDHasPrefix applies the HasPrefix predicate on the "skill_id" field.
func SkillIDHasPrefix(v string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldHasPrefix(FieldSkillID, v))
}

// SkillIDHasSuffix applies the HasSuffix predicate on the "skill_id" field.
func SkillIDHasSuffix(v string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldHasSuffix(FieldSkillID, v))
}

// SkillIDEqualFold applies the EqualFold predicate on the "skill_id" field.
func SkillIDEqualFold(v string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldEqualFold(FieldSkillID, v))
}

// SkillIDContainsFold applies the ContainsFold predicate on the "skill_id" field.
func SkillIDContainsFold(v string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldContainsFold(FieldSkillID, v))
}

// SkillNameEQ applies the EQ predicate on the "skill_name" field.
func SkillNameEQ(v string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldEQ(FieldSkillName, v))
}

// SkillNameNEQ applies the NEQ predicate on the "skill_name" field.
func SkillNameNEQ(v string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldNEQ(FieldSkillName, v))
}

// SkillNameIn applies the In predicate on the "skill_name" field.
func SkillNameIn(vs ...string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldIn(FieldSkillName, vs...))
}

// SkillNameNotIn applies the NotIn predicate on the "skill_name" field.
func SkillNameNotIn(vs ...string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldNotIn(FieldSkillName, vs...))
}

// SkillNameGT applies the GT predicate on the "skill_name" field.
func SkillNameGT(v string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldGT(FieldSkillName, v))
}

// SkillNameGTE applies the GTE predicate on the "skill_name" field.
func SkillNameGTE(v string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldGTE(FieldSkillName, v))
}

// SkillNameLT applies the LT predicate on the "skill_name" field.
func SkillNameLT(v string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldLT(FieldSkillName, v))
}

// SkillNameLTE applies the LTE predicate on the "skill_name" field.
func SkillNameLTE(v string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldLTE(FieldSkillName, v))
}

// SkillNameContains applies the Contains predicate on the "skill_name" field.
func SkillNameContains(v string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldContains(FieldSkillName, v))
}

// SkillNameHasPrefix applies the HasPrefix predicate on the "skill_name" field.
func SkillNameHasPrefix(v string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldHasPrefix(FieldSkillName, v))
}

// SkillNameHasSuffix applies the HasSuffix predicate on the "skill_name" field.
func SkillNameHasSuffix(v string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldHasSuffix(FieldSkillName, v))
}

// SkillNameEqualFold applies the EqualFold predicate on the "skill_name" field.
func SkillNameEqualFold(v string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldEqualFold(FieldSkillName, v))
}

// SkillNameContainsFold applies the ContainsFold predicate on the "skill_name" field.
func SkillNameContainsFold(v string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldContainsFold(FieldSkillName, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v int) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v int) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...int) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...int) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v int) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v int) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v int) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v int) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldLTE(FieldScore, v))
}

// ActionEQ applies the EQ predicate on the "action" field.
func ActionEQ(v string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldEQ(FieldAction, v))
}

// ActionNEQ applies the NEQ predicate on the "action" field.
func ActionNEQ(v string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldNEQ(FieldAction, v))
}

// ActionIn applies the In predicate on the "action" field.
func ActionIn(vs ...string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldIn(FieldAction, vs...))
}

// ActionNotIn applies the NotIn predicate on the "action" field.
func ActionNotIn(vs ...string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldNotIn(FieldAction, vs...))
}

// ActionGT applies the GT predicate on the "action" field.
func ActionGT(v string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldGT(FieldAction, v))
}

// ActionGTE applies the GTE predicate on the "action" field.
func ActionGTE(v string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldGTE(FieldAction, v))
}

// ActionLT applies the LT predicate on the "action" field.
func ActionLT(v string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldLT(FieldAction, v))
}

// ActionLTE applies the LTE predicate on the "action" field.
func ActionLTE(v string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldLTE(FieldAction, v))
}

// ActionContains applies the Contains predicate on the "action" field.
func ActionContains(v string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldContains(FieldAction, v))
}

// ActionHasPrefix applies the HasPrefix predicate on the "action" field.
func ActionHasPrefix(v string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldHasPrefix(FieldAction, v))
}

// ActionHasSuffix applies the HasSuffix predicate on the "action" field.
func ActionHasSuffix(v string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldHasSuffix(FieldAction, v))
}

// ActionEqualFold applies the EqualFold predicate on the "action" field.
func ActionEqualFold(v string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldEqualFold(FieldAction, v))
}

// ActionContainsFold applies the ContainsFold predicate on the "action" field.
func ActionContainsFold(v string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldContainsFold(FieldAction, v))
}

// MetadataCidEQ applies the EQ predicate on the "metadata_cid" field.
func MetadataCidEQ(v string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldEQ(FieldMetadataCid, v))
}

// MetadataCidNEQ applies the NEQ predicate on the "metadata_cid" field.
func MetadataCidNEQ(v string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldNEQ(FieldMetadataCid, v))
}

// MetadataCidIn applies the In predicate on the "metadata_cid" field.
func MetadataCidIn(vs ...string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldIn(FieldMetadataCid, vs...))
}

// MetadataCidNotIn applies the NotIn predicate on the "metadata_cid" field.
func MetadataCidNotIn(vs ...string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldNotIn(FieldMetadataCid, vs...))
}

// MetadataCidGT applies the GT predicate on the "metadata_cid" field.
func MetadataCidGT(v string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldGT(FieldMetadataCid, v))
}

// MetadataCidGTE applies the GTE predicate on the "metadata_cid" field.
func MetadataCidGTE(v string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldGTE(FieldMetadataCid, v))
}

// MetadataCidLT applies the LT predicate on the "metadata_cid" field.
func MetadataCidLT(v string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldLT(FieldMetadataCid, v))
}

// MetadataCidLTE applies the LTE predicate on the "metadata_cid" field.
func MetadataCidLTE(v string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldLTE(FieldMetadataCid, v))
}

// MetadataCidContains applies the Contains predicate on the "metadata_cid" field.
func MetadataCidContains(v string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldContains(FieldMetadataCid, v))
}

// MetadataCidHasPrefix applies the HasPrefix predicate on the "metadata_cid" field.
func MetadataCidHasPrefix(v string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldHasPrefix(FieldMetadataCid, v))
}

// MetadataCidHasSuffix applies the HasSuffix predicate on the "metadata_cid" field.
func MetadataCidHasSuffix(v string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldHasSuffix(FieldMetadataCid, v))
}

// MetadataCidEqualFold applies the EqualFold predicate on the "metadata_cid" field.
func MetadataCidEqualFold(v string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldEqualFold(FieldMetadataCid, v))
}

// MetadataCidContainsFold applies the ContainsFold predicate on the "metadata_cid" field.
func MetadataCidContainsFold(v string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldContainsFold(FieldMetadataCid, v))
}

// TokenIDEQ applies the EQ predicate on the "token_id" field.
func TokenIDEQ(v string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldEQ(FieldTokenID, v))
}

// TokenIDNEQ applies the NEQ predicate on the "token_id" field.
func TokenIDNEQ(v string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldNEQ(FieldTokenID, v))
}

// TokenIDIn applies the In predicate on the "token_id" field.
func TokenIDIn(vs ...string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldIn(FieldTokenID, vs...))
}

// TokenIDNotIn applies the NotIn predicate on the "token_id" field.
func TokenIDNotIn(vs ...string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldNotIn(FieldTokenID, vs...))
}

// TokenIDGT applies the GT predicate on the "token_id" field.
func TokenIDGT(v string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldGT(FieldTokenID, v))
}

// TokenIDGTE applies the GTE predicate on the "token_id" field.
func TokenIDGTE(v string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldGTE(FieldTokenID, v))
}

// TokenIDLT applies the LT predicate on the "token_id" field.
func TokenIDLT(v string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldLT(FieldTokenID, v))
}

// TokenIDLTE applies the LTE predicate on the "token_id" field.
func TokenIDLTE(v string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldLTE(FieldTokenID, v))
}

// TokenIDContains applies the Contains predicate on the "token_id" field.
func TokenIDContains(v string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldContains(FieldTokenID, v))
}

// TokenIDHasPrefix applies the HasPrefix predicate on the "token_id" field.
func TokenIDHasPrefix(v string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldHasPrefix(FieldTokenID, v))
}

// TokenIDHasSuffix applies the HasSuffix predicate on the "token_id" field.
func TokenIDHasSuffix(v string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldHasSuffix(FieldTokenID, v))
}

// TokenIDEqualFold applies the EqualFold predicate on the "token_id" field.
func TokenIDEqualFold(v string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldEqualFold(FieldTokenID, v))
}

// TokenIDContainsFold applies the ContainsFold predicate on the "token_id" field.
func TokenIDContainsFold(v string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldContainsFold(FieldTokenID, v))
}

// TxHashEQ applies the EQ predicate on the "tx_hash" field.
func TxHashEQ(v string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldEQ(FieldTxHash, v))
}

// TxHashNEQ applies the NEQ predicate on the "tx_hash" field.
func TxHashNEQ(v string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldNEQ(FieldTxHash, v))
}

// TxHashIn applies the In predicate on the "tx_hash" field.
func TxHashIn(vs ...string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldIn(FieldTxHash, vs...))
}

// TxHashNotIn applies the NotIn predicate on the "tx_hash" field.
func TxHashNotIn(vs ...string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldNotIn(FieldTxHash, vs...))
}

// TxHashGT applies the GT predicate on the "tx_hash" field.
func TxHashGT(v string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldGT(FieldTxHash, v))
}

// TxHashGTE applies the GTE predicate on the "tx_hash" field.
func TxHashGTE(v string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldGTE(FieldTxHash, v))
}

// TxHashLT applies the LT predicate on the "tx_hash" field.
func TxHashLT(v string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldLT(FieldTxHash, v))
}

// TxHashLTE applies the LTE predicate on the "tx_hash" field.
func TxHashLTE(v string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldLTE(FieldTxHash, v))
}

// TxHashContains applies the Contains predicate on the "tx_hash" field.
func TxHashContains(v string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldContains(FieldTxHash, v))
}

// TxHashHasPrefix applies the HasPrefix predicate on the "tx_hash" field.
func TxHashHasPrefix(v string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldHasPrefix(FieldTxHash, v))
}

// TxHashHasSuffix applies the HasSuffix predicate on the "tx_hash" field.
func TxHashHasSuffix(v string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldHasSuffix(FieldTxHash, v))
}

// TxHashEqualFold applies the EqualFold predicate on the "tx_hash" field.
func TxHashEqualFold(v string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldEqualFold(FieldTxHash, v))
}

// TxHashContainsFold applies the ContainsFold predicate on the "tx_hash" field.
func TxHashContainsFold(v string) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldContainsFold(FieldTxHash, v))
}

// VerifiedEQ applies the EQ predicate on the "verified" field.
func VerifiedEQ(v bool) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldEQ(FieldVerified, v))
}

// VerifiedNEQ applies the NEQ predicate on the "verified" field.
func VerifiedNEQ(v bool) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.FieldNEQ(FieldVerified, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CertificationEvent) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CertificationEvent) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CertificationEvent) predicate.CertificationEvent {
	return predicate.CertificationEvent(sql.NotPredicates(p))
}
