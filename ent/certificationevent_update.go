// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fairpersona/skillcert/ent/certificationevent"
	"github.com/fairpersona/skillcert/ent/predicate"
)

// CertificationEventUpdate is the builder for updating CertificationEvent entities.
type CertificationEventUpdate struct {
	config
	hooks    []Hook
	mutation *CertificationEventMutation
}

// Where appends a list predicates to the CertificationEventUpdate builder.
func (_u *CertificationEventUpdate) Where(ps ...predicate.CertificationEvent) *CertificationEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCertID sets the "cert_id" field.
func (_u *CertificationEventUpdate) SetCertID(v string) *CertificationEventUpdate {
	_u.mutation.SetCertID(v)
	return _u
}

// SetNillableCertID sets the "cert_id" field if the given value is not nil.
func (_u *CertificationEventUpdate) SetNillableCertID(v *string) *CertificationEventUpdate {
	if v != nil {
		_u.SetCertID(*v)
	}
	return _u
}

// SetAttemptID sets the "attempt_id" field.
func (_u *CertificationEventUpdate) SetAttemptID(v string) *CertificationEventUpdate {
	_u.mutation.SetAttemptID(v)
	return _u
}

// SetNillableAttemptID sets the "attempt_id" field if the given value is not nil.
func (_u *CertificationEventUpdate) SetNillableAttemptID(v *string) *CertificationEventUpdate {
	if v != nil {
		_u.SetAttemptID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *CertificationEventUpdate) SetUserID(v string) *CertificationEventUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *CertificationEventUpdate) SetNillableUserID(v *string) *CertificationEventUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSkillID sets the "skill_id" field.
func (_u *CertificationEventUpdate) SetSkillID(v string) *CertificationEventUpdate {
	_u.mutation.SetSkillID(v)
	return _u
}

// SetNillableSkillID sets the "skill_id" field if the given value is not nil.
func (_u *CertificationEventUpdate) SetNillableSkillID(v *string) *CertificationEventUpdate {
	if v != nil {
		_u.SetSkillID(*v)
	}
	return _u
}

// SetSkillName sets the "skill_name" field.
func (_u *CertificationEventUpdate) SetSkillName(v string) *CertificationEventUpdate {
	_u.mutation.SetSkillName(v)
	return _u
}

// SetNillableSkillName sets the "skill_name" field if the given value is not nil.
func (_u *CertificationEventUpdate) SetNillableSkillName(v *string) *CertificationEventUpdate {
	if v != nil {
		_u.SetSkillName(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *CertificationEventUpdate) SetScore(v int) *CertificationEventUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *CertificationEventUpdate) SetNillableScore(v *int) *CertificationEventUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *CertificationEventUpdate) AddScore(v int) *CertificationEventUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetAction sets the "action" field.
func (_u *CertificationEventUpdate) SetAction(v string) *CertificationEventUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *CertificationEventUpdate) SetNillableAction(v *string) *CertificationEventUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetMetadataCid sets the "metadata_cid" field.
func (_u *CertificationEventUpdate) SetMetadataCid(v string) *CertificationEventUpdate {
	_u.mutation.SetMetadataCid(v)
	return _u
}

// SetNillableMetadataCid sets the "metadata_cid" field if the given value is not nil.
func (_u *CertificationEventUpdate) SetNillableMetadataCid(v *string) *CertificationEventUpdate {
	if v != nil {
		_u.SetMetadataCid(*v)
	}
	return _u
}

// SetTokenID sets the "token_id" field.
func (_u *CertificationEventUpdate) SetTokenID(v string) *CertificationEventUpdate {
	_u.mutation.SetTokenID(v)
	return _u
}

// SetNillableTokenID sets the "token_id" field if the given value is not nil.
func (_u *CertificationEventUpdate) SetNillableTokenID(v *string) *CertificationEventUpdate {
	if v != nil {
		_u.SetTokenID(*v)
	}
	return _u
}

// SetTxHash sets the "tx_hash" field.
func (_u *CertificationEventUpdate) SetTxHash(v string) *CertificationEventUpdate {
	_u.mutation.SetTxHash(v)
	return _u
}

// SetNillableTxHash sets the "tx_hash" field if the given value is not nil.
func (_u *CertificationEventUpdate) SetNillableTxHash(v *string) *CertificationEventUpdate {
	if v != nil {
		_u.SetTxHash(*v)
	}
	return _u
}

// SetVerified sets the "verified" field.
func (_u *CertificationEventUpdate) SetVerified(v bool) *CertificationEventUpdate {
	_u.mutation.SetVerified(v)
	return _u
}

// SetNillableVerified sets the "verified" field if the given value is not nil.
func (_u *CertificationEventUpdate) SetNillableVerified(v *bool) *CertificationEventUpdate {
	if v != nil {
		_u.SetVerified(*v)
	}
	return _u
}

// Mutation returns the CertificationEventMutation object of the builder.
func (_u *CertificationEventUpdate) Mutation() *CertificationEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CertificationEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CertificationEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CertificationEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CertificationEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CertificationEventUpdate) check() error {
	if v, ok := _u.mutation.CertID(); ok {
		if err := certificationevent.CertIDValidator(v); err != nil {
			return &ValidationError{Name: "cert_id", err: fmt.Errorf(`ent: validator failed for field "CertificationEvent.cert_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AttemptID(); ok {
		if err := certificationevent.AttemptIDValidator(v); err != nil {
			return &ValidationError{Name: "attempt_id", err: fmt.Errorf(`ent: validator failed for field "CertificationEvent.attempt_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := certificationevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "CertificationEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SkillID(); ok {
		if err := certificationevent.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "CertificationEvent.skill_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SkillName(); ok {
		if err := certificationevent.SkillNameValidator(v); err != nil {
			return &ValidationError{Name: "skill_name", err: fmt.Errorf(`ent: validator failed for field "CertificationEvent.skill_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := certificationevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "CertificationEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *CertificationEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(certificationevent.Table, certificationevent.Columns, sqlgraph.NewFieldSpec(certificationevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CertID(); ok {
		_spec.SetField(certificationevent.FieldCertID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AttemptID(); ok {
		_spec.SetField(certificationevent.FieldAttemptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(certificationevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SkillID(); ok {
		_spec.SetField(certificationevent.FieldSkillID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SkillName(); ok {
		_spec.SetField(certificationevent.FieldSkillName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(certificationevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(certificationevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(certificationevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.MetadataCid(); ok {
		_spec.SetField(certificationevent.FieldMetadataCid, field.TypeString, value)
	}
	if value, ok := _u.mutation.TokenID(); ok {
		_spec.SetField(certificationevent.FieldTokenID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TxHash(); ok {
		_spec.SetField(certificationevent.FieldTxHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.Verified(); ok {
		_spec.SetField(certificationevent.FieldVerified, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{certificationevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CertificationEventUpdateOne is the builder for updating a single CertificationEvent entity.
type CertificationEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CertificationEventMutation
}

// SetCertID sets the "cert_id" field.
func (_u *CertificationEventUpdateOne) SetCertID(v string) *CertificationEventUpdateOne {
	_u.mutation.SetCertID(v)
	return _u
}

// SetNillableCertID sets the "cert_id" field if the given value is not nil.
func (_u *CertificationEventUpdateOne) SetNillableCertID(v *string) *CertificationEventUpdateOne {
	if v != nil {
		_u.SetCertID(*v)
	}
	return _u
}

// SetAttemptID sets the "attempt_id" field.
func (_u *CertificationEventUpdateOne) SetAttemptID(v string) *CertificationEventUpdateOne {
	_u.mutation.SetAttemptID(v)
	return _u
}

// SetNillableAttemptID sets the "attempt_id" field if the given value is not nil.
func (_u *CertificationEventUpdateOne) SetNillableAttemptID(v *string) *CertificationEventUpdateOne {
	if v != nil {
		_u.SetAttemptID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *CertificationEventUpdateOne) SetUserID(v string) *CertificationEventUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *CertificationEventUpdateOne) SetNillableUserID(v *string) *CertificationEventUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSkillID sets the "skill_id" field.
func (_u *CertificationEventUpdateOne) SetSkillID(v string) *CertificationEventUpdateOne {
	_u.mutation.SetSkillID(v)
	return _u
}

// SetNillableSkillID sets the "skill_id" field if the given value is not nil.
func (_u *CertificationEventUpdateOne) SetNillableSkillID(v *string) *CertificationEventUpdateOne {
	if v != nil {
		_u.SetSkillID(*v)
	}
	return _u
}

// SetSkillName sets the "skill_name" field.
func (_u *CertificationEventUpdateOne) SetSkillName(v string) *CertificationEventUpdateOne {
	_u.mutation.SetSkillName(v)
	return _u
}

// SetNillableSkillName sets the "skill_name" field if the given value is not nil.
func (_u *CertificationEventUpdateOne) SetNillableSkillName(v *string) *CertificationEventUpdateOne {
	if v != nil {
		_u.SetSkillName(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *CertificationEventUpdateOne) SetScore(v int) *CertificationEventUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *CertificationEventUpdateOne) SetNillableScore(v *int) *CertificationEventUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *CertificationEventUpdateOne) AddScore(v int) *CertificationEventUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetAction sets the "action" field.
func (_u *CertificationEventUpdateOne) SetAction(v string) *CertificationEventUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *CertificationEventUpdateOne) SetNillableAction(v *string) *CertificationEventUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetMetadataCid sets the "metadata_cid" field.
func (_u *CertificationEventUpdateOne) SetMetadataCid(v string) *CertificationEventUpdateOne {
	_u.mutation.SetMetadataCid(v)
	return _u
}

// SetNillableMetadataCid sets the "metadata_cid" field if the given value is not nil.
func (_u *CertificationEventUpdateOne) SetNillableMetadataCid(v *string) *CertificationEventUpdateOne {
	if v != nil {
		_u.SetMetadataCid(*v)
	}
	return _u
}

// SetTokenID sets the "token_id" field.
func (_u *CertificationEventUpdateOne) SetTokenID(v string) *CertificationEventUpdateOne {
	_u.mutation.SetTokenID(v)
	return _u
}

// SetNillableTokenID sets the "token_id" field if the given value is not nil.
func (_u *CertificationEventUpdateOne) SetNillableTokenID(v *string) *CertificationEventUpdateOne {
	if v != nil {
		_u.SetTokenID(*v)
	}
	return _u
}

// SetTxHash sets the "tx_hash" field.
func (_u *CertificationEventUpdateOne) SetTxHash(v string) *CertificationEventUpdateOne {
	_u.mutation.SetTxHash(v)
	return _u
}

// SetNillableTxHash sets the "tx_hash" field if the given value is not nil.
func (_u *CertificationEventUpdateOne) SetNillableTxHash(v *string) *CertificationEventUpdateOne {
	if v != nil {
		_u.SetTxHash(*v)
	}
	return _u
}

// SetVerified sets the "verified" field.
func (_u *CertificationEventUpdateOne) SetVerified(v bool) *CertificationEventUpdateOne {
	_u.mutation.SetVerified(v)
	return _u
}

// SetNillableVerified sets the "verified" field if the given value is not nil.
func (_u *CertificationEventUpdateOne) SetNillableVerified(v *bool) *CertificationEventUpdateOne {
	if v != nil {
		_u.SetVerified(*v)
	}
	return _u
}

// Mutation returns the CertificationEventMutation object of the builder.
func (_u *CertificationEventUpdateOne) Mutation() *CertificationEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the CertificationEventUpdate builder.
func (_u *CertificationEventUpdateOne) Where(ps ...predicate.CertificationEvent) *CertificationEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CertificationEventUpdateOne) Select(field string, fields ...string) *CertificationEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CertificationEvent entity.
func (_u *CertificationEventUpdateOne) Save(ctx context.Context) (*CertificationEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CertificationEventUpdateOne) SaveX(ctx context.Context) *CertificationEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CertificationEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CertificationEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CertificationEventUpdateOne) check() error {
	if v, ok := _u.mutation.CertID(); ok {
		if err := certificationevent.CertIDValidator(v); err != nil {
			return &ValidationError{Name: "cert_id", err: fmt.Errorf(`ent: validator failed for field "CertificationEvent.cert_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AttemptID(); ok {
		if err := certificationevent.AttemptIDValidator(v); err != nil {
			return &ValidationError{Name: "attempt_id", err: fmt.Errorf(`ent: validator failed for field "CertificationEvent.attempt_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := certificationevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "CertificationEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SkillID(); ok {
		if err := certificationevent.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "CertificationEvent.skill_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SkillName(); ok {
		if err := certificationevent.SkillNameValidator(v); err != nil {
			return &ValidationError{Name: "skill_name", err: fmt.Errorf(`ent: validator failed for field "CertificationEvent.skill_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := certificationevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "CertificationEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *CertificationEventUpdateOne) sqlSave(ctx context.Context) (_node *CertificationEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(certificationevent.Table, certificationevent.Columns, sqlgraph.NewFieldSpec(certificationevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CertificationEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, certificationevent.FieldID)
		for _, f := range fields {
			if !certificationevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != certificationevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CertID(); ok {
		_spec.SetField(certificationevent.FieldCertID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AttemptID(); ok {
		_spec.SetField(certificationevent.FieldAttemptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(certificationevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SkillID(); ok {
		_spec.SetField(certificationevent.FieldSkillID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SkillName(); ok {
		_spec.SetField(certificationevent.FieldSkillName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(certificationevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(certificationevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(certificationevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.MetadataCid(); ok {
		_spec.SetField(certificationevent.FieldMetadataCid, field.TypeString, value)
	}
	if value, ok := _u.mutation.TokenID(); ok {
		_spec.SetField(certificationevent.FieldTokenID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TxHash(); ok {
		_spec.SetField(certificationevent.FieldTxHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.Verified(); ok {
		_spec.SetField(certificationevent.FieldVerified, field.TypeBool, value)
	}
	_node = &CertificationEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{certificationevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
