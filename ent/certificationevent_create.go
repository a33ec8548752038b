// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fairpersona/skillcert/ent/certificationevent"
)

// CertificationEventCreate is the builder for creating a CertificationEvent entity.
type CertificationEventCreate struct {
	config
	mutation *CertificationEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *CertificationEventCreate) SetSequence(v int64) *CertificationEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *CertificationEventCreate) SetTimestamp(v time.Time) *CertificationEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *CertificationEventCreate) SetNillableTimestamp(v *time.Time) *CertificationEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetCertID sets the "cert_id" field.
func (_c *CertificationEventCreate) SetCertID(v string) *CertificationEventCreate {
	_c.mutation.SetCertID(v)
	return _c
}

// SetAttemptID sets the "attempt_id" field.
func (_c *CertificationEventCreate) SetAttemptID(v string) *CertificationEventCreate {
	_c.mutation.SetAttemptID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *CertificationEventCreate) SetUserID(v string) *CertificationEventCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetSkillID sets the "skill_id" field.
func (_c *CertificationEventCreate) SetSkillID(v string) *CertificationEventCreate {
	_c.mutation.SetSkillID(v)
	return _c
}

// SetSkillName sets the "skill_name" field.
func (_c *CertificationEventCreate) SetSkillName(v string) *CertificationEventCreate {
	_c.mutation.SetSkillName(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *CertificationEventCreate) SetScore(v int) *CertificationEventCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetAction sets the "action" field.
func (_c *CertificationEventCreate) SetAction(v string) *CertificationEventCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetMetadataCid sets the "metadata_cid" field.
func (_c *CertificationEventCreate) SetMetadataCid(v string) *CertificationEventCreate {
	_c.mutation.SetMetadataCid(v)
	return _c
}

// SetNillableMetadataCid sets the "metadata_cid" field if the given value is not nil.
func (_c *CertificationEventCreate) SetNillableMetadataCid(v *string) *CertificationEventCreate {
	if v != nil {
		_c.SetMetadataCid(*v)
	}
	return _c
}

// SetTokenID sets the "token_id" field.
func (_c *CertificationEventCreate) SetTokenID(v string) *CertificationEventCreate {
	_c.mutation.SetTokenID(v)
	return _c
}

// SetNillableTokenID sets the "token_id" field if the given value is not nil.
func (_c *CertificationEventCreate) SetNillableTokenID(v *string) *CertificationEventCreate {
	if v != nil {
		_c.SetTokenID(*v)
	}
	return _c
}

// SetTxHash sets the "tx_hash" field.
func (_c *CertificationEventCreate) SetTxHash(v string) *CertificationEventCreate {
	_c.mutation.SetTxHash(v)
	return _c
}

// SetNillableTxHash sets the "tx_hash" field if the given value is not nil.
func (_c *CertificationEventCreate) SetNillableTxHash(v *string) *CertificationEventCreate {
	if v != nil {
		_c.SetTxHash(*v)
	}
	return _c
}

// SetVerified sets the "verified" field.
func (_c *CertificationEventCreate) SetVerified(v bool) *CertificationEventCreate {
	_c.mutation.SetVerified(v)
	return _c
}

// SetNillableVerified sets the "verified" field if the given value is not nil.
func (_c *CertificationEventCreate) SetNillableVerified(v *bool) *CertificationEventCreate {
	if v != nil {
		_c.SetVerified(*v)
	}
	return _c
}

// Mutation returns the CertificationEventMutation object of the builder.
func (_c *CertificationEventCreate) Mutation() *CertificationEventMutation {
	return _c.mutation
}

// Save creates the CertificationEvent in the database.
func (_c *CertificationEventCreate) Save(ctx context.Context) (*CertificationEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CertificationEventCreate) SaveX(ctx context.Context) *CertificationEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CertificationEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CertificationEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CertificationEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := certificationevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.MetadataCid(); !ok {
		v := certificationevent.DefaultMetadataCid
		_c.mutation.SetMetadataCid(v)
	}
	if _, ok := _c.mutation.TokenID(); !ok {
		v := certificationevent.DefaultTokenID
		_c.mutation.SetTokenID(v)
	}
	if _, ok := _c.mutation.TxHash(); !ok {
		v := certificationevent.DefaultTxHash
		_c.mutation.SetTxHash(v)
	}
	if _, ok := _c.mutation.Verified(); !ok {
		v := certificationevent.DefaultVerified
		_c.mutation.SetVerified(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CertificationEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "CertificationEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "CertificationEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.CertID(); !ok {
		return &ValidationError{Name: "cert_id", err: errors.New(`ent: missing required field "CertificationEvent.cert_id"`)}
	}
	if v, ok := _c.mutation.CertID(); ok {
		if err := certificationevent.CertIDValidator(v); err != nil {
			return &ValidationError{Name: "cert_id", err: fmt.Errorf(`ent: validator failed for field "CertificationEvent.cert_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AttemptID(); !ok {
		return &ValidationError{Name: "attempt_id", err: errors.New(`ent: missing required field "CertificationEvent.attempt_id"`)}
	}
	if v, ok := _c.mutation.AttemptID(); ok {
		if err := certificationevent.AttemptIDValidator(v); err != nil {
			return &ValidationError{Name: "attempt_id", err: fmt.Errorf(`ent: validator failed for field "CertificationEvent.attempt_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "CertificationEvent.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := certificationevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "CertificationEvent.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SkillID(); !ok {
		return &ValidationError{Name: "skill_id", err: errors.New(`ent: missing required field "CertificationEvent.skill_id"`)}
	}
	if v, ok := _c.mutation.SkillID(); ok {
		if err := certificationevent.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "CertificationEvent.skill_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SkillName(); !ok {
		return &ValidationError{Name: "skill_name", err: errors.New(`ent: missing required field "CertificationEvent.skill_name"`)}
	}
	if v, ok := _c.mutation.SkillName(); ok {
		if err := certificationevent.SkillNameValidator(v); err != nil {
			return &ValidationError{Name: "skill_name", err: fmt.Errorf(`ent: validator failed for field "CertificationEvent.skill_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "CertificationEvent.score"`)}
	}
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "CertificationEvent.action"`)}
	}
	if v, ok := _c.mutation.Action(); ok {
		if err := certificationevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "CertificationEvent.action": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MetadataCid(); !ok {
		return &ValidationError{Name: "metadata_cid", err: errors.New(`ent: missing required field "CertificationEvent.metadata_cid"`)}
	}
	if _, ok := _c.mutation.TokenID(); !ok {
		return &ValidationError{Name: "token_id", err: errors.New(`ent: missing required field "CertificationEvent.token_id"`)}
	}
	if _, ok := _c.mutation.TxHash(); !ok {
		return &ValidationError{Name: "tx_hash", err: errors.New(`ent: missing required field "CertificationEvent.tx_hash"`)}
	}
	if _, ok := _c.mutation.Verified(); !ok {
		return &ValidationError{Name: "verified", err: errors.New(`ent: missing required field "CertificationEvent.verified"`)}
	}
	return nil
}

func (_c *CertificationEventCreate) sqlSave(ctx context.Context) (*CertificationEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CertificationEventCreate) createSpec() (*CertificationEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &CertificationEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(certificationevent.Table, sqlgraph.NewFieldSpec(certificationevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(certificationevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(certificationevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.CertID(); ok {
		_spec.SetField(certificationevent.FieldCertID, field.TypeString, value)
		_node.CertID = value
	}
	if value, ok := _c.mutation.AttemptID(); ok {
		_spec.SetField(certificationevent.FieldAttemptID, field.TypeString, value)
		_node.AttemptID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(certificationevent.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.SkillID(); ok {
		_spec.SetField(certificationevent.FieldSkillID, field.TypeString, value)
		_node.SkillID = value
	}
	if value, ok := _c.mutation.SkillName(); ok {
		_spec.SetField(certificationevent.FieldSkillName, field.TypeString, value)
		_node.SkillName = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(certificationevent.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(certificationevent.FieldAction, field.TypeString, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.MetadataCid(); ok {
		_spec.SetField(certificationevent.FieldMetadataCid, field.TypeString, value)
		_node.MetadataCid = value
	}
	if value, ok := _c.mutation.TokenID(); ok {
		_spec.SetField(certificationevent.FieldTokenID, field.TypeString, value)
		_node.TokenID = value
	}
	if value, ok := _c.mutation.TxHash(); ok {
		_spec.SetField(certificationevent.FieldTxHash, field.TypeString, value)
		_node.TxHash = value
	}
	if value, ok := _c.mutation.Verified(); ok {
		_spec.SetField(certificationevent.FieldVerified, field.TypeBool, value)
		_node.Verified = value
	}
	return _node, _spec
}

// CertificationEventCreateBulk is the builder for creating many CertificationEvent entities in bulk.
type CertificationEventCreateBulk struct {
	config
	err      error
	builders []*CertificationEventCreate
}

// Save creates the CertificationEvent entities in the database.
func (_c *CertificationEventCreateBulk) Save(ctx context.Context) ([]*CertificationEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CertificationEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CertificationEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *CertificationEventCreateBulk) SaveX(ctx context.Context) []*CertificationEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CertificationEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CertificationEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
