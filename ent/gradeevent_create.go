// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fairpersona/skillcert/ent/gradeevent"
)

// GradeEventCreate is the builder for creating a GradeEvent entity.
type GradeEventCreate struct {
	config
	mutation *GradeEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *GradeEventCreate) SetSequence(v int64) *GradeEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *GradeEventCreate) SetTimestamp(v time.Time) *GradeEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *GradeEventCreate) SetNillableTimestamp(v *time.Time) *GradeEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetAttemptID sets the "attempt_id" field.
func (_c *GradeEventCreate) SetAttemptID(v string) *GradeEventCreate {
	_c.mutation.SetAttemptID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *GradeEventCreate) SetUserID(v string) *GradeEventCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetSkillID sets the "skill_id" field.
func (_c *GradeEventCreate) SetSkillID(v string) *GradeEventCreate {
	_c.mutation.SetSkillID(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *GradeEventCreate) SetScore(v int) *GradeEventCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetEarnedPoints sets the "earned_points" field.
func (_c *GradeEventCreate) SetEarnedPoints(v int) *GradeEventCreate {
	_c.mutation.SetEarnedPoints(v)
	return _c
}

// SetNillableEarnedPoints sets the "earned_points" field if the given value is not nil.
func (_c *GradeEventCreate) SetNillableEarnedPoints(v *int) *GradeEventCreate {
	if v != nil {
		_c.SetEarnedPoints(*v)
	}
	return _c
}

// SetTotalPoints sets the "total_points" field.
func (_c *GradeEventCreate) SetTotalPoints(v int) *GradeEventCreate {
	_c.mutation.SetTotalPoints(v)
	return _c
}

// SetNillableTotalPoints sets the "total_points" field if the given value is not nil.
func (_c *GradeEventCreate) SetNillableTotalPoints(v *int) *GradeEventCreate {
	if v != nil {
		_c.SetTotalPoints(*v)
	}
	return _c
}

// SetPassThreshold sets the "pass_threshold" field.
func (_c *GradeEventCreate) SetPassThreshold(v int) *GradeEventCreate {
	_c.mutation.SetPassThreshold(v)
	return _c
}

// SetPassed sets the "passed" field.
func (_c *GradeEventCreate) SetPassed(v bool) *GradeEventCreate {
	_c.mutation.SetPassed(v)
	return _c
}

// SetFeedback sets the "feedback" field.
func (_c *GradeEventCreate) SetFeedback(v []string) *GradeEventCreate {
	_c.mutation.SetFeedback(v)
	return _c
}

// Mutation returns the GradeEventMutation object of the builder.
func (_c *GradeEventCreate) Mutation() *GradeEventMutation {
	return _c.mutation
}

// Save creates the GradeEvent in the database.
func (_c *GradeEventCreate) Save(ctx context.Context) (*GradeEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GradeEventCreate) SaveX(ctx context.Context) *GradeEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GradeEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GradeEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GradeEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := gradeevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.EarnedPoints(); !ok {
		v := gradeevent.DefaultEarnedPoints
		_c.mutation.SetEarnedPoints(v)
	}
	if _, ok := _c.mutation.TotalPoints(); !ok {
		v := gradeevent.DefaultTotalPoints
		_c.mutation.SetTotalPoints(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GradeEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "GradeEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "GradeEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.AttemptID(); !ok {
		return &ValidationError{Name: "attempt_id", err: errors.New(`ent: missing required field "GradeEvent.attempt_id"`)}
	}
	if v, ok := _c.mutation.AttemptID(); ok {
		if err := gradeevent.AttemptIDValidator(v); err != nil {
			return &ValidationError{Name: "attempt_id", err: fmt.Errorf(`ent: validator failed for field "GradeEvent.attempt_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "GradeEvent.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := gradeevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "GradeEvent.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SkillID(); !ok {
		return &ValidationError{Name: "skill_id", err: errors.New(`ent: missing required field "GradeEvent.skill_id"`)}
	}
	if v, ok := _c.mutation.SkillID(); ok {
		if err := gradeevent.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "GradeEvent.skill_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "GradeEvent.score"`)}
	}
	if _, ok := _c.mutation.EarnedPoints(); !ok {
		return &ValidationError{Name: "earned_points", err: errors.New(`ent: missing required field "GradeEvent.earned_points"`)}
	}
	if _, ok := _c.mutation.TotalPoints(); !ok {
		return &ValidationError{Name: "total_points", err: errors.New(`ent: missing required field "GradeEvent.total_points"`)}
	}
	if _, ok := _c.mutation.PassThreshold(); !ok {
		return &ValidationError{Name: "pass_threshold", err: errors.New(`ent: missing required field "GradeEvent.pass_threshold"`)}
	}
	if _, ok := _c.mutation.Passed(); !ok {
		return &ValidationError{Name: "passed", err: errors.New(`ent: missing required field "GradeEvent.passed"`)}
	}
	return nil
}

func (_c *GradeEventCreate) sqlSave(ctx context.Context) (*GradeEvent, error) {
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

func (_c *GradeEventCreate) createSpec() (*GradeEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &GradeEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(gradeevent.Table, sqlgraph.NewFieldSpec(gradeevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(gradeevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(gradeevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.AttemptID(); ok {
		_spec.SetField(gradeevent.FieldAttemptID, field.TypeString, value)
		_node.AttemptID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(gradeevent.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.SkillID(); ok {
		_spec.SetField(gradeevent.FieldSkillID, field.TypeString, value)
		_node.SkillID = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(gradeevent.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.EarnedPoints(); ok {
		_spec.SetField(gradeevent.FieldEarnedPoints, field.TypeInt, value)
		_node.EarnedPoints = value
	}
	if value, ok := _c.mutation.TotalPoints(); ok {
		_spec.SetField(gradeevent.FieldTotalPoints, field.TypeInt, value)
		_node.TotalPoints = value
	}
	if value, ok := _c.mutation.PassThreshold(); ok {
		_spec.SetField(gradeevent.FieldPassThreshold, field.TypeInt, value)
		_node.PassThreshold = value
	}
	if value, ok := _c.mutation.Passed(); ok {
		_spec.SetField(gradeevent.FieldPassed, field.TypeBool, value)
		_node.Passed = value
	}
	if value, ok := _c.mutation.Feedback(); ok {
		_spec.SetField(gradeevent.FieldFeedback, field.TypeJSON, value)
		_node.Feedback = value
	}
	return _node, _spec
}

// GradeEventCreateBulk is the builder for creating many GradeEvent entities in bulk.
type GradeEventCreateBulk struct {
	config
	err      error
	builders []*GradeEventCreate
}

// Save creates the GradeEvent entities in the database.
func (_c *GradeEventCreateBulk) Save(ctx context.Context) ([]*GradeEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*GradeEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GradeEventMutation)
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
func (_c *GradeEventCreateBulk) SaveX(ctx context.Context) []*GradeEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GradeEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GradeEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
