// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/fairpersona/skillcert/ent/gradeevent"
	"github.com/fairpersona/skillcert/ent/predicate"
)

// GradeEventUpdate is the builder for updating GradeEvent entities.
type GradeEventUpdate struct {
	config
	hooks    []Hook
	mutation *GradeEventMutation
}

// Where appends a list predicates to the GradeEventUpdate builder.
func (_u *GradeEventUpdate) Where(ps ...predicate.GradeEvent) *GradeEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAttemptID sets the "attempt_id" field.
func (_u *GradeEventUpdate) SetAttemptID(v string) *GradeEventUpdate {
	_u.mutation.SetAttemptID(v)
	return _u
}

// SetNillableAttemptID sets the "attempt_id" field if the given value is not nil.
func (_u *GradeEventUpdate) SetNillableAttemptID(v *string) *GradeEventUpdate {
	if v != nil {
		_u.SetAttemptID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *GradeEventUpdate) SetUserID(v string) *GradeEventUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *GradeEventUpdate) SetNillableUserID(v *string) *GradeEventUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSkillID sets the "skill_id" field.
func (_u *GradeEventUpdate) SetSkillID(v string) *GradeEventUpdate {
	_u.mutation.SetSkillID(v)
	return _u
}

// SetNillableSkillID sets the "skill_id" field if the given value is not nil.
func (_u *GradeEventUpdate) SetNillableSkillID(v *string) *GradeEventUpdate {
	if v != nil {
		_u.SetSkillID(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *GradeEventUpdate) SetScore(v int) *GradeEventUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *GradeEventUpdate) SetNillableScore(v *int) *GradeEventUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *GradeEventUpdate) AddScore(v int) *GradeEventUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetEarnedPoints sets the "earned_points" field.
func (_u *GradeEventUpdate) SetEarnedPoints(v int) *GradeEventUpdate {
	_u.mutation.ResetEarnedPoints()
	_u.mutation.SetEarnedPoints(v)
	return _u
}

// SetNillableEarnedPoints sets the "earned_points" field if the given value is not nil.
func (_u *GradeEventUpdate) SetNillableEarnedPoints(v *int) *GradeEventUpdate {
	if v != nil {
		_u.SetEarnedPoints(*v)
	}
	return _u
}

// AddEarnedPoints adds value to the "earned_points" field.
func (_u *GradeEventUpdate) AddEarnedPoints(v int) *GradeEventUpdate {
	_u.mutation.AddEarnedPoints(v)
	return _u
}

// SetTotalPoints sets the "total_points" field.
func (_u *GradeEventUpdate) SetTotalPoints(v int) *GradeEventUpdate {
	_u.mutation.ResetTotalPoints()
	_u.mutation.SetTotalPoints(v)
	return _u
}

// SetNillableTotalPoints sets the "total_points" field if the given value is not nil.
func (_u *GradeEventUpdate) SetNillableTotalPoints(v *int) *GradeEventUpdate {
	if v != nil {
		_u.SetTotalPoints(*v)
	}
	return _u
}

// AddTotalPoints adds value to the "total_points" field.
func (_u *GradeEventUpdate) AddTotalPoints(v int) *GradeEventUpdate {
	_u.mutation.AddTotalPoints(v)
	return _u
}

// SetPassThreshold sets the "pass_threshold" field.
func (_u *GradeEventUpdate) SetPassThreshold(v int) *GradeEventUpdate {
	_u.mutation.ResetPassThreshold()
	_u.mutation.SetPassThreshold(v)
	return _u
}

// SetNillablePassThreshold sets the "pass_threshold" field if the given value is not nil.
func (_u *GradeEventUpdate) SetNillablePassThreshold(v *int) *GradeEventUpdate {
	if v != nil {
		_u.SetPassThreshold(*v)
	}
	return _u
}

// AddPassThreshold adds value to the "pass_threshold" field.
func (_u *GradeEventUpdate) AddPassThreshold(v int) *GradeEventUpdate {
	_u.mutation.AddPassThreshold(v)
	return _u
}

// SetPassed sets the "passed" field.
func (_u *GradeEventUpdate) SetPassed(v bool) *GradeEventUpdate {
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *GradeEventUpdate) SetNillablePassed(v *bool) *GradeEventUpdate {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// SetFeedback sets the "feedback" field.
func (_u *GradeEventUpdate) SetFeedback(v []string) *GradeEventUpdate {
	_u.mutation.SetFeedback(v)
	return _u
}

// AppendFeedback appends value to the "feedback" field.
func (_u *GradeEventUpdate) AppendFeedback(v []string) *GradeEventUpdate {
	_u.mutation.AppendFeedback(v)
	return _u
}

// ClearFeedback clears the value of the "feedback" field.
func (_u *GradeEventUpdate) ClearFeedback() *GradeEventUpdate {
	_u.mutation.ClearFeedback()
	return _u
}

// Mutation returns the GradeEventMutation object of the builder.
func (_u *GradeEventUpdate) Mutation() *GradeEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GradeEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GradeEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GradeEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GradeEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GradeEventUpdate) check() error {
	if v, ok := _u.mutation.AttemptID(); ok {
		if err := gradeevent.AttemptIDValidator(v); err != nil {
			return &ValidationError{Name: "attempt_id", err: fmt.Errorf(`ent: validator failed for field "GradeEvent.attempt_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := gradeevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "GradeEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SkillID(); ok {
		if err := gradeevent.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "GradeEvent.skill_id": %w`, err)}
		}
	}
	return nil
}

func (_u *GradeEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(gradeevent.Table, gradeevent.Columns, sqlgraph.NewFieldSpec(gradeevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AttemptID(); ok {
		_spec.SetField(gradeevent.FieldAttemptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(gradeevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SkillID(); ok {
		_spec.SetField(gradeevent.FieldSkillID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(gradeevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(gradeevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EarnedPoints(); ok {
		_spec.SetField(gradeevent.FieldEarnedPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEarnedPoints(); ok {
		_spec.AddField(gradeevent.FieldEarnedPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalPoints(); ok {
		_spec.SetField(gradeevent.FieldTotalPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalPoints(); ok {
		_spec.AddField(gradeevent.FieldTotalPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PassThreshold(); ok {
		_spec.SetField(gradeevent.FieldPassThreshold, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPassThreshold(); ok {
		_spec.AddField(gradeevent.FieldPassThreshold, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(gradeevent.FieldPassed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Feedback(); ok {
		_spec.SetField(gradeevent.FieldFeedback, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFeedback(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, gradeevent.FieldFeedback, value)
		})
	}
	if _u.mutation.FeedbackCleared() {
		_spec.ClearField(gradeevent.FieldFeedback, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{gradeevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GradeEventUpdateOne is the builder for updating a single GradeEvent entity.
type GradeEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GradeEventMutation
}

// SetAttemptID sets the "attempt_id" field.
func (_u *GradeEventUpdateOne) SetAttemptID(v string) *GradeEventUpdateOne {
	_u.mutation.SetAttemptID(v)
	return _u
}

// SetNillableAttemptID sets the "attempt_id" field if the given value is not nil.
func (_u *GradeEventUpdateOne) SetNillableAttemptID(v *string) *GradeEventUpdateOne {
	if v != nil {
		_u.SetAttemptID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *GradeEventUpdateOne) SetUserID(v string) *GradeEventUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *GradeEventUpdateOne) SetNillableUserID(v *string) *GradeEventUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSkillID sets the "skill_id" field.
func (_u *GradeEventUpdateOne) SetSkillID(v string) *GradeEventUpdateOne {
	_u.mutation.SetSkillID(v)
	return _u
}

// SetNillableSkillID sets the "skill_id" field if the given value is not nil.
func (_u *GradeEventUpdateOne) SetNillableSkillID(v *string) *GradeEventUpdateOne {
	if v != nil {
		_u.SetSkillID(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *GradeEventUpdateOne) SetScore(v int) *GradeEventUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *GradeEventUpdateOne) SetNillableScore(v *int) *GradeEventUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *GradeEventUpdateOne) AddScore(v int) *GradeEventUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetEarnedPoints sets the "earned_points" field.
func (_u *GradeEventUpdateOne) SetEarnedPoints(v int) *GradeEventUpdateOne {
	_u.mutation.ResetEarnedPoints()
	_u.mutation.SetEarnedPoints(v)
	return _u
}

// SetNillableEarnedPoints sets the "earned_points" field if the given value is not nil.
func (_u *GradeEventUpdateOne) SetNillableEarnedPoints(v *int) *GradeEventUpdateOne {
	if v != nil {
		_u.SetEarnedPoints(*v)
	}
	return _u
}

// AddEarnedPoints adds value to the "earned_points" field.
func (_u *GradeEventUpdateOne) AddEarnedPoints(v int) *GradeEventUpdateOne {
	_u.mutation.AddEarnedPoints(v)
	return _u
}

// SetTotalPoints sets the "total_points" field.
func (_u *GradeEventUpdateOne) SetTotalPoints(v int) *GradeEventUpdateOne {
	_u.mutation.ResetTotalPoints()
	_u.mutation.SetTotalPoints(v)
	return _u
}

// SetNillableTotalPoints sets the "total_points" field if the given value is not nil.
func (_u *GradeEventUpdateOne) SetNillableTotalPoints(v *int) *GradeEventUpdateOne {
	if v != nil {
		_u.SetTotalPoints(*v)
	}
	return _u
}

// AddTotalPoints adds value to the "total_points" field.
func (_u *GradeEventUpdateOne) AddTotalPoints(v int) *GradeEventUpdateOne {
	_u.mutation.AddTotalPoints(v)
	return _u
}

// SetPassThreshold sets the "pass_threshold" field.
func (_u *GradeEventUpdateOne) SetPassThreshold(v int) *GradeEventUpdateOne {
	_u.mutation.ResetPassThreshold()
	_u.mutation.SetPassThreshold(v)
	return _u
}

// SetNillablePassThreshold sets the "pass_threshold" field if the given value is not nil.
func (_u *GradeEventUpdateOne) SetNillablePassThreshold(v *int) *GradeEventUpdateOne {
	if v != nil {
		_u.SetPassThreshold(*v)
	}
	return _u
}

// AddPassThreshold adds value to the "pass_threshold" field.
func (_u *GradeEventUpdateOne) AddPassThreshold(v int) *GradeEventUpdateOne {
	_u.mutation.AddPassThreshold(v)
	return _u
}

// SetPassed sets the "passed" field.
func (_u *GradeEventUpdateOne) SetPassed(v bool) *GradeEventUpdateOne {
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *GradeEventUpdateOne) SetNillablePassed(v *bool) *GradeEventUpdateOne {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// SetFeedback sets the "feedback" field.
func (_u *GradeEventUpdateOne) SetFeedback(v []string) *GradeEventUpdateOne {
	_u.mutation.SetFeedback(v)
	return _u
}

// AppendFeedback appends value to the "feedback" field.
func (_u *GradeEventUpdateOne) AppendFeedback(v []string) *GradeEventUpdateOne {
	_u.mutation.AppendFeedback(v)
	return _u
}

// ClearFeedback clears the value of the "feedback" field.
func (_u *GradeEventUpdateOne) ClearFeedback() *GradeEventUpdateOne {
	_u.mutation.ClearFeedback()
	return _u
}

// Mutation returns the GradeEventMutation object of the builder.
func (_u *GradeEventUpdateOne) Mutation() *GradeEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the GradeEventUpdate builder.
func (_u *GradeEventUpdateOne) Where(ps ...predicate.GradeEvent) *GradeEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GradeEventUpdateOne) Select(field string, fields ...string) *GradeEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GradeEvent entity.
func (_u *GradeEventUpdateOne) Save(ctx context.Context) (*GradeEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GradeEventUpdateOne) SaveX(ctx context.Context) *GradeEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GradeEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GradeEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GradeEventUpdateOne) check() error {
	if v, ok := _u.mutation.AttemptID(); ok {
		if err := gradeevent.AttemptIDValidator(v); err != nil {
			return &ValidationError{Name: "attempt_id", err: fmt.Errorf(`ent: validator failed for field "GradeEvent.attempt_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := gradeevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "GradeEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SkillID(); ok {
		if err := gradeevent.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "GradeEvent.skill_id": %w`, err)}
		}
	}
	return nil
}

func (_u *GradeEventUpdateOne) sqlSave(ctx context.Context) (_node *GradeEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(gradeevent.Table, gradeevent.Columns, sqlgraph.NewFieldSpec(gradeevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GradeEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, gradeevent.FieldID)
		for _, f := range fields {
			if !gradeevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != gradeevent.FieldID {
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
	if value, ok := _u.mutation.AttemptID(); ok {
		_spec.SetField(gradeevent.FieldAttemptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(gradeevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SkillID(); ok {
		_spec.SetField(gradeevent.FieldSkillID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(gradeevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(gradeevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EarnedPoints(); ok {
		_spec.SetField(gradeevent.FieldEarnedPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEarnedPoints(); ok {
		_spec.AddField(gradeevent.FieldEarnedPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalPoints(); ok {
		_spec.SetField(gradeevent.FieldTotalPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalPoints(); ok {
		_spec.AddField(gradeevent.FieldTotalPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PassThreshold(); ok {
		_spec.SetField(gradeevent.FieldPassThreshold, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPassThreshold(); ok {
		_spec.AddField(gradeevent.FieldPassThreshold, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(gradeevent.FieldPassed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Feedback(); ok {
		_spec.SetField(gradeevent.FieldFeedback, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFeedback(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, gradeevent.FieldFeedback, value)
		})
	}
	if _u.mutation.FeedbackCleared() {
		_spec.ClearField(gradeevent.FieldFeedback, field.TypeJSON)
	}
	_node = &GradeEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{gradeevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
