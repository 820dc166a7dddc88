// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/insurtech-labs/claims-adjudicator/gen/ent/claim"
	"github.com/insurtech-labs/claims-adjudicator/gen/ent/claimevidence"
	"github.com/insurtech-labs/claims-adjudicator/gen/ent/predicate"
)

// ClaimEvidenceUpdate is the builder for updating ClaimEvidence entities.
type ClaimEvidenceUpdate struct {
	config
	hooks    []Hook
	mutation *ClaimEvidenceMutation
}

// Where appends a list predicates to the ClaimEvidenceUpdate builder.
func (_u *ClaimEvidenceUpdate) Where(ps ...predicate.ClaimEvidence) *ClaimEvidenceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetClaimID sets the "claim_id" field.
func (_u *ClaimEvidenceUpdate) SetClaimID(v uuid.UUID) *ClaimEvidenceUpdate {
	_u.mutation.SetClaimID(v)
	return _u
}

// SetNillableClaimID sets the "claim_id" field if the given value is not nil.
func (_u *ClaimEvidenceUpdate) SetNillableClaimID(v *uuid.UUID) *ClaimEvidenceUpdate {
	if v != nil {
		_u.SetClaimID(*v)
	}
	return _u
}

// SetFileName sets the "file_name" field.
func (_u *ClaimEvidenceUpdate) SetFileName(v string) *ClaimEvidenceUpdate {
	_u.mutation.SetFileName(v)
	return _u
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (_u *ClaimEvidenceUpdate) SetNillableFileName(v *string) *ClaimEvidenceUpdate {
	if v != nil {
		_u.SetFileName(*v)
	}
	return _u
}

// SetFileType sets the "file_type" field.
func (_u *ClaimEvidenceUpdate) SetFileType(v string) *ClaimEvidenceUpdate {
	_u.mutation.SetFileType(v)
	return _u
}

// SetNillableFileType sets the "file_type" field if the given value is not nil.
func (_u *ClaimEvidenceUpdate) SetNillableFileType(v *string) *ClaimEvidenceUpdate {
	if v != nil {
		_u.SetFileType(*v)
	}
	return _u
}

// SetFilePath sets the "file_path" field.
func (_u *ClaimEvidenceUpdate) SetFilePath(v string) *ClaimEvidenceUpdate {
	_u.mutation.SetFilePath(v)
	return _u
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (_u *ClaimEvidenceUpdate) SetNillableFilePath(v *string) *ClaimEvidenceUpdate {
	if v != nil {
		_u.SetFilePath(*v)
	}
	return _u
}

// SetFileSize sets the "file_size" field.
func (_u *ClaimEvidenceUpdate) SetFileSize(v int) *ClaimEvidenceUpdate {
	_u.mutation.ResetFileSize()
	_u.mutation.SetFileSize(v)
	return _u
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_u *ClaimEvidenceUpdate) SetNillableFileSize(v *int) *ClaimEvidenceUpdate {
	if v != nil {
		_u.SetFileSize(*v)
	}
	return _u
}

// AddFileSize adds value to the "file_size" field.
func (_u *ClaimEvidenceUpdate) AddFileSize(v int) *ClaimEvidenceUpdate {
	_u.mutation.AddFileSize(v)
	return _u
}

// SetEvidenceType sets the "evidence_type" field.
func (_u *ClaimEvidenceUpdate) SetEvidenceType(v string) *ClaimEvidenceUpdate {
	_u.mutation.SetEvidenceType(v)
	return _u
}

// SetNillableEvidenceType sets the "evidence_type" field if the given value is not nil.
func (_u *ClaimEvidenceUpdate) SetNillableEvidenceType(v *string) *ClaimEvidenceUpdate {
	if v != nil {
		_u.SetEvidenceType(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ClaimEvidenceUpdate) SetCreatedAt(v time.Time) *ClaimEvidenceUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ClaimEvidenceUpdate) SetNillableCreatedAt(v *time.Time) *ClaimEvidenceUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetClaim sets the "claim" edge to the Claim entity.
func (_u *ClaimEvidenceUpdate) SetClaim(v *Claim) *ClaimEvidenceUpdate {
	return _u.SetClaimID(v.ID)
}

// Mutation returns the ClaimEvidenceMutation object of the builder.
func (_u *ClaimEvidenceUpdate) Mutation() *ClaimEvidenceMutation {
	return _u.mutation
}

// ClearClaim clears the "claim" edge to the Claim entity.
func (_u *ClaimEvidenceUpdate) ClearClaim() *ClaimEvidenceUpdate {
	_u.mutation.ClearClaim()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ClaimEvidenceUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ClaimEvidenceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ClaimEvidenceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ClaimEvidenceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ClaimEvidenceUpdate) check() error {
	if v, ok := _u.mutation.FileName(); ok {
		if err := claimevidence.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`ent: validator failed for field "ClaimEvidence.file_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileType(); ok {
		if err := claimevidence.FileTypeValidator(v); err != nil {
			return &ValidationError{Name: "file_type", err: fmt.Errorf(`ent: validator failed for field "ClaimEvidence.file_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FilePath(); ok {
		if err := claimevidence.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`ent: validator failed for field "ClaimEvidence.file_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileSize(); ok {
		if err := claimevidence.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "ClaimEvidence.file_size": %w`, err)}
		}
	}
	if _u.mutation.ClaimCleared() && len(_u.mutation.ClaimIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ClaimEvidence.claim"`)
	}
	return nil
}

func (_u *ClaimEvidenceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(claimevidence.Table, claimevidence.Columns, sqlgraph.NewFieldSpec(claimevidence.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FileName(); ok {
		_spec.SetField(claimevidence.FieldFileName, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileType(); ok {
		_spec.SetField(claimevidence.FieldFileType, field.TypeString, value)
	}
	if value, ok := _u.mutation.FilePath(); ok {
		_spec.SetField(claimevidence.FieldFilePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileSize(); ok {
		_spec.SetField(claimevidence.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFileSize(); ok {
		_spec.AddField(claimevidence.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EvidenceType(); ok {
		_spec.SetField(claimevidence.FieldEvidenceType, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(claimevidence.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.ClaimCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   claimevidence.ClaimTable,
			Columns: []string{claimevidence.ClaimColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(claim.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ClaimIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   claimevidence.ClaimTable,
			Columns: []string{claimevidence.ClaimColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(claim.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{claimevidence.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ClaimEvidenceUpdateOne is the builder for updating a single ClaimEvidence entity.
type ClaimEvidenceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ClaimEvidenceMutation
}

// SetClaimID sets the "claim_id" field.
func (_u *ClaimEvidenceUpdateOne) SetClaimID(v uuid.UUID) *ClaimEvidenceUpdateOne {
	_u.mutation.SetClaimID(v)
	return _u
}

// SetNillableClaimID sets the "claim_id" field if the given value is not nil.
func (_u *ClaimEvidenceUpdateOne) SetNillableClaimID(v *uuid.UUID) *ClaimEvidenceUpdateOne {
	if v != nil {
		_u.SetClaimID(*v)
	}
	return _u
}

// SetFileName sets the "file_name" field.
func (_u *ClaimEvidenceUpdateOne) SetFileName(v string) *ClaimEvidenceUpdateOne {
	_u.mutation.SetFileName(v)
	return _u
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (_u *ClaimEvidenceUpdateOne) SetNillableFileName(v *string) *ClaimEvidenceUpdateOne {
	if v != nil {
		_u.SetFileName(*v)
	}
	return _u
}

// SetFileType sets the "file_type" field.
func (_u *ClaimEvidenceUpdateOne) SetFileType(v string) *ClaimEvidenceUpdateOne {
	_u.mutation.SetFileType(v)
	return _u
}

// SetNillableFileType sets the "file_type" field if the given value is not nil.
func (_u *ClaimEvidenceUpdateOne) SetNillableFileType(v *string) *ClaimEvidenceUpdateOne {
	if v != nil {
		_u.SetFileType(*v)
	}
	return _u
}

// SetFilePath sets the "file_path" field.
func (_u *ClaimEvidenceUpdateOne) SetFilePath(v string) *ClaimEvidenceUpdateOne {
	_u.mutation.SetFilePath(v)
	return _u
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (_u *ClaimEvidenceUpdateOne) SetNillableFilePath(v *string) *ClaimEvidenceUpdateOne {
	if v != nil {
		_u.SetFilePath(*v)
	}
	return _u
}

// SetFileSize sets the "file_size" field.
func (_u *ClaimEvidenceUpdateOne) SetFileSize(v int) *ClaimEvidenceUpdateOne {
	_u.mutation.ResetFileSize()
	_u.mutation.SetFileSize(v)
	return _u
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_u *ClaimEvidenceUpdateOne) SetNillableFileSize(v *int) *ClaimEvidenceUpdateOne {
	if v != nil {
		_u.SetFileSize(*v)
	}
	return _u
}

// AddFileSize adds value to the "file_size" field.
func (_u *ClaimEvidenceUpdateOne) AddFileSize(v int) *ClaimEvidenceUpdateOne {
	_u.mutation.AddFileSize(v)
	return _u
}

// SetEvidenceType sets the "evidence_type" field.
func (_u *ClaimEvidenceUpdateOne) SetEvidenceType(v string) *ClaimEvidenceUpdateOne {
	_u.mutation.SetEvidenceType(v)
	return _u
}

// SetNillableEvidenceType sets the "evidence_type" field if the given value is not nil.
func (_u *ClaimEvidenceUpdateOne) SetNillableEvidenceType(v *string) *ClaimEvidenceUpdateOne {
	if v != nil {
		_u.SetEvidenceType(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ClaimEvidenceUpdateOne) SetCreatedAt(v time.Time) *ClaimEvidenceUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ClaimEvidenceUpdateOne) SetNillableCreatedAt(v *time.Time) *ClaimEvidenceUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetClaim sets the "claim" edge to the Claim entity.
func (_u *ClaimEvidenceUpdateOne) SetClaim(v *Claim) *ClaimEvidenceUpdateOne {
	return _u.SetClaimID(v.ID)
}

// Mutation returns the ClaimEvidenceMutation object of the builder.
func (_u *ClaimEvidenceUpdateOne) Mutation() *ClaimEvidenceMutation {
	return _u.mutation
}

// ClearClaim clears the "claim" edge to the Claim entity.
func (_u *ClaimEvidenceUpdateOne) ClearClaim() *ClaimEvidenceUpdateOne {
	_u.mutation.ClearClaim()
	return _u
}

// Where appends a list predicates to the ClaimEvidenceUpdate builder.
func (_u *ClaimEvidenceUpdateOne) Where(ps ...predicate.ClaimEvidence) *ClaimEvidenceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ClaimEvidenceUpdateOne) Select(field string, fields ...string) *ClaimEvidenceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ClaimEvidence entity.
func (_u *ClaimEvidenceUpdateOne) Save(ctx context.Context) (*ClaimEvidence, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ClaimEvidenceUpdateOne) SaveX(ctx context.Context) *ClaimEvidence {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ClaimEvidenceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ClaimEvidenceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ClaimEvidenceUpdateOne) check() error {
	if v, ok := _u.mutation.FileName(); ok {
		if err := claimevidence.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`ent: validator failed for field "ClaimEvidence.file_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileType(); ok {
		if err := claimevidence.FileTypeValidator(v); err != nil {
			return &ValidationError{Name: "file_type", err: fmt.Errorf(`ent: validator failed for field "ClaimEvidence.file_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FilePath(); ok {
		if err := claimevidence.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`ent: validator failed for field "ClaimEvidence.file_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileSize(); ok {
		if err := claimevidence.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "ClaimEvidence.file_size": %w`, err)}
		}
	}
	if _u.mutation.ClaimCleared() && len(_u.mutation.ClaimIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ClaimEvidence.claim"`)
	}
	return nil
}

func (_u *ClaimEvidenceUpdateOne) sqlSave(ctx context.Context) (_node *ClaimEvidence, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(claimevidence.Table, claimevidence.Columns, sqlgraph.NewFieldSpec(claimevidence.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ClaimEvidence.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, claimevidence.FieldID)
		for _, f := range fields {
			if !claimevidence.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != claimevidence.FieldID {
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
	if value, ok := _u.mutation.FileName(); ok {
		_spec.SetField(claimevidence.FieldFileName, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileType(); ok {
		_spec.SetField(claimevidence.FieldFileType, field.TypeString, value)
	}
	if value, ok := _u.mutation.FilePath(); ok {
		_spec.SetField(claimevidence.FieldFilePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileSize(); ok {
		_spec.SetField(claimevidence.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFileSize(); ok {
		_spec.AddField(claimevidence.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EvidenceType(); ok {
		_spec.SetField(claimevidence.FieldEvidenceType, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(claimevidence.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.ClaimCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   claimevidence.ClaimTable,
			Columns: []string{claimevidence.ClaimColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(claim.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ClaimIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   claimevidence.ClaimTable,
			Columns: []string{claimevidence.ClaimColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(claim.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ClaimEvidence{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{claimevidence.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
