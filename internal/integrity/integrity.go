// Package integrity evaluates the read-only predicates that must hold
// before a mutation runs: existence of referenced rows, email
// uniqueness, and absence of dependent rows on delete. The checks are
// pure logic over a Probe so they unit-test without a database; they are
// a fast-path check, not an atomicity guarantee — unique indexes at the
// storage layer remain the backstop for concurrent writers.
package integrity

import (
	"context"

	"legalapi/internal/apperr"
)

// Probe is the minimal read surface the checker needs from storage.
type Probe interface {
	// IDExists reports whether a row of the given kind has this id.
	IDExists(ctx context.Context, kind apperr.Kind, id string) (bool, error)
	// EmailOwner returns the id of the row of the given kind holding
	// this email, if any.
	EmailOwner(ctx context.Context, kind apperr.Kind, email string) (string, bool, error)
	// ReferencingIDs lists ids of dependent-kind rows whose fkColumn
	// references the given id.
	ReferencingIDs(ctx context.Context, dependent apperr.Kind, fkColumn, id string) ([]string, error)
}

// Dependency names a dependent kind and the column referencing the parent.
type Dependency struct {
	Kind     apperr.Kind
	FKColumn string
}

// Checker runs pre-mutation predicates, short-circuiting on the first
// failure. It never mutates state.
type Checker interface {
	Exists(ctx context.Context, kind apperr.Kind, id string) error
	UniqueEmail(ctx context.Context, kind apperr.Kind, email, excludeID string) error
	NoDependents(ctx context.Context, parent apperr.Kind, id string, deps ...Dependency) error
}

type checker struct {
	probe Probe
}

// NewChecker builds a Checker over the given probe.
func NewChecker(p Probe) Checker {
	return &checker{probe: p}
}

func (c *checker) Exists(ctx context.Context, kind apperr.Kind, id string) error {
	ok, err := c.probe.IDExists(ctx, kind, id)
	if err != nil {
		return err
	}
	if !ok {
		return &apperr.NotFoundError{Kind: kind, ID: id}
	}
	return nil
}

// UniqueEmail fails when another row of the kind already holds the email.
// excludeID allows an entity to keep its own email on update.
func (c *checker) UniqueEmail(ctx context.Context, kind apperr.Kind, email, excludeID string) error {
	ownerID, found, err := c.probe.EmailOwner(ctx, kind, email)
	if err != nil {
		return err
	}
	if found && ownerID != excludeID {
		return &apperr.ConflictError{Kind: kind, Field: "email", Excluding: excludeID != ""}
	}
	return nil
}

// NoDependents checks the dependent kinds in order and fails on the
// first one with referencing rows, reporting their ids.
func (c *checker) NoDependents(ctx context.Context, parent apperr.Kind, id string, deps ...Dependency) error {
	for _, dep := range deps {
		ids, err := c.probe.ReferencingIDs(ctx, dep.Kind, dep.FKColumn, id)
		if err != nil {
			return err
		}
		if len(ids) > 0 {
			return &apperr.DependencyError{Kind: parent, ID: id, Dependent: dep.Kind, IDs: ids}
		}
	}
	return nil
}
