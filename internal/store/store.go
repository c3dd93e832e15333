package store

import (
	"context"
	"errors"
	"time"

	"attendance-tracker/internal/models"
)

var (
	// ErrNotFound is returned when a lookup matches no document.
	ErrNotFound = errors.New("store: not found")
	// ErrDuplicate is returned when a write violates a unique index.
	ErrDuplicate = errors.New("store: duplicate document")
)

// EmployeeStore persists employee records.
type EmployeeStore interface {
	FindByID(ctx context.Context, id string) (*models.Employee, error)
	FindByName(ctx context.Context, firstName, lastName string) (*models.Employee, error)
	Insert(ctx context.Context, e *models.Employee) error
	// List returns all employees, or only those whose dateCreated falls in
	// [from, to) when both bounds are given.
	List(ctx context.Context, from, to *time.Time) ([]models.Employee, error)
}

// WorkSlotStore persists attendance slots.
type WorkSlotStore interface {
	// FindOpen returns the employee's open slot, or ErrNotFound if the
	// employee is currently checked out.
	FindOpen(ctx context.Context, employeeID string) (*models.WorkSlot, error)
	Insert(ctx context.Context, s *models.WorkSlot) error
	Update(ctx context.Context, s *models.WorkSlot) error
}
