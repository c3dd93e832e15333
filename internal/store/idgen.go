package store

import (
	"context"
	"errors"
	"math/rand/v2"
	"strconv"
)

const (
	idMin         = 1000
	idSpan        = 9000
	maxIDAttempts = 10000
)

// ErrIDSpaceExhausted is returned when no free 4-digit id could be drawn
// within the attempt cap.
var ErrIDSpaceExhausted = errors.New("store: employee id space exhausted")

// GenerateEmployeeID draws random 4-digit ids until one is free. The id
// space holds 9000 values, so collisions are rare at realistic employee
// counts; the attempt cap keeps a near-full space from looping forever.
func GenerateEmployeeID(ctx context.Context, employees EmployeeStore) (string, error) {
	for i := 0; i < maxIDAttempts; i++ {
		id := strconv.Itoa(idMin + rand.IntN(idSpan))

		_, err := employees.FindByID(ctx, id)
		if errors.Is(err, ErrNotFound) {
			return id, nil
		}
		if err != nil {
			return "", err
		}
	}
	return "", ErrIDSpaceExhausted
}
