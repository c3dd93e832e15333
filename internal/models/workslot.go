package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MaxCommentLength applies per submission, at check-in and again at
// check-out before the comments are merged.
const MaxCommentLength = 150

// WorkSlot is one continuous presence interval for an employee. An open
// slot has no check-out time; closing it sets CheckOut and TimeWorked.
type WorkSlot struct {
	OID        primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	EmployeeID string             `json:"employeeId" bson:"employee_id"`
	CheckIn    time.Time          `json:"checkIn" bson:"check_in"`
	CheckOut   *time.Time         `json:"checkOut,omitempty" bson:"check_out"`
	Comment    string             `json:"comment" bson:"comment"`
	TimeWorked *float64           `json:"timeWorked,omitempty" bson:"time_worked,omitempty"`
}

// Open reports whether the slot has not been checked out yet.
func (s *WorkSlot) Open() bool {
	return s.CheckOut == nil
}
