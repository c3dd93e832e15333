package handlers

import (
	"errors"
	"math"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"attendance-tracker/internal/models"
	"attendance-tracker/internal/store"
)

type AttendanceHandler struct {
	Employees store.EmployeeStore
	Slots     store.WorkSlotStore

	// Now is swappable for tests.
	Now func() time.Time
}

func NewAttendanceHandler(employees store.EmployeeStore, slots store.WorkSlotStore) *AttendanceHandler {
	return &AttendanceHandler{Employees: employees, Slots: slots, Now: time.Now}
}

type attendanceDTO struct {
	EmployeeID string `json:"employeeId"`
	Comment    string `json:"comment"`
}

// requireEmployee runs before any slot read or write so an unknown id is
// reported as such instead of as a misleading state conflict.
func (h *AttendanceHandler) requireEmployee(c *gin.Context, employeeID string) bool {
	_, err := h.Employees.FindByID(c.Request.Context(), employeeID)
	if errors.Is(err, store.ErrNotFound) {
		c.String(http.StatusNotFound, "Employee ID invalid.")
		return false
	}
	if err != nil {
		c.String(http.StatusInternalServerError, "Error when reading database. REASON: %v", err)
		return false
	}
	return true
}

// CheckIn godoc
// @Summary     Check-in an employee
// @Description Open a work slot for the employee, with an optional comment.
// @Accept      json
// @Produce     plain
// @Param       checkIn body handlers.attendanceDTO true "Employee id and optional comment"
// @Success     200 {string} string "Successfully checked in"
// @Failure     400 {string} string "Comment length shouldn't exceed 150 characters"
// @Failure     404 {string} string "Employee ID invalid."
// @Failure     409 {string} string "This employee is already checked-in. Please check him out."
// @Failure     500 {string} string "Internal server error"
// @Router      /employees/check-in [post]
func (h *AttendanceHandler) CheckIn(c *gin.Context) {
	var in attendanceDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.String(http.StatusBadRequest, "invalid request body")
		return
	}

	if !h.requireEmployee(c, in.EmployeeID) {
		return
	}

	ctx := c.Request.Context()

	_, err := h.Slots.FindOpen(ctx, in.EmployeeID)
	if err == nil {
		c.String(http.StatusConflict, "This employee is already checked-in. Please check him out.")
		return
	}
	if !errors.Is(err, store.ErrNotFound) {
		c.String(http.StatusInternalServerError, "Error when reading database. REASON: %v", err)
		return
	}

	if utf8.RuneCountInString(in.Comment) > models.MaxCommentLength {
		c.String(http.StatusBadRequest, "Comment length shouldn't exceed 150 characters")
		return
	}

	newSlot := &models.WorkSlot{
		EmployeeID: in.EmployeeID,
		CheckIn:    h.Now(),
		Comment:    in.Comment,
	}

	if err := h.Slots.Insert(ctx, newSlot); err != nil {
		// Two concurrent check-ins both pass the open-slot read; the
		// partial unique index rejects the second write.
		if errors.Is(err, store.ErrDuplicate) {
			c.String(http.StatusConflict, "This employee is already checked-in. Please check him out.")
			return
		}
		c.String(http.StatusInternalServerError, "Error when writing to database. REASON: %v", err)
		return
	}

	c.String(http.StatusOK, "Successfully checked in employee %s", in.EmployeeID)
}

// CheckOut godoc
// @Summary     Check-out an employee
// @Description Close the employee's open work slot, with an optional comment.
// @Accept      json
// @Produce     plain
// @Param       checkOut body handlers.attendanceDTO true "Employee id and optional comment"
// @Success     200 {string} string "Successfully checked out"
// @Failure     400 {string} string "Comment length shouldn't exceed 150 characters"
// @Failure     404 {string} string "Employee ID invalid."
// @Failure     409 {string} string "This employee is not checked-in. Please check him in."
// @Failure     500 {string} string "Internal server error"
// @Router      /employees/check-out [post]
func (h *AttendanceHandler) CheckOut(c *gin.Context) {
	var in attendanceDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.String(http.StatusBadRequest, "invalid request body")
		return
	}

	if !h.requireEmployee(c, in.EmployeeID) {
		return
	}

	ctx := c.Request.Context()

	slot, err := h.Slots.FindOpen(ctx, in.EmployeeID)
	if errors.Is(err, store.ErrNotFound) {
		c.String(http.StatusConflict, "This employee is not checked-in. Please check him in.")
		return
	}
	if err != nil {
		c.String(http.StatusInternalServerError, "Error when reading database. REASON: %v", err)
		return
	}

	if utf8.RuneCountInString(in.Comment) > models.MaxCommentLength {
		c.String(http.StatusBadRequest, "Comment length shouldn't exceed 150 characters")
		return
	}

	now := h.Now()
	slot.CheckOut = &now

	switch {
	case slot.Comment == "":
		slot.Comment = in.Comment
	case in.Comment != "":
		slot.Comment = slot.Comment + ". " + in.Comment
	}

	// Minutes worked, to 2 decimal places.
	worked := math.Round(float64(now.Sub(slot.CheckIn).Milliseconds())/60000*100) / 100
	slot.TimeWorked = &worked

	if err := h.Slots.Update(ctx, slot); err != nil {
		c.String(http.StatusInternalServerError, "Error when writing to database. REASON: %v", err)
		return
	}

	c.String(http.StatusOK, "Successfully checked out employee %s", in.EmployeeID)
}
