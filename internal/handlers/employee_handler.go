package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"attendance-tracker/internal/models"
	"attendance-tracker/internal/store"
)

type EmployeeHandler struct {
	Employees store.EmployeeStore

	// Now is swappable for tests.
	Now func() time.Time
}

func NewEmployeeHandler(employees store.EmployeeStore) *EmployeeHandler {
	return &EmployeeHandler{Employees: employees, Now: time.Now}
}

type createEmployeeDTO struct {
	FirstName  string `json:"firstName" binding:"required"`
	LastName   string `json:"lastName" binding:"required"`
	Department string `json:"department" binding:"required"`
}

// CreateEmployee godoc
// @Summary     Create a new employee
// @Description Create a new employee with a generated 4-digit id.
// @Accept      json
// @Produce     plain
// @Param       employee body handlers.createEmployeeDTO true "Employee to create"
// @Success     200 {string} string "Employee successfully created."
// @Failure     400 {string} string "Invalid name format"
// @Failure     409 {string} string "First name and last name already in use."
// @Failure     500 {string} string "Internal server error"
// @Router      /employees [post]
func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	var in createEmployeeDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.String(http.StatusBadRequest, "firstName, lastName and department are required")
		return
	}

	// Name format is checked here at the boundary so a caller mistake is a
	// 400, not a storage-layer failure.
	if !models.NamePattern.MatchString(in.FirstName) {
		c.String(http.StatusBadRequest, "First name should start with an uppercase letter and contain only characters. Length should be between 2 and 20 characters.")
		return
	}
	if !models.NamePattern.MatchString(in.LastName) {
		c.String(http.StatusBadRequest, "Last name should start with an uppercase letter and contain only characters. Length should be between 2 and 20 characters.")
		return
	}

	ctx := c.Request.Context()

	_, err := h.Employees.FindByName(ctx, in.FirstName, in.LastName)
	if err == nil {
		c.String(http.StatusConflict, "First name and last name already in use.")
		return
	}
	if !errors.Is(err, store.ErrNotFound) {
		c.String(http.StatusInternalServerError, "Internal server error while accessing Database. REASON: %v", err)
		return
	}

	id, err := store.GenerateEmployeeID(ctx, h.Employees)
	if err != nil {
		c.String(http.StatusInternalServerError, "Couldn't generate a new employee ID. REASON: %v", err)
		return
	}

	newEmployee := &models.Employee{
		ID:          id,
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		Department:  in.Department,
		DateCreated: h.Now(),
	}

	if err := h.Employees.Insert(ctx, newEmployee); err != nil {
		// A racing create with the same name lands here via the unique index.
		if errors.Is(err, store.ErrDuplicate) {
			c.String(http.StatusConflict, "First name and last name already in use.")
			return
		}
		c.String(http.StatusInternalServerError, "Couldn't save employee info to database. REASON: %v", err)
		return
	}

	c.String(http.StatusOK, "Employee successfully created.")
}

// ListEmployees godoc
// @Summary     Get a list of employees
// @Description Retrieve all employees, optionally filtered by creation date.
// @Produce     json
// @Param       date path string false "Filter by creation date (YYYY-MM-DD)"
// @Success     200 {array} models.Employee
// @Failure     400 {string} string "Invalid date format"
// @Failure     500 {string} string "Internal server error"
// @Router      /employees/{date} [get]
func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	var from, to *time.Time

	if date := c.Param("date"); date != "" {
		if !models.DatePattern.MatchString(date) {
			c.String(http.StatusBadRequest, "The parameters isn't in the correct date format: YYYY-MM-DD")
			return
		}

		// The pattern is syntactic only, so e.g. 2023-13-05 still reaches
		// the parser and is rejected here.
		day, err := time.ParseInLocation("2006-01-02", date, time.Local)
		if err != nil {
			c.String(http.StatusBadRequest, "The parameter isn't a valid calendar date: %s", date)
			return
		}

		// Half-open interval covering the whole local day.
		start := day
		end := day.AddDate(0, 0, 1)
		from, to = &start, &end
	}

	employees, err := h.Employees.List(c.Request.Context(), from, to)
	if err != nil {
		c.String(http.StatusInternalServerError, "Error when reading database. REASON: %v", err)
		return
	}

	c.JSON(http.StatusOK, employees)
}
