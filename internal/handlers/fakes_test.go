package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"attendance-tracker/internal/handlers"
	"attendance-tracker/internal/models"
	"attendance-tracker/internal/store"
)

// fakeEmployeeStore is an in-memory EmployeeStore mirroring the mongo
// implementation's semantics, including unique-index duplicate errors.
type fakeEmployeeStore struct {
	employees []models.Employee

	findErr   error
	insertErr error
	listErr   error
}

func (f *fakeEmployeeStore) FindByID(_ context.Context, id string) (*models.Employee, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for i := range f.employees {
		if f.employees[i].ID == id {
			e := f.employees[i]
			return &e, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeEmployeeStore) FindByName(_ context.Context, firstName, lastName string) (*models.Employee, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for i := range f.employees {
		if f.employees[i].FirstName == firstName && f.employees[i].LastName == lastName {
			e := f.employees[i]
			return &e, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeEmployeeStore) Insert(_ context.Context, e *models.Employee) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	for i := range f.employees {
		if f.employees[i].ID == e.ID ||
			(f.employees[i].FirstName == e.FirstName && f.employees[i].LastName == e.LastName) {
			return store.ErrDuplicate
		}
	}
	f.employees = append(f.employees, *e)
	return nil
}

func (f *fakeEmployeeStore) List(_ context.Context, from, to *time.Time) ([]models.Employee, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]models.Employee, 0)
	for _, e := range f.employees {
		if from != nil && to != nil {
			if e.DateCreated.Before(*from) || !e.DateCreated.Before(*to) {
				continue
			}
		}
		out = append(out, e)
	}
	return out, nil
}

// fakeWorkSlotStore mirrors the mongo slot store, including the partial
// unique index that rejects a second open slot per employee.
type fakeWorkSlotStore struct {
	slots []models.WorkSlot

	insertErr error
	updateErr error
}

func (f *fakeWorkSlotStore) FindOpen(_ context.Context, employeeID string) (*models.WorkSlot, error) {
	for i := range f.slots {
		if f.slots[i].EmployeeID == employeeID && f.slots[i].Open() {
			s := f.slots[i]
			return &s, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeWorkSlotStore) Insert(_ context.Context, slot *models.WorkSlot) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	for i := range f.slots {
		if f.slots[i].EmployeeID == slot.EmployeeID && f.slots[i].Open() {
			return store.ErrDuplicate
		}
	}
	slot.OID = primitive.NewObjectID()
	f.slots = append(f.slots, *slot)
	return nil
}

func (f *fakeWorkSlotStore) Update(_ context.Context, slot *models.WorkSlot) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	for i := range f.slots {
		if f.slots[i].OID == slot.OID {
			f.slots[i] = *slot
			return nil
		}
	}
	return store.ErrNotFound
}

// newTestRouter wires the handlers onto a bare engine the same way the
// router package does, with an injectable clock.
func newTestRouter(employees *fakeEmployeeStore, slots *fakeWorkSlotStore, now func() time.Time) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	eh := handlers.NewEmployeeHandler(employees)
	ah := handlers.NewAttendanceHandler(employees, slots)
	if now != nil {
		eh.Now = now
		ah.Now = now
	}

	r.POST("/employees", eh.CreateEmployee)
	r.GET("/employees", eh.ListEmployees)
	r.GET("/employees/:date", eh.ListEmployees)
	r.POST("/employees/check-in", ah.CheckIn)
	r.POST("/employees/check-out", ah.CheckOut)
	return r
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
