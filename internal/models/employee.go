package models

import (
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NamePattern is enforced for both first and last names at the request
// boundary: uppercase first letter, then 1-19 letters.
var NamePattern = regexp.MustCompile(`^[A-Z][a-zA-Z]{1,19}$`)

// DatePattern is a syntactic YYYY-MM-DD check only; calendar validity is
// verified separately when the date is parsed.
var DatePattern = regexp.MustCompile(`^\d{4}-[0-1][0-9]-[0-3][0-9]$`)

type Employee struct {
	OID         primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	ID          string             `json:"id" bson:"id"`
	FirstName   string             `json:"firstName" bson:"first_name"`
	LastName    string             `json:"lastName" bson:"last_name"`
	Department  string             `json:"department" bson:"department"`
	DateCreated time.Time          `json:"dateCreated" bson:"date_created"`
}
