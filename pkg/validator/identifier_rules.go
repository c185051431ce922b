package validator

import (
	"strings"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// IsObjectID reports whether the value is shaped like a database object
// identifier: a bson.ObjectID or its 24 character hexadecimal form.
func IsObjectID(value any) bool {
	switch v := value.(type) {
	case bson.ObjectID:
		return !v.IsZero()
	case *bson.ObjectID:
		return v != nil && !v.IsZero()
	case string:
		_, err := bson.ObjectIDFromHex(v)
		return err == nil
	default:
		return false
	}
}

// ValidObjectID validates the object identifier shape, see IsObjectID.
func ValidObjectID(field string, value any) Rule {
	return Rule{
		Check: func() bool {
			return IsObjectID(value)
		},
		Error: newError(field, "isObjectId", "validation.object_id", "must be a valid object identifier", nil),
	}
}

// ValidUUID validates standard UUID format with pre-validation to avoid expensive parsing.
func ValidUUID(field string, value any) Rule {
	return Rule{
		Check: func() bool {
			if id, ok := value.(uuid.UUID); ok {
				return id != uuid.Nil
			}
			s, ok := AsString(value)
			if !ok || strings.TrimSpace(s) == "" {
				return false
			}

			// Fast rejection: check length and hyphen positions before parsing
			if len(s) != 36 {
				return false
			}
			if s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
				return false
			}

			_, err := uuid.Parse(s)
			return err == nil
		},
		Error: newError(field, "isUUID", "validation.uuid", "must be a valid UUID", nil),
	}
}
