package database

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// JSONStrings is a []string stored as a JSON array in a MariaDB column.
// Recipe ingredients and steps use this. It scans NULL as nil and
// marshals to a plain JSON array in API responses.
type JSONStrings []string

// Scan implements sql.Scanner.
func (j *JSONStrings) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*j = nil
		return nil
	case []byte:
		return json.Unmarshal(v, j)
	case string:
		return json.Unmarshal([]byte(v), j)
	default:
		return fmt.Errorf("cannot scan %T into JSONStrings", src)
	}
}

// Value implements driver.Valuer.
func (j JSONStrings) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}
