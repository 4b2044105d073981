package models

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// JSONList marshals a string slice into a JSON column value. A nil slice
// marshals to [] so the column round-trips as an empty list, never null.
func JSONList(items []string) datatypes.JSON {
	if items == nil {
		items = []string{}
	}
	b, _ := json.Marshal(items)
	return datatypes.JSON(b)
}
