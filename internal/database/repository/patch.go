package repository

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// columns the client may send back but never writes
var readOnlyColumns = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
}

// patchRow applies a partial update restricted to the allowed columns and bumps updated_at
func patchRow(db *gorm.DB, model interface{}, id string, updates map[string]interface{}, allowed map[string]bool) error {
	clean := make(map[string]interface{}, len(updates)+1)
	for col, v := range updates {
		if readOnlyColumns[col] {
			continue
		}
		if !allowed[col] {
			return fmt.Errorf("%w: %s", ErrUnknownColumn, col)
		}
		value, err := columnValue(v)
		if err != nil {
			return fmt.Errorf("invalid value for %s: %w", col, err)
		}
		clean[col] = value
	}
	clean["updated_at"] = time.Now()

	result := db.Model(model).Where("id = ?", id).Updates(clean)
	if result.Error != nil {
		return mapError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// columnValue converts decoded JSON into values the Postgres driver can bind
func columnValue(v interface{}) (interface{}, error) {
	switch t := v.(type) {
	case []interface{}:
		arr := make(pq.StringArray, 0, len(t))
		for _, el := range t {
			s, ok := el.(string)
			if !ok {
				return nil, fmt.Errorf("array values must be strings")
			}
			arr = append(arr, s)
		}
		return arr, nil
	case []string:
		return pq.StringArray(t), nil
	case map[string]interface{}:
		b, err := json.Marshal(t)
		if err != nil {
			return nil, err
		}
		return datatypes.JSON(b), nil
	default:
		return v, nil
	}
}
