package repository

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/onegreenvn/campaign-generator-backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// tableSpec describes one table exposed through the generic REST endpoint.
// Identifiers used in SQL only ever come from these specs.
type tableSpec struct {
	columns map[string]bool
	model   func() interface{}
	list    func() interface{}
}

var exposedTables = map[string]tableSpec{
	"organizations": {
		columns: withCommon(organizationColumns),
		model:   func() interface{} { return &models.Organization{} },
		list:    func() interface{} { return &[]models.Organization{} },
	},
	"products": {
		columns: withCommon(productColumns),
		model:   func() interface{} { return &models.Product{} },
		list:    func() interface{} { return &[]models.Product{} },
	},
	"services": {
		columns: withCommon(serviceColumns),
		model:   func() interface{} { return &models.Service{} },
		list:    func() interface{} { return &[]models.Service{} },
	},
	"campaigns": {
		columns: withCommon(campaignColumns),
		model:   func() interface{} { return &models.Campaign{} },
		list:    func() interface{} { return &[]models.Campaign{} },
	},
}

func withCommon(cols map[string]bool) map[string]bool {
	out := map[string]bool{"id": true, "created_at": true, "updated_at": true}
	for c := range cols {
		out[c] = true
	}
	return out
}

// TableQuery is a parsed Supabase-style read
type TableQuery struct {
	Select  []string
	Order   string
	Desc    bool
	Limit   int
	Offset  int
	Filters map[string]string // column = value
}

// TableRepository serves whitelisted tables through generic reads and writes
type TableRepository struct {
	db *gorm.DB
}

func NewTableRepository(db *gorm.DB) *TableRepository {
	return &TableRepository{db: db}
}

// HasTable reports whether a table is exposed
func HasTable(table string) bool {
	_, ok := exposedTables[table]
	return ok
}

func lookup(table string) (tableSpec, error) {
	spec, ok := exposedTables[table]
	if !ok {
		return tableSpec{}, fmt.Errorf("%w: %s", ErrUnknownTable, table)
	}
	return spec, nil
}

func (s tableSpec) check(cols ...string) error {
	for _, c := range cols {
		if !s.columns[c] {
			return fmt.Errorf("%w: %s", ErrUnknownColumn, c)
		}
	}
	return nil
}

// Select reads rows of a table
func (r *TableRepository) Select(table string, q TableQuery) ([]map[string]interface{}, error) {
	spec, err := lookup(table)
	if err != nil {
		return nil, err
	}
	if err := spec.check(q.Select...); err != nil {
		return nil, err
	}
	for col := range q.Filters {
		if err := spec.check(col); err != nil {
			return nil, err
		}
	}
	if q.Order != "" {
		if err := spec.check(q.Order); err != nil {
			return nil, err
		}
	}

	query := r.db.Model(spec.model())
	for col, value := range q.Filters {
		query = query.Where(clause.Eq{Column: clause.Column{Name: col}, Value: value})
	}
	if q.Order != "" {
		query = query.Order(clause.OrderByColumn{Column: clause.Column{Name: q.Order}, Desc: q.Desc})
	}
	if q.Limit > 0 {
		query = query.Limit(q.Limit)
	}
	if q.Offset > 0 {
		query = query.Offset(q.Offset)
	}

	rows := spec.list()
	if err := query.Find(rows).Error; err != nil {
		return nil, err
	}
	return toMaps(rows, q.Select)
}

// Insert creates one row from a decoded JSON object and returns it
func (r *TableRepository) Insert(table string, values map[string]interface{}) (map[string]interface{}, error) {
	spec, err := lookup(table)
	if err != nil {
		return nil, err
	}

	row := make(map[string]interface{}, len(values)+3)
	for col, v := range values {
		if col == "created_at" || col == "updated_at" {
			continue
		}
		if err := spec.check(col); err != nil {
			return nil, err
		}
		value, err := columnValue(v)
		if err != nil {
			return nil, fmt.Errorf("invalid value for %s: %w", col, err)
		}
		row[col] = value
	}
	id, _ := row["id"].(string)
	if id == "" {
		id = uuid.New().String()
		row["id"] = id
	}
	now := time.Now()
	row["created_at"] = now
	row["updated_at"] = now

	if err := r.db.Model(spec.model()).Create(row).Error; err != nil {
		return nil, mapError(err)
	}

	created := spec.model()
	if err := r.db.First(created, "id = ?", id).Error; err != nil {
		return nil, mapError(err)
	}
	return toMap(created)
}

// Update patches the row with the given id
func (r *TableRepository) Update(table, id string, values map[string]interface{}) (map[string]interface{}, error) {
	spec, err := lookup(table)
	if err != nil {
		return nil, err
	}
	if err := patchRow(r.db, spec.model(), id, values, spec.columns); err != nil {
		return nil, err
	}
	updated := spec.model()
	if err := r.db.First(updated, "id = ?", id).Error; err != nil {
		return nil, mapError(err)
	}
	return toMap(updated)
}

// Delete removes the row with the given id
func (r *TableRepository) Delete(table, id string) error {
	spec, err := lookup(table)
	if err != nil {
		return err
	}
	result := r.db.Delete(spec.model(), "id = ?", id)
	if result.Error != nil {
		return mapError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func toMap(v interface{}) (map[string]interface{}, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out map[string]interface{}
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// toMaps converts typed rows to JSON objects, keeping only the selected columns when given
func toMaps(rows interface{}, selected []string) ([]map[string]interface{}, error) {
	b, err := json.Marshal(rows)
	if err != nil {
		return nil, err
	}
	out := []map[string]interface{}{}
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	if len(selected) == 0 {
		return out, nil
	}
	for i, row := range out {
		picked := make(map[string]interface{}, len(selected))
		for _, col := range selected {
			picked[col] = row[col]
		}
		out[i] = picked
	}
	return out, nil
}
