package repository

import (
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/onegreenvn/campaign-generator-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestHasTable(t *testing.T) {
	for _, table := range []string{"organizations", "products", "services", "campaigns"} {
		assert.True(t, HasTable(table), table)
	}
	assert.False(t, HasTable("generation_logs"))
	assert.False(t, HasTable("pg_user"))
}

func TestTableRepositoryRejectsUnknownIdentifiers(t *testing.T) {
	repo := NewTableRepository(nil)

	tests := []struct {
		name  string
		table string
		query TableQuery
		want  error
	}{
		{"unknown table", "users", TableQuery{}, ErrUnknownTable},
		{"unknown select column", "products", TableQuery{Select: []string{"name", "password"}}, ErrUnknownColumn},
		{"unknown filter column", "services", TableQuery{Filters: map[string]string{"1=1; --": "x"}}, ErrUnknownColumn},
		{"unknown order column", "campaigns", TableQuery{Order: "random()"}, ErrUnknownColumn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := repo.Select(tt.table, tt.query)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), err.Error())
		})
	}
}

func TestTableRepositoryInsertRejectsUnknownColumn(t *testing.T) {
	repo := NewTableRepository(nil)

	_, err := repo.Insert("organizations", map[string]interface{}{"name": "X", "owner": "me"})
	assert.ErrorIs(t, err, ErrUnknownColumn)

	_, err = repo.Insert("accounts", map[string]interface{}{"name": "X"})
	assert.ErrorIs(t, err, ErrUnknownTable)

	assert.ErrorIs(t, repo.Delete("accounts", "1"), ErrUnknownTable)
}

func TestToMapsKeepsSelectedColumns(t *testing.T) {
	rows := &[]models.Product{
		{ID: "prod1", OrganizationID: "org1", Name: "Dashboard", Price: 15000, Features: pq.StringArray{"a", "b"}},
	}

	all, err := toMaps(rows, nil)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Dashboard", all[0]["name"])
	assert.Equal(t, []interface{}{"a", "b"}, all[0]["features"])

	picked, err := toMaps(rows, []string{"id", "price"})
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"id": "prod1", "price": float64(15000)}, picked[0])
}

func TestColumnValue(t *testing.T) {
	arr, err := columnValue([]interface{}{"x", "y"})
	require.NoError(t, err)
	assert.Equal(t, pq.StringArray{"x", "y"}, arr)

	_, err = columnValue([]interface{}{"x", 1.0})
	assert.Error(t, err)

	obj, err := columnValue(map[string]interface{}{"k": "v"})
	require.NoError(t, err)
	assert.Equal(t, datatypes.JSON(`{"k":"v"}`), obj)

	plain, err := columnValue("draft")
	require.NoError(t, err)
	assert.Equal(t, "draft", plain)
}
