package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"record not found", gorm.ErrRecordNotFound, ErrNotFound},
		{"foreign key", &pgconn.PgError{Code: "23503"}, ErrForeignKey},
		{"unique", fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"}), ErrDuplicate},
		{"invalid text representation", &pgconn.PgError{Code: "22P02"}, ErrInvalidValue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, mapError(tt.err), tt.want)
		})
	}

	other := errors.New("connection reset")
	assert.Equal(t, other, mapError(other))
	assert.NoError(t, mapError(nil))
}

func TestCampaignRepositoryRejectsNonUUIDIDs(t *testing.T) {
	repo := NewCampaignRepository(nil)

	_, err := repo.GetByID("not-a-uuid")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repo.Update("c1", map[string]interface{}{"name": "x"}), ErrNotFound)
	assert.ErrorIs(t, repo.Delete("1 OR 1=1"), ErrNotFound)
}
