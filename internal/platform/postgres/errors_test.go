package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/notequiz-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeResult struct {
	rows int64
	err  error
}

func (r fakeResult) LastInsertId() (int64, error) { return 0, nil }
func (r fakeResult) RowsAffected() (int64, error) { return r.rows, r.err }

func TestMapError(t *testing.T) {
	other := errors.New("connection refused")

	tests := []struct {
		name    string
		err     error
		want    error
		wantNil bool
	}{
		{name: "nil", err: nil, wantNil: true},
		{name: "no rows", err: sql.ErrNoRows, want: store.ErrNotFound},
		{name: "wrapped no rows", err: fmt.Errorf("scan: %w", sql.ErrNoRows), want: store.ErrNotFound},
		{
			name: "unique violation",
			err:  &pgconn.PgError{Code: uniqueViolationCode, ConstraintName: "users_username_key"},
			want: store.ErrDuplicate,
		},
		{
			name: "foreign key violation",
			err:  &pgconn.PgError{Code: foreignKeyViolationCode, ConstraintName: "notes_user_id_fkey"},
			want: store.ErrInvalidEntity,
		},
		{
			name: "check violation",
			err:  &pgconn.PgError{Code: checkViolationCode, ConstraintName: "notes_title_not_blank"},
			want: store.ErrInvalidEntity,
		},
		{
			name: "not null violation",
			err:  &pgconn.PgError{Code: notNullViolationCode, ColumnName: "title"},
			want: store.ErrInvalidEntity,
		},
		{name: "unmapped pg error", err: &pgconn.PgError{Code: "40001"}, want: nil},
		{name: "unrelated", err: other, want: other},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := MapError(tc.err)
			if tc.wantNil {
				assert.NoError(t, got)
				return
			}
			require.Error(t, got)
			if tc.want != nil {
				assert.ErrorIs(t, got, tc.want)
			}
			assert.ErrorIs(t, got, tc.err, "original error must stay in the chain")
		})
	}
}

func TestViolationPredicates(t *testing.T) {
	unique := fmt.Errorf("insert: %w", &pgconn.PgError{Code: uniqueViolationCode})
	fk := &pgconn.PgError{Code: foreignKeyViolationCode}

	assert.True(t, IsUniqueViolation(unique))
	assert.False(t, IsUniqueViolation(fk))
	assert.True(t, IsForeignKeyViolation(fk))
	assert.False(t, IsForeignKeyViolation(errors.New("plain")))
}

func TestCheckRowsAffected(t *testing.T) {
	assert.NoError(t, checkRowsAffected(fakeResult{rows: 1}, store.ErrNoteNotFound))
	assert.ErrorIs(t, checkRowsAffected(fakeResult{rows: 0}, store.ErrNoteNotFound), store.ErrNoteNotFound)

	err := checkRowsAffected(fakeResult{err: errors.New("driver")}, store.ErrNoteNotFound)
	require.Error(t, err)
	assert.NotErrorIs(t, err, store.ErrNoteNotFound)
}
