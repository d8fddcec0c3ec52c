package submission

import (
	"context"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dematkyc/internal/nomination/models"
)

var createdAt = time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)

func partialRecord() models.SubmissionRecord {
	return models.SubmissionRecord{
		ID:         "3f1c9a8e-7d2b-4c1e-9a55-0c6d7b1e2f30",
		AccountID:  "ACC1",
		OperatorID: "op-1",
		RequestID:  "req-1",
		Status:     models.StatusPartial,
		Sections: map[models.Section]string{
			models.SectionNominees: "ok",
			models.SectionPOAs:     "rejected",
			models.SectionHolders:  "ok",
		},
		Failures:  []string{"poas.1: duplicate poa"},
		CreatedAt: createdAt,
	}
}

type arrayArg struct{ want []string }

func (a arrayArg) Match(v driver.Value) bool {
	var got []string
	if err := pq.Array(&got).Scan(v); err != nil {
		return false
	}
	return assert.ObjectsAreEqual(a.want, got)
}

func TestPostgresAppend(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rec := partialRecord()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO nomination_submissions")).
		WithArgs(
			rec.ID, "ACC1", "op-1", "req-1", "partial",
			sqlmock.AnyArg(),
			arrayArg{want: rec.Failures},
			createdAt,
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, NewPostgres(db).Append(context.Background(), rec))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresAppendError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("INSERT INTO nomination_submissions").WillReturnError(errors.New("connection reset"))

	err = NewPostgres(db).Append(context.Background(), partialRecord())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insert submission record")
}

func TestPostgresListByAccount(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "account_id", "operator_id", "request_id", "status", "sections", "failures", "created_at"}).
		AddRow("s2", "ACC1", "op-1", "req-2", "succeeded", []byte(`{"nominees":"ok","poas":"ok","holders":"ok"}`), []byte(`{}`), createdAt.Add(time.Hour)).
		AddRow("s1", "ACC1", "op-1", "req-1", "partial", []byte(`{"nominees":"ok","poas":"rejected","holders":"ok"}`), []byte(`{"poas.1: duplicate poa"}`), createdAt)
	mock.ExpectQuery(regexp.QuoteMeta("FROM nomination_submissions")).
		WithArgs("ACC1", 20).
		WillReturnRows(rows)

	recs, err := NewPostgres(db).ListByAccount(context.Background(), "ACC1", 20)

	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, models.StatusSucceeded, recs[0].Status)
	assert.Equal(t, "rejected", recs[1].Sections[models.SectionPOAs])
	assert.Equal(t, []string{"poas.1: duplicate poa"}, recs[1].Failures)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInMemoryStore(t *testing.T) {
	s := NewInMemory()
	ctx := context.Background()

	for i, id := range []string{"s1", "s2", "s3"} {
		rec := partialRecord()
		rec.ID = id
		rec.CreatedAt = createdAt.Add(time.Duration(i) * time.Minute)
		require.NoError(t, s.Append(ctx, rec))
	}

	recs, err := s.ListByAccount(ctx, "ACC1", 2)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "s3", recs[0].ID)
	assert.Equal(t, "s2", recs[1].ID)

	none, err := s.ListByAccount(ctx, "OTHER", 10)
	require.NoError(t, err)
	assert.Empty(t, none)
}
