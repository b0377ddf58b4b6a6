package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"bandgap_lab/internal/models"
	"bandgap_lab/internal/repository/db"

	"github.com/DATA-DOG/go-sqlmock"
)

func ctx(t *testing.T) context.Context {
	t.Helper()
	c, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	t.Cleanup(cancel)
	return c
}

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn, mock
}

func TestReadingSQLite_Append_ReturnsInsertID(t *testing.T) {
	t.Parallel()

	conn, mock := newMock(t)
	repo := NewReadingSQLite(conn)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO readings")).
		WithArgs(25.0, 0.001, 0.62).
		WillReturnResult(sqlmock.NewResult(3, 1))

	id, err := repo.Append(ctx(t), models.Reading{Temperature: 25, Current: 0.001, Voltage: 0.62})
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	if id != 3 {
		t.Fatalf("id=%d, want 3", id)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("mock expectations: %v", err)
	}
}

func TestReadingSQLite_Append_DBError(t *testing.T) {
	t.Parallel()

	conn, mock := newMock(t)
	repo := NewReadingSQLite(conn)

	boom := errors.New("disk full")
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO readings")).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(boom)

	if _, err := repo.Append(ctx(t), models.Reading{}); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped %v, got %v", boom, err)
	}
}

func TestReadingSQLite_All_ScansInOrder(t *testing.T) {
	t.Parallel()

	conn, mock := newMock(t)
	repo := NewReadingSQLite(conn)

	rows := sqlmock.NewRows([]string{"id", "temperature", "current", "voltage"}).
		AddRow(0, 25.0, 0.001, 0.6).
		AddRow(1, 50.0, 1e-10, 0.5)
	mock.ExpectQuery(regexp.QuoteMeta(selectReadingsSQL)).WillReturnRows(rows)

	got, err := repo.All(ctx(t))
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(got) != 2 || got[0].ID != 0 || got[1].ID != 1 || got[1].Current != 1e-10 {
		t.Fatalf("unexpected readings: %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("mock expectations: %v", err)
	}
}

func TestReadingSQLite_All_ScanError(t *testing.T) {
	t.Parallel()

	conn, mock := newMock(t)
	repo := NewReadingSQLite(conn)

	rows := sqlmock.NewRows([]string{"id", "temperature", "current", "voltage"}).
		AddRow(0, "not-a-number", 0.001, 0.6)
	mock.ExpectQuery(regexp.QuoteMeta(selectReadingsSQL)).WillReturnRows(rows)

	if _, err := repo.All(ctx(t)); err == nil {
		t.Fatalf("expected scan error")
	}
}

func TestReadingSQLite_Count(t *testing.T) {
	t.Parallel()

	conn, mock := newMock(t)
	repo := NewReadingSQLite(conn)

	mock.ExpectQuery(regexp.QuoteMeta(countReadingsSQL)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	n, err := repo.Count(ctx(t))
	if err != nil || n != 7 {
		t.Fatalf("Count=%d err=%v", n, err)
	}
}

// Exercises the real driver: ids must start at 0 and stay dense.
func TestReadingSQLite_InMemoryRoundTrip(t *testing.T) {
	conn, err := db.InitDB(db.MemoryPath)
	if err != nil {
		t.Fatalf("InitDB: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	repo := NewRepository(conn).ReadingRepo
	for i, temp := range []float64{25, 50, 75} {
		id, err := repo.Append(ctx(t), models.Reading{Temperature: temp, Current: 0.001, Voltage: 0.6})
		if err != nil {
			t.Fatalf("Append: %v", err)
		}
		if id != i {
			t.Fatalf("Append #%d returned id %d", i, id)
		}
	}

	all, err := repo.All(ctx(t))
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(all) != 3 || all[2].Temperature != 75 {
		t.Fatalf("unexpected readings: %+v", all)
	}
}
