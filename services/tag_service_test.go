package services

import (
	"errors"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"scrawl-notes/scrawl/testutils"
)

func TestCreateTag_Success(t *testing.T) {
	db, mock, close := testutils.SetupMockDB()
	defer close()

	userID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "tags"`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(`INSERT INTO "events"`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	tagService := &TagService{}
	tag, err := tagService.CreateTag(db, userID, map[string]interface{}{
		"name": "work",
	})

	assert.NoError(t, err)
	assert.Equal(t, "work", tag.Name)
	assert.Equal(t, userID, tag.UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateTag_MissingName(t *testing.T) {
	db, _, close := testutils.SetupMockDB()
	defer close()

	tagService := &TagService{}
	_, err := tagService.CreateTag(db, uuid.New(), map[string]interface{}{})
	assert.True(t, errors.Is(err, ErrMissingField))
}

func TestCreateTag_DuplicateName(t *testing.T) {
	db, mock, close := testutils.SetupMockDB()
	defer close()

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "tags"`).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})
	mock.ExpectRollback()

	tagService := &TagService{}
	_, err := tagService.CreateTag(db, uuid.New(), map[string]interface{}{
		"name": "work",
	})

	assert.True(t, errors.Is(err, ErrDuplicateName))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateTag_NotFoundForOtherUser(t *testing.T) {
	db, mock, close := testutils.SetupMockDB()
	defer close()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "tags"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "name"}))
	mock.ExpectRollback()

	tagService := &TagService{}
	_, err := tagService.UpdateTag(db, uuid.New(), uuid.New().String(), map[string]interface{}{
		"name": "renamed",
	})

	assert.True(t, errors.Is(err, ErrTagNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteTag_DetachesFromNotes(t *testing.T) {
	db, mock, close := testutils.SetupMockDB()
	defer close()

	userID := uuid.New()
	tagID := uuid.New()

	mock.MatchExpectationsInOrder(false)
	mock.ExpectExec(`DELETE FROM "tags"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM note_tags USING notes`).
		WithArgs(tagID.String(), userID).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(`INSERT INTO "events"`).
		WillReturnResult(sqlmock.NewResult(1, 1))

	tagService := &TagService{}
	err := tagService.DeleteTag(db, userID, tagID.String())

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteTag_NotFound(t *testing.T) {
	db, mock, close := testutils.SetupMockDB()
	defer close()

	mock.MatchExpectationsInOrder(false)
	mock.ExpectExec(`DELETE FROM "tags"`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM note_tags USING notes`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	tagService := &TagService{}
	err := tagService.DeleteTag(db, uuid.New(), uuid.New().String())

	assert.True(t, errors.Is(err, ErrTagNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTags_OrderedByName(t *testing.T) {
	db, mock, close := testutils.SetupMockDB()
	defer close()

	userID := uuid.New()

	rows := sqlmock.NewRows([]string{"id", "user_id", "name"}).
		AddRow(uuid.New(), userID, "errands").
		AddRow(uuid.New(), userID, "Work")

	mock.ExpectQuery(`SELECT \* FROM "tags" WHERE user_id = (.+) ORDER BY lower\(name\)`).
		WillReturnRows(rows)

	tagService := &TagService{}
	tags, err := tagService.GetTags(db, userID)

	assert.NoError(t, err)
	assert.Len(t, tags, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}
