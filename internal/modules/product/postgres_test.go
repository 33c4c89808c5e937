package product

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureSchemaCreatesTable(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS products`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewPostgresRepository(db)
	require.NoError(t, repo.EnsureSchema(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertIgnoreUsesConflictClause(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`ON CONFLICT \(external_id\) DO NOTHING`).
		WithArgs("100123", "Smart Watch X", "19.99", "http://img/1.jpg", "http://aff/1", "smart watch").
		WillReturnResult(sqlmock.NewResult(1, 1))

	repo := NewPostgresRepository(db)
	err = repo.InsertIgnore(context.Background(), &Product{
		ExternalID:    "100123",
		Title:         "Smart Watch X",
		Price:         strPtr("19.99"),
		ImageURL:      strPtr("http://img/1.jpg"),
		AffiliateLink: "http://aff/1",
		Category:      "smart watch",
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertIgnoreDuplicateIsNoError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// Second write with the same external_id affects zero rows and
	// still succeeds.
	mock.ExpectExec(`INSERT INTO products`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(`INSERT INTO products`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewPostgresRepository(db)
	p := &Product{ExternalID: "100123", Title: "Smart Watch X", AffiliateLink: "http://aff/1", Category: "smart watch"}
	require.NoError(t, repo.InsertIgnore(context.Background(), p))
	require.NoError(t, repo.InsertIgnore(context.Background(), p))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertIgnorePassesNullOptionalFields(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`INSERT INTO products`).
		WithArgs("2", "Mystery Gadget", nil, nil, "http://detail/2", "drone").
		WillReturnResult(sqlmock.NewResult(2, 1))

	repo := NewPostgresRepository(db)
	err = repo.InsertIgnore(context.Background(), &Product{
		ExternalID:    "2",
		Title:         "Mystery Gadget",
		AffiliateLink: "http://detail/2",
		Category:      "drone",
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListRecentOrdersNewestFirstWithLimit(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	t3 := time.Now()
	t2 := t3.Add(-time.Hour)
	t1 := t3.Add(-2 * time.Hour)

	rows := sqlmock.NewRows([]string{"external_id", "title", "price", "image_url", "affiliate_link", "category", "created_at"}).
		AddRow("3", "Newest", "3.00", "http://img/3", "http://aff/3", "drone", t3).
		AddRow("2", "Middle", nil, nil, "http://aff/2", "drone", t2).
		AddRow("1", "Oldest", "1.00", "http://img/1", "http://aff/1", "drone", t1)

	mock.ExpectQuery(`ORDER BY created_at DESC LIMIT \$1`).
		WithArgs(50).
		WillReturnRows(rows)

	repo := NewPostgresRepository(db)
	products, err := repo.ListRecent(context.Background(), 50)
	require.NoError(t, err)
	require.Len(t, products, 3)

	assert.Equal(t, "Newest", products[0].Title)
	assert.Equal(t, "Middle", products[1].Title)
	assert.Equal(t, "Oldest", products[2].Title)
	assert.Nil(t, products[1].Price)
	assert.Nil(t, products[1].ImageURL)
	require.NotNil(t, products[0].Price)
	assert.Equal(t, "3.00", *products[0].Price)
	assert.NoError(t, mock.ExpectationsWereMet())
}
