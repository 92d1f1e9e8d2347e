package repository_test

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/bookverse/internal/domain"
	"github.com/nikolayk812/bookverse/internal/port"
	"github.com/nikolayk812/bookverse/internal/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"golang.org/x/text/currency"
)

type bookRepositorySuite struct {
	suite.Suite

	repo port.BookRepository
	pool *pgxpool.Pool
}

func TestBookRepositorySuite(t *testing.T) {
	suite.Run(t, new(bookRepositorySuite))
}

func (suite *bookRepositorySuite) SetupSuite() {
	ctx := suite.T().Context()

	_, connStr, err := startPostgres(ctx)
	suite.NoError(err)

	suite.pool, err = pgxpool.New(ctx, connStr)
	suite.NoError(err)

	suite.repo, err = repository.NewBook(suite.pool)
	suite.NoError(err)
}

func (suite *bookRepositorySuite) TearDownSuite() {
	if suite.pool != nil {
		suite.pool.Close()
	}
}

func (suite *bookRepositorySuite) TestCreateAndGetBook() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	book := randomBook()

	created, err := suite.repo.CreateBook(ctx, book)
	require.NoError(t, err)
	assert.Equal(t, book.ID, created.ID)

	got, err := suite.repo.GetBook(ctx, book.ID)
	require.NoError(t, err)
	assertBook(t, book, got)

	_, err = suite.repo.GetBook(ctx, gofakeit.UUID())
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func (suite *bookRepositorySuite) TestCreateBookGeneratesID() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	book := randomBook()
	book.ID = ""

	created, err := suite.repo.CreateBook(ctx, book)
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
}

func (suite *bookRepositorySuite) TestUpdateBook() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	book := randomBook()
	_, err := suite.repo.CreateBook(ctx, book)
	require.NoError(t, err)

	book.Title = "Updated Title"
	book.StockQuantity = 42
	require.NoError(t, suite.repo.UpdateBook(ctx, book))

	got, err := suite.repo.GetBook(ctx, book.ID)
	require.NoError(t, err)
	assert.Equal(t, "Updated Title", got.Title)
	assert.Equal(t, 42, got.StockQuantity)

	missing := randomBook()
	err = suite.repo.UpdateBook(ctx, missing)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func (suite *bookRepositorySuite) TestDeleteBook() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	book := randomBook()
	_, err := suite.repo.CreateBook(ctx, book)
	require.NoError(t, err)

	deleted, err := suite.repo.DeleteBook(ctx, book.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = suite.repo.DeleteBook(ctx, book.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

// Seeding fills an empty catalog once and never touches existing data.
func (suite *bookRepositorySuite) TestSeedBooks() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	require.NoError(t, repository.SeedBooks(ctx, suite.repo))

	books, err := suite.repo.ListBooks(ctx)
	require.NoError(t, err)
	require.Len(t, books, 6)

	require.NoError(t, repository.SeedBooks(ctx, suite.repo))

	count, err := suite.repo.CountBooks(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 6, count)
}

func (suite *bookRepositorySuite) deleteAll() {
	_, err := suite.pool.Exec(suite.T().Context(), "TRUNCATE TABLE books CASCADE")
	suite.NoError(err)
}

func randomBook() domain.Book {
	return domain.Book{
		ID:            gofakeit.UUID(),
		Title:         gofakeit.BookTitle(),
		Author:        gofakeit.BookAuthor(),
		Genre:         gofakeit.BookGenre(),
		ISBN:          gofakeit.DigitN(13),
		Price:         randomMoney(),
		Description:   gofakeit.Sentence(10),
		StockQuantity: gofakeit.Number(0, 50),
		ImageURL:      gofakeit.URL(),
		ImageHint:     gofakeit.Word(),
	}
}

func assertBook(t *testing.T, expected, actual domain.Book) {
	t.Helper()

	opts := cmp.Options{
		cmp.Comparer(func(x, y currency.Unit) bool { return x.String() == y.String() }),
		cmp.Comparer(func(x, y decimal.Decimal) bool { return x.Equal(y) }),
	}

	assert.Empty(t, cmp.Diff(expected, actual, opts))
}
