package repositories

import (
	"context"
	"errors"
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"shopmart/internal/models"
)

type StockRepoTestSuite struct {
	suite.Suite
	mock    pgxmock.PgxPoolIface
	repo    StockRepository
	context context.Context
}

func (suite *StockRepoTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	assert.NoError(suite.T(), err)
	suite.mock = mock

	suite.repo = NewStockRepo(mock)
	suite.context = context.Background()
}

func (suite *StockRepoTestSuite) TearDownTest() {
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
	suite.mock.Close()
}

func TestStockRepoTestSuite(t *testing.T) {
	suite.Run(t, new(StockRepoTestSuite))
}

func (suite *StockRepoTestSuite) TestDecrement_Success() {
	suite.mock.ExpectExec(`UPDATE products\s+SET stock = stock - \$1, updated_at = NOW\(\)\s+WHERE id = \$2 AND stock >= \$1`).
		WithArgs(2, int64(10)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := suite.repo.Decrement(suite.context, 10, 2)
	assert.NoError(suite.T(), err)
}

func (suite *StockRepoTestSuite) TestDecrement_InsufficientStock() {
	// Guard predicate filtered the row out, stock stays untouched
	suite.mock.ExpectExec(`UPDATE products\s+SET stock = stock - \$1, updated_at = NOW\(\)\s+WHERE id = \$2 AND stock >= \$1`).
		WithArgs(5, int64(10)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := suite.repo.Decrement(suite.context, 10, 5)
	assert.Error(suite.T(), err)
	assert.ErrorIs(suite.T(), err, ErrInsufficientStock)
	assert.Contains(suite.T(), err.Error(), "product 10")
}

func (suite *StockRepoTestSuite) TestDecrement_DatabaseError() {
	suite.mock.ExpectExec(`UPDATE products\s+SET stock = stock - \$1, updated_at = NOW\(\)\s+WHERE id = \$2 AND stock >= \$1`).
		WithArgs(1, int64(3)).
		WillReturnError(errors.New("connection reset"))

	err := suite.repo.Decrement(suite.context, 3, 1)
	assert.Error(suite.T(), err)
	assert.NotErrorIs(suite.T(), err, ErrInsufficientStock)
}

func (suite *StockRepoTestSuite) TestDecrementAll_Success() {
	items := []models.OrderItemInput{
		{ProductID: 1, Quantity: 2, Price: 9.99},
		{ProductID: 2, Quantity: 1, Price: 4.50},
	}

	batch := suite.mock.ExpectBatch()
	batch.ExpectExec(`UPDATE products\s+SET stock = stock - \$1`).
		WithArgs(2, int64(1)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	batch.ExpectExec(`UPDATE products\s+SET stock = stock - \$1`).
		WithArgs(1, int64(2)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := suite.repo.DecrementAll(suite.context, items)
	assert.NoError(suite.T(), err)
}

func (suite *StockRepoTestSuite) TestDecrementAll_OneProductShort() {
	items := []models.OrderItemInput{
		{ProductID: 1, Quantity: 2, Price: 9.99},
		{ProductID: 2, Quantity: 8, Price: 4.50},
	}

	batch := suite.mock.ExpectBatch()
	batch.ExpectExec(`UPDATE products\s+SET stock = stock - \$1`).
		WithArgs(2, int64(1)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	batch.ExpectExec(`UPDATE products\s+SET stock = stock - \$1`).
		WithArgs(8, int64(2)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := suite.repo.DecrementAll(suite.context, items)
	assert.Error(suite.T(), err)
	assert.ErrorIs(suite.T(), err, ErrInsufficientStock)
	assert.Contains(suite.T(), err.Error(), "product 2")
}
