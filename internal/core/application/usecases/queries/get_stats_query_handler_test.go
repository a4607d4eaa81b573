package queries_test

import (
	"context"
	"testing"

	"courier/internal/adapters/out/postgres/shipmentrepo"
	"courier/internal/core/application/usecases/queries"
	"courier/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type GetStatsQueryHandlerTestSuite struct {
	queryHandlerSuite
	handler queries.GetStatsQueryHandler
}

func (suite *GetStatsQueryHandlerTestSuite) SetupSuite() {
	suite.queryHandlerSuite.SetupSuite()
	suite.handler = queries.NewGetStatsQueryHandler(suite.db)
}

func (suite *GetStatsQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsZeroes() {
	query, err := queries.NewGetStatsQuery(admin())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Zero(result.TotalShipments)
	suite.Zero(result.TotalRevenue)
	suite.NotNil(result.CountsByStatus)
	suite.Empty(result.CountsByStatus)
}

func (suite *GetStatsQueryHandlerTestSuite) TestHandle_CountsByStatusAndRevenue() {
	suite.seedShipment(nil)
	suite.seedShipment(func(dto *shipmentrepo.ShipmentDTO) {
		dto.Status = "delivered"
		dto.Price = floatVal(100)
	})
	suite.seedShipment(func(dto *shipmentrepo.ShipmentDTO) {
		dto.Status = "delivered"
		dto.Price = floatVal(45.5)
	})
	suite.seedShipment(func(dto *shipmentrepo.ShipmentDTO) {
		dto.Status = "in_transit"
		dto.Price = floatVal(80)
	})
	suite.seedShipment(func(dto *shipmentrepo.ShipmentDTO) {
		dto.Status = "cancelled"
	})

	query, err := queries.NewGetStatsQuery(admin())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(int64(5), result.TotalShipments)
	suite.Equal(int64(1), result.CountsByStatus["pending"])
	suite.Equal(int64(2), result.CountsByStatus["delivered"])
	suite.Equal(int64(1), result.CountsByStatus["in_transit"])
	suite.Equal(int64(1), result.CountsByStatus["cancelled"])
	suite.InDelta(225.5, result.TotalRevenue, 0.001)
}

func (suite *GetStatsQueryHandlerTestSuite) TestHandle_MissingPrice_CountsAsZeroRevenue() {
	suite.seedShipment(func(dto *shipmentrepo.ShipmentDTO) {
		dto.Status = "delivered"
	})

	query, err := queries.NewGetStatsQuery(admin())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(int64(1), result.TotalShipments)
	suite.Zero(result.TotalRevenue)
}

func (suite *GetStatsQueryHandlerTestSuite) TestHandle_NonAdmin_NotAuthorized() {
	for _, actor := range []struct {
		name    string
		builder func() queries.GetStatsQuery
	}{
		{"agent", func() queries.GetStatsQuery {
			q, err := queries.NewGetStatsQuery(agent())
			suite.Require().NoError(err)
			return q
		}},
		{"customer", func() queries.GetStatsQuery {
			q, err := queries.NewGetStatsQuery(customer())
			suite.Require().NoError(err)
			return q
		}},
	} {
		suite.Run(actor.name, func() {
			_, err := suite.handler.Handle(context.Background(), actor.builder())

			suite.Require().Error(err)
			var notAuthorized *errs.NotAuthorizedError
			suite.ErrorAs(err, &notAuthorized)
		})
	}
}

func (suite *GetStatsQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetStatsQuery{}

	_, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewGetStatsQuery constructor")
}

func TestGetStatsQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetStatsQueryHandlerTestSuite))
}
