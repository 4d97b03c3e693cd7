package queries_test

import (
	"context"
	"testing"

	"shiptrack/internal/adapters/out/pebblestore"
	"shiptrack/internal/adapters/out/pebblestore/locationrepo"
	"shiptrack/internal/adapters/out/pebblestore/orderrepo"
	"shiptrack/internal/adapters/out/pebblestore/userrepo"
	"shiptrack/internal/core/application/usecases/queries"
	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/order"
	"shiptrack/internal/core/domain/model/user"
	"shiptrack/internal/core/domain/model/userlocation"
	"shiptrack/internal/pkg/errs"

	"github.com/cockroachdb/pebble"
	"github.com/stretchr/testify/suite"
)

// QueryHandlersTestSuite exercises the read side against real storage seeded
// through the write-side repositories, so read models stay in sync with the
// persisted layout.
type QueryHandlersTestSuite struct {
	suite.Suite
	db *pebble.DB
}

func (suite *QueryHandlersTestSuite) SetupTest() {
	db, err := pebblestore.OpenMem()
	suite.Require().NoError(err)
	suite.db = db
}

func (suite *QueryHandlersTestSuite) TearDownTest() {
	if suite.db != nil {
		suite.Require().NoError(suite.db.Close())
	}
}

func (suite *QueryHandlersTestSuite) seedUser(username string) *user.User {
	u, err := user.NewUser(kernel.NewUUID(), username, "customer", kernel.Timestamp(100))
	suite.Require().NoError(err)

	repo := userrepo.NewPebbleUserRepository(suite.db)
	suite.Require().NoError(repo.Add(context.Background(), u))
	return u
}

func (suite *QueryHandlersTestSuite) seedLocation(userID kernel.UUID, lat, lng float64) *userlocation.UserLocation {
	point, err := kernel.NewGeoPoint(lat, lng)
	suite.Require().NoError(err)

	l, err := userlocation.NewUserLocation(kernel.NewUUID(), userID, point, kernel.Timestamp(100))
	suite.Require().NoError(err)

	repo := locationrepo.NewPebbleUserLocationRepository(suite.db)
	suite.Require().NoError(repo.Add(context.Background(), l))
	return l
}

func (suite *QueryHandlersTestSuite) seedOrder() *order.Order {
	senderLocation, err := kernel.NewGeoPoint(0, 0)
	suite.Require().NoError(err)
	receiverLocation, err := kernel.NewGeoPoint(0, 0.09)
	suite.Require().NoError(err)

	o, err := order.NewOrder(
		kernel.NewUUID(),
		"bicycle parts",
		2,
		kernel.NewUUID(),
		kernel.NewUUID(),
		senderLocation,
		receiverLocation,
		"pending",
		500.4,
		kernel.Timestamp(100),
	)
	suite.Require().NoError(err)

	repo := orderrepo.NewPebbleOrderRepository(suite.db)
	suite.Require().NoError(repo.Add(context.Background(), o))
	return o
}

func (suite *QueryHandlersTestSuite) TestGetUser() {
	ctx := context.Background()
	seeded := suite.seedUser("amelia")

	query, err := queries.NewGetUserQuery(seeded.ID())
	suite.Require().NoError(err)

	response, err := queries.NewGetUserQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)

	suite.True(seeded.ID().IsEqual(response.ID))
	suite.Equal("amelia", response.Username)
	suite.Equal("customer", response.Type)
	suite.Equal(int64(100), response.CreatedAt)
	suite.Nil(response.UpdatedAt)
}

func (suite *QueryHandlersTestSuite) TestGetUser_NotFound() {
	ctx := context.Background()

	query, err := queries.NewGetUserQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = queries.NewGetUserQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueryHandlersTestSuite) TestGetUser_NotConstructed() {
	ctx := context.Background()

	_, err := queries.NewGetUserQueryHandler(suite.db).Handle(ctx, queries.GetUserQuery{})
	suite.Require().ErrorIs(err, queries.ErrGetUserQueryIsNotConstructed)
}

func (suite *QueryHandlersTestSuite) TestGetAllUsers() {
	ctx := context.Background()
	suite.seedUser("amelia")
	suite.seedUser("bruno")

	users, err := queries.NewGetAllUsersQueryHandler(suite.db).Handle(ctx, queries.NewGetAllUsersQuery())
	suite.Require().NoError(err)
	suite.Len(users, 2)
}

func (suite *QueryHandlersTestSuite) TestGetAllUsers_Empty() {
	ctx := context.Background()

	users, err := queries.NewGetAllUsersQueryHandler(suite.db).Handle(ctx, queries.NewGetAllUsersQuery())
	suite.Require().NoError(err)
	suite.Empty(users)
}

func (suite *QueryHandlersTestSuite) TestGetUserLocation() {
	ctx := context.Background()
	userID := kernel.NewUUID()
	seeded := suite.seedLocation(userID, 52.52, 13.405)

	query, err := queries.NewGetUserLocationQuery(userID)
	suite.Require().NoError(err)

	response, err := queries.NewGetUserLocationQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)

	suite.True(seeded.ID().IsEqual(response.ID))
	suite.True(userID.IsEqual(response.UserID))
	suite.InDelta(52.52, response.Location.Lat(), 1e-9)
	suite.InDelta(13.405, response.Location.Lng(), 1e-9)
}

func (suite *QueryHandlersTestSuite) TestGetUserLocation_NotFound() {
	ctx := context.Background()

	query, err := queries.NewGetUserLocationQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = queries.NewGetUserLocationQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueryHandlersTestSuite) TestGetOrder() {
	ctx := context.Background()
	seeded := suite.seedOrder()

	query, err := queries.NewGetOrderQuery(seeded.ID())
	suite.Require().NoError(err)

	response, err := queries.NewGetOrderQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)

	suite.True(seeded.ID().IsEqual(response.ID))
	suite.Equal("bicycle parts", response.Description)
	suite.Equal("pending", response.Status)
	suite.InDelta(500.4, response.InitialAmount, 1e-9)
	suite.InDelta(0.09, response.ReceiverLocation.Lng(), 1e-9)
}

func (suite *QueryHandlersTestSuite) TestGetAllOrders() {
	ctx := context.Background()
	suite.seedOrder()
	suite.seedOrder()

	orders, err := queries.NewGetAllOrdersQueryHandler(suite.db).Handle(ctx, queries.NewGetAllOrdersQuery())
	suite.Require().NoError(err)
	suite.Len(orders, 2)
}

func TestQueryHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(QueryHandlersTestSuite))
}
