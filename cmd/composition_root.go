package cmd

import (
	adapter_http "shiptrack/internal/adapters/in/http"
	"shiptrack/internal/adapters/out/pebblestore"
	"shiptrack/internal/adapters/out/system"
	"shiptrack/internal/core/application/usecases/commands"
	"shiptrack/internal/core/application/usecases/queries"
	"shiptrack/internal/core/domain/services"
	"shiptrack/internal/core/ports"

	"github.com/cockroachdb/pebble"
)

type CompositionRoot struct {
	configs    Config
	db         *pebble.DB
	uowFactory pebblestore.PebbleUnitOfWorkFactory
	pricing    services.PricingPolicy
	clock      ports.Clock
	idGen      ports.IDGenerator
}

func NewCompositionRoot(configs Config, db *pebble.DB) CompositionRoot {
	return CompositionRoot{
		configs:    configs,
		db:         db,
		uowFactory: *pebblestore.NewPebbleUnitOfWorkFactory(db),
		pricing:    services.NewPricingPolicy(),
		clock:      system.NewClock(),
		idGen:      system.NewIDGenerator(),
	}
}

func (c *CompositionRoot) CreateCreateUserCommandHandler() commands.CreateUserCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateUserCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateUpdateUserCommandHandler() commands.UpdateUserCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateUserCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateDeleteUserCommandHandler() commands.DeleteUserCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteUserCommandHandler(f)
}

func (c *CompositionRoot) CreateSetUserLocationCommandHandler() commands.SetUserLocationCommandHandler {
	var f commands.LocationUoWFactory = FuncLocationUoWFactory(func() commands.LocationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetUserLocationCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateUpdateUserLocationCommandHandler() commands.UpdateUserLocationCommandHandler {
	var f commands.LocationUoWFactory = FuncLocationUoWFactory(func() commands.LocationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateUserLocationCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateDeleteUserLocationCommandHandler() commands.DeleteUserLocationCommandHandler {
	var f commands.LocationUoWFactory = FuncLocationUoWFactory(func() commands.LocationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteUserLocationCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.pricing, c.clock)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCreatePaymentCommandHandler() commands.CreatePaymentCommandHandler {
	var f commands.PaymentUoWFactory = FuncPaymentUoWFactory(func() commands.PaymentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreatePaymentCommandHandler(f, c.clock, c.configs.PaymentStrictOrderCheck)
}

func (c *CompositionRoot) CreateUpdatePaymentCommandHandler() commands.UpdatePaymentCommandHandler {
	var f commands.PaymentUoWFactory = FuncPaymentUoWFactory(func() commands.PaymentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdatePaymentCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateCreateShipmentCommandHandler() commands.CreateShipmentCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateShipmentCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateUpdateShipmentCommandHandler() commands.UpdateShipmentCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateShipmentCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateHTTPServer() *adapter_http.Server {
	handlers := adapter_http.Handlers{
		CreateUser:         c.CreateCreateUserCommandHandler(),
		UpdateUser:         c.CreateUpdateUserCommandHandler(),
		DeleteUser:         c.CreateDeleteUserCommandHandler(),
		SetUserLocation:    c.CreateSetUserLocationCommandHandler(),
		UpdateUserLocation: c.CreateUpdateUserLocationCommandHandler(),
		DeleteUserLocation: c.CreateDeleteUserLocationCommandHandler(),
		CreateOrder:        c.CreateCreateOrderCommandHandler(),
		UpdateOrder:        c.CreateUpdateOrderCommandHandler(),
		DeleteOrder:        c.CreateDeleteOrderCommandHandler(),
		CreatePayment:      c.CreateCreatePaymentCommandHandler(),
		UpdatePayment:      c.CreateUpdatePaymentCommandHandler(),
		CreateShipment:     c.CreateCreateShipmentCommandHandler(),
		UpdateShipment:     c.CreateUpdateShipmentCommandHandler(),

		GetUser:             queries.NewGetUserQueryHandler(c.db),
		GetAllUsers:         queries.NewGetAllUsersQueryHandler(c.db),
		GetUserLocation:     queries.NewGetUserLocationQueryHandler(c.db),
		GetAllUserLocations: queries.NewGetAllUserLocationsQueryHandler(c.db),
		GetOrder:            queries.NewGetOrderQueryHandler(c.db),
		GetAllOrders:        queries.NewGetAllOrdersQueryHandler(c.db),
		GetPayment:          queries.NewGetPaymentQueryHandler(c.db),
		GetAllPayments:      queries.NewGetAllPaymentsQueryHandler(c.db),
		GetShipment:         queries.NewGetShipmentQueryHandler(c.db),
		GetAllShipments:     queries.NewGetAllShipmentsQueryHandler(c.db),
	}

	return adapter_http.NewServer(handlers, c.idGen)
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

type FuncLocationUoWFactory func() commands.LocationUoW

func (f FuncLocationUoWFactory) Create() commands.LocationUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncPaymentUoWFactory func() commands.PaymentUoW

func (f FuncPaymentUoWFactory) Create() commands.PaymentUoW {
	return f()
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}
