package cmd

import (
	"postal/internal/adapters/out/postgres"
	"postal/internal/adapters/out/tokengen"
	"postal/internal/core/application/usecases/commands"
	"postal/internal/core/application/usecases/queries"
	"postal/internal/core/domain/services"
	"postal/internal/core/ports"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters into use-case handlers. All construction is
// explicit; no global singletons.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

// NewCompositionRoot creates the composition root over an open database
// connection.
func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateParcelCommandHandler() commands.CreateParcelCommandHandler {
	var f commands.ParcelUoWFactory = FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateParcelCommandHandler(f, tokengen.NewUUIDTokenGenerator(), services.NewPriceCalculator())
}

func (c *CompositionRoot) CreateSendParcelCommandHandler() commands.SendParcelCommandHandler {
	var f commands.ParcelUoWFactory = FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSendParcelCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateParcelStatusCommandHandler() commands.UpdateParcelStatusCommandHandler {
	var f commands.ParcelUoWFactory = FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateParcelStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateOfficeCommandHandler() commands.CreateOfficeCommandHandler {
	var f commands.OfficeUoWFactory = FuncOfficeUoWFactory(func() commands.OfficeUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOfficeCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateOfficeCommandHandler() commands.UpdateOfficeCommandHandler {
	var f commands.OfficeUoWFactory = FuncOfficeUoWFactory(func() commands.OfficeUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOfficeCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteOfficeCommandHandler() commands.DeleteOfficeCommandHandler {
	var f commands.OfficeUoWFactory = FuncOfficeUoWFactory(func() commands.OfficeUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteOfficeCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateEmployeeCommandHandler() commands.CreateEmployeeCommandHandler {
	var f commands.EmployeeUoWFactory = FuncEmployeeUoWFactory(func() commands.EmployeeUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateEmployeeCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateEmployeeCommandHandler() commands.UpdateEmployeeCommandHandler {
	var f commands.EmployeeUoWFactory = FuncEmployeeUoWFactory(func() commands.EmployeeUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateEmployeeCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteEmployeeCommandHandler() commands.DeleteEmployeeCommandHandler {
	var f commands.EmployeeUoWFactory = FuncEmployeeUoWFactory(func() commands.EmployeeUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteEmployeeCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateClientCommandHandler() commands.CreateClientCommandHandler {
	var f commands.ClientUoWFactory = FuncClientUoWFactory(func() commands.ClientUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateClientCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateClientCommandHandler() commands.UpdateClientCommandHandler {
	var f commands.ClientUoWFactory = FuncClientUoWFactory(func() commands.ClientUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateClientCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteClientCommandHandler() commands.DeleteClientCommandHandler {
	var f commands.ClientUoWFactory = FuncClientUoWFactory(func() commands.ClientUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteClientCommandHandler(f)
}

func (c *CompositionRoot) CreateGetParcelByTokenQueryHandler() queries.GetParcelByTokenQueryHandler {
	return queries.NewGetParcelByTokenQueryHandler(c.repositories().ParcelRepository())
}

func (c *CompositionRoot) CreateListParcelsQueryHandler() queries.ListParcelsQueryHandler {
	return queries.NewListParcelsQueryHandler(c.repositories().ParcelRepository())
}

func (c *CompositionRoot) CreateParcelStatisticsQueryHandler() queries.ParcelStatisticsQueryHandler {
	return queries.NewParcelStatisticsQueryHandler(c.repositories().ParcelRepository())
}

func (c *CompositionRoot) CreateGetParcelHistoryQueryHandler() queries.GetParcelHistoryQueryHandler {
	repos := c.repositories()
	return queries.NewGetParcelHistoryQueryHandler(repos.ParcelRepository(), repos.AuditRepository())
}

func (c *CompositionRoot) CreateGetOfficeQueryHandler() queries.GetOfficeQueryHandler {
	return queries.NewGetOfficeQueryHandler(c.repositories().OfficeRepository())
}

func (c *CompositionRoot) CreateListOfficesQueryHandler() queries.ListOfficesQueryHandler {
	return queries.NewListOfficesQueryHandler(c.repositories().OfficeRepository())
}

func (c *CompositionRoot) CreateGetEmployeeQueryHandler() queries.GetEmployeeQueryHandler {
	return queries.NewGetEmployeeQueryHandler(c.repositories().EmployeeRepository())
}

func (c *CompositionRoot) CreateListEmployeesQueryHandler() queries.ListEmployeesQueryHandler {
	return queries.NewListEmployeesQueryHandler(c.repositories().EmployeeRepository())
}

func (c *CompositionRoot) CreateGetClientQueryHandler() queries.GetClientQueryHandler {
	return queries.NewGetClientQueryHandler(c.repositories().ClientRepository())
}

func (c *CompositionRoot) CreateListClientsQueryHandler() queries.ListClientsQueryHandler {
	return queries.NewListClientsQueryHandler(c.repositories().ClientRepository())
}

// repositories returns a transaction-less unit of work whose repository
// accessors read directly from the main connection. Queries never begin a
// transaction.
func (c *CompositionRoot) repositories() ports.UnitOfWork {
	return c.uowFactory.Create()
}

type FuncParcelUoWFactory func() commands.ParcelUoW

func (f FuncParcelUoWFactory) Create() commands.ParcelUoW {
	return f()
}

type FuncOfficeUoWFactory func() commands.OfficeUoW

func (f FuncOfficeUoWFactory) Create() commands.OfficeUoW {
	return f()
}

type FuncEmployeeUoWFactory func() commands.EmployeeUoW

func (f FuncEmployeeUoWFactory) Create() commands.EmployeeUoW {
	return f()
}

type FuncClientUoWFactory func() commands.ClientUoW

func (f FuncClientUoWFactory) Create() commands.ClientUoW {
	return f()
}
