package postgres

import (
	"gorm.io/gorm"

	"github.com/vendaflow/pos-api/internal/config"
	"github.com/vendaflow/pos-api/internal/repository"
)

type postgresRepository struct {
	writerDB       *gorm.DB
	readerDB       *gorm.DB
	tenantRepo     repository.TenantRepository
	profileRepo    repository.ProfileRepository
	roleRepo       repository.RoleRepository
	orderRepo      repository.OrderRepository
	receivableRepo repository.ReceivableRepository
	settingsRepo   repository.SettingsRepository
	customerRepo   repository.CustomerRepository
	productRepo    repository.ProductRepository
}

func NewPostgresRepository(dbConnections *config.DatabaseConnections) repository.PostgresRepository {
	return &postgresRepository{
		writerDB:       dbConnections.Writer,
		readerDB:       dbConnections.Reader,
		tenantRepo:     NewTenantRepository(dbConnections.Writer, dbConnections.Reader),
		profileRepo:    NewProfileRepository(dbConnections.Writer, dbConnections.Reader),
		roleRepo:       NewRoleRepository(dbConnections.Writer, dbConnections.Reader),
		orderRepo:      NewOrderRepository(dbConnections.Reader),
		receivableRepo: NewReceivableRepository(dbConnections.Writer, dbConnections.Reader),
		settingsRepo:   NewSettingsRepository(dbConnections.Writer, dbConnections.Reader),
		customerRepo:   NewCustomerRepository(dbConnections.Writer, dbConnections.Reader),
		productRepo:    NewProductRepository(dbConnections.Writer, dbConnections.Reader),
	}
}

func (r *postgresRepository) Tenant() repository.TenantRepository {
	return r.tenantRepo
}

func (r *postgresRepository) Profile() repository.ProfileRepository {
	return r.profileRepo
}

func (r *postgresRepository) Role() repository.RoleRepository {
	return r.roleRepo
}

func (r *postgresRepository) Order() repository.OrderRepository {
	return r.orderRepo
}

func (r *postgresRepository) Receivable() repository.ReceivableRepository {
	return r.receivableRepo
}

func (r *postgresRepository) Settings() repository.SettingsRepository {
	return r.settingsRepo
}

func (r *postgresRepository) Customer() repository.CustomerRepository {
	return r.customerRepo
}

func (r *postgresRepository) Product() repository.ProductRepository {
	return r.productRepo
}
