package repository

import (
	"context"
	"time"

	"github.com/vendaflow/pos-api/internal/domain"
)

// Lookup methods that mirror a "maybe single" query return (nil, nil) when
// no row matches; a non-nil error always means the query itself failed.

//go:generate mockery --name TenantRepository --output ../mocks
type TenantRepository interface {
	Create(ctx context.Context, tenant *domain.Tenant) (*domain.Tenant, error)
	GetByID(ctx context.Context, id string) (*domain.Tenant, error)
	GetByOwnerID(ctx context.Context, ownerID string) (*domain.Tenant, error)
}

//go:generate mockery --name ProfileRepository --output ../mocks
type ProfileRepository interface {
	Create(ctx context.Context, profile *domain.Profile) error
	GetByID(ctx context.Context, id string) (*domain.Profile, error)
	GetByName(ctx context.Context, name string) (*domain.Profile, error)
	UpdateTenantID(ctx context.Context, id, tenantID string) error
	UpdateIdentity(ctx context.Context, id, email, name string) error
}

//go:generate mockery --name RoleRepository --output ../mocks
type RoleRepository interface {
	Create(ctx context.Context, role *domain.UserRole) error
	GetByUserID(ctx context.Context, userID string) (*domain.UserRole, error)
	UpdateTenantID(ctx context.Context, userID, tenantID string) error
}

//go:generate mockery --name OrderRepository --output ../mocks
type OrderRepository interface {
	List(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error)
}

//go:generate mockery --name ReceivableRepository --output ../mocks
type ReceivableRepository interface {
	Create(ctx context.Context, receivable *domain.Receivable) error
	BulkCreate(ctx context.Context, receivables []domain.Receivable) error
	List(ctx context.Context) ([]domain.Receivable, error)
	MarkPaid(ctx context.Context, id string, paymentMethod *string, paidAt time.Time) (*domain.Receivable, error)
	Delete(ctx context.Context, id string) error
	ListPaidBefore(ctx context.Context, tenantID string, before time.Time) ([]domain.Receivable, error)
	DeletePaidBefore(ctx context.Context, tenantID string, before time.Time) (int64, error)
}

//go:generate mockery --name SettingsRepository --output ../mocks
type SettingsRepository interface {
	GetByTenantID(ctx context.Context, tenantID string) (*domain.CompanySettingsRecord, error)
	Upsert(ctx context.Context, record *domain.CompanySettingsRecord) error
}

//go:generate mockery --name CustomerRepository --output ../mocks
type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	BulkCreate(ctx context.Context, customers []domain.Customer) error
	List(ctx context.Context) ([]domain.Customer, error)
}

//go:generate mockery --name ProductRepository --output ../mocks
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	BulkCreate(ctx context.Context, products []domain.Product) error
	List(ctx context.Context) ([]domain.Product, error)
}

//go:generate mockery --name SearchRepository --output ../mocks
type SearchRepository interface {
	Index(ctx context.Context, receivable *domain.Receivable) error
	BulkIndex(ctx context.Context, receivables []domain.Receivable) error
	Search(ctx context.Context, filter *domain.ReceivableFilter) ([]domain.Receivable, error)
	CreateIndex(ctx context.Context, tenantID string, t time.Time) error
	DeleteIndex(ctx context.Context, tenantID string) error
}

//go:generate mockery --name PostgresRepository --output ../mocks
type PostgresRepository interface {
	Tenant() TenantRepository
	Profile() ProfileRepository
	Role() RoleRepository
	Order() OrderRepository
	Receivable() ReceivableRepository
	Settings() SettingsRepository
	Customer() CustomerRepository
	Product() ProductRepository
}

//go:generate mockery --name Repository --output ../mocks
type Repository interface {
	PostgresRepository
	Search() SearchRepository
}
