package composite

import (
	opensearchclient "github.com/opensearch-project/opensearch-go/v2"

	"github.com/vendaflow/pos-api/internal/config"
	"github.com/vendaflow/pos-api/internal/repository"
	"github.com/vendaflow/pos-api/internal/repository/opensearch"
	"github.com/vendaflow/pos-api/internal/repository/postgres"
)

type compositeRepository struct {
	postgresRepo repository.PostgresRepository
	searchRepo   repository.SearchRepository
}

func NewCompositeRepository(dbConnections *config.DatabaseConnections, osClient *opensearchclient.Client, osConfig *config.OpenSearchConfig) repository.Repository {
	return &compositeRepository{
		postgresRepo: postgres.NewPostgresRepository(dbConnections),
		searchRepo:   opensearch.NewSearchRepository(osClient, osConfig),
	}
}

func (r *compositeRepository) Tenant() repository.TenantRepository {
	return r.postgresRepo.Tenant()
}

func (r *compositeRepository) Profile() repository.ProfileRepository {
	return r.postgresRepo.Profile()
}

func (r *compositeRepository) Role() repository.RoleRepository {
	return r.postgresRepo.Role()
}

func (r *compositeRepository) Order() repository.OrderRepository {
	return r.postgresRepo.Order()
}

func (r *compositeRepository) Receivable() repository.ReceivableRepository {
	return r.postgresRepo.Receivable()
}

func (r *compositeRepository) Settings() repository.SettingsRepository {
	return r.postgresRepo.Settings()
}

func (r *compositeRepository) Customer() repository.CustomerRepository {
	return r.postgresRepo.Customer()
}

func (r *compositeRepository) Product() repository.ProductRepository {
	return r.postgresRepo.Product()
}

func (r *compositeRepository) Search() repository.SearchRepository {
	return r.searchRepo
}
