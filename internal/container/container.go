package container

import (
	"fmt"
	"log/slog"

	"github.com/joshua-takyi/eventbook/internal/models"
	"github.com/joshua-takyi/eventbook/internal/services"
	"go.mongodb.org/mongo-driver/mongo"
)

// Container holds all application dependencies
type Container struct {
	Logger         *slog.Logger
	MongoDBClient  *mongo.Client
	CORSOrigins    []string
	CatalogService *services.CatalogService
	BookingService *services.BookingService
}

// NewContainer wires the catalog and booking services. A nil mongo client
// selects the in-memory booking store.
func NewContainer(logger *slog.Logger, mongoDBClient *mongo.Client, dbName string, corsOrigins []string) (*Container, error) {
	catalog, err := models.LoadEmbeddedCatalog()
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	samples, err := models.LoadSampleBookings()
	if err != nil {
		return nil, fmt.Errorf("failed to load sample bookings: %w", err)
	}

	var repo models.BookingsRepo
	if mongoDBClient != nil {
		repo = models.MongodbNewRepo(mongoDBClient, dbName)
	} else {
		repo = models.NewInMemoryBookingsRepo()
	}

	return New(logger, catalog, repo, samples, corsOrigins, mongoDBClient), nil
}

// New builds a container from already loaded parts; tests use it with
// fixture catalogs.
func New(
	logger *slog.Logger,
	catalog models.CatalogRepo,
	repo models.BookingsRepo,
	samples []*models.Booking,
	corsOrigins []string,
	mongoDBClient *mongo.Client,
) *Container {
	validator := services.NewDetailsValidator(nil)
	assembler := services.NewAssembler(catalog, services.NewReferenceGenerator(nil, nil), nil)

	return &Container{
		Logger:         logger,
		MongoDBClient:  mongoDBClient,
		CORSOrigins:    corsOrigins,
		CatalogService: services.NewCatalogService(catalog),
		BookingService: services.NewBookingService(catalog, repo, samples, validator, assembler, logger),
	}
}
