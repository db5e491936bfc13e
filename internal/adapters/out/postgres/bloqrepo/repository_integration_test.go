package bloqrepo_test

import (
	"context"
	"testing"
	"time"

	"parcellocker/internal/adapters/out/postgres/bloqrepo"
	"parcellocker/internal/core/domain/model/bloq"
	"parcellocker/internal/core/domain/model/kernel"
	"parcellocker/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// BloqRepositoryIntegrationTestSuite provides integration tests for BloqRepository
// using PostgreSQL containers to verify database persistence behavior.
type BloqRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *bloqrepo.GormBloqRepository
	tracker    *MockAggregateTracker
}

func (suite *BloqRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&bloqrepo.BloqDTO{}))
}

func (suite *BloqRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE bloqs").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = bloqrepo.NewGormBloqRepository(suite.db, suite.tracker)
}

func (suite *BloqRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *BloqRepositoryIntegrationTestSuite) TestAdd_ValidBloq_Success() {
	ctx := context.Background()

	site := suite.createTestBloq("Luitton Vouis Champs-Elysees", "101 Av. des Champs-Elysees", kernel.France)
	suite.tracker.On("TrackAggregate", site.ID(), site).Once()

	err := suite.repository.Add(ctx, site)
	suite.Require().NoError(err)

	suite.assertBloqCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *BloqRepositoryIntegrationTestSuite) TestGet_ExistingBloq_ReturnsBloq() {
	ctx := context.Background()

	original := suite.createTestBloq("Riod Eixample", "Passeig de Gracia 74", kernel.Spain)
	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.Equal(original.ID(), retrieved.ID())
	suite.Equal("Riod Eixample", retrieved.Title())
	suite.Equal("Passeig de Gracia 74", retrieved.Address())
	suite.Equal(kernel.Spain, retrieved.Country())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *BloqRepositoryIntegrationTestSuite) TestGet_NonExistentBloq_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *BloqRepositoryIntegrationTestSuite) TestUpdate_RenameAndRelocate_Persists() {
	ctx := context.Background()

	site := suite.createTestBloq("Old Title", "Old Address 1", kernel.Portugal)
	suite.tracker.On("TrackAggregate", site.ID(), site).Times(2)
	suite.Require().NoError(suite.repository.Add(ctx, site))

	suite.Require().NoError(site.Rename("Bluberry Amsterdam"))
	suite.Require().NoError(site.Relocate("Prinsengracht 263"))
	suite.Require().NoError(suite.repository.Update(ctx, site))

	retrieved, err := suite.repository.Get(ctx, site.ID())
	suite.Require().NoError(err)
	suite.Equal("Bluberry Amsterdam", retrieved.Title())
	suite.Equal("Prinsengracht 263", retrieved.Address())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *BloqRepositoryIntegrationTestSuite) TestUpdate_NonExistentBloq_ReturnsError() {
	ctx := context.Background()

	missing := suite.createTestBloq("Missing", "Nowhere 1", kernel.Poland)

	err := suite.repository.Update(ctx, missing)
	suite.Require().Error(err)
}

func (suite *BloqRepositoryIntegrationTestSuite) TestDelete_ExistingBloq_RemovesRow() {
	ctx := context.Background()

	site := suite.createTestBloq("To Delete", "Gone Street 1", kernel.Netherlands)
	suite.tracker.On("TrackAggregate", site.ID(), site).Once()
	suite.Require().NoError(suite.repository.Add(ctx, site))

	err := suite.repository.Delete(ctx, site.ID())
	suite.Require().NoError(err)

	suite.assertBloqCount(0)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *BloqRepositoryIntegrationTestSuite) TestDelete_NonExistentBloq_ReturnsNotFoundError() {
	ctx := context.Background()

	err := suite.repository.Delete(ctx, kernel.NewUUID())
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *BloqRepositoryIntegrationTestSuite) TestGetAllByCountry_FiltersByCountry() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(3)

	esSite1 := suite.createTestBloq("Riod Eixample", "Passeig de Gracia 74", kernel.Spain)
	esSite2 := suite.createTestBloq("Riod Gracia", "Carrer Gran de Gracia 3", kernel.Spain)
	frSite := suite.createTestBloq("Luitton Vouis", "101 Av. des Champs-Elysees", kernel.France)

	suite.Require().NoError(suite.repository.Add(ctx, esSite1))
	suite.Require().NoError(suite.repository.Add(ctx, esSite2))
	suite.Require().NoError(suite.repository.Add(ctx, frSite))

	spanish, err := suite.repository.GetAllByCountry(ctx, kernel.Spain)
	suite.Require().NoError(err)

	suite.Require().Len(spanish, 2)
	for _, site := range spanish {
		suite.Equal(kernel.Spain, site.Country())
	}

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *BloqRepositoryIntegrationTestSuite) TestGetAllByCountry_NoSites_ReturnsEmptySlice() {
	ctx := context.Background()

	sites, err := suite.repository.GetAllByCountry(ctx, kernel.Poland)
	suite.Require().NoError(err)
	suite.Empty(sites)
}

// createTestBloq creates a valid bloq for testing purposes.
func (suite *BloqRepositoryIntegrationTestSuite) createTestBloq(
	title, address string, country kernel.Country,
) *bloq.Bloq {
	site, err := bloq.NewBloq(kernel.NewUUID(), title, address, country)
	suite.Require().NoError(err)
	return site
}

// assertBloqCount verifies the number of bloqs in the database.
func (suite *BloqRepositoryIntegrationTestSuite) assertBloqCount(expected int) {
	var count int64
	err := suite.db.Model(&bloqrepo.BloqDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestBloqRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(BloqRepositoryIntegrationTestSuite))
}
