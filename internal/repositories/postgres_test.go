package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/smolin2019/vehicle-auction-service/internal/models"
	"github.com/stretchr/testify/assert"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupPostgresContainer starts a disposable Postgres, connects, and runs
// Bootstrap so every test sees the real schema and the seeded admin.
func setupPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	assert.NoError(t, err)

	assert.NoError(t, Bootstrap(context.Background(), db))

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

// insertTestUser creates a user row to satisfy seller and bidder FKs.
func insertTestUser(t *testing.T, db *sqlx.DB, username string) uuid.UUID {
	t.Helper()

	repo := NewUserWriteRepository(db, nil)
	userID := uuid.New()
	err := repo.Save(context.Background(), models.UserDB{
		UserID:       userID,
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "x",
	})
	assert.NoError(t, err)
	return userID
}

// insertTestVehicle creates a listing row owned by the given seller.
func insertTestVehicle(t *testing.T, db *sqlx.DB, sellerID uuid.UUID, endTime time.Time) uuid.UUID {
	t.Helper()

	repo := NewVehicleWriteRepository(db, nil)
	vehicleID := uuid.New()
	err := repo.Save(context.Background(), models.VehicleDB{
		VehicleID:    vehicleID,
		Make:         "Toyota",
		Model:        "Corolla",
		Year:         2018,
		Mileage:      65000,
		ReservePrice: 1000,
		EndTime:      endTime,
		SellerID:     sellerID,
		Status:       models.StatusActive,
	})
	assert.NoError(t, err)
	return vehicleID
}
