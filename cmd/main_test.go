package main

import (
	"bytes"
	"context"
	"flag"
	"os"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

// resetEnv clears env vars used by parseConfig
func resetEnv() {
	os.Clearenv()
}

func TestParseFlags_Default(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}
	configPath := parseFlags()
	expected := "config.env"

	if configPath != expected {
		t.Errorf("expected %s, got %s", expected, configPath)
	}
}

func TestParseFlags_Custom(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "myconfig.env"}
	configPath := parseFlags()
	expected := "myconfig.env"

	if configPath != expected {
		t.Errorf("expected %s, got %s", expected, configPath)
	}
}

// ----------------- Tests for printBuildInfo -----------------

func TestPrintBuildInfo_Output(t *testing.T) {
	// Capture stdout
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	// Set build info variables
	buildVersion = "v1.0.0"
	buildCommit = "abcd1234"
	buildDate = "2026-08-29"

	printBuildInfo()

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	output := buf.String()
	os.Stdout = oldStdout

	// Check if all expected strings are present
	if !contains(output, "v1.0.0") ||
		!contains(output, "abcd1234") ||
		!contains(output, "2026-08-29") {
		t.Errorf("printBuildInfo output unexpected:\n%s", output)
	}
}

// Helper function to check substring
func contains(s, substr string) bool {
	return bytes.Contains([]byte(s), []byte(substr))
}

func TestParseConfig_Defaults(t *testing.T) {
	resetEnv()

	appHost, appPort,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns,
		kafkaBrokers, kafkaTopic, logLevel,
		jwtSecret, jwtExp, err := parseConfig("nonexistent.env")

	if err != nil {
		t.Fatalf("parseConfig returned error: %v", err)
	}

	// Application
	if appHost != "localhost" || appPort != "8080" || logLevel != "info" {
		t.Errorf("unexpected app config: %v/%v/%v", appHost, appPort, logLevel)
	}

	// PostgreSQL
	if pgHost != "localhost" || pgPort != 5432 || pgUser != "user" || pgPassword != "password" || pgDB != "auction" ||
		pgMaxOpenConns != 16 || pgMaxIdleConns != 8 {
		t.Errorf("unexpected postgres config")
	}

	// Redis
	if redisHost != "localhost" || redisPort != 6379 || redisDB != 0 || redisPassword != "" ||
		redisPoolSize != 10 || redisMinIdleConns != 2 {
		t.Errorf("unexpected redis config")
	}

	// Kafka
	if len(kafkaBrokers) != 1 || kafkaBrokers[0] != "localhost:9092" || kafkaTopic != "auction.bids" {
		t.Errorf("unexpected kafka config: %v/%v", kafkaBrokers, kafkaTopic)
	}

	// JWT
	if jwtSecret != "my_super_secret_key" || jwtExp != 3600 {
		t.Errorf("unexpected jwt config")
	}
}

func TestParseConfig_CustomEnv(t *testing.T) {
	resetEnv()
	os.Setenv("APP_HOST", "127.0.0.1")
	os.Setenv("APP_PORT", "9090")
	os.Setenv("APP_LOG_LEVEL", "debug")

	os.Setenv("POSTGRES_HOST", "pg.example.com")
	os.Setenv("POSTGRES_PORT", "5433")
	os.Setenv("POSTGRES_USER", "admin")
	os.Setenv("POSTGRES_PASSWORD", "secret")
	os.Setenv("POSTGRES_DB", "mydb")
	os.Setenv("POSTGRES_MAX_OPEN_CONNS", "20")
	os.Setenv("POSTGRES_MAX_IDLE_CONNS", "10")

	os.Setenv("REDIS_HOST", "redis.example.com")
	os.Setenv("REDIS_PORT", "6380")
	os.Setenv("REDIS_DB", "2")
	os.Setenv("REDIS_PASSWORD", "redispass")
	os.Setenv("REDIS_POOL_SIZE", "15")
	os.Setenv("REDIS_MIN_IDLE_CONNS", "5")

	os.Setenv("KAFKA_BROKERS", "kafka1:9092,kafka2:9092")
	os.Setenv("KAFKA_BID_TOPIC", "bids.accepted")

	os.Setenv("JWT_SECRET_KEY", "supersecret")
	os.Setenv("JWT_EXP_SECOND", "300")

	appHost, appPort,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns,
		kafkaBrokers, kafkaTopic, logLevel,
		jwtSecret, jwtExp, err := parseConfig("nonexistent.env")

	if err != nil {
		t.Fatalf("parseConfig returned error: %v", err)
	}

	// Check all variables
	if appHost != "127.0.0.1" || appPort != "9090" || logLevel != "debug" {
		t.Errorf("unexpected app config")
	}
	if pgHost != "pg.example.com" || pgPort != 5433 || pgUser != "admin" || pgPassword != "secret" || pgDB != "mydb" ||
		pgMaxOpenConns != 20 || pgMaxIdleConns != 10 {
		t.Errorf("unexpected postgres config")
	}
	if redisHost != "redis.example.com" || redisPort != 6380 || redisDB != 2 || redisPassword != "redispass" ||
		redisPoolSize != 15 || redisMinIdleConns != 5 {
		t.Errorf("unexpected redis config")
	}
	if len(kafkaBrokers) != 2 || kafkaBrokers[0] != "kafka1:9092" || kafkaBrokers[1] != "kafka2:9092" ||
		kafkaTopic != "bids.accepted" {
		t.Errorf("unexpected kafka config")
	}
	if jwtSecret != "supersecret" || jwtExp != 300 {
		t.Errorf("unexpected jwt config")
	}
}

func TestParseConfig_BadInt(t *testing.T) {
	resetEnv()
	os.Setenv("POSTGRES_PORT", "not-a-number")

	_, _, _, _, _, _, _, _, _, _, _, _, _, _, _, _, _, _, _, _, err := parseConfig("nonexistent.env")
	if err == nil {
		t.Fatal("expected error for non-numeric POSTGRES_PORT")
	}
}

// ------------------ Full integration test ------------------
func TestRun_Success(t *testing.T) {
	ctx := context.Background()

	// ------------------ Postgres container ------------------
	pgReq := testcontainers.ContainerRequest{
		Image:        "postgres:15",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "user"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}
	pgContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{ContainerRequest: pgReq, Started: true})
	if err != nil {
		t.Fatal(err)
	}
	defer pgContainer.Terminate(ctx)

	pgHost, _ := pgContainer.Host(ctx)
	pgPort, _ := pgContainer.MappedPort(ctx, "5432")

	// ------------------ Redis container ------------------
	redisReq := testcontainers.ContainerRequest{
		Image:        "redis:7",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{ContainerRequest: redisReq, Started: true})
	if err != nil {
		t.Fatal(err)
	}
	defer redisContainer.Terminate(ctx)

	redisHost, _ := redisContainer.Host(ctx)
	redisPort, _ := redisContainer.MappedPort(ctx, "6379")

	// ------------------ Run ------------------
	// The Kafka writer only dials on the first publish, so no broker is needed
	// for startup and shutdown.
	testCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- run(testCtx,
			"127.0.0.1", "8086", // appHost, appPort
			pgHost, pgPort.Int(), "user", "password", "testdb",
			5, 2, // Postgres max connections
			redisHost, redisPort.Int(), 0, "", 10, 2, // Redis
			[]string{"localhost:9092"}, "auction.bids", // Kafka
			"debug",          // logLevel
			"testsecret", 60, // JWT
		)
	}()

	select {
	case <-time.After(15 * time.Second):
		t.Fatal("test timed out")
	case err := <-errCh:
		if err != nil {
			t.Fatalf("expected run to succeed, got error: %v", err)
		}
		t.Log("run completed successfully")
	}
}
