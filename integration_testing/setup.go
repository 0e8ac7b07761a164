//go:build integration_test || all_tests

package integration_testing

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/gymflow/gymflow/internal"
	"github.com/gymflow/gymflow/internal/config"

	_ "github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
)

const (
	serverPort = 9000
	serverHost = "localhost"
)

var serverEndpoint = fmt.Sprintf("http://%s:%d", serverHost, serverPort)

type Suite struct {
	DB         *sql.DB
	dockerPool *dockertest.Pool
	server     *internal.Server
	teardown   []func()
}

func newSuite(ctx context.Context) *Suite {
	var err error
	suite := &Suite{
		teardown: make([]func(), 0),
	}

	// uses a sensible default on windows (tcp/http) and linux/osx (socket)
	suite.dockerPool, err = dockertest.NewPool("")
	if err != nil {
		log.Fatalf("could not create new dockertest pool: %s", err)
	}

	// uses pool to try to connect to Docker
	if err = suite.dockerPool.Client.Ping(); err != nil {
		log.Fatalf("could not ping dockertest pool: %s", err)
	}

	redisPort, err := suite.redisSetup()
	if err != nil {
		suite.cleanup()
		log.Fatalf("failed to setup redis: %s", err)
	}

	pgPort, err := suite.postgresSetup()
	if err != nil {
		suite.cleanup()
		log.Fatalf("failed to setup postgres: %s", err)
	}

	cfg := getTestConfig(redisPort, pgPort)
	// schema and the seeded exercise catalog come from the
	// embedded migrations run by the server on startup
	suite.server, err = internal.NewServer(
		ctx,
		internal.NewServerParams{
			Config:                  cfg,
			RedisPassword:           "",
			HoneycombTracingEnabled: false,
		},
	)
	if err != nil {
		suite.cleanup()
		log.Fatalf("new server: %s", err)
	}

	suite.server.Serve(cfg.Host, cfg.Port)

	return suite
}

func (s *Suite) cleanup() {
	if s.DB != nil {
		s.DB.Close()
	}
	for _, teardown := range s.teardown {
		teardown()
	}
	if s.server != nil {
		s.server.GracefulShutdown()
	}
}

func getTestConfig(redisPort, postgresPort string) *config.Config {
	return &config.Config{
		Host:                        serverHost,
		Port:                        serverPort,
		LogToStdout:                 true,
		RedisHost:                   "localhost",
		RedisPort:                   redisPort,
		PostgresHost:                "localhost",
		PostgresPort:                postgresPort,
		PostgresDBName:              "gymflow",
		PrometheusMetricsHost:       "localhost",
		PrometheusMetricsPort:       "2112",
		LoginRateLimitAllowedPerMin: 100,
		CatalogCacheTTLSeconds:      60,
	}
}

func (s *Suite) redisSetup() (string, error) {
	redisResource, err := s.dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "redis",
		Name:       "redis",
		Tag:        "6.2",
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
	})
	if err != nil {
		return "", fmt.Errorf("run redis: %s", err)
	}

	s.teardown = append(s.teardown, func() {
		redisResource.Close()
	})

	redisPort := redisResource.GetPort("6379/tcp")
	return redisPort, nil
}

func (s *Suite) postgresSetup() (string, error) {
	pgResource, err := s.dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "15",
		Env: []string{
			"POSTGRES_USER=postgres",
			"POSTGRES_HOST_AUTH_METHOD=trust",
			"POSTGRES_DB=gymflow",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{
			Name: "no",
		}
	})
	if err != nil {
		return "", fmt.Errorf("dockerpool run postgres: %s", err)
	}

	s.teardown = append(s.teardown, func() {
		pgResource.Close()
	})

	pgPort := pgResource.GetPort("5432/tcp")
	dsn := fmt.Sprintf("postgres://postgres@localhost:%s/gymflow?sslmode=disable", pgPort)

	if err := s.dockerPool.Retry(func() error {
		db, err := sql.Open("postgres", dsn)
		if err != nil {
			return err
		}
		s.DB = db
		return db.Ping()
	}); err != nil {
		return "", fmt.Errorf("connect to postgres: %s", err)
	}

	return pgPort, nil
}
