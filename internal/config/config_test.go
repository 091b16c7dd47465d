package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadLedgerAPIConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError bool
		validate    func(*testing.T, *LedgerAPIConfig)
	}{
		{
			name: "valid config file",
			configFile: `
debug: true
sentry_dsn: "https://sentry.example.com"
server:
  host: "127.0.0.1"
  port: 9090
  read_timeout: 20
  write_timeout: 20
  idle_timeout: 180
database:
  driver: postgres
  host: localhost
  port: 5433
  user: testuser
  password: testpass
  dbname: ledger
  sslmode: require
  max_open_conns: 40
auth:
  jwt_public_key: "test-public-key"
  api_keys:
    - "key1"
    - "key2"
nats:
  url: "nats://localhost:4222"
  stream_name: "TEST_LEDGER"
reconciler:
  max_attempts: 8
  initial_interval: "50ms"
  max_interval: "2s"
provenance:
  worker_pool_size: 16
`,
			expectError: false,
			validate: func(t *testing.T, cfg *LedgerAPIConfig) {
				assert.True(t, cfg.Debug)
				assert.Equal(t, "https://sentry.example.com", cfg.SentryDSN)
				assert.Equal(t, "127.0.0.1", cfg.Server.Host)
				assert.Equal(t, 9090, cfg.Server.Port)
				assert.Equal(t, 180, cfg.Server.IdleTimeout)
				assert.Equal(t, DriverPostgres, cfg.Database.Driver)
				assert.Equal(t, 5433, cfg.Database.Port)
				assert.Equal(t, "require", cfg.Database.SSLMode)
				assert.Equal(t, 40, cfg.Database.MaxOpenConns)
				assert.Equal(t, "test-public-key", cfg.Auth.JWTPublicKey)
				assert.Len(t, cfg.Auth.APIKeys, 2)
				assert.Equal(t, "nats://localhost:4222", cfg.NATS.URL)
				assert.Equal(t, "TEST_LEDGER", cfg.NATS.StreamName)
				assert.Equal(t, 8, cfg.Reconciler.MaxAttempts)
				assert.Equal(t, 50*time.Millisecond, cfg.Reconciler.InitialInterval)
				assert.Equal(t, 2*time.Second, cfg.Reconciler.MaxInterval)
				assert.Equal(t, 16, cfg.Provenance.WorkerPoolSize)
			},
		},
		{
			name: "config with defaults",
			configFile: `
database:
  host: localhost
  user: testuser
  password: testpass
  dbname: ledger
`,
			expectError: false,
			validate: func(t *testing.T, cfg *LedgerAPIConfig) {
				assert.False(t, cfg.Debug)                   // default
				assert.Equal(t, "0.0.0.0", cfg.Server.Host)  // default
				assert.Equal(t, 8080, cfg.Server.Port)       // default
				assert.Equal(t, 10, cfg.Server.ReadTimeout)  // default
				assert.Equal(t, 10, cfg.Server.WriteTimeout) // default
				assert.Equal(t, 120, cfg.Server.IdleTimeout) // default
				assert.Equal(t, DriverPostgres, cfg.Database.Driver)
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "disable", cfg.Database.SSLMode)
				assert.Equal(t, 20, cfg.Database.MaxOpenConns)
				assert.Equal(t, 5*time.Minute, cfg.Database.ConnMaxLifetime)
				assert.Empty(t, cfg.NATS.URL)
				assert.Equal(t, "LEDGER_EVENTS", cfg.NATS.StreamName)
				assert.Equal(t, "2s", cfg.NATS.ReconnectWait.String())
				assert.Equal(t, 5, cfg.Reconciler.MaxAttempts)
				assert.Equal(t, 20*time.Millisecond, cfg.Reconciler.InitialInterval)
				assert.Equal(t, 500*time.Millisecond, cfg.Reconciler.MaxInterval)
				assert.Equal(t, 8, cfg.Provenance.WorkerPoolSize)
				assert.Equal(t, float64(50), cfg.RateLimit.RequestsPerSecond)
				assert.Equal(t, 100, cfg.RateLimit.Burst)
				assert.Equal(t, 10*time.Minute, cfg.RateLimit.IdleTTL)
			},
		},
		{
			name: "sqlite driver",
			configFile: `
database:
  driver: sqlite
  sqlite_path: /var/lib/ledger/ledger.db
`,
			expectError: false,
			validate: func(t *testing.T, cfg *LedgerAPIConfig) {
				assert.Equal(t, DriverSQLite, cfg.Database.Driver)
				assert.Equal(t, "/var/lib/ledger/ledger.db", cfg.Database.DSN())
			},
		},
		{
			name: "postgres without host",
			configFile: `
database:
  dbname: ledger
`,
			expectError: true,
		},
		{
			name: "unsupported driver",
			configFile: `
database:
  driver: mysql
`,
			expectError: true,
		},
		{
			name: "invalid yaml",
			configFile: `
				database:
				  host: localhost
				  port: invalid
			`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			configFile := filepath.Join(tmpDir, "config.yaml")
			err := os.WriteFile(configFile, []byte(tt.configFile), 0600)
			require.NoError(t, err)

			cfg, err := LoadLedgerAPIConfig(configFile, tmpDir)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, cfg)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, cfg)
			tt.validate(t, cfg)
		})
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	tests := []struct {
		name     string
		config   DatabaseConfig
		expected string
	}{
		{
			name: "postgres",
			config: DatabaseConfig{
				Driver:   DriverPostgres,
				Host:     "localhost",
				Port:     5432,
				User:     "testuser",
				Password: "testpass",
				DBName:   "ledger",
				SSLMode:  "require",
			},
			expected: "host=localhost port=5432 user=testuser password=testpass dbname=ledger sslmode=require",
		},
		{
			name: "with special characters in password",
			config: DatabaseConfig{
				Driver:   DriverPostgres,
				Host:     "localhost",
				Port:     5432,
				User:     "testuser",
				Password: "p@ssw0rd!",
				DBName:   "ledger",
				SSLMode:  "disable",
			},
			expected: "host=localhost port=5432 user=testuser password=p@ssw0rd! dbname=ledger sslmode=disable",
		},
		{
			name: "sqlite",
			config: DatabaseConfig{
				Driver:     DriverSQLite,
				SQLitePath: "ledger.db",
				Host:       "ignored",
			},
			expected: "ledger.db",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.config.DSN())
		})
	}
}

func TestConfigWithEnvironmentVariables(t *testing.T) {
	tmpDir := t.TempDir()

	envDir := filepath.Join(tmpDir, "env")
	err := os.MkdirAll(envDir, 0750)
	require.NoError(t, err)

	// godotenv sets real process variables; clear them once the test is done
	envVars := map[string]string{
		"TOKEN_LEDGER_DEBUG":                   "true",
		"TOKEN_LEDGER_DATABASE_DRIVER":         "sqlite",
		"TOKEN_LEDGER_DATABASE_SQLITE_PATH":    "/tmp/env-ledger.db",
		"TOKEN_LEDGER_RECONCILER_MAX_ATTEMPTS": "3",
		"TOKEN_LEDGER_NATS_URL":                "nats://env:4222",
	}
	var envContent string
	for key, value := range envVars {
		envContent += key + "=" + value + "\n"
		key := key
		t.Cleanup(func() { _ = os.Unsetenv(key) })
	}
	err = os.WriteFile(filepath.Join(envDir, ".env"), []byte(envContent), 0600)
	require.NoError(t, err)

	configPath := filepath.Join(tmpDir, "config.yaml")
	configFile := `
debug: false
database:
  driver: postgres
  host: file-host
  dbname: file-db
reconciler:
  max_attempts: 9
`
	err = os.WriteFile(configPath, []byte(configFile), 0600)
	require.NoError(t, err)

	cfg, err := LoadLedgerAPIConfig(configPath, envDir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	// Values from the .env file override the config file
	assert.True(t, cfg.Debug)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "/tmp/env-ledger.db", cfg.Database.SQLitePath)
	assert.Equal(t, 3, cfg.Reconciler.MaxAttempts)
	assert.Equal(t, "nats://env:4222", cfg.NATS.URL)
	// Values missing from the environment come from the file
	assert.Equal(t, "file-host", cfg.Database.Host)
}
