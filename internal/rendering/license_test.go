package rendering

import (
	"os"
	"testing"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMain runs before all tests and loads .env if available
func TestMain(m *testing.M) {
	// Try to load .env file - ignore error if it doesn't exist (CI environment)
	_ = godotenv.Load()

	os.Exit(m.Run())
}

// requireDocumentLicense registers the license key, skipping tests that
// persist documents when no key is configured.
func requireDocumentLicense(t *testing.T) {
	t.Helper()
	if os.Getenv(LicenseEnvVar) == "" {
		t.Skipf("%s not set; skipping document write test", LicenseEnvVar)
	}
	require.NoError(t, InitLicenseFromEnv())
}

func TestInitLicense_MissingKey(t *testing.T) {
	err := InitLicense("")

	require.Error(t, err)
	assert.Contains(t, err.Error(), LicenseEnvVar,
		"missing key should be reported as a configuration error naming the env var")
}

func TestInitLicenseFromEnv_Unset(t *testing.T) {
	old, wasSet := os.LookupEnv(LicenseEnvVar)
	_ = os.Unsetenv(LicenseEnvVar)
	defer func() {
		if wasSet {
			_ = os.Setenv(LicenseEnvVar, old)
		}
	}()

	err := InitLicenseFromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), LicenseEnvVar)
}
