package rendering

import (
	"fmt"
	"os"
	"sync"

	"github.com/unidoc/unioffice/common/license"
)

// LicenseEnvVar names the environment variable carrying the UniOffice
// metered license key. SaveToFile refuses to write unlicensed documents.
const LicenseEnvVar = "UNIDOC_LICENSE_API_KEY"

var (
	licenseOnce sync.Once
	licenseErr  error
)

// InitLicense registers the UniOffice license key with the document library.
// It must run before any Render call; registration happens at most once per
// process.
func InitLicense(apiKey string) error {
	if apiKey == "" {
		return fmt.Errorf("%s environment variable is required to write documents", LicenseEnvVar)
	}

	licenseOnce.Do(func() {
		licenseErr = license.SetMeteredKey(apiKey)
	})
	if licenseErr != nil {
		return fmt.Errorf("failed to register document license: %w", licenseErr)
	}
	return nil
}

// InitLicenseFromEnv registers the license key read from the environment.
func InitLicenseFromEnv() error {
	return InitLicense(os.Getenv(LicenseEnvVar))
}
