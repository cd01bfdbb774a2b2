package credentials

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/dispatch/internal/core/domain"
	"go.trai.ch/zerr"
)

// ReadLocal reads credentials.json from projectDir. It returns nil if the file does not exist.
func ReadLocal(projectDir string) (*domain.LocalCredentials, error) {
	path := filepath.Join(projectDir, domain.CredentialsFileName)

	data, err := os.ReadFile(path) //nolint:gosec // path is derived from the project directory
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(errors.Join(domain.ErrCredential, domain.ErrCredentialsFileRead), err.Error()),
			"path", path)
	}

	var creds domain.LocalCredentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return nil, zerr.With(zerr.Wrap(errors.Join(domain.ErrCredential, domain.ErrCredentialsFileRead), err.Error()),
			"path", path)
	}
	return &creds, nil
}

// hasPlatform reports whether creds carry an entry for p.
func hasPlatform(creds *domain.LocalCredentials, p domain.Platform) bool {
	if creds == nil {
		return false
	}
	switch p {
	case domain.PlatformAndroid:
		return creds.Android != nil
	case domain.PlatformIOS:
		return creds.IOS != nil
	default:
		return false
	}
}

// localRef returns the reference to the platform's local signing material.
func localRef(creds *domain.LocalCredentials, p domain.Platform) domain.CredentialRef {
	ref := domain.CredentialRef{Kind: domain.CredentialKindFor(p), Source: domain.CredentialsSourceLocal}
	if p == domain.PlatformIOS {
		ref.ID = creds.IOS.DistributionCertificate.Path
	} else {
		ref.ID = creds.Android.Keystore.Path
	}
	return ref
}

// validate checks that the local material referenced by creds is usable.
func validate(projectDir string, creds *domain.LocalCredentials, p domain.Platform) error {
	var problems []error

	requireField := func(value, field string) {
		if value == "" {
			problems = append(problems, zerr.With(zerr.New("missing field"), "field", field))
		}
	}
	requireFile := func(path, field string) {
		if path == "" {
			requireField(path, field)
			return
		}
		if !filepath.IsAbs(path) {
			path = filepath.Join(projectDir, path)
		}
		if _, err := os.Stat(path); err != nil {
			problems = append(problems, zerr.With(zerr.Wrap(err, "file not accessible"), "field", field))
		}
	}

	switch p {
	case domain.PlatformAndroid:
		ks := creds.Android.Keystore
		requireFile(ks.Path, "android.keystore.keystorePath")
		requireField(ks.KeystorePassword, "android.keystore.keystorePassword")
		requireField(ks.KeyAlias, "android.keystore.keyAlias")
		requireField(ks.KeyPassword, "android.keystore.keyPassword")
	case domain.PlatformIOS:
		ios := creds.IOS
		requireFile(ios.ProvisioningProfilePath, "ios.provisioningProfilePath")
		requireFile(ios.DistributionCertificate.Path, "ios.distributionCertificate.path")
		requireField(ios.DistributionCertificate.Password, "ios.distributionCertificate.password")
	}

	if len(problems) == 0 {
		return nil
	}
	return zerr.With(zerr.Wrap(errors.Join(append([]error{domain.ErrCredential}, problems...)...),
		"invalid credentials in "+domain.CredentialsFileName), "platform", p)
}
