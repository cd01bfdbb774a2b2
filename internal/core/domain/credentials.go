package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// CredentialsSource selects where signing credentials are looked up.
type CredentialsSource string

const (
	// CredentialsSourceLocal reads credentials from the project's credentials.json.
	CredentialsSourceLocal CredentialsSource = "local"
	// CredentialsSourceRemote uses credentials stored on the build service.
	CredentialsSourceRemote CredentialsSource = "remote"
	// CredentialsSourceAuto lets the resolver decide, prompting when needed.
	CredentialsSourceAuto CredentialsSource = "auto"
)

// ParseCredentialsSource parses a credentials source name. An empty value means auto.
func ParseCredentialsSource(s string) (CredentialsSource, error) {
	switch CredentialsSource(strings.ToLower(strings.TrimSpace(s))) {
	case "", CredentialsSourceAuto:
		return CredentialsSourceAuto, nil
	case CredentialsSourceLocal:
		return CredentialsSourceLocal, nil
	case CredentialsSourceRemote:
		return CredentialsSourceRemote, nil
	default:
		return "", zerr.With(zerr.Wrap(ErrConfiguration, "unknown credentials source, expected local, remote or auto"),
			"credentials_source", s)
	}
}

// CredentialKind is the type of signing identity a reference points to.
type CredentialKind string

const (
	// CredentialKindKeystore is an Android upload keystore.
	CredentialKindKeystore CredentialKind = "keystore"
	// CredentialKindDistribution is an iOS distribution certificate with its provisioning profile.
	CredentialKindDistribution CredentialKind = "distribution"
)

// CredentialRef is an opaque handle to a resolved signing identity.
// Local references carry the path of the credential material; remote references carry
// the identifier assigned by the build service.
type CredentialRef struct {
	ID     string            `json:"id"`
	Kind   CredentialKind    `json:"kind"`
	Source CredentialsSource `json:"source"`
}

// IsZero reports whether the reference is unresolved.
func (r CredentialRef) IsZero() bool {
	return r.ID == ""
}

// CredentialKindFor returns the credential kind a platform signs with.
func CredentialKindFor(p Platform) CredentialKind {
	if p == PlatformIOS {
		return CredentialKindDistribution
	}
	return CredentialKindKeystore
}

// Keystore describes an Android keystore stored in the project.
type Keystore struct {
	Path             string `json:"keystorePath"`
	KeystorePassword string `json:"keystorePassword"`
	KeyAlias         string `json:"keyAlias"`
	KeyPassword      string `json:"keyPassword"`
}

// DistributionCertificate describes an iOS distribution certificate stored in the project.
type DistributionCertificate struct {
	Path     string `json:"path"`
	Password string `json:"password"`
}

// IOSCredentials holds the local iOS signing material.
type IOSCredentials struct {
	ProvisioningProfilePath string                  `json:"provisioningProfilePath"`
	DistributionCertificate DistributionCertificate `json:"distributionCertificate"`
}

// AndroidCredentials holds the local Android signing material.
type AndroidCredentials struct {
	Keystore Keystore `json:"keystore"`
}

// LocalCredentials mirrors the layout of a project's credentials.json file.
type LocalCredentials struct {
	Android *AndroidCredentials `json:"android,omitempty"`
	IOS     *IOSCredentials     `json:"ios,omitempty"`
}

// RemoteCredential is a credential record held by the build service.
type RemoteCredential struct {
	ID       string         `json:"id"`
	Platform Platform       `json:"platform"`
	Kind     CredentialKind `json:"kind"`
}
