// Package domain contains the core domain models for build orchestration.
package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// Platform identifies a mobile target platform.
type Platform string

const (
	// PlatformAndroid is the Android platform.
	PlatformAndroid Platform = "android"
	// PlatformIOS is the iOS platform.
	PlatformIOS Platform = "ios"
)

// selectorAll selects every supported platform.
const selectorAll = "all"

// Platforms lists all supported platforms in their fixed dispatch order.
var Platforms = []Platform{PlatformAndroid, PlatformIOS}

// String returns the platform label.
func (p Platform) String() string {
	return string(p)
}

// DisplayName returns the human-readable platform name used in reports.
func (p Platform) DisplayName() string {
	switch p {
	case PlatformAndroid:
		return "Android"
	case PlatformIOS:
		return "iOS"
	default:
		return string(p)
	}
}

// ParsePlatformSelector resolves a selector (android, ios or all) to the platforms it
// names. The result is always ordered Android before iOS.
func ParsePlatformSelector(selector string) ([]Platform, error) {
	switch strings.ToLower(strings.TrimSpace(selector)) {
	case string(PlatformAndroid):
		return []Platform{PlatformAndroid}, nil
	case string(PlatformIOS):
		return []Platform{PlatformIOS}, nil
	case selectorAll:
		return []Platform{PlatformAndroid, PlatformIOS}, nil
	default:
		return nil, zerr.With(zerr.Wrap(ErrConfiguration, "unknown platform, expected android, ios or all"),
			"platform", selector)
	}
}
