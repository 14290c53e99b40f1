package usecasecontract

import "time"

// IConfigProvider exposes the configuration values usecases need.
type IConfigProvider interface {
	GetAppBaseURL() string
	GetAccessTokenExpiry() time.Duration
	GetRefreshTokenExpiry() time.Duration
	GetFeedCacheTTL() time.Duration
}
