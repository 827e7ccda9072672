package types

import "log/slog"

type (
	GitHubAppID         int64
	GitHubAppInstallID  int64
	GitHubAppSecret     string
	GitHubAppPrivateKey string
	RepoFullName        string
	TokenValue          string
)

// MaxBatchSize is the hard limit of repositories that GitHub accepts for a
// single installation access token request.
const MaxBatchSize = 500

func (x GitHubAppSecret) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubAppSecret) String() string {
	return "***********"
}

func (x GitHubAppPrivateKey) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubAppPrivateKey) String() string {
	return "***********"
}

func (x TokenValue) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x TokenValue) String() string {
	return "***********"
}

// Unmask returns the raw token secret. Callers use it to build Authorization
// headers or API responses and must not log the result.
func (x TokenValue) Unmask() string {
	return string(x)
}

func (x RepoFullName) String() string {
	return string(x)
}
