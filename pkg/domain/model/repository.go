package model

import (
	"github.com/secmon-lab/batchtoken/pkg/domain/types"
)

// Repository is one record of the directory: a repository visible to the
// GitHub App, keyed by its full name and owned by exactly one installation.
type Repository struct {
	FullName  types.RepoFullName
	ID        int64
	InstallID types.GitHubAppInstallID
}

// GitHubAPIRepository is the subset of the GitHub API repository object that
// the directory needs during enumeration.
type GitHubAPIRepository struct {
	ID       int64
	Owner    string
	Name     string
	FullName string
	Archived bool
	Disabled bool
}
