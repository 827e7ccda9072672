package infra

import (
	"github.com/secmon-lab/batchtoken/pkg/domain/interfaces"
	"github.com/secmon-lab/batchtoken/pkg/repository/memory"
)

type Clients struct {
	githubApp  interfaces.GitHubApp
	directory  interfaces.RepoDirectory
	tokenCache interfaces.TokenCache
	bqClient   interfaces.BigQuery
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{
		directory:  memory.NewDirectory(),
		tokenCache: memory.NewTokenCache(),
	}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) GitHubApp() interfaces.GitHubApp {
	return x.githubApp
}
func (x *Clients) Directory() interfaces.RepoDirectory {
	return x.directory
}
func (x *Clients) TokenCache() interfaces.TokenCache {
	return x.tokenCache
}
func (x *Clients) BigQuery() interfaces.BigQuery {
	return x.bqClient
}

func WithGitHubApp(client interfaces.GitHubApp) Option {
	return func(x *Clients) {
		x.githubApp = client
	}
}

func WithDirectory(dir interfaces.RepoDirectory) Option {
	return func(x *Clients) {
		x.directory = dir
	}
}

func WithTokenCache(cache interfaces.TokenCache) Option {
	return func(x *Clients) {
		x.tokenCache = cache
	}
}

func WithBigQuery(client interfaces.BigQuery) Option {
	return func(x *Clients) {
		x.bqClient = client
	}
}
