package types

import "github.com/m-mizutani/goerr/v2"

var (
	ErrInvalidOption = goerr.New("invalid option")

	// ErrRepoNotFound means the requested repository is not in the current
	// directory snapshot. Surfaced to the caller as-is, no retry.
	ErrRepoNotFound = goerr.New("repository not found in directory")

	// ErrGitHubUnavailable means enumeration or token issuance could not
	// reach GitHub at all. A directory refresh aborts and keeps the previous
	// snapshot when this occurs.
	ErrGitHubUnavailable = goerr.New("github is unreachable")

	// ErrGitHubAPI means GitHub rejected the request (non-2xx) after the
	// client's own retry policy was exhausted. Carries "status" and the
	// response message as goerr values.
	ErrGitHubAPI = goerr.New("github api error")

	// ErrInconsistentSnapshot means the directory and the batch partitioner
	// disagreed about a repository. This is an internal invariant violation,
	// not a normal runtime condition.
	ErrInconsistentSnapshot = goerr.New("directory snapshot inconsistency")
)
