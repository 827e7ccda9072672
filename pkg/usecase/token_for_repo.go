package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/batchtoken/pkg/domain/interfaces"
	"github.com/secmon-lab/batchtoken/pkg/domain/model"
	"github.com/secmon-lab/batchtoken/pkg/domain/types"
	"github.com/secmon-lab/batchtoken/pkg/repository"
	"github.com/secmon-lab/batchtoken/pkg/utils/errutil"
	"github.com/secmon-lab/batchtoken/pkg/utils/logging"
)

// TokenForRepository returns a scoped installation token whose batch covers
// the given repository. A valid cached token is served without any GitHub
// call; otherwise exactly one issuance request is made for the batch, shared
// between concurrent callers of the same batch key.
func (x *UseCase) TokenForRepository(ctx context.Context, fullName types.RepoFullName) (*model.ScopedToken, error) {
	rec, err := x.clients.Directory().Lookup(fullName)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, goerr.Wrap(types.ErrRepoNotFound, "repository is not in the directory",
				goerr.V("fullName", fullName),
			)
		}
		return nil, err
	}

	ordered := x.clients.Directory().ListByInstall(rec.InstallID)
	batchIndex := model.BatchIndexOf(ordered, fullName, x.batchSize)
	if batchIndex < 0 {
		// Lookup succeeded but the installation's own list disagrees. The
		// directory and the partitioner observed different snapshots, which
		// must not happen.
		err := goerr.Wrap(types.ErrInconsistentSnapshot, "repository is missing from its installation's list",
			goerr.V("fullName", fullName),
			goerr.V("installID", rec.InstallID),
		)
		errutil.HandleError(ctx, "directory snapshot inconsistency", err)
		return nil, err
	}

	now := logging.CtxTime(ctx)

	if token := x.clients.TokenCache().Get(rec.InstallID, batchIndex); token.IsValid(now) {
		return token, nil
	}

	key := fmt.Sprintf("%d/%d", rec.InstallID, batchIndex)
	v, err, _ := x.issuance.Do(key, func() (any, error) {
		// A waiter may arrive after the winner already stored a fresh
		// token; re-check before issuing another one.
		if token := x.clients.TokenCache().Get(rec.InstallID, batchIndex); token.IsValid(now) {
			return token, nil
		}
		return x.issueBatchToken(ctx, rec.InstallID, batchIndex, ordered)
	})
	if err != nil {
		return nil, err
	}

	return v.(*model.ScopedToken), nil
}

func (x *UseCase) issueBatchToken(ctx context.Context, installID types.GitHubAppInstallID, batchIndex int, ordered []types.RepoFullName) (*model.ScopedToken, error) {
	batches := model.PartitionRepos(ordered, x.batchSize)
	if batchIndex >= len(batches) {
		return nil, goerr.Wrap(types.ErrInconsistentSnapshot, "batch index out of range",
			goerr.V("installID", installID),
			goerr.V("batchIndex", batchIndex),
			goerr.V("batches", len(batches)),
		)
	}
	members := batches[batchIndex]

	out, err := x.clients.GitHubApp().CreateInstallationToken(ctx, &interfaces.CreateInstallationTokenInput{
		InstallID:    installID,
		Repositories: members,
		Permissions:  x.permissions,
	})
	if err != nil {
		return nil, err
	}

	now := logging.CtxTime(ctx)
	expiresAt := now.Add(x.tokenTTL)
	if !out.ExpiresAt.IsZero() && out.ExpiresAt.Before(expiresAt) {
		// Never serve a cached token past the moment GitHub invalidates it.
		expiresAt = out.ExpiresAt
	}

	token := &model.ScopedToken{
		InstallID:    installID,
		BatchIndex:   batchIndex,
		Repositories: members,
		Value:        out.Token,
		IssuedAt:     now,
		ExpiresAt:    expiresAt,
	}

	x.clients.TokenCache().Put(token)

	logging.From(ctx).Info("Cached new batch token",
		slog.Any("installID", installID),
		slog.Int("batchIndex", batchIndex),
		slog.Int("repoCount", len(members)),
		slog.Time("expiresAt", expiresAt),
	)

	x.auditIssuance(ctx, token)

	return token, nil
}

// auditIssuance records issuance metadata to BigQuery when configured. Audit
// failures are reported but never fail the token path.
func (x *UseCase) auditIssuance(ctx context.Context, token *model.ScopedToken) {
	if x.clients.BigQuery() == nil {
		return
	}

	reqID, ctx := logging.CtxRequestID(ctx)
	record := &model.TokenIssuanceRecord{
		RequestID:  reqID,
		InstallID:  int64(token.InstallID),
		BatchIndex: token.BatchIndex,
		RepoCount:  len(token.Repositories),
		IssuedAt:   token.IssuedAt,
		ExpiresAt:  token.ExpiresAt,
		Timestamp:  token.IssuedAt.UnixMicro(),
	}

	if err := x.insertIssuanceRecord(ctx, record); err != nil {
		errutil.HandleError(ctx, "failed to audit token issuance", err)
	}
}
