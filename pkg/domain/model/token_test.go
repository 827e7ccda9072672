package model_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/batchtoken/pkg/domain/model"
	"github.com/secmon-lab/batchtoken/pkg/domain/types"
)

func TestScopedTokenIsValid(t *testing.T) {
	now := time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC)
	token := &model.ScopedToken{
		InstallID:  100,
		BatchIndex: 0,
		Value:      "ghs_dummy",
		IssuedAt:   now,
		ExpiresAt:  now.Add(time.Hour),
	}

	gt.True(t, token.IsValid(now))
	gt.True(t, token.IsValid(now.Add(59*time.Minute)))
	gt.False(t, token.IsValid(now.Add(time.Hour)))
	gt.False(t, token.IsValid(now.Add(2*time.Hour)))

	var nilToken *model.ScopedToken
	gt.False(t, nilToken.IsValid(now))
}

func TestTokenValueMasking(t *testing.T) {
	v := types.TokenValue("ghs_supersecret")

	gt.V(t, v.String()).Equal("***********")
	gt.V(t, v.LogValue().Kind()).Equal(slog.KindString)
	gt.V(t, v.LogValue().String()).Equal("***********")
	gt.V(t, v.Unmask()).Equal("ghs_supersecret")
}

func TestDefaultTokenPermissions(t *testing.T) {
	perms := model.DefaultTokenPermissions()
	gt.V(t, perms.Contents).Equal("read")
	gt.V(t, perms.Metadata).Equal("read")
	gt.V(t, perms.Issues).Equal("")
}
