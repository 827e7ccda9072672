package memory_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/batchtoken/pkg/domain/model"
	"github.com/secmon-lab/batchtoken/pkg/domain/types"
	"github.com/secmon-lab/batchtoken/pkg/repository"
	"github.com/secmon-lab/batchtoken/pkg/repository/memory"
)

func TestDirectoryLookup(t *testing.T) {
	dir := memory.NewDirectory()
	gt.NoError(t, dir.Replace([]*model.Repository{
		{FullName: "blue/alpha", ID: 1, InstallID: 100},
		{FullName: "blue/beta", ID: 2, InstallID: 100},
		{FullName: "orange/gamma", ID: 3, InstallID: 200},
	}))

	t.Run("found", func(t *testing.T) {
		rec := gt.R1(dir.Lookup("blue/beta")).NoError(t)
		gt.V(t, rec.ID).Equal(2)
		gt.V(t, rec.InstallID).Equal(types.GitHubAppInstallID(100))
	})

	t.Run("not found", func(t *testing.T) {
		_, err := dir.Lookup("ghost-org/ghost-repo")
		gt.Error(t, err)
		gt.True(t, errors.Is(err, repository.ErrNotFound))
	})

	t.Run("size counts all installations", func(t *testing.T) {
		gt.V(t, dir.Size()).Equal(3)
	})
}

func TestDirectoryListByInstall(t *testing.T) {
	dir := memory.NewDirectory()

	// Insert out of order to verify canonical sorting
	gt.NoError(t, dir.Replace([]*model.Repository{
		{FullName: "org/zeta", ID: 1, InstallID: 100},
		{FullName: "org/alpha", ID: 2, InstallID: 100},
		{FullName: "org/mid", ID: 3, InstallID: 100},
		{FullName: "other/repo", ID: 4, InstallID: 200},
	}))

	t.Run("ordered lexicographically", func(t *testing.T) {
		names := dir.ListByInstall(100)
		gt.A(t, names).Length(3)
		gt.V(t, names[0]).Equal("org/alpha")
		gt.V(t, names[1]).Equal("org/mid")
		gt.V(t, names[2]).Equal("org/zeta")
	})

	t.Run("stable across calls", func(t *testing.T) {
		first := dir.ListByInstall(100)
		second := dir.ListByInstall(100)
		gt.V(t, first).Equal(second)
	})

	t.Run("unknown installation yields empty list", func(t *testing.T) {
		gt.A(t, dir.ListByInstall(999)).Length(0)
	})

	t.Run("returned slice is a copy", func(t *testing.T) {
		names := dir.ListByInstall(100)
		names[0] = "mutated/name"
		gt.V(t, dir.ListByInstall(100)[0]).Equal("org/alpha")
	})
}

func TestDirectoryReplace(t *testing.T) {
	t.Run("replace swaps the whole snapshot", func(t *testing.T) {
		dir := memory.NewDirectory()
		gt.NoError(t, dir.Replace([]*model.Repository{
			{FullName: "org/old", ID: 1, InstallID: 100},
		}))
		gt.NoError(t, dir.Replace([]*model.Repository{
			{FullName: "org/new", ID: 2, InstallID: 100},
		}))

		_, err := dir.Lookup("org/old")
		gt.True(t, errors.Is(err, repository.ErrNotFound))
		gt.R1(dir.Lookup("org/new")).NoError(t)
		gt.V(t, dir.Size()).Equal(1)
	})

	t.Run("duplicated full name is rejected", func(t *testing.T) {
		dir := memory.NewDirectory()
		err := dir.Replace([]*model.Repository{
			{FullName: "org/dup", ID: 1, InstallID: 100},
			{FullName: "org/dup", ID: 2, InstallID: 100},
		})
		gt.Error(t, err)
		gt.True(t, errors.Is(err, repository.ErrInvalidInput))
	})

	t.Run("empty full name is rejected", func(t *testing.T) {
		dir := memory.NewDirectory()
		err := dir.Replace([]*model.Repository{
			{FullName: "", ID: 1, InstallID: 100},
		})
		gt.True(t, errors.Is(err, repository.ErrInvalidInput))
	})
}

func TestDirectoryConcurrentReads(t *testing.T) {
	dir := memory.NewDirectory()

	var records []*model.Repository
	for i := 0; i < 100; i++ {
		records = append(records, &model.Repository{
			FullName:  types.RepoFullName(fmt.Sprintf("org/repo-%03d", i)),
			ID:        int64(i),
			InstallID: 100,
		})
	}
	gt.NoError(t, dir.Replace(records))

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 50; i++ {
			_ = dir.Replace(records)
		}
	}()

	// Readers must see a complete snapshot during concurrent replaces.
	for i := 0; i < 50; i++ {
		names := dir.ListByInstall(100)
		gt.A(t, names).Length(100)
	}
	<-done
}
