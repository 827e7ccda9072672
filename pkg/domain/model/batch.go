package model

import (
	"github.com/secmon-lab/batchtoken/pkg/domain/types"
)

// PartitionRepos splits an ordered list of repository names into contiguous
// batches of batchSize. Every batch is full except possibly the last, which
// holds between 1 and batchSize names. The result is deterministic for a
// given input; batch assignment is only stable while the underlying directory
// snapshot is unchanged.
func PartitionRepos(ordered []types.RepoFullName, batchSize int) [][]types.RepoFullName {
	if batchSize < 1 || len(ordered) == 0 {
		return nil
	}

	batches := make([][]types.RepoFullName, 0, (len(ordered)+batchSize-1)/batchSize)
	for begin := 0; begin < len(ordered); begin += batchSize {
		end := begin + batchSize
		if end > len(ordered) {
			end = len(ordered)
		}
		batches = append(batches, ordered[begin:end])
	}

	return batches
}

// BatchIndexOf returns the zero-based index of the batch that contains target
// under the same partitioning as PartitionRepos, or -1 if target is not in
// the list.
func BatchIndexOf(ordered []types.RepoFullName, target types.RepoFullName, batchSize int) int {
	if batchSize < 1 {
		return -1
	}

	for i, name := range ordered {
		if name == target {
			return i / batchSize
		}
	}

	return -1
}
