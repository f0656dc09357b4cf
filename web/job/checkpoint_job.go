// Package job contains scheduled background jobs of the blog backend.
package job

import (
	"techblog/database"
	"techblog/logger"
	"techblog/util/common"
)

// CheckpointJob flushes the SQLite WAL back into the main database file so the
// WAL does not grow unbounded between restarts.
type CheckpointJob struct{}

func NewCheckpointJob() *CheckpointJob {
	return new(CheckpointJob)
}

func (j *CheckpointJob) Run() {
	defer common.Recover("checkpoint job")

	if err := database.Checkpoint(); err != nil {
		logger.Warning("wal checkpoint failed:", err)
	}
}
