package worker

import "diff-annotator/internal/config"

func NewQueue(cfg *config.Config) Queue {

	if cfg.QueueType == "redis" {
		return NewRedisQueue(
			cfg.RedisAddr,
			"diff_annotator_jobs",
		)
	}

	return NewMemoryQueue(100)
}
