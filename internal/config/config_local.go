//go:build !gcloud

package config

// Validate checks the local task queue settings. An unset TINY_TASKS_URL is
// allowed: reminder registration is simply disabled.
func (c *TaskQueueConfig) Validate() error {
	return nil
}
