package tasks

import (
	"fmt"

	"github.com/mikestefanello/backlite"
)

// TypeInfo describes a task that can be triggered by name.
type TypeInfo struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Queue       string `json:"queue"`
}

// Types lists the tasks that can be run on demand.
func Types() []TypeInfo {
	return []TypeInfo{
		{
			Type:        "sync_content",
			Description: "Refresh the local snapshot from the CMS",
			Queue:       SyncContentTask{}.Config().Name,
		},
		{
			Type:        "prune_sync_runs",
			Description: "Delete old sync history, keeping the newest runs",
			Queue:       PruneSyncRunsTask{}.Config().Name,
		},
	}
}

// Params carries optional arguments for NewTask.
type Params struct {
	Trigger string `json:"trigger,omitempty" form:"trigger"`
	Keep    int    `json:"keep,omitempty" form:"keep"`
}

// NewTask builds a task of the named type.
func NewTask(taskType string, params Params) (backlite.Task, error) {
	switch taskType {
	case "sync_content":
		trigger := params.Trigger
		if trigger == "" {
			trigger = "manual"
		}
		return SyncContentTask{Trigger: trigger}, nil
	case "prune_sync_runs":
		if params.Keep < 0 {
			return nil, fmt.Errorf("keep must not be negative")
		}
		return PruneSyncRunsTask{Keep: params.Keep}, nil
	default:
		return nil, fmt.Errorf("unknown task type: %s", taskType)
	}
}

// StatusString renders a backlite status for API responses.
func StatusString(status backlite.TaskStatus) string {
	switch status {
	case backlite.TaskStatusPending:
		return "pending"
	case backlite.TaskStatusRunning:
		return "running"
	case backlite.TaskStatusSuccess:
		return "success"
	case backlite.TaskStatusFailure:
		return "failure"
	case backlite.TaskStatusNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}
