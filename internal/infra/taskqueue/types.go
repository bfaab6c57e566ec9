package taskqueue

import "time"

type ReminderTask struct {
	ItemID     string    `json:"-"`
	DateKey    string    `json:"-"`
	ScheduleAt time.Time `json:"-"`

	ItemType     string  `json:"item_type"`
	TaskID       string  `json:"task_id"`
	TargetOunces float64 `json:"target_ounces,omitempty"`
	Message      string  `json:"message"`
}

type TaskResponse struct {
	Name         string    `json:"name"`
	ScheduleTime time.Time `json:"schedule_time"`
	CreateTime   time.Time `json:"create_time"`
}

type TinyTasksRequest struct {
	Task TinyTask `json:"task"`
}

type TinyTask struct {
	HTTPRequest  TinyTasksHTTPRequest `json:"httpRequest"`
	ScheduleTime string               `json:"scheduleTime,omitempty"`
}

type TinyTasksHTTPRequest struct {
	Body    string            `json:"body"`
	Headers map[string]string `json:"headers,omitempty"`
}

type TinyTasksResponse struct {
	Name         string `json:"name"`
	ScheduleTime string `json:"scheduleTime"`
	CreateTime   string `json:"createTime"`
}
