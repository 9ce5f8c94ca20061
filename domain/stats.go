package domain

// HubStats is a point-in-time view of the membership tables.
type HubStats struct {
	Connections int `json:"connections"`
	Rooms       int `json:"rooms"`
	Workspaces  int `json:"workspaces"`
	OnlineUsers int `json:"onlineUsers"`
	// Backlogs are sampled lengths of the dispatch queues.
	PartitionBacklog int `json:"partitionBacklog"`
	TaskBacklog      int `json:"taskBacklog"`
}
