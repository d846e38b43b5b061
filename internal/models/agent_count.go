package models

// AgentCount is the number of requests attributed to one agent family.
type AgentCount struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}
