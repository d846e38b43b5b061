package models

// Report is the result of one pipeline run: the minute grid for the selected
// date plus the tallies shown by the summary block.
//
// Example JSON:
//
//	{
//	  "runId": "01ARZ3NDEKTSV4RRFFQ69G5FAV",
//	  "selection": "2009-12-18",
//	  "files": ["/var/log/apache2/access.log", "/var/log/apache2/access.log.1.gz"],
//	  "buckets": {
//	    "16:17": 2,
//	    "16:18": 1
//	  },
//	  "totalRequests": 3,
//	  "activeMinutes": 2,
//	  "topAgents": [
//	    {"name": "curl", "count": 2},
//	    {"name": "Chrome", "count": 1}
//	  ]
//	}
type Report struct {
	RunID         string        `json:"runId"`
	Selection     DateSelection `json:"selection"`
	Files         []string      `json:"files"`
	Buckets       BucketMap     `json:"buckets"`
	TotalRequests int64         `json:"totalRequests"`
	ActiveMinutes int           `json:"activeMinutes"`
	TopAgents     []AgentCount  `json:"topAgents"`
}

// NewReport fills the derived totals from buckets.
func NewReport(runID string, selection DateSelection, files []string, buckets BucketMap, topAgents []AgentCount) *Report {
	if buckets == nil {
		buckets = NewBucketMap()
	}
	if topAgents == nil {
		topAgents = []AgentCount{}
	}
	return &Report{
		RunID:         runID,
		Selection:     selection,
		Files:         files,
		Buckets:       buckets,
		TotalRequests: buckets.Total(),
		ActiveMinutes: buckets.Active(),
		TopAgents:     topAgents,
	}
}
