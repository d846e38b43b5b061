package aggregators

import (
	"sort"
	"strings"

	"timegrid/internal/models"

	"github.com/mileusna/useragent"
)

const unknownAgent = "-"

// AgentSummarizer tallies requests per agent family. It is fed from the same
// pass that builds the bucket map.
type AgentSummarizer interface {
	Observe(record models.Record)
	// Top returns up to n families by descending count, then name.
	Top(n int) []models.AgentCount
}

type agentSummarizer struct {
	family func(agent string) string
	counts map[string]int64
}

func NewAgentSummarizer() AgentSummarizer {
	return &agentSummarizer{
		family: normalizeUserAgent,
		counts: make(map[string]int64),
	}
}

func (s *agentSummarizer) Observe(record models.Record) {
	if !record.HasAgent {
		return
	}
	s.counts[s.family(record.Agent)]++
}

func (s *agentSummarizer) Top(n int) []models.AgentCount {
	result := make([]models.AgentCount, 0, len(s.counts))
	for name, count := range s.counts {
		result = append(result, models.AgentCount{Name: name, Count: count})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Name < result[j].Name
	})
	if n >= 0 && len(result) > n {
		result = result[:n]
	}
	return result
}

// normalizeUserAgent parses the agent to extract its family, falling back to
// the product token before the first slash.
func normalizeUserAgent(agent string) string {
	agent = strings.TrimSpace(agent)
	if agent == "" || agent == unknownAgent {
		return unknownAgent
	}
	if parsed := useragent.Parse(agent); parsed.Name != "" {
		return parsed.Name
	}
	return productToken(agent)
}

// productToken returns "curl" for "curl/7.0 (x86_64)".
func productToken(agent string) string {
	token, _, _ := strings.Cut(agent, " ")
	token, _, _ = strings.Cut(token, "/")
	if token == "" {
		return agent
	}
	return token
}
