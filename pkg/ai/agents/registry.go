package agents

import (
	"github.com/jordanlanch/salesagent/pkg/ai/llm"
	"github.com/jordanlanch/salesagent/pkg/logger"
	"github.com/jordanlanch/salesagent/pkg/metrics"
	"github.com/jordanlanch/salesagent/pkg/pipeline"
)

// Registry holds one agent per AI role.
type Registry struct {
	agents map[pipeline.Role]*Agent
}

// NewRegistry builds the Hunter, Closer, Onboarding and CS agents.
func NewRegistry(client llm.Client, runner ToolRunner, maxRounds int, log logger.Logger, m *metrics.Metrics) *Registry {
	r := &Registry{agents: make(map[pipeline.Role]*Agent, len(prompts))}
	for role := range prompts {
		// prompts only holds known roles, New cannot fail here
		a, _ := New(role, client, runner, maxRounds, log, m)
		r.agents[role] = a
	}
	return r
}

// For returns the agent responsible for stage.
func (r *Registry) For(stage pipeline.Stage) *Agent {
	return r.agents[pipeline.AgentFor(stage)]
}

// Roles lists the registered roles, for health reporting.
func (r *Registry) Roles() []pipeline.Role {
	roles := make([]pipeline.Role, 0, len(r.agents))
	for _, role := range []pipeline.Role{pipeline.RoleHunter, pipeline.RoleCloser, pipeline.RoleOnboarding, pipeline.RoleCS} {
		if _, ok := r.agents[role]; ok {
			roles = append(roles, role)
		}
	}
	return roles
}
