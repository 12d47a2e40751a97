package pipeline

// Role names the policy that owns a lead's conversation.
type Role string

const (
	RoleHunter     Role = "hunter"
	RoleCloser     Role = "closer"
	RoleOnboarding Role = "onboarding"
	RoleCS         Role = "cs"
	RoleHuman      Role = "human"
)

// Values implements ent's EnumValues.
func (Role) Values() []string {
	return []string{
		string(RoleHunter), string(RoleCloser), string(RoleOnboarding),
		string(RoleCS), string(RoleHuman),
	}
}

// AgentFor selects the agent role from the lead's current stage.
func AgentFor(stage Stage) Role {
	switch stage {
	case StageNew, StageContacted, StageQualifying, StageScraped, StageNurturing:
		return RoleHunter
	case StageQualified, StagePresenting, StageNegotiating:
		return RoleCloser
	case StageWon:
		return RoleOnboarding
	case StageActive:
		return RoleCS
	default:
		return RoleHunter
	}
}
