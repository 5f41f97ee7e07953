package apierrors

const (
	MsgUnauthorized = "unauthorized"

	MsgInvalidTaskPayload    = "invalidTaskPayload"
	MsgInvalidTeamPayload    = "invalidTeamPayload"
	MsgInvalidSectionPayload = "invalidSectionPayload"
	MsgInvalidProfilePayload = "invalidProfilePayload"
	MsgInvalidActiveTeam     = "invalidActiveTeam"
	MsgInvalidMessagePayload = "invalidMessagePayload"

	MsgTaskNotFound      = "taskNotFound"
	MsgTeamNotFound      = "teamNotFound"
	MsgUserNotFound      = "userNotFound"
	MsgSectionNotFound   = "sectionNotFound"
	MsgSectionExists     = "sectionExists"
	MsgLastSection       = "lastSection"
	MsgNotTeamMember     = "notTeamMember"
	MsgNotTeamAdmin      = "notTeamAdmin"
	MsgAssigneeNotMember = "assigneeNotMember"
	MsgInvalidProfile    = "invalidProfile"
	MsgInvalidMessage    = "invalidMessage"
	MsgInvalidRecipient  = "invalidRecipient"

	MsgFailListTask      = "errorListTask"
	MsgFailGetTask       = "failGetTask"
	MsgFailCreateTask    = "failCreateTask"
	MsgFailUpdateTask    = "failUpdateTask"
	MsgFailToggleTask    = "failToggleTask"
	MsgFailDeleteTask    = "failDeleteTask"
	MsgFailListHistory   = "failListHistory"
	MsgFailListTeams     = "failListTeams"
	MsgFailGetTeam       = "failGetTeam"
	MsgFailCreateTeam    = "failCreateTeam"
	MsgFailDeleteTeam    = "failDeleteTeam"
	MsgFailJoinTeam      = "failJoinTeam"
	MsgFailLeaveTeam     = "failLeaveTeam"
	MsgFailListMembers   = "failListMembers"
	MsgFailRemoveMember  = "failRemoveMember"
	MsgFailUpdateSection = "failUpdateSection"
	MsgFailInviteLink    = "failInviteLink"
	MsgFailComputeKPI    = "failComputeKPI"
	MsgFailSignIn        = "failSignIn"
	MsgFailGetUser       = "failGetUser"
	MsgFailUpdateUser    = "failUpdateUser"
	MsgFailListChats     = "failListChats"
	MsgFailListMessages  = "failListMessages"
	MsgFailSendMessage   = "failSendMessage"
	MsgFailMarkSeen      = "failMarkSeen"
)
