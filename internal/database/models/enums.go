package models

// ProfileRole is the discipline a participant signs up with
type ProfileRole string

const (
	ProfileRoleDeveloper ProfileRole = "developer"
	ProfileRoleDesigner  ProfileRole = "designer"
	ProfileRoleArtist    ProfileRole = "artist"
	ProfileRoleSound     ProfileRole = "sound"
)

// ProfileRoles lists every accepted role in display order
var ProfileRoles = []ProfileRole{
	ProfileRoleDeveloper,
	ProfileRoleDesigner,
	ProfileRoleArtist,
	ProfileRoleSound,
}

// TeamType is either a solo participant or a team of up to four
type TeamType string

const (
	TeamTypeIndividual TeamType = "individual"
	TeamTypeTeam       TeamType = "team"
)

// MemberStatus is derived for each roster entry, never stored
type MemberStatus string

const (
	MemberStatusActive      MemberStatus = "active"
	MemberStatusInvited     MemberStatus = "invited"
	MemberStatusAdminAdded  MemberStatus = "admin_added"
	MemberStatusFormApplied MemberStatus = "form_applied"
)

// UserSource records how a user row came to exist
type UserSource string

const (
	UserSourceForm  UserSource = "form"
	UserSourceAdmin UserSource = "admin"
	UserSourceTeam  UserSource = "team"
)

// ApplicationStatus defines the review state of an application
type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusApproved ApplicationStatus = "approved"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

// SubmissionStatus defines the lifecycle of a jam submission
type SubmissionStatus string

const (
	SubmissionStatusDraft     SubmissionStatus = "draft"
	SubmissionStatusSubmitted SubmissionStatus = "submitted"
	SubmissionStatusReviewed  SubmissionStatus = "reviewed"
)

// IsValid checks if the ProfileRole is valid
func (r ProfileRole) IsValid() bool {
	switch r {
	case ProfileRoleDeveloper, ProfileRoleDesigner, ProfileRoleArtist, ProfileRoleSound:
		return true
	}
	return false
}

// IsValid checks if the TeamType is valid
func (t TeamType) IsValid() bool {
	switch t {
	case TeamTypeIndividual, TeamTypeTeam:
		return true
	}
	return false
}

// IsValid checks if the MemberStatus is valid
func (s MemberStatus) IsValid() bool {
	switch s {
	case MemberStatusActive, MemberStatusInvited, MemberStatusAdminAdded, MemberStatusFormApplied:
		return true
	}
	return false
}

// IsValid checks if the UserSource is valid
func (s UserSource) IsValid() bool {
	switch s {
	case UserSourceForm, UserSourceAdmin, UserSourceTeam:
		return true
	}
	return false
}

// IsValid checks if the ApplicationStatus is valid
func (s ApplicationStatus) IsValid() bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusApproved, ApplicationStatusRejected:
		return true
	}
	return false
}

// IsValid checks if the SubmissionStatus is valid
func (s SubmissionStatus) IsValid() bool {
	switch s {
	case SubmissionStatusDraft, SubmissionStatusSubmitted, SubmissionStatusReviewed:
		return true
	}
	return false
}
