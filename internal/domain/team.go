package domain

import "time"

type Team struct {
	ID          string
	Name        string `validate:"required,max=100"`
	Description string
	MemberCount int
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

type TeamUpdate struct {
	Name        *string
	Description *string
}

// TeamRoster - команда с активными участниками и их загрузкой
type TeamRoster struct {
	Team    *Team
	Members []*TeamMemberWithStats
}
