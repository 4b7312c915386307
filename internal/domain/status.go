package domain

import "strings"

type WorkItemType string

const (
	WorkItemTypeDemand  WorkItemType = "demand"
	WorkItemTypeProject WorkItemType = "project"
	WorkItemTypeOM      WorkItemType = "om"
)

// WorkItemTypes в порядке отображения
var WorkItemTypes = []WorkItemType{WorkItemTypeDemand, WorkItemTypeProject, WorkItemTypeOM}

// Первый статус в каждом списке - статус по умолчанию
var validStatuses = map[WorkItemType][]string{
	WorkItemTypeDemand: {
		"draft",
		"submitted",
		"screened",
		"qualified-approved",
		"complete",
		"deferred",
		"rejected",
	},
	WorkItemTypeProject: {
		"initiating",
		"planning",
		"executing",
		"delivering",
		"closing",
	},
	WorkItemTypeOM: {
		"planned",
		"active",
		"on-hold",
		"completed",
	},
}

const fallbackStatus = "draft"

func (t WorkItemType) IsValid() bool {
	_, ok := validStatuses[t]
	return ok
}

// ValidStatusesFor возвращает допустимые статусы для типа; для неизвестного типа - пустой срез
func ValidStatusesFor(t WorkItemType) []string {
	statuses, ok := validStatuses[t]
	if !ok {
		return []string{}
	}
	out := make([]string, len(statuses))
	copy(out, statuses)
	return out
}

// DefaultStatusFor возвращает начальный статус для типа
func DefaultStatusFor(t WorkItemType) string {
	statuses, ok := validStatuses[t]
	if !ok || len(statuses) == 0 {
		return fallbackStatus
	}
	return statuses[0]
}

// IsValidStatus проверяет, что статус входит в словарь типа
func IsValidStatus(t WorkItemType, status string) bool {
	for _, s := range validStatuses[t] {
		if s == status {
			return true
		}
	}
	return false
}

// FormatLabel превращает "qualified-approved" в "Qualified Approved"
func FormatLabel(status string) string {
	words := strings.Split(status, "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
