package service

import (
	"time"

	"github.com/bagdasarian/resource-dashboard/internal/domain"
	"github.com/shopspring/decimal"
)

// Пороги классификации загрузки, в процентах
const (
	overCapacityThreshold = 100
	busyThreshold         = 70
	availableThreshold    = 40
)

var hundred = decimal.NewFromInt(100)

// AllocatedHours суммирует часы действующих на момент now аллокаций участника.
// Будущие и завершившиеся аллокации не учитываются.
func AllocatedHours(memberID string, allocations []*domain.Allocation, now time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, a := range allocations {
		if a.TeamMemberID != memberID || !a.IsActiveAt(now) {
			continue
		}
		total = total.Add(a.HoursPerWeek)
	}
	return total
}

// AvailableHours может быть отрицательным при перегрузке
func AvailableHours(weeklyHours int, allocated decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(int64(weeklyHours)).Sub(allocated)
}

// CapacityPercentage округляет до целого (половина вверх); при weeklyHours <= 0 возвращает 0
func CapacityPercentage(allocated decimal.Decimal, weeklyHours int) int {
	if weeklyHours <= 0 {
		return 0
	}
	pct := allocated.Mul(hundred).Div(decimal.NewFromInt(int64(weeklyHours)))
	return int(pct.Round(0).IntPart())
}

func ClassifyCapacity(percentage int) domain.CapacityLevel {
	switch {
	case percentage >= overCapacityThreshold:
		return domain.CapacityOver
	case percentage >= busyThreshold:
		return domain.CapacityBusy
	case percentage >= availableThreshold:
		return domain.CapacityAvailable
	default:
		return domain.CapacityLight
	}
}

// TotalAllocatedHours суммирует все аллокации рабочего элемента без фильтра по датам,
// в отличие от AllocatedHours.
func TotalAllocatedHours(workItemID string, allocations []*domain.Allocation) decimal.Decimal {
	total := decimal.Zero
	for _, a := range allocations {
		if a.WorkItemID == workItemID {
			total = total.Add(a.HoursPerWeek)
		}
	}
	return total
}

// MemberStats считает производные метрики участника по снимку аллокаций
func MemberStats(member *domain.TeamMember, allocations []*domain.Allocation, now time.Time) *domain.TeamMemberWithStats {
	allocated := AllocatedHours(member.ID, allocations, now)
	pct := CapacityPercentage(allocated, member.WeeklyHours)

	return &domain.TeamMemberWithStats{
		TeamMember:         member,
		AllocatedHours:     allocated,
		AvailableHours:     AvailableHours(member.WeeklyHours, allocated),
		CapacityPercentage: pct,
		CapacityLevel:      ClassifyCapacity(pct),
	}
}

func membersWithStats(members []*domain.TeamMember, allocations []*domain.Allocation, now time.Time) []*domain.TeamMemberWithStats {
	result := make([]*domain.TeamMemberWithStats, 0, len(members))
	for _, m := range members {
		result = append(result, MemberStats(m, allocations, now))
	}
	return result
}

func memberIDs(members []*domain.TeamMember) []string {
	ids := make([]string, 0, len(members))
	for _, m := range members {
		ids = append(ids, m.ID)
	}
	return ids
}
