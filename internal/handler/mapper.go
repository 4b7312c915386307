package handler

import (
	"time"

	"github.com/bagdasarian/resource-dashboard/internal/domain"
	"github.com/shopspring/decimal"
)

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func formatTimestampPtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatTimestamp(*t)
	return &s
}

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatDate(*t)
	return &s
}

func hoursToHTTP(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}

func domainTeamToHTTP(team *domain.Team) TeamResponse {
	return TeamResponse{
		ID:          team.ID,
		Name:        team.Name,
		Description: team.Description,
		MemberCount: team.MemberCount,
		CreatedAt:   formatTimestamp(team.CreatedAt),
		UpdatedAt:   formatTimestampPtr(team.UpdatedAt),
	}
}

func domainTeamsToHTTP(teams []*domain.Team) []TeamResponse {
	result := make([]TeamResponse, 0, len(teams))
	for _, team := range teams {
		result = append(result, domainTeamToHTTP(team))
	}
	return result
}

func domainRosterToHTTP(roster *domain.TeamRoster) RosterResponse {
	return RosterResponse{
		Team:    domainTeamToHTTP(roster.Team),
		Members: domainMembersWithStatsToHTTP(roster.Members),
	}
}

func httpTeamMemberToDomain(req TeamMemberRequest) *domain.TeamMember {
	member := &domain.TeamMember{
		Name:        req.Name,
		Role:        req.Role,
		Email:       req.Email,
		TeamID:      req.TeamID,
		Skills:      req.Skills,
		WeeklyHours: domain.DefaultWeeklyHours,
		Avatar:      req.Avatar,
		IsActive:    true,
	}
	if req.WeeklyHours != nil {
		member.WeeklyHours = *req.WeeklyHours
	}
	if req.IsActive != nil {
		member.IsActive = *req.IsActive
	}
	return member
}

func httpTeamMemberPatchToDomain(req TeamMemberPatchRequest) domain.TeamMemberUpdate {
	update := domain.TeamMemberUpdate{
		Name:        req.Name,
		Role:        req.Role,
		Email:       req.Email,
		Skills:      req.Skills,
		WeeklyHours: req.WeeklyHours,
		Avatar:      req.Avatar,
		IsActive:    req.IsActive,
	}
	if req.TeamID.Set {
		// null и пустая строка одинаково снимают участника с команды
		teamID := ""
		if req.TeamID.Value != nil {
			teamID = *req.TeamID.Value
		}
		update.TeamID = &teamID
	}
	return update
}

func domainTeamMemberToHTTP(member *domain.TeamMember) TeamMemberResponse {
	skills := member.Skills
	if skills == nil {
		skills = []string{}
	}

	return TeamMemberResponse{
		ID:          member.ID,
		Name:        member.Name,
		Role:        member.Role,
		Email:       member.Email,
		TeamID:      member.TeamID,
		TeamName:    member.TeamName,
		Skills:      skills,
		WeeklyHours: member.WeeklyHours,
		Avatar:      member.Avatar,
		IsActive:    member.IsActive,
		CreatedAt:   formatTimestamp(member.CreatedAt),
		UpdatedAt:   formatTimestampPtr(member.UpdatedAt),
	}
}

func domainMemberWithStatsToHTTP(member *domain.TeamMemberWithStats) TeamMemberWithStatsResponse {
	return TeamMemberWithStatsResponse{
		TeamMemberResponse: domainTeamMemberToHTTP(member.TeamMember),
		AllocatedHours:     hoursToHTTP(member.AllocatedHours),
		AvailableHours:     hoursToHTTP(member.AvailableHours),
		CapacityPercentage: member.CapacityPercentage,
		CapacityLevel:      string(member.CapacityLevel),
		CapacityLabel:      member.CapacityLevel.Label(),
	}
}

func domainMembersWithStatsToHTTP(members []*domain.TeamMemberWithStats) []TeamMemberWithStatsResponse {
	result := make([]TeamMemberWithStatsResponse, 0, len(members))
	for _, member := range members {
		result = append(result, domainMemberWithStatsToHTTP(member))
	}
	return result
}

func httpWorkItemToDomain(req WorkItemRequest) *domain.WorkItem {
	itemType := domain.WorkItemType(req.Type)
	status := req.Status
	if status == "" {
		status = domain.DefaultStatusFor(itemType)
	}

	return &domain.WorkItem{
		Title:          req.Title,
		Description:    req.Description,
		Type:           itemType,
		Priority:       domain.Priority(req.Priority),
		Status:         status,
		EstimatedHours: req.EstimatedHours,
		DueDate:        datePtr(req.DueDate),
		AssignedToID:   req.AssignedToID,
	}
}

// httpWorkItemPatchToDomain: null в dueDate снимает срок, null в assignedToId снимает исполнителя
func httpWorkItemPatchToDomain(req WorkItemPatchRequest) domain.WorkItemUpdate {
	update := domain.WorkItemUpdate{
		Title:          req.Title,
		Description:    req.Description,
		Status:         req.Status,
		EstimatedHours: req.EstimatedHours,
	}
	if req.DueDate.Set {
		if req.DueDate.Value == nil {
			update.ClearDueDate = true
		} else {
			update.DueDate = datePtr(req.DueDate.Value)
		}
	}
	if req.AssignedToID.Set {
		assignee := ""
		if req.AssignedToID.Value != nil {
			assignee = *req.AssignedToID.Value
		}
		update.AssignedToID = &assignee
	}
	if req.Type != nil {
		itemType := domain.WorkItemType(*req.Type)
		update.Type = &itemType
	}
	if req.Priority != nil {
		priority := domain.Priority(*req.Priority)
		update.Priority = &priority
	}
	return update
}

func domainWorkItemToHTTP(item *domain.WorkItem) WorkItemResponse {
	return WorkItemResponse{
		ID:             item.ID,
		Title:          item.Title,
		Description:    item.Description,
		Type:           string(item.Type),
		Priority:       string(item.Priority),
		Status:         item.Status,
		StatusLabel:    domain.FormatLabel(item.Status),
		EstimatedHours: hoursToHTTP(item.EstimatedHours),
		ActualHours:    hoursToHTTP(item.ActualHours),
		DueDate:        formatDatePtr(item.DueDate),
		AssignedToID:   item.AssignedToID,
		AssignedTo:     domainAssigneeToHTTP(item.AssignedTo),
		CreatedAt:      formatTimestamp(item.CreatedAt),
		UpdatedAt:      formatTimestampPtr(item.UpdatedAt),
	}
}

func domainAssigneeToHTTP(assignee *domain.WorkItemAssignee) *AssigneeResponse {
	if assignee == nil {
		return nil
	}
	return &AssigneeResponse{
		ID:     assignee.ID,
		Name:   assignee.Name,
		Avatar: assignee.Avatar,
	}
}

func domainWorkItemsToHTTP(items []*domain.WorkItem) []WorkItemResponse {
	result := make([]WorkItemResponse, 0, len(items))
	for _, item := range items {
		result = append(result, domainWorkItemToHTTP(item))
	}
	return result
}

func domainWorkItemDetailToHTTP(item *domain.WorkItemWithAllocations, now time.Time) WorkItemDetailResponse {
	return WorkItemDetailResponse{
		WorkItemResponse:    domainWorkItemToHTTP(item.WorkItem),
		Allocations:         domainAllocationsToHTTP(item.Allocations, now),
		TotalAllocatedHours: hoursToHTTP(item.TotalAllocatedHours),
	}
}

func httpAllocationToDomain(req AllocationRequest) (*domain.Allocation, error) {
	if req.HoursPerWeek == nil {
		return nil, domain.NewValidationError("hoursPerWeek", "is required")
	}

	return &domain.Allocation{
		TeamMemberID: req.TeamMemberID,
		WorkItemID:   req.WorkItemID,
		HoursPerWeek: *req.HoursPerWeek,
		StartDate:    dateOrZero(req.StartDate),
		EndDate:      datePtr(req.EndDate),
		Notes:        req.Notes,
	}, nil
}

func httpAllocationPatchToDomain(req AllocationPatchRequest) domain.AllocationUpdate {
	update := domain.AllocationUpdate{
		HoursPerWeek: req.HoursPerWeek,
		StartDate:    datePtr(req.StartDate),
		Notes:        req.Notes,
	}
	if req.EndDate.Set {
		if req.EndDate.Value == nil {
			update.ClearEndDate = true
		} else {
			update.EndDate = datePtr(req.EndDate.Value)
		}
	}
	return update
}

func domainAllocationToHTTP(a *domain.Allocation, now time.Time) AllocationResponse {
	return AllocationResponse{
		ID:             a.ID,
		TeamMemberID:   a.TeamMemberID,
		TeamMemberName: a.TeamMemberName,
		WorkItemID:     a.WorkItemID,
		WorkItemTitle:  a.WorkItemTitle,
		HoursPerWeek:   hoursToHTTP(a.HoursPerWeek),
		StartDate:      formatDate(a.StartDate),
		EndDate:        formatDatePtr(a.EndDate),
		Notes:          a.Notes,
		IsActive:       a.IsActiveAt(now),
		CreatedAt:      formatTimestamp(a.CreatedAt),
	}
}

func domainAllocationsToHTTP(allocations []*domain.Allocation, now time.Time) []AllocationResponse {
	result := make([]AllocationResponse, 0, len(allocations))
	for _, a := range allocations {
		result = append(result, domainAllocationToHTTP(a, now))
	}
	return result
}

func httpOutOfOfficeToDomain(req OutOfOfficeRequest) *domain.OutOfOffice {
	return &domain.OutOfOffice{
		TeamMemberID: req.TeamMemberID,
		StartDate:    dateOrZero(req.StartDate),
		EndDate:      dateOrZero(req.EndDate),
		Reason:       req.Reason,
	}
}

func domainOutOfOfficeToHTTP(entry *domain.OutOfOffice) OutOfOfficeResponse {
	return OutOfOfficeResponse{
		ID:           entry.ID,
		TeamMemberID: entry.TeamMemberID,
		StartDate:    formatDate(entry.StartDate),
		EndDate:      formatDate(entry.EndDate),
		Reason:       entry.Reason,
		CreatedAt:    formatTimestamp(entry.CreatedAt),
	}
}

func domainOutOfOfficeListToHTTP(entries []*domain.OutOfOffice) []OutOfOfficeResponse {
	result := make([]OutOfOfficeResponse, 0, len(entries))
	for _, entry := range entries {
		result = append(result, domainOutOfOfficeToHTTP(entry))
	}
	return result
}

func httpTimeEntryToDomain(req TimeEntryRequest) *domain.TimeEntry {
	return &domain.TimeEntry{
		TeamMemberID: req.TeamMemberID,
		WorkItemID:   req.WorkItemID,
		Hours:        req.Hours,
		Description:  req.Description,
		Date:         dateOrZero(req.Date),
	}
}

func domainTimeEntryToHTTP(entry *domain.TimeEntry) TimeEntryResponse {
	return TimeEntryResponse{
		ID:             entry.ID,
		TeamMemberID:   entry.TeamMemberID,
		TeamMemberName: entry.TeamMemberName,
		WorkItemID:     entry.WorkItemID,
		WorkItemTitle:  entry.WorkItemTitle,
		WorkItemType:   string(entry.WorkItemType),
		Hours:          hoursToHTTP(entry.Hours),
		Description:    entry.Description,
		Date:           formatDate(entry.Date),
		CreatedAt:      formatTimestamp(entry.CreatedAt),
	}
}

func domainTimeEntriesToHTTP(entries []*domain.TimeEntry) []TimeEntryResponse {
	result := make([]TimeEntryResponse, 0, len(entries))
	for _, entry := range entries {
		result = append(result, domainTimeEntryToHTTP(entry))
	}
	return result
}

func domainStatsToHTTP(stats *domain.DashboardStats) StatsResponse {
	byType := make(map[string]float64, len(stats.ActualHoursByType))
	for t, h := range stats.ActualHoursByType {
		byType[string(t)] = hoursToHTTP(h)
	}

	return StatsResponse{
		TotalMembers:         stats.TotalMembers,
		AverageCapacity:      stats.AverageCapacity,
		OverallocatedMembers: stats.OverallocatedMembers,
		TotalAllocatedHours:  hoursToHTTP(stats.TotalAllocatedHours),
		ActualHoursByType:    byType,
	}
}

func statusesToHTTP(itemType domain.WorkItemType) StatusesResponse {
	statuses := domain.ValidStatusesFor(itemType)
	options := make([]StatusOption, 0, len(statuses))
	for _, s := range statuses {
		options = append(options, StatusOption{Value: s, Label: domain.FormatLabel(s)})
	}

	response := StatusesResponse{
		Type:     string(itemType),
		Statuses: options,
	}
	if itemType.IsValid() {
		response.DefaultStatus = domain.DefaultStatusFor(itemType)
	}
	return response
}
