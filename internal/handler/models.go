package handler

import "github.com/shopspring/decimal"

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

type TeamRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type TeamPatchRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

type TeamResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	MemberCount int     `json:"memberCount"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   *string `json:"updatedAt,omitempty"`
}

type RosterResponse struct {
	Team    TeamResponse                  `json:"team"`
	Members []TeamMemberWithStatsResponse `json:"members"`
}

type TeamMemberRequest struct {
	Name        string   `json:"name"`
	Role        string   `json:"role"`
	Email       string   `json:"email"`
	TeamID      *string  `json:"teamId"`
	Skills      []string `json:"skills"`
	WeeklyHours *int     `json:"weeklyHours"`
	Avatar      *string  `json:"avatar"`
	IsActive    *bool    `json:"isActive"`
}

type TeamMemberPatchRequest struct {
	Name        *string          `json:"name"`
	Role        *string          `json:"role"`
	Email       *string          `json:"email"`
	TeamID      Optional[string] `json:"teamId"`
	Skills      []string         `json:"skills"`
	WeeklyHours *int             `json:"weeklyHours"`
	Avatar      *string          `json:"avatar"`
	IsActive    *bool            `json:"isActive"`
}

type TeamMemberResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Role        string   `json:"role"`
	Email       string   `json:"email"`
	TeamID      *string  `json:"teamId"`
	TeamName    string   `json:"teamName,omitempty"`
	Skills      []string `json:"skills"`
	WeeklyHours int      `json:"weeklyHours"`
	Avatar      *string  `json:"avatar"`
	IsActive    bool     `json:"isActive"`
	CreatedAt   string   `json:"createdAt"`
	UpdatedAt   *string  `json:"updatedAt,omitempty"`
}

type TeamMemberWithStatsResponse struct {
	TeamMemberResponse
	AllocatedHours     float64 `json:"allocatedHours"`
	AvailableHours     float64 `json:"availableHours"`
	CapacityPercentage int     `json:"capacityPercentage"`
	CapacityLevel      string  `json:"capacityLevel"`
	CapacityLabel      string  `json:"capacityLabel"`
}

type WorkItemRequest struct {
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	Type           string          `json:"type"`
	Priority       string          `json:"priority"`
	Status         string          `json:"status"`
	EstimatedHours decimal.Decimal `json:"estimatedHours"`
	DueDate        *Date           `json:"dueDate"`
	AssignedToID   *string         `json:"assignedToId"`
}

type WorkItemPatchRequest struct {
	Title          *string          `json:"title"`
	Description    *string          `json:"description"`
	Type           *string          `json:"type"`
	Priority       *string          `json:"priority"`
	Status         *string          `json:"status"`
	EstimatedHours *decimal.Decimal `json:"estimatedHours"`
	DueDate        Optional[Date]   `json:"dueDate"`
	AssignedToID   Optional[string] `json:"assignedToId"`
}

type WorkItemResponse struct {
	ID             string            `json:"id"`
	Title          string            `json:"title"`
	Description    string            `json:"description"`
	Type           string            `json:"type"`
	Priority       string            `json:"priority"`
	Status         string            `json:"status"`
	StatusLabel    string            `json:"statusLabel"`
	EstimatedHours float64           `json:"estimatedHours"`
	ActualHours    float64           `json:"actualHours"`
	DueDate        *string           `json:"dueDate"`
	AssignedToID   *string           `json:"assignedToId"`
	AssignedTo     *AssigneeResponse `json:"assignedTo"`
	CreatedAt      string            `json:"createdAt"`
	UpdatedAt      *string           `json:"updatedAt,omitempty"`
}

type AssigneeResponse struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Avatar *string `json:"avatar"`
}

type WorkItemDetailResponse struct {
	WorkItemResponse
	Allocations         []AllocationResponse `json:"allocations"`
	TotalAllocatedHours float64              `json:"totalAllocatedHours"`
}

type AllocationRequest struct {
	TeamMemberID string           `json:"teamMemberId"`
	WorkItemID   string           `json:"workItemId"`
	HoursPerWeek *decimal.Decimal `json:"hoursPerWeek"`
	StartDate    *Date            `json:"startDate"`
	EndDate      *Date            `json:"endDate"`
	Notes        string           `json:"notes"`
}

type AllocationPatchRequest struct {
	HoursPerWeek *decimal.Decimal `json:"hoursPerWeek"`
	StartDate    *Date            `json:"startDate"`
	EndDate      Optional[Date]   `json:"endDate"`
	Notes        *string          `json:"notes"`
}

type AllocationResponse struct {
	ID             string  `json:"id"`
	TeamMemberID   string  `json:"teamMemberId"`
	TeamMemberName string  `json:"teamMemberName,omitempty"`
	WorkItemID     string  `json:"workItemId"`
	WorkItemTitle  string  `json:"workItemTitle,omitempty"`
	HoursPerWeek   float64 `json:"hoursPerWeek"`
	StartDate      string  `json:"startDate"`
	EndDate        *string `json:"endDate"`
	Notes          string  `json:"notes"`
	IsActive       bool    `json:"isActive"`
	CreatedAt      string  `json:"createdAt"`
}

type OutOfOfficeRequest struct {
	TeamMemberID string `json:"teamMemberId"`
	StartDate    *Date  `json:"startDate"`
	EndDate      *Date  `json:"endDate"`
	Reason       string `json:"reason"`
}

type OutOfOfficeResponse struct {
	ID           string `json:"id"`
	TeamMemberID string `json:"teamMemberId"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	Reason       string `json:"reason"`
	CreatedAt    string `json:"createdAt"`
}

type TimeEntryRequest struct {
	TeamMemberID string          `json:"teamMemberId"`
	WorkItemID   string          `json:"workItemId"`
	Hours        decimal.Decimal `json:"hours"`
	Description  string          `json:"description"`
	Date         *Date           `json:"date"`
}

type TimeEntryResponse struct {
	ID             string  `json:"id"`
	TeamMemberID   string  `json:"teamMemberId"`
	TeamMemberName string  `json:"teamMemberName,omitempty"`
	WorkItemID     string  `json:"workItemId"`
	WorkItemTitle  string  `json:"workItemTitle,omitempty"`
	WorkItemType   string  `json:"workItemType,omitempty"`
	Hours          float64 `json:"hours"`
	Description    string  `json:"description"`
	Date           string  `json:"date"`
	CreatedAt      string  `json:"createdAt"`
}

type StatsResponse struct {
	TotalMembers         int                `json:"totalMembers"`
	AverageCapacity      int                `json:"averageCapacity"`
	OverallocatedMembers int                `json:"overallocatedMembers"`
	TotalAllocatedHours  float64            `json:"totalAllocatedHours"`
	ActualHoursByType    map[string]float64 `json:"actualHoursByType"`
}

type StatusOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type StatusesResponse struct {
	Type          string         `json:"type"`
	DefaultStatus string         `json:"defaultStatus"`
	Statuses      []StatusOption `json:"statuses"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
