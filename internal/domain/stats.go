package domain

import "github.com/shopspring/decimal"

type DashboardStats struct {
	TotalMembers         int
	AverageCapacity      int
	OverallocatedMembers int
	TotalAllocatedHours  decimal.Decimal
	ActualHoursByType    map[WorkItemType]decimal.Decimal
}

type WorkItemTypeHours struct {
	Type  WorkItemType
	Hours decimal.Decimal
}
