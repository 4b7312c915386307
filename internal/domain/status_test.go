package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidStatusesFor(t *testing.T) {
	t.Run("словари в порядке отображения", func(t *testing.T) {
		assert.Equal(t, []string{"draft", "submitted", "screened", "qualified-approved", "complete", "deferred", "rejected"},
			ValidStatusesFor(WorkItemTypeDemand))
		assert.Equal(t, []string{"initiating", "planning", "executing", "delivering", "closing"},
			ValidStatusesFor(WorkItemTypeProject))
		assert.Equal(t, []string{"planned", "active", "on-hold", "completed"},
			ValidStatusesFor(WorkItemTypeOM))
	})

	t.Run("неизвестный тип", func(t *testing.T) {
		statuses := ValidStatusesFor("epic")
		assert.NotNil(t, statuses)
		assert.Empty(t, statuses)
	})

	t.Run("возвращается копия", func(t *testing.T) {
		statuses := ValidStatusesFor(WorkItemTypeOM)
		statuses[0] = "mutated"
		assert.Equal(t, "planned", ValidStatusesFor(WorkItemTypeOM)[0])
	})
}

func TestDefaultStatusFor(t *testing.T) {
	for _, itemType := range WorkItemTypes {
		def := DefaultStatusFor(itemType)
		assert.True(t, IsValidStatus(itemType, def), "%s", itemType)
		assert.Equal(t, ValidStatusesFor(itemType)[0], def)
	}
	assert.Equal(t, "draft", DefaultStatusFor("epic"))
}

func TestIsValidStatus(t *testing.T) {
	assert.True(t, IsValidStatus(WorkItemTypeProject, "planning"))
	assert.False(t, IsValidStatus(WorkItemTypeDemand, "planning"))
	assert.False(t, IsValidStatus(WorkItemTypeOM, ""))
	assert.False(t, IsValidStatus("epic", "draft"))
}

func TestFormatLabel(t *testing.T) {
	tests := map[string]string{
		"qualified-approved": "Qualified Approved",
		"on-hold":            "On Hold",
		"draft":              "Draft",
		"":                   "",
	}
	for input, expected := range tests {
		assert.Equal(t, expected, FormatLabel(input))
	}
}

func TestAllocation_IsActiveAt(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	end := now.AddDate(0, 0, 1)
	past := now.AddDate(0, 0, -1)

	tests := []struct {
		name       string
		allocation Allocation
		expected   bool
	}{
		{"открытая, уже началась", Allocation{StartDate: past}, true},
		{"начинается ровно сейчас", Allocation{StartDate: now}, true},
		{"заканчивается ровно сейчас", Allocation{StartDate: past, EndDate: &now}, true},
		{"еще не началась", Allocation{StartDate: end}, false},
		{"уже закончилась", Allocation{StartDate: past.AddDate(0, 0, -5), EndDate: &past}, false},
		{"в окне", Allocation{StartDate: past, EndDate: &end}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.allocation.IsActiveAt(now))
		})
	}
}

func TestCapacityLevel_Label(t *testing.T) {
	assert.Equal(t, "At/Over Capacity", CapacityOver.Label())
	assert.Equal(t, "Busy", CapacityBusy.Label())
	assert.Equal(t, "Available", CapacityAvailable.Label())
	assert.Equal(t, "Light Load", CapacityLight.Label())
}
