package service

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/bagdasarian/resource-dashboard/internal/domain"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

// Верхние границы повторяют точность колонок NUMERIC в схеме
var (
	maxHoursPerWeek   = decimal.RequireFromString("999.99")
	maxEntryHours     = decimal.RequireFromString("999.99")
	maxEstimatedHours = decimal.RequireFromString("99999.99")
)

// validateHoursRange проверяет неотрицательное значение часов не больше max
func validateHoursRange(field string, value, max decimal.Decimal) error {
	if value.IsNegative() {
		return domain.NewValidationError(field, "must not be negative")
	}
	if value.GreaterThan(max) {
		return domain.NewValidationError(field, "must be at most "+max.String())
	}
	return nil
}

// validateStruct проверяет теги validate и переводит первую ошибку в доменную
func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		field := lowerFirst(fe.Field())
		param := fe.Param()

		switch fe.Tag() {
		case "required":
			messages = append(messages, field+" is required")
		case "max":
			messages = append(messages, field+" must be at most "+param+" characters")
		case "email":
			messages = append(messages, field+" must be a valid email")
		case "uuid":
			messages = append(messages, field+" must be a valid id")
		case "gt":
			messages = append(messages, field+" must be greater than "+param)
		case "oneof":
			messages = append(messages, field+" must be one of: "+param)
		default:
			messages = append(messages, field+" is invalid")
		}
	}

	return &domain.DomainError{
		Code:    domain.CodeValidation,
		Message: strings.Join(messages, ", "),
		Field:   lowerFirst(validationErrors[0].Field()),
	}
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}

// ValidateWorkItem проверяет новый рабочий элемент: форму и пару (type, status)
func ValidateWorkItem(item *domain.WorkItem) error {
	if err := validateStruct(item); err != nil {
		return err
	}
	if err := validateHoursRange("estimatedHours", item.EstimatedHours, maxEstimatedHours); err != nil {
		return err
	}
	return validateTypeStatus(item.Type, item.Status)
}

// ValidateWorkItemUpdate проверяет частичное обновление относительно сохраненной записи.
// Итоговая запись проходит те же правила формы, что и при создании. Если передан
// только type или только status, недостающее значение берется из existing,
// так что несовместимая пара не проходит даже когда обновление упоминает одно поле.
func ValidateWorkItemUpdate(existing *domain.WorkItem, update domain.WorkItemUpdate) error {
	if update.Title != nil && strings.TrimSpace(*update.Title) == "" {
		return domain.NewValidationError("title", "must not be empty")
	}
	if update.Priority != nil && !update.Priority.IsValid() {
		return domain.NewValidationError("priority", fmt.Sprintf("unknown priority %q", *update.Priority))
	}

	merged := applyWorkItemUpdate(existing, update)
	if update.Type != nil || update.Status != nil {
		if err := validateTypeStatus(merged.Type, merged.Status); err != nil {
			return err
		}
	}
	if err := validateStruct(merged); err != nil {
		return err
	}
	return validateHoursRange("estimatedHours", merged.EstimatedHours, maxEstimatedHours)
}

func validateTypeStatus(itemType domain.WorkItemType, status string) error {
	if !itemType.IsValid() {
		return domain.NewValidationError("type", fmt.Sprintf("unknown work item type %q", itemType))
	}
	if !domain.IsValidStatus(itemType, status) {
		return domain.NewValidationError("status", fmt.Sprintf("status %q is not valid for type %q", status, itemType))
	}
	return nil
}

// applyWorkItemUpdate возвращает копию existing с примененными изменениями
func applyWorkItemUpdate(existing *domain.WorkItem, update domain.WorkItemUpdate) *domain.WorkItem {
	merged := *existing
	if update.Title != nil {
		merged.Title = strings.TrimSpace(*update.Title)
	}
	if update.Description != nil {
		merged.Description = *update.Description
	}
	if update.Type != nil {
		merged.Type = *update.Type
	}
	if update.Priority != nil {
		merged.Priority = *update.Priority
	}
	if update.Status != nil {
		merged.Status = *update.Status
	}
	if update.EstimatedHours != nil {
		merged.EstimatedHours = *update.EstimatedHours
	}
	if update.DueDate != nil {
		dueDate := *update.DueDate
		merged.DueDate = &dueDate
	}
	if update.ClearDueDate {
		merged.DueDate = nil
	}
	if update.AssignedToID != nil {
		merged.AssignedToID = nil
		merged.AssignedTo = nil
		if assignee := strings.TrimSpace(*update.AssignedToID); assignee != "" {
			merged.AssignedToID = &assignee
		}
	}
	return &merged
}
