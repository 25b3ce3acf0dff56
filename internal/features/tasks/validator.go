package tasks

import (
	"errors"
	"strings"
)

const (
	maxTitleLength       = 200
	maxDescriptionLength = 1000
)

func isValidPriority(priority string) bool {
	switch priority {
	case "low", "medium", "high":
		return true
	}
	return false
}

// ValidateCreateTask checks a creation payload. Violations fail fast, first
// one wins. An unknown priority is not an error: it is coerced to "medium",
// matching how creation has always behaved (updates reject instead).
func ValidateCreateTask(req *CreateTaskRequest) error {
	if strings.TrimSpace(req.Title) == "" {
		return errors.New("Title is required")
	}
	if len(req.Title) > maxTitleLength {
		return errors.New("Title too long")
	}
	if len(req.Description) > maxDescriptionLength {
		return errors.New("Description too long")
	}

	if !isValidPriority(req.Priority) {
		req.Priority = "medium"
	}

	return nil
}

// ValidateUpdateTask checks only the fields present in a partial update.
func ValidateUpdateTask(req *UpdateTaskRequest) error {
	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			return errors.New("Title is required")
		}
		if len(*req.Title) > maxTitleLength {
			return errors.New("Title too long")
		}
	}

	if req.Description != nil && len(*req.Description) > maxDescriptionLength {
		return errors.New("Description too long")
	}

	if req.Priority != nil && !isValidPriority(*req.Priority) {
		return errors.New("Priority must be 'low', 'medium', or 'high'")
	}

	return nil
}
