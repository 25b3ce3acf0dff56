package tasks

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateCreateTask_Title(t *testing.T) {
	require.Error(t, ValidateCreateTask(&CreateTaskRequest{Title: ""}))
	require.Error(t, ValidateCreateTask(&CreateTaskRequest{Title: "   "}))

	req := &CreateTaskRequest{Title: strings.Repeat("a", 200)}
	require.NoError(t, ValidateCreateTask(req))

	req = &CreateTaskRequest{Title: strings.Repeat("a", 201)}
	require.EqualError(t, ValidateCreateTask(req), "Title too long")
}

func TestValidateCreateTask_Description(t *testing.T) {
	req := &CreateTaskRequest{Title: "t", Description: strings.Repeat("d", 1000)}
	require.NoError(t, ValidateCreateTask(req))

	req = &CreateTaskRequest{Title: "t", Description: strings.Repeat("d", 1001)}
	require.EqualError(t, ValidateCreateTask(req), "Description too long")
}

func TestValidateCreateTask_PriorityCoercion(t *testing.T) {
	req := &CreateTaskRequest{Title: "t", Priority: "urgent"}
	require.NoError(t, ValidateCreateTask(req))
	require.Equal(t, "medium", req.Priority)

	req = &CreateTaskRequest{Title: "t"}
	require.NoError(t, ValidateCreateTask(req))
	require.Equal(t, "medium", req.Priority)

	req = &CreateTaskRequest{Title: "t", Priority: "high"}
	require.NoError(t, ValidateCreateTask(req))
	require.Equal(t, "high", req.Priority)
}

func TestValidateCreateTask_FailFast(t *testing.T) {
	// first violation wins: empty title reported before the oversized description
	req := &CreateTaskRequest{Title: " ", Description: strings.Repeat("d", 1001)}
	require.EqualError(t, ValidateCreateTask(req), "Title is required")
}

func strPtr(s string) *string { return &s }

func TestValidateUpdateTask_OnlyPresentFields(t *testing.T) {
	// nothing present, nothing to validate
	require.NoError(t, ValidateUpdateTask(&UpdateTaskRequest{}))

	require.EqualError(t, ValidateUpdateTask(&UpdateTaskRequest{Title: strPtr("  ")}), "Title is required")
	require.EqualError(t, ValidateUpdateTask(&UpdateTaskRequest{Title: strPtr(strings.Repeat("a", 201))}), "Title too long")
	require.NoError(t, ValidateUpdateTask(&UpdateTaskRequest{Title: strPtr(strings.Repeat("a", 200))}))

	require.EqualError(t, ValidateUpdateTask(&UpdateTaskRequest{Description: strPtr(strings.Repeat("d", 1001))}), "Description too long")
}

func TestValidateUpdateTask_PriorityNeverCoerced(t *testing.T) {
	err := ValidateUpdateTask(&UpdateTaskRequest{Priority: strPtr("urgent")})
	require.EqualError(t, err, "Priority must be 'low', 'medium', or 'high'")

	for _, p := range []string{"low", "medium", "high"} {
		require.NoError(t, ValidateUpdateTask(&UpdateTaskRequest{Priority: strPtr(p)}))
	}
}
