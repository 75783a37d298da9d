package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateStruct_AddShelfRequest(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		req := addShelfRequest{UserID: "u", GoogleID: "g", Title: "t", Author: "a", Status: "READ"}
		assert.Empty(t, ValidateStruct(req))
	})

	t.Run("empty status is allowed", func(t *testing.T) {
		req := addShelfRequest{UserID: "u", GoogleID: "g", Title: "t", Author: "a"}
		assert.Empty(t, ValidateStruct(req))
	})

	t.Run("missing fields reported per field", func(t *testing.T) {
		details := ValidateStruct(addShelfRequest{})
		assert.Len(t, details, 4)

		fields := make([]string, 0, len(details))
		for _, d := range details {
			fields = append(fields, d.Field)
		}
		assert.ElementsMatch(t, []string{"userID", "googleID", "title", "author"}, fields)
	})

	t.Run("status outside the enum", func(t *testing.T) {
		req := addShelfRequest{UserID: "u", GoogleID: "g", Title: "t", Author: "a", Status: "DONE"}
		details := ValidateStruct(req)
		assert.Len(t, details, 1)
		assert.Equal(t, "status", details[0].Field)
	})
}

func TestValidateStruct_UpdateStatusRequest(t *testing.T) {
	for _, status := range []string{"WANT_TO_READ", "CURRENTLY_READING", "READ"} {
		assert.Empty(t, ValidateStruct(updateStatusRequest{ID: "x", Status: status}), status)
	}

	assert.NotEmpty(t, ValidateStruct(updateStatusRequest{ID: "x", Status: "FINISHED"}))
	assert.NotEmpty(t, ValidateStruct(updateStatusRequest{ID: "x"}))
	assert.NotEmpty(t, ValidateStruct(updateStatusRequest{Status: "READ"}))
}

func TestValidateStruct_SignInRequest(t *testing.T) {
	assert.Empty(t, ValidateStruct(signInRequest{Email: "reader@example.com"}))
	assert.NotEmpty(t, ValidateStruct(signInRequest{}))
	assert.NotEmpty(t, ValidateStruct(signInRequest{Email: "not-an-email"}))
}
