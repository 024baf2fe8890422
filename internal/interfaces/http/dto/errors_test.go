package dto

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		code string
		want int
	}{
		{"NOT_FOUND", http.StatusNotFound},
		{"UNAUTHORIZED", http.StatusUnauthorized},
		{"INVALID_CREDENTIALS", http.StatusUnauthorized},
		{"ACCOUNT_DEACTIVATED", http.StatusUnauthorized},
		{"FORBIDDEN", http.StatusForbidden},
		{"INSUFFICIENT_STOCK", http.StatusBadRequest},
		{"EMPTY_CART", http.StatusBadRequest},
		{"DUPLICATE_EMAIL", http.StatusBadRequest},
		{"DUPLICATE_SKU", http.StatusBadRequest},
		{"INVALID_SLUG", http.StatusBadRequest},
		{"INVALID_PRICE", http.StatusBadRequest},
		{"INVALID_STOCK", http.StatusBadRequest},
		{"INVALID_TITLE", http.StatusBadRequest},
		{"INVALID_QUANTITY", http.StatusBadRequest},
		{"INVALID_SECTION_TYPE", http.StatusBadRequest},
		{"SOMETHING_ELSE", http.StatusInternalServerError},
		{"", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, GetHTTPStatus(tt.code))
		})
	}
}
