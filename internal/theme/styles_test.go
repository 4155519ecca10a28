package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sushitest/internal/domain"
)

func TestStatusLabel(t *testing.T) {
	tests := []struct {
		status domain.CaseStatus
		want   string
	}{
		{domain.CasePass, "PASS"},
		{domain.CaseFail, "FAIL"},
		{domain.CaseError, "ERROR"},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Contains(t, StatusLabel(tt.status), tt.want)
		})
	}
}
