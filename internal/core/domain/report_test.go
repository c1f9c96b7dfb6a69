package domain_test

import (
	"testing"

	"github.com/SscSPs/polaris_reporting/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestReportKind_IsValid(t *testing.T) {
	for _, k := range domain.ReportKinds {
		assert.True(t, k.IsValid(), k)
	}
	assert.Len(t, domain.ReportKinds, 16)
	assert.False(t, domain.ReportKind("balance-sheet").IsValid())
}
