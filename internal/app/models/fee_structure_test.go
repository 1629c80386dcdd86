package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeeStructureJSONIncludesResolvedNames(t *testing.T) {
	fs := FeeStructure{
		ID:                   7,
		ClassID:              11,
		SectionID:            12,
		AcademicYearID:       13,
		Name:                 "Class 5 Annual",
		PaymentFrequency:     14,
		ClassName:            "Class 5",
		SectionName:          "A",
		AcademicYearName:     "2026-2027",
		PaymentFrequencyName: "ANNUAL",
		TuitionFee:           25000,
		TotalFee:             31000,
		EffectiveFrom:        NewDate(time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)),
	}

	raw, err := json.Marshal(fs)
	require.NoError(t, err)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(raw, &payload))

	assert.Equal(t, "Class 5", payload["className"])
	assert.Equal(t, "A", payload["sectionName"])
	assert.Equal(t, "2026-2027", payload["academicYearName"])
	assert.Equal(t, "ANNUAL", payload["paymentFrequencyName"])
	assert.Equal(t, float64(11), payload["classId"])
	assert.Equal(t, float64(14), payload["paymentFrequencyId"])
}

func TestFeeStructureJSONOmitsUnresolvedNames(t *testing.T) {
	raw, err := json.Marshal(FeeStructure{ID: 7})
	require.NoError(t, err)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(raw, &payload))

	assert.NotContains(t, payload, "className")
	assert.NotContains(t, payload, "sectionName")
	assert.NotContains(t, payload, "academicYearName")
	assert.NotContains(t, payload, "paymentFrequencyName")
}
