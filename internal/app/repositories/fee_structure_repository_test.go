package repositories

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Fee structure reads must carry the lookup names in the same query, one
// LEFT JOIN against common_master per lookup id.
func TestFeeStructureSelectResolvesLookupNames(t *testing.T) {
	joins := map[string]string{
		"cm_class":   "f.class_id",
		"cm_section": "f.section_id",
		"cm_year":    "f.academic_year_id",
		"cm_freq":    "f.payment_frequency",
	}

	for alias, column := range joins {
		assert.Contains(t, feeStructureSelect,
			"LEFT JOIN common_master "+alias+" ON "+alias+".id = "+column)
		assert.Contains(t, feeStructureSelect, alias+".data")
	}

	// One select item per scan destination in scanFeeStructure.
	selectList := feeStructureSelect[:strings.Index(feeStructureSelect, "FROM")]
	assert.Equal(t, 23, strings.Count(selectList, ",")+1)
}
