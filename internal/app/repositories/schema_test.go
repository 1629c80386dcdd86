package repositories

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func studentsTableDDL(t *testing.T) string {
	t.Helper()
	raw, err := os.ReadFile(filepath.Join("..", "..", "..", "migrations", "001_init.sql"))
	require.NoError(t, err)

	schema := string(raw)
	start := strings.Index(schema, "CREATE TABLE IF NOT EXISTS students (")
	require.NotEqual(t, -1, start)
	end := strings.Index(schema[start:], ");")
	require.NotEqual(t, -1, end)
	return schema[start : start+end]
}

// scanStudent reads numeric model fields straight from these columns, and
// pgx will neither encode an int into a TEXT parameter nor scan a TEXT
// column into *int. The declared types must stay numeric.
func TestStudentNumericColumnsDeclaredNumeric(t *testing.T) {
	ddl := studentsTableDDL(t)

	numericColumns := map[string]string{
		"annual_income":         "BIGINT",
		"class_applying_for":    "INTEGER",
		"section":               "INTEGER",
		"previous_class_passed": "INTEGER",
		"status":                "BIGINT",
	}

	for column, want := range numericColumns {
		re := regexp.MustCompile(`(?m)^\s*` + column + `\s+(\w+)`)
		m := re.FindStringSubmatch(ddl)
		require.NotNil(t, m, "column %s missing from students table", column)
		assert.Equal(t, want, m[1], "column %s", column)
	}
}
