package integration_tests

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/matrixci/internal/testutil"
)

const coverageGrid = `
matrix {
  axis "python" {
    values = ["3.8", "3.9"]
  }

  env = {
    DEPENDS = "numpy scipy"
    PACKAGE = "nipy"
  }

  job {
    value = "3.8"
    env   = { COVERAGE = "1" }
  }
}
`

func TestPipeline_CoverageJobSubmitsOnce(t *testing.T) {
	t.Parallel()
	fake := testutil.NewFakeSet()

	result := testutil.RunIntegrationTest(t, "matrix.hcl", coverageGrid, fake)

	require.NoError(t, result.Err)

	summary := result.App.Summary()
	require.NotNil(t, summary)
	assert.Equal(t, 3, summary.Total, "two sweep jobs plus one override")
	assert.Equal(t, 3, summary.Succeeded)

	// Every job runs its tests, only the coverage override reports.
	assert.Equal(t, 3, fake.Calls("target.test"))
	assert.Equal(t, 1, fake.Calls("target.test pkg=nipy coverage=true"))
	assert.Equal(t, 1, fake.Calls("reporter.submit python=3.8"))

	assert.Contains(t, result.LogOutput, "🚀 Starting matrix execution")
	assert.Contains(t, result.LogOutput, "🏁 Matrix execution finished")
	assert.Contains(t, result.LogOutput, "Matrix summary: 3 total, 3 succeeded, 0 failed")
}
