package utils_test

import (
	"regexp"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bundlepay/pkg/utils"
)

func TestGenerateOrderID(t *testing.T) {
	pattern := regexp.MustCompile(`^T(\d+)$`)

	for i := 0; i < 100; i++ {
		id := utils.GenerateOrderID()
		match := pattern.FindStringSubmatch(id)
		require.NotNil(t, match, "order id %q does not match T<digits>", id)

		n, err := strconv.ParseInt(match[1], 10, 64)
		require.NoError(t, err)
		assert.Less(t, n, int64(1_000_000_000_000_000))
	}
}
