package analysis

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestRemoveOutliers(t *testing.T) {
	short := []float64{0.01, 5}
	assert.Equal(t, short, RemoveOutliers(short, 3))

	constant := []float64{0.01, 0.01, 0.01}
	assert.Equal(t, constant, RemoveOutliers(constant, 3))

	var returns []float64
	for i := 0; i < 19; i++ {
		returns = append(returns, 0.01+float64(i%3)*0.001)
	}
	returns = append(returns, 1.0)

	trimmed := RemoveOutliers(returns, 3)
	assert.Len(t, trimmed, 19)
	assert.NotContains(t, trimmed, 1.0)
}
