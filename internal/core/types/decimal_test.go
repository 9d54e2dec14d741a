package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampZero(t *testing.T) {
	assert.True(t, ClampZero(MustMoney("-0.01")).IsZero())
	assert.True(t, ClampZero(MustMoney("12.50")).Equal(MustMoney("12.5")))
}

func TestSum(t *testing.T) {
	got := Sum(MustMoney("0.1"), MustMoney("0.2"), MustMoney("0.3"))
	assert.True(t, got.Equal(MustMoney("0.6")), "got %s", got)
	assert.True(t, Sum().IsZero())
}
