//go:build !ebiten

package app

import (
	"testing"

	"chipfire/internal/core"

	"github.com/stretchr/testify/assert"
)

func TestHeadlessGame(t *testing.T) {
	g, err := New(NewConfig(), core.NewNeighborCache(nil, nil), nil)
	assert.Error(t, err)
	assert.Nil(t, g)
	assert.Error(t, (&Game{}).Update())
}
