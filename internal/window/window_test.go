package window

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSettings(t *testing.T) {
	s := NewSettings("Server", 800, 600)

	assert.Equal(t, Settings{Title: "Server", Size: Size{Width: 800, Height: 600}}, s)
}
