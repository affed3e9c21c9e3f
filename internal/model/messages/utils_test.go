package messages

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_OnParseCommand_ShouldSplitCommandAndArgument(t *testing.T) {
	cmd, arg := parseCommand("  /expense 12 Food  ")
	assert.Equal(t, "/expense", cmd)
	assert.Equal(t, "12 Food", arg)

	cmd, arg = parseCommand("/help")
	assert.Equal(t, "/help", cmd)
	assert.Empty(t, arg)

	cmd, arg = parseCommand("hello")
	assert.Empty(t, cmd)
	assert.Equal(t, "hello", arg)
}
