package customerr

import (
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func Test_UserMessage_ShouldSeeThroughWrapping(t *testing.T) {
	err := errors.Wrapf(ErrInUse, "delete category %s", "c1")

	assert.Equal(t, "The category is used by expenses. Reassign or delete them first", UserMessage(err))
}

func Test_UserMessage_ShouldFallBackForUnknownErrors(t *testing.T) {
	assert.Equal(t, unexpectedMessage, UserMessage(fmt.Errorf("disk on fire")))
}

func Test_Known_ShouldRecognizeOnlySentinels(t *testing.T) {
	assert.True(t, Known(errors.Wrap(ErrParse, "import")))
	assert.False(t, Known(errors.New("timeout")))
}

func Test_UserMessage_ShouldExplainRepeatedCategory(t *testing.T) {
	err := errors.Wrapf(ErrRepeatedCategory, "category %q", "food")

	assert.True(t, Known(err))
	assert.Equal(t, "Each category can be listed only once", UserMessage(err))
}
