package messages

import (
	"strings"

	"max.ks1230/expense-ledger/internal/entity/expense"
)

const commandParts = 2

func parseCommand(text string) (cmd, arg string) {
	text = strings.TrimSpace(text)
	split := strings.SplitN(text, " ", commandParts)

	if len(split) == commandParts {
		return split[0], strings.TrimSpace(split[1])
	}
	if strings.HasPrefix(text, "/") {
		return text, ""
	}
	return "", text
}

// splitDated separates an optional leading date from the rest of args.
func splitDated(args []string) (date string, rest []string, ok bool) {
	if len(args) == 0 {
		return "", nil, false
	}
	if _, valid := expense.ParseDate(args[0]); !valid {
		return "", args, false
	}
	return args[0], args[1:], true
}
