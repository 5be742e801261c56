package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseXP parses user-entered XP. Blank input means "use the default" and
// yields nil; anything that is not a non-negative integer is rejected.
func ParseXP(input string) (*int, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, ValidationError{Field: "xp", Reason: "must be a whole number"}
	}
	if n < 0 {
		return nil, ValidationError{Field: "xp", Reason: "must be a non-negative integer"}
	}
	if n > MaxQuestXP {
		return nil, ValidationError{Field: "xp", Reason: fmt.Sprintf("must be at most %d", MaxQuestXP)}
	}
	return &n, nil
}
