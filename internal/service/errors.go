package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/leanttro/feiras-de-rua/internal/repository"
)

var (
	ErrNotFound        = repository.ErrNotFound
	ErrChatUnavailable = errors.New("chat unavailable")
	ErrChatBlocked     = errors.New("chat reply blocked by content policy")
)

// ValidationError lists the input fields that are missing or invalid.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid or missing fields: %s", strings.Join(e.Fields, ", "))
}
