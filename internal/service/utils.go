package service

import "strings"

// sanitizeUTF8 drops invalid UTF-8 sequences so user input can be stored in
// a UTF8 database and sent to the chat provider. Valid text is unchanged.
func sanitizeUTF8(s string) string {
	return strings.ToValidUTF8(s, "")
}
