package service

import "unicode/utf8"

const (
	minCommentLength = 3
	maxCommentLength = 500
)

// ValidateCommentContent enforces the 3-500 character rule before any write
// reaches the repository. Lengths count characters, not bytes.
func ValidateCommentContent(content string) error {
	length := utf8.RuneCountInString(content)
	if length < minCommentLength {
		return ErrContentTooShort
	}
	if length > maxCommentLength {
		return ErrContentTooLong
	}

	return nil
}
