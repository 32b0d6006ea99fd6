package handlers

import (
	"strings"
	"unicode/utf8"
)

// Validation limits for post and comment fields.
const (
	maxTitleLen      = 300
	maxBodyLen       = 100_000
	maxExcerptLen    = 1_000
	maxTagLen        = 100
	maxTagCount      = 20
	maxAuthorNameLen = 100
	maxCommentLen    = 5_000
)

// validatePost checks post inputs and returns the first error found.
func validatePost(title, content string, tags []string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return "Title is required."
	}
	if utf8.RuneCountInString(title) > maxTitleLen {
		return "Title is too long (max 300 characters)."
	}
	if utf8.RuneCountInString(content) > maxBodyLen {
		return "Content is too long (max 100,000 characters)."
	}
	if len(tags) > maxTagCount {
		return "Too many tags (max 20)."
	}
	for _, tag := range tags {
		if strings.TrimSpace(tag) == "" {
			return "Tags must not be empty."
		}
		if utf8.RuneCountInString(tag) > maxTagLen {
			return "Tag is too long (max 100 characters)."
		}
	}
	return ""
}

// validateComment checks comment inputs and returns the first error found.
func validateComment(authorName, content string) string {
	if strings.TrimSpace(authorName) == "" {
		return "Name is required."
	}
	if utf8.RuneCountInString(authorName) > maxAuthorNameLen {
		return "Name is too long (max 100 characters)."
	}
	if strings.TrimSpace(content) == "" {
		return "Comment is required."
	}
	if utf8.RuneCountInString(content) > maxCommentLen {
		return "Comment is too long (max 5,000 characters)."
	}
	return ""
}
