package derrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResourceError(t *testing.T) {
	cause := fmt.Errorf("file does not exist")
	err := NewResourceError("tex.cwl", "failed to open word list", cause)

	assert.Equal(t, "RESOURCE_ERROR", err.Code())
	assert.Equal(t, "tex.cwl", err.Name)
	assert.Contains(t, err.Error(), "failed to open word list")
	assert.Contains(t, err.Error(), "file does not exist")
	assert.Equal(t, cause, errors.Unwrap(err))
}

func TestReadError(t *testing.T) {
	cause := fmt.Errorf("unexpected EOF")
	err := NewReadError("latex-document.cwl", 12, cause)

	assert.Equal(t, "READ_ERROR", err.Code())
	assert.Equal(t, 12, err.Line)
	assert.Contains(t, err.Error(), "latex-document.cwl after line 12")
	assert.Contains(t, err.Error(), "unexpected EOF")
	assert.Equal(t, cause, errors.Unwrap(err))
}

func TestConfigurationError(t *testing.T) {
	cause := fmt.Errorf("invalid YAML")
	err := NewConfigurationError("/path/to/config.yml", "failed to parse config", cause)

	assert.Equal(t, "CONFIG_ERROR", err.Code())
	assert.Equal(t, "/path/to/config.yml", err.Path)
	assert.Contains(t, err.Error(), "failed to parse config")
	assert.Contains(t, err.Error(), "invalid YAML")
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("wordlists", "must not be empty", nil)

	assert.Equal(t, "VALIDATION_ERROR", err.Code())
	assert.Equal(t, "wordlists", err.Field)
	assert.Equal(t, "must not be empty", err.Error())
	assert.Nil(t, errors.Unwrap(err))
}

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("extra.cwl", "word list not found")

	assert.Equal(t, "NOT_FOUND", err.Code())
	assert.Equal(t, "extra.cwl", err.Resource)
	assert.Equal(t, "word list not found", err.Error())
}

func TestDownloadError(t *testing.T) {
	cause := fmt.Errorf("HTTP 404")
	err := NewDownloadError("https://example.com/a.cwl", "failed to download", cause)

	assert.Equal(t, "DOWNLOAD_ERROR", err.Code())
	assert.Equal(t, "https://example.com/a.cwl", err.URL)
	assert.Contains(t, err.Error(), "HTTP 404")
}

func TestCodeOf(t *testing.T) {
	wrapped := fmt.Errorf("loading: %w", NewNotFoundError("x", "missing"))

	assert.Equal(t, "NOT_FOUND", CodeOf(wrapped))
	assert.Equal(t, "", CodeOf(errors.New("plain")))
	assert.Equal(t, "", CodeOf(nil))
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(fmt.Errorf("a: %w", NewNotFoundError("x", "missing"))))
	assert.False(t, IsNotFound(NewResourceError("x", "open", nil)))
}

func TestErrorsImplementInterface(t *testing.T) {
	var _ TexError = NewResourceError("", "", nil)
	var _ TexError = NewReadError("", 0, nil)
	var _ TexError = NewConfigurationError("", "", nil)
	var _ TexError = NewValidationError("", "", nil)
	var _ TexError = NewNotFoundError("", "")
	var _ TexError = NewDownloadError("", "", nil)
}
