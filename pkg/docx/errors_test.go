package docx

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDocumentError(t *testing.T) {
	cause := errors.New("boom")
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"path and cause", NewDocumentError("read", "word/document.xml", cause), "document error during read of 'word/document.xml': boom"},
		{"path only", NewDocumentError("read", "word/document.xml", nil), "document error during read of 'word/document.xml'"},
		{"cause only", NewDocumentError("open", "", cause), "document error during open: boom"},
		{"neither", NewDocumentError("open", "", nil), "document error during open"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.EqualError(t, tt.err, tt.want)
			assert.True(t, IsDocumentError(tt.err))
		})
	}

	wrapped := fmt.Errorf("outer: %w", NewDocumentError("scan", "", ErrNotWordProcessing))
	assert.True(t, IsDocumentError(wrapped))
	assert.ErrorIs(t, wrapped, ErrNotWordProcessing)
	assert.False(t, IsDocumentError(cause))
}
