package preprocess

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanContent_RemovesTruncationMarker(t *testing.T) {
	input := "Apple shares surged after earnings beat expectations... [+2896 chars]"
	expected := "Apple shares surged after earnings beat expectations..."

	assert.Equal(t, expected, CleanContent(input))
}

func TestCleanContent_CollapsesWhitespace(t *testing.T) {
	input := "Markets\n\nrallied \t today  across\r\nthe board"
	expected := "Markets rallied today across the board"

	assert.Equal(t, expected, CleanContent(input))
}

func TestCleanContent_TrimsEnds(t *testing.T) {
	assert.Equal(t, "text", CleanContent("   text   "))
}

func TestCleanContent_EmptyAndWhitespaceOnly(t *testing.T) {
	assert.Equal(t, "", CleanContent(""))
	assert.Equal(t, "", CleanContent("  \n\t "))
}

func TestCleanContent_MarkerOnly(t *testing.T) {
	assert.Equal(t, "", CleanContent(" [+123 chars] "))
}

func TestCleanContent_KeepsMidTextBrackets(t *testing.T) {
	// Only the trailing provider marker is removed, not bracketed text
	// elsewhere in the content.
	input := "The fund [+5 chars of nothing] gained ground"
	assert.Equal(t, "The fund [+5 chars of nothing] gained ground", CleanContent(input))
}

func TestCleanContent_Idempotent(t *testing.T) {
	input := "Some   noisy\ncontent [+100 chars]"
	once := CleanContent(input)
	assert.Equal(t, once, CleanContent(once))
}
