package doctree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStepKind(t *testing.T) {
	k, ok := ParseStepKind("Given")
	assert.True(t, ok)
	assert.Equal(t, StepGiven, k)

	k, ok = ParseStepKind(" then ")
	assert.True(t, ok)
	assert.Equal(t, StepThen, k)

	k, ok = ParseStepKind("generic")
	assert.True(t, ok)
	assert.Equal(t, StepGeneric, k)

	_, ok = ParseStepKind("whenever")
	assert.False(t, ok)
}

func TestNode_Append(t *testing.T) {
	doc := NewDocument()
	doc.Append(NewSection(), NewText("x"))
	assert.Len(t, doc.Children, 2)
}

func TestIsKnown(t *testing.T) {
	assert.True(t, IsKnown(KindStep))
	assert.True(t, IsKnown(KindTable))
	assert.False(t, IsKnown(Kind("sidebar")))

	assert.True(t, IsIgnored(KindMath))
	assert.False(t, IsIgnored(KindCodeBlock))
}

func TestIgnored_NoConsumedKinds(t *testing.T) {
	for _, k := range Ignored {
		switch k {
		case KindDocument, KindSection, KindTitle, KindStep, KindCodeBlock, KindText:
			t.Fatalf("consumed kind %q in ignore set", k)
		}
	}
}
