package blocks_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-views/pkg/blocks"
)

func upper(captured string, _ any) string {
	return strings.ToUpper(captured)
}

func reverse(captured string, _ any) string {
	runes := []rune(captured)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

func TestStack_WritesPassThroughWithNoFrames(t *testing.T) {
	var out bytes.Buffer
	stack := blocks.NewStack(&out)

	_, err := io.WriteString(stack, "plain")
	require.NoError(t, err)
	assert.Equal(t, "plain", out.String())
	assert.Equal(t, 0, stack.Depth())
}

func TestStack_NestedFramesComposeLIFO(t *testing.T) {
	var out bytes.Buffer
	stack := blocks.NewStack(&out)

	stack.Open(blocks.Definition{Name: "a", Transform: upper}, nil)
	io.WriteString(stack, "x")
	stack.Open(blocks.Definition{Name: "b", Transform: reverse}, nil)
	io.WriteString(stack, "yz")
	require.True(t, stack.Close())
	io.WriteString(stack, "w")
	require.True(t, stack.Close())

	// Inner transformed output becomes part of the outer raw capture:
	// upper("x" + reverse("yz") + "w").
	assert.Equal(t, "XZYW", out.String())
	assert.Equal(t, 0, stack.Depth())
}

func TestStack_CloseWithoutFrameIsNoOp(t *testing.T) {
	var out bytes.Buffer
	stack := blocks.NewStack(&out)

	assert.False(t, stack.Close())
	assert.Empty(t, out.String())
}

func TestStack_TransformPayload(t *testing.T) {
	var out bytes.Buffer
	stack := blocks.NewStack(&out)

	wrap := func(captured string, payload any) string {
		tag, _ := payload.(string)
		return "<" + tag + ">" + captured + "</" + tag + ">"
	}

	stack.Open(blocks.Definition{Name: "wrap", Transform: wrap}, "em")
	io.WriteString(stack, "hi")
	require.True(t, stack.Close())

	assert.Equal(t, "<em>hi</em>", out.String())
}

func TestStack_CloseAllFlushesDanglingFrames(t *testing.T) {
	var out bytes.Buffer
	stack := blocks.NewStack(&out)

	stack.Open(blocks.Definition{Name: "a", Transform: upper}, nil)
	io.WriteString(stack, "left ")
	stack.Open(blocks.Definition{Name: "b", Transform: reverse}, nil)
	io.WriteString(stack, "open")

	stack.CloseAll()

	assert.Equal(t, "LEFT NEPO", out.String())
	assert.Equal(t, 0, stack.Depth())
}

func TestStack_NilTransformPassesCaptureThrough(t *testing.T) {
	var out bytes.Buffer
	stack := blocks.NewStack(&out)

	stack.Open(blocks.Definition{Name: "raw"}, nil)
	io.WriteString(stack, "untouched")
	require.True(t, stack.Close())

	assert.Equal(t, "untouched", out.String())
}
