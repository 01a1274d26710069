package jsonl_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/srand/tagjson"
	"github.com/srand/tagjson/stream/jsonl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Line struct {
	Text string `json:"text"`
}

func init() {
	tagjson.Register[Line]()
}

func TestWriteReadLines(t *testing.T) {
	var buffer bytes.Buffer

	writer := jsonl.NewWriter(&buffer)
	for _, text := range []string{"Hello", "World", "Test"} {
		require.NoError(t, writer.Write(&Line{Text: text}))
	}
	require.NoError(t, writer.Flush())

	require.Equal(t, 3, strings.Count(buffer.String(), "\n"))

	reader := jsonl.NewReader(&buffer)
	results, err := reader.ReadAll()
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, &Line{Text: "Hello"}, results[0])
	assert.Equal(t, &Line{Text: "World"}, results[1])
	assert.Equal(t, &Line{Text: "Test"}, results[2])
}

func TestReadSkipsBlankLines(t *testing.T) {
	encoded, err := tagjson.Marshal(&Line{Text: "only"})
	require.NoError(t, err)

	input := "\n \t \n" + string(encoded) + "\n\n  \n"
	reader := jsonl.NewReader(strings.NewReader(input))

	v, err := reader.Read()
	require.NoError(t, err)
	assert.Equal(t, &Line{Text: "only"}, v)

	_, err = reader.Read()
	assert.Equal(t, io.EOF, err)
}

func TestReadLongLines(t *testing.T) {
	// Well past the bufio.Scanner default token limit of 64 KB.
	long := &Line{Text: strings.Repeat("x", 256*1024)}

	var buffer bytes.Buffer
	writer := jsonl.NewWriter(&buffer)
	require.NoError(t, writer.Write(long))
	require.NoError(t, writer.Flush())

	reader := jsonl.NewReader(&buffer)
	v, err := reader.Read()
	require.NoError(t, err)
	assert.Equal(t, long, v)
}

func TestReadPlainLines(t *testing.T) {
	reader := jsonl.NewReader(strings.NewReader(`{"fruit":"banana"}` + "\n"))

	v, err := reader.Read()
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"fruit": "banana"}, v)
}

func TestReadDecodeFailureStopsStream(t *testing.T) {
	input := `{"_type":"example.com/gone#Ghost"}` + "\n"
	reader := jsonl.NewReader(strings.NewReader(input))

	_, err := reader.Read()
	var unknown *tagjson.UnknownTypeError
	require.ErrorAs(t, err, &unknown)
}
