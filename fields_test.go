package tagjson_test

import (
	"testing"

	"github.com/srand/tagjson"
	"github.com/stretchr/testify/assert"
)

func TestFieldsAccessors(t *testing.T) {
	f := tagjson.Fields{
		tagjson.TagKey: "example.com/pkg#Thing",
		"name":         "widget",
		"count":        float64(3),
		"ratio":        2.5,
		"on":           true,
		"items":        []any{"a", "b"},
		"meta":         map[string]any{"k": "v"},
	}

	assert.Equal(t, "example.com/pkg#Thing", f.Tag())
	assert.Equal(t, "widget", f.String("name"))
	assert.Equal(t, 3, f.Int("count"))
	assert.Equal(t, 2.5, f.Float("ratio"))
	assert.True(t, f.Bool("on"))
	assert.Equal(t, []any{"a", "b"}, f.Slice("items"))
	assert.Equal(t, map[string]any{"k": "v"}, f.Map("meta"))
	assert.True(t, f.Has("name"))
	assert.False(t, f.Has("missing"))
	assert.Nil(t, f.Get("missing"))
}

func TestFieldsZeroValues(t *testing.T) {
	f := tagjson.Fields{"name": 7}

	assert.Empty(t, f.Tag())
	assert.Empty(t, f.String("name")) // wrong type, not coerced
	assert.Zero(t, f.Int("missing"))
	assert.False(t, f.Bool("missing"))
	assert.Nil(t, f.Slice("missing"))
	assert.Nil(t, f.Map("missing"))
}

func TestTagForDerivation(t *testing.T) {
	tag := tagjson.TagFor(&Greeting{})

	assert.Equal(t, tag, tagjson.TagFor(Greeting{}))
	assert.Contains(t, tag, "#Greeting")
	assert.NotContains(t, tag[len(tag)-len("Greeting"):], "#")

	// Distinct types never share a tag.
	assert.NotEqual(t, tag, tagjson.TagFor(&Pair{}))
}
