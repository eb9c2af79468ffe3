package record

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeDocument(t *testing.T) {
	col, err := DecodeDocument([]byte(`[
		{"id": "k1", "title": "Ishq Nabi", "lyricsLineLayout": 2},
		{"id": "k2", "groupId": "g1", "aeoSchema": {"@type": "CreativeWork"}}
	]`))
	require.NoError(t, err)
	require.Len(t, col, 2)

	// numbers stay json.Number, unknown fields stay put
	assert.Equal(t, json.Number("2"), col[0]["lyricsLineLayout"])
	assert.Equal(t, "g1", col[1].String("groupId"))
	assert.Equal(t, map[string]any{"@type": "CreativeWork"}, col[1]["aeoSchema"])
}

func TestDecodeDocumentRejects(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"not_json", `{not an array}`},
		{"object_top_level", `{"id": "k1"}`},
		{"scalar_top_level", `"hello"`},
		{"non_object_element", `[1, 2, 3]`},
		{"trailing_data", `[] []`},
		{"empty_input", ``},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeDocument([]byte(tt.text))
			assert.Error(t, err)
		})
	}
}

func TestDocumentRoundTrip(t *testing.T) {
	col := Collection{
		{
			FieldID:            "k1",
			"title":            "Hello World",
			"slug":             "hello-world",
			"lyricsLineLayout": json.Number("4"),
			"published":        true,
			"aeoSchema":        map[string]any{"name": "Hello World"},
			"tags":             []any{"naat", json.Number("7")},
			"thumbnailName":    nil,
		},
		{FieldID: "k2", "groupId": "g1"},
	}

	data, err := EncodeDocument(col)
	require.NoError(t, err)

	back, err := DecodeDocument(data)
	require.NoError(t, err)
	assert.Equal(t, col, back)
}

func TestEncodeDocumentEmpty(t *testing.T) {
	data, err := EncodeDocument(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))
}

func TestDecodeValue(t *testing.T) {
	tests := []struct {
		name string
		text string
		want any
	}{
		{"number", "2", json.Number("2")},
		{"bool", "true", true},
		{"null", "null", nil},
		{"object", `{"a": 1}`, map[string]any{"a": json.Number("1")}},
		{"quoted_string", `"hi"`, "hi"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeValue(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, text := range []string{"", "hello world", "{broken", "1 2"} {
		_, err := DecodeValue(text)
		assert.Error(t, err, "text %q should not parse", text)
	}
}
