package docfactory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeepCopy_BreaksAliasingToDocument(t *testing.T) {
	f, err := New(Descriptor{Key: "tags", Copy: Bool(true)})
	require.NoError(t, err)

	tags := []string{"dx", "contest"}
	doc, err := f.ToJSON(map[string]any{"tags": tags}, nil)
	require.NoError(t, err)

	tags[0] = "mutated"
	assert.Equal(t, []string{"dx", "contest"}, doc["tags"])
}

func TestDeepCopy_BreaksAliasingFromDocument(t *testing.T) {
	f, err := New(Descriptor{Key: "meta", Copy: Bool(true)})
	require.NoError(t, err)

	meta := map[string]any{"carrier": "7Q"}
	out, err := f.FromJSON(Document{"meta": meta}, nil)
	require.NoError(t, err)

	meta["carrier"] = "mutated"
	got := out.(*Record).Get("meta").(map[string]any)
	assert.Equal(t, "7Q", got["carrier"])
}

func TestDeepCopy_NilValueStaysNil(t *testing.T) {
	f, err := New(Descriptor{Key: "meta", Copy: Bool(true)})
	require.NoError(t, err)

	doc, err := f.ToJSON(map[string]any{}, nil)
	require.NoError(t, err)
	assert.Nil(t, doc["meta"])
}

func TestCopyFalse_PreservesAliasing(t *testing.T) {
	f, err := New(Descriptor{Key: "tags", Copy: Bool(false)})
	require.NoError(t, err)

	tags := []string{"dx"}
	doc, err := f.ToJSON(map[string]any{"tags": tags}, nil)
	require.NoError(t, err)

	// Shared structure: mutations are visible on both sides.
	tags[0] = "mutated"
	assert.Equal(t, []string{"mutated"}, doc["tags"])

	out, err := f.FromJSON(doc, nil)
	require.NoError(t, err)
	doc["tags"].([]string)[0] = "again"
	assert.Equal(t, []string{"again"}, out.(*Record).Get("tags"))
}
