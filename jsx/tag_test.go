package jsx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchTag(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		subset  TagSubset
		matched bool
		typ     TagType
		length  int
	}{
		{"opening", "<div>x", SubsetAll, true, TagOpening, 5},
		{"self closing", "<br/>x", SubsetAll, true, TagSelfClosing, 5},
		{"with attribute", `<a href="x">y`, SubsetAll, true, TagOpening, 12},
		{"closing", "</div>x", SubsetAll, true, TagClosing, 6},
		{"closing rejected in non_closing subset", "</div>x", SubsetNonClosing, false, TagOpening, 0},
		{"not a tag", "< 1", SubsetAll, false, TagOpening, 0},
		{"member element name", "<Foo.Bar />x", SubsetAll, true, TagSelfClosing, 11},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchTag([]byte(tt.in), tt.subset)
			assert.Equal(t, tt.matched, got.Matched())
			if tt.matched {
				assert.Equal(t, tt.typ, got.Type)
				assert.Equal(t, tt.length, got.Length)
			}
		})
	}
}

func TestMatchTag_bracedAttribute(t *testing.T) {
	got := MatchTag([]byte(`<Foo x={a + {b: 1}.b} />rest`), SubsetAll)
	require.True(t, got.Matched())
	assert.Equal(t, TagSelfClosing, got.Type)
}
