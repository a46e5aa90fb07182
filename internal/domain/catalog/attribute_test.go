package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewColor(t *testing.T) {
	tests := []struct {
		name    string
		hex     string
		want    string
		wantErr bool
	}{
		{"six digit", "#ff0000", "#FF0000", false},
		{"three digit", "#fff", "#FFF", false},
		{"missing hash", "00ff00", "#00FF00", false},
		{"bad length", "#ff00", "", true},
		{"bad chars", "#gg0000", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewColor("Red", "أحمر", tt.hex)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.HexCode)
		})
	}
}

func TestColor_Update(t *testing.T) {
	c, err := NewColor("Red", "أحمر", "#F00")
	require.NoError(t, err)

	require.NoError(t, c.Update("Navy", "كحلي", "#000080"))
	assert.Equal(t, "Navy", c.Name)
	assert.Equal(t, "#000080", c.HexCode)

	require.Error(t, c.Update("", "كحلي", "#000080"))
	assert.Equal(t, "Navy", c.Name)
}

func TestNewSize(t *testing.T) {
	s, err := NewSize(" XL ", 4)
	require.NoError(t, err)
	assert.Equal(t, "XL", s.Name)
	assert.Equal(t, 4, s.SortOrder)

	_, err = NewSize("", 0)
	require.Error(t, err)

	_, err = NewSize("M", -1)
	require.Error(t, err)

	require.NoError(t, s.Update("XXL", 5))
	assert.Equal(t, "XXL", s.Name)
}
