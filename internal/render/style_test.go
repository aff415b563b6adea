package render

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"
)

func TestDefaultStyle(t *testing.T) {
	s := DefaultStyle()

	assert.Equal(t, color.NRGBA{R: 0xEE, G: 0xEE, B: 0xEE, A: 0xFF}, s.Background)
	assert.Equal(t, color.NRGBA{R: 0xAA, G: 0xAA, B: 0xAA, A: 0xFF}, s.Known)
	assert.Equal(t, color.NRGBA{R: 0x1F, G: 0x77, B: 0xB4, A: 0xFF}, s.Highlight)
	assert.Equal(t, 8*vg.Inch, s.Width)
	assert.Equal(t, 96, s.DPI)
}

func TestLoadStyleEmptyPath(t *testing.T) {
	s, err := LoadStyle("")
	require.NoError(t, err)

	assert.Equal(t, DefaultStyle(), s)
}

func TestLoadStyleOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "style.yaml")
	content := "background: \"#FFFFFF\"\nhighlight: \"336699\"\nwidth_in: 4\ndpi: 200\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	s, err := LoadStyle(path)
	require.NoError(t, err)

	assert.Equal(t, color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}, s.Background)
	assert.Equal(t, color.NRGBA{R: 0x33, G: 0x66, B: 0x99, A: 0xFF}, s.Highlight)
	assert.Equal(t, 4*vg.Inch, s.Width)
	assert.Equal(t, 200, s.DPI)

	// Fields absent from the file keep their defaults.
	assert.Equal(t, DefaultStyle().Known, s.Known)
	assert.Equal(t, DefaultStyle().ColorBar, s.ColorBar)
	assert.Equal(t, DefaultStyle().TitleSize, s.TitleSize)
}

func TestLoadStyleBadColor(t *testing.T) {
	path := filepath.Join(t.TempDir(), "style.yaml")
	require.NoError(t, os.WriteFile(path, []byte("known: \"#12345\"\n"), 0644))

	_, err := LoadStyle(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "RRGGBB")
}

func TestLoadStyleMissingFile(t *testing.T) {
	_, err := LoadStyle(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestLoadStyleBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "style.yaml")
	require.NoError(t, os.WriteFile(path, []byte("background: [not\n"), 0644))

	_, err := LoadStyle(path)
	require.Error(t, err)
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{name: "with hash", in: "#1F77B4", want: color.NRGBA{R: 0x1F, G: 0x77, B: 0xB4, A: 0xFF}},
		{name: "without hash", in: "aabbcc", want: color.NRGBA{R: 0xAA, G: 0xBB, B: 0xCC, A: 0xFF}},
		{name: "padded", in: "  #EEEEEE ", want: color.NRGBA{R: 0xEE, G: 0xEE, B: 0xEE, A: 0xFF}},
		{name: "short form", in: "#FFF", wantErr: true},
		{name: "not hex", in: "#GGHHII", wantErr: true},
		{name: "trailing junk", in: "12345G", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseHexColor(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
