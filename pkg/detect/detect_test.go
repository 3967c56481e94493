// Test Type: Unit Test
// Description: Tests for the detect package - detection method evaluation

package detect_test

import (
	"io/fs"
	"os"
	"testing"

	"github.com/arthur-debert/linkdot/pkg/detect"
	"github.com/arthur-debert/linkdot/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedPrograms []string

func (f fixedPrograms) Names() ([]string, error) { return f, nil }

func newDetector(programs ...string) *detect.Detector {
	return &detect.Detector{
		Programs: fixedPrograms(programs),
		LookPath: func(name string) (string, error) {
			for _, p := range programs {
				if p == name {
					return "/usr/bin/" + name, nil
				}
			}
			return "", os.ErrNotExist
		},
		Stat: func(name string) (os.FileInfo, error) {
			return nil, fs.ErrNotExist
		},
	}
}

func TestDetectNone(t *testing.T) {
	got, err := newDetector().Detect("git", detect.Spec{})
	require.NoError(t, err)
	assert.Equal(t, types.NoLogic, got)
}

func TestDetectStatic(t *testing.T) {
	tests := []struct {
		name string
		spec detect.Spec
		want types.Availability
	}{
		{"always", detect.Spec{Method: detect.MethodStatic, Result: types.AlwaysInstall}, types.AlwaysInstall},
		{"never", detect.Spec{Method: detect.MethodStatic, Result: types.NeverInstall}, types.NeverInstall},
		{"ignored", detect.Spec{Method: detect.MethodStatic, Result: types.Ignored}, types.Ignored},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := newDetector().Detect("x", tt.spec)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetectStaticWithoutResult(t *testing.T) {
	got, err := newDetector().Detect("x", detect.Spec{Method: detect.MethodStatic})
	assert.Error(t, err)
	assert.Equal(t, types.DetectionFailure, got)
}

func TestDetectBinary(t *testing.T) {
	d := newDetector("git", "vim")

	got, err := d.Detect("git", detect.Spec{Method: detect.MethodBinary})
	require.NoError(t, err)
	assert.Equal(t, types.Available, got, "binary name defaults to component name")

	got, err = d.Detect("neovim", detect.Spec{Method: detect.MethodBinary, Binary: "nvim"})
	require.NoError(t, err)
	assert.Equal(t, types.Unavailable, got)
}

func TestDetectPath(t *testing.T) {
	d := newDetector()
	d.Stat = func(name string) (os.FileInfo, error) {
		if name == "/etc/ssh" {
			return nil, nil
		}
		return nil, os.ErrNotExist
	}

	got, err := d.Detect("ssh", detect.Spec{Method: detect.MethodPath, Path: "/etc/ssh"})
	require.NoError(t, err)
	assert.Equal(t, types.Available, got)

	got, err = d.Detect("ssh", detect.Spec{Method: detect.MethodPath, Path: "/etc/nope"})
	require.NoError(t, err)
	assert.Equal(t, types.Unavailable, got)
}

func TestDetectAutomaticSubstring(t *testing.T) {
	d := newDetector("git-lfs", "GitHub CLI", "vim")

	got, err := d.Detect("git", detect.Spec{Method: detect.MethodAutomatic})
	require.NoError(t, err)
	assert.Equal(t, types.Available, got, "substring match is case-insensitive")

	got, err = d.Detect("emacs", detect.Spec{Method: detect.MethodAutomatic})
	require.NoError(t, err)
	assert.Equal(t, types.Unavailable, got)
}

func TestDetectAutomaticRegex(t *testing.T) {
	d := newDetector("python3.12", "vim")

	got, err := d.Detect("python", detect.Spec{
		Method: detect.MethodAutomatic,
		Match:  `^python3\.\d+$`,
		Regex:  true,
	})
	require.NoError(t, err)
	assert.Equal(t, types.Available, got)

	got, err = d.Detect("python", detect.Spec{
		Method: detect.MethodAutomatic,
		Match:  `(`,
		Regex:  true,
	})
	assert.Error(t, err)
	assert.Equal(t, types.DetectionFailure, got)
}
