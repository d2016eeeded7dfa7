package pager

import (
	"bytes"
	"context"
	"io"
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// onPath simulates a PATH containing only the named programs.
func onPath(names ...string) func(string) (string, error) {
	return func(name string) (string, error) {
		for _, n := range names {
			if n == name {
				return "/usr/bin/" + name, nil
			}
		}
		return "", exec.ErrNotFound
	}
}

func fixedEnv(vars map[string]string) func(string) string {
	return func(key string) string { return vars[key] }
}

func TestCommandResolution(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		interactive bool
		env         map[string]string
		lookPath    func(string) (string, error)
		want        []string
	}{
		{
			name:        "not a terminal",
			interactive: false,
			env:         map[string]string{"PAGER": "less"},
			lookPath:    onPath("less"),
			want:        nil,
		},
		{
			name:        "PAGER wins over the defaults",
			interactive: true,
			env:         map[string]string{"PAGER": "mypager --raw"},
			lookPath:    onPath("mypager", "less", "more"),
			want:        []string{"mypager", "--raw"},
		},
		{
			name:        "PAGER set to cat disables paging",
			interactive: true,
			env:         map[string]string{"PAGER": "cat"},
			lookPath:    onPath("cat", "less"),
			want:        nil,
		},
		{
			name:        "missing PAGER program falls back to less",
			interactive: true,
			env:         map[string]string{"PAGER": "not-installed"},
			lookPath:    onPath("less", "more"),
			want:        []string{"less"},
		},
		{
			name:        "less preferred over more",
			interactive: true,
			env:         nil,
			lookPath:    onPath("more", "less"),
			want:        []string{"less"},
		},
		{
			name:        "more when less is absent",
			interactive: true,
			env:         nil,
			lookPath:    onPath("more"),
			want:        []string{"more"},
		},
		{
			name:        "no pager anywhere",
			interactive: true,
			env:         nil,
			lookPath:    onPath(),
			want:        nil,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := &Pager{
				interactive: tt.interactive,
				getenv:      fixedEnv(tt.env),
				lookPath:    tt.lookPath,
			}
			assert.Equal(t, tt.want, p.command())
		})
	}
}

func TestNewTreatsPlainWritersAsNonTerminal(t *testing.T) {
	t.Parallel()

	p := New(&bytes.Buffer{}, io.Discard)
	assert.False(t, p.interactive)
	assert.Nil(t, p.command())
}

func TestPageCopiesWhenNoPagerRuns(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	p := &Pager{
		out:         &out,
		errOut:      io.Discard,
		interactive: false,
		getenv:      fixedEnv(nil),
		lookPath:    onPath(),
	}

	content := "# a document\n\nwith two lines\n"
	err := p.Page(context.Background(), strings.NewReader(content))
	require.NoError(t, err)
	assert.Equal(t, content, out.String())
}

func TestPageForwardsEveryByteInOrder(t *testing.T) {
	var out bytes.Buffer
	p := &Pager{
		out:         &out,
		errOut:      io.Discard,
		interactive: true,
		getenv:      fixedEnv(map[string]string{"PAGER": "sh -c cat"}),
		lookPath:    exec.LookPath,
	}

	content := strings.Repeat("pages and pages of text\n", 512)
	err := p.Page(context.Background(), strings.NewReader(content))
	require.NoError(t, err)
	assert.Equal(t, content, out.String())
}

func TestPageEarlyQuitIsNormalTermination(t *testing.T) {
	var out bytes.Buffer
	p := &Pager{
		out:         &out,
		errOut:      io.Discard,
		interactive: true,
		getenv:      fixedEnv(map[string]string{"PAGER": "head -c64"}),
		lookPath:    exec.LookPath,
	}

	// Far more than the kernel pipe buffer, so the forward is still in
	// flight when the pager stops reading.
	payload := strings.Repeat("0123456789abcdef", 1<<16)
	err := p.Page(context.Background(), strings.NewReader(payload))
	require.NoError(t, err, "a pager that quits early must look like success")
	assert.Equal(t, payload[:64], out.String())
}

func TestPagerEnvDefaults(t *testing.T) {
	t.Parallel()

	env := pagerEnv([]string{"HOME=/home/someone"})
	assert.Contains(t, env, "LESS=FRX")
	assert.Contains(t, env, "LV=-c")

	env = pagerEnv([]string{"LESS=S", "LV=-Ou"})
	assert.NotContains(t, env, "LESS=FRX")
	assert.NotContains(t, env, "LV=-c")
	assert.Contains(t, env, "LESS=S")
}
