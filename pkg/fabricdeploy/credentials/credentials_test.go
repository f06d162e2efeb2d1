package credentials

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePrompter struct {
	answers map[string]string
	asked   []string
}

func (p *fakePrompter) Prompt(label string, secret bool) (string, error) {
	p.asked = append(p.asked, label)
	return p.answers[label], nil
}

func env(values map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	}
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "creds.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestAddFlags(t *testing.T) {
	var c Credentials
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	c.AddFlags(fs)

	require.NoError(t, fs.Parse([]string{"-u", "https://apic", "-l", "admin", "-i", "ports.xlsx", "-d", "--insecure"}))
	assert.Equal(t, "https://apic", c.URL)
	assert.Equal(t, "admin", c.Login)
	assert.Equal(t, "ports.xlsx", c.Input)
	assert.True(t, c.Debug)
	assert.True(t, c.Insecure)
	assert.Equal(t, DefaultFile, c.File)
}

func TestCompletePrecedence(t *testing.T) {
	path := writeFile(t, "url: https://from-file\nlogin: file-user\n")
	c := Credentials{URL: "https://from-flag", File: path}
	p := &fakePrompter{answers: map[string]string{"Password": "typed"}}

	err := c.Complete(
		WithLookupEnv(env(map[string]string{EnvURL: "https://from-env", EnvLogin: "env-user"})),
		WithPrompter(p),
	)
	require.NoError(t, err)

	assert.Equal(t, "https://from-flag", c.URL)
	assert.Equal(t, "file-user", c.Login)
	assert.Equal(t, "typed", c.Password)
	assert.Equal(t, []string{"Password"}, p.asked)
}

func TestCompleteFromEnv(t *testing.T) {
	c := Credentials{File: filepath.Join(t.TempDir(), "absent.yaml")}
	err := c.Complete(WithLookupEnv(env(map[string]string{
		EnvURL:      "https://apic",
		EnvLogin:    "admin",
		EnvPassword: "secret",
	})))
	require.NoError(t, err)
	assert.Equal(t, Credentials{URL: "https://apic", Login: "admin", Password: "secret", File: c.File}, c)
}

func TestCompleteMissingFile(t *testing.T) {
	c := Credentials{File: filepath.Join(t.TempDir(), "absent.yaml")}
	err := c.Complete(WithLookupEnv(env(nil)), WithFileRequired(true))
	assert.Error(t, err)
}

func TestCompleteBadFile(t *testing.T) {
	c := Credentials{File: writeFile(t, "url: [unterminated\n")}
	err := c.Complete(WithLookupEnv(env(nil)))
	assert.Error(t, err)

	c = Credentials{File: writeFile(t, "uri: https://typo\n")}
	err = c.Complete(WithLookupEnv(env(nil)))
	assert.Error(t, err)
}

func TestCompleteInsecureFromFile(t *testing.T) {
	c := Credentials{File: writeFile(t, "insecure: true\n")}
	require.NoError(t, c.Complete(WithLookupEnv(env(nil))))
	assert.True(t, c.Insecure)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name          string
		creds         Credentials
		requireFabric bool
		wantErr       error
	}{
		{"no input", Credentials{URL: "u", Login: "l", Password: "p"}, true, ErrInputMissing},
		{"no input dry run", Credentials{}, false, ErrInputMissing},
		{"dry run", Credentials{Input: "in.xlsx"}, false, nil},
		{"no password", Credentials{Input: "in.xlsx", URL: "u", Login: "l"}, true, ErrFabricMissing},
		{"complete", Credentials{Input: "in.xlsx", URL: "u", Login: "l", Password: "p"}, true, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.creds.Validate(tt.requireFabric)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
