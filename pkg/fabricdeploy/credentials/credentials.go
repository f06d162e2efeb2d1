// Package credentials gathers the controller URL, login and password and
// the input path from flags, a YAML file, the environment and, as a last
// resort, an interactive prompt.
package credentials

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"sigs.k8s.io/yaml"
)

// DefaultFile is read when present unless another file is given.
const DefaultFile = "credentials.yaml"

// Environment variables consulted for missing values.
const (
	EnvURL      = "APIC_URL"
	EnvLogin    = "APIC_LOGIN"
	EnvPassword = "APIC_PASSWORD"
)

var (
	// ErrInputMissing indicates that no input spreadsheet was given.
	ErrInputMissing = errors.New("input filename missing, pass it using --input <filename>")
	// ErrFabricMissing indicates an incomplete set of controller credentials.
	ErrFabricMissing = errors.New("controller credentials missing")
)

// Credentials is everything the tool needs to know about where to read
// from and where to push to.
type Credentials struct {
	URL      string `json:"url"`
	Login    string `json:"login"`
	Password string `json:"password"`
	Insecure bool   `json:"insecure"`

	Input string `json:"-"`
	Debug bool   `json:"-"`
	// File is the path of the YAML credentials file.
	File string `json:"-"`
}

// AddFlags registers the credential flags on fs.
func (c *Credentials) AddFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&c.URL, "url", "u", "", "Controller URL (env "+EnvURL+")")
	fs.StringVarP(&c.Login, "login", "l", "", "Controller login (env "+EnvLogin+")")
	fs.StringVarP(&c.Password, "password", "p", "", "Controller password (env "+EnvPassword+")")
	fs.StringVarP(&c.Input, "input", "i", "", "Input spreadsheet")
	fs.BoolVarP(&c.Debug, "debug", "d", false, "Enable debug output")
	fs.BoolVar(&c.Insecure, "insecure", false, "Skip verification of the controller certificate")
	fs.StringVar(&c.File, "credentials", DefaultFile, "YAML file with url, login and password")
}

// Option configures Complete.
type Option func(*resolver)

type resolver struct {
	lookupEnv    func(string) (string, bool)
	prompter     Prompter
	fileRequired bool
}

// WithLookupEnv replaces os.LookupEnv.
func WithLookupEnv(fn func(string) (string, bool)) Option {
	return func(r *resolver) {
		r.lookupEnv = fn
	}
}

// WithPrompter asks p for values still missing after file and environment.
func WithPrompter(p Prompter) Option {
	return func(r *resolver) {
		r.prompter = p
	}
}

// WithFileRequired makes a missing credentials file an error.
func WithFileRequired(required bool) Option {
	return func(r *resolver) {
		r.fileRequired = required
	}
}

// Complete fills the fields left empty by flags. Sources are tried in
// order: credentials file, environment, prompt.
func (c *Credentials) Complete(opts ...Option) error {
	r := &resolver{lookupEnv: os.LookupEnv}
	for _, opt := range opts {
		opt(r)
	}

	if err := c.readFile(r.fileRequired); err != nil {
		return err
	}

	fillFromEnv(&c.URL, EnvURL, r.lookupEnv)
	fillFromEnv(&c.Login, EnvLogin, r.lookupEnv)
	fillFromEnv(&c.Password, EnvPassword, r.lookupEnv)

	if r.prompter == nil {
		return nil
	}
	for _, f := range []struct {
		value  *string
		label  string
		secret bool
	}{
		{&c.URL, "Controller URL", false},
		{&c.Login, "Login", false},
		{&c.Password, "Password", true},
	} {
		if *f.value != "" {
			continue
		}
		v, err := r.prompter.Prompt(f.label, f.secret)
		if err != nil {
			return fmt.Errorf("credentials: reading %s: %w", f.label, err)
		}
		*f.value = v
	}
	return nil
}

func (c *Credentials) readFile(required bool) error {
	if c.File == "" {
		return nil
	}
	data, err := os.ReadFile(c.File)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return nil
		}
		return fmt.Errorf("credentials: %w", err)
	}

	var fromFile Credentials
	if err := yaml.UnmarshalStrict(data, &fromFile); err != nil {
		return fmt.Errorf("credentials: parsing %s: %w", c.File, err)
	}
	if c.URL == "" {
		c.URL = fromFile.URL
	}
	if c.Login == "" {
		c.Login = fromFile.Login
	}
	if c.Password == "" {
		c.Password = fromFile.Password
	}
	c.Insecure = c.Insecure || fromFile.Insecure
	return nil
}

func fillFromEnv(value *string, key string, lookupEnv func(string) (string, bool)) {
	if *value != "" {
		return
	}
	if v, ok := lookupEnv(key); ok {
		*value = v
	}
}

// Validate checks that an input path is set and, when requireFabric is
// true, that the controller credentials are complete.
func (c *Credentials) Validate(requireFabric bool) error {
	if c.Input == "" {
		return ErrInputMissing
	}
	if !requireFabric {
		return nil
	}
	switch {
	case c.URL == "":
		return fmt.Errorf("%w: url", ErrFabricMissing)
	case c.Login == "":
		return fmt.Errorf("%w: login", ErrFabricMissing)
	case c.Password == "":
		return fmt.Errorf("%w: password", ErrFabricMissing)
	}
	return nil
}
