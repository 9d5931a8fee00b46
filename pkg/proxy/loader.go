package proxy

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"math/rand"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// FileSettings configures loading a rotating proxy from a proxy list file.
// The file holds one proxy per line, "host:port:username:password" or
// "host:port"; blank lines are skipped. Scheme applies to every row and
// defaults to http.
type FileSettings struct {
	Path   string `validate:"required"`
	Scheme Scheme `validate:"omitempty,oneof=http socks5"`
}

// StaticSettings configures a single static proxy.
type StaticSettings struct {
	Host     string `validate:"required"`
	Scheme   Scheme `validate:"required,oneof=http socks5"`
	Port     int    `validate:"required,min=1,max=65535"`
	Username string
	Password string
}

// Settings carries both loading modes. Load resolves them with file mode
// taking precedence.
type Settings struct {
	File   FileSettings
	Static StaticSettings
}

// LoadFile reads the configured proxy file and returns a RotatingProxy over
// its rows in random order. A row that fails to parse aborts the whole load;
// a readable file with zero usable rows fails with ErrEmptyProxyFile.
func LoadFile(s FileSettings) (*RotatingProxy, error) {
	if err := validateSettings("file", s); err != nil {
		return nil, err
	}

	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("opening proxy file: %w", err)
	}
	defer f.Close()

	var proxies []StaticProxy
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		p, err := ParseRow(line, s.Scheme)
		if err != nil {
			return nil, fmt.Errorf("parsing proxy file %s: %w", s.Path, err)
		}
		proxies = append(proxies, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading proxy file %s: %w", s.Path, err)
	}

	if len(proxies) == 0 {
		return nil, fmt.Errorf("proxy file %s: %w", s.Path, ErrEmptyProxyFile)
	}

	// Randomize the starting order so concurrent processes sharing one file
	// don't hammer the same endpoints in lockstep.
	rand.Shuffle(len(proxies), func(i, j int) {
		proxies[i], proxies[j] = proxies[j], proxies[i]
	})

	return NewRotatingProxy(proxies)
}

// LoadStatic builds a single static proxy from settings.
func LoadStatic(s StaticSettings) (StaticProxy, error) {
	if err := validateSettings("static", s); err != nil {
		return StaticProxy{}, err
	}

	return StaticProxy{
		Scheme:   s.Scheme,
		Host:     s.Host,
		Port:     s.Port,
		Username: s.Username,
		Password: s.Password,
	}, nil
}

// Load resolves a Proxy from settings. File mode is attempted first; if its
// settings are absent or the file does not exist, static mode is tried. A
// file that is configured but malformed or empty is fatal and does not fall
// through. When neither mode is configured the error names both shapes.
func Load(s Settings) (Proxy, error) {
	rotating, err := LoadFile(s.File)
	if err == nil {
		return rotating, nil
	}

	var missing *MissingSettingError
	if !errors.As(err, &missing) && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	static, err := LoadStatic(s.Static)
	if err == nil {
		return static, nil
	}
	if errors.As(err, &missing) {
		return nil, ErrNoConfiguration
	}
	return nil, err
}
