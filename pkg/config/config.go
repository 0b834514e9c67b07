package config

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Keybinding represents a single key combination.
type Keybinding struct {
	Key  tcell.Key
	Rune rune
	Mod  tcell.ModMask
}

// Config holds user configuration values.
type Config struct {
	// UnderscoreBreaks treats '_' as a word-break character for word-wise
	// motion and deletion.
	UnderscoreBreaks bool `yaml:"underscore_breaks_words"`
	// InitialSlack is the free space reserved when a file is loaded.
	InitialSlack int `yaml:"initial_slack"`
	// GrowthIncrement is the fixed number of bytes added on each growth.
	GrowthIncrement int                   `yaml:"growth_increment"`
	Keymap          map[string]Keybinding `yaml:"keymap"`
	Theme           Theme                 `yaml:"-"`
}

// Default returns a Config with default key mappings.
func Default() *Config {
	return &Config{
		InitialSlack:    1024,
		GrowthIncrement: 1024,
		Keymap:          DefaultKeymap(),
		Theme:           DefaultTheme(),
	}
}

// DefaultKeymap provides builtin command bindings.
func DefaultKeymap() map[string]Keybinding {
	return map[string]Keybinding{
		"quit":   mustParse("Ctrl+Q"),
		"save":   mustParse("Ctrl+S"),
		"saveas": mustParse("Ctrl+A"),
		"open":   mustParse("Ctrl+O"),
		"new":    mustParse("Ctrl+T"),
		"close":  mustParse("Ctrl+X"),
		"search": mustParse("Ctrl+W"),
		"next":   mustParse("Ctrl+N"),
		"prev":   mustParse("Ctrl+P"),
	}
}

// Load loads configuration from the provided path. If the file does not
// exist, defaults are returned.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	lines := strings.Split(string(data), "\n")
	inKeymap := false
	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if line == "keymap:" {
			inKeymap = true
			continue
		}
		indented := strings.HasPrefix(raw, " ") || strings.HasPrefix(raw, "\t")
		if inKeymap && !indented {
			inKeymap = false
		}
		parts := strings.SplitN(line, ":", 2)
		if len(parts) != 2 {
			return nil, errors.New("invalid config line: " + line)
		}
		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])
		if inKeymap {
			kb, err := ParseKeybinding(value)
			if err != nil {
				return nil, err
			}
			cfg.Keymap[key] = kb
			continue
		}
		if err := cfg.set(key, value); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func (c *Config) set(key, value string) error {
	switch key {
	case "underscore_breaks_words":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return errors.New("invalid value for " + key + ": " + value)
		}
		c.UnderscoreBreaks = b
	case "initial_slack", "growth_increment":
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			return errors.New("invalid value for " + key + ": " + value)
		}
		if key == "initial_slack" {
			c.InitialSlack = n
		} else {
			c.GrowthIncrement = n
		}
	default:
		return errors.New("unknown config key: " + key)
	}
	return nil
}

// LoadDefault attempts to read ~/.gapedit/config.yaml.
func LoadDefault() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Default(), nil
	}
	path := filepath.Join(home, ".gapedit", "config.yaml")
	return Load(path)
}

// ParseKeybinding converts a textual key description like "Ctrl+S" into a
// Keybinding. Currently only Ctrl+<letter> is supported.
func ParseKeybinding(s string) (Keybinding, error) {
	parts := strings.Split(s, "+")
	if len(parts) != 2 {
		return Keybinding{}, errors.New("invalid keybinding: " + s)
	}
	if !strings.EqualFold(parts[0], "ctrl") {
		return Keybinding{}, errors.New("invalid modifier in keybinding: " + s)
	}
	r := []rune(strings.ToLower(parts[1]))
	if len(r) != 1 || r[0] < 'a' || r[0] > 'z' {
		return Keybinding{}, errors.New("invalid key in keybinding: " + s)
	}
	return Keybinding{Key: tcell.KeyRune, Rune: r[0], Mod: tcell.ModCtrl}, nil
}

func mustParse(s string) Keybinding {
	kb, _ := ParseKeybinding(s)
	return kb
}

// Matches returns true if the binding matches the provided event.
func (k Keybinding) Matches(ev *tcell.EventKey) bool {
	if k.Key == ev.Key() && k.Rune == ev.Rune() && k.Mod == ev.Modifiers() {
		return true
	}
	if k.Key == tcell.KeyRune && k.Mod == tcell.ModCtrl && k.Rune >= 'a' && k.Rune <= 'z' {
		if ev.Key() == tcell.KeyCtrlA+tcell.Key(k.Rune-'a') {
			return true
		}
	}
	return false
}
