package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gdamore/tcell/v2"
	"gopkg.in/yaml.v3"

	"example.com/gapedit/pkg/buffer"
	"example.com/gapedit/pkg/history"
)

// Keybinding represents a single key combination.
type Keybinding struct {
	Key  tcell.Key
	Rune rune
	Mod  tcell.ModMask
}

// BufferConfig controls how documents are loaded into gap buffers.
type BufferConfig struct {
	InitialCapacity int  `yaml:"initial_capacity"`
	ExpandTabs      bool `yaml:"expand_tabs"`
	TabWidth        int  `yaml:"tab_width"`
	// HistoryLimit caps the undo stack; 0 keeps every edit.
	HistoryLimit int `yaml:"history_limit"`
}

// ViewConfig controls the viewport.
type ViewConfig struct {
	ScrollOff int `yaml:"scroll_off"`
}

// Config holds user configuration values.
type Config struct {
	Buffer BufferConfig          `yaml:"buffer"`
	View   ViewConfig            `yaml:"view"`
	Theme  string                `yaml:"theme"`
	Keymap map[string]Keybinding `yaml:"-"`
}

// Default returns a Config with default values and key mappings.
func Default() *Config {
	return &Config{
		Buffer: BufferConfig{
			InitialCapacity: buffer.DefaultCapacity,
			TabWidth:        4,
			HistoryLimit:    history.DefaultLimit,
		},
		View:   ViewConfig{ScrollOff: 2},
		Theme:  "default",
		Keymap: DefaultKeymap(),
	}
}

// DefaultKeymap provides builtin command bindings.
func DefaultKeymap() map[string]Keybinding {
	return map[string]Keybinding{
		"quit":        mustParse("Ctrl+Q"),
		"save":        mustParse("Ctrl+S"),
		"search":      mustParse("Ctrl+W"),
		"search_back": mustParse("Ctrl+B"),
		"kill":        mustParse("Ctrl+K"),
		"yank":        mustParse("Ctrl+Y"),
		"yank_pop":    mustParse("Alt+Y"),
		"word_end":    mustParse("Alt+F"),
		"undo":        mustParse("Ctrl+Z"),
		"redo":        mustParse("Ctrl+R"),
		"next":        mustParse("Ctrl+N"),
		"prev":        mustParse("Ctrl+P"),
		"close":       mustParse("Ctrl+D"),
	}
}

// Load loads configuration from the provided path. If the file does not
// exist, defaults are returned. Keys missing from the file keep their
// default values.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	var keys struct {
		Keymap map[string]string `yaml:"keymap"`
	}
	if err := yaml.Unmarshal(data, &keys); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	for cmd, binding := range keys.Keymap {
		kb, err := ParseKeybinding(binding)
		if err != nil {
			return nil, fmt.Errorf("keymap %q: %w", cmd, err)
		}
		cfg.Keymap[cmd] = kb
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
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

// Validate rejects values the buffer and view cannot work with.
func (c *Config) Validate() error {
	if c.Buffer.InitialCapacity < buffer.MinCapacity {
		return fmt.Errorf("buffer.initial_capacity %d below %d: %w", c.Buffer.InitialCapacity, buffer.MinCapacity, buffer.ErrInvalidCapacity)
	}
	if c.Buffer.TabWidth < 1 {
		return fmt.Errorf("buffer.tab_width must be positive, got %d", c.Buffer.TabWidth)
	}
	if c.Buffer.HistoryLimit < 0 {
		return fmt.Errorf("buffer.history_limit must not be negative, got %d", c.Buffer.HistoryLimit)
	}
	if c.View.ScrollOff < 0 {
		return fmt.Errorf("view.scroll_off must not be negative, got %d", c.View.ScrollOff)
	}
	if _, ok := BuiltinThemes[c.Theme]; !ok {
		return fmt.Errorf("unknown theme %q", c.Theme)
	}
	return nil
}

// ParseKeybinding converts a textual key description like "Ctrl+S" or
// "Alt+F" into a Keybinding. Only a single modifier plus a letter is supported.
func ParseKeybinding(s string) (Keybinding, error) {
	parts := strings.Split(s, "+")
	if len(parts) != 2 {
		return Keybinding{}, errors.New("invalid keybinding: " + s)
	}
	var mod tcell.ModMask
	switch strings.ToLower(parts[0]) {
	case "ctrl":
		mod = tcell.ModCtrl
	case "alt":
		mod = tcell.ModAlt
	default:
		return Keybinding{}, errors.New("invalid modifier in keybinding: " + s)
	}
	r := []rune(strings.ToLower(parts[1]))
	if len(r) != 1 || r[0] < 'a' || r[0] > 'z' {
		return Keybinding{}, errors.New("invalid key in keybinding: " + s)
	}
	return Keybinding{Key: tcell.KeyRune, Rune: r[0], Mod: mod}, nil
}

func mustParse(s string) Keybinding {
	kb, _ := ParseKeybinding(s)
	return kb
}

// ctrlKey maps a letter to the control key tcell reports on terminals that
// fold Ctrl+<letter> into a single key code.
func ctrlKey(r rune) tcell.Key {
	return tcell.KeyCtrlA + tcell.Key(r-'a')
}

// Matches returns true if the binding matches the provided event.
func (k Keybinding) Matches(ev *tcell.EventKey) bool {
	if k.Key == ev.Key() && k.Rune == ev.Rune() && k.Mod == ev.Modifiers() {
		return true
	}
	if k.Key == tcell.KeyRune && k.Mod == tcell.ModCtrl && k.Rune >= 'a' && k.Rune <= 'z' {
		return ev.Key() == ctrlKey(k.Rune)
	}
	return false
}
