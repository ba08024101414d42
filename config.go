package wheelie

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config holds the read-only feature toggles the dispatcher consults.
type Config struct {
	General   GeneralConfig   `toml:"general"`
	Scrolling ScrollingConfig `toml:"scrolling"`
	Sort      SortConfig      `toml:"sort"`
}

// GeneralConfig toggles the click and drag gestures.
type GeneralConfig struct {
	// AltDropping lets Alt-click and Alt-drag drop stacks.
	AltDropping bool `toml:"enable_alt_dropping"`
	// BetterFastDragging samples fast drags so skipped slots are acted on too.
	BetterFastDragging bool `toml:"better_fast_dragging"`
}

// ScrollingConfig toggles wheel transfers.
type ScrollingConfig struct {
	Enabled bool `toml:"enable"`
}

// SortConfig selects a sort mode per modifier. SortNone disables the trigger
// for that modifier.
type SortConfig struct {
	Primary SortMode `toml:"primary"`
	Shift   SortMode `toml:"shift"`
	Control SortMode `toml:"control"`
}

// DefaultConfig returns the stock toggles.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			AltDropping:        true,
			BetterFastDragging: false,
		},
		Scrolling: ScrollingConfig{Enabled: true},
		Sort: SortConfig{
			Primary: SortAlphabet,
			Shift:   SortQuantity,
			Control: SortRawID,
		},
	}
}

// ParseConfig decodes TOML on top of DefaultConfig. Keys missing from data
// keep their defaults.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("wheelie: parse config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("wheelie: parse config: unknown key %q", undecoded[0].String())
	}
	return cfg, nil
}

// UnmarshalText implements encoding.TextUnmarshaler so sort modes can be
// decoded by name. "none" and "" disable sorting.
func (m *SortMode) UnmarshalText(text []byte) error {
	switch name := SortMode(strings.ToLower(strings.TrimSpace(string(text)))); name {
	case "none", SortNone:
		*m = SortNone
	case SortAlphabet, SortQuantity, SortRawID:
		*m = name
	default:
		return fmt.Errorf("unknown sort mode %q", string(text))
	}
	return nil
}

// String returns the mode name, or "none".
func (m SortMode) String() string {
	if m == SortNone {
		return "none"
	}
	return string(m)
}
