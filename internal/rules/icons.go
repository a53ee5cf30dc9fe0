package rules

// Names are the block names the rewriter reacts to.
type Names struct {
	Wireless string `toml:"wireless"`
	Battery  string `toml:"battery"`
	Volume   string `toml:"volume"`
}

// Icons holds the glyph for every tier of every rule.
type Icons struct {
	Wireless WirelessIcons `toml:"wireless"`
	Battery  BatteryIcons  `toml:"battery"`
	Volume   VolumeIcons   `toml:"volume"`
}

type WirelessIcons struct {
	Strong string `toml:"strong"`
	Medium string `toml:"medium"`
	Weak   string `toml:"weak"`
}

// BatteryIcons has two charging glyphs and five discharge levels,
// Full being the highest and Critical the lowest.
type BatteryIcons struct {
	ChargingFull string `toml:"charging_full"`
	Charging     string `toml:"charging"`
	Full         string `toml:"full"`
	High         string `toml:"high"`
	Half         string `toml:"half"`
	Low          string `toml:"low"`
	Critical     string `toml:"critical"`
}

type VolumeIcons struct {
	Mute   string `toml:"mute"`
	Low    string `toml:"low"`
	Medium string `toml:"medium"`
	High   string `toml:"high"`
}

// DefaultNames match the instance names of a stock i3status config.
func DefaultNames() Names {
	return Names{
		Wireless: "wireless _first_",
		Battery:  "battery all",
		Volume:   "volume master",
	}
}

// DefaultIcons are Nerd Font glyphs.
func DefaultIcons() Icons {
	return Icons{
		Wireless: WirelessIcons{
			Strong: "\uf1eb",
			Medium: "\ufaa8",
			Weak:   "\ufaa9",
		},
		Battery: BatteryIcons{
			ChargingFull: "\uf240",
			Charging:     "\uf1e6",
			Full:         "\uf240",
			High:         "\uf241",
			Half:         "\uf242",
			Low:          "\uf243",
			Critical:     "\uf244",
		},
		Volume: VolumeIcons{
			Mute:   "\ufa80",
			Low:    "\uf026",
			Medium: "\uf027",
			High:   "\uf028",
		},
	}
}
