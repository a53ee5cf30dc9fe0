package rules

import (
	"strconv"
	"strings"
)

// Each rule takes the block's current full_text and returns the new text.
// ok is false when the block should be left as it is.

type wirelessReading struct {
	ssid    string
	percent int
}

// parseWireless reads "<ssid> ... (<n>%) ...": the first field is the SSID
// and the first later field carrying '%' holds the link quality once its
// parentheses and percent signs are dropped.
func parseWireless(text string) (wirelessReading, bool) {
	fields := strings.Fields(text)
	if len(fields) < 2 {
		return wirelessReading{}, false
	}
	for _, f := range fields[1:] {
		if !strings.Contains(f, "%") {
			continue
		}
		digits := strings.NewReplacer("(", "", ")", "", "%", "").Replace(f)
		p, err := strconv.Atoi(digits)
		if err != nil {
			return wirelessReading{}, false
		}
		return wirelessReading{ssid: fields[0], percent: p}, true
	}
	return wirelessReading{}, false
}

// Wireless only touches text that mentions a percentage. Text it cannot
// read becomes "<weak> no wifi".
func Wireless(text string, icons WirelessIcons) (string, bool) {
	if !strings.Contains(text, "%") {
		return "", false
	}
	r, ok := parseWireless(text)
	if !ok {
		return icons.Weak + " no wifi", true
	}

	icon := icons.Weak
	switch {
	case r.percent > 70:
		icon = icons.Strong
	case r.percent > 40:
		icon = icons.Medium
	}
	return icon + " " + r.ssid, true
}

// Battery picks a charging glyph when the text says "Charging" (case
// sensitive) and a discharge level otherwise.
func Battery(text string, icons BatteryIcons) (string, bool) {
	p, ok := findPercent(text)
	if !ok {
		return "", false
	}

	var icon string
	if strings.Contains(text, "Charging") {
		icon = icons.Charging
		if p.value >= 95 {
			icon = icons.ChargingFull
		}
	} else {
		switch {
		case p.value > 80:
			icon = icons.Full
		case p.value > 60:
			icon = icons.High
		case p.value > 40:
			icon = icons.Half
		case p.value > 20:
			icon = icons.Low
		default:
			icon = icons.Critical
		}
	}
	return icon + " " + p.text + "%", true
}

// Volume reports mute whenever the text says "off" in any case, even if it
// also carries a level.
func Volume(text string, icons VolumeIcons) (string, bool) {
	if strings.Contains(strings.ToLower(text), "off") {
		return icons.Mute + " mute", true
	}
	p, ok := findPercent(text)
	if !ok {
		return "", false
	}

	var icon string
	switch {
	case p.value == 0:
		icon = icons.Mute
	case p.value < 30:
		icon = icons.Low
	case p.value < 70:
		icon = icons.Medium
	default:
		icon = icons.High
	}
	return icon + " " + p.text + "%", true
}
