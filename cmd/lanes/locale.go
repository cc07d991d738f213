package main

import (
	"fmt"

	"osm2lanes/pkg/locale"
)

func parseLocale(country, subdivision, side string) (locale.Locale, error) {
	if country == "" {
		return locale.Locale{}, fmt.Errorf("--locale is required (ISO-3166 alpha-2, e.g. US, DE, GB)")
	}
	drivingSide := locale.SideForCountry(country)
	switch side {
	case "", "auto":
	case "left":
		drivingSide = locale.Left
	case "right":
		drivingSide = locale.Right
	default:
		return locale.Locale{}, fmt.Errorf("--side must be left, right, or auto, got %q", side)
	}
	return locale.New(country, subdivision, drivingSide), nil
}
