package model

// Station represents a named stream source with a fixed URL.
// Stations are immutable and defined at startup from the static catalog.
type Station struct {
	Name string
	URL  string
}

// Genre represents a named, ordered grouping of stations for browsing.
type Genre struct {
	Name     string
	Stations []Station
}

// StationNames returns the station names in catalog order, for list display.
func (g Genre) StationNames() []string {
	names := make([]string, 0, len(g.Stations))
	for _, s := range g.Stations {
		names = append(names, s.Name)
	}
	return names
}
