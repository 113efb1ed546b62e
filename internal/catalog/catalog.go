package catalog

import (
	"errors"

	"github.com/netradioapp/netradio/internal/model"
)

// ErrGenreNotFound is returned when a genre name is not in the catalog
var ErrGenreNotFound = errors.New("genre not found")

// Curated list of stream URLs categorized by genre, in display order.
var builtinGenres = []model.Genre{
	{
		Name: "80s Hits",
		Stations: []model.Station{
			{Name: "Absolute 80s", URL: "http://icecast.timlradio.co.uk/a8-high.mp3"},
			{Name: "80s80s", URL: "http://80s80s.hoerradar.de/80s80s-mp3-128"},
			{Name: "Awesome 80s", URL: "https://streams.abidingradio.org/awesome80s"},
		},
	},
	{
		Name: "Classic Rock",
		Stations: []model.Station{
			{Name: "Classic Rock Florida", URL: "http://stream.abacast.net/playlist/classic-rock-florida-hd-48k.m3u"},
			{Name: "Absolute Classic Rock", URL: "http://icecast.timlradio.co.uk/ac-high.mp3"},
			{Name: "Rock Antenne", URL: "http://mp3.webradio.antenne.de:80/rockantenne/stream"},
		},
	},
	{
		Name: "Classical",
		Stations: []model.Station{
			{Name: "Linn Classical", URL: "http://radio.linn.co.uk:8004/autodj"},
			{Name: "Venice Classic Radio", URL: "http://174.36.1.135:8006/stream"},
			{Name: "Radio Swiss Classic", URL: "http://stream.srg-ssr.ch/m/rsc_de/mp3_128"},
		},
	},
	{
		Name: "Electronic / Chill",
		Stations: []model.Station{
			{Name: "SomaFM: Groove Salad", URL: "http://ice.somafm.com/groovesalad-128-mp3"},
			{Name: "SomaFM: Drone Zone", URL: "http://ice.somafm.com/dronezone-128-mp3"},
			{Name: "Radio Paradise (Mellow)", URL: "http://stream.radioparadise.com/mellow-flac"},
		},
	},
	{
		Name: "Jazz",
		Stations: []model.Station{
			{Name: "Jazz24", URL: "https://jazz24.org/streams/high.m3u"},
			{Name: "TSF Jazz", URL: "http://tsfjazz.ice.infomaniak.ch/tsfjazz-high.mp3"},
			{Name: "Swiss Jazz", URL: "http://stream.srg-ssr.ch/m/rsj/mp3_128"},
		},
	},
}

// Catalog holds the static genre/station list. It is read-only after
// construction and safe for concurrent use.
type Catalog struct {
	genres []model.Genre
	byName map[string]int
}

// New creates a catalog from the built-in station list
func New() *Catalog {
	c := &Catalog{
		genres: builtinGenres,
		byName: make(map[string]int, len(builtinGenres)),
	}
	for i, g := range c.genres {
		c.byName[g.Name] = i
	}
	return c
}

// Genres returns all genres in display order
func (c *Catalog) Genres() []model.Genre {
	genres := make([]model.Genre, len(c.genres))
	copy(genres, c.genres)
	return genres
}

// GenreNames returns the genre names in display order
func (c *Catalog) GenreNames() []string {
	names := make([]string, 0, len(c.genres))
	for _, g := range c.genres {
		names = append(names, g.Name)
	}
	return names
}

// StationsFor returns the ordered station list for a genre, or
// ErrGenreNotFound if the genre is unknown
func (c *Catalog) StationsFor(genreName string) ([]model.Station, error) {
	i, ok := c.byName[genreName]
	if !ok {
		return nil, ErrGenreNotFound
	}
	stations := make([]model.Station, len(c.genres[i].Stations))
	copy(stations, c.genres[i].Stations)
	return stations, nil
}

// Station looks up a single station by genre and name, or ErrGenreNotFound
// if either is unknown
func (c *Catalog) Station(genreName, stationName string) (model.Station, error) {
	stations, err := c.StationsFor(genreName)
	if err != nil {
		return model.Station{}, err
	}
	for _, s := range stations {
		if s.Name == stationName {
			return s, nil
		}
	}
	return model.Station{}, ErrGenreNotFound
}
