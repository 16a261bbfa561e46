package labeler

type Config struct {
	// TileWidth is the pixel width of a storage tile and of the label index world.
	TileWidth float64
	// MaxLabeledTiles bounds the number of tile keys kept per group, 0 is unbounded.
	MaxLabeledTiles int
	// Displace lets a candidate retract already placed labels of lower priority instead of
	// being rejected by them.
	Displace bool
}

func ConfigDefault() Config {
	return Config{
		TileWidth:       1024,
		MaxLabeledTiles: 0,
		Displace:        true,
	}
}
