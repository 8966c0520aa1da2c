package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/menukit/pkg/maps"
)

// MapsOptions are the flags of the maps command.
type MapsOptions struct {
	Lat   float64
	Long  float64
	Type  string
	Print bool

	cmd *cobra.Command
}

// AddMapsArgs registers the map flags.
func AddMapsArgs(cmd *cobra.Command, o *MapsOptions) {
	cmd.Flags().Float64Var(&o.Lat, "lat", 0, "Latitude in degrees.")
	cmd.Flags().Float64Var(&o.Long, "long", 0, "Longitude in degrees.")
	cmd.Flags().StringVarP(&o.Type, "type", "t", "", "Map type: Standard, Satellite, Hybrid or Transit.")
	cmd.Flags().BoolVar(&o.Print, "print", false, "Print the link instead of opening it.")
	o.cmd = cmd
}

// Query builds the maps query; coordinates are only set when --lat or
// --long was given.
func (o *MapsOptions) Query() (maps.Query, error) {
	mt, err := maps.ParseMapType(o.Type)
	if err != nil {
		return maps.Query{}, err
	}
	q := maps.Query{Type: mt}
	if o.cmd != nil && (o.cmd.Flags().Changed("lat") || o.cmd.Flags().Changed("long")) {
		q.Coordinates = &maps.Coordinates{Lat: o.Lat, Long: o.Long}
	}
	return q, nil
}
