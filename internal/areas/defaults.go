package areas

import "attendance.service/internal/geo"

// Default returns the built-in work areas used when no areas file is
// configured: the three Río Negro / Neuquén offices.
func Default() *Registry {
	reg, err := NewRegistry([]Area{
		{
			Name:        "Oficina General Roca",
			Description: "Área de trabajo General Roca",
			Center:      geo.Coordinate{Lat: -39.0333, Lng: -67.5833},
			Ring: geo.Ring{
				{Lat: -38.9800, Lng: -67.6200},
				{Lat: -38.9800, Lng: -67.5400},
				{Lat: -39.0800, Lng: -67.5400},
				{Lat: -39.0800, Lng: -67.6200},
				{Lat: -38.9800, Lng: -67.6200},
			},
		},
		{
			Name:        "Oficina Neuquén",
			Description: "Campus principal Neuquén",
			Center:      geo.Coordinate{Lat: -38.9516, Lng: -68.0591},
			Ring: geo.Ring{
				{Lat: -38.9450, Lng: -68.0650},
				{Lat: -38.9450, Lng: -68.0530},
				{Lat: -38.9580, Lng: -68.0530},
				{Lat: -38.9580, Lng: -68.0650},
				{Lat: -38.9450, Lng: -68.0650},
			},
		},
		{
			Name:        "Oficina Cipolletti",
			Description: "Sucursal Cipolletti",
			Center:      geo.Coordinate{Lat: -38.9337, Lng: -67.9894},
			Ring: geo.Ring{
				{Lat: -38.9280, Lng: -67.9950},
				{Lat: -38.9280, Lng: -67.9830},
				{Lat: -38.9400, Lng: -67.9830},
				{Lat: -38.9400, Lng: -67.9950},
				{Lat: -38.9280, Lng: -67.9950},
			},
		},
	})
	if err != nil {
		// The built-in rings are constants; a validation failure here is a bug.
		panic(err)
	}
	return reg
}
