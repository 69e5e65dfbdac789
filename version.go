package mapkit

// Version is the current release of the mapkit library.
var Version = "0.2.0"
