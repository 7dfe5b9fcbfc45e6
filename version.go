package fleetintake

// Version is the release of the library and the fleetintake command.
const Version = "0.4.0"
