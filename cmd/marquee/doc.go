// Command marquee loads a media catalog and answers filter and summary
// queries against it from the terminal.
//
// Typical usage:
//
//	marquee config init
//	marquee load
//	marquee query --kind movie --genre Dramas --tier premium
//	marquee stats --country India --top 10
//	marquee show "Stranger Things"
//	marquee watch
//
// Read commands accept --json for machine-readable output.
package main
