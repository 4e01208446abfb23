// Command marquee builds ranked movie and series catalogs from the IMDb bulk
// datasets and compares catalog snapshots to surface trending titles.
package main
