// Package config loads relocation rules from TOML rule files and from
// Maven-style XML shade configurations, and builds the relocation pipeline
// from them. Malformed rules are reported at load time, before any archive
// is touched.
package config
