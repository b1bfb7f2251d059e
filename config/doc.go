// Package config provides configuration for the wordtok demonstration
// driver: the sample sentences it walks through, output toggles, and
// logging options. Values come from defaults, then an optional YAML file,
// then WORDTOK_* environment variables, in that order.
package config
