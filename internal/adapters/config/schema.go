package config

// File represents the structure of the optional peek.yaml configuration
// file. Pointer fields distinguish "absent" from a zero value so that
// explicit command line flags can take precedence during merging.
type File struct {
	Port    *int     `yaml:"port"`
	Serve   *string  `yaml:"serve"`
	Watch   *string  `yaml:"watch"`
	Ignore  []string `yaml:"ignore"`
	Command *string  `yaml:"command"`
	Digest  *bool    `yaml:"digest"`
}
