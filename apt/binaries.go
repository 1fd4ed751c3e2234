package apt

// Binaries names the programs of the apt suite that vectors start with.
type Binaries struct {
	Apt      string `yaml:"apt" mapstructure:"apt"`
	AptCache string `yaml:"aptcache" mapstructure:"aptcache"`
}

func DefaultBinaries() Binaries {
	return Binaries{Apt: "apt", AptCache: "apt-cache"}
}

// WithDefaults fills in any binary left empty.
func (it Binaries) WithDefaults() Binaries {
	defaults := DefaultBinaries()
	if len(it.Apt) == 0 {
		it.Apt = defaults.Apt
	}
	if len(it.AptCache) == 0 {
		it.AptCache = defaults.AptCache
	}
	return it
}

func (it Binaries) Contains(program string) bool {
	return program == it.Apt || program == it.AptCache
}
