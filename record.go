package ipaconfig

// DefaultPath is the conventional location of the IPA configuration file.
const DefaultPath = "/etc/ipa/default.conf"

// Config is the resolved configuration record. A nil field is unset.
type Config struct {
	ServerName *string `json:"server,omitempty" yaml:"server,omitempty"`
	Domain     *string `json:"domain,omitempty" yaml:"domain,omitempty"`
}

// Server returns the server identifier and whether it is set.
func (c *Config) Server() (string, bool) {
	if c == nil || c.ServerName == nil {
		return "", false
	}

	return *c.ServerName, true
}

// DomainName returns the domain identifier and whether it is set.
func (c *Config) DomainName() (string, bool) {
	if c == nil || c.Domain == nil {
		return "", false
	}

	return *c.Domain, true
}
