package config_test

import (
	"errors"
	"fmt"
	"os"

	"github.com/0xalexb/ipa-config/config"
	iniparser "github.com/0xalexb/ipa-config/config/parser/ini"
)

// StaticDataFetcher implements config.DataFetcher with static data.
// Useful for unit tests that don't need file I/O.
type StaticDataFetcher struct {
	Data []byte
}

// Fetch returns the static data.
func (f *StaticDataFetcher) Fetch() ([]byte, error) {
	return f.Data, nil
}

func ExampleLoad() {
	parser, err := iniparser.NewParser()
	if err != nil {
		fmt.Printf("Error: %v\n", err)

		return
	}

	fetcher := &StaticDataFetcher{
		Data: []byte("[global]\nhost = ipa.example.test\n\n[global]\ndomain = a.test\ndomain = example.test\n"),
	}

	doc, err := config.Load(fetcher, parser)
	if err != nil {
		fmt.Printf("Error: %v\n", err)

		return
	}

	server := config.Chain{
		{Section: "global", Key: "server"},
		{Section: "global", Key: "host"},
	}

	value, from, ok := server.Last(doc)
	fmt.Println(value, from, ok)

	domain, err := config.LastValue(doc, "global", "domain")
	fmt.Println(domain, err)
	// Output:
	// ipa.example.test global.host true
	// example.test <nil>
}

func ExampleWriteDiagnostics() {
	parser, err := iniparser.NewParser()
	if err != nil {
		fmt.Printf("Error: %v\n", err)

		return
	}

	_, err = config.Load(&StaticDataFetcher{Data: []byte("[global\n")}, parser)

	fmt.Println(errors.Is(err, config.ErrParseSyntax))
	config.WriteDiagnostics(os.Stdout, "/etc/ipa/default.conf", err)
	// Output:
	// true
	// Failed to parse config file /etc/ipa/default.conf
	// unclosed section: [global
}
