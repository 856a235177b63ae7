// Command ipa-config prints the server and domain names from the IPA configuration file.
package main

import "github.com/0xalexb/ipa-config/internal/cli"

func main() {
	cli.Execute()
}
