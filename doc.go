// Package ipaconfig reads the IPA configuration file and extracts the server
// and domain identifiers.
//
// The load is one-shot and read-only. Read acquires the file, parses it with
// the strict INI policies of config/parser/ini and resolves the record:
//
//   - server: global.server, falling back to global.host
//   - domain: global.domain
//
// When a key repeats, in one section or across merged sections, the last
// occurrence in file order wins. A missing key leaves its field unset and is
// never an error. Open and syntax failures are reported on the diagnostic
// stream and returned as errors matching config.ErrFileOpen or
// config.ErrParseSyntax.
//
//	cfg, err := ipaconfig.Read(ipaconfig.DefaultPath)
//	if err != nil {
//	    return err
//	}
//	if server, ok := cfg.Server(); ok {
//	    fmt.Println(server)
//	}
//
// NewModule exposes the same load to an Fx application.
package ipaconfig
