package main

import (
	. "github.com/saylorsolutions/modmake"
)

const (
	passgenVersion = "0.1.0"
)

func main() {
	b := NewBuild()
	b.Generate().DependsOnRunner("tidy", "", Go().ModTidy())

	passgen := NewAppBuild("passgen", "cmd/passgen", passgenVersion)
	passgen.Build(func(gb *GoBuild) {
		gb.
			StripDebugSymbols().
			SetVariable("main", "version", passgenVersion).
			CgoEnabled(false)
	})
	passgen.Variant("windows", "amd64")
	passgen.Variant("linux", "amd64")
	passgen.Variant("linux", "arm64")
	passgen.Variant("darwin", "amd64")
	passgen.Variant("darwin", "arm64")
	b.ImportApp(passgen)

	b.Execute()
}
