package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/geniusdynamics/alumate-sub010/tools/linters/enumvalidator"
)

func main() {
	singlechecker.Main(enumvalidator.Analyzer)
}
