/*
Command iulist runs a TOML script of list and cursor operations against an
indexed unsorted list and prints the resulting list.

	iulist -script steps.toml -impl singly
*/
package main

import (
	"flag"
	"fmt"
	"os"
)

func main() {
	script := flag.String("script", "iulist.toml", "script")
	impl := flag.String("impl", "", "list implementation, overrides the script: doubly or singly")

	flag.Parse()

	if err := run(*script, *impl); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(script, impl string) error {
	conf, err := LoadConfig(script)
	if err != nil {
		return err
	}

	if impl != "" {
		conf.Impl = impl
	}

	logger := NewZapLogger(conf.Log)
	defer logger.Sync()

	r, err := NewRunner(conf.Impl, logger, conf.StopOnError)
	if err != nil {
		return err
	}

	err = r.Run(conf.Steps)
	fmt.Println(r.List())

	return err
}
