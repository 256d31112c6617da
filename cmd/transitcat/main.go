// SPDX-License-Identifier: MIT
// Command transitcat is the engine's two-phase CLI front end: make_base
// ingests a JSON network description and writes a binary routing
// artifact; process_requests loads that artifact and answers a batch of
// stat queries as a JSON array on stdout.
//
// A third, non-public subcommand, selftest, runs a small in-memory smoke
// test (build a toy network, route across it, validate the result) for
// local development; it is never advertised in usage or error text.
package main

import (
	"log"
	"os"
)

func main() {
	log.SetFlags(0)
	log.SetOutput(os.Stderr)

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "make_base":
		err = runMakeBase(os.Stdin, os.Stdout)
	case "process_requests":
		err = runProcessRequests(os.Stdin, os.Stdout)
	case "selftest":
		err = runSelftest()
	default:
		usage()
		os.Exit(1)
	}

	if err != nil {
		log.Printf("transitcat %s: %v", os.Args[1], err)
		os.Exit(1)
	}
}

func usage() {
	log.Println("usage: transitcat make_base|process_requests < request.json")
}
